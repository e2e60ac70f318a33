package domain

// LineReader supplies one line of user input at a time.
type LineReader interface {
	// ReadLine blocks until a full line is available and returns it without
	// the trailing newline. It returns ErrInputClosed once input is exhausted.
	ReadLine() (string, error)
}

// Logger records session events. Round 0 means the event is not tied to an order round.
type Logger interface {
	Debug(round int, category, msg string)
	Info(round int, category, msg string)
	Warn(round int, category, msg string)
	Error(round int, category, msg string)
}

// ConfigInfo describes one configuration source.
type ConfigInfo struct {
	Path   string
	Exists bool
}

// ConfigLoader loads the effective configuration.
type ConfigLoader interface {
	// Load returns defaults merged with every existing source.
	Load() (*Config, error)

	// Sources lists the files Load reads, in merge order.
	Sources() []ConfigInfo
}

// NopLogger discards everything.
type NopLogger struct{}

func (NopLogger) Debug(int, string, string) {}
func (NopLogger) Info(int, string, string)  {}
func (NopLogger) Warn(int, string, string)  {}
func (NopLogger) Error(int, string, string) {}
