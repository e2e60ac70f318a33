// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/makkah-counter/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from TOML files.
type Loader struct {
	globalConfDir string // Path to global config directory (e.g., ~/.config/makkah-counter)
	explicitPath  string // Path given with --config; must exist when set
}

// NewLoader creates a new Loader reading the global config and, if
// explicitPath is not empty, that file on top of it.
func NewLoader(explicitPath string) *Loader {
	return &Loader{
		globalConfDir: defaultGlobalConfigDir(),
		explicitPath:  explicitPath,
	}
}

// NewLoaderWithGlobalDir creates a new Loader with a custom global config directory.
// This is useful for testing.
func NewLoaderWithGlobalDir(globalConfDir, explicitPath string) *Loader {
	return &Loader{
		globalConfDir: globalConfDir,
		explicitPath:  explicitPath,
	}
}

// defaultGlobalConfigDir returns the default global config directory.
func defaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.GlobalConfigDir(configHome)
}

func (l *Loader) globalPath() string {
	if l.globalConfDir == "" {
		return ""
	}
	return filepath.Join(l.globalConfDir, domain.ConfigFileName)
}

// Sources lists the files Load reads, in merge order.
func (l *Loader) Sources() []domain.ConfigInfo {
	var infos []domain.ConfigInfo
	if p := l.globalPath(); p != "" {
		infos = append(infos, configInfo(p))
	}
	if l.explicitPath != "" {
		infos = append(infos, configInfo(l.explicitPath))
	}
	return infos
}

func configInfo(path string) domain.ConfigInfo {
	_, err := os.Stat(path)
	return domain.ConfigInfo{Path: path, Exists: err == nil}
}

// Load returns the merged configuration.
// Merge order: defaults <- global <- explicit (later takes precedence).
// A missing global file is ignored; a missing explicit file is an error.
func (l *Loader) Load() (*domain.Config, error) {
	cfg := domain.NewDefaultConfig()

	if p := l.globalPath(); p != "" {
		if err := l.applyFile(cfg, p); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	if l.explicitPath != "" {
		if err := l.applyFile(cfg, l.explicitPath); err != nil {
			return nil, err
		}
	}

	sort.Strings(cfg.Warnings)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyFile reads a TOML file and applies every key it sets onto cfg.
func (l *Loader) applyFile(cfg *domain.Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg.Warnings = append(cfg.Warnings, applyRaw(cfg, raw)...)
	return nil
}

// applyRaw copies the recognised keys of raw onto cfg and returns warnings
// for everything it does not recognise.
func applyRaw(cfg *domain.Config, raw map[string]any) []string {
	var warnings []string

	for section, value := range raw {
		m, ok := value.(map[string]any)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("unknown key: %s", section))
			continue
		}

		switch section {
		case "hotel":
			for k, v := range m {
				switch k {
				case "name":
					warnings = setString(&cfg.Hotel.Name, section, k, v, warnings)
				case "currency":
					warnings = setString(&cfg.Hotel.Currency, section, k, v, warnings)
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [hotel]: %s", k))
				}
			}
		case "pricing":
			for k, v := range m {
				switch k {
				case "round_places":
					if n, ok := v.(int64); ok {
						cfg.Pricing.RoundPlaces = int(n)
					} else {
						warnings = append(warnings, invalidValue(section, k, v))
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [pricing]: %s", k))
				}
			}
		case "display":
			for k, v := range m {
				switch k {
				case "color":
					if b, ok := v.(bool); ok {
						cfg.Display.Color = b
					} else {
						warnings = append(warnings, invalidValue(section, k, v))
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [display]: %s", k))
				}
			}
		case "log":
			for k, v := range m {
				switch k {
				case "dir":
					warnings = setString(&cfg.Log.Dir, section, k, v, warnings)
				case "level":
					warnings = setString(&cfg.Log.Level, section, k, v, warnings)
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [log]: %s", k))
				}
			}
		default:
			warnings = append(warnings, fmt.Sprintf("unknown section: %s", section))
		}
	}

	return warnings
}

func setString(dst *string, section, key string, v any, warnings []string) []string {
	s, ok := v.(string)
	if !ok {
		return append(warnings, invalidValue(section, key, v))
	}
	*dst = s
	return warnings
}

func invalidValue(section, key string, v any) string {
	return fmt.Sprintf("invalid value for [%s].%s: %v (%T)", section, key, v, v)
}
