package domain

import "testing"

func TestGlobalConfigDir(t *testing.T) {
	got := GlobalConfigDir("/home/user/.config")
	want := "/home/user/.config/makkah-counter"
	if got != want {
		t.Errorf("GlobalConfigDir() = %q, want %q", got, want)
	}
}

func TestSessionLogPath(t *testing.T) {
	got := SessionLogPath("/var/log/counter")
	want := "/var/log/counter/counter.log"
	if got != want {
		t.Errorf("SessionLogPath() = %q, want %q", got, want)
	}
}

func TestShortSessionID(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"", ""},
		{"abc", "abc"},
		{"1a2b3c4d", "1a2b3c4d"},
		{"1a2b3c4d-5e6f-7a8b-9c0d-1e2f3a4b5c6d", "1a2b3c4d"},
	}

	for _, tt := range tests {
		if got := ShortSessionID(tt.id); got != tt.want {
			t.Errorf("ShortSessionID(%q) = %q, want %q", tt.id, got, tt.want)
		}
	}
}
