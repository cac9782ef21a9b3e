package util

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDataDirHonoursXDG(t *testing.T) {
	base := t.TempDir()
	t.Setenv("XDG_DATA_HOME", base)
	if got := DataDir("slotgrid"); got != filepath.Join(base, "slotgrid") {
		t.Fatalf("DataDir = %q", got)
	}
}

func TestConfigDirHonoursXDG(t *testing.T) {
	base := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", base)
	if got := ConfigDir("slotgrid"); got != filepath.Join(base, "slotgrid") {
		t.Fatalf("ConfigDir = %q", got)
	}
}

func TestConfigDirFallsBackToHome(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		t.Skip("no home directory")
	}
	if got := ConfigDir("slotgrid"); got != filepath.Join(home, ".config", "slotgrid") {
		t.Fatalf("ConfigDir = %q", got)
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		t.Skip("no home directory")
	}
	tests := map[string]string{
		"~/reports/a.pdf":     filepath.Join(home, "reports/a.pdf"),
		"$HOME/reports/a.pdf": home + "/reports/a.pdf",
		"/tmp/a.pdf":          "/tmp/a.pdf",
	}
	for in, want := range tests {
		if got := ExpandHome(in); got != want {
			t.Fatalf("ExpandHome(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestClamp(t *testing.T) {
	if Clamp(-1, 0, 5) != 0 || Clamp(9, 0, 5) != 5 || Clamp(3, 0, 5) != 3 {
		t.Fatalf("Clamp returned unexpected values")
	}
}
