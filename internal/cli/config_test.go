package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/makkah-counter/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigCommand_NoSubcommand_ShowsHelp(t *testing.T) {
	stdout, _, err := runRoot(t, t.TempDir(), "", "config")

	require.NoError(t, err)
	assert.Contains(t, stdout, "Available Commands:")
	assert.Contains(t, stdout, "show")
	assert.Contains(t, stdout, "template")
}

func TestConfigShowCommand_Defaults(t *testing.T) {
	globalDir := t.TempDir()

	stdout, _, err := runRoot(t, globalDir, "", "config", "show")

	require.NoError(t, err)
	assert.Contains(t, stdout, "[Loaded from]")
	assert.Contains(t, stdout, filepath.Join(globalDir, domain.ConfigFileName)+" (not found)")
	assert.Contains(t, stdout, "[Effective Config]")
	assert.Regexp(t, `name = ['"]Makkah Hotel['"]`, stdout)
	assert.Contains(t, stdout, "round_places = 2")
}

func TestConfigShowCommand_WithFile(t *testing.T) {
	globalDir := t.TempDir()
	path := filepath.Join(globalDir, domain.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("[hotel]\ncurrency = \"PKR\"\n"), 0o644))

	stdout, _, err := runRoot(t, globalDir, "", "config", "show")

	require.NoError(t, err)
	assert.Contains(t, stdout, "- "+path+"\n")
	assert.Regexp(t, `currency = ['"]PKR['"]`, stdout)
}

func TestConfigTemplateCommand_OutputsTemplate(t *testing.T) {
	stdout, _, err := runRoot(t, t.TempDir(), "", "config", "template")

	require.NoError(t, err)
	assert.Equal(t, domain.ConfigTemplate(), stdout)

	// The template must parse and match the defaults.
	var cfg domain.Config
	require.NoError(t, toml.Unmarshal([]byte(stdout), &cfg))
	want := domain.NewDefaultConfig()
	assert.Equal(t, want.Hotel, cfg.Hotel)
	assert.Equal(t, want.Pricing, cfg.Pricing)
	assert.Equal(t, want.Display, cfg.Display)
	assert.Equal(t, want.Log, cfg.Log)
}

func TestConfigTemplateCommand_IgnoresBrokenConfig(t *testing.T) {
	globalDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(globalDir, domain.ConfigFileName), []byte("[pricing]\nround_places = 99\n"), 0o644))

	stdout, _, err := runRoot(t, globalDir, "", "config", "template")

	require.NoError(t, err)
	assert.Contains(t, stdout, "[hotel]")
}
