package commands

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"streamsched/internal"
)

func TestNew_RegistersSubcommands(t *testing.T) {
	root := New()

	names := make([]string, 0)
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.Contains(t, names, "serve")
	assert.Contains(t, names, "show")
	assert.Contains(t, names, "reset")

	cfg := root.PersistentFlags().Lookup("config")
	require.NotNil(t, cfg)
	assert.Equal(t, "c", cfg.Shorthand)
	assert.Equal(t, "config.yaml", cfg.DefValue)
}

func TestReset_RefusesWithoutYes(t *testing.T) {
	root := New()
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(out)
	root.SetArgs([]string{"reset", "-c", "/nonexistent/config.yaml"})

	err := root.Execute()
	assert.ErrorIs(t, err, internal.ErrNotConfirmed)
}

func TestShow_MissingConfig(t *testing.T) {
	root := New()
	root.SetArgs([]string{"show", "-c", t.TempDir() + "/missing.yaml"})

	assert.Error(t, root.Execute())
}
