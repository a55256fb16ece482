package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/glide/internal/application/replay"
)

func TestParseFlags(t *testing.T) {
	f, err := parseFlags([]string{"-stage", "cave", "-record", "out.json"})
	require.NoError(t, err)
	assert.Equal(t, "cave", f.stage)
	assert.Equal(t, "out.json", f.record)
	assert.Empty(t, f.configDir)

	_, err = parseFlags([]string{"-record", "a.json", "-replay", "b.json"})
	assert.Error(t, err)
}

func TestResolveStage(t *testing.T) {
	data := &replay.Data{Stage: "cave"}

	assert.Equal(t, "demo", resolveStage("", nil))
	assert.Equal(t, "cave", resolveStage("", data))
	assert.Equal(t, "sky", resolveStage("sky", data))
	assert.Equal(t, "demo", resolveStage("", &replay.Data{}))
}

func TestEmbeddedConfigsLoad(t *testing.T) {
	loader, err := newLoader("")
	require.NoError(t, err)

	cfg, err := loader.LoadAll(defaultStage)
	require.NoError(t, err)

	assert.NoError(t, cfg.Controller.Validate())
	assert.Equal(t, "demo", cfg.Stage.ID)
}

func TestDirectoryConfigsLoad(t *testing.T) {
	loader, err := newLoader("configs")
	require.NoError(t, err)

	_, err = loader.LoadAll(defaultStage)
	assert.NoError(t, err)

	_, err = loader.LoadAll("missing")
	assert.Error(t, err)
}
