package shell

import (
	"bytes"
	"testing"

	"github.com/n3xus/n3xus/config"
	"github.com/stretchr/testify/assert"
)

func TestRenderPrompt(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "N3XUS::/ $ ", RenderPrompt("N3XUS", "/", false))
	assert.Equal(t, "box::/a/b $ ", RenderPrompt("box", "/a/b", false))
	assert.Equal(t,
		"\033[0;36mN3XUS\033[0m::\033[0;32m/docs\033[0m $ ",
		RenderPrompt("N3XUS", "/docs", true))
}

func TestUseColor(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	assert.True(t, UseColor(config.ColorAlways, buf))
	assert.False(t, UseColor(config.ColorNever, buf))
	assert.False(t, UseColor(config.ColorAuto, buf), "a buffer is not a terminal")
}
