package hotkey

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	c, err := Parse("Ctrl+Shift+D")
	require.NoError(t, err)
	assert.Equal(t, Combo{Key: "d", Modifiers: []string{"ctrl", "shift"}}, c)
	assert.Equal(t, []string{"d", "ctrl", "shift"}, c.Keys())
	assert.Equal(t, "ctrl+shift+d", c.String())
}

func TestParse_Aliases(t *testing.T) {
	c, err := Parse("command + option + f6")
	require.NoError(t, err)
	assert.Equal(t, Combo{Key: "f6", Modifiers: []string{"cmd", "alt"}}, c)

	c, err = Parse("ctrl+control+x")
	require.NoError(t, err)
	assert.Equal(t, []string{"ctrl"}, c.Modifiers)
}

func TestParse_BareKey(t *testing.T) {
	c, err := Parse("f8")
	require.NoError(t, err)
	assert.Equal(t, []string{"f8"}, c.Keys())
	assert.Equal(t, "f8", c.String())
}

func TestParse_Errors(t *testing.T) {
	for _, s := range []string{"", "ctrl+", "ctrl+shift", "hyper+d", "ctrl++d"} {
		_, err := Parse(s)
		assert.Error(t, err, "input %q", s)
	}
}
