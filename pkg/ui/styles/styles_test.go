package styles

// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Verify style sheet loading and registry lookups

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedStylesLoad(t *testing.T) {
	for _, name := range []string{
		"Header", "Success", "Error", "Warning", "Muted",
		"Added", "Existing", "FilePath",
	} {
		_, ok := StyleRegistry[name]
		assert.True(t, ok, "style %s missing from registry", name)
	}
}

func TestLoadStylesFromData(t *testing.T) {
	data := []byte(`
colors:
  alert:
    light: "160"
    dark: "196"
styles:
  Shout:
    bold: true
    foreground: alert
`)
	require.NoError(t, LoadStylesFromData(data))
	defer func() {
		require.NoError(t, LoadStylesFromData(embeddedStyles))
	}()

	style, ok := StyleRegistry["Shout"]
	require.True(t, ok)
	assert.True(t, style.GetBold())
}

func TestLoadStylesFromData_InvalidYAML(t *testing.T) {
	err := LoadStylesFromData([]byte("styles: ["))
	assert.Error(t, err)

	require.NoError(t, LoadStylesFromData(embeddedStyles))
}

func TestGetStyle_UnknownNameIsSafe(t *testing.T) {
	style := GetStyle("NoSuchStyle")
	assert.Equal(t, "plain", style.Render("plain"))
}
