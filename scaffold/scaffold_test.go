package scaffold

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eringen/docsite"
)

func TestRender(t *testing.T) {
	files, err := Render(Data{SiteName: "Nix Docs", Overlays: docsite.DefaultOverlays})
	require.NoError(t, err)

	byName := make(map[string]string, len(files))
	for _, f := range files {
		byName[f.Name] = string(f.Body)
	}
	require.Contains(t, byName, ".env.example")
	require.Contains(t, byName, "README.md")
	assert.NotContains(t, byName, "dotenv")

	env := byName[".env.example"]
	for _, o := range docsite.DefaultOverlays {
		assert.Contains(t, env, o.Variable+"=")
	}
	assert.Contains(t, env, "(secret)")
	assert.Contains(t, byName["README.md"], "# Nix Docs")
}

func TestRenderMarksSecrets(t *testing.T) {
	files, err := Render(Data{
		SiteName: "Manual",
		Overlays: []docsite.Overlay{
			docsite.StringOverlay("GATSBY_ALGOLIA_INDEX_NAME", "header.search.indexName", nil),
			docsite.SecretOverlay("ALGOLIA_ADMIN_KEY", "header.search.algoliaAdminKey", nil),
		},
	})
	require.NoError(t, err)

	var env string
	for _, f := range files {
		if f.Name == ".env.example" {
			env = string(f.Body)
		}
	}
	assert.Contains(t, env, "# header.search.indexName\nGATSBY_ALGOLIA_INDEX_NAME=")
	assert.Contains(t, env, "# header.search.algoliaAdminKey (secret)\nALGOLIA_ADMIN_KEY=")
}
