package docsite

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// searchEnv supplies the two identifiers search needs.
func searchEnv() MapEnv {
	return MapEnv{
		"GATSBY_ALGOLIA_APP_ID":     "abc123",
		"GATSBY_ALGOLIA_SEARCH_KEY": "xyz789",
	}
}

// validSite returns the compiled-in defaults with search credentials set.
func validSite(t *testing.T) SiteConfiguration {
	t.Helper()
	site, err := DefaultSite()
	require.NoError(t, err)
	site.Header.Search.AlgoliaAppID = "abc123"
	site.Header.Search.AlgoliaSearchKey = "xyz789"
	return site
}
