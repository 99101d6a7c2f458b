package docsite

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*SiteConfiguration)
		wantField string // empty means valid
	}{
		{
			name:   "defaults with credentials",
			mutate: func(s *SiteConfiguration) {},
		},
		{
			name:      "empty path prefix",
			mutate:    func(s *SiteConfiguration) { s.Build.PathPrefix = "" },
			wantField: "build.pathPrefix",
		},
		{
			name:      "relative path prefix",
			mutate:    func(s *SiteConfiguration) { s.Build.PathPrefix = "docs" },
			wantField: "build.pathPrefix",
		},
		{
			name:      "site url without scheme",
			mutate:    func(s *SiteConfiguration) { s.Build.SiteURL = "nixos.org" },
			wantField: "build.siteUrl",
		},
		{
			name:      "site url is a mailto uri",
			mutate:    func(s *SiteConfiguration) { s.Build.SiteURL = "mailto:docs@nixos.org" },
			wantField: "build.siteUrl",
		},
		{
			name:      "site url is an opaque uri",
			mutate:    func(s *SiteConfiguration) { s.Build.SiteURL = "foo:bar" },
			wantField: "build.siteUrl",
		},
		{
			name:      "site url without host",
			mutate:    func(s *SiteConfiguration) { s.Build.SiteURL = "https://" },
			wantField: "build.siteUrl",
		},
		{
			name:      "logo link is not a web url",
			mutate:    func(s *SiteConfiguration) { s.Header.LogoLink = "ftp://nixos.org/learn" },
			wantField: "header.logoLink",
		},
		{
			name:      "missing header title",
			mutate:    func(s *SiteConfiguration) { s.Header.Title = "" },
			wantField: "header.title",
		},
		{
			name:      "logo is not a url",
			mutate:    func(s *SiteConfiguration) { s.Header.Logo = "logo.svg" },
			wantField: "header.logo",
		},
		{
			name: "empty placeholders are inert",
			mutate: func(s *SiteConfiguration) {
				s.Header.HelpURL = ""
				s.Header.TweetText = ""
				s.Header.GithubURL = ""
				s.Header.Links = []Link{{}}
				s.Sidebar.Links = nil
				s.Sidebar.Title = ""
			},
		},
		{
			name:      "search enabled without index name",
			mutate:    func(s *SiteConfiguration) { s.Header.Search.IndexName = "" },
			wantField: "header.search.indexName",
		},
		{
			name:      "search enabled without search key",
			mutate:    func(s *SiteConfiguration) { s.Header.Search.AlgoliaSearchKey = "" },
			wantField: "header.search.algoliaSearchKey",
		},
		{
			name: "search disabled without credentials",
			mutate: func(s *SiteConfiguration) {
				s.Header.Search = Search{Enabled: false}
			},
		},
		{
			name:      "nav order entry without leading slash",
			mutate:    func(s *SiteConfiguration) { s.Sidebar.ForcedNavOrder = []string{"/introduction", "quickstart"} },
			wantField: "sidebar.forcedNavOrder[1]",
		},
		{
			name:   "collapsed nav with repeated entries",
			mutate: func(s *SiteConfiguration) { s.Sidebar.CollapsedNav = []string{"/codeblock", "/codeblock"} },
		},
		{
			name:      "missing site description",
			mutate:    func(s *SiteConfiguration) { s.SiteMetadata.Description = "" },
			wantField: "siteMetadata.description",
		},
		{
			name:      "docs location is a mailto uri",
			mutate:    func(s *SiteConfiguration) { s.SiteMetadata.DocsLocation = "mailto:docs@nixos.org" },
			wantField: "siteMetadata.docsLocation",
		},
		{
			name:      "favicon is an opaque uri",
			mutate:    func(s *SiteConfiguration) { s.SiteMetadata.Favicon = "foo:bar" },
			wantField: "siteMetadata.favicon",
		},
		{
			name:      "favicon is not a url",
			mutate:    func(s *SiteConfiguration) { s.SiteMetadata.Favicon = "favicon.ico" },
			wantField: "siteMetadata.favicon",
		},
		{
			name:   "og image is optional",
			mutate: func(s *SiteConfiguration) { s.SiteMetadata.OGImage = "" },
		},
		{
			name: "pwa disabled with empty manifest",
			mutate: func(s *SiteConfiguration) {
				s.PWA = PWA{Enabled: false}
			},
		},
		{
			name:   "pwa enabled with full manifest",
			mutate: func(s *SiteConfiguration) { s.PWA.Enabled = true },
		},
		{
			name: "pwa enabled without icons",
			mutate: func(s *SiteConfiguration) {
				s.PWA.Enabled = true
				s.PWA.Manifest.Icons = []Icon{}
			},
			wantField: "pwa.manifest.icons",
		},
		{
			name: "pwa enabled without name",
			mutate: func(s *SiteConfiguration) {
				s.PWA.Enabled = true
				s.PWA.Manifest.Name = ""
			},
			wantField: "pwa.manifest.name",
		},
		{
			name: "pwa icon sizes malformed",
			mutate: func(s *SiteConfiguration) {
				s.PWA.Enabled = true
				s.PWA.Manifest.Icons[0].Sizes = "512"
			},
			wantField: "pwa.manifest.icons[0].sizes",
		},
		{
			name: "pwa icon with several sizes",
			mutate: func(s *SiteConfiguration) {
				s.PWA.Enabled = true
				s.PWA.Manifest.Icons[0].Sizes = "192x192 512x512"
			},
		},
		{
			name: "pwa icon type is not a mime type",
			mutate: func(s *SiteConfiguration) {
				s.PWA.Enabled = true
				s.PWA.Manifest.Icons[0].Type = "png"
			},
			wantField: "pwa.manifest.icons[0].type",
		},
		{
			name:   "trailing slash with stock nav paths",
			mutate: func(s *SiteConfiguration) { s.Build.TrailingSlash = true },
		},
		{
			name: "trailing slash with slash-terminated nav paths",
			mutate: func(s *SiteConfiguration) {
				s.Build.TrailingSlash = true
				s.Sidebar.ForcedNavOrder = []string{"/introduction/", "/quickstart/"}
				s.Sidebar.CollapsedNav = []string{"/codeblock/"}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			site := validSite(t)
			tt.mutate(&site)

			err := Validate(site)
			if tt.wantField == "" {
				require.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.True(t, errors.As(err, &verr), "expected *ValidationError, got %v", err)
			assert.True(t, verr.Has(tt.wantField), "violations %v do not name %s", verr.Violations, tt.wantField)
			assert.Contains(t, err.Error(), tt.wantField)
		})
	}
}

func TestValidateReportsEveryViolation(t *testing.T) {
	site := validSite(t)
	site.Header.Title = ""
	site.SiteMetadata.Title = ""
	site.PWA.Enabled = true
	site.PWA.Manifest.ThemeColor = ""

	err := Validate(site)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Len(t, verr.Violations, 3)
	assert.True(t, verr.Has("header.title"))
	assert.True(t, verr.Has("siteMetadata.title"))
	assert.True(t, verr.Has("pwa.manifest.theme_color"))
}

func TestURLConstraintText(t *testing.T) {
	site := validSite(t)
	site.Build.SiteURL = "foo:bar"

	err := Validate(site)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	require.Len(t, verr.Violations, 1)
	assert.Equal(t, Violation{
		Field:      "build.siteUrl",
		Constraint: "must be an absolute http(s) URL",
	}, verr.Violations[0])
}

func TestValidationConstraintText(t *testing.T) {
	site := validSite(t)
	site.Header.Search.IndexName = ""

	err := Validate(site)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	require.Len(t, verr.Violations, 1)
	assert.Equal(t, Violation{
		Field:      "header.search.indexName",
		Constraint: "is required when enabled is true",
	}, verr.Violations[0])
}
