package docsite

import "slices"

// SiteConfiguration holds every setting a documentation site build reads.
// A loaded value is never mutated; Store.Get hands out deep copies.
type SiteConfiguration struct {
	Build        Build        `yaml:"build" json:"build"`
	Header       Header       `yaml:"header" json:"header"`
	Sidebar      Sidebar      `yaml:"sidebar" json:"sidebar"`
	SiteMetadata SiteMetadata `yaml:"siteMetadata" json:"siteMetadata"`
	PWA          PWA          `yaml:"pwa" json:"pwa"`
}

// Build holds site-generator settings.
type Build struct {
	PathPrefix    string `yaml:"pathPrefix" json:"pathPrefix" validate:"required,startswith=/"`
	SiteURL       string `yaml:"siteUrl" json:"siteUrl" validate:"required,http_url"`
	GATrackingID  string `yaml:"gaTrackingId,omitempty" json:"gaTrackingId,omitempty"`
	TrailingSlash bool   `yaml:"trailingSlash" json:"trailingSlash"`
}

// Header holds top navigation bar settings.
type Header struct {
	Logo      string `yaml:"logo" json:"logo" validate:"required,http_url"`
	LogoLink  string `yaml:"logoLink" json:"logoLink" validate:"required,http_url"`
	Title     string `yaml:"title" json:"title" validate:"required"`
	GithubURL string `yaml:"githubUrl" json:"githubUrl"`
	HelpURL   string `yaml:"helpUrl" json:"helpUrl"`
	TweetText string `yaml:"tweetText" json:"tweetText"`
	Links     []Link `yaml:"links" json:"links"`
	Search    Search `yaml:"search" json:"search"`
}

// Link is a labelled navigation entry. Empty text and link are allowed
// and left for the renderer to skip.
type Link struct {
	Text string `yaml:"text" json:"text"`
	Link string `yaml:"link" json:"link"`
}

// Search holds the Algolia integration settings. The identifiers and keys
// normally arrive through the environment overlay.
type Search struct {
	Enabled          bool   `yaml:"enabled" json:"enabled"`
	IndexName        string `yaml:"indexName" json:"indexName" validate:"required_if=Enabled true"`
	AlgoliaAppID     string `yaml:"algoliaAppId,omitempty" json:"algoliaAppId,omitempty" validate:"required_if=Enabled true"`
	AlgoliaSearchKey string `yaml:"algoliaSearchKey,omitempty" json:"algoliaSearchKey,omitempty" validate:"required_if=Enabled true"`
	AlgoliaAdminKey  Secret `yaml:"algoliaAdminKey,omitempty" json:"algoliaAdminKey,omitempty"`
}

// Sidebar holds left navigation settings.
type Sidebar struct {
	ForcedNavOrder []string `yaml:"forcedNavOrder" json:"forcedNavOrder" validate:"dive,navpath"`
	CollapsedNav   []string `yaml:"collapsedNav" json:"collapsedNav"`
	Links          []Link   `yaml:"links" json:"links"`
	Frontline      bool     `yaml:"frontline" json:"frontline"`
	IgnoreIndex    bool     `yaml:"ignoreIndex" json:"ignoreIndex"`
	Title          string   `yaml:"title" json:"title"`
}

// compact drops repeated collapsedNav entries, keeping first occurrences.
func (s *Sidebar) compact() {
	if len(s.CollapsedNav) < 2 {
		return
	}
	seen := make(map[string]bool, len(s.CollapsedNav))
	out := s.CollapsedNav[:0]
	for _, p := range s.CollapsedNav {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	s.CollapsedNav = out
}

// IsCollapsed reports whether path starts collapsed in the sidebar.
func (s Sidebar) IsCollapsed(path string) bool {
	return slices.Contains(s.CollapsedNav, path)
}

// SiteMetadata holds page-level metadata shared by every page.
type SiteMetadata struct {
	Title        string `yaml:"title" json:"title" validate:"required"`
	Description  string `yaml:"description" json:"description" validate:"required"`
	OGImage      string `yaml:"ogImage,omitempty" json:"ogImage,omitempty"`
	DocsLocation string `yaml:"docsLocation" json:"docsLocation" validate:"required,http_url"`
	Favicon      string `yaml:"favicon" json:"favicon" validate:"required,http_url"`
}

// PWA holds progressive web app settings. The manifest is only checked
// when Enabled is set.
type PWA struct {
	Enabled  bool     `yaml:"enabled" json:"enabled"`
	Manifest Manifest `yaml:"manifest" json:"manifest" validate:"-"`
}

// Manifest mirrors the web app manifest members the packager emits.
type Manifest struct {
	Name            string `yaml:"name" json:"name" validate:"required"`
	ShortName       string `yaml:"short_name" json:"short_name" validate:"required"`
	StartURL        string `yaml:"start_url" json:"start_url" validate:"required"`
	BackgroundColor string `yaml:"background_color" json:"background_color" validate:"required"`
	ThemeColor      string `yaml:"theme_color" json:"theme_color" validate:"required"`
	Display         string `yaml:"display" json:"display" validate:"required"`
	CrossOrigin     string `yaml:"crossOrigin" json:"crossOrigin" validate:"required"`
	Icons           []Icon `yaml:"icons" json:"icons" validate:"required,min=1,dive"`
}

// Icon is a single manifest icon entry.
type Icon struct {
	Src   string `yaml:"src" json:"src" validate:"required"`
	Sizes string `yaml:"sizes" json:"sizes" validate:"required,iconsizes"`
	Type  string `yaml:"type" json:"type" validate:"required,mimetype"`
}

// Secret is a credential that must never reach a browser artifact. It
// redacts itself when printed or marshalled; Reveal returns the raw value.
type Secret string

const redacted = "******"

// Reveal returns the raw secret value.
func (s Secret) Reveal() string { return string(s) }

func (s Secret) String() string {
	if s == "" {
		return ""
	}
	return redacted
}

func (s Secret) GoString() string { return `docsite.Secret("` + s.String() + `")` }

// MarshalJSON implements json.Marshaler.
func (s Secret) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// MarshalYAML implements yaml.Marshaler.
func (s Secret) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}

// Clone returns a deep copy of c. No slice in the copy aliases c.
func (c SiteConfiguration) Clone() SiteConfiguration {
	out := c
	out.Header.Links = slices.Clone(c.Header.Links)
	out.Sidebar.ForcedNavOrder = slices.Clone(c.Sidebar.ForcedNavOrder)
	out.Sidebar.CollapsedNav = slices.Clone(c.Sidebar.CollapsedNav)
	out.Sidebar.Links = slices.Clone(c.Sidebar.Links)
	out.PWA.Manifest.Icons = slices.Clone(c.PWA.Manifest.Icons)
	return out
}
