package docsite

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"unicode"
)

// Environ looks up environment variables. The process environment is the
// default; tests pass a MapEnv.
type Environ interface {
	LookupEnv(key string) (string, bool)
}

type processEnv struct{}

func (processEnv) LookupEnv(key string) (string, bool) { return os.LookupEnv(key) }

// ProcessEnv reads from the real process environment.
var ProcessEnv Environ = processEnv{}

// MapEnv is an Environ backed by a map.
type MapEnv map[string]string

func (m MapEnv) LookupEnv(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// Overlay maps one environment variable onto one configuration field.
type Overlay struct {
	Variable string
	Field    string
	Secret   bool
	set      func(*SiteConfiguration, string) error
}

// DefaultOverlays is the overlay table applied by Load. Adding an overlay
// is one entry here.
var DefaultOverlays = []Overlay{
	StringOverlay("GATSBY_ALGOLIA_APP_ID", "header.search.algoliaAppId", func(s *SiteConfiguration) *string { return &s.Header.Search.AlgoliaAppID }),
	StringOverlay("GATSBY_ALGOLIA_SEARCH_KEY", "header.search.algoliaSearchKey", func(s *SiteConfiguration) *string { return &s.Header.Search.AlgoliaSearchKey }),
	SecretOverlay("ALGOLIA_ADMIN_KEY", "header.search.algoliaAdminKey", func(s *SiteConfiguration) *Secret { return &s.Header.Search.AlgoliaAdminKey }),
	StringOverlay("GATSBY_ALGOLIA_INDEX_NAME", "header.search.indexName", func(s *SiteConfiguration) *string { return &s.Header.Search.IndexName }),
	BoolOverlay("DOCSITE_SEARCH_ENABLED", "header.search.enabled", func(s *SiteConfiguration) *bool { return &s.Header.Search.Enabled }),
}

var errControlChars = errors.New("value contains control characters")

func checkString(v string) error {
	if strings.IndexFunc(v, unicode.IsControl) >= 0 {
		return errControlChars
	}
	return nil
}

// StringOverlay builds an overlay for a plain string field.
func StringOverlay(variable, field string, target func(*SiteConfiguration) *string) Overlay {
	return Overlay{Variable: variable, Field: field, set: func(s *SiteConfiguration, v string) error {
		if err := checkString(v); err != nil {
			return err
		}
		*target(s) = v
		return nil
	}}
}

// SecretOverlay builds an overlay for a Secret field.
func SecretOverlay(variable, field string, target func(*SiteConfiguration) *Secret) Overlay {
	return Overlay{Variable: variable, Field: field, Secret: true, set: func(s *SiteConfiguration, v string) error {
		if err := checkString(v); err != nil {
			return err
		}
		*target(s) = Secret(v)
		return nil
	}}
}

// BoolOverlay builds an overlay for a boolean field. Values are parsed
// with strconv.ParseBool.
func BoolOverlay(variable, field string, target func(*SiteConfiguration) *bool) Overlay {
	return Overlay{Variable: variable, Field: field, set: func(s *SiteConfiguration, v string) error {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return err
		}
		*target(s) = b
		return nil
	}}
}

// ApplyOverlays writes every present, non-empty variable onto site.
// Variables that are unset or empty leave the default in place.
func ApplyOverlays(site *SiteConfiguration, env Environ, overlays []Overlay) error {
	for _, o := range overlays {
		v, ok := env.LookupEnv(o.Variable)
		if !ok || v == "" {
			continue
		}
		if err := o.set(site, v); err != nil {
			return &LoadError{Source: "env", Variable: o.Variable, Field: o.Field, Err: err}
		}
	}
	return nil
}
