package docsite

import (
	"bytes"
	_ "embed"
	"errors"
	"io"

	"gopkg.in/yaml.v3"
)

// DefaultsYAML is the compiled-in site configuration, before any
// environment overlay.
//
//go:embed embedded/defaults.yaml
var DefaultsYAML []byte

// DefaultSite decodes the compiled-in defaults. Unknown keys are rejected.
func DefaultSite() (SiteConfiguration, error) {
	return ParseSite(DefaultsYAML)
}

// ParseSite decodes a YAML site configuration without validating it.
func ParseSite(data []byte) (SiteConfiguration, error) {
	var site SiteConfiguration
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&site); err != nil && !errors.Is(err, io.EOF) {
		return SiteConfiguration{}, &LoadError{Source: "defaults", Err: err}
	}
	return site, nil
}
