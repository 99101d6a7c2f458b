package docsite

import (
	"encoding/json"
	"net/url"
	"path"
	"strings"
)

// PageURL returns the absolute URL of a documentation page, honoring
// pathPrefix and trailingSlash.
func PageURL(b Build, page string) string {
	u, err := url.Parse(b.SiteURL)
	if err != nil {
		return b.SiteURL
	}
	p := path.Join("/", u.Path, b.PathPrefix, page)
	if b.TrailingSlash && !strings.HasSuffix(p, "/") {
		p += "/"
	}
	u.Path = p
	return u.String()
}

// WebsiteJsonLD returns a Schema.org WebSite JSON-LD string for site.
func WebsiteJsonLD(site SiteConfiguration) string {
	data := map[string]interface{}{
		"@context": "https://schema.org",
		"@type":    "WebSite",
		"name":     site.SiteMetadata.Title,
		"url":      PageURL(site.Build, "/"),
	}
	if site.SiteMetadata.Description != "" {
		data["description"] = site.SiteMetadata.Description
	}
	if site.SiteMetadata.OGImage != "" {
		data["image"] = site.SiteMetadata.OGImage
	}
	if site.Header.Search.Enabled {
		data["potentialAction"] = map[string]string{
			"@type":       "SearchAction",
			"target":      PageURL(site.Build, "/") + "?query={search_term_string}",
			"query-input": "required name=search_term_string",
		}
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}
