package docsite

import (
	"context"
	"encoding/json"
	"html"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// Client is the part of the configuration that may be shipped to a
// browser. It has no field for the Algolia admin key.
type Client struct {
	Build        Build        `json:"build"`
	Header       ClientHeader `json:"header"`
	Sidebar      Sidebar      `json:"sidebar"`
	SiteMetadata SiteMetadata `json:"siteMetadata"`
	PWA          PWA          `json:"pwa"`
}

// ClientHeader is Header without secrets.
type ClientHeader struct {
	Logo      string       `json:"logo"`
	LogoLink  string       `json:"logoLink"`
	Title     string       `json:"title"`
	GithubURL string       `json:"githubUrl"`
	HelpURL   string       `json:"helpUrl"`
	TweetText string       `json:"tweetText"`
	Links     []Link       `json:"links"`
	Search    ClientSearch `json:"search"`
}

// ClientSearch carries the search-only Algolia credentials.
type ClientSearch struct {
	Enabled          bool   `json:"enabled"`
	IndexName        string `json:"indexName"`
	AlgoliaAppID     string `json:"algoliaAppId,omitempty"`
	AlgoliaSearchKey string `json:"algoliaSearchKey,omitempty"`
}

// ClientConfig projects site onto its browser-safe form.
func ClientConfig(site SiteConfiguration) Client {
	site = site.Clone()
	h := site.Header
	return Client{
		Build: site.Build,
		Header: ClientHeader{
			Logo:      h.Logo,
			LogoLink:  h.LogoLink,
			Title:     h.Title,
			GithubURL: h.GithubURL,
			HelpURL:   h.HelpURL,
			TweetText: h.TweetText,
			Links:     h.Links,
			Search: ClientSearch{
				Enabled:          h.Search.Enabled,
				IndexName:        h.Search.IndexName,
				AlgoliaAppID:     h.Search.AlgoliaAppID,
				AlgoliaSearchKey: h.Search.AlgoliaSearchKey,
			},
		},
		Sidebar:      site.Sidebar,
		SiteMetadata: site.SiteMetadata,
		PWA:          site.PWA,
	}
}

// ClientJSON encodes the browser-safe configuration. encoding/json escapes
// <, > and &, so the output is safe inside a <script> element.
func ClientJSON(site SiteConfiguration) ([]byte, error) {
	return json.Marshal(ClientConfig(site))
}

// HeadTags renders the <head> fragment a page template embeds: favicon,
// description and OpenGraph tags, WebSite JSON-LD, the analytics loader and
// the window.__DOCSITE__ bootstrap.
func HeadTags(site SiteConfiguration) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		cfg, err := ClientJSON(site)
		if err != nil {
			return err
		}
		meta := site.SiteMetadata
		var b strings.Builder
		b.WriteString(`<link rel="icon" href="` + html.EscapeString(meta.Favicon) + `">`)
		b.WriteString(`<meta name="description" content="` + html.EscapeString(meta.Description) + `">`)
		b.WriteString(`<meta property="og:title" content="` + html.EscapeString(meta.Title) + `">`)
		b.WriteString(`<meta property="og:description" content="` + html.EscapeString(meta.Description) + `">`)
		if meta.OGImage != "" {
			b.WriteString(`<meta property="og:image" content="` + html.EscapeString(meta.OGImage) + `">`)
		}
		if id := site.Build.GATrackingID; id != "" {
			b.WriteString(`<script async src="https://www.googletagmanager.com/gtag/js?id=` + html.EscapeString(id) + `"></script>`)
			// json.Marshal yields a JS string literal with <, > and & escaped.
			lit, err := json.Marshal(id)
			if err != nil {
				return err
			}
			b.WriteString(`<script>window.dataLayer=window.dataLayer||[];function gtag(){dataLayer.push(arguments);}gtag('js',new Date());gtag('config',` + string(lit) + `);</script>`)
		}
		b.WriteString(`<script type="application/ld+json">` + WebsiteJsonLD(site) + `</script>`)
		b.WriteString(`<script>window.__DOCSITE__=` + string(cfg) + `;</script>`)
		_, err = io.WriteString(w, b.String())
		return err
	})
}
