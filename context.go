package docsite

import "context"

type siteKey struct{}

// NewContext returns a copy of ctx carrying site.
func NewContext(ctx context.Context, site SiteConfiguration) context.Context {
	c := site.Clone()
	return context.WithValue(ctx, siteKey{}, &c)
}

// FromContext returns the site carried by ctx, if any.
func FromContext(ctx context.Context) (SiteConfiguration, bool) {
	site, ok := ctx.Value(siteKey{}).(*SiteConfiguration)
	if !ok {
		return SiteConfiguration{}, false
	}
	return site.Clone(), true
}
