package docsite

import (
	"sync"
	"sync/atomic"
)

// Store loads the site configuration once and hands it out to readers.
// It moves from unloaded to loaded exactly once; a failed Load leaves it
// unloaded so Load may be called again.
type Store struct {
	env      Environ
	defaults *SiteConfiguration
	overlays []Overlay

	mu   sync.Mutex // serializes Load
	site atomic.Pointer[SiteConfiguration]
}

// Option configures a Store.
type Option func(*Store)

// WithEnv sets the environment the overlay reads from (default ProcessEnv).
func WithEnv(env Environ) Option {
	return func(s *Store) {
		s.env = env
	}
}

// WithDefaults replaces the compiled-in defaults.
func WithDefaults(site SiteConfiguration) Option {
	return func(s *Store) {
		d := site.Clone()
		s.defaults = &d
	}
}

// WithOverlays replaces DefaultOverlays.
func WithOverlays(overlays ...Overlay) Option {
	return func(s *Store) {
		s.overlays = overlays
	}
}

// NewStore creates an unloaded Store.
func NewStore(opts ...Option) *Store {
	s := &Store{
		env:      ProcessEnv,
		overlays: DefaultOverlays,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load builds the configuration from defaults and the environment overlay,
// validates it and publishes it. Once loaded, later calls return the
// published configuration without reading the environment again.
func (s *Store) Load() (SiteConfiguration, error) {
	if site := s.site.Load(); site != nil {
		return site.Clone(), nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if site := s.site.Load(); site != nil {
		return site.Clone(), nil
	}

	site, err := s.build()
	if err != nil {
		return SiteConfiguration{}, err
	}
	s.site.Store(&site)
	return site.Clone(), nil
}

func (s *Store) build() (SiteConfiguration, error) {
	var site SiteConfiguration
	if s.defaults != nil {
		site = s.defaults.Clone()
	} else {
		d, err := DefaultSite()
		if err != nil {
			return SiteConfiguration{}, err
		}
		site = d
	}
	if err := ApplyOverlays(&site, s.env, s.overlays); err != nil {
		return SiteConfiguration{}, err
	}
	site.Sidebar.compact()
	if err := Validate(site); err != nil {
		return SiteConfiguration{}, err
	}
	return site, nil
}

// Get returns a copy of the loaded configuration, or ErrNotLoaded.
// It never blocks.
func (s *Store) Get() (SiteConfiguration, error) {
	site := s.site.Load()
	if site == nil {
		return SiteConfiguration{}, ErrNotLoaded
	}
	return site.Clone(), nil
}

// Loaded reports whether a Load has succeeded.
func (s *Store) Loaded() bool {
	return s.site.Load() != nil
}
