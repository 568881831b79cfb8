package cmd

import (
	"fmt"

	"github.com/arcanaland/mushikago/internal/catalog"
	"github.com/arcanaland/mushikago/internal/config"
	"github.com/arcanaland/mushikago/internal/deck"
	"github.com/arcanaland/mushikago/internal/log"
)

// session is one CLI run over a deck URL
type session struct {
	config   *config.Config
	catalog  *catalog.Catalog
	location *deck.URLLocation
	manager  *deck.Manager
	persist  bool // Save the URL back to the state file
}

// loadCatalog picks --catalog, then the configured catalog, then the built-in one
func loadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	path := catalogFlag
	if path == "" {
		path = cfg.CatalogPath
	}
	if path == "" {
		return catalog.Default(), nil
	}
	return catalog.Load(path)
}

// openSession starts from --url, or from the remembered URL, or from the
// configured page.
func openSession() (*session, error) {
	rawURL := urlFlag
	persist := rawURL == ""

	if persist {
		state, err := config.LoadState()
		if err != nil {
			return nil, err
		}
		rawURL = state.URL
	}

	return openSessionAt(rawURL, persist)
}

// openSessionAt starts from rawURL; an empty rawURL means the configured page
func openSessionAt(rawURL string, persist bool) (*session, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	cat, err := loadCatalog(cfg)
	if err != nil {
		return nil, err
	}

	if rawURL == "" {
		rawURL = cfg.PageURL
	}
	loc, err := deck.ParseLocation(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid page URL %q: %w", rawURL, err)
	}

	s := &session{
		config:   cfg,
		catalog:  cat,
		location: loc,
		manager:  deck.NewManager(cat, loc, newTerminalNotifier(cfg.Confirm)),
		persist:  persist,
	}
	s.manager.InitializeFromLocation()
	log.Debugw("Session opened", "url", loc.String(), "cards", s.manager.Len(), "persist", persist)

	return s, nil
}

// save remembers the current URL unless the session works on --url
func (s *session) save() error {
	if !s.persist {
		return nil
	}
	return config.SaveState(&config.State{URL: s.location.String()})
}
