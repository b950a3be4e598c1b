package server

import (
	"os"
	"sort"

	"github.com/rs/zerolog/log"

	"github.com/woozymasta/geoson"
	"github.com/woozymasta/geoson/internal/config"
)

// ServerContext holds dependencies for request handlers.
type ServerContext struct {
	Config       *config.Config
	NameResolver map[string]string
	entries      map[string]config.Collection
}

// NewServerContext initializes the context from the configuration. Entries
// whose document is missing or whose default CRS is unknown are logged and
// dropped; duplicate names and aliases keep the first registration.
func NewServerContext(cfg *config.Config) *ServerContext {
	log.Info().Int("config_collections_count", len(cfg.Collections)).Msg("Initializing server context")

	resolver := make(map[string]string)
	entries := make(map[string]config.Collection)
	valid := make([]config.Collection, 0, len(cfg.Collections))

	for _, entry := range cfg.Collections {
		if entry.Name == "" {
			log.Warn().Str("path", entry.Path).Msg("Skipping collection without a name")
			continue
		}
		if _, taken := entries[entry.Name]; taken {
			log.Warn().Str("collection", entry.Name).Msg("Skipping duplicate collection name, first registration wins")
			continue
		}

		info, err := os.Stat(entry.Path)
		if err != nil || info.IsDir() {
			log.Warn().
				Str("collection", entry.Name).
				Str("path", entry.Path).
				Msg("Skipping collection: document not found")
			continue
		}

		if entry.CRS != "" {
			if _, err := geoson.ParseCRS(entry.CRS); err != nil {
				log.Warn().
					Str("collection", entry.Name).
					Str("crs", entry.CRS).
					Msg("Skipping collection: unknown default CRS")
				continue
			}
		}

		resolver[entry.Name] = entry.Name
		for _, alias := range entry.Aliases {
			if _, taken := resolver[alias]; taken {
				log.Warn().
					Str("collection", entry.Name).
					Str("alias", alias).
					Msg("Alias already registered, first registration wins")
				continue
			}
			resolver[alias] = entry.Name
		}

		log.Debug().
			Str("collection", entry.Name).
			Str("path", entry.Path).
			Str("crs", entry.CRS).
			Msg("Collection validated and added to context")

		entries[entry.Name] = entry
		valid = append(valid, entry)
	}

	sort.Slice(valid, func(i, j int) bool {
		return valid[i].Name < valid[j].Name
	})
	cfg.Collections = valid

	log.Info().
		Int("valid_collections_count", len(valid)).
		Msg("Server context initialized successfully")

	return &ServerContext{
		Config:       cfg,
		NameResolver: resolver,
		entries:      entries,
	}
}

// Lookup resolves a requested name or alias to its registered entry.
func (s *ServerContext) Lookup(name string) (config.Collection, bool) {
	real, ok := s.NameResolver[name]
	if !ok {
		return config.Collection{}, false
	}
	entry, ok := s.entries[real]
	return entry, ok
}
