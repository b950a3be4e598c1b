// Package server handles HTTP requests and middleware.
package server

import (
	"encoding/json"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/woozymasta/geoson"
)

const etagCap = 64

// HandleCollectionsList serves the JSON registry of available collections.
func (s *ServerContext) HandleCollectionsList(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	// Ignoring error as we cannot handle client disconnects
	_ = json.NewEncoder(w).Encode(s.Config.Collections)
}

// HandleCollection serves one registered document re-encoded in the
// requested frame.
//
// Path: /collections/{name}.geojson, optionally with ?crs=ALIAS overriding
// the entry's configured output CRS.
func (s *ServerContext) HandleCollection(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(r.URL.Path, "/collections/")
	name, ok := strings.CutSuffix(name, ".geojson")
	if !ok || name == "" || strings.Contains(name, "/") {
		http.NotFound(w, r)
		return
	}

	entry, ok := s.Lookup(name)
	if !ok {
		http.NotFound(w, r)
		return
	}

	crsName := r.URL.Query().Get("crs")
	if crsName == "" {
		crsName = entry.CRS
	}
	crs := geoson.ENU
	if crsName != "" {
		var err error
		if crs, err = geoson.ParseCRS(crsName); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	info, err := os.Stat(entry.Path)
	if err != nil || info.IsDir() {
		log.Error().Err(err).Str("collection", entry.Name).Str("path", entry.Path).Msg("Registered document disappeared")
		http.NotFound(w, r)
		return
	}

	// The output depends on the file content and the target frame, so
	// both go into the ETag.
	buf := make([]byte, 0, etagCap)
	buf = append(buf, '"')
	buf = strconv.AppendInt(buf, info.Size(), 16)
	buf = append(buf, '-')
	buf = strconv.AppendInt(buf, info.ModTime().UnixNano(), 16)
	buf = append(buf, '-')
	buf = append(buf, crs.String()...)
	buf = append(buf, '"')
	etag := string(buf)

	if match := r.Header.Get("If-None-Match"); match == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	fc, err := geoson.ReadFile(entry.Path)
	if err != nil {
		log.Error().Err(err).Str("collection", entry.Name).Str("path", entry.Path).Msg("Failed to decode document")
		http.Error(w, "failed to decode collection", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/geo+json")
	w.Header().Set("ETag", etag)
	w.Header().Set("Cache-Control", "public, no-cache")
	_, _ = w.Write(fc.Encode(crs))
}
