package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/woozymasta/geoson/internal/config"
)

const fieldDoc = `{
	"type": "FeatureCollection",
	"properties": {"crs": "ENU", "datum": [52.2296756, 21.0122287, 100], "heading": 0},
	"features": [{
		"type": "Feature",
		"geometry": {"type": "Point", "coordinates": [10, 20]},
		"properties": {"name": "mast"}
	}]
}`

func testContext(t *testing.T) *ServerContext {
	t.Helper()
	dir := t.TempDir()

	fieldPath := filepath.Join(dir, "field.geojson")
	require.NoError(t, os.WriteFile(fieldPath, []byte(fieldDoc), 0644))

	brokenPath := filepath.Join(dir, "broken.geojson")
	require.NoError(t, os.WriteFile(brokenPath, []byte(`{"type":`), 0644))

	return NewServerContext(&config.Config{Collections: []config.Collection{
		{Name: "field", Path: fieldPath, Aliases: []string{"f"}, CRS: "WGS84"},
		{Name: "broken", Path: brokenPath},
		{Name: "missing", Path: filepath.Join(dir, "absent.geojson")},
		{Name: "bad-crs", Path: fieldPath, CRS: "EPSG:9999"},
	}})
}

func TestNewServerContextValidation(t *testing.T) {
	ctx := testContext(t)

	// missing document and unknown default CRS are dropped at startup;
	// a registered but undecodable document only fails per request
	require.Len(t, ctx.Config.Collections, 2)
	assert.Equal(t, "broken", ctx.Config.Collections[0].Name)
	assert.Equal(t, "field", ctx.Config.Collections[1].Name)

	entry, ok := ctx.Lookup("f")
	require.True(t, ok, "alias resolves to its collection")
	assert.Equal(t, "field", entry.Name)

	_, ok = ctx.Lookup("missing")
	assert.False(t, ok)
}

func TestHandleCollectionsList(t *testing.T) {
	ctx := testContext(t)

	rec := httptest.NewRecorder()
	ctx.HandleCollectionsList(rec, httptest.NewRequest(http.MethodGet, "/api/collections", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var entries []config.Collection
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, "field", entries[1].Name)
}

func TestHandleCollectionConfiguredCRS(t *testing.T) {
	ctx := testContext(t)

	rec := httptest.NewRecorder()
	ctx.HandleCollection(rec, httptest.NewRequest(http.MethodGet, "/collections/field.geojson", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/geo+json", rec.Header().Get("Content-Type"))
	assert.NotEmpty(t, rec.Header().Get("ETag"))

	doc := gjson.ParseBytes(rec.Body.Bytes())
	assert.Equal(t, "EPSG:4326", doc.Get("properties.crs").Str, "entry default CRS applies")
	assert.Len(t, doc.Get("features").Array(), 1)
}

func TestHandleCollectionCRSOverride(t *testing.T) {
	ctx := testContext(t)

	rec := httptest.NewRecorder()
	ctx.HandleCollection(rec, httptest.NewRequest(http.MethodGet, "/collections/f.geojson?crs=ENU", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	doc := gjson.ParseBytes(rec.Body.Bytes())
	assert.Equal(t, "ENU", doc.Get("properties.crs").Str)

	pos := doc.Get("features.0.geometry.coordinates").Array()
	require.Len(t, pos, 3)
	assert.Equal(t, 10.0, pos[0].Num)
	assert.Equal(t, 20.0, pos[1].Num)
}

func TestHandleCollectionNotFound(t *testing.T) {
	ctx := testContext(t)

	for _, path := range []string{
		"/collections/unknown.geojson",
		"/collections/field",
		"/collections/.geojson",
		"/collections/a/b.geojson",
	} {
		rec := httptest.NewRecorder()
		ctx.HandleCollection(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusNotFound, rec.Code, path)
	}
}

func TestHandleCollectionUnknownCRSQuery(t *testing.T) {
	ctx := testContext(t)

	rec := httptest.NewRecorder()
	ctx.HandleCollection(rec, httptest.NewRequest(http.MethodGet, "/collections/field.geojson?crs=EPSG:3857", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleCollectionDecodeFailure(t *testing.T) {
	ctx := testContext(t)

	rec := httptest.NewRecorder()
	ctx.HandleCollection(rec, httptest.NewRequest(http.MethodGet, "/collections/broken.geojson", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestHandleCollectionETag(t *testing.T) {
	ctx := testContext(t)

	first := httptest.NewRecorder()
	ctx.HandleCollection(first, httptest.NewRequest(http.MethodGet, "/collections/field.geojson", nil))
	require.Equal(t, http.StatusOK, first.Code)
	etag := first.Header().Get("ETag")
	require.NotEmpty(t, etag)

	req := httptest.NewRequest(http.MethodGet, "/collections/field.geojson", nil)
	req.Header.Set("If-None-Match", etag)
	second := httptest.NewRecorder()
	ctx.HandleCollection(second, req)
	assert.Equal(t, http.StatusNotModified, second.Code)
	assert.Empty(t, second.Body.Bytes())

	// a different output frame is a different representation
	req = httptest.NewRequest(http.MethodGet, "/collections/field.geojson?crs=ENU", nil)
	req.Header.Set("If-None-Match", etag)
	third := httptest.NewRecorder()
	ctx.HandleCollection(third, req)
	assert.Equal(t, http.StatusOK, third.Code)
}
