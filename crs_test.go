package geoson

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCRSAliases(t *testing.T) {
	for alias, want := range map[string]CRS{
		"EPSG:4326": WGS,
		"WGS84":     WGS,
		"WGS":       WGS,
		"ENU":       ENU,
		"ECEF":      ENU,
	} {
		crs, err := ParseCRS(alias)
		require.NoError(t, err, alias)
		assert.Equal(t, want, crs, alias)
	}
}

func TestParseCRSUnknown(t *testing.T) {
	for _, value := range []string{"", "epsg:4326", "UTM", "EPSG:3857"} {
		_, err := ParseCRS(value)

		var unknown *UnknownCRSError
		require.ErrorAs(t, err, &unknown, value)
		assert.Equal(t, value, unknown.Value)
	}
}

func TestCRSString(t *testing.T) {
	assert.Equal(t, "ENU", ENU.String())
	assert.Equal(t, "EPSG:4326", WGS.String())
}
