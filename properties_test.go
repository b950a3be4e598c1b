package geoson

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestFlattenValueTypes(t *testing.T) {
	obj := gjson.Parse(`{
		"str": "plain",
		"count": 3,
		"ratio": 0.50,
		"active": true,
		"empty": null,
		"nested": { "a" : [1, 2 ] }
	}`)

	assert.Equal(t, "plain", flattenValue(obj.Get("str")))
	assert.Equal(t, "3", flattenValue(obj.Get("count")))
	assert.Equal(t, "0.50", flattenValue(obj.Get("ratio")), "numbers keep their original text")
	assert.Equal(t, "true", flattenValue(obj.Get("active")))
	assert.Equal(t, "null", flattenValue(obj.Get("empty")))
	assert.Equal(t, `{"a":[1,2]}`, flattenValue(obj.Get("nested")), "compact serialization")
}

func TestFlattenPropertiesOrder(t *testing.T) {
	p := flattenProperties(gjson.Parse(`{"z": 1, "a": 2, "m": 3}`))
	assert.Equal(t, []string{"z", "a", "m"}, p.Keys())
}

func TestFlattenPropertiesNonObject(t *testing.T) {
	fromArray := flattenProperties(gjson.Parse(`[1, 2]`))
	assert.Zero(t, fromArray.Len())
	fromEmpty := flattenProperties(gjson.Result{})
	assert.Zero(t, fromEmpty.Len())
}

func TestPropertiesSetKeepsPosition(t *testing.T) {
	var p Properties
	p.Set("first", "1")
	p.Set("second", "2")
	p.Set("first", "updated")

	assert.Equal(t, []string{"first", "second"}, p.Keys())
	v, ok := p.Get("first")
	require.True(t, ok)
	assert.Equal(t, "updated", v)
}

func TestPropertiesClone(t *testing.T) {
	var p Properties
	p.Set("key", "original")

	c := p.Clone()
	c.Set("key", "changed")
	c.Set("extra", "new")

	v, _ := p.Get("key")
	assert.Equal(t, "original", v)
	assert.Equal(t, 1, p.Len())
	assert.Equal(t, 2, c.Len())
}
