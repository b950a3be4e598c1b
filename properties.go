package geoson

import (
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

// Properties maps property names to flattened string values and keeps the
// order in which keys were first set, so documents serialize the way they
// were read.
type Properties struct {
	keys   []string
	values map[string]string
}

// Set stores value under key. Replacing an existing key keeps its position.
func (p *Properties) Set(key, value string) {
	if p.values == nil {
		p.values = make(map[string]string)
	}
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = value
}

// Get returns the value stored under key.
func (p *Properties) Get(key string) (string, bool) {
	v, ok := p.values[key]
	return v, ok
}

// Len returns the number of stored keys.
func (p *Properties) Len() int {
	return len(p.keys)
}

// Keys returns the keys in insertion order. The returned slice is shared
// and must not be modified.
func (p *Properties) Keys() []string {
	return p.keys
}

// Clone returns an independent copy of p.
func (p *Properties) Clone() Properties {
	var c Properties
	for _, k := range p.keys {
		c.Set(k, p.values[k])
	}
	return c
}

// flattenValue returns the stored form of a property value: JSON strings
// verbatim, everything else as its compact JSON text.
func flattenValue(v gjson.Result) string {
	if v.Type == gjson.String {
		return v.Str
	}
	return string(pretty.Ugly([]byte(v.Raw)))
}

// flattenProperties converts a JSON object into a Properties mapping.
// Anything other than an object flattens to an empty mapping.
func flattenProperties(obj gjson.Result) Properties {
	var p Properties
	if !obj.IsObject() {
		return p
	}
	obj.ForEach(func(key, value gjson.Result) bool {
		p.Set(key.Str, flattenValue(value))
		return true
	})
	return p
}
