package geoson

import "github.com/tidwall/gjson"

// Accessors over parsed JSON values with coercion-free defaults: absent
// values and type mismatches yield zero values, never errors. Callers that
// need strictness check the value type themselves.

// stringValue returns the JSON string payload, or "" for any other type.
func stringValue(v gjson.Result) string {
	if v.Type == gjson.String {
		return v.Str
	}
	return ""
}

// numberValue returns the JSON number payload, or 0 for any other type.
// Unlike gjson's Float it never parses digits out of strings or booleans.
func numberValue(v gjson.Result) float64 {
	if v.Type == gjson.Number {
		return v.Num
	}
	return 0
}
