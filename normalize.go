package geoson

import "github.com/tidwall/gjson"

// normalizeDocument parses raw document bytes and returns a JSON tree whose
// root is a FeatureCollection. Feature roots are wrapped into a collection
// and bare geometry roots into a feature inside one. Synthesized wrappers
// carry no top-level properties object.
func normalizeDocument(data []byte) (gjson.Result, error) {
	if !gjson.ValidBytes(data) {
		return gjson.Result{}, &ParseError{Reason: "document is not valid JSON"}
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return gjson.Result{}, &ParseError{Reason: "root is not a JSON object"}
	}
	typ := root.Get("type")
	if typ.Type != gjson.String {
		return gjson.Result{}, &ParseError{Reason: `root has no string "type" member`}
	}

	switch typ.Str {
	case "FeatureCollection":
		return root, nil
	case "Feature":
		doc := make([]byte, 0, len(root.Raw)+48)
		doc = append(doc, `{"type":"FeatureCollection","features":[`...)
		doc = append(doc, root.Raw...)
		doc = append(doc, `]}`...)
		return gjson.ParseBytes(doc), nil
	default:
		// Anything else is treated as a bare geometry.
		doc := make([]byte, 0, len(root.Raw)+96)
		doc = append(doc, `{"type":"FeatureCollection","features":[{"type":"Feature","geometry":`...)
		doc = append(doc, root.Raw...)
		doc = append(doc, `,"properties":{}}]}`...)
		return gjson.ParseBytes(doc), nil
	}
}
