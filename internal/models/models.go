package models

// JSONValue is a generic type to represent any JSON value.
// After parsing, a JSONValue is one of: nil, bool, string, json.Number,
// JSONObject, or JSONArray. Trees built programmatically may also carry
// float64, int, or int64 scalars; the canonicalizer accepts those too.
type JSONValue interface{}

// JSONObject represents a JSON object, which is a map of strings to JSONValues.
// Key order carries no meaning; the canonicalizer re-sorts keys on render.
type JSONObject map[string]JSONValue

// JSONArray represents a JSON array, which is a slice of JSONValues.
// Element order is significant and is never reordered.
type JSONArray []JSONValue

// Document holds one parsed JSON document ready for comparison.
// The tree under Root is owned by the caller; the engine never mutates it.
type Document struct {
	Root JSONValue
}
