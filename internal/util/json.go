package util

import (
	"encoding/json"
	"strings"

	"github.com/tidwall/gjson"
)

// CleanJSONBlock strips a markdown code fence around a model's JSON answer.
func CleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```")
	if idx := strings.Index(text, "\n"); idx >= 0 {
		first := strings.TrimSpace(text[:idx])
		if !strings.ContainsAny(first, "{[") {
			text = text[idx+1:]
		}
	}
	if idx := strings.LastIndex(text, "```"); idx >= 0 {
		text = text[:idx]
	}
	return strings.TrimSpace(text)
}

// ParseOrDefault decodes raw into a T, returning def when raw is not valid
// JSON for T.
func ParseOrDefault[T any](raw string, def T) T {
	var out T
	if err := json.Unmarshal([]byte(CleanJSONBlock(raw)), &out); err != nil {
		return def
	}
	return out
}

// ParseObject returns raw as a gjson object, or an empty object when raw is
// not a JSON object.
func ParseObject(raw string) gjson.Result {
	cleaned := CleanJSONBlock(raw)
	if !gjson.Valid(cleaned) {
		return gjson.Parse("{}")
	}
	res := gjson.Parse(cleaned)
	if !res.IsObject() {
		return gjson.Parse("{}")
	}
	return res
}

// ArrayOrEmpty returns the elements of v when it is an array.
func ArrayOrEmpty(v gjson.Result) []gjson.Result {
	if !v.IsArray() {
		return []gjson.Result{}
	}
	return v.Array()
}

// StringOrEmpty returns v when it is a JSON string and "" otherwise.
func StringOrEmpty(v gjson.Result) string {
	if v.Type != gjson.String {
		return ""
	}
	return v.String()
}

// Stringify renders scalar values as text; objects, arrays and null become "".
func Stringify(v gjson.Result) string {
	switch v.Type {
	case gjson.String:
		return v.String()
	case gjson.Number:
		return v.Raw
	case gjson.True, gjson.False:
		return v.Raw
	default:
		return ""
	}
}
