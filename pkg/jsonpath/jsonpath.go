// Package jsonpath reads single values out of JSON documents using a
// small JSONPath subset ($.a.b, $.list[0], $['key']).
package jsonpath

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// Extract returns the value at path in doc. Strings are returned unquoted,
// objects and arrays as raw JSON, and JSON null as "null".
func Extract(doc []byte, path string) (string, error) {
	if len(doc) == 0 {
		return "", fmt.Errorf("empty JSON document")
	}
	if !gjson.ValidBytes(doc) {
		return "", fmt.Errorf("invalid JSON document")
	}
	if strings.TrimSpace(path) == "" {
		return "", fmt.Errorf("empty JSONPath expression")
	}

	result := gjson.GetBytes(doc, ToGjson(path))
	if !result.Exists() {
		return "", fmt.Errorf("path not found: %s", path)
	}

	if result.Type == gjson.Null {
		return "null", nil
	}
	if result.IsObject() || result.IsArray() {
		return result.Raw, nil
	}
	return result.String(), nil
}

// ToGjson converts a JSONPath expression to gjson path syntax.
//
//	$.operations[1]    -> operations.1
//	$['speed']         -> speed
//	$                  -> @this
func ToGjson(path string) string {
	path = strings.TrimPrefix(strings.TrimSpace(path), "$")

	var sb strings.Builder
	for i := 0; i < len(path); i++ {
		switch c := path[i]; c {
		case '[':
			end := strings.IndexByte(path[i:], ']')
			if end < 0 {
				sb.WriteString(path[i:])
				i = len(path)
				continue
			}
			key := strings.Trim(path[i+1:i+end], `'"`)
			sb.WriteByte('.')
			sb.WriteString(key)
			i += end
		default:
			sb.WriteByte(c)
		}
	}

	out := strings.TrimPrefix(sb.String(), ".")
	if out == "" {
		return "@this"
	}
	return out
}
