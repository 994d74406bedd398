// Package canonical renders a parsed JSON tree into a deterministic
// multi-line text form used as the basis for line-level comparison.
//
// The rendering rules are a fixed contract: object keys sorted in byte
// order, arrays in source order, two-space indentation, every container
// spread over multiple lines (including empty ones), and a stable scalar
// encoding. Two semantically identical documents always render to
// byte-identical text regardless of original key order.
package canonical

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/mcncl/jsondelta/internal/errors"
	"github.com/mcncl/jsondelta/internal/models"
)

// Text is the canonical rendering of a JSON value, one line per element.
type Text []string

// String joins the rendered lines with newlines, for display.
func (t Text) String() string {
	return strings.Join(t, "\n")
}

const indentStep = "  "

// Canonicalize renders value into its canonical line form. It fails with
// an encoding error if the tree contains a value that has no JSON
// representation (a non-finite float, an invalid UTF-8 string, or a type
// outside the JSON model); such values are reported, never coerced.
func Canonicalize(value models.JSONValue) (Text, error) {
	r := &renderer{}
	if err := r.value("", value, "", false); err != nil {
		return nil, err
	}
	return r.lines, nil
}

type renderer struct {
	lines Text
}

func (r *renderer) emit(indent, prefix, token string, comma bool) {
	if comma {
		token += ","
	}
	r.lines = append(r.lines, indent+prefix+token)
}

// value renders a single tree node. prefix is the `"key": ` fragment when
// the node is an object member, empty otherwise. comma marks every element
// except the last in its container.
func (r *renderer) value(prefix string, value models.JSONValue, indent string, comma bool) error {
	switch v := value.(type) {
	case nil:
		r.emit(indent, prefix, "null", comma)
	case bool:
		if v {
			r.emit(indent, prefix, "true", comma)
		} else {
			r.emit(indent, prefix, "false", comma)
		}
	case string:
		quoted, err := quoteString(v)
		if err != nil {
			return err
		}
		r.emit(indent, prefix, quoted, comma)
	case json.Number:
		token, err := numberToken(v)
		if err != nil {
			return err
		}
		r.emit(indent, prefix, token, comma)
	case float64:
		token, err := floatToken(v)
		if err != nil {
			return err
		}
		r.emit(indent, prefix, token, comma)
	case int:
		r.emit(indent, prefix, strconv.Itoa(v), comma)
	case int64:
		r.emit(indent, prefix, strconv.FormatInt(v, 10), comma)
	case models.JSONObject:
		return r.object(prefix, v, indent, comma)
	case map[string]interface{}:
		// Raw decoder maps carry interface{} elements; copy into the
		// model type so the render path is uniform.
		obj := make(models.JSONObject, len(v))
		for key, elem := range v {
			obj[key] = elem
		}
		return r.object(prefix, obj, indent, comma)
	case models.JSONArray:
		return r.array(prefix, v, indent, comma)
	case []interface{}:
		arr := make(models.JSONArray, len(v))
		for i, elem := range v {
			arr[i] = elem
		}
		return r.array(prefix, arr, indent, comma)
	default:
		return errors.NewEncodingError(
			fmt.Sprintf("cannot canonicalize value of type %T", value),
			errors.ErrUnsupportedValue,
		)
	}
	return nil
}

func (r *renderer) object(prefix string, obj map[string]models.JSONValue, indent string, comma bool) error {
	r.emit(indent, prefix, "{", false)

	keys := make([]string, 0, len(obj))
	for key := range obj {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	inner := indent + indentStep
	for i, key := range keys {
		quoted, err := quoteString(key)
		if err != nil {
			return err
		}
		if err := r.value(quoted+": ", obj[key], inner, i < len(keys)-1); err != nil {
			return err
		}
	}

	r.emit(indent, "", "}", comma)
	return nil
}

func (r *renderer) array(prefix string, arr []models.JSONValue, indent string, comma bool) error {
	r.emit(indent, prefix, "[", false)

	inner := indent + indentStep
	for i, elem := range arr {
		if err := r.value("", elem, inner, i < len(arr)-1); err != nil {
			return err
		}
	}

	r.emit(indent, "", "]", comma)
	return nil
}

// quoteString renders s as a JSON string literal with a fixed escape
// scheme: quote, backslash, and the named control escapes use their short
// forms, remaining control bytes use \u00XX, and everything else passes
// through as UTF-8. Invalid UTF-8 has no stable rendering and is rejected.
func quoteString(s string) (string, error) {
	if !utf8.ValidString(s) {
		return "", errors.NewEncodingError(
			fmt.Sprintf("string %q is not valid UTF-8", s),
			errors.ErrInvalidUTF8,
		)
	}

	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		default:
			if r < 0x20 {
				fmt.Fprintf(&b, `\u%04x`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
	return b.String(), nil
}

// numberToken validates a json.Number against the JSON number grammar and
// returns its source text verbatim. Numbers produced by the parser always
// pass; hand-built trees can carry arbitrary strings, which must not leak
// into the rendering.
func numberToken(n json.Number) (string, error) {
	s := n.String()
	if !isJSONNumber(s) {
		return "", errors.NewEncodingError(
			fmt.Sprintf("%q is not a valid JSON number", s),
			errors.ErrInvalidNumber,
		)
	}
	return s, nil
}

func floatToken(f float64) (string, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", errors.NewEncodingError(
			fmt.Sprintf("cannot render non-finite number %v", f),
			errors.ErrNonFiniteNumber,
		)
	}
	return strconv.FormatFloat(f, 'g', -1, 64), nil
}

// isJSONNumber reports whether s matches the RFC 8259 number grammar:
// -?(0|[1-9][0-9]*)(\.[0-9]+)?([eE][+-]?[0-9]+)?
func isJSONNumber(s string) bool {
	i := 0
	if i < len(s) && s[i] == '-' {
		i++
	}
	switch {
	case i < len(s) && s[i] == '0':
		i++
	case i < len(s) && s[i] >= '1' && s[i] <= '9':
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
		}
	default:
		return false
	}
	if i < len(s) && s[i] == '.' {
		i++
		if i >= len(s) || !isDigit(s[i]) {
			return false
		}
		for i < len(s) && isDigit(s[i]) {
			i++
		}
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		if i >= len(s) || !isDigit(s[i]) {
			return false
		}
		for i < len(s) && isDigit(s[i]) {
			i++
		}
	}
	return i == len(s)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
