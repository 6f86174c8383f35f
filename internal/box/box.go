// Package box defines the layout primitive text components render into.
package box

import (
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"cogentcore.org/core/base/strcase"
)

// Style keys understood by the renderers. Keys are camelCase; CSS output
// converts them to kebab-case property names.
const (
	FontFamily     = "fontFamily"
	Color          = "color"
	LineHeight     = "lineHeight"
	FontSize       = "fontSize"
	TextAlign      = "textAlign"
	FontWeight     = "fontWeight"
	TextDecoration = "textDecoration"
	TextTransform  = "textTransform"
	FontStyle      = "fontStyle"
)

// ChildrenAttr is the attribute carrying the content of a box.
const ChildrenAttr = "children"

var styleOrder = []string{
	FontFamily,
	Color,
	LineHeight,
	FontSize,
	TextAlign,
	FontWeight,
	TextDecoration,
	TextTransform,
	FontStyle,
}

// Style maps style keys to concrete values. An absent key inherits.
type Style map[string]any

// Attrs holds the pass-through attributes of a box.
type Attrs map[string]any

// Props is everything a box receives from the component that wraps it.
type Props struct {
	As    string
	Attrs Attrs
	Style Style
}

// Children returns the box content as text.
func (p Props) Children() string {
	value, ok := p.Attrs[ChildrenAttr]
	if !ok || value == nil {
		return ""
	}
	return FormatValue(value)
}

// Renderer turns box props into output.
type Renderer interface {
	Render(props Props) (string, error)
}

// Merge returns a new style with override applied over base key by key.
func Merge(base, override Style) Style {
	merged := make(Style, len(base)+len(override))
	for key, value := range base {
		merged[key] = value
	}
	for key, value := range override {
		merged[key] = value
	}
	return merged
}

// Keys returns the style keys in canonical order: known typography keys
// first, then the rest sorted.
func (s Style) Keys() []string {
	keys := make([]string, 0, len(s))
	known := make(map[string]bool, len(styleOrder))
	for _, key := range styleOrder {
		known[key] = true
		if _, ok := s[key]; ok {
			keys = append(keys, key)
		}
	}

	extra := make([]string, 0)
	for key := range s {
		if !known[key] {
			extra = append(extra, key)
		}
	}
	sort.Strings(extra)
	return append(keys, extra...)
}

// String returns the style value for key as text, or "" when unset.
func (s Style) String(key string) string {
	value, ok := s[key]
	if !ok || value == nil {
		return ""
	}
	return FormatValue(value)
}

// FormatValue renders a scalar style or attribute value as text.
func FormatValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case fmt.Stringer:
		return v.String()
	}
	if text, ok := FormatNumber(value); ok {
		return text
	}
	return fmt.Sprint(value)
}

// Number reports whether value is a Go number of any integer or float kind,
// including named types, and returns it as a float64.
func Number(value any) (float64, bool) {
	if value == nil {
		return 0, false
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(v.Uint()), true
	case reflect.Float32, reflect.Float64:
		return v.Float(), true
	default:
		return 0, false
	}
}

// FormatNumber renders a Go number of any kind in decimal without exponent.
func FormatNumber(value any) (string, bool) {
	if value == nil {
		return "", false
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(v.Uint(), 10), true
	case reflect.Float32:
		return strconv.FormatFloat(v.Float(), 'f', -1, 32), true
	case reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'f', -1, 64), true
	default:
		return "", false
	}
}

// numericValue accepts numbers and numeric strings such as a "10" width.
func numericValue(value any) (float64, bool) {
	if text, ok := value.(string); ok {
		parsed, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
		return parsed, err == nil && !math.IsNaN(parsed)
	}
	f, ok := Number(value)
	return f, ok && !math.IsNaN(f)
}

// StyleKey converts a CSS property such as font-size to the camelCase key
// fontSize. Keys that are already camelCase are returned unchanged.
func StyleKey(name string) string {
	name = strings.TrimSpace(name)
	if !strings.Contains(name, "-") {
		return name
	}
	return strcase.ToLowerCamel(strings.ToLower(name))
}

// NormalizeStyle copies m into a style, converting CSS property names to
// camelCase keys.
func NormalizeStyle(m map[string]any) Style {
	style := make(Style, len(m))
	for key, value := range m {
		if k := StyleKey(key); k != "" {
			style[k] = value
		}
	}
	return style
}
