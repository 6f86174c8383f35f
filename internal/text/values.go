package text

import (
	"math"
	"regexp"
	"strconv"

	"github.com/opencode-ai/textstyle/internal/box"
)

var numberPattern = regexp.MustCompile(`^-?\d+\.?\d*$`)

// numeric reports whether value is a number of any Go kind or a string that
// looks like one. text is the value as written, parsed its float form.
func numeric(value any) (text string, parsed float64, ok bool) {
	if s, isString := value.(string); isString {
		if !numberPattern.MatchString(s) {
			return "", 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return "", 0, false
		}
		return s, f, true
	}

	f, isNumber := box.Number(value)
	if !isNumber || math.IsNaN(f) || math.IsInf(f, 0) {
		return "", 0, false
	}
	text, _ = box.FormatNumber(value)
	return text, f, true
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// truthy mirrors the loose truthiness prop bags are written against: nil,
// false, zero of any number kind, NaN and the empty string are false.
func truthy(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != ""
	}
	if f, ok := box.Number(value); ok {
		return f != 0 && !math.IsNaN(f)
	}
	return true
}
