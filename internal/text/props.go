// Package text resolves typography props into box styles and renders text
// components through a box renderer.
package text

// Props is the loosely typed prop bag a text component receives.
type Props map[string]any

// Prop names recognized by the resolver. Shorthand names alias the long form
// next to them; the long form wins when both are set.
const (
	PropAs             = "as"
	PropStyle          = "style"
	PropFontFamily     = "fontFamily"
	PropSize           = "size"
	PropFontSize       = "fontSize"
	PropAlign          = "align"
	PropTextAlign      = "textAlign"
	PropBold           = "bold"
	PropColor          = "color"
	PropDecoration     = "decoration"
	PropTextDecoration = "textDecoration"
	PropTransform      = "transform"
	PropTextTransform  = "textTransform"
	PropItalic         = "italic"
	PropLineHeight     = "lineHeight"
)

// aliases maps each long-form prop to its shorthand.
var aliases = [...][2]string{
	{PropFontSize, PropSize},
	{PropTextAlign, PropAlign},
	{PropTextDecoration, PropDecoration},
	{PropTextTransform, PropTransform},
}

var typographyProps = map[string]bool{
	PropAs:             true,
	PropFontFamily:     true,
	PropSize:           true,
	PropFontSize:       true,
	PropAlign:          true,
	PropTextAlign:      true,
	PropBold:           true,
	PropColor:          true,
	PropDecoration:     true,
	PropTextDecoration: true,
	PropTransform:      true,
	PropTextTransform:  true,
	PropItalic:         true,
	PropLineHeight:     true,
}

// IsTypographyProp reports whether name is consumed by the resolver.
func IsTypographyProp(name string) bool {
	return typographyProps[name]
}

// Clone returns a shallow copy of p.
func (p Props) Clone() Props {
	clone := make(Props, len(p))
	for key, value := range p {
		clone[key] = value
	}
	return clone
}

// lookup returns the value for key, treating a nil value as absent.
func (p Props) lookup(key string) (any, bool) {
	value, ok := p[key]
	if !ok || value == nil {
		return nil, false
	}
	return value, true
}

// typography is the canonical form of the typography props after alias
// resolution. Nil fields were not supplied.
type typography struct {
	fontFamily     any
	color          any
	fontSize       any
	textAlign      any
	textDecoration any
	textTransform  any
	lineHeight     any
	bold           any
	italic         any
}

// normalize splits props into canonical typography fields and the remaining
// pass-through props. p is not modified.
func normalize(p Props) (typography, Props) {
	resolved := make(map[string]any, len(aliases))
	for _, pair := range aliases {
		long, short := pair[0], pair[1]
		if value, ok := p.lookup(long); ok {
			resolved[long] = value
		} else if value, ok := p.lookup(short); ok {
			resolved[long] = value
		}
	}

	t := typography{
		fontFamily:     p[PropFontFamily],
		color:          p[PropColor],
		fontSize:       resolved[PropFontSize],
		textAlign:      resolved[PropTextAlign],
		textDecoration: resolved[PropTextDecoration],
		textTransform:  resolved[PropTextTransform],
		lineHeight:     p[PropLineHeight],
		bold:           p[PropBold],
		italic:         p[PropItalic],
	}

	rest := make(Props, len(p))
	for key, value := range p {
		if typographyProps[key] {
			continue
		}
		rest[key] = value
	}

	return t, rest
}
