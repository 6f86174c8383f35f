package box

import (
	"fmt"
	"strings"

	"cogentcore.org/core/base/strcase"
	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
)

// Declarations converts the style into CSS declarations in canonical order.
func (s Style) Declarations() []*css.Declaration {
	decls := make([]*css.Declaration, 0, len(s))
	for _, key := range s.Keys() {
		value := s.String(key)
		if value == "" {
			continue
		}
		decl := css.NewDeclaration()
		decl.Property = strcase.ToKebab(key)
		decl.Value = value
		decls = append(decls, decl)
	}
	return decls
}

// CSS renders the style as inline CSS declarations.
func (s Style) CSS() string {
	decls := s.Declarations()
	parts := make([]string, 0, len(decls))
	for _, decl := range decls {
		parts = append(parts, decl.String())
	}
	return strings.Join(parts, " ")
}

// ParseStyle parses CSS declarations such as "color: red; font-size: 2em"
// into a style with camelCase keys.
func ParseStyle(text string) (Style, error) {
	if strings.TrimSpace(text) == "" {
		return Style{}, nil
	}

	decls, err := parser.ParseDeclarations(text)
	if err != nil {
		return nil, fmt.Errorf("parse style: %w", err)
	}

	style := make(Style, len(decls))
	for _, decl := range decls {
		key := StyleKey(strings.ToLower(decl.Property))
		if key == "" {
			continue
		}
		style[key] = strings.TrimSpace(decl.Value)
	}
	return style, nil
}
