// Package common provides shared utilities for exporters.
package common

import (
	"fmt"
	"strings"
	"text/template"
	"unicode"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/jmylchreest/ramptone/internal/colour"
)

// TemplateFuncs returns the template functions available to every exporter template.
func TemplateFuncs() template.FuncMap {
	return template.FuncMap{
		// Format conversion.
		"hex":        hexFunc,
		"hexNoHash":  hexNoHashFunc,
		"rgb":        rgbFunc,
		"rgbSpaces":  rgbSpacesFunc,
		"oklch":      oklchFunc,
		"contrast":   colour.ContrastRatio,
		"wcag":       colour.Grade,
		"kebab":      Kebab,
		"trimPrefix": trimPrefixFunc,
		"toLower":    strings.ToLower,
		"toUpper":    strings.ToUpper,
	}
}

// hexFunc normalises a colour to "#RRGGBB".
func hexFunc(hex string) string {
	if norm, ok := colour.NormaliseHex(hex); ok {
		return norm
	}
	return hex
}

// hexNoHashFunc returns "RRGGBB".
func hexNoHashFunc(hex string) string {
	return strings.TrimPrefix(hexFunc(hex), "#")
}

// rgbFunc returns "rgb(r, g, b)".
func rgbFunc(hex string) (string, error) {
	r, g, b, err := rgb255(hex)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("rgb(%d, %d, %d)", r, g, b), nil
}

// rgbSpacesFunc returns "r g b", the form CSS colour functions take.
func rgbSpacesFunc(hex string) (string, error) {
	r, g, b, err := rgb255(hex)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d %d %d", r, g, b), nil
}

// oklchFunc returns the CSS oklch() form of a hex colour.
func oklchFunc(hex string) string {
	return colour.HexToOKLCH(hex).String()
}

func rgb255(hex string) (r, g, b uint8, err error) {
	norm, ok := colour.NormaliseHex(hex)
	if !ok {
		return 0, 0, 0, fmt.Errorf("invalid colour %q", hex)
	}
	c, err := colorful.Hex(norm)
	if err != nil {
		return 0, 0, 0, err
	}
	r, g, b = c.RGB255()
	return r, g, b, nil
}

// trimPrefixFunc has pipe-friendly argument order.
func trimPrefixFunc(prefix, s string) string {
	return strings.TrimPrefix(s, prefix)
}

// Kebab converts a camelCase token name to kebab-case:
// brandBackgroundPrimary becomes brand-background-primary.
func Kebab(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('-')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}
