package tclscan

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Theme maps token kinds to colors for a renderer walking the token list.
type Theme struct {
	Name   string
	colors map[Kind]color.RGBA
}

// themeFile is the on-disk YAML shape: kind names to #rrggbb hex colors.
type themeFile struct {
	Name   string            `yaml:"name"`
	Colors map[string]string `yaml:"colors"`
}

// ColorFor returns the color assigned to k, or ok=false when the theme
// leaves k unstyled and the renderer should use its plain foreground.
func (t *Theme) ColorFor(k Kind) (c color.RGBA, ok bool) {
	c, ok = t.colors[k]
	return c, ok
}

// ParseTheme decodes a YAML theme document. Color keys are Kind names
// ("ReservedWord", "StringLiteral", ...); unknown keys are an error so
// typos in a theme file do not silently drop a style.
func ParseTheme(data []byte) (*Theme, error) {
	var file themeFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}
	t := &Theme{Name: file.Name, colors: map[Kind]color.RGBA{}}
	for name, hex := range file.Colors {
		kind, ok := kindByName(name)
		if !ok {
			return nil, fmt.Errorf("theme %q: unknown token kind %q", file.Name, name)
		}
		c, err := parseHexColor(hex)
		if err != nil {
			return nil, fmt.Errorf("theme %q: color for %s: %w", file.Name, name, err)
		}
		t.colors[kind] = c
	}
	return t, nil
}

// LoadTheme reads and parses a YAML theme file.
func LoadTheme(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseTheme(data)
}

func kindByName(name string) (Kind, bool) {
	for k := Identifier; k <= End; k++ {
		if k.String() == name {
			return k, true
		}
	}
	return 0, false
}

func parseHexColor(v string) (out color.RGBA, err error) {
	if len(v) != 7 {
		return out, errors.New("hex color must be 7 characters")
	}
	if v[0] != '#' {
		return out, errors.New("hex color must start with '#'")
	}
	var red, redError = strconv.ParseUint(v[1:3], 16, 8)
	if redError != nil {
		return out, errors.New("red component invalid")
	}
	out.R = uint8(red)
	var green, greenError = strconv.ParseUint(v[3:5], 16, 8)
	if greenError != nil {
		return out, errors.New("green component invalid")
	}
	out.G = uint8(green)
	var blue, blueError = strconv.ParseUint(v[5:7], 16, 8)
	if blueError != nil {
		return out, errors.New("blue component invalid")
	}
	out.B = uint8(blue)
	out.A = 255
	return
}

func mustParseHexColor(hex string) color.RGBA {
	c, err := parseHexColor(hex)
	if err != nil {
		panic(err)
	}
	return c
}

// DefaultTheme is the built-in palette.
func DefaultTheme() *Theme {
	return &Theme{
		Name: "Default",
		colors: map[Kind]color.RGBA{
			Identifier:              mustParseHexColor("#eedd82"),
			ReservedWord:            mustParseHexColor("#cd950c"),
			StringLiteral:           mustParseHexColor("#118a1a"),
			LineComment:             mustParseHexColor("#118a1a"),
			Separator:               mustParseHexColor("#a9a9a9"),
			Operator:                mustParseHexColor("#a9a9a9"),
			IntegerLiteral:          mustParseHexColor("#8cde94"),
			HexLiteral:              mustParseHexColor("#8cde94"),
			FloatLiteral:            mustParseHexColor("#8cde94"),
			UnterminatedStringError: mustParseHexColor("#ff0000"),
			NumberFormatError:       mustParseHexColor("#ff0000"),
			IdentifierFormatError:   mustParseHexColor("#ff0000"),
		},
	}
}
