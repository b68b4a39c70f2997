// Package highlight colours rendered OpenSCAD programs for terminals.
package highlight

import (
	"strings"
	"unicode"

	"github.com/fatih/color"
)

type Token int

const (
	KeywordToken Token = iota
	HandleToken
	NumberToken
	StringToken
	ConstToken
	SpecialToken
	ChildrenToken
	PunctToken
)

type Palette struct {
	Default func(string, ...any) string
	Map     map[Token]func(string, ...any) string
}

func NewPalette() *Palette {
	p := &Palette{
		Default: colorDefault,
		Map: map[Token]func(string, ...any) string{
			KeywordToken:  color.RGB(196, 96, 16).SprintfFunc(),
			HandleToken:   color.RGB(128, 168, 196).SprintfFunc(),
			NumberToken:   color.RGB(128, 216, 236).SprintfFunc(),
			StringToken:   color.RGB(8, 196, 16).SprintfFunc(),
			ConstToken:    color.CyanString,
			SpecialToken:  color.RGB(168, 0, 196).SprintfFunc(),
			ChildrenToken: color.RGB(196, 168, 128).SprintfFunc(),
			PunctToken:    color.RGB(96, 96, 96).SprintfFunc(),
		},
	}
	for k, f := range p.Map {
		p.Map[k] = func(v string, _ ...any) string {
			return f(strings.ReplaceAll(v, "%", "%%"))
		}
	}
	return p
}

func colorDefault(v string, _ ...any) string { return v }

func (p *Palette) Color(t Token, s string) string {
	f := p.Map[t]
	if f == nil {
		f = p.Default
	}
	return f(s)
}

var keywords = map[string]bool{
	"module":   true,
	"function": true,
	"use":      true,
	"include":  true,
	"if":       true,
	"else":     true,
}

var consts = map[string]bool{
	"true":  true,
	"false": true,
	"undef": true,
}

// Program colours text with p. A nil p returns text unchanged.
func Program(text string, p *Palette) string {
	if p == nil {
		return text
	}
	var b strings.Builder
	rs := []rune(text)
	for i := 0; i < len(rs); {
		r := rs[i]
		j := i + 1
		switch {
		case r == '"':
			for j < len(rs) && rs[j] != '"' {
				if rs[j] == '\\' {
					j++
				}
				j++
			}
			j = min(j+1, len(rs))
			b.WriteString(p.Color(StringToken, string(rs[i:j])))
		case unicode.IsDigit(r):
			for j < len(rs) && (unicode.IsDigit(rs[j]) || rs[j] == '.') {
				j++
			}
			b.WriteString(p.Color(NumberToken, string(rs[i:j])))
		case r == '$' || r == '_' || unicode.IsLetter(r):
			for j < len(rs) && (rs[j] == '_' || unicode.IsLetter(rs[j]) || unicode.IsDigit(rs[j])) {
				j++
			}
			word := string(rs[i:j])
			b.WriteString(colorWord(p, word))
		case strings.ContainsRune("{}();=[],", r):
			b.WriteString(p.Color(PunctToken, string(r)))
		default:
			b.WriteRune(r)
		}
		i = j
	}
	return b.String()
}

func colorWord(p *Palette, w string) string {
	switch {
	case keywords[w]:
		return p.Color(KeywordToken, w)
	case consts[w]:
		return p.Color(ConstToken, w)
	case w == "children":
		return p.Color(ChildrenToken, w)
	case strings.HasPrefix(w, "$"):
		return p.Color(SpecialToken, w)
	case isHandle(w):
		return p.Color(HandleToken, w)
	}
	return w
}

func isHandle(w string) bool {
	if !strings.HasPrefix(w, "_v") || len(w) == 2 {
		return false
	}
	for _, r := range w[2:] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
