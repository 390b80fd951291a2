// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package bibtex

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// accentMarks maps single-symbol accent commands (\'e, \"o, ...) to the
// combining character they add.
var accentMarks = map[byte]string{
	'\'': "\u0301",
	'`':  "\u0300",
	'^':  "\u0302",
	'"':  "\u0308",
	'~':  "\u0303",
	'=':  "\u0304",
	'.':  "\u0307",
}

// letterAccents are accent commands spelled with letters (\v{c}, \c c, ...).
var letterAccents = map[string]string{
	"u": "\u0306",
	"v": "\u030C",
	"H": "\u030B",
	"c": "\u0327",
	"k": "\u0328",
	"r": "\u030A",
	"d": "\u0323",
	"b": "\u0331",
}

// specialLetters are control words that stand for a single letter.
var specialLetters = map[string]string{
	"ss": "ß",
	"o":  "ø",
	"O":  "Ø",
	"ae": "æ",
	"AE": "Æ",
	"oe": "œ",
	"OE": "Œ",
	"aa": "å",
	"AA": "Å",
	"l":  "ł",
	"L":  "Ł",
	"i":  "ı",
	"j":  "ȷ",
}

const escapedSymbols = "&%$#_"

// DecodeLaTeX converts LaTeX accent and symbol escapes to Unicode and
// returns the NFC-normalized result. A brace pair that wraps a single
// escape, as in {\'e}, is consumed with it. Control words that are not
// escapes (journal macros such as \apj) are left untouched.
func DecodeLaTeX(s string) string {
	if strings.IndexByte(s, '\\') < 0 {
		return norm.NFC.String(s)
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		if s[i] == '{' && i+1 < len(s) && s[i+1] == '\\' {
			if out, n, ok := decodeCommand(s[i+1:]); ok && i+1+n < len(s) && s[i+1+n] == '}' {
				b.WriteString(out)
				i += n + 2
				continue
			}
		}
		if s[i] == '\\' {
			if out, n, ok := decodeCommand(s[i:]); ok {
				b.WriteString(out)
				i += n
				continue
			}
		}
		b.WriteByte(s[i])
		i++
	}
	return norm.NFC.String(b.String())
}

// decodeCommand decodes the escape at the start of s (s[0] == '\\') and
// returns the replacement and the number of bytes consumed.
func decodeCommand(s string) (string, int, bool) {
	if len(s) < 2 {
		return "", 0, false
	}
	c := s[1]

	if mark, ok := accentMarks[c]; ok {
		base, n, ok := accentArg(s[2:])
		if !ok {
			return "", 0, false
		}
		return base + mark, 2 + n, true
	}
	if strings.IndexByte(escapedSymbols, c) >= 0 {
		return string(c), 2, true
	}
	if !isASCIILetter(c) {
		return "", 0, false
	}

	end := 1
	for end < len(s) && isASCIILetter(s[end]) {
		end++
	}
	word := s[1:end]

	if mark, ok := letterAccents[word]; ok {
		sp := 0
		for end+sp < len(s) && s[end+sp] == ' ' {
			sp++
		}
		base, n, ok := accentArg(s[end+sp:])
		if !ok {
			return "", 0, false
		}
		return base + mark, end + sp + n, true
	}
	if letter, ok := specialLetters[word]; ok {
		// TeX swallows the space or empty group that terminates a control word.
		switch {
		case strings.HasPrefix(s[end:], "{}"):
			end += 2
		case end < len(s) && s[end] == ' ':
			end++
		}
		return letter, end, true
	}
	return "", 0, false
}

// accentArg reads the argument of an accent: a letter, {letter}, \i or {\i}.
func accentArg(s string) (string, int, bool) {
	if s == "" {
		return "", 0, false
	}
	if s[0] == '{' {
		end := strings.IndexByte(s, '}')
		if end < 0 {
			return "", 0, false
		}
		base, ok := accentBase(s[1:end])
		if !ok {
			return "", 0, false
		}
		return base, end + 1, true
	}
	if s[0] == '\\' {
		if len(s) >= 2 && (s[1] == 'i' || s[1] == 'j') && (len(s) == 2 || !isASCIILetter(s[2])) {
			return string(s[1]), 2, true
		}
		return "", 0, false
	}
	r, size := utf8.DecodeRuneInString(s)
	if !unicode.IsLetter(r) {
		return "", 0, false
	}
	return string(r), size, true
}

// accentBase validates the contents of a braced accent argument. A special
// letter such as \o is decoded first.
func accentBase(inner string) (string, bool) {
	switch inner {
	case `\i`:
		return "i", true
	case `\j`:
		return "j", true
	}
	if strings.HasPrefix(inner, `\`) {
		letter, ok := specialLetters[inner[1:]]
		return letter, ok
	}
	r, size := utf8.DecodeRuneInString(inner)
	if size == 0 || size != len(inner) || !unicode.IsLetter(r) {
		return "", false
	}
	return inner, true
}

func isASCIILetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}
