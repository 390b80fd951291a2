// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package bibtex reads BibTeX bibliography files into raw entries.
//
// Grammar accepted by the reader:
//
//	Database ::= (Junk '@' Entry)*
//	Entry    ::= Type ('{' Body '}' | '(' Body ')')
//	Body     ::= Key ',' Fields          -- records
//	           | Name '=' Value          -- @string
//	           | balanced text           -- @comment, @preamble (ignored)
//	Fields   ::= (Name '=' Value (',' Name '=' Value)* ','?)?
//	Value    ::= Part ('#' Part)*
//	Part     ::= '{' balanced '}' | '"' text '"' | [0-9]+ | Name
//
// Field values are decoded from LaTeX escapes to NFC-normalized Unicode.
package bibtex

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pdiddy/bibdiff/pkg/types"
)

// Options controls which entries the reader keeps.
type Options struct {
	// AllowNonstandardTypes keeps entries whose type is not one of the
	// standard BibTeX types (e.g. @software, @dataset).
	AllowNonstandardTypes bool
}

// standardTypes are the entry types BibTeX's standard styles define.
var standardTypes = map[string]bool{
	"article":       true,
	"book":          true,
	"booklet":       true,
	"conference":    true,
	"inbook":        true,
	"incollection":  true,
	"inproceedings": true,
	"manual":        true,
	"mastersthesis": true,
	"misc":          true,
	"phdthesis":     true,
	"proceedings":   true,
	"techreport":    true,
	"unpublished":   true,
}

// IsStandardType reports whether typ is one of the standard BibTeX entry types.
func IsStandardType(typ string) bool {
	return standardTypes[strings.ToLower(typ)]
}

// monthMacros are predefined by every standard style.
var monthMacros = map[string]string{
	"jan": "January",
	"feb": "February",
	"mar": "March",
	"apr": "April",
	"may": "May",
	"jun": "June",
	"jul": "July",
	"aug": "August",
	"sep": "September",
	"oct": "October",
	"nov": "November",
	"dec": "December",
}

// SyntaxError reports malformed bibliography input.
type SyntaxError struct {
	File string
	Line int
	Msg  string
}

func (e *SyntaxError) Error() string {
	if e.File == "" {
		return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
	}
	return fmt.Sprintf("%s:%d: %s", e.File, e.Line, e.Msg)
}

// ParseFile opens path and parses its entries.
func ParseFile(path string, opts Options) ([]types.BibEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening bibliography: %w", err)
	}
	defer f.Close()
	return Parse(f, path, opts)
}

// Parse reads all entries from r. name is used in error messages only.
// A syntax error anywhere in the input fails the whole parse.
func Parse(r io.Reader, name string, opts Options) ([]types.BibEntry, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	p := &parser{
		src:    data,
		line:   1,
		name:   name,
		opts:   opts,
		macros: make(map[string]string),
	}
	return p.parse()
}

type parser struct {
	src    []byte
	pos    int
	line   int
	name   string
	opts   Options
	macros map[string]string
}

func (p *parser) errorf(line int, format string, args ...any) error {
	return &SyntaxError{File: p.name, Line: line, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) eof() bool { return p.pos >= len(p.src) }

// peek returns the current byte, or 0 at end of input.
func (p *parser) peek() byte {
	if p.eof() {
		return 0
	}
	return p.src[p.pos]
}

func (p *parser) next() byte {
	c := p.src[p.pos]
	p.pos++
	if c == '\n' {
		p.line++
	}
	return c
}

func (p *parser) skipSpace() {
	for !p.eof() && isSpace(p.peek()) {
		p.next()
	}
}

// skipToAt advances to the next '@' and reports whether one was found.
// Everything before it is an implicit comment.
func (p *parser) skipToAt() bool {
	for !p.eof() {
		if p.peek() == '@' {
			return true
		}
		p.next()
	}
	return false
}

func (p *parser) parse() ([]types.BibEntry, error) {
	var entries []types.BibEntry
	for p.skipToAt() {
		start := p.line
		p.next() // '@'
		p.skipSpace()
		typ := strings.ToLower(p.readName())
		p.skipSpace()

		open := p.peek()
		if open != '{' && open != '(' {
			switch {
			case typ == "comment":
				p.skipLine()
				continue
			case typ == "" || !isKnownType(typ):
				// A stray @, as in an e-mail address, is part of the
				// implicit comment between entries.
				continue
			}
			return nil, p.errorf(p.line, "expected { or ( after @%s", typ)
		}
		if typ == "" {
			return nil, p.errorf(start, "missing entry type after @")
		}
		p.next()
		closer := byte('}')
		if open == '(' {
			closer = ')'
		}

		switch typ {
		case "comment", "preamble":
			if err := p.skipBody(open, closer, start, typ); err != nil {
				return nil, err
			}
		case "string":
			if err := p.parseMacro(closer, start); err != nil {
				return nil, err
			}
		default:
			entry, err := p.parseEntry(typ, closer, start)
			if err != nil {
				return nil, err
			}
			if standardTypes[typ] || p.opts.AllowNonstandardTypes {
				entries = append(entries, entry)
			}
		}
	}
	return entries, nil
}

// isKnownType reports whether typ names a standard entry or one of the
// @string, @preamble, @comment commands.
func isKnownType(typ string) bool {
	switch typ {
	case "string", "preamble", "comment":
		return true
	}
	return standardTypes[typ]
}

func (p *parser) skipLine() {
	for !p.eof() && p.next() != '\n' {
	}
}

// skipBody consumes a balanced body whose opening delimiter was already read.
func (p *parser) skipBody(open, closer byte, start int, typ string) error {
	depth := 1
	for !p.eof() {
		switch p.next() {
		case open:
			depth++
		case closer:
			depth--
			if depth == 0 {
				return nil
			}
		}
	}
	return p.errorf(start, "unterminated @%s", typ)
}

func (p *parser) parseMacro(closer byte, start int) error {
	p.skipSpace()
	name := p.readName()
	if name == "" {
		return p.errorf(p.line, "missing name in @string")
	}
	p.skipSpace()
	if p.peek() != '=' {
		return p.errorf(p.line, "missing = after @string name %q", name)
	}
	p.next()
	value, err := p.readValue()
	if err != nil {
		return err
	}
	p.macros[strings.ToLower(name)] = value
	p.skipSpace()
	if p.peek() == ',' {
		p.next()
		p.skipSpace()
	}
	if p.eof() {
		return p.errorf(start, "unterminated @string")
	}
	if p.peek() != closer {
		return p.errorf(p.line, "expected %q to close @string", closer)
	}
	p.next()
	return nil
}

func (p *parser) parseEntry(typ string, closer byte, start int) (types.BibEntry, error) {
	entry := types.BibEntry{Type: typ, Line: start}

	p.skipSpace()
	keyStart := p.pos
	for !p.eof() {
		c := p.peek()
		if c == ',' || c == closer || isSpace(c) {
			break
		}
		p.next()
	}
	entry.Key = string(p.src[keyStart:p.pos])
	p.skipSpace()
	switch {
	case p.eof():
		return entry, p.errorf(start, "unterminated entry @%s", typ)
	case p.peek() == closer:
		p.next()
		return entry, nil
	case p.peek() != ',':
		return entry, p.errorf(p.line, "expected , after citation key %q", entry.Key)
	case entry.Key == "":
		return entry, p.errorf(p.line, "missing citation key in @%s", typ)
	}
	p.next()

	for {
		p.skipSpace()
		if p.eof() {
			return entry, p.errorf(start, "unterminated entry %q", entry.Key)
		}
		switch p.peek() {
		case closer:
			p.next()
			return entry, nil
		case ',':
			p.next()
			continue
		}

		name := p.readName()
		if name == "" {
			return entry, p.errorf(p.line, "expected field name in entry %q, found %q", entry.Key, p.peek())
		}
		p.skipSpace()
		if p.peek() != '=' {
			return entry, p.errorf(p.line, "missing = after field %q in entry %q", name, entry.Key)
		}
		p.next()
		value, err := p.readValue()
		if err != nil {
			return entry, err
		}
		entry.Set(name, DecodeLaTeX(value))

		p.skipSpace()
		if c := p.peek(); c != ',' && c != closer {
			if p.eof() {
				return entry, p.errorf(start, "unterminated entry %q", entry.Key)
			}
			return entry, p.errorf(p.line, "expected , or %q after field %q in entry %q", closer, name, entry.Key)
		}
	}
}

// readName reads an identifier: field names, entry types, and macro names.
func (p *parser) readName() string {
	start := p.pos
	for !p.eof() && isNameByte(p.peek()) {
		p.next()
	}
	return string(p.src[start:p.pos])
}

// readValue reads a possibly '#'-concatenated field value.
func (p *parser) readValue() (string, error) {
	var b strings.Builder
	for {
		p.skipSpace()
		c := p.peek()
		switch {
		case c == '{':
			s, err := p.readBraced()
			if err != nil {
				return "", err
			}
			b.WriteString(s)
		case c == '"':
			s, err := p.readQuoted()
			if err != nil {
				return "", err
			}
			b.WriteString(s)
		case isDigit(c):
			start := p.pos
			for !p.eof() && isDigit(p.peek()) {
				p.next()
			}
			b.Write(p.src[start:p.pos])
		case isNameByte(c):
			name := p.readName()
			b.WriteString(p.expand(name))
		case p.eof():
			return "", p.errorf(p.line, "unexpected end of input, expected field value")
		default:
			return "", p.errorf(p.line, "expected field value, found %q", c)
		}

		p.skipSpace()
		if p.peek() != '#' {
			return b.String(), nil
		}
		p.next()
	}
}

// expand resolves a macro name. Undefined names expand to themselves.
func (p *parser) expand(name string) string {
	key := strings.ToLower(name)
	if v, ok := p.macros[key]; ok {
		return v
	}
	if v, ok := monthMacros[key]; ok {
		return v
	}
	return name
}

// readBraced reads a {...} group and returns its contents without the
// outer braces. Inner braces are kept. \{ and \} do not change nesting;
// a \\ line break is one escape, so a brace after it still counts.
func (p *parser) readBraced() (string, error) {
	start := p.line
	p.next() // '{'
	var b strings.Builder
	depth := 1
	for !p.eof() {
		c := p.next()
		switch c {
		case '\\':
			b.WriteByte(c)
			if n := p.peek(); n == '\\' || n == '{' || n == '}' {
				b.WriteByte(p.next())
			}
			continue
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return b.String(), nil
			}
		}
		b.WriteByte(c)
	}
	return "", p.errorf(start, "unterminated {...} value")
}

// readQuoted reads a "..." value. Quotes nested inside braces or escaped
// with a backslash do not end the value.
func (p *parser) readQuoted() (string, error) {
	start := p.line
	p.next() // '"'
	var b strings.Builder
	depth := 0
	for !p.eof() {
		c := p.next()
		switch c {
		case '\\':
			b.WriteByte(c)
			if !p.eof() {
				b.WriteByte(p.next())
			}
			continue
		case '{':
			depth++
		case '}':
			if depth == 0 {
				return "", p.errorf(p.line, "unbalanced } in quoted value")
			}
			depth--
		case '"':
			if depth == 0 {
				return b.String(), nil
			}
		}
		b.WriteByte(c)
	}
	return "", p.errorf(start, "unterminated \"...\" value")
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == '\v'
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

// isNameByte excludes whitespace and the characters BibTeX reserves.
func isNameByte(c byte) bool {
	if c == 0 || isSpace(c) {
		return false
	}
	return !strings.ContainsRune("\"#%'(),={}@", rune(c))
}
