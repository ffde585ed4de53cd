// Package texargs extracts the arguments that follow a macro invocation in
// TeX-like markup.
package texargs

import (
	"unicode"
	"unicode/utf8"
)

// EndWithoutArguments is the end position Scan reports when no argument was
// appended. It is not the start position: callers resuming a scan must
// handle it themselves.
const EndWithoutArguments = 0

// Argument is a single macro argument.
type Argument struct {
	Text     string `json:"text"`     // inner text for groups, the token itself for bare arguments
	Required bool   `json:"required"` // false only for [bracket] groups
	Pos      int    `json:"pos"`      // byte offset of the first character, delimiter included
	End      int    `json:"end"`      // byte offset one past the last character, delimiter included
}

type scanState int

const (
	betweenArguments scanState = iota
	inGroup
)

type scanner struct {
	text     string
	required int

	state      scanState
	depth      int
	groupStart int
	openChar   byte
	closeChar  byte

	reqCount int
	lastEnd  int
	args     []Argument
}

// Scan collects the arguments of a macro whose name ends just before start.
//
// Whitespace between arguments is skipped. A backslash command, a single
// character or a {group} fills a required slot; a [group] is optional and
// never counts against required. Scanning stops once required slots are
// filled outside of a group, or at the end of text. Malformed input gives a
// partial result, never an error.
//
// The returned position is one past the last appended argument, or
// EndWithoutArguments when nothing was appended.
func Scan(text string, required, start int) ([]Argument, int) {
	if start < 0 || start > len(text) {
		return nil, EndWithoutArguments
	}

	s := &scanner{
		text:     text,
		required: required,
		lastEnd:  EndWithoutArguments,
	}
	s.run(start)
	return s.args, s.lastEnd
}

func (s *scanner) run(pos int) {
	for pos < len(s.text) {
		var next int
		var skipped bool
		switch s.state {
		case betweenArguments:
			next, skipped = s.between(pos)
		case inGroup:
			next = s.group(pos)
		}
		pos = next
		if skipped {
			continue
		}
		if s.state == betweenArguments && s.reqCount == s.required {
			return
		}
	}
}

// between handles one token outside of any group. It reports whether the
// token was whitespace.
func (s *scanner) between(pos int) (int, bool) {
	c := s.text[pos]
	switch c {
	case '\\':
		end := pos + 1
		for end < len(s.text) && isASCIILetter(s.text[end]) {
			end++
		}
		s.offerRequired(pos, end, s.text[pos:end])
		return end, false
	case '[', '{':
		s.state = inGroup
		s.depth = 1
		s.groupStart = pos
		s.openChar = c
		s.closeChar = closerFor(c)
		return pos + 1, false
	}

	r, size := utf8.DecodeRuneInString(s.text[pos:])
	if unicode.IsSpace(r) {
		return pos + size, true
	}
	s.offerRequired(pos, pos+size, s.text[pos:pos+size])
	return pos + size, false
}

// group handles one byte inside a group. Only the group's own delimiter
// pair affects depth.
func (s *scanner) group(pos int) int {
	switch s.text[pos] {
	case s.openChar:
		s.depth++
	case s.closeChar:
		s.depth--
		if s.depth == 0 {
			s.state = betweenArguments
			s.closeGroup(pos)
		}
	}
	return pos + 1
}

func (s *scanner) closeGroup(closePos int) {
	inner := s.text[s.groupStart+1 : closePos]
	if s.openChar == '[' {
		s.appendArg(Argument{Text: inner, Required: false, Pos: s.groupStart, End: closePos + 1})
		return
	}
	s.offerRequired(s.groupStart, closePos+1, inner)
}

// offerRequired is an attempt at a required slot. The token is kept only
// while slots remain; the cursor has moved past it either way.
func (s *scanner) offerRequired(pos, end int, text string) {
	if s.reqCount >= s.required {
		return
	}
	s.reqCount++
	s.appendArg(Argument{Text: text, Required: true, Pos: pos, End: end})
}

func (s *scanner) appendArg(arg Argument) {
	s.args = append(s.args, arg)
	s.lastEnd = arg.End
}

func closerFor(open byte) byte {
	if open == '[' {
		return ']'
	}
	return '}'
}

func isASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
