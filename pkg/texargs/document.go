package texargs

import (
	"fmt"
	"log"
	"strings"
)

// Invocation is one macro call site and the arguments found for it.
type Invocation struct {
	Name       string     `json:"name"`       // macro name without the backslash
	Pos        int        `json:"pos"`        // byte offset of the backslash
	NameEnd    int        `json:"name_end"`   // byte offset just past the name; where argument scanning starts
	End        int        `json:"end"`        // resume position after the invocation
	Arity      int        `json:"arity"`      // required argument count used for the scan
	Args       []Argument `json:"args"`       // arguments in source order
	Incomplete bool       `json:"incomplete"` // fewer required arguments than Arity were found
}

// Required returns the required arguments of the invocation.
func (inv Invocation) Required() []Argument {
	return inv.filter(true)
}

// Optional returns the bracketed arguments of the invocation.
func (inv Invocation) Optional() []Argument {
	return inv.filter(false)
}

func (inv Invocation) filter(required bool) []Argument {
	var out []Argument
	for _, a := range inv.Args {
		if a.Required == required {
			out = append(out, a)
		}
	}
	return out
}

// FindOptions configures FindInvocations.
type FindOptions struct {
	// Arity supplies the required argument count per macro. Nil means DefaultArity.
	Arity ArityTable
	// IncludeUnknown scans macros missing from Arity using UnknownArity
	// instead of skipping them.
	IncludeUnknown bool
	UnknownArity   int
	// Only restricts the result to these macro names when non-empty.
	Only []string
}

// Document is the result of walking a text for macro invocations.
type Document struct {
	Invocations []Invocation `json:"invocations"`
	Warnings    []string     `json:"warnings,omitempty"`
}

// AddWarning logs a warning and stores it in the document.
func (d *Document) AddWarning(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	d.Warnings = append(d.Warnings, msg)
	log.Printf("WARN: "+format, args...)
}

// FindInvocations walks text and scans the arguments of every macro it
// recognizes. Arguments are consumed with their macro, so macros nested
// inside an argument are not reported separately.
//
// Line comments starting with % are skipped. A backslash followed by a
// non-letter (\\, \%, \{ ...) is an escaped symbol, not a macro.
func FindInvocations(text string, opts FindOptions) *Document {
	arity := opts.Arity
	if arity == nil {
		arity = DefaultArity()
	}
	only := make(map[string]bool, len(opts.Only))
	for _, name := range opts.Only {
		only[name] = true
	}

	doc := &Document{}
	pos := 0
	for pos < len(text) {
		switch text[pos] {
		case '%':
			pos = skipLineComment(text, pos)
			continue
		case '\\':
		default:
			pos++
			continue
		}

		nameEnd := pos + 1
		for nameEnd < len(text) && isASCIILetter(text[nameEnd]) {
			nameEnd++
		}
		if nameEnd == pos+1 {
			// escaped symbol; skip the backslash and the byte after it
			pos += 2
			continue
		}

		name := text[pos+1 : nameEnd]
		listed := len(only) == 0 || only[name]
		n, known := arity.Lookup(name)
		if !known {
			if !opts.IncludeUnknown {
				if listed {
					doc.AddWarning("unknown macro \\%s at offset %d, arguments not scanned", name, pos)
				}
				pos = nameEnd
				continue
			}
			n = opts.UnknownArity
		}

		args, end := Scan(text, n, nameEnd)
		if end == EndWithoutArguments || end < nameEnd {
			end = nameEnd
		}

		inv := Invocation{
			Name:    name,
			Pos:     pos,
			NameEnd: nameEnd,
			End:     end,
			Arity:   n,
			Args:    args,
		}
		inv.Incomplete = len(inv.Required()) < n

		if listed {
			if inv.Incomplete {
				doc.AddWarning("macro \\%s at offset %d expects %d required arguments, found %d", name, pos, n, len(inv.Required()))
			}
			doc.Invocations = append(doc.Invocations, inv)
		}
		pos = end
	}

	return doc
}

func skipLineComment(text string, pos int) int {
	for pos < len(text) && text[pos] != '\n' {
		pos++
	}
	return pos
}

// LineCol converts a byte offset in text to a 1-based line and column.
// Columns count code points. Offsets past the end are clamped.
func LineCol(text string, offset int) (line, col int) {
	if offset > len(text) {
		offset = len(text)
	}
	line, col = 1, 1
	for _, r := range text[:max(offset, 0)] {
		if r == '\n' {
			line++
			col = 1
			continue
		}
		col++
	}
	return line, col
}

// FormatArgs renders arguments back in source syntax: {required},
// [optional], and bare commands or characters as written.
func FormatArgs(args []Argument) string {
	var b strings.Builder
	for _, a := range args {
		switch {
		case !a.Required:
			b.WriteString("[" + a.Text + "]")
		case a.End-a.Pos == len(a.Text)+2:
			b.WriteString("{" + a.Text + "}")
		default:
			b.WriteString(a.Text)
		}
	}
	return b.String()
}

// LocateMacro returns the offsets of the nth (1-based) invocation of \name in
// text: the backslash position and the position just past the name. It reads
// text the way FindInvocations does, so escaped symbols and % comments never
// match, and \sec does not match \section. Invocations nested inside another
// macro's arguments are counted.
func LocateMacro(text, name string, n int) (pos, nameEnd int, ok bool) {
	name = strings.TrimPrefix(name, `\`)
	if name == "" || n < 1 {
		return 0, 0, false
	}

	for pos < len(text) {
		switch text[pos] {
		case '%':
			pos = skipLineComment(text, pos)
			continue
		case '\\':
		default:
			pos++
			continue
		}

		nameEnd = pos + 1
		for nameEnd < len(text) && isASCIILetter(text[nameEnd]) {
			nameEnd++
		}
		if nameEnd == pos+1 {
			pos += 2
			continue
		}
		if text[pos+1:nameEnd] == name {
			n--
			if n == 0 {
				return pos, nameEnd, true
			}
		}
		pos = nameEnd
	}
	return 0, 0, false
}
