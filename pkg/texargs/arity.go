package texargs

import (
	"sort"
	"strings"
)

// ArityTable maps macro names (without the leading backslash) to the number
// of required arguments the macro takes.
type ArityTable map[string]int

// defaultArity holds the required argument counts of common LaTeX commands.
var defaultArity = ArityTable{
	// document structure
	"documentclass":   1,
	"usepackage":      1,
	"begin":           1,
	"end":             1,
	"part":            1,
	"chapter":         1,
	"section":         1,
	"subsection":      1,
	"subsubsection":   1,
	"paragraph":       1,
	"subparagraph":    1,
	"title":           1,
	"author":          1,
	"date":            1,
	"caption":         1,
	"include":         1,
	"input":           1,
	"includegraphics": 1,
	"maketitle":       0,
	"tableofcontents": 0,
	"item":            0,

	// cross references
	"label":    1,
	"ref":      1,
	"eqref":    1,
	"pageref":  1,
	"cite":     1,
	"footnote": 1,
	"url":      1,
	"href":     2,

	// text formatting
	"emph":      1,
	"textbf":    1,
	"textit":    1,
	"texttt":    1,
	"textsc":    1,
	"underline": 1,
	"mbox":      1,
	"hspace":    1,
	"vspace":    1,
	"textcolor": 2,

	// definitions
	"newcommand":     2,
	"renewcommand":   2,
	"providecommand": 2,
	"newenvironment": 3,
	"setlength":      2,
	"setcounter":     2,

	// math
	"frac":     2,
	"dfrac":    2,
	"tfrac":    2,
	"binom":    2,
	"sqrt":     1,
	"mathbf":   1,
	"mathrm":   1,
	"mathit":   1,
	"mathcal":  1,
	"mathbb":   1,
	"text":     1,
	"overline": 1,
	"hat":      1,
	"bar":      1,
	"vec":      1,
}

// DefaultArity returns a copy of the built-in arity table.
func DefaultArity() ArityTable {
	t := make(ArityTable, len(defaultArity))
	for name, n := range defaultArity {
		t[name] = n
	}
	return t
}

// Lookup returns the arity for name. A leading backslash is ignored.
func (t ArityTable) Lookup(name string) (int, bool) {
	n, ok := t[strings.TrimPrefix(name, `\`)]
	return n, ok
}

// Merge returns a new table with the entries of other layered over t.
func (t ArityTable) Merge(other ArityTable) ArityTable {
	merged := make(ArityTable, len(t)+len(other))
	for name, n := range t {
		merged[name] = n
	}
	for name, n := range other {
		merged[strings.TrimPrefix(name, `\`)] = n
	}
	return merged
}

// Names returns the macro names in sorted order.
func (t ArityTable) Names() []string {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
