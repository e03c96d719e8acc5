package parse

import (
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
)

// ErrSyntax is returned when a line does not match the expected shape.
var ErrSyntax = errors.New("parse: syntax error")

// Normalize converts CRLF to LF and trims trailing newlines.
func Normalize(text string) string {
	return strings.TrimRight(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
}

// Blocks splits text on blank lines. Empty blocks are dropped.
func Blocks(text string) []string {
	var out []string
	for _, b := range strings.Split(Normalize(text), "\n\n") {
		if b = strings.Trim(b, "\n"); b != "" {
			out = append(out, b)
		}
	}
	return out
}

// Lines splits text into lines, skipping blank ones.
func Lines(text string) []string {
	var out []string
	for _, l := range strings.Split(Normalize(text), "\n") {
		if strings.TrimSpace(l) != "" {
			out = append(out, l)
		}
	}
	return out
}

// Ints parses whitespace-separated decimal integers.
func Ints(text string) ([]int, error) {
	fields := strings.Fields(text)
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, errors.Wrapf(ErrSyntax, "integer %q", f)
		}
		out = append(out, n)
	}
	return out, nil
}

// IntRows parses one row of integers per non-blank line.
func IntRows(text string) ([][]int, error) {
	var rows [][]int
	for i, l := range Lines(text) {
		row, err := Ints(l)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", i+1)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// LabeledList is a line of the form LABEL:item,item,...
type LabeledList struct {
	Label string   `@Item ":"`
	Items []string `@Item ("," @Item)*`
}

var labeledListParser = participle.MustBuild[LabeledList](
	participle.Lexer(lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Item", Pattern: `[^\s:,]+`},
		{Name: "Punct", Pattern: `[:,]`},
		{Name: "Whitespace", Pattern: `[ \t]+`},
	})),
	participle.Elide("Whitespace"),
)

// ParseLabeledList parses a single LABEL:item,... line.
func ParseLabeledList(line string) (*LabeledList, error) {
	ll, err := labeledListParser.ParseString("", strings.TrimSpace(line))
	if err != nil {
		return nil, errors.Wrapf(ErrSyntax, "%q: %v", line, err)
	}
	return ll, nil
}
