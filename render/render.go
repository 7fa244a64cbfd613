// SPDX-License-Identifier: MIT

// Package render draws a matrix as a framed, right-aligned text block for
// terminals and logs.
//
// Rendering is a pure function of a Grid and a Config: nothing is printed
// unless the caller asks for it through Fprint, and the matrix core never
// depends on this package.
//
// Layout of a 2×2 grid with Indent 2:
//
//	  ┌       ┐
//	  |  1 20 |
//	  | 30  4 |
//	  └       ┘
//
// Every column is as wide as its widest formatted cell. With a Style other
// than StyleNone each line is wrapped in the matching ANSI escape and a reset.
package render

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"
)

// ErrBadIndent is returned for a negative Config.Indent.
var ErrBadIndent = errors.New("render: indent must be >= 0")

// Style selects the escape sequence wrapped around every rendered line.
type Style int

const (
	// StyleNone emits no escape codes.
	StyleNone Style = iota
	// StyleSuccess renders in green.
	StyleSuccess
	// StyleFailure renders in red.
	StyleFailure
	// StyleBold renders in bold.
	StyleBold
)

const ansiReset = "\x1b[0m"

// prefix returns the opening escape of s, or "" for StyleNone and unknown styles.
func (s Style) prefix() string {
	switch s {
	case StyleSuccess:
		return "\x1b[32m"
	case StyleFailure:
		return "\x1b[31m"
	case StyleBold:
		return "\x1b[1m"
	default:
		return ""
	}
}

// String implements fmt.Stringer.
func (s Style) String() string {
	switch s {
	case StyleNone:
		return "none"
	case StyleSuccess:
		return "success"
	case StyleFailure:
		return "failure"
	case StyleBold:
		return "bold"
	default:
		return fmt.Sprintf("Style(%d)", int(s))
	}
}

// Config controls one rendering.
type Config struct {
	Indent int   // spaces before every line
	Style  Style // escape wrapped around every line
	Plain  bool  // drop escapes regardless of Style (pipes, --no-color)
}

// WithStyle returns a copy of c using s.
func (c Config) WithStyle(s Style) Config {
	c.Style = s

	return c
}

// WithIndent returns a copy of c indented by n spaces.
func (c Config) WithIndent(n int) Config {
	c.Indent = n

	return c
}

// Grid is the read-only surface a renderer needs. *matrix.Dense[T] satisfies it.
type Grid[T any] interface {
	Rows() int
	Cols() int
	At(row, col int) (T, error)
}

// Render formats g according to cfg.
// Implementation:
//   - Stage 1: format every cell with fmt.Sprint.
//   - Stage 2: column width = widest cell of the column; total = Σwidths + cols.
//   - Stage 3: emit top border, one line per row, bottom border.
//
// Errors:
//   - ErrBadIndent for cfg.Indent < 0; any error from g.At, wrapped.
func Render[T any](g Grid[T], cfg Config) (string, error) {
	if cfg.Indent < 0 {
		return "", fmt.Errorf("Render(indent=%d): %w", cfg.Indent, ErrBadIndent)
	}

	rows, cols := g.Rows(), g.Cols()
	cells := make([][]string, rows)
	for i := range rows {
		cells[i] = make([]string, cols)
		for j := range cols {
			v, err := g.At(i, j)
			if err != nil {
				return "", fmt.Errorf("Render: %w", err)
			}
			cells[i][j] = fmt.Sprint(v)
		}
	}

	widths := lo.Times(cols, func(j int) int {
		return lo.Max(lo.Map(cells, func(row []string, _ int) int {
			return utf8.RuneCountInString(row[j])
		}))
	})
	total := lo.Sum(widths) + cols

	open, closeEsc := cfg.Style.prefix(), ansiReset
	if cfg.Plain || open == "" {
		open, closeEsc = "", ""
	}
	pad := strings.Repeat(" ", cfg.Indent)
	gap := strings.Repeat(" ", total+1)

	var sb strings.Builder
	line := func(body string) {
		sb.WriteString(open)
		sb.WriteString(pad)
		sb.WriteString(body)
		sb.WriteString(closeEsc)
		sb.WriteByte('\n')
	}

	line("┌" + gap + "┐")
	for i := range rows {
		var row strings.Builder
		row.WriteString("|")
		for j, cell := range cells[i] {
			row.WriteString(" ")
			row.WriteString(strings.Repeat(" ", widths[j]-utf8.RuneCountInString(cell)))
			row.WriteString(cell)
		}
		row.WriteString(" |")
		line(row.String())
	}
	line("└" + gap + "┘")

	return sb.String(), nil
}

// Fprint renders g and writes it to w.
func Fprint[T any](w io.Writer, g Grid[T], cfg Config) error {
	s, err := Render(g, cfg)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, s)

	return err
}
