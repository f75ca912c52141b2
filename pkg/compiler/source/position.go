// Package source translates absolute byte offsets reported by the lexer
// into line/column positions and terminal-friendly snippets. The lexer
// itself only ever reports offsets; this sits on top of it.
package source

import (
	"fmt"
	"sort"
	"strings"
)

// Position is a 1-based line/column location in a source file.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// File is an immutable view of one source text with precomputed line
// starts for offset translation.
type File struct {
	name  string
	src   string
	lines []int // byte offset of the first character of each line
}

// NewFile scans src once and records where each line begins.
func NewFile(name, src string) *File {
	lines := []int{0}
	for i := 0; i < len(src); i++ {
		if src[i] == '\n' {
			lines = append(lines, i+1)
		}
	}
	return &File{name: name, src: src, lines: lines}
}

func (f *File) Name() string { return f.name }

// Position translates a 0-based byte offset into a line/column pair.
// Offsets past the end of the source clamp to just after the last
// character, which is where unterminated-literal errors point.
func (f *File) Position(offset int) Position {
	if offset < 0 {
		offset = 0
	}
	if offset > len(f.src) {
		offset = len(f.src)
	}
	line := sort.Search(len(f.lines), func(i int) bool {
		return f.lines[i] > offset
	}) - 1
	return Position{Line: line + 1, Column: offset - f.lines[line] + 1}
}

// Snippet returns the source line containing offset with a caret marking
// the column, for diagnostics. Plain text, no color codes.
func (f *File) Snippet(offset int) string {
	pos := f.Position(offset)
	start := f.lines[pos.Line-1]
	end := len(f.src)
	if pos.Line < len(f.lines) {
		end = f.lines[pos.Line]
	}
	line := strings.TrimRight(f.src[start:end], "\r\n")

	var b strings.Builder
	fmt.Fprintf(&b, "%4d | %s\n", pos.Line, line)
	fmt.Fprintf(&b, "     | %s^", strings.Repeat(" ", pos.Column-1))
	return b.String()
}
