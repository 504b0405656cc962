// Package diff compares two renders of a UI tree line by line.
package diff

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	maxDiffLines    = 10000
	truncateMessage = "... (diff truncated, exceeds 10,000 lines) ..."
)

// Op classifies a diff line.
type Op int

const (
	OpEqual Op = iota
	OpDelete
	OpInsert
)

// Line is one line of a line-mode diff.
type Line struct {
	Op   Op
	Text string
}

// Stats counts the changed lines of a diff.
type Stats struct {
	Added   int
	Removed int
}

// Changed reports whether any line differs.
func (s Stats) Changed() bool { return s.Added > 0 || s.Removed > 0 }

// String renders the stats as "+a -r".
func (s Stats) String() string { return fmt.Sprintf("+%d -%d", s.Added, s.Removed) }

// Lines diffs before and after by whole lines.
func Lines(before, after string) []Line {
	dmp := diffmatchpatch.New()
	a, b, index := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), index)

	var out []Line
	for _, d := range diffs {
		op := OpEqual
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			op = OpDelete
		case diffmatchpatch.DiffInsert:
			op = OpInsert
		}
		for _, text := range splitLines(d.Text) {
			out = append(out, Line{Op: op, Text: text})
		}
	}
	return out
}

// Count returns the stats of a line diff.
func Count(lines []Line) Stats {
	var s Stats
	for _, l := range lines {
		switch l.Op {
		case OpDelete:
			s.Removed++
		case OpInsert:
			s.Added++
		}
	}
	return s
}

// Unified renders a unified diff of before and after with a single hunk
// covering both inputs. It returns "" when the inputs are identical and
// truncates output beyond 10,000 lines.
func Unified(before, after, beforeLabel, afterLabel string) string {
	if before == after {
		return ""
	}
	lines := Lines(before, after)

	var buf strings.Builder
	fmt.Fprintf(&buf, "--- %s\n", beforeLabel)
	fmt.Fprintf(&buf, "+++ %s\n", afterLabel)
	fmt.Fprintf(&buf, "@@ -1,%d +1,%d @@\n", len(splitLines(before)), len(splitLines(after)))

	written := 3
	for _, l := range lines {
		if written >= maxDiffLines {
			buf.WriteString(truncateMessage + "\n")
			break
		}
		buf.WriteString(prefix(l.Op))
		buf.WriteString(l.Text)
		buf.WriteString("\n")
		written++
	}
	return buf.String()
}

func prefix(op Op) string {
	switch op {
	case OpDelete:
		return "-"
	case OpInsert:
		return "+"
	}
	return " "
}

// splitLines splits on newlines, dropping the empty element after a
// trailing newline.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.Split(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
