// Package diff computes a minimal line-level edit script between two
// line sequences using Myers' O(ND) greedy algorithm.
package diff

import "fmt"

// Op is the kind of a single edit script operation.
type Op int

// Edit operations.
const (
	Keep Op = iota
	Insert
	Delete
)

// String returns the unified-diff marker for the operation.
func (op Op) String() string {
	switch op {
	case Insert:
		return "+"
	case Delete:
		return "-"
	default:
		return " "
	}
}

// Line is a single tagged operation in an edit script.
type Line struct {
	Op   Op
	Text string
}

// Script is an ordered edit script transforming one line sequence into
// another. Replaying it against the first sequence (keep Keep/Insert,
// skip Delete) reproduces the second exactly.
type Script []Line

// Lines computes a minimal edit script from a to b, with lines as the
// unit of comparison. Ties between equally minimal scripts are broken
// the way the classic greedy formulation does: contiguous runs are kept
// together and deletions precede insertions within a hunk, matching
// unified-diff output with zero context lines.
//
// Identical inputs yield an all-Keep script; an empty a yields all
// Insert; an empty b yields all Delete; two empty inputs yield an empty
// script.
func Lines(a, b []string) Script {
	// Trim the common prefix and suffix before running the search; for
	// near-identical documents this reduces the problem to the changed
	// region.
	prefix := 0
	for prefix < len(a) && prefix < len(b) && a[prefix] == b[prefix] {
		prefix++
	}
	suffix := 0
	for suffix < len(a)-prefix && suffix < len(b)-prefix && a[len(a)-1-suffix] == b[len(b)-1-suffix] {
		suffix++
	}

	middle := search(a[prefix:len(a)-suffix], b[prefix:len(b)-suffix])

	script := make(Script, 0, prefix+len(middle)+suffix)
	for _, line := range a[:prefix] {
		script = append(script, Line{Op: Keep, Text: line})
	}
	script = append(script, middle...)
	for _, line := range a[len(a)-suffix:] {
		script = append(script, Line{Op: Keep, Text: line})
	}
	return script
}

// search runs the forward Myers algorithm over the trimmed middle
// sections, recording the furthest-reaching x per diagonal for each edit
// distance d, then backtracks through the recorded states to recover the
// script. Time is O((N+M)·D); memory is O((N+M)·D) for the trace, which
// is small whenever the documents are similar.
func search(a, b []string) Script {
	n, m := len(a), len(b)
	switch {
	case n == 0 && m == 0:
		return nil
	case n == 0:
		script := make(Script, 0, m)
		for _, line := range b {
			script = append(script, Line{Op: Insert, Text: line})
		}
		return script
	case m == 0:
		script := make(Script, 0, n)
		for _, line := range a {
			script = append(script, Line{Op: Delete, Text: line})
		}
		return script
	}

	max := n + m
	offset := max
	v := make([]int, 2*max+1)
	trace := make([][]int, 0, 16)

	dFinal := -1
search:
	for d := 0; d <= max; d++ {
		snapshot := make([]int, len(v))
		copy(snapshot, v)
		trace = append(trace, snapshot)

		for k := -d; k <= d; k += 2 {
			var x int
			if k == -d || (k != d && v[offset+k-1] < v[offset+k+1]) {
				x = v[offset+k+1] // step down: insert b line
			} else {
				x = v[offset+k-1] + 1 // step right: delete a line
			}
			y := x - k
			for x < n && y < m && a[x] == b[y] {
				x++
				y++
			}
			v[offset+k] = x
			if x >= n && y >= m {
				dFinal = d
				break search
			}
		}
	}

	// Backtrack from (n, m) to (0, 0), emitting operations in reverse.
	rev := make(Script, 0, n+m)
	x, y := n, m
	for d := dFinal; d > 0; d-- {
		prev := trace[d]
		k := x - y

		var prevK int
		if k == -d || (k != d && prev[offset+k-1] < prev[offset+k+1]) {
			prevK = k + 1
		} else {
			prevK = k - 1
		}
		prevX := prev[offset+prevK]
		prevY := prevX - prevK

		for x > prevX && y > prevY {
			rev = append(rev, Line{Op: Keep, Text: a[x-1]})
			x--
			y--
		}
		if prevK == k+1 {
			rev = append(rev, Line{Op: Insert, Text: b[y-1]})
			y--
		} else {
			rev = append(rev, Line{Op: Delete, Text: a[x-1]})
			x--
		}
	}
	for x > 0 && y > 0 {
		rev = append(rev, Line{Op: Keep, Text: a[x-1]})
		x--
		y--
	}

	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	return rev
}

// Apply replays the script against the original line sequence, keeping
// Keep lines, inserting Insert lines and skipping Delete lines. It fails
// if the script does not line up with the input it was computed from.
func (s Script) Apply(a []string) ([]string, error) {
	out := make([]string, 0, len(s))
	i := 0
	for _, line := range s {
		switch line.Op {
		case Keep:
			if i >= len(a) || a[i] != line.Text {
				return nil, fmt.Errorf("script out of sync at line %d: kept %q", i, line.Text)
			}
			out = append(out, a[i])
			i++
		case Delete:
			if i >= len(a) || a[i] != line.Text {
				return nil, fmt.Errorf("script out of sync at line %d: deleted %q", i, line.Text)
			}
			i++
		case Insert:
			out = append(out, line.Text)
		}
	}
	if i != len(a) {
		return nil, fmt.Errorf("script consumed %d of %d input lines", i, len(a))
	}
	return out, nil
}

// Stats returns the number of inserted and deleted lines in the script.
func (s Script) Stats() (inserted, deleted int) {
	for _, line := range s {
		switch line.Op {
		case Insert:
			inserted++
		case Delete:
			deleted++
		}
	}
	return inserted, deleted
}
