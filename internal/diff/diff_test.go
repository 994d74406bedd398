package diff

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLines_IdenticalInputs(t *testing.T) {
	a := []string{"{", `  "x": 1`, "}"}

	script := Lines(a, a)

	require.Len(t, script, len(a))
	for i, line := range script {
		assert.Equal(t, Keep, line.Op)
		assert.Equal(t, a[i], line.Text)
	}

	inserted, deleted := script.Stats()
	assert.Zero(t, inserted)
	assert.Zero(t, deleted)
}

func TestLines_BothEmpty(t *testing.T) {
	assert.Empty(t, Lines(nil, nil))
	assert.Empty(t, Lines([]string{}, []string{}))
}

func TestLines_EmptyA(t *testing.T) {
	b := []string{"one", "two", "three"}

	script := Lines(nil, b)

	require.Len(t, script, len(b))
	for i, line := range script {
		assert.Equal(t, Insert, line.Op)
		assert.Equal(t, b[i], line.Text)
	}
}

func TestLines_EmptyB(t *testing.T) {
	a := []string{"one", "two"}

	script := Lines(a, nil)

	require.Len(t, script, len(a))
	for i, line := range script {
		assert.Equal(t, Delete, line.Op)
		assert.Equal(t, a[i], line.Text)
	}
}

func TestLines_DisjointInputs(t *testing.T) {
	a := []string{"alpha", "beta"}
	b := []string{"gamma", "delta"}

	script := Lines(a, b)

	// All deletions first, then all insertions.
	expected := Script{
		{Op: Delete, Text: "alpha"},
		{Op: Delete, Text: "beta"},
		{Op: Insert, Text: "gamma"},
		{Op: Insert, Text: "delta"},
	}
	assert.Equal(t, expected, script)
}

func TestLines_SingleLineReplacement(t *testing.T) {
	a := []string{"{", `  "x": 1`, "}"}
	b := []string{"{", `  "x": 2`, "}"}

	script := Lines(a, b)

	expected := Script{
		{Op: Keep, Text: "{"},
		{Op: Delete, Text: `  "x": 1`},
		{Op: Insert, Text: `  "x": 2`},
		{Op: Keep, Text: "}"},
	}
	assert.Equal(t, expected, script)
}

func TestLines_InsertionOnly(t *testing.T) {
	a := []string{"{", "}"}
	b := []string{"{", `  "k": "v"`, "}"}

	script := Lines(a, b)

	expected := Script{
		{Op: Keep, Text: "{"},
		{Op: Insert, Text: `  "k": "v"`},
		{Op: Keep, Text: "}"},
	}
	assert.Equal(t, expected, script)
}

func TestLines_DeletionOnly(t *testing.T) {
	a := []string{"a", "b", "c", "d"}
	b := []string{"a", "d"}

	script := Lines(a, b)

	expected := Script{
		{Op: Keep, Text: "a"},
		{Op: Delete, Text: "b"},
		{Op: Delete, Text: "c"},
		{Op: Keep, Text: "d"},
	}
	assert.Equal(t, expected, script)
}

func TestLines_GroupsHunksWithDeletionsFirst(t *testing.T) {
	a := []string{"keep1", "old1", "old2", "keep2"}
	b := []string{"keep1", "new1", "new2", "keep2"}

	script := Lines(a, b)

	expected := Script{
		{Op: Keep, Text: "keep1"},
		{Op: Delete, Text: "old1"},
		{Op: Delete, Text: "old2"},
		{Op: Insert, Text: "new1"},
		{Op: Insert, Text: "new2"},
		{Op: Keep, Text: "keep2"},
	}
	assert.Equal(t, expected, script)
}

func TestLines_Minimality(t *testing.T) {
	tests := []struct {
		name  string
		a     []string
		b     []string
		edits int
	}{
		{name: "identical", a: []string{"x", "y"}, b: []string{"x", "y"}, edits: 0},
		{name: "one replace", a: []string{"x", "y"}, b: []string{"x", "z"}, edits: 2},
		{name: "one insert", a: []string{"x"}, b: []string{"x", "y"}, edits: 1},
		{name: "one delete", a: []string{"x", "y"}, b: []string{"y"}, edits: 1},
		{name: "swap of two distinct lines", a: []string{"x", "y"}, b: []string{"y", "x"}, edits: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			script := Lines(tt.a, tt.b)
			inserted, deleted := script.Stats()
			assert.Equal(t, tt.edits, inserted+deleted)
		})
	}
}

func TestLines_ReconstructsTarget(t *testing.T) {
	tests := []struct {
		name string
		a    []string
		b    []string
	}{
		{name: "both empty", a: nil, b: nil},
		{name: "disjoint", a: []string{"1", "2", "3"}, b: []string{"4", "5"}},
		{
			name: "interleaved changes",
			a:    []string{"a", "b", "c", "d", "e", "f"},
			b:    []string{"a", "x", "c", "e", "y", "f"},
		},
		{
			name: "repeated lines",
			a:    []string{"dup", "dup", "mid", "dup"},
			b:    []string{"dup", "mid", "dup", "dup"},
		},
		{
			name: "prefix and suffix overlap",
			a:    []string{"p", "p", "q", "s", "s"},
			b:    []string{"p", "p", "r", "r", "s", "s"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			script := Lines(tt.a, tt.b)

			got, err := script.Apply(tt.a)
			require.NoError(t, err)

			want := tt.b
			if want == nil {
				want = []string{}
			}
			assert.Equal(t, want, got)
		})
	}
}

func TestLines_LargeSimilarInputs(t *testing.T) {
	const size = 20000
	a := make([]string, size)
	for i := range a {
		a[i] = fmt.Sprintf("line %d", i)
	}
	b := make([]string, size)
	copy(b, a)
	b[size/3] = "changed one"
	b[2*size/3] = "changed two"

	script := Lines(a, b)

	inserted, deleted := script.Stats()
	assert.Equal(t, 2, inserted)
	assert.Equal(t, 2, deleted)

	got, err := script.Apply(a)
	require.NoError(t, err)
	assert.Equal(t, b, got)
}

func TestScript_ApplyRejectsMismatchedInput(t *testing.T) {
	a := []string{"one", "two"}
	script := Lines(a, []string{"one", "three"})

	_, err := script.Apply([]string{"one", "unexpected"})
	assert.Error(t, err)

	_, err = script.Apply([]string{"one"})
	assert.Error(t, err)
}

func TestOp_String(t *testing.T) {
	assert.Equal(t, " ", Keep.String())
	assert.Equal(t, "+", Insert.String())
	assert.Equal(t, "-", Delete.String())
}
