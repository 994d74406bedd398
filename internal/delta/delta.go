// Package delta is the comparison engine's entry point: it canonicalizes
// two JSON trees, diffs the renderings line by line and classifies the
// result into an added/removed summary.
package delta

import (
	"encoding/json"

	"github.com/mcncl/jsondelta/internal/canonical"
	"github.com/mcncl/jsondelta/internal/diff"
	"github.com/mcncl/jsondelta/internal/errors"
	"github.com/mcncl/jsondelta/internal/models"
)

// Summary is the user-facing result of one comparison. The JSON field
// names are the stable report file format and must not change; prior
// report files round-trip through this struct.
//
// TotalChanges counts changed lines of the canonical rendering, not
// semantic changes: a value edited deep in a subtree counts as however
// many rendered lines it touches.
type Summary struct {
	Added        []string `json:"added_to_json2"`
	Removed      []string `json:"removed_from_json1"`
	TotalChanges int      `json:"total_changes"`
}

// Summarize partitions an edit script into added and removed lines,
// preserving encountered order. Keep lines are ignored.
func Summarize(script diff.Script) Summary {
	// Empty slices, not nil: the report serializes them as [].
	summary := Summary{Added: []string{}, Removed: []string{}}
	for _, line := range script {
		switch line.Op {
		case diff.Insert:
			summary.Added = append(summary.Added, line.Text)
		case diff.Delete:
			summary.Removed = append(summary.Removed, line.Text)
		}
	}
	summary.TotalChanges = len(summary.Added) + len(summary.Removed)
	return summary
}

// Compare canonicalizes both trees, computes the line-level edit script
// between the renderings and returns the summarized delta. It is a pure
// function: no I/O, no shared state, identical inputs always produce an
// identical summary. If either tree fails to canonicalize the comparison
// aborts with an encoding error and no partial summary is returned.
func Compare(json1, json2 models.JSONValue) (Summary, error) {
	text1, err := canonical.Canonicalize(json1)
	if err != nil {
		return Summary{}, err
	}
	text2, err := canonical.Canonicalize(json2)
	if err != nil {
		return Summary{}, err
	}
	return Summarize(diff.Lines(text1, text2)), nil
}

// Report serializes the summary into the downloadable report document,
// indented with two spaces and terminated by a newline.
func (s Summary) Report() ([]byte, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, errors.NewOutputError("failed to serialize comparison report", err)
	}
	return append(data, '\n'), nil
}
