package nanojson

import (
	"strings"

	"github.com/nanofmt/nanojson/encode"
	"github.com/nanofmt/nanojson/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Diff renders a line-oriented diff of the pretty serializations of from
// and to. Unchanged lines carry a two-space prefix, removals "- " and
// insertions "+ ". Returns "" when the serializations are identical.
func Diff(from, to *ir.Node) (string, error) {
	fs, err := encode.String(from, encode.Pretty(true))
	if err != nil {
		return "", err
	}
	ts, err := encode.String(to, encode.Pretty(true))
	if err != nil {
		return "", err
	}
	if fs == ts {
		return "", nil
	}

	diffCfg := diffpatch.New()
	fRunes, tRunes, lines := diffCfg.DiffLinesToRunes(fs+"\n", ts+"\n")
	diffs := diffCfg.DiffMainRunes(fRunes, tRunes, false)
	diffs = diffCfg.DiffCharsToLines(diffs, lines)

	var b strings.Builder
	for i := range diffs {
		diff := &diffs[i]
		var prefix string
		switch diff.Type {
		case diffpatch.DiffDelete:
			prefix = "- "
		case diffpatch.DiffInsert:
			prefix = "+ "
		case diffpatch.DiffEqual:
			prefix = "  "
		}
		for _, line := range strings.SplitAfter(diff.Text, "\n") {
			if line == "" {
				continue
			}
			b.WriteString(prefix)
			b.WriteString(line)
		}
	}
	return b.String(), nil
}
