package augment

import (
	"context"
	"fmt"
	"strconv"

	"github.com/beakerlabs/reagent/internal/expand"
)

// AugmentedColumn is the flag column appended by Pre to mark rows that
// differ from their original due to substitution.
const AugmentedColumn = "augmented"

// Stats summarizes one augmentation run.
type Stats struct {
	RowsIn    int // input rows processed
	RowsOut   int // output rows produced
	Augmented int // output rows carrying at least one substitution
}

// Augmenter expands dataset rows through a phrase expander. Collaborators are
// read-only during augmentation; the augmenter only produces new rows.
type Augmenter struct {
	exp *expand.Expander

	// RowHook, when set, is called after each input row expands with the
	// number of output rows it produced. Used for run telemetry.
	RowHook func(row, variants int)
}

// New builds an Augmenter over the given expander.
func New(exp *expand.Expander) *Augmenter {
	return &Augmenter{exp: exp}
}

// Pre augments a comparison-pair dataset: both free-text columns expand
// independently, and each input row emits the full cross-product of (anchor
// variant × target variant). The appended flag column is the logical OR of
// the two sides' flags; all other columns copy into every expansion.
func (a *Augmenter) Pre(ctx context.Context, ds *Dataset, anchorCol, targetCol string, collapse bool) (*Dataset, Stats, error) {
	ai := ds.Column(anchorCol)
	if ai < 0 {
		return nil, Stats{}, fmt.Errorf("augment: dataset has no %q column", anchorCol)
	}
	ti := ds.Column(targetCol)
	if ti < 0 {
		return nil, Stats{}, fmt.Errorf("augment: dataset has no %q column", targetCol)
	}

	header := append(append([]string{}, ds.Header...), AugmentedColumn)
	out := &Dataset{Header: header}
	stats := Stats{RowsIn: len(ds.Rows)}

	for r, row := range ds.Rows {
		anchors, err := a.exp.Expand(ctx, row[ai], collapse)
		if err != nil {
			return nil, Stats{}, err
		}
		targets, err := a.exp.Expand(ctx, row[ti], collapse)
		if err != nil {
			return nil, Stats{}, err
		}
		a.notifyRow(r, len(anchors)*len(targets))

		for _, av := range anchors {
			for _, tv := range targets {
				augmented := av.Augmented || tv.Augmented
				next := append([]string{}, row...)
				next[ai] = av.Text
				next[ti] = tv.Text
				next = append(next, strconv.FormatBool(augmented))
				out.Rows = append(out.Rows, next)
				if augmented {
					stats.Augmented++
				}
			}
		}
	}

	stats.RowsOut = len(out.Rows)
	return out, stats, nil
}

// notifyRow fires the row hook if one is registered.
func (a *Augmenter) notifyRow(row, variants int) {
	if a.RowHook != nil {
		a.RowHook(row, variants)
	}
}

// Post augments a single pre-formatted text column, emitting one output row
// per variant. Expansion always collapses: rows that match keep only their
// substituted forms, and the augmented flag is discarded.
func (a *Augmenter) Post(ctx context.Context, ds *Dataset, textCol string) (*Dataset, Stats, error) {
	ci := ds.Column(textCol)
	if ci < 0 {
		return nil, Stats{}, fmt.Errorf("augment: dataset has no %q column", textCol)
	}

	out := &Dataset{Header: append([]string{}, ds.Header...)}
	stats := Stats{RowsIn: len(ds.Rows)}

	for r, row := range ds.Rows {
		variants, err := a.exp.Expand(ctx, row[ci], true)
		if err != nil {
			return nil, Stats{}, err
		}
		a.notifyRow(r, len(variants))
		for _, v := range variants {
			next := append([]string{}, row...)
			next[ci] = v.Text
			out.Rows = append(out.Rows, next)
			if v.Augmented {
				stats.Augmented++
			}
		}
	}

	stats.RowsOut = len(out.Rows)
	return out, stats, nil
}
