package compare

import (
	"go.uber.org/zap"

	"github.com/seqdiff/seqdiff/internal/seq"
)

// Result aggregates one comparison run. Exactly one shape is populated:
// reference mode fills Reference and Variants, no-reference mode fills
// MultiAlignment and Consensus. Consumers must branch on NoReference.
type Result struct {
	Type        seq.Type
	NoReference bool

	Reference *seq.Entry
	Variants  []VariantComparison

	MultiAlignment []seq.Entry
	Consensus      string
}

// Comparator runs validated sequence sets through pairwise or multi
// comparison.
type Comparator struct {
	seqType seq.Type
	logger  *zap.Logger
}

// NewComparator creates a comparator for the given sequence type.
func NewComparator(t seq.Type) *Comparator {
	return &Comparator{
		seqType: t,
		logger:  zap.NewNop(),
	}
}

// SetLogger sets the logger for progress and warning messages.
func (c *Comparator) SetLogger(l *zap.Logger) {
	c.logger = l
}

// CompareToReference treats the first entry as the reference and diffs every
// other entry against it. At least two validated entries are required.
func (c *Comparator) CompareToReference(entries []seq.Entry) (*Result, error) {
	if err := seq.ValidateAll(entries, c.seqType); err != nil {
		return nil, err
	}
	if len(entries) < 2 {
		return nil, &seq.ValidationError{
			Name:    "input",
			Message: "reference comparison needs a reference and at least one variant",
			Err:     seq.ErrInsufficientSequences,
		}
	}

	ref := entries[0]
	variants := c.compareAll(ref.Sequence, entries[1:])

	c.logger.Debug("reference comparison complete",
		zap.String("reference", ref.Header),
		zap.Int("variants", len(variants)))

	return &Result{
		Type:      c.seqType,
		Reference: &ref,
		Variants:  variants,
	}, nil
}

// MultiAlign pads every entry to a common length and derives the consensus.
func (c *Comparator) MultiAlign(entries []seq.Entry) (*Result, error) {
	if err := seq.ValidateAll(entries, c.seqType); err != nil {
		return nil, err
	}

	sequences := make([]string, len(entries))
	for i, e := range entries {
		sequences[i] = e.Sequence
	}
	aligned := MultiAlign(sequences, c.seqType)

	padded := make([]seq.Entry, len(entries))
	for i, e := range entries {
		padded[i] = seq.Entry{Header: e.Header, Sequence: aligned[i]}
	}

	c.logger.Debug("multi-sequence alignment complete",
		zap.Int("sequences", len(padded)),
		zap.Int("columns", len(aligned[0])))

	return &Result{
		Type:           c.seqType,
		NoReference:    true,
		MultiAlignment: padded,
		Consensus:      Consensus(aligned),
	}, nil
}
