package ingest

import (
	"github.com/google/uuid"

	"github.com/gyeh/datenorm/internal/model"
	"github.com/gyeh/datenorm/internal/normalize"
)

// orderRejected labels rows whose field order could not be resolved.
const orderRejected = "rejected"

// Rules is the normalization applied to every row of a file.
type Rules struct {
	Normalizer normalize.Normalizer
	DateOnly   bool
}

// ToNormalizedRow folds and normalizes one source value. Rejected values are
// still returned with Valid false. Normalized stays nil unless only the
// calendar check failed, and FieldOrder is "rejected" when Normalized is nil.
func ToNormalizedRow(row *model.SourceRow, rules Rules, batchID uuid.UUID, sourceFileID, rowNum int64) *model.NormalizedRow {
	out := &model.NormalizedRow{
		BatchID:      batchID,
		SourceFileID: sourceFileID,
		RowNumber:    rowNum,
		FieldOrder:   orderRejected,
	}
	// Copy out of the row: readers reuse their buffers between batches.
	if row.RowID != nil {
		id := *row.RowID
		out.SourceRowID = &id
	}
	if row.Value != nil {
		v := *row.Value
		out.Raw = &v
	}

	var raw string
	if row.Value != nil {
		raw = normalize.Fold(*row.Value)
	}
	if raw != "" {
		if rules.DateOnly {
			normalizeDate(out, rules.Normalizer, raw)
		} else {
			normalizeDateTime(out, rules.Normalizer, raw)
		}
	}
	if out.Normalized != nil {
		date, _, _ := normalize.SplitDateTime(raw)
		if opts, ok := rules.Normalizer.Resolve(date); ok {
			out.FieldOrder = opts.Order.String()
		}
	}

	var normalized string
	if out.Normalized != nil {
		normalized = *out.Normalized
	}
	out.RowHash = normalize.ValueHash(rowNum, raw, normalized)
	return out
}

func normalizeDateTime(out *model.NormalizedRow, n normalize.Normalizer, raw string) {
	ts, s, err := n.Parse(raw)
	if s != "" {
		out.Normalized = &s
	}
	if err == nil {
		out.Timestamp = &ts
		out.Valid = true
	}
}

func normalizeDate(out *model.NormalizedRow, n normalize.Normalizer, raw string) {
	d, ok := n.Date(raw)
	if !ok {
		return
	}
	out.Normalized = &d
	if ts := normalize.ParseDate(d); ts != nil {
		out.Timestamp = ts
		out.Valid = true
	}
}
