package mock

import (
	"context"

	"github.com/fwojciec/ngoscan"
)

var _ ngoscan.RecordWriter = (*RecordWriter)(nil)

// RecordWriter is a mock implementation of ngoscan.RecordWriter.
type RecordWriter struct {
	WriteRecordsFn func(ctx context.Context, records []*ngoscan.ContactRecord) (string, error)
}

func (w *RecordWriter) WriteRecords(ctx context.Context, records []*ngoscan.ContactRecord) (string, error) {
	return w.WriteRecordsFn(ctx, records)
}
