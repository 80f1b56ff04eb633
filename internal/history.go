package internal

import (
	"context"
	"fmt"

	"github.com/dmitrymomot/friendlyid/pkg/logger"
	"github.com/dmitrymomot/friendlyid/pkg/store"
)

// History lists every slug the record has held, in every locale, oldest first.
func (e *Engine) History(ctx context.Context, recordType string, id int64) ([]store.HistoryEntry, error) {
	if recordType == "" {
		return nil, ErrEmptyRecordType
	}
	entries, err := e.store.History(ctx, recordType, id)
	if err != nil {
		return nil, fmt.Errorf("friendlyid: list history: %w", err)
	}
	return entries, nil
}

// Forget deletes the live slugs and the history of a destroyed record,
// releasing its slugs for reuse, and drops its cached resolutions.
// Call it in the same transaction that deletes the record.
func (e *Engine) Forget(ctx context.Context, recordType string, id int64) error {
	if recordType == "" {
		return ErrEmptyRecordType
	}
	if err := e.store.Delete(ctx, recordType, id); err != nil {
		return fmt.Errorf("friendlyid: delete slugs: %w", err)
	}

	if e.cache != nil {
		if err := e.cache.ForgetRecord(ctx, recordType, id); err != nil {
			e.logger.WarnContext(ctx, "failed to drop cached slugs",
				logger.Record(recordType, id), logger.Error(err))
		}
	}
	e.logger.InfoContext(ctx, "slugs forgotten", logger.Record(recordType, id))
	return nil
}
