package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

type eventRepo struct {
	db *sql.DB
}

func (r *eventRepo) AppendOCRRequest(ctx context.Context, data OCRRequestEventData) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO ocr_events
		 (timestamp, provider, model, purpose, image_bytes, text_chars, latency_ms, success, error_message)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		time.Now().UTC().Format(time.RFC3339Nano),
		data.Provider, data.Model, data.Purpose,
		data.ImageBytes, data.TextChars, data.LatencyMs,
		boolToInt(data.Success), data.ErrorMessage,
	)
	if err != nil {
		return fmt.Errorf("append ocr event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryOCREvents(ctx context.Context, opts QueryOpts) ([]OCRRequestEvent, error) {
	q := `SELECT id, timestamp, provider, model, purpose, image_bytes, text_chars, latency_ms, success, error_message
	      FROM ocr_events ORDER BY id DESC`
	args := []any{}
	if opts.Limit > 0 {
		q += ` LIMIT ?`
		args = append(args, opts.Limit)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query ocr events: %w", err)
	}
	defer rows.Close()

	var events []OCRRequestEvent
	for rows.Next() {
		var e OCRRequestEvent
		var ts string
		var success int
		if err := rows.Scan(&e.ID, &ts, &e.Provider, &e.Model, &e.Purpose,
			&e.ImageBytes, &e.TextChars, &e.LatencyMs, &success, &e.ErrorMessage); err != nil {
			return nil, fmt.Errorf("scan ocr event: %w", err)
		}
		e.Success = success != 0
		if t, err := time.Parse(time.RFC3339Nano, ts); err == nil {
			e.Timestamp = t
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
