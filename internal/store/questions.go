package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/abhisek/snapstudy/internal/question"
)

// questionCollection is the fixed collection name the question list is
// stored under.
const questionCollection = "studyQuestions"

type questionRepo struct {
	db *sql.DB
}

func (r *questionRepo) Load(ctx context.Context) ([]question.SavedQuestion, error) {
	var payload string
	err := r.db.QueryRowContext(ctx,
		`SELECT payload FROM collections WHERE name = ?`, questionCollection,
	).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load collection %q: %w", questionCollection, err)
	}

	var list []question.SavedQuestion
	if err := json.Unmarshal([]byte(payload), &list); err != nil {
		return nil, fmt.Errorf("decode collection %q: %w", questionCollection, err)
	}
	return list, nil
}

func (r *questionRepo) SaveAll(ctx context.Context, list []question.SavedQuestion) error {
	if list == nil {
		list = []question.SavedQuestion{}
	}
	payload, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("encode collection %q: %w", questionCollection, err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO collections (name, payload) VALUES (?, ?)
		 ON CONFLICT(name) DO UPDATE SET payload = excluded.payload`,
		questionCollection, string(payload),
	)
	if err != nil {
		return fmt.Errorf("save collection %q: %w", questionCollection, err)
	}
	return nil
}

func (r *questionRepo) Add(ctx context.Context, q *question.SavedQuestion) error {
	list, err := r.Load(ctx)
	if err != nil {
		return err
	}

	// IDs are creation-time millis; keep them strictly decreasing down the
	// newest-first list even when two saves land in the same millisecond.
	if len(list) > 0 && q.ID <= list[0].ID {
		q.ID = list[0].ID + 1
	}

	list = append([]question.SavedQuestion{*q}, list...)
	return r.SaveAll(ctx, list)
}

func (r *questionRepo) Remove(ctx context.Context, id int64) (bool, error) {
	list, err := r.Load(ctx)
	if err != nil {
		return false, err
	}

	kept := list[:0]
	removed := false
	for _, q := range list {
		if q.ID == id {
			removed = true
			continue
		}
		kept = append(kept, q)
	}
	if !removed {
		return false, nil
	}
	return true, r.SaveAll(ctx, kept)
}
