// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"

	"github.com/MKhiriev/go-paperless/internal/logger"
	"github.com/MKhiriev/go-paperless/models"
)

const uploadsTable = "uploads"

var uploadColumns = []string{
	"run_id",
	"item_index",
	"file_name",
	"title",
	"document_id",
	"error_message",
	"created_at",
}

// uploadJournal is the SQL implementation of [UploadJournal].
type uploadJournal struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

func NewUploadJournal(db *DB, logger *logger.Logger) UploadJournal {
	logger.Debug().Str("dialect", string(db.dialect)).Msg("creating upload journal")
	return &uploadJournal{
		db:     db,
		logger: logger,
		now:    time.Now,
	}
}

// Record inserts all results of a run with a single multi-row INSERT.
// Recording the same (run, item) pair twice yields [ErrUploadAlreadyRecorded].
func (j *uploadJournal) Record(ctx context.Context, runID string, results []models.UploadResult) error {
	if len(results) == 0 {
		return nil
	}
	log := logger.FromContext(ctx)

	createdAt := j.now().UTC()
	insert := j.db.builder().Insert(uploadsTable).Columns(uploadColumns...)
	for _, result := range results {
		rec := models.NewUploadRecord(runID, result)
		insert = insert.Values(rec.RunID, rec.ItemIndex, rec.FileName, rec.Title, rec.DocumentID, rec.Error, createdAt)
	}

	query, args, err := insert.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*uploadJournal.Record").Msg("error building insert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = j.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*uploadJournal.Record").
			Str("class", j.db.classify(err).String()).
			Msg("error inserting upload records")
		return j.mapError(err)
	}

	log.Debug().Str("func", "*uploadJournal.Record").Int("records", len(results)).Msg("upload results recorded")
	return nil
}

func (j *uploadJournal) List(ctx context.Context, filter models.UploadFilter) ([]models.UploadRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := j.listQuery(filter).ToSql()
	if err != nil {
		log.Err(err).Str("func", "*uploadJournal.List").Msg("error building select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := j.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*uploadJournal.List").Msg("error selecting upload records")
		return nil, j.mapError(err)
	}
	defer rows.Close()

	records := make([]models.UploadRecord, 0)
	for rows.Next() {
		var rec models.UploadRecord
		if err = rows.Scan(&rec.RunID, &rec.ItemIndex, &rec.FileName, &rec.Title, &rec.DocumentID, &rec.Error, &rec.CreatedAt); err != nil {
			log.Err(err).Str("func", "*uploadJournal.List").Msg("error scanning upload record")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		records = append(records, rec)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*uploadJournal.List").Msg("error iterating upload records")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}

func (j *uploadJournal) listQuery(filter models.UploadFilter) sq.SelectBuilder {
	q := j.db.builder().Select(uploadColumns...).From(uploadsTable)
	if filter.RunID != "" {
		q = q.Where(sq.Eq{"run_id": filter.RunID})
	}
	if filter.FailedOnly {
		q = q.Where(sq.NotEq{"error_message": ""})
	}
	q = q.OrderBy("created_at DESC", "run_id", "item_index")
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}
	return q
}

func (j *uploadJournal) mapError(err error) error {
	switch {
	case postgresError(err) == pgerrcode.UniqueViolation, isSQLiteUniqueViolation(err):
		return ErrUploadAlreadyRecorded
	case j.db.classify(err) == Retryable:
		return fmt.Errorf("%w: %w", ErrJournalUnavailable, err)
	default:
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
}
