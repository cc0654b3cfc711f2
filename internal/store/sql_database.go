// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-paperless/internal/logger"
	"github.com/MKhiriev/go-paperless/migrations"
)

// Dialect names the SQL driver behind a [DB]. Values double as goose dialect
// names.
type Dialect string

const (
	DialectSQLite   Dialect = "sqlite3"
	DialectPostgres Dialect = "pgx"
)

// DB wraps a connection pool together with its dialect and error classifier.
type DB struct {
	*sql.DB
	dialect            Dialect
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// DialectFromDSN picks the driver for dsn: postgres:// and postgresql:// URLs
// go to pgx, everything else is treated as a SQLite file path.
func DialectFromDSN(dsn string) (Dialect, error) {
	dsn = strings.TrimSpace(dsn)
	switch {
	case dsn == "":
		return "", fmt.Errorf("%w: empty", ErrUnsupportedDSN)
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return DialectPostgres, nil
	case strings.Contains(dsn, "://"):
		return "", fmt.Errorf("%w: %q", ErrUnsupportedDSN, dsn)
	default:
		return DialectSQLite, nil
	}
}

// NewJournalDB connects to the journal database named by dsn and applies
// migrations.
func NewJournalDB(ctx context.Context, dsn string, log *logger.Logger) (*DB, error) {
	dialect, err := DialectFromDSN(dsn)
	if err != nil {
		return nil, err
	}

	var db *DB
	switch dialect {
	case DialectPostgres:
		db, err = NewConnectPostgres(ctx, dsn, log)
	default:
		db, err = NewConnectSQLite(ctx, dsn, log)
	}
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewJournalDB").Msg("error migrating journal database")
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// Migrate brings the schema up to date.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, string(db.dialect))
}

// Dialect reports the driver behind db.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

// builder returns a squirrel statement builder with placeholders matching the
// dialect.
func (db *DB) builder() sq.StatementBuilderType {
	if db.dialect == DialectPostgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

func (db *DB) classify(err error) ErrorClassification {
	if db.errorClassificator == nil {
		return NonRetryable
	}
	return db.errorClassificator.Classify(err)
}
