// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/MKhiriev/go-paperless/internal/logger"
	"github.com/jackc/pgx/v5/pgconn"
)

// NewConnectPostgres opens the journal on a PostgreSQL server through the
// pgx stdlib driver.
func NewConnectPostgres(ctx context.Context, dsn string, log *logger.Logger) (*DB, error) {
	target := redactDSN(dsn)

	conn, err := sql.Open("pgx", dsn)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Str("dsn", target).Msg("error opening journal database")
		return nil, fmt.Errorf("%w: open %s: %w", ErrJournalUnavailable, target, err)
	}

	// a CLI run records one batch; a couple of connections is plenty
	conn.SetMaxOpenConns(2)
	conn.SetConnMaxIdleTime(time.Minute)

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Str("dsn", target).Msg("error connecting journal database (ping)")
		_ = conn.Close()
		return nil, fmt.Errorf("%w: ping %s: %w", ErrJournalUnavailable, target, err)
	}
	log.Debug().Str("func", "NewConnectPostgres").Str("dsn", target).Msg("connected to journal database")

	return &DB{
		DB:                 conn,
		dialect:            DialectPostgres,
		logger:             log,
		errorClassificator: NewPostgresErrorClassifier(),
	}, nil
}

// redactDSN hides the password of a postgres:// URL for logs and errors.
func redactDSN(dsn string) string {
	u, err := url.Parse(dsn)
	if err != nil {
		return "postgres"
	}
	return u.Redacted()
}

func postgresError(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
