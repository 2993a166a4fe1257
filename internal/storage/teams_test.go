// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"

	sq "github.com/Masterminds/squirrel"

	"github.com/brucewavesmarket/saas-starter/internal/logging"
	"github.com/brucewavesmarket/saas-starter/internal/monitoring"
	"github.com/brucewavesmarket/saas-starter/internal/tracing"
)

type fakeResult struct {
	rows int64
}

func (r fakeResult) LastInsertId() (int64, error) { return 0, nil }
func (r fakeResult) RowsAffected() (int64, error) { return r.rows, nil }

// fakeRunner satisfies the squirrel runner interfaces and reports a fixed
// number of affected rows.
type fakeRunner struct {
	rows    int64
	queries []string
}

func (r *fakeRunner) Exec(query string, args ...interface{}) (sql.Result, error) {
	r.queries = append(r.queries, query)
	return fakeResult{rows: r.rows}, nil
}

func (r *fakeRunner) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	return r.Exec(query, args...)
}

func (r *fakeRunner) Query(query string, args ...interface{}) (*sql.Rows, error) {
	return nil, errors.New("not implemented")
}

type fakeDBClient struct {
	runner *fakeRunner
}

func (c *fakeDBClient) Statement(ctx context.Context) sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar).RunWith(c.runner)
}

func (c *fakeDBClient) WithTx(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

func (c *fakeDBClient) Ping(ctx context.Context) error { return nil }
func (c *fakeDBClient) Close()                         {}

func TestDeleteTeam(t *testing.T) {
	testCases := []struct {
		name        string
		rows        int64
		expectedErr error
	}{
		{
			name: "deletes the team",
			rows: 1,
		},
		{
			name:        "unknown team",
			rows:        0,
			expectedErr: ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			runner := &fakeRunner{rows: tc.rows}
			s := NewStorage(
				&fakeDBClient{runner: runner},
				tracing.NewNoopTracer(),
				monitoring.NewNoopMonitor(""),
				logging.NewNoopLogger(),
			)

			err := s.DeleteTeam(context.Background(), 42)

			if !errors.Is(err, tc.expectedErr) {
				t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
			}

			if len(runner.queries) != 1 || !strings.HasPrefix(runner.queries[0], "DELETE FROM teams") {
				t.Fatalf("expected a single teams delete, got %v", runner.queries)
			}
		})
	}
}
