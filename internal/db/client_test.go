// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"errors"
	"testing"

	"github.com/brucewavesmarket/saas-starter/internal/logging"
)

func TestDetachTxStripsRequestTransaction(t *testing.T) {
	ctx := context.WithValue(context.Background(), lazyTxKey, &lazyTx{})

	if lazyTxFromContext(ctx) == nil {
		t.Fatal("expected context to carry a request transaction")
	}

	if lazyTxFromContext(DetachTx(ctx)) != nil {
		t.Fatal("expected detached context to carry no request transaction")
	}
}

func TestAfterCommitRunsImmediatelyWithoutTransaction(t *testing.T) {
	ran := false
	AfterCommit(context.Background(), func(ctx context.Context) {
		ran = true
	})

	if !ran {
		t.Fatal("expected hook to run immediately outside a transaction")
	}
}

func TestAfterCommitDefersUntilCommit(t *testing.T) {
	lt := &lazyTx{}
	ctx := context.WithValue(context.Background(), lazyTxKey, lt)

	ran := false
	AfterCommit(ctx, func(hookCtx context.Context) {
		ran = true

		// The hook must run on a detached context so its statements hit
		// the pool, not the already-committed transaction.
		if lazyTxFromContext(hookCtx) != nil {
			t.Error("expected hook context to be detached from the transaction")
		}
	})

	if ran {
		t.Fatal("expected hook to wait for commit")
	}

	lt.runHooks(ctx)

	if !ran {
		t.Fatal("expected hook to run after commit")
	}
}

func TestWithTxRunsHooksAfterSuccess(t *testing.T) {
	client := &DBClient{logger: logging.NewNoopLogger()}

	order := make([]string, 0, 2)
	err := client.WithTx(context.Background(), func(txCtx context.Context) error {
		AfterCommit(txCtx, func(context.Context) {
			order = append(order, "hook")
		})
		order = append(order, "fn")
		return nil
	})

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(order) != 2 || order[0] != "fn" || order[1] != "hook" {
		t.Fatalf("expected hook to run after fn returned, got %v", order)
	}
}

func TestWithTxDiscardsHooksOnError(t *testing.T) {
	client := &DBClient{logger: logging.NewNoopLogger()}

	expected := errors.New("boom")
	ran := false
	err := client.WithTx(context.Background(), func(txCtx context.Context) error {
		AfterCommit(txCtx, func(context.Context) {
			ran = true
		})
		return expected
	})

	if !errors.Is(err, expected) {
		t.Fatalf("expected %v, got %v", expected, err)
	}

	if ran {
		t.Fatal("expected hooks to be discarded when the request fails")
	}
}

func TestWithIdentity(t *testing.T) {
	if id := IdentityFromContext(context.Background()); id != "" {
		t.Fatalf("expected empty identity, got %q", id)
	}

	ctx := WithIdentity(context.Background(), "identity-1")
	if id := IdentityFromContext(ctx); id != "identity-1" {
		t.Fatalf("expected identity-1, got %q", id)
	}

	client := &DBClient{logger: logging.NewNoopLogger()}
	err := client.WithTx(ctx, func(txCtx context.Context) error {
		lt := lazyTxFromContext(txCtx)
		if lt == nil {
			t.Fatal("expected context to carry a request transaction")
		}
		if lt.identityID != "identity-1" {
			t.Fatalf("expected transaction to carry identity-1, got %q", lt.identityID)
		}
		return nil
	})

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}
