// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"testing"
)

func TestDebugLogger(t *testing.T) {
	func() {
		_ = recover()
		NewLogger("DEBUG")
	}()
}

func TestInvalidLevel(t *testing.T) {
	func() {
		_ = recover()
		NewLogger("invalid")
	}()
}

func TestNoopSecurityLogger(t *testing.T) {
	logger := NewNoopLogger()

	logger.Security().AuthSuccess("subject")
	logger.Security().AuthFailure("subject", "reason")
	logger.Security().AuthzFailure("subject", "operation")
}
