// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"fmt"

	"github.com/brucewavesmarket/saas-starter/internal/kratos"
	"github.com/brucewavesmarket/saas-starter/internal/logging"
	"github.com/brucewavesmarket/saas-starter/internal/monitoring"
	"github.com/brucewavesmarket/saas-starter/internal/tracing"
)

// SessionVerifier checks Kratos session tokens on behalf of the user-facing
// API. It implements TokenVerifierInterface so the same middleware serves
// both session-token and JWT guarded surfaces.
type SessionVerifier struct {
	kratos kratos.ClientInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (v *SessionVerifier) VerifyToken(ctx context.Context, rawToken string) (string, error) {
	ctx, span := v.tracer.Start(ctx, "authentication.SessionVerifier.VerifyToken")
	defer span.End()

	identityID, err := v.kratos.GetSessionIdentityID(ctx, rawToken)
	if err != nil {
		v.logger.Errorf("Failed to check session: %v", err)
		return "", err
	}

	if identityID == "" {
		return "", fmt.Errorf("session is invalid or expired")
	}

	return identityID, nil
}

func NewSessionVerifier(kratos kratos.ClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *SessionVerifier {
	v := new(SessionVerifier)

	v.kratos = kratos
	v.tracer = tracer
	v.monitor = monitor
	v.logger = logger

	return v
}
