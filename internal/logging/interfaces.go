// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

type LoggerInterface interface {
	Debug(args ...interface{})
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Fatalf(format string, args ...interface{})
	Security() SecurityLoggerInterface
	Sync() error
}

// SecurityLoggerInterface emits structured security audit events, separate
// from the application log stream.
type SecurityLoggerInterface interface {
	AuthSuccess(subject string)
	AuthFailure(subject, reason string)
	AuthzFailure(subject, operation string)
	SystemStartup()
	SystemShutdown()
}
