// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"net"
	"net/http"
	"strings"
)

// DecodeJSON parses the request body into v.
func DecodeJSON(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// ClientIP returns the caller's address for audit purposes, preferring the
// first hop in X-Forwarded-For when the service sits behind a proxy.
// Returns nil when no usable address is found.
func ClientIP(r *http.Request) *string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		parts := strings.Split(fwd, ",")
		ip := strings.TrimSpace(parts[0])
		if ip != "" {
			return &ip
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		if r.RemoteAddr != "" {
			addr := r.RemoteAddr
			return &addr
		}
		return nil
	}

	return &host
}
