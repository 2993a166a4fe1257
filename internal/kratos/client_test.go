// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package kratos

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/brucewavesmarket/saas-starter/internal/logging"
	"github.com/brucewavesmarket/saas-starter/internal/monitoring"
	"github.com/brucewavesmarket/saas-starter/internal/tracing"
)

func identityJSON(id, email string) string {
	return fmt.Sprintf(
		`{"id":%q,"schema_id":"default","schema_url":"http://kratos/schemas/default","traits":{"email":%q}}`,
		id, email,
	)
}

func TestEmailsByIdentityIDFollowsPagination(t *testing.T) {
	var server *httptest.Server
	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/admin/identities" {
			t.Errorf("unexpected path %s", r.URL.Path)
			http.NotFound(w, r)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		switch r.URL.Query().Get("page_token") {
		case "":
			w.Header().Set("Link", fmt.Sprintf(`<%s/admin/identities?page_size=250&page_token=page-2>; rel="next"`, server.URL))
			fmt.Fprintf(w, "[%s,%s]", identityJSON("id-1", "one@example.com"), identityJSON("id-2", "two@example.com"))
		case "page-2":
			fmt.Fprintf(w, "[%s]", identityJSON("id-3", "three@example.com"))
		default:
			t.Errorf("unexpected page token %q", r.URL.Query().Get("page_token"))
			fmt.Fprint(w, "[]")
		}
	}))
	defer server.Close()

	client := NewClient(
		server.URL,
		server.URL,
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor(""),
		logging.NewNoopLogger(),
	)

	emails, err := client.EmailsByIdentityID(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(emails) != 3 {
		t.Fatalf("expected all pages collected, got %d entries: %v", len(emails), emails)
	}
	if emails["id-3"] != "three@example.com" {
		t.Fatalf("expected the second page's identity, got %q", emails["id-3"])
	}
}

func TestNextPageToken(t *testing.T) {
	testCases := []struct {
		name     string
		link     string
		expected string
	}{
		{
			name:     "next link present",
			link:     `<http://kratos/admin/identities?page_size=250&page_token=tok-2>; rel="next"`,
			expected: "tok-2",
		},
		{
			name:     "first and next links",
			link:     `<http://kratos/admin/identities?page_token=>; rel="first",<http://kratos/admin/identities?page_token=tok-9>; rel="next"`,
			expected: "tok-9",
		},
		{
			name: "last page has no next link",
			link: `<http://kratos/admin/identities?page_token=>; rel="first"`,
		},
		{
			name: "no link header",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := &http.Response{Header: http.Header{}}
			if tc.link != "" {
				r.Header.Set("Link", tc.link)
			}

			if token := nextPageToken(r); token != tc.expected {
				t.Fatalf("expected token %q, got %q", tc.expected, token)
			}
		})
	}
}
