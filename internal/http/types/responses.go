// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"net/http"
)

// ActionResponse is the uniform result of every mutation handler: either an
// error with the submitted fields echoed back, or a success message with
// result fields, or a redirect.
type ActionResponse struct {
	Error    string            `json:"error,omitempty"`
	Success  string            `json:"success,omitempty"`
	Redirect string            `json:"redirect,omitempty"`
	Fields   map[string]string `json:"fields,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError reports a handler failure, echoing the caller's submitted
// fields so a form can be re-rendered without losing input.
func WriteError(w http.ResponseWriter, status int, message string, fields map[string]string) {
	WriteJSON(w, status, ActionResponse{Error: message, Fields: fields})
}

func WriteSuccess(w http.ResponseWriter, message string, fields map[string]string) {
	WriteJSON(w, http.StatusOK, ActionResponse{Success: message, Fields: fields})
}

// WriteRedirect emits a See Other with the target mirrored in the body for
// non-browser clients.
func WriteRedirect(w http.ResponseWriter, location string) {
	w.Header().Set("Location", location)
	WriteJSON(w, http.StatusSeeOther, ActionResponse{Redirect: location})
}
