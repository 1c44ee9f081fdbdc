// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package agent implements the client side of the question-answering
// exchange protocol.
package agent

import (
	"errors"
	"fmt"

	"github.com/jeranaias/bsi-agent-tui/internal/model"
)

// AskRequest is the wire format of one exchange request. History is in
// chronological order, oldest first.
type AskRequest struct {
	Question string          `json:"question"`
	History  []model.Message `json:"history"`
}

// AskResponse is the wire format of a successful exchange response.
type AskResponse struct {
	Answer string `json:"answer"`
}

// Error variables for common exchange failures.
var (
	// ErrMissingAnswer indicates a 2xx response whose body carried no
	// usable "answer" field.
	ErrMissingAnswer = errors.New("response missing answer field")

	// ErrResponseTooLarge indicates the response body exceeded the size limit.
	ErrResponseTooLarge = errors.New("response exceeded maximum size")
)

// ServerError is a non-success status response from the backend. The body is
// kept verbatim as opaque diagnostic text.
type ServerError struct {
	Status int
	Body   string
}

// Error implements the error interface.
func (e *ServerError) Error() string {
	return fmt.Sprintf("server returned HTTP %d: %s", e.Status, e.Body)
}
