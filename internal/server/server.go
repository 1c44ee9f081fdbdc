// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/time/rate"

	"github.com/jeranaias/bsi-agent-tui/internal/agent"
	"github.com/jeranaias/bsi-agent-tui/internal/model"
)

// =============================================================================
// CONSTANTS
// =============================================================================

const (
	// MaxRequestSize caps the accepted request body (1 MB).
	MaxRequestSize = 1 << 20

	// shutdownGrace is how long in-flight requests get on shutdown.
	shutdownGrace = 5 * time.Second
)

// =============================================================================
// ANSWERER
// =============================================================================

// Answerer produces an answer for a question given the prior conversation.
type Answerer interface {
	Answer(ctx context.Context, question string, history []model.Message) (string, error)
}

// AnswererFunc adapts a function to the Answerer interface.
type AnswererFunc func(ctx context.Context, question string, history []model.Message) (string, error)

// Answer implements Answerer.
func (f AnswererFunc) Answer(ctx context.Context, question string, history []model.Message) (string, error) {
	return f(ctx, question, history)
}

// EchoAnswerer is the development responder: it acknowledges the question
// and reports how much history it received.
func EchoAnswerer() Answerer {
	return AnswererFunc(func(_ context.Context, question string, history []model.Message) (string, error) {
		if len(history) == 0 {
			return fmt.Sprintf("You asked: %q. This is the first message of our conversation.", question), nil
		}
		return fmt.Sprintf("You asked: %q. We have exchanged %d messages so far.", question, len(history)), nil
	})
}

// =============================================================================
// SERVER
// =============================================================================

// Server serves the exchange protocol over HTTP.
type Server struct {
	answerer Answerer
	limiter  *rate.Limiter
}

// Option configures a Server.
type Option func(*Server)

// WithAnswerer replaces the default echo responder.
func WithAnswerer(a Answerer) Option {
	return func(s *Server) { s.answerer = a }
}

// WithRateLimit caps accepted exchanges per second. Zero means unlimited.
func WithRateLimit(perSec float64) Option {
	return func(s *Server) {
		if perSec > 0 {
			s.limiter = rate.NewLimiter(rate.Limit(perSec), int(perSec)+1)
		}
	}
}

// New creates a Server with the given options.
func New(opts ...Option) *Server {
	s := &Server{answerer: EchoAnswerer()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler builds the HTTP routing for the server.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/health", s.handleHealth)
	r.Post("/ask", s.handleAsk)

	return r
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleAsk serves one question/answer exchange.
func (s *Server) handleAsk(w http.ResponseWriter, r *http.Request) {
	if s.limiter != nil && !s.limiter.Allow() {
		respondError(w, http.StatusTooManyRequests, "rate limit exceeded")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, MaxRequestSize)

	var req agent.AskRequest
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(&req); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			respondError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if req.Question == "" {
		respondError(w, http.StatusBadRequest, "question must not be empty")
		return
	}

	answer, err := s.answerer.Answer(r.Context(), req.Question, req.History)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to produce an answer")
		return
	}

	respondJSON(w, http.StatusOK, agent.AskResponse{Answer: answer})
}

// =============================================================================
// LIFECYCLE
// =============================================================================

// ListenAndServe runs the server on addr until ctx is cancelled, then shuts
// down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// =============================================================================
// RESPONSES
// =============================================================================

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}
