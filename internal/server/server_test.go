// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/bsi-agent-tui/internal/agent"
	"github.com/jeranaias/bsi-agent-tui/internal/model"
)

func postAsk(t *testing.T, handler http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/ask", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	handler := New().Handler()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}

func TestAskEchoesQuestion(t *testing.T) {
	handler := New().Handler()

	rec := postAsk(t, handler, `{"question":"Hello","history":[]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp agent.AskResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Answer, `"Hello"`)
	assert.Contains(t, resp.Answer, "first message")
}

func TestAskMentionsHistoryLength(t *testing.T) {
	handler := New().Handler()

	history := []model.Message{
		model.NewUserMessage("Hello"),
		model.NewBotMessage("Hi"),
	}
	body, err := json.Marshal(agent.AskRequest{Question: "How are you?", History: history})
	require.NoError(t, err)

	rec := postAsk(t, handler, string(body))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp agent.AskResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Answer, "2 messages")
}

func TestAskRejectsEmptyQuestion(t *testing.T) {
	handler := New().Handler()

	rec := postAsk(t, handler, `{"question":"","history":[]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAskRejectsMalformedJSON(t *testing.T) {
	handler := New().Handler()

	rec := postAsk(t, handler, `{"question": `)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAskRejectsOversizedBody(t *testing.T) {
	handler := New().Handler()

	huge := bytes.Repeat([]byte("a"), MaxRequestSize+1024)
	body, err := json.Marshal(agent.AskRequest{Question: string(huge)})
	require.NoError(t, err)

	rec := postAsk(t, handler, string(body))
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestAskCustomAnswerer(t *testing.T) {
	handler := New(WithAnswerer(AnswererFunc(
		func(_ context.Context, q string, _ []model.Message) (string, error) {
			return "canned: " + q, nil
		},
	))).Handler()

	rec := postAsk(t, handler, `{"question":"ping","history":[]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp agent.AskResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "canned: ping", resp.Answer)
}

func TestAskAnswererFailure(t *testing.T) {
	handler := New(WithAnswerer(AnswererFunc(
		func(_ context.Context, _ string, _ []model.Message) (string, error) {
			return "", errors.New("boom")
		},
	))).Handler()

	rec := postAsk(t, handler, `{"question":"ping","history":[]}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestAskRateLimit(t *testing.T) {
	handler := New(WithRateLimit(1)).Handler()

	// Burst allowance covers the first requests, then the limiter kicks in.
	limited := false
	for i := 0; i < 10; i++ {
		rec := postAsk(t, handler, `{"question":"ping","history":[]}`)
		if rec.Code == http.StatusTooManyRequests {
			limited = true
			break
		}
	}
	assert.True(t, limited, "expected at least one rate limited response")
}

// The dev server and the client speak the same protocol end to end.
func TestClientAgainstServer(t *testing.T) {
	ts := httptest.NewServer(New().Handler())
	defer ts.Close()

	client := agent.NewClient(ts.URL + "/ask")
	answer, err := client.Ask(context.Background(), "Hello", nil)
	require.NoError(t, err)
	assert.Contains(t, answer, `"Hello"`)

	reply := client.Exchange(context.Background(), "Hello again", []model.Message{
		model.NewUserMessage("Hello"),
		model.NewBotMessage(answer),
	})
	assert.Equal(t, model.RoleBot, reply.Sender)
	assert.Contains(t, reply.Text, "2 messages")
}
