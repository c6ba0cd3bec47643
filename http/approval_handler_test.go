package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loan-approval/approval"
	"loan-approval/domain"
	"loan-approval/repository"
	"loan-approval/service"
)

func newTestHandler() *ApprovalHandler {
	svc := service.NewApprovalService(
		approval.DefaultChain(),
		repository.NewDecisionRepositoryMemory(0),
		repository.NewMockCache(),
		nil,
		service.NewNoopLogger(),
	)
	return NewApprovalHandler(svc)
}

func TestApproveHandler_OK(t *testing.T) {
	handler := newTestHandler()

	body := []byte(`{
		"amount": 7500,
		"customerName": "Petr",
		"purpose": "Car purchase"
	}`)

	req := httptest.NewRequest(http.MethodPost, "/loan/approve", bytes.NewBuffer(body))
	w := httptest.NewRecorder()

	handler.Approve(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var result domain.ApprovalResult
	require.NoError(t, json.NewDecoder(w.Body).Decode(&result))
	assert.Equal(t, domain.DecisionApproved, result.Decision)
	assert.Equal(t, "senior", result.Stage)
	assert.Equal(t, 3, result.Hops)
}

func TestApproveHandler_MethodNotAllowed(t *testing.T) {
	handler := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/loan/approve", nil)
	w := httptest.NewRecorder()

	handler.Approve(w, req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestApproveHandler_BadRequest(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{invalid-json}`},
		{"negative amount", `{"amount": -10, "customerName": "x", "purpose": "y"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := newTestHandler()
			req := httptest.NewRequest(http.MethodPost, "/loan/approve", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			handler.Approve(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestListStages(t *testing.T) {
	handler := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/loan/stages", nil)
	w := httptest.NewRecorder()
	handler.ListStages(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var views []StageView
	require.NoError(t, json.NewDecoder(w.Body).Decode(&views))
	require.Len(t, views, 4)
	assert.Equal(t, "junior", views[0].Name)
	require.NotNil(t, views[0].Max)
	assert.Equal(t, 1000.0, *views[0].Max)
	assert.Equal(t, 10000.0, views[3].Min)
	assert.Nil(t, views[3].Max)
}

func TestRouter_DecisionsAfterApprove(t *testing.T) {
	limiter := NewRateLimiter(10, time.Minute)
	defer limiter.Stop()
	router := NewRouter(newTestHandler(), limiter)

	for _, amount := range []string{"500", "15000"} {
		req := httptest.NewRequest(http.MethodPost, "/loan/approve",
			bytes.NewBufferString(`{"amount": `+amount+`}`))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/loan/decisions", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var records []domain.DecisionRecord
	require.NoError(t, json.NewDecoder(w.Body).Decode(&records))
	require.Len(t, records, 2)
	assert.Equal(t, "junior", records[0].Result.Stage)
	assert.Equal(t, "director", records[1].Result.Stage)
}

func TestRouter_RateLimited(t *testing.T) {
	limiter := NewRateLimiter(1, time.Hour)
	defer limiter.Stop()
	router := NewRouter(newTestHandler(), limiter)

	codes := make([]int, 0, 2)
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/loan/approve", bytes.NewBufferString(`{"amount": 1}`))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusTooManyRequests}, codes)
}
