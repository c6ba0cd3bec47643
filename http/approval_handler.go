package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"loan-approval/approval"
	"loan-approval/domain"
)

// Approver is the subset of the approval service the handlers need.
type Approver interface {
	Approve(ctx context.Context, req domain.LoanRequest) (domain.ApprovalResult, error)
	Decisions(ctx context.Context) ([]domain.DecisionRecord, error)
	Stages() []approval.Stage
}

type ApprovalHandler struct {
	service Approver
}

func NewApprovalHandler(service Approver) *ApprovalHandler {
	return &ApprovalHandler{service: service}
}

// StageView is the wire form of a stage. Max is omitted for an unbounded band.
type StageView struct {
	Name string   `json:"name"`
	Min  float64  `json:"min"`
	Max  *float64 `json:"max,omitempty"`
}

func NewStageViews(stages []approval.Stage) []StageView {
	views := make([]StageView, 0, len(stages))
	for _, s := range stages {
		v := StageView{Name: s.Name, Min: s.Band.Low}
		if !s.Band.IsUnbounded() {
			high := s.Band.High
			v.Max = &high
		}
		views = append(views, v)
	}
	return views
}

func (h *ApprovalHandler) Approve(w http.ResponseWriter, r *http.Request) {

	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var input domain.LoanRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.Approve(r.Context(), input)
	if err != nil {
		if errors.Is(err, approval.ErrInvalidRequest) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, result)
}

func (h *ApprovalHandler) ListStages(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, NewStageViews(h.service.Stages()))
}

func (h *ApprovalHandler) ListDecisions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	records, err := h.service.Decisions(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, records)
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
