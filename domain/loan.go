package domain

import "time"

// LoanRequest is the input handed to the approval chain. It is passed by
// value and never modified between stages.
type LoanRequest struct {
	Amount       float64 `json:"amount" yaml:"amount" validate:"gte=0"`
	CustomerName string  `json:"customerName" yaml:"customerName"`
	Purpose      string  `json:"purpose" yaml:"purpose"`
}

type Decision string

const (
	DecisionApproved Decision = "APPROVED"
	DecisionRejected Decision = "REJECTED"
)

func (d Decision) Approved() bool {
	return d == DecisionApproved
}

// ApprovalResult is the outcome of running a request through the chain.
// StageIndex is -1 and Stage is empty when the request was rejected.
type ApprovalResult struct {
	Decision   Decision `json:"decision" yaml:"decision"`
	Stage      string   `json:"stage,omitempty" yaml:"stage,omitempty"`
	StageIndex int      `json:"stageIndex" yaml:"stageIndex"`
	Hops       int      `json:"hops" yaml:"hops"`
}

// DecisionRecord is one entry of the in-memory decision log.
type DecisionRecord struct {
	ID        string         `json:"id" yaml:"id"`
	Request   LoanRequest    `json:"request" yaml:"request"`
	Result    ApprovalResult `json:"result" yaml:"result"`
	DecidedAt time.Time      `json:"decidedAt" yaml:"decidedAt"`
}
