// Package approval routes loan requests through an ordered list of approval
// stages. Each stage owns a half-open band of amounts; the first stage whose
// band contains the amount approves, and a request that falls past the last
// stage is rejected.
package approval

import (
	"fmt"
	"math"

	"github.com/samber/lo"

	"loan-approval/domain"
)

// Band is the half-open interval [Low, High). High is +Inf for an unbounded
// band.
type Band struct {
	Low  float64
	High float64
}

func NewBand(low, high float64) Band {
	return Band{Low: low, High: high}
}

func Unbounded(low float64) Band {
	return Band{Low: low, High: math.Inf(1)}
}

func (b Band) Contains(amount float64) bool {
	return b.Low <= amount && amount < b.High
}

func (b Band) IsUnbounded() bool {
	return math.IsInf(b.High, 1)
}

func (b Band) String() string {
	if b.IsUnbounded() {
		return fmt.Sprintf("[%g, ∞)", b.Low)
	}
	return fmt.Sprintf("[%g, %g)", b.Low, b.High)
}

// Stage is one tier of authority in the chain.
type Stage struct {
	Name string
	Band Band
}

// Chain is an immutable, ordered list of stages. Stage i forwards to stage
// i+1; the last stage has no successor. A Chain is safe for concurrent use.
type Chain struct {
	stages []Stage
}

// NewChain links the given stages in order. The bands must start at or above
// zero, be contiguous and non-overlapping, and only the last one may be
// unbounded.
func NewChain(stages ...Stage) (*Chain, error) {
	if len(stages) == 0 {
		return nil, invalidChain("", "no stages")
	}

	for i, s := range stages {
		if s.Name == "" {
			return nil, invalidChain("", "stage %d has no name", i)
		}
		if math.IsNaN(s.Band.Low) || math.IsInf(s.Band.Low, 0) || s.Band.Low < 0 {
			return nil, invalidChain(s.Name, "lower bound %g must be finite and non-negative", s.Band.Low)
		}
		if math.IsNaN(s.Band.High) || s.Band.High <= s.Band.Low {
			return nil, invalidChain(s.Name, "empty band %s", s.Band)
		}
		if i == len(stages)-1 {
			continue
		}
		if s.Band.IsUnbounded() {
			return nil, invalidChain(s.Name, "only the last stage may be unbounded")
		}
		next := stages[i+1]
		if next.Band.Low != s.Band.High {
			return nil, invalidChain(next.Name, "band %s does not start where %s ends (%g)", next.Band, s.Name, s.Band.High)
		}
	}

	if dups := lo.FindDuplicatesBy(stages, func(s Stage) string { return s.Name }); len(dups) > 0 {
		return nil, invalidChain(dups[0].Name, "duplicate stage name")
	}

	return &Chain{stages: append([]Stage(nil), stages...)}, nil
}

// Process hands the request to the head of the chain. Invalid amounts are
// rejected with ErrInvalidRequest before any stage is consulted.
func (c *Chain) Process(req domain.LoanRequest) (domain.ApprovalResult, error) {
	if err := ValidateRequest(req); err != nil {
		return domain.ApprovalResult{}, err
	}
	return c.processFrom(0, req), nil
}

// processFrom is the stage contract: approve in band, otherwise delegate to
// the successor, or reject when there is none.
func (c *Chain) processFrom(i int, req domain.LoanRequest) domain.ApprovalResult {
	for ; ; i++ {
		stage := c.stages[i]
		if stage.Band.Contains(req.Amount) {
			return domain.ApprovalResult{
				Decision:   domain.DecisionApproved,
				Stage:      stage.Name,
				StageIndex: i,
				Hops:       i + 1,
			}
		}
		if i == len(c.stages)-1 {
			return domain.ApprovalResult{
				Decision:   domain.DecisionRejected,
				StageIndex: -1,
				Hops:       len(c.stages),
			}
		}
	}
}

// Stages returns a copy of the ordered stages.
func (c *Chain) Stages() []Stage {
	return append([]Stage(nil), c.stages...)
}

// Names lists stage names in evaluation order.
func (c *Chain) Names() []string {
	return lo.Map(c.stages, func(s Stage, _ int) string { return s.Name })
}

// ValidateRequest checks that the amount is a finite, non-negative number.
func ValidateRequest(req domain.LoanRequest) error {
	if math.IsNaN(req.Amount) || math.IsInf(req.Amount, 0) || req.Amount < 0 {
		return &RequestError{
			Field: "amount",
			Value: req.Amount,
			Err:   ErrInvalidRequest,
		}
	}
	return nil
}
