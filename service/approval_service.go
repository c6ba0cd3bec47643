package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"loan-approval/approval"
	"loan-approval/domain"
	"loan-approval/repository"
)

type ApprovalService struct {
	chain       *approval.Chain
	decisions   repository.DecisionRepository
	cache       repository.CacheRepository
	reporter    Reporter
	logger      Logger
	validate    *validator.Validate
	fingerprint string
	now         func() time.Time
}

// NewApprovalService wires the chain to its collaborators. cache and
// reporter may be nil.
func NewApprovalService(
	chain *approval.Chain,
	decisions repository.DecisionRepository,
	cache repository.CacheRepository,
	reporter Reporter,
	logger Logger,
) *ApprovalService {
	if logger == nil {
		logger = NewNoopLogger()
	}
	return &ApprovalService{
		chain:       chain,
		decisions:   decisions,
		cache:       cache,
		reporter:    reporter,
		logger:      logger,
		validate:    validator.New(validator.WithRequiredStructEnabled()),
		fingerprint: Fingerprint(chain),
		now:         time.Now,
	}
}

// Approve validates the request, runs it through the chain and records the
// decision. A rejection is a normal result, not an error.
func (s *ApprovalService) Approve(
	ctx context.Context,
	req domain.LoanRequest,
) (domain.ApprovalResult, error) {
	if err := s.validateRequest(req); err != nil {
		return domain.ApprovalResult{}, err
	}

	key := s.cacheKey(req.Amount)
	result, ok := s.cached(ctx, key)
	if !ok {
		var err error
		result, err = s.chain.Process(req)
		if err != nil {
			return domain.ApprovalResult{}, err
		}
		s.store(ctx, key, result)
	}

	record := domain.DecisionRecord{
		ID:        uuid.NewString(),
		Request:   req,
		Result:    result,
		DecidedAt: s.now(),
	}

	// A failed save is logged; the decision still stands.
	if err := s.decisions.Save(ctx, record); err != nil {
		s.logger.Error("failed to save decision %s: %v", record.ID, err)
	}

	if s.reporter != nil {
		s.reporter.Report(record)
	}

	return result, nil
}

// Decisions returns the decision log, oldest first.
func (s *ApprovalService) Decisions(ctx context.Context) ([]domain.DecisionRecord, error) {
	return s.decisions.List(ctx)
}

func (s *ApprovalService) Stages() []approval.Stage {
	return s.chain.Stages()
}

func (s *ApprovalService) validateRequest(req domain.LoanRequest) error {
	err := s.validate.Struct(req)
	if err == nil {
		// gte=0 lets +Inf through; the chain has the final word.
		return approval.ValidateRequest(req)
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return &approval.RequestError{
			Field: strings.ToLower(fieldErrs[0].Field()),
			Value: fieldErrs[0].Value(),
			Err:   approval.ErrInvalidRequest,
		}
	}
	return fmt.Errorf("%w: %v", approval.ErrInvalidRequest, err)
}

func (s *ApprovalService) cacheKey(amount float64) string {
	return cacheKeyPrefix + ":" + s.fingerprint + ":" + strconv.FormatFloat(amount, 'g', -1, 64)
}

func (s *ApprovalService) cached(ctx context.Context, key string) (domain.ApprovalResult, bool) {
	if s.cache == nil {
		return domain.ApprovalResult{}, false
	}
	raw, ok := s.cache.Get(ctx, key)
	if !ok {
		return domain.ApprovalResult{}, false
	}

	var result domain.ApprovalResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		s.logger.Error("discarding unreadable cache entry %s: %v", key, err)
		return domain.ApprovalResult{}, false
	}
	s.logger.Debug("cache hit %s", key)
	return result, true
}

func (s *ApprovalService) store(ctx context.Context, key string, result domain.ApprovalResult) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(result)
	if err != nil {
		s.logger.Error("failed to encode result for %s: %v", key, err)
		return
	}
	if err := s.cache.Set(ctx, key, string(raw)); err != nil {
		s.logger.Error("failed to cache result for %s: %v", key, err)
	}
}

// Fingerprint identifies a chain's stage layout so cached results from a
// differently configured chain are never reused.
func Fingerprint(chain *approval.Chain) string {
	var b strings.Builder
	for _, s := range chain.Stages() {
		b.WriteString(s.Name)
		b.WriteString(s.Band.String())
		b.WriteByte(';')
	}
	return strconv.FormatUint(xxhash.Sum64String(b.String()), 16)
}
