package repository

import (
	"context"

	"loan-approval/domain"
)

type DecisionRepository interface {
	Save(ctx context.Context, record domain.DecisionRecord) error
	List(ctx context.Context) ([]domain.DecisionRecord, error)
}
