package service

import (
	"context"

	"loan-approval/domain"
)

// SampleRequests covers one amount per band plus a second top-band amount.
func SampleRequests() []domain.LoanRequest {
	return []domain.LoanRequest{
		{Amount: 500, CustomerName: "Ivan", Purpose: "Phone purchase"},
		{Amount: 2500, CustomerName: "Maria", Purpose: "Apartment renovation"},
		{Amount: 7500, CustomerName: "Petr", Purpose: "Car purchase"},
		{Amount: 15000, CustomerName: "Anna", Purpose: "Opening a business"},
		{Amount: 50000, CustomerName: "Sergey", Purpose: "Investments"},
	}
}

// RunSamples pushes every sample request through the service and returns the
// results in the same order.
func (s *ApprovalService) RunSamples(ctx context.Context) ([]domain.ApprovalResult, error) {
	samples := SampleRequests()
	results := make([]domain.ApprovalResult, 0, len(samples))
	for _, req := range samples {
		result, err := s.Approve(ctx, req)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}
