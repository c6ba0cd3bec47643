package service

const (
	cacheKeyPrefix = "decision"

	// Decision log lines.
	approvedMessage = "approved"
	rejectedMessage = "rejected"
)
