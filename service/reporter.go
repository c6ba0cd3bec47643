package service

import "loan-approval/domain"

// Reporter receives every decision the service makes.
type Reporter interface {
	Report(record domain.DecisionRecord)
}

type ReporterFunc func(record domain.DecisionRecord)

func (f ReporterFunc) Report(record domain.DecisionRecord) {
	f(record)
}

// LogReporter writes one line per decision.
type LogReporter struct {
	logger Logger
}

func NewLogReporter(logger Logger) *LogReporter {
	return &LogReporter{logger: logger}
}

func (r *LogReporter) Report(record domain.DecisionRecord) {
	req := record.Request
	if record.Result.Decision.Approved() {
		r.logger.Info("%s: %.2f for %q (%s) by %s after %d hop(s)",
			approvedMessage, req.Amount, req.CustomerName, req.Purpose,
			record.Result.Stage, record.Result.Hops)
		return
	}
	r.logger.Info("%s: %.2f for %q (%s) after %d hop(s)",
		rejectedMessage, req.Amount, req.CustomerName, req.Purpose, record.Result.Hops)
}
