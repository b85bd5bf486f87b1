package report

import (
	"rrer/pkg/domain"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// FilingJobArgs is the payload of a filing submission job. The report ID is
// the unique key: River refuses a second job for the same report while one is
// still pending, which is half of the single-flight guarantee (the filing
// protocol's queued/submitted guard is the other half).
type FilingJobArgs struct {
	// ReportID identifies the report to file.
	ReportID domain.ReportID `json:"reportId" river:"unique"`
}

// Kind returns the River job kind used to register and dispatch the filing worker.
func (args FilingJobArgs) Kind() string { return "FileReportJob" }

// InsertOpts returns the River options controlling how the job is enqueued.
// MaxAttempts is 1: an undecided channel outcome parks the submission in
// needs-review for an operator, it is never auto-retried by the queue.
func (args FilingJobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: 1,
		UniqueOpts: river.UniqueOpts{
			ByArgs: true,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}

// reportIDString is a logging convenience.
func reportIDString(id domain.ReportID) string { return uuid.UUID(id).String() }
