package worker_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"rrer/internal/report"
	mockreport "rrer/internal/report/mock"
	"rrer/internal/worker"
	"rrer/pkg/domain"
	"rrer/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func makeJob(id int64, reportID domain.ReportID) *river.Job[report.FilingJobArgs] {
	return &river.Job[report.FilingJobArgs]{
		JobRow: &rivertype.JobRow{ID: id},
		Args:   report.FilingJobArgs{ReportID: reportID},
	}
}

func TestFilingWorker_Work_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reportID := domain.ReportID(uuid.New())
	svc := mockreport.NewMockService(ctrl)
	svc.EXPECT().ProcessFiling(gomock.Any(), reportID).Return(nil)

	w := worker.NewFilingWorker(svc)
	require.NoError(t, w.Work(context.Background(), makeJob(1, reportID)))
}

func TestFilingWorker_Work_ErrorWrapped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reportID := domain.ReportID(uuid.New())
	svc := mockreport.NewMockService(ctrl)
	svc.EXPECT().ProcessFiling(gomock.Any(), reportID).Return(errors.New("db gone"))

	w := worker.NewFilingWorker(svc)
	err := w.Work(context.Background(), makeJob(2, reportID))
	require.Error(t, err)
	require.Contains(t, err.Error(), "could not process filing")
}

func TestFilingJobArgs_SingleFlightOptions(t *testing.T) {
	args := report.FilingJobArgs{ReportID: domain.ReportID(uuid.New())}
	require.Equal(t, "FileReportJob", args.Kind())

	opts := args.InsertOpts()
	require.Equal(t, 1, opts.MaxAttempts)
	require.True(t, opts.UniqueOpts.ByArgs)
	require.Contains(t, opts.UniqueOpts.ByState, rivertype.JobStateRunning)
}
