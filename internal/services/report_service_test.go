package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/dnl4/brasil/internal/models"
)

func newTestReportService() *ReportService {
	logger := zap.NewNop()
	return NewReportService(NewRatingService(logger), logger)
}

func TestHasReported_InvalidRatingID(t *testing.T) {
	svc := newTestReportService()

	_, err := svc.HasReported(context.Background(), "not-a-hex-id", "user-1")

	assert.ErrorIs(t, err, models.ErrInvalidID)
}

func TestReportCreate_InvalidRatingID(t *testing.T) {
	svc := newTestReportService()

	_, err := svc.Create(context.Background(), "user-1", models.CreateReportRequest{
		RatingID: "not-a-hex-id",
		Reason:   models.ReportReasonSpam,
	})

	assert.ErrorIs(t, err, models.ErrInvalidID)
}

func TestListByRating_InvalidRatingID(t *testing.T) {
	svc := newTestReportService()

	_, err := svc.ListByRating(context.Background(), "zzz")

	assert.ErrorIs(t, err, models.ErrInvalidID)
}
