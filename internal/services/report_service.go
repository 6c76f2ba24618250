package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/dnl4/brasil/internal/config"
	"github.com/dnl4/brasil/internal/models"
	"github.com/dnl4/brasil/internal/observability"
	"github.com/dnl4/brasil/internal/utils"
)

// ReportService manages abuse reports against ratings
type ReportService struct {
	ratings *RatingService
	logger  *zap.Logger
}

// NewReportService creates a new report service
func NewReportService(ratings *RatingService, logger *zap.Logger) *ReportService {
	return &ReportService{ratings: ratings, logger: logger}
}

func (s *ReportService) collection() *mongo.Collection {
	return config.MongoDB.Collection(config.AppConfig.ReportsCollection)
}

// Create files a report against an existing rating. A unique index on
// (rating_id, reporter_id) rejects a second report from the same user.
func (s *ReportService) Create(ctx context.Context, reporterID string, req models.CreateReportRequest) (*models.Report, error) {
	if result := utils.ValidateReportInput(req.Reason, req.Description); !result.IsValid {
		return nil, result.Errors[0]
	}

	rating, err := s.ratings.Get(ctx, req.RatingID)
	if err != nil {
		return nil, err
	}

	// friendly pre-check; the unique (rating_id, reporter_id) index
	// still closes the race below
	already, err := s.HasReported(ctx, req.RatingID, reporterID)
	if err != nil {
		return nil, err
	}
	if already {
		return nil, models.ErrDuplicateReport
	}

	report := models.Report{
		ID:          primitive.NewObjectID(),
		RatingID:    rating.ID,
		ReporterID:  reporterID,
		Reason:      req.Reason,
		Description: req.Description,
		CreatedAt:   time.Now(),
	}

	if _, err := utils.InsertOneWithTimeout(ctx, s.collection(), report, utils.DefaultQueryTimeout); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, models.ErrDuplicateReport
		}
		observability.DatabaseOperations.WithLabelValues("report_insert", "error").Inc()
		s.logger.Error("failed to insert report",
			zap.String("rating_id", req.RatingID),
			zap.Error(err))
		return nil, err
	}
	observability.DatabaseOperations.WithLabelValues("report_insert", "success").Inc()

	s.logger.Info("rating reported",
		zap.String("rating_id", req.RatingID),
		zap.String("reason", string(req.Reason)))

	return &report, nil
}

// ListByRating returns the reports filed against a rating, for the
// moderation endpoint
func (s *ReportService) ListByRating(ctx context.Context, ratingID string) ([]models.Report, error) {
	objectID, err := primitive.ObjectIDFromHex(ratingID)
	if err != nil {
		return nil, models.ErrInvalidID
	}

	cursor, err := utils.FindWithTimeout(ctx, s.collection(), bson.M{"rating_id": objectID}, utils.DefaultQueryTimeout)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	reports := []models.Report{}
	if err := cursor.All(ctx, &reports); err != nil {
		return nil, err
	}
	return reports, nil
}

// HasReported reports whether the user already filed a report for the rating
func (s *ReportService) HasReported(ctx context.Context, ratingID, reporterID string) (bool, error) {
	objectID, err := primitive.ObjectIDFromHex(ratingID)
	if err != nil {
		return false, models.ErrInvalidID
	}

	count, err := utils.CountDocumentsWithTimeout(ctx, s.collection(), bson.M{
		"rating_id":   objectID,
		"reporter_id": reporterID,
	}, utils.DefaultQueryTimeout)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
