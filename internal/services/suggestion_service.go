package services

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/dnl4/brasil/internal/config"
	"github.com/dnl4/brasil/internal/models"
	"github.com/dnl4/brasil/internal/observability"
	"github.com/dnl4/brasil/internal/utils"
)

// SuggestionService manages feature suggestions and their votes
type SuggestionService struct {
	logger *zap.Logger
}

// NewSuggestionService creates a new suggestion service
func NewSuggestionService(logger *zap.Logger) *SuggestionService {
	return &SuggestionService{logger: logger}
}

func (s *SuggestionService) collection() *mongo.Collection {
	return config.MongoDB.Collection(config.AppConfig.SuggestionsCollection)
}

// Create opens a new suggestion. The author's vote is counted at
// creation, so a fresh suggestion starts with one vote.
func (s *SuggestionService) Create(ctx context.Context, authorID, authorName string, req models.CreateSuggestionRequest) (*models.Suggestion, error) {
	if result := utils.ValidateSuggestionInput(req.Title, req.Description); !result.IsValid {
		return nil, result.Errors[0]
	}

	suggestion := models.Suggestion{
		ID:          primitive.NewObjectID(),
		Title:       req.Title,
		Description: req.Description,
		AuthorID:    authorID,
		AuthorName:  authorName,
		Votes:       1,
		Voters:      []string{authorID},
		Status:      models.SuggestionStatusPending,
		CreatedAt:   time.Now(),
	}

	if _, err := utils.InsertOneWithTimeout(ctx, s.collection(), suggestion, utils.DefaultQueryTimeout); err != nil {
		observability.DatabaseOperations.WithLabelValues("suggestion_insert", "error").Inc()
		s.logger.Error("failed to insert suggestion",
			zap.String("author_id", authorID),
			zap.Error(err))
		return nil, err
	}
	observability.DatabaseOperations.WithLabelValues("suggestion_insert", "success").Inc()

	s.logger.Info("suggestion created",
		zap.String("suggestion_id", suggestion.ID.Hex()),
		zap.String("author_id", authorID))

	return &suggestion, nil
}

// List returns all suggestions, most voted first
func (s *SuggestionService) List(ctx context.Context) ([]models.Suggestion, error) {
	opts := options.Find().SetSort(bson.D{{Key: "votes", Value: -1}, {Key: "created_at", Value: -1}})
	cursor, err := utils.FindWithTimeout(ctx, s.collection(), bson.M{}, utils.DefaultQueryTimeout, opts)
	if err != nil {
		observability.DatabaseOperations.WithLabelValues("suggestion_find", "error").Inc()
		return nil, err
	}
	defer cursor.Close(ctx)

	suggestions := []models.Suggestion{}
	if err := cursor.All(ctx, &suggestions); err != nil {
		return nil, err
	}
	observability.DatabaseOperations.WithLabelValues("suggestion_find", "success").Inc()
	return suggestions, nil
}

// Get returns a single suggestion by its hex id
func (s *SuggestionService) Get(ctx context.Context, id string) (*models.Suggestion, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, models.ErrInvalidID
	}

	var suggestion models.Suggestion
	err = utils.FindOneWithTimeout(ctx, s.collection(), bson.M{"_id": objectID}, &suggestion, utils.DefaultQueryTimeout)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &suggestion, nil
}

// Vote adds the user's vote. The membership check and the increment run
// in one filtered update, so the vote count and the voter list cannot
// drift apart under concurrent votes.
func (s *SuggestionService) Vote(ctx context.Context, id, userID string) (*models.Suggestion, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, models.ErrInvalidID
	}

	filter := bson.M{"_id": objectID, "voters": bson.M{"$ne": userID}}
	update := bson.M{
		"$addToSet": bson.M{"voters": userID},
		"$inc":      bson.M{"votes": 1},
	}

	result, err := utils.UpdateOneWithTimeout(ctx, s.collection(), filter, update, utils.DefaultQueryTimeout)
	if err != nil {
		return nil, err
	}
	if result.MatchedCount == 0 {
		// either the suggestion is gone or the user already voted
		if _, getErr := s.Get(ctx, id); getErr != nil {
			return nil, getErr
		}
		return nil, models.ErrAlreadyVoted
	}

	observability.SuggestionVotes.WithLabelValues("up").Inc()
	return s.Get(ctx, id)
}

// Unvote removes the user's vote, the mirror of Vote
func (s *SuggestionService) Unvote(ctx context.Context, id, userID string) (*models.Suggestion, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, models.ErrInvalidID
	}

	filter := bson.M{"_id": objectID, "voters": userID}
	update := bson.M{
		"$pull": bson.M{"voters": userID},
		"$inc":  bson.M{"votes": -1},
	}

	result, err := utils.UpdateOneWithTimeout(ctx, s.collection(), filter, update, utils.DefaultQueryTimeout)
	if err != nil {
		return nil, err
	}
	if result.MatchedCount == 0 {
		if _, getErr := s.Get(ctx, id); getErr != nil {
			return nil, getErr
		}
		return nil, models.ErrNotVoted
	}

	observability.SuggestionVotes.WithLabelValues("down").Inc()
	return s.Get(ctx, id)
}

// UpdateStatus moves a suggestion through the triage states. Admin only;
// the handler enforces the role.
func (s *SuggestionService) UpdateStatus(ctx context.Context, id string, status models.SuggestionStatus) (*models.Suggestion, error) {
	if !status.Valid() {
		return nil, utils.ValidationError{Field: "status", Message: "Status inválido."}
	}

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, models.ErrInvalidID
	}

	result, err := utils.UpdateOneWithTimeout(ctx, s.collection(), bson.M{"_id": objectID}, bson.M{"$set": bson.M{"status": status}}, utils.DefaultQueryTimeout)
	if err != nil {
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, models.ErrNotFound
	}

	s.logger.Info("suggestion status updated",
		zap.String("suggestion_id", id),
		zap.String("status", string(status)))

	return s.Get(ctx, id)
}

// Watch streams the full suggestion list whenever the collection
// changes, backing the live feed. The first snapshot is sent
// immediately; the channel closes when ctx is done or the change
// stream fails.
func (s *SuggestionService) Watch(ctx context.Context) (<-chan []models.Suggestion, error) {
	stream, err := s.collection().Watch(ctx, mongo.Pipeline{})
	if err != nil {
		return nil, err
	}

	updates := make(chan []models.Suggestion, 1)

	if snapshot, err := s.List(ctx); err == nil {
		updates <- snapshot
	}

	go func() {
		defer close(updates)
		defer stream.Close(context.Background())

		for stream.Next(ctx) {
			snapshot, err := s.List(ctx)
			if err != nil {
				s.logger.Warn("failed to reload suggestions after change", zap.Error(err))
				continue
			}
			select {
			case updates <- snapshot:
			case <-ctx.Done():
				return
			}
		}
		if err := stream.Err(); err != nil && !errors.Is(err, context.Canceled) {
			s.logger.Warn("suggestion change stream closed", zap.Error(err))
		}
	}()

	return updates, nil
}
