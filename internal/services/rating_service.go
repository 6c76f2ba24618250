package services

import (
	"context"
	"encoding/json"
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

const uniqueServicesCacheKey = "ratings:services"

// RatingService manages provider ratings in MongoDB
type RatingService struct {
	logger *zap.Logger
}

// NewRatingService creates a new rating service
func NewRatingService(logger *zap.Logger) *RatingService {
	return &RatingService{logger: logger}
}

func (s *RatingService) collection() *mongo.Collection {
	return config.MongoDB.Collection(config.AppConfig.RatingsCollection)
}

// Create validates and inserts a new rating on behalf of the given user.
// The provider phone is stored in canonical digit form.
func (s *RatingService) Create(ctx context.Context, userID, userName string, req models.CreateRatingRequest) (*models.Rating, error) {
	if result := utils.ValidateRatingInput(req.PrestadorWhatsapp, req.PrestadorNome, req.Servico, req.Rating, req.Comment); !result.IsValid {
		return nil, result.Errors[0]
	}

	now := time.Now()
	rating := models.Rating{
		ID:                primitive.NewObjectID(),
		PrestadorWhatsapp: utils.StripFormatting(req.PrestadorWhatsapp),
		PrestadorNome:     req.PrestadorNome,
		Servico:           req.Servico,
		Rating:            req.Rating,
		Comment:           req.Comment,
		UserID:            userID,
		UserName:          userName,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if _, err := utils.InsertOneWithTimeout(ctx, s.collection(), rating, utils.DefaultQueryTimeout); err != nil {
		observability.DatabaseOperations.WithLabelValues("rating_insert", "error").Inc()
		s.logger.Error("failed to insert rating",
			zap.String("user_id", userID),
			zap.Error(err))
		return nil, err
	}

	observability.DatabaseOperations.WithLabelValues("rating_insert", "success").Inc()
	observability.RatingsCreated.Inc()
	s.invalidateServicesCache(ctx)

	s.logger.Info("rating created",
		zap.String("rating_id", rating.ID.Hex()),
		zap.String("servico", rating.Servico),
		zap.String("user_id", userID))

	return &rating, nil
}

// Get returns a single rating by its hex id
func (s *RatingService) Get(ctx context.Context, id string) (*models.Rating, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, models.ErrInvalidID
	}

	var rating models.Rating
	err = utils.FindOneWithTimeout(ctx, s.collection(), bson.M{"_id": objectID}, &rating, utils.DefaultQueryTimeout)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rating, nil
}

// Update edits a rating's mutable fields. Only the author may edit.
func (s *RatingService) Update(ctx context.Context, id, userID string, req models.UpdateRatingRequest) (*models.Rating, error) {
	rating, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if rating.UserID != userID {
		return nil, models.ErrNotOwner
	}

	if result := utils.ValidateRatingInput(rating.PrestadorWhatsapp, req.PrestadorNome, req.Servico, req.Rating, req.Comment); !result.IsValid {
		return nil, result.Errors[0]
	}

	update := bson.M{"$set": bson.M{
		"prestador_nome": req.PrestadorNome,
		"servico":        req.Servico,
		"rating":         req.Rating,
		"comment":        req.Comment,
		"updated_at":     time.Now(),
	}}

	if _, err := utils.UpdateOneWithTimeout(ctx, s.collection(), bson.M{"_id": rating.ID}, update, utils.DefaultQueryTimeout); err != nil {
		observability.DatabaseOperations.WithLabelValues("rating_update", "error").Inc()
		return nil, err
	}
	observability.DatabaseOperations.WithLabelValues("rating_update", "success").Inc()
	s.invalidateServicesCache(ctx)

	return s.Get(ctx, id)
}

// Delete removes a rating. Only the author may delete.
func (s *RatingService) Delete(ctx context.Context, id, userID string) error {
	rating, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if rating.UserID != userID {
		return models.ErrNotOwner
	}

	result, err := utils.DeleteOneWithTimeout(ctx, s.collection(), bson.M{"_id": rating.ID}, utils.DefaultQueryTimeout)
	if err != nil {
		observability.DatabaseOperations.WithLabelValues("rating_delete", "error").Inc()
		return err
	}
	if result.DeletedCount == 0 {
		return models.ErrNotFound
	}
	observability.DatabaseOperations.WithLabelValues("rating_delete", "success").Inc()
	s.invalidateServicesCache(ctx)

	s.logger.Info("rating deleted",
		zap.String("rating_id", id),
		zap.String("user_id", userID))

	return nil
}

// ListByProvider returns all ratings for a provider phone (canonical
// digits) together with the overall average.
func (s *RatingService) ListByProvider(ctx context.Context, prestadorWhatsapp string) (*models.ProviderRatingsResponse, error) {
	phone := utils.StripFormatting(prestadorWhatsapp)

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	ratings, err := s.findWithOptions(ctx, bson.M{"prestador_whatsapp": phone}, opts)
	if err != nil {
		return nil, err
	}

	return &models.ProviderRatingsResponse{
		PrestadorWhatsapp: phone,
		Ratings:           ratings,
		AverageRating:     AverageRating(ratings),
	}, nil
}

// SearchByService returns rating groups for every provider offering the
// given service, best-rated first.
func (s *RatingService) SearchByService(ctx context.Context, servico string) ([]models.ProviderGroup, error) {
	ratings, err := s.find(ctx, bson.M{"servico": servico})
	if err != nil {
		return nil, err
	}
	return GroupByProviderAndService(ratings), nil
}

// ListByUser returns the ratings authored by a user, newest first
func (s *RatingService) ListByUser(ctx context.Context, userID string) ([]models.Rating, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	return s.findWithOptions(ctx, bson.M{"user_id": userID}, opts)
}

// UniqueServices returns the distinct service names present in the
// ratings collection. The list is cached in Redis.
func (s *RatingService) UniqueServices(ctx context.Context) ([]string, error) {
	cached, err := config.Redis.Get(ctx, uniqueServicesCacheKey).Result()
	if err == nil {
		var services []string
		if jsonErr := json.Unmarshal([]byte(cached), &services); jsonErr == nil {
			observability.CacheHits.WithLabelValues("unique_services").Inc()
			return services, nil
		}
	}
	observability.CacheMisses.WithLabelValues("unique_services").Inc()

	values, err := utils.DistinctWithTimeout(ctx, s.collection(), "servico", bson.M{}, utils.DefaultQueryTimeout)
	if err != nil {
		observability.DatabaseOperations.WithLabelValues("rating_distinct", "error").Inc()
		return nil, err
	}
	observability.DatabaseOperations.WithLabelValues("rating_distinct", "success").Inc()

	services := make([]string, 0, len(values))
	for _, v := range values {
		if name, ok := v.(string); ok && name != "" {
			services = append(services, name)
		}
	}

	if data, err := json.Marshal(services); err == nil {
		if err := config.Redis.Set(ctx, uniqueServicesCacheKey, data, config.AppConfig.RedisTTL).Err(); err != nil {
			s.logger.Warn("failed to cache unique services", zap.Error(err))
		}
	}

	return services, nil
}

func (s *RatingService) find(ctx context.Context, filter bson.M) ([]models.Rating, error) {
	return s.findWithOptions(ctx, filter)
}

func (s *RatingService) findWithOptions(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]models.Rating, error) {
	cursor, err := utils.FindWithTimeout(ctx, s.collection(), filter, utils.DefaultQueryTimeout, opts...)
	if err != nil {
		observability.DatabaseOperations.WithLabelValues("rating_find", "error").Inc()
		return nil, err
	}
	defer cursor.Close(ctx)

	ratings := []models.Rating{}
	if err := cursor.All(ctx, &ratings); err != nil {
		return nil, err
	}
	observability.DatabaseOperations.WithLabelValues("rating_find", "success").Inc()
	return ratings, nil
}

// invalidateServicesCache drops the cached unique-services list so the
// next read reflects the write
func (s *RatingService) invalidateServicesCache(ctx context.Context) {
	if err := config.Redis.Del(ctx, uniqueServicesCacheKey).Err(); err != nil {
		s.logger.Warn("failed to invalidate services cache", zap.Error(err))
	}
}
