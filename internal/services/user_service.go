package services

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/dnl4/brasil/internal/config"
	"github.com/dnl4/brasil/internal/models"
	"github.com/dnl4/brasil/internal/observability"
	"github.com/dnl4/brasil/internal/utils"
)

// UserService manages user profiles in MongoDB
type UserService struct {
	logger *zap.Logger
}

// NewUserService creates a new user service
func NewUserService(logger *zap.Logger) *UserService {
	return &UserService{logger: logger}
}

func (s *UserService) collection() *mongo.Collection {
	return config.MongoDB.Collection(config.AppConfig.UsersCollection)
}

// Get returns the profile for the given user id
func (s *UserService) Get(ctx context.Context, userID string) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := utils.FindOneWithTimeout(ctx, s.collection(), bson.M{"user_id": userID}, &profile, utils.DefaultQueryTimeout)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		observability.DatabaseOperations.WithLabelValues("user_find", "error").Inc()
		return nil, err
	}
	observability.DatabaseOperations.WithLabelValues("user_find", "success").Inc()
	return &profile, nil
}

// Upsert creates or updates the profile for the given user id. The
// display name is normalized and must be unique across users; when the
// phone number changes the verified flag resets until the new number is
// confirmed again.
func (s *UserService) Upsert(ctx context.Context, userID string, req models.UpdateProfileRequest) (*models.UserProfile, error) {
	displayName, err := utils.ValidateDisplayName(req.DisplayName)
	if err != nil {
		return nil, err
	}

	available, err := s.IsDisplayNameAvailable(ctx, displayName, userID)
	if err != nil {
		return nil, err
	}
	if !available {
		return nil, models.ErrDisplayNameTaken
	}

	phone := utils.StripFormatting(req.PhoneNumber)
	if phone != "" {
		if err := utils.ValidateCanonicalPhone(phone); err != nil {
			return nil, err
		}
		phoneAvailable, err := s.IsPhoneNumberAvailable(ctx, phone, userID)
		if err != nil {
			return nil, err
		}
		if !phoneAvailable {
			return nil, models.ErrPhoneNumberTaken
		}
	}

	now := time.Now()
	existing, err := s.Get(ctx, userID)
	if err != nil && !errors.Is(err, models.ErrNotFound) {
		return nil, err
	}

	verified := false
	createdAt := now
	if existing != nil {
		createdAt = existing.CreatedAt
		// keep the verified flag only while the number stays the same
		verified = existing.PhoneNumberVerified && existing.PhoneNumber == phone
	}

	update := bson.M{"$set": bson.M{
		"user_id":               userID,
		"display_name":          displayName,
		"full_name":             req.FullName,
		"phone_number":          phone,
		"phone_number_verified": verified,
		"created_at":            createdAt,
		"updated_at":            now,
	}}

	if _, err := utils.UpsertOneWithTimeout(ctx, s.collection(), bson.M{"user_id": userID}, update, utils.DefaultQueryTimeout); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			// lost the race on the unique display_name index
			return nil, models.ErrDisplayNameTaken
		}
		observability.DatabaseOperations.WithLabelValues("user_upsert", "error").Inc()
		s.logger.Error("failed to upsert user profile",
			zap.String("user_id", userID),
			zap.Error(err))
		return nil, err
	}
	observability.DatabaseOperations.WithLabelValues("user_upsert", "success").Inc()

	s.logger.Info("user profile saved",
		zap.String("user_id", userID),
		zap.String("display_name", displayName))

	return s.Get(ctx, userID)
}

// IsDisplayNameAvailable reports whether a normalized display name is
// free to use. A user's own current name counts as available.
func (s *UserService) IsDisplayNameAvailable(ctx context.Context, displayName, excludeUserID string) (bool, error) {
	filter := bson.M{"display_name": displayName}
	if excludeUserID != "" {
		filter["user_id"] = bson.M{"$ne": excludeUserID}
	}

	count, err := utils.CountDocumentsWithTimeout(ctx, s.collection(), filter, utils.DefaultQueryTimeout)
	if err != nil {
		return false, err
	}
	return count == 0, nil
}

// CheckDisplayName validates and checks availability in one call, the
// shape the pre-registration availability endpoint returns
func (s *UserService) CheckDisplayName(ctx context.Context, name, excludeUserID string) (*models.DisplayNameAvailabilityResponse, error) {
	normalized, err := utils.ValidateDisplayName(name)
	if err != nil {
		return &models.DisplayNameAvailabilityResponse{
			Name:    name,
			Valid:   false,
			Message: err.Error(),
		}, nil
	}

	available, err := s.IsDisplayNameAvailable(ctx, normalized, excludeUserID)
	if err != nil {
		return nil, err
	}

	resp := &models.DisplayNameAvailabilityResponse{
		Name:      normalized,
		Valid:     true,
		Available: available,
	}
	if !available {
		resp.Message = "Este nome já está em uso."
	}
	return resp, nil
}

// IsPhoneNumberAvailable reports whether a canonical phone number is
// free to use, ignoring the given user's own profile
func (s *UserService) IsPhoneNumberAvailable(ctx context.Context, phone, excludeUserID string) (bool, error) {
	filter := bson.M{"phone_number": phone}
	if excludeUserID != "" {
		filter["user_id"] = bson.M{"$ne": excludeUserID}
	}

	count, err := utils.CountDocumentsWithTimeout(ctx, s.collection(), filter, utils.DefaultQueryTimeout)
	if err != nil {
		return false, err
	}
	return count == 0, nil
}

// phoneVerifiedFilter matches the profile only when its stored phone is
// the number the code was verified for
func phoneVerifiedFilter(userID, phone string) bson.M {
	return bson.M{"user_id": userID, "phone_number": phone}
}

// phoneVerifiedUpdate flips the flag and nothing else; the phone itself
// only changes through Upsert, which re-checks availability
func phoneVerifiedUpdate(now time.Time) bson.M {
	return bson.M{"$set": bson.M{
		"phone_number_verified": true,
		"updated_at":            now,
	}}
}

// MarkPhoneVerified flips the verified flag after a successful code
// validation. The update is filtered on the stored phone number, so
// verifying a code for any other number leaves the profile untouched.
func (s *UserService) MarkPhoneVerified(ctx context.Context, userID, phone string) error {
	result, err := utils.UpdateOneWithTimeout(ctx, s.collection(), phoneVerifiedFilter(userID, phone), phoneVerifiedUpdate(time.Now()), utils.DefaultQueryTimeout)
	if err != nil {
		observability.DatabaseOperations.WithLabelValues("user_verify_phone", "error").Inc()
		return err
	}
	if result.MatchedCount == 0 {
		// either no profile or the profile carries a different phone
		if _, getErr := s.Get(ctx, userID); getErr != nil {
			return getErr
		}
		return models.ErrPhoneMismatch
	}
	observability.DatabaseOperations.WithLabelValues("user_verify_phone", "success").Inc()

	s.logger.Info("phone number verified",
		zap.String("user_id", userID),
		zap.String("phone", observability.MaskPhone(phone)))

	return nil
}
