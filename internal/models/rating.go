package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Rating represents a user's review of a service provider. Providers are
// identified by the canonical digits of their WhatsApp number.
type Rating struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PrestadorWhatsapp  string             `bson:"prestador_whatsapp" json:"prestador_whatsapp"`
	PrestadorNome      string             `bson:"prestador_nome" json:"prestador_nome"`
	Servico            string             `bson:"servico" json:"servico"`
	Rating             int                `bson:"rating" json:"rating"`
	Comment            string             `bson:"comment" json:"comment"`
	UserID             string             `bson:"user_id" json:"user_id"`
	UserName           string             `bson:"user_name" json:"user_name"`
	CreatedAt          time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt          time.Time          `bson:"updated_at" json:"updated_at"`
}

// CreateRatingRequest is the payload for submitting a rating
type CreateRatingRequest struct {
	PrestadorWhatsapp string `json:"prestador_whatsapp" binding:"required"`
	PrestadorNome     string `json:"prestador_nome" binding:"required"`
	Servico           string `json:"servico" binding:"required"`
	Rating            int    `json:"rating" binding:"required"`
	Comment           string `json:"comment" binding:"required"`
}

// UpdateRatingRequest is the payload for editing an existing rating
type UpdateRatingRequest struct {
	PrestadorNome string `json:"prestador_nome" binding:"required"`
	Servico       string `json:"servico" binding:"required"`
	Rating        int    `json:"rating" binding:"required"`
	Comment       string `json:"comment" binding:"required"`
}

// ProviderGroup is one entry of the services-search result: all ratings
// of a single (provider phone, service) pair plus the computed average.
type ProviderGroup struct {
	PrestadorWhatsapp string   `json:"prestador_whatsapp"`
	PrestadorNome     string   `json:"prestador_nome"`
	Servico           string   `json:"servico"`
	Ratings           []Rating `json:"ratings"`
	AverageRating     float64  `json:"average_rating"`
}

// ProviderRatingsResponse is returned by the provider phone lookup
type ProviderRatingsResponse struct {
	PrestadorWhatsapp string   `json:"prestador_whatsapp"`
	Ratings           []Rating `json:"ratings"`
	AverageRating     float64  `json:"average_rating"`
}
