package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReportReason classifies why a rating was reported
type ReportReason string

const (
	ReportReasonFake      ReportReason = "fake"
	ReportReasonOffensive ReportReason = "offensive"
	ReportReasonSpam      ReportReason = "spam"
	ReportReasonOther     ReportReason = "other"
)

// ReportReasonLabels maps report reasons to their user-facing labels
var ReportReasonLabels = map[ReportReason]string{
	ReportReasonFake:      "Avaliação falsa",
	ReportReasonOffensive: "Conteúdo ofensivo",
	ReportReasonSpam:      "Spam",
	ReportReasonOther:     "Outro motivo",
}

// Valid reports whether the reason is one of the known values
func (r ReportReason) Valid() bool {
	_, ok := ReportReasonLabels[r]
	return ok
}

// Report represents an abuse report against a rating
type Report struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	RatingID    primitive.ObjectID `bson:"rating_id" json:"rating_id"`
	ReporterID  string             `bson:"reporter_id" json:"reporter_id"`
	Reason      ReportReason       `bson:"reason" json:"reason"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
}

// CreateReportRequest is the payload for reporting a rating
type CreateReportRequest struct {
	RatingID    string       `json:"rating_id" binding:"required"`
	Reason      ReportReason `json:"reason" binding:"required"`
	Description string       `json:"description"`
}
