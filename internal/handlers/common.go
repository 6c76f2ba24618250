package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/dnl4/brasil/internal/models"
	"github.com/dnl4/brasil/internal/observability"
	"github.com/dnl4/brasil/internal/services"
	"github.com/dnl4/brasil/internal/utils"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse represents a success response
type SuccessResponse struct {
	Message string `json:"message"`
}

// Package-level services, wired once at startup
var (
	userService       *services.UserService
	ratingService     *services.RatingService
	reportService     *services.ReportService
	suggestionService *services.SuggestionService
	verificationStore *services.VerificationStore
)

// Init wires the handler package's services. Must run after config and
// database initialization.
func Init(logger *zap.Logger, store *services.VerificationStore) {
	userService = services.NewUserService(logger)
	ratingService = services.NewRatingService(logger)
	reportService = services.NewReportService(ratingService, logger)
	suggestionService = services.NewSuggestionService(logger)
	verificationStore = store
}

// writeServiceError maps service-layer errors to HTTP responses
func writeServiceError(c *gin.Context, err error) {
	var validationErr utils.ValidationError
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: validationErr.Message})
	case errors.Is(err, models.ErrInvalidID):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Identificador inválido."})
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Registro não encontrado."})
	case errors.Is(err, models.ErrNotOwner):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "Apenas o autor pode alterar este registro."})
	case errors.Is(err, models.ErrDisplayNameTaken):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "Este nome já está em uso."})
	case errors.Is(err, models.ErrPhoneNumberTaken):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "Este número já está em uso."})
	case errors.Is(err, models.ErrPhoneMismatch):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "O número verificado não corresponde ao telefone do cadastro."})
	case errors.Is(err, models.ErrAlreadyVoted):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "Você já votou nesta sugestão."})
	case errors.Is(err, models.ErrNotVoted):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "Você ainda não votou nesta sugestão."})
	case errors.Is(err, models.ErrDuplicateReport):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "Você já denunciou esta avaliação."})
	case errors.Is(err, utils.ErrDisplayNameRequired),
		errors.Is(err, utils.ErrDisplayNameTooShort),
		errors.Is(err, utils.ErrDisplayNameTooLong),
		errors.Is(err, utils.ErrDisplayNameInvalid):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		observability.Logger().Error("request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Erro interno. Tente novamente."})
	}
}
