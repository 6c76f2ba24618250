package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/dnl4/brasil/internal/config"
	"github.com/dnl4/brasil/internal/middleware"
	"github.com/dnl4/brasil/internal/models"
	"github.com/dnl4/brasil/internal/observability"
	"github.com/dnl4/brasil/internal/utils"
)

const phoneCooldownKeyPrefix = "phone:verification:cooldown:"

// SendPhoneVerification generates a verification code and delivers it to
// the given phone number over WhatsApp. A per-phone cooldown throttles
// repeated sends.
func SendPhoneVerification(c *gin.Context) {
	var req models.SendVerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	phone := utils.StripFormatting(req.PhoneNumber)
	if err := utils.ValidateCanonicalPhone(phone); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Número de telefone inválido."})
		return
	}

	ctx := c.Request.Context()

	acquired, err := config.Redis.SetNX(ctx, phoneCooldownKeyPrefix+phone, "1", config.AppConfig.PhoneVerificationCooldown).Result()
	if err != nil {
		observability.Logger().Error("failed to check verification cooldown", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Erro interno. Tente novamente."})
		return
	}
	if !acquired {
		c.JSON(http.StatusTooManyRequests, ErrorResponse{Error: "Aguarde antes de pedir um novo código."})
		return
	}

	code := utils.GenerateVerificationCode()
	verificationStore.Store(phone, code)

	if err := utils.SendVerificationCode(ctx, phone, code); err != nil {
		observability.VerificationCodesSent.WithLabelValues("error").Inc()
		observability.Logger().Error("failed to send verification code",
			zap.String("phone", observability.MaskPhone(phone)),
			zap.Error(err))
		// nothing was delivered, so free the cooldown for an immediate retry
		if delErr := config.Redis.Del(ctx, phoneCooldownKeyPrefix+phone).Err(); delErr != nil {
			observability.Logger().Warn("failed to release verification cooldown", zap.Error(delErr))
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Não foi possível enviar o código. Tente novamente."})
		return
	}
	observability.VerificationCodesSent.WithLabelValues("success").Inc()

	observability.Logger().Info("verification code sent",
		zap.String("phone", observability.MaskPhone(phone)))

	c.JSON(http.StatusOK, SuccessResponse{Message: "Código de verificação enviado."})
}

// ValidatePhoneVerification checks a submitted verification code and, on
// success, marks the caller's phone number as verified. Wrong codes and
// expired codes are indistinguishable to the caller.
func ValidatePhoneVerification(c *gin.Context) {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Claims not found"})
		return
	}

	var req models.ValidateVerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	phone := utils.StripFormatting(req.PhoneNumber)

	if len(req.Code) != models.VerificationCodeLength || !verificationStore.Verify(phone, req.Code) {
		observability.VerificationAttempts.WithLabelValues("failure").Inc()
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Código inválido ou expirado."})
		return
	}
	observability.VerificationAttempts.WithLabelValues("success").Inc()

	if err := userService.MarkPhoneVerified(c.Request.Context(), claims.UserID(), phone); err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "Telefone verificado."})
}
