package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestSendPhoneVerification_InvalidBody(t *testing.T) {
	router := authedRouter("user-1", "João Silva")
	router.POST("/phone/verification", SendPhoneVerification)

	w := performRequest(router, http.MethodPost, "/phone/verification", `{}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSendPhoneVerification_InvalidPhone(t *testing.T) {
	router := authedRouter("user-1", "João Silva")
	router.POST("/phone/verification", SendPhoneVerification)

	w := performRequest(router, http.MethodPost, "/phone/verification", `{"phone_number":"123"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestValidatePhoneVerification_RequiresClaims(t *testing.T) {
	router := gin.New()
	router.POST("/phone/verification/validate", ValidatePhoneVerification)

	w := performRequest(router, http.MethodPost, "/phone/verification/validate", `{"phone_number":"5511999998888","code":"123456"}`)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestValidatePhoneVerification_UnknownCode(t *testing.T) {
	// no code was ever stored for this phone, so validation fails with
	// the single generic message
	router := authedRouter("user-1", "João Silva")
	router.POST("/phone/verification/validate", ValidatePhoneVerification)

	w := performRequest(router, http.MethodPost, "/phone/verification/validate", `{"phone_number":"5511999990000","code":"123456"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Código inválido ou expirado.")
}

func TestValidatePhoneVerification_InvalidBody(t *testing.T) {
	router := authedRouter("user-1", "João Silva")
	router.POST("/phone/verification/validate", ValidatePhoneVerification)

	w := performRequest(router, http.MethodPost, "/phone/verification/validate", `{"phone_number":"5511999998888"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
