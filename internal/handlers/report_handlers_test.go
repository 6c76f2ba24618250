package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCreateReport_RequiresClaims(t *testing.T) {
	router := gin.New()
	router.POST("/reports", CreateReport)

	w := performRequest(router, http.MethodPost, "/reports", `{}`)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateReport_InvalidBody(t *testing.T) {
	router := authedRouter("user-1", "João Silva")
	router.POST("/reports", CreateReport)

	w := performRequest(router, http.MethodPost, "/reports", `{"rating_id":"abc"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateReport_UnknownReason(t *testing.T) {
	router := authedRouter("user-1", "João Silva")
	router.POST("/reports", CreateReport)

	body := `{"rating_id":"65b0c6f1a2b3c4d5e6f70809","reason":"bogus"}`
	w := performRequest(router, http.MethodPost, "/reports", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Motivo de denúncia inválido.")
}

func TestListReports_MissingRatingID(t *testing.T) {
	router := gin.New()
	router.GET("/reports", ListReports)

	w := performRequest(router, http.MethodGet, "/reports", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListReports_InvalidRatingID(t *testing.T) {
	router := gin.New()
	router.GET("/reports", ListReports)

	w := performRequest(router, http.MethodGet, "/reports?rating_id=not-hex", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
