package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCreateRating_RequiresClaims(t *testing.T) {
	router := gin.New()
	router.POST("/ratings", CreateRating)

	w := performRequest(router, http.MethodPost, "/ratings", `{}`)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateRating_InvalidBody(t *testing.T) {
	router := authedRouter("user-1", "João Silva")
	router.POST("/ratings", CreateRating)

	w := performRequest(router, http.MethodPost, "/ratings", `{"rating":"five"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateRating_ValidationFailure(t *testing.T) {
	// the payload binds but violates the field rules, so the first
	// violation's message comes back as a 400
	router := authedRouter("user-1", "João Silva")
	router.POST("/ratings", CreateRating)

	body := `{"prestador_whatsapp":"123","prestador_nome":"Maria","servico":"eletricista","rating":5,"comment":"Excelente serviço!"}`
	w := performRequest(router, http.MethodPost, "/ratings", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Número de WhatsApp inválido.")
}

func TestUpdateRating_InvalidID(t *testing.T) {
	router := authedRouter("user-1", "João Silva")
	router.PUT("/ratings/:id", UpdateRating)

	body := `{"prestador_nome":"Maria","servico":"eletricista","rating":4,"comment":"Serviço muito bom."}`
	w := performRequest(router, http.MethodPut, "/ratings/not-a-hex-id", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Identificador inválido.")
}

func TestDeleteRating_InvalidID(t *testing.T) {
	router := authedRouter("user-1", "João Silva")
	router.DELETE("/ratings/:id", DeleteRating)

	w := performRequest(router, http.MethodDelete, "/ratings/zzz", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListRatings_RequiresExactlyOneFilter(t *testing.T) {
	router := gin.New()
	router.GET("/ratings", ListRatings)

	tests := []struct {
		name string
		path string
	}{
		{"no filter", "/ratings"},
		{"both filters", "/ratings?whatsapp=5511999998888&service=eletricista"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := performRequest(router, http.MethodGet, tt.path, "")
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestListMyRatings_RequiresClaims(t *testing.T) {
	router := gin.New()
	router.GET("/ratings/mine", ListMyRatings)

	w := performRequest(router, http.MethodGet, "/ratings/mine", "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
