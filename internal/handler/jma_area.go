package handler

import (
	"context"
	"errors"
	"net/http"

	"jma-area-api/internal/models"
	"jma-area-api/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	msgMissingCoordinates = "Latitude or longitude is missing."
	msgUnresolved         = "Could not get area code."
	msgNotFound           = "Could not find area for the resolved code."
	msgInternal           = "Internal server error."
)

// JMAAreaHandler handles JMA area lookup requests
type JMAAreaHandler struct {
	service JMAAreaService
}

// Service interface for dependency injection
type JMAAreaService interface {
	LookupArea(ctx context.Context, latitude, longitude string) (*models.CodeInfo, error)
}

// AreaResponse is the envelope of every /jma_area response.
type AreaResponse struct {
	Success bool     `json:"success"`
	Data    AreaData `json:"data"`
}

// AreaData carries either the matched municipality or an error message.
type AreaData struct {
	Code  *models.CodeInfo `json:"code,omitempty"`
	Error string           `json:"error,omitempty"`
}

// NewJMAAreaHandler creates a new JMA area handler
func NewJMAAreaHandler(svc JMAAreaService) *JMAAreaHandler {
	return &JMAAreaHandler{service: svc}
}

// JMAArea handles GET /jma_area requests. Failures are reported in the body, the status is always 200.
//
//	@Summary	Look up JMA areas for a coordinate
//	@Produce	json
//	@Param		latitude	query		string	true	"Latitude"
//	@Param		longitude	query		string	true	"Longitude"
//	@Success	200			{object}	AreaResponse
//	@Router		/jma_area [get]
func (h *JMAAreaHandler) JMAArea(c *gin.Context) {
	latitude := c.Query("latitude")
	longitude := c.Query("longitude")

	if latitude == "" || longitude == "" {
		fail(c, msgMissingCoordinates)
		return
	}

	info, err := h.service.LookupArea(c.Request.Context(), latitude, longitude)
	switch {
	case errors.Is(err, service.ErrMissingCoordinates):
		fail(c, msgMissingCoordinates)
	case errors.Is(err, service.ErrAreaCodeNotResolved):
		fail(c, msgUnresolved)
	case errors.Is(err, service.ErrAreaNotFound):
		fail(c, msgNotFound)
	case err != nil || info == nil:
		fail(c, msgInternal)
	default:
		c.JSON(http.StatusOK, AreaResponse{Success: true, Data: AreaData{Code: info}})
	}
}

func fail(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, AreaResponse{Success: false, Data: AreaData{Error: msg}})
}
