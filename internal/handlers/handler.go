package handlers

import (
	"net/http"
	"socketBoard/internal/models"

	"github.com/gin-gonic/gin"
)

// RoomCounter reports how many rooms currently have live members.
type RoomCounter interface {
	RoomCount() int
}

type Handler struct {
	rooms RoomCounter
}

func NewHandler(rooms RoomCounter) *Handler {
	return &Handler{
		rooms: rooms,
	}
}

// Health godoc
// @Summary      Liveness probe
// @Tags         health
// @Produce      json
// @Success      200  {object}  models.HealthResponse
// @Router       /healthz [get]
func (h *Handler) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, models.HealthResponse{
		Status: "ok",
		Rooms:  h.rooms.RoomCount(),
	})
}

func (h *Handler) NotFound(ctx *gin.Context) {
	ctx.JSON(http.StatusNotFound, models.ErrorResponse{Error: http.StatusText(http.StatusNotFound)})
}
