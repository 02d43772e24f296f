package handlers

import (
	"errors"
	"net/http"
	"socketBoard/internal/errs"
	"socketBoard/internal/models"
	"socketBoard/internal/msgs"
	"socketBoard/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type RestHandler struct {
	userService       *services.UserService
	whiteboardService *services.WhiteboardService
	logger            *zap.Logger
}

func NewRestHandler(
	userService *services.UserService,
	whiteboardService *services.WhiteboardService,
	logger *zap.Logger,
) *RestHandler {
	return &RestHandler{
		userService:       userService,
		whiteboardService: whiteboardService,
		logger:            logger.Named("rest"),
	}
}

// CreateUser godoc
// @Summary      Create a user
// @Description  Creates a user with a unique email
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        user  body      models.CreateUserRequestBody  true  "User"
// @Success      200   {object}  models.User
// @Failure      400   {object}  models.ErrorResponse
// @Router       /api/users [post]
func (rh *RestHandler) CreateUser(ctx *gin.Context) {
	var request models.CreateUserRequestBody
	if err := ctx.ShouldBindJSON(&request); err != nil {
		rh.logger.Info("Error user json binding", zap.Error(err))
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.ErrorResponse{Error: msgs.MsgUserCreationFailed})
		return
	}

	user, registerErrs := rh.userService.Register(ctx.Request.Context(), &request)
	if len(registerErrs) > 0 {
		rh.logger.Info("Error creating user", zap.Errors("errors", registerErrs))
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.ErrorResponse{Error: msgs.MsgUserCreationFailed})
		return
	}

	ctx.JSON(http.StatusOK, user)
}

// GetAllWhiteboards godoc
// @Summary      List whiteboards
// @Description  Lists every whiteboard with its owner's name
// @Tags         whiteboards
// @Produce      json
// @Success      200  {array}   models.WhiteboardSummaryResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /api/whiteboards [get]
func (rh *RestHandler) GetAllWhiteboards(ctx *gin.Context) {
	whiteboards, err := rh.whiteboardService.GetAllWhiteboards(ctx.Request.Context())
	if err != nil {
		rh.logger.Error("Error listing whiteboards", zap.Error(err))
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, models.ErrorResponse{Error: msgs.MsgOperationFailed})
		return
	}
	ctx.JSON(http.StatusOK, whiteboards)
}

// GetWhiteboard godoc
// @Summary      Get a whiteboard
// @Description  Returns one whiteboard, its image data and its owner
// @Tags         whiteboards
// @Produce      json
// @Param        id   path      string  true  "Whiteboard ID"
// @Success      200  {object}  models.Whiteboard
// @Failure      404  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /api/whiteboards/{id} [get]
func (rh *RestHandler) GetWhiteboard(ctx *gin.Context) {
	whiteboard, err := rh.whiteboardService.GetWhiteboard(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		rh.abortWithLookupError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, whiteboard)
}

// GetWhiteboardSessions godoc
// @Summary      Whiteboard join history
// @Tags         whiteboards
// @Produce      json
// @Param        id   path      string  true  "Whiteboard ID"
// @Success      200  {array}   models.WhiteboardSession
// @Failure      404  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /api/whiteboards/{id}/sessions [get]
func (rh *RestHandler) GetWhiteboardSessions(ctx *gin.Context) {
	sessions, err := rh.whiteboardService.GetWhiteboardSessions(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		rh.abortWithLookupError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, sessions)
}

func (rh *RestHandler) abortWithLookupError(ctx *gin.Context, err error) {
	if errors.Is(err, errs.ErrWhiteboardNotFound) {
		ctx.AbortWithStatusJSON(http.StatusNotFound, models.ErrorResponse{Error: msgs.MsgWhiteboardNotFound})
		return
	}
	rh.logger.Error("Error fetching whiteboard", zap.String("whiteboard_id", ctx.Param("id")), zap.Error(err))
	ctx.AbortWithStatusJSON(http.StatusInternalServerError, models.ErrorResponse{Error: msgs.MsgOperationFailed})
}
