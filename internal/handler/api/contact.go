package api

import (
	"net/http"

	reqdto "casegate/internal/handler/dto/request"
	resdto "casegate/internal/handler/dto/response"
	"casegate/internal/handler/httperr"
	"casegate/internal/pkg/errs"
	"casegate/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	cmds commands.ContactCommands
}

func NewContactHandler(cmds commands.ContactCommands) *ContactHandler {
	if err := reqdto.RegisterValidators(); err != nil {
		panic(err)
	}
	return &ContactHandler{cmds: cmds}
}

// @Summary Submit contact form
// @Tags contact
// @Accept json
// @Produce json
// @Param request body reqdto.ContactRequest true "Contact request"
// @Success 200 {object} resdto.ContactResponse
// @Failure 400 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/contact [post]
func (h *ContactHandler) Submit(c *gin.Context) {
	var req reqdto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBindError(c, err)
		return
	}

	result, err := h.cmds.Submit(c.Request.Context(), req.ToInput(), c.ClientIP())
	if err != nil {
		if errs.Is(err, errs.ErrDatabaseOperationFailed) {
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to submit contact request", "")
			return
		}
		abortCommandError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.ContactResponse{
		Success: true,
		Message: resdto.MessageContactReceived,
		ID:      result.RequestID,
	})
}
