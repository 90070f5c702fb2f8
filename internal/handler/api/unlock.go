package api

import (
	"log/slog"
	"net/http"
	"slices"

	"casegate/internal/domain/unlock"
	reqdto "casegate/internal/handler/dto/request"
	resdto "casegate/internal/handler/dto/response"
	"casegate/internal/handler/httperr"
	"casegate/internal/pkg/errs"
	"casegate/internal/pkg/unlockcache"
	"casegate/internal/usecase/commands"
	"casegate/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const (
	msgMissingFields    = "Missing required fields"
	msgInvalidEmail     = "Invalid email address"
	msgInvalidCaseStudy = "Invalid case study id"
	msgInvalidBody      = "Invalid request body"
	msgTooManyRequests  = "Too many requests"
	msgEmailFailed      = "Failed to send email"
	msgStorageFailed    = "Failed to process unlock request"
)

type UnlockHandler struct {
	cmds         commands.UnlockCommands
	q            queries.UnlockQueries
	cache        *unlockcache.Cache
	markRedeemed bool
}

func NewUnlockHandler(cmds commands.UnlockCommands, q queries.UnlockQueries, cache *unlockcache.Cache, markRedeemed bool) *UnlockHandler {
	if err := reqdto.RegisterValidators(); err != nil {
		panic(err)
	}
	return &UnlockHandler{cmds: cmds, q: q, cache: cache, markRedeemed: markRedeemed}
}

// @Summary Request case study unlock
// @Description Issues (or reuses) an unlock token and emails the redemption link
// @Tags case-studies
// @Accept json
// @Produce json
// @Param request body reqdto.UnlockRequest true "Unlock request"
// @Success 200 {object} resdto.UnlockResponse
// @Failure 400 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/case-studies/unlock [post]
func (h *UnlockHandler) RequestUnlock(c *gin.Context) {
	var req reqdto.UnlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBindError(c, err)
		return
	}

	result, err := h.cmds.RequestUnlock(c.Request.Context(), req.ToInput())
	if err != nil {
		abortCommandError(c, err)
		return
	}

	if result.AlreadyUnlocked {
		c.JSON(http.StatusOK, resdto.UnlockResponse{
			Success:         true,
			Message:         resdto.MessageAlreadyUnlocked,
			AlreadyUnlocked: true,
		})
		return
	}
	c.JSON(http.StatusOK, resdto.UnlockResponse{
		Success: true,
		Message: resdto.MessageUnlockSent,
		EmailID: result.MessageID,
	})
}

// Preflight answers bare OPTIONS requests that carry no Origin header.
func Preflight(c *gin.Context) {
	c.Status(http.StatusOK)
}

// @Summary Redeem an unlock link
// @Description Checks the token from the emailed link and remembers the grant in this browser
// @Tags case-studies
// @Produce json
// @Param id path string true "Case study ID"
// @Param unlock query string true "Unlock token"
// @Success 200 {object} resdto.AccessResponse
// @Failure 500 {object} httperr.Response
// @Router /api/case-studies/{id}/redeem [get]
func (h *UnlockHandler) Redeem(c *gin.Context) {
	h.redeem(c, c.Param("id"), c.Query("unlock"))
}

// @Summary Check case study access
// @Description A token in the URL is always checked against the store; otherwise the browser's unlock cookie decides
// @Tags case-studies
// @Produce json
// @Param id path string true "Case study ID"
// @Param unlock query string false "Unlock token"
// @Success 200 {object} resdto.AccessResponse
// @Router /api/case-studies/{id}/access [get]
func (h *UnlockHandler) Access(c *gin.Context) {
	contentID := c.Param("id")
	if token := c.Query("unlock"); token != "" {
		h.redeem(c, contentID, token)
		return
	}
	c.JSON(http.StatusOK, resdto.AccessResponse{Unlocked: h.cache.Has(c, contentID)})
}

// @Summary Forget unlocked case studies
// @Description Clears this browser's unlock cookie
// @Tags case-studies
// @Success 204 "No Content"
// @Router /api/case-studies/access [delete]
func (h *UnlockHandler) ClearAccess(c *gin.Context) {
	h.cache.ClearAll(c)
	c.Status(http.StatusNoContent)
}

func (h *UnlockHandler) redeem(c *gin.Context, contentID, token string) {
	view, err := h.q.CheckRedemption(c.Request.Context(), contentID, token)
	if err != nil {
		if errs.Is(err, errs.ErrRedemptionNotFound) {
			c.JSON(http.StatusOK, resdto.AccessResponse{Unlocked: false})
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to check unlock", "")
		return
	}

	if err := h.cache.Set(c, view.CaseStudyID, view.Token); err != nil {
		slog.Warn("failed to remember unlock in cookie", slog.String("content_id", view.CaseStudyID), slog.String("error", err.Error()))
	}

	if h.markRedeemed && view.UnlockedAt == nil {
		if _, err := h.cmds.MarkRedeemed(c.Request.Context(), view.CaseStudyID, view.Token); err != nil {
			slog.Warn("failed to stamp redemption", slog.String("content_id", view.CaseStudyID), slog.String("error", err.Error()))
		}
	}

	c.JSON(http.StatusOK, resdto.AccessResponse{Unlocked: true})
}

func abortBindError(c *gin.Context, err error) {
	tags := reqdto.FailedTags(err)
	switch {
	case tags == nil:
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidBody, "")
	case slices.Contains(tags, "required"):
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgMissingFields, "")
	case slices.Contains(tags, "contentid"):
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidCaseStudy, "")
	default:
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidBody, "")
	}
}

func abortCommandError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, unlock.ErrMissingField):
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgMissingFields, "")
	case errs.Is(err, unlock.ErrInvalidEmail):
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidEmail, "")
	case errs.Is(err, unlock.ErrInvalidContentID):
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidCaseStudy, "")
	case errs.Is(err, errs.ErrValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidBody, "")
	case errs.Is(err, errs.ErrRateLimited):
		httperr.AbortWithError(c, http.StatusTooManyRequests, err, msgTooManyRequests, "")
	case errs.Is(err, errs.ErrEmailDeliveryFailed):
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msgEmailFailed, errs.Cause(err).Error())
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msgStorageFailed, "")
	}
}
