package api

import (
	"net/http"
	"strconv"

	resdto "casegate/internal/handler/dto/response"
	"casegate/internal/handler/httperr"
	"casegate/internal/pkg/errs"
	"casegate/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	q queries.UnlockQueries
}

func NewAdminHandler(q queries.UnlockQueries) *AdminHandler {
	return &AdminHandler{q: q}
}

// @Summary List unlock records
// @Description Newest first; tokens are never included
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param case_study_id query string false "Filter by case study"
// @Param limit query int false "Page size (1-100)"
// @Success 200 {object} resdto.UnlockListResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/admin/unlocks [get]
func (h *AdminHandler) ListUnlocks(c *gin.Context) {
	filter := queries.UnlockListFilter{CaseStudyID: c.Query("case_study_id")}
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid limit", "")
			return
		}
		filter.Limit = limit
	}

	views, err := h.q.ListUnlocks(c.Request.Context(), filter)
	if err != nil {
		if errs.Is(err, errs.ErrValidation) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidCaseStudy, "")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list unlocks", "")
		return
	}

	resp, err := resdto.FromUnlockViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list unlocks", "")
		return
	}
	c.JSON(http.StatusOK, resp)
}
