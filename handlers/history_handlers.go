package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/vit0-9/campaign_url_api/models"
	"github.com/vit0-9/campaign_url_api/pkg/utils"
)

const defaultHistoryLimit = 20

type HistoryHandlers struct {
	history *utils.HistoryLog
}

func NewHistoryHandlers(history *utils.HistoryLog) *HistoryHandlers {
	return &HistoryHandlers{history: history}
}

// ListHistoryHandler godoc
// @Summary      Recent campaign URLs
// @Description  Lists recorded campaign URLs, newest first.
// @Tags         History
// @Produce      json
// @Param        limit query int false "Maximum records (default 20, 0 for all)"
// @Success      200 {object} models.HistoryResponse
// @Failure      400 {object} models.APIErrorResponse "Bad limit"
// @Router       /history [get]
func (h *HistoryHandlers) ListHistoryHandler(c *gin.Context) {
	limit := defaultHistoryLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			abortWithError(c, http.StatusBadRequest, models.ErrorCodeInvalidRequest, "limit must be a non-negative integer", "")
			return
		}
		limit = parsed
	}

	records, err := h.history.List(limit)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.PureJSON(http.StatusOK, models.HistoryResponse{Records: records, Count: len(records)})
}

// ROIHandler godoc
// @Summary      Time and money saved
// @Description  Estimates manual work saved: 3 minutes and 3 USD per generated draft.
// @Tags         History
// @Produce      json
// @Success      200 {object} utils.ROISummary
// @Router       /history/roi [get]
func (h *HistoryHandlers) ROIHandler(c *gin.Context) {
	summary, err := h.history.ROI()
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.PureJSON(http.StatusOK, summary)
}
