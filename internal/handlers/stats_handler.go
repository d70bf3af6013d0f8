package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"luxeledger/internal/ledger"
	"luxeledger/internal/services"
)

// StatsHandler serves the derived statistics views.
type StatsHandler struct {
	statsService services.StatsServicer
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(statsService services.StatsServicer) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// PeriodQuery selects a period around an anchor date.
type PeriodQuery struct {
	Period string `form:"period" binding:"omitempty,period_type"`
	Anchor string `form:"anchor" binding:"omitempty,ledger_date"`
}

func (q PeriodQuery) period() ledger.PeriodType {
	if q.Period == "" {
		return ledger.PeriodMonth
	}
	return ledger.PeriodType(q.Period)
}

// GetPeriod returns the ranges around an anchor
// @Summary     Period ranges
// @Description Day, week, accounting month and year around the anchor date
// @Tags        stats
// @Produce     json
// @Param       anchor query string false "Anchor date (YYYY-MM-DD), defaults to today"
// @Success     200 {object} services.PeriodInfo
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /stats/period [get]
func (h *StatsHandler) GetPeriod(c *gin.Context) {
	var q PeriodQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, bindingError(err))
		return
	}
	anchor, err := parseAnchor(q.Anchor)
	if err != nil {
		respondWithError(c, err)
		return
	}

	info, err := h.statsService.PeriodRange(anchor)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, info)
}

// GetSummary returns the statistics of one period
// @Summary     Period summary
// @Description Totals, category breakdowns, chart series and the headline position
// @Tags        stats
// @Produce     json
// @Param       period query string false "day, week, month (default) or year"
// @Param       anchor query string false "Anchor date (YYYY-MM-DD), defaults to today"
// @Success     200 {object} services.Summary
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /stats/summary [get]
func (h *StatsHandler) GetSummary(c *gin.Context) {
	var q PeriodQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, bindingError(err))
		return
	}
	anchor, err := parseAnchor(q.Anchor)
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.statsService.Summary(q.period(), anchor)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GetRecent returns the last two days of activity
// @Summary     Recent activity
// @Tags        stats
// @Produce     json
// @Success     200 {array}  models.Transaction
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /stats/recent [get]
func (h *StatsHandler) GetRecent(c *gin.Context) {
	txs, err := h.statsService.Recent()
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"transactions": txs})
}

// GetInsight returns a short narrative about one period
// @Summary     Period insight
// @Tags        stats
// @Produce     json
// @Param       period query string false "day, week, month (default) or year"
// @Param       anchor query string false "Anchor date (YYYY-MM-DD), defaults to today"
// @Success     200 {object} insight.Insight
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /stats/insight [get]
func (h *StatsHandler) GetInsight(c *gin.Context) {
	var q PeriodQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, bindingError(err))
		return
	}
	anchor, err := parseAnchor(q.Anchor)
	if err != nil {
		respondWithError(c, err)
		return
	}

	in, err := h.statsService.Insight(c.Request.Context(), q.period(), anchor)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, in)
}
