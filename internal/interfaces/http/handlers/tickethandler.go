package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"pulseboard/internal/application/dashboard/usecases"
	"pulseboard/internal/interfaces/http/middleware"
	"pulseboard/internal/shared/biztime"
	"pulseboard/internal/shared/logger"
	"pulseboard/internal/shared/utils"
)

const (
	defaultMonthlyWindows = 6
	maxMonthlyWindows     = 24
)

// TicketHandler serves per-client ticket counts and the monthly
// opened/closed chart data.
type TicketHandler struct {
	getTicketStatsUseCase  *usecases.GetTicketStatsUseCase
	getMonthlyStatsUseCase *usecases.GetMonthlyStatsUseCase
	logger                 logger.Interface
}

func NewTicketHandler(
	getTicketStatsUseCase *usecases.GetTicketStatsUseCase,
	getMonthlyStatsUseCase *usecases.GetMonthlyStatsUseCase,
	logger logger.Interface,
) *TicketHandler {
	return &TicketHandler{
		getTicketStatsUseCase:  getTicketStatsUseCase,
		getMonthlyStatsUseCase: getMonthlyStatsUseCase,
		logger:                 logger,
	}
}

// GetStats handles GET /tickets/stats?clientId=&startDate=&endDate=
func (h *TicketHandler) GetStats(c *gin.Context) {
	restrictions, ok := middleware.RestrictionsFrom(c)
	if !ok {
		h.logger.Error("restriction set not found in context")
		utils.ErrorResponse(c, http.StatusInternalServerError, "internal error")
		return
	}

	clientIDRaw := c.Query("clientId")
	if clientIDRaw == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "clientId parameter is required")
		return
	}
	clientID, err := strconv.Atoi(clientIDRaw)
	if err != nil || clientID <= 0 {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid clientId parameter")
		return
	}

	startDate, err := utils.ParseOptionalDateQuery(c, "startDate")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	endDate, err := utils.ParseOptionalDateQuery(c, "endDate")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	stats, err := h.getTicketStatsUseCase.Execute(c.Request.Context(), usecases.GetTicketStatsCommand{
		ClientID:     clientID,
		StartDate:    startDate,
		EndDate:      endDate,
		Restrictions: restrictions,
	})
	if err != nil {
		h.logger.Warnw("failed to build ticket stats", "client_id", clientID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", stats)
}

type monthRequest struct {
	Label     string `json:"label" binding:"required"`
	StartDate string `json:"startDate" binding:"required"`
	EndDate   string `json:"endDate" binding:"required"`
}

type monthlyStatsRequest struct {
	ClientID *int           `json:"clientId"`
	Months   []monthRequest `json:"months"`
}

// GetMonthlyStats handles POST /tickets/monthly-stats. The caller
// supplies the month windows; output order matches input order. An
// empty months list falls back to the last six calendar months.
func (h *TicketHandler) GetMonthlyStats(c *gin.Context) {
	restrictions, ok := middleware.RestrictionsFrom(c)
	if !ok {
		h.logger.Error("restriction set not found in context")
		utils.ErrorResponse(c, http.StatusInternalServerError, "internal error")
		return
	}

	var req monthlyStatsRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
			return
		}
	}
	if len(req.Months) > maxMonthlyWindows {
		utils.ErrorResponse(c, http.StatusBadRequest, "too many month windows requested")
		return
	}
	if req.ClientID != nil && *req.ClientID <= 0 {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid clientId")
		return
	}

	windows := monthWindows(biztime.NowUTC(), defaultMonthlyWindows)
	if len(req.Months) > 0 {
		windows = make([]usecases.MonthWindow, 0, len(req.Months))
		for _, m := range req.Months {
			start, err := utils.ParseDateString(m.StartDate, "startDate")
			if err != nil {
				utils.ErrorResponseWithError(c, err)
				return
			}
			end, err := utils.ParseDateString(m.EndDate, "endDate")
			if err != nil {
				utils.ErrorResponseWithError(c, err)
				return
			}
			windows = append(windows, usecases.MonthWindow{Label: m.Label, Start: start, End: end})
		}
	}

	stats, err := h.getMonthlyStatsUseCase.Execute(c.Request.Context(), usecases.GetMonthlyStatsCommand{
		ClientID:     req.ClientID,
		Windows:      windows,
		Restrictions: restrictions,
	})
	if err != nil {
		h.logger.Errorw("failed to build monthly stats", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", stats)
}

// monthWindows builds calendar-month windows newest first, starting with
// the month containing now.
func monthWindows(now time.Time, months int) []usecases.MonthWindow {
	windows := make([]usecases.MonthWindow, 0, months)
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < months; i++ {
		start := first.AddDate(0, -i, 0)
		windows = append(windows, usecases.MonthWindow{
			Label: start.Format("January 2006"),
			Start: start,
			End:   start.AddDate(0, 1, 0),
		})
	}
	return windows
}
