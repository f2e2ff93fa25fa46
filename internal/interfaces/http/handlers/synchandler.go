package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"pulseboard/internal/application/sync/usecases"
	"pulseboard/internal/infrastructure/tasks"
	"pulseboard/internal/shared/biztime"
	"pulseboard/internal/shared/logger"
	"pulseboard/internal/shared/utils"
)

const syncHistoryLimit = 10

// SyncHandler triggers background sync runs and exposes their status.
type SyncHandler struct {
	fullSyncUseCase *usecases.FullSyncUseCase
	statusUseCase   *usecases.GetSyncStatusUseCase
	runner          *tasks.Runner
	logger          logger.Interface
}

func NewSyncHandler(
	fullSyncUseCase *usecases.FullSyncUseCase,
	statusUseCase *usecases.GetSyncStatusUseCase,
	runner *tasks.Runner,
	logger logger.Interface,
) *SyncHandler {
	return &SyncHandler{
		fullSyncUseCase: fullSyncUseCase,
		statusUseCase:   statusUseCase,
		runner:          runner,
		logger:          logger,
	}
}

type triggerSyncRequest struct {
	// MonthsBack overrides the configured ticket lookback for this run.
	MonthsBack int `json:"monthsBack" binding:"omitempty,gt=0,lte=120"`
}

// Trigger handles POST /sync. The sync runs in the background; the
// response carries a task ID the client can poll.
func (h *SyncHandler) Trigger(c *gin.Context) {
	var req triggerSyncRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
			return
		}
	}

	var start, end time.Time
	if req.MonthsBack > 0 {
		end = biztime.NowUTC()
		start = end.AddDate(0, -req.MonthsBack, 0)
	}

	taskID := h.runner.Submit("full-sync", func(ctx context.Context, id string) error {
		_, err := h.fullSyncUseCase.Execute(ctx, usecases.FullSyncCommand{
			StartDate: start,
			EndDate:   end,
			TaskID:    &id,
		})
		return err
	})

	h.logger.Infow("full sync triggered", "task_id", taskID, "months_back", req.MonthsBack)
	utils.AcceptedResponse(c, gin.H{"taskId": taskID}, "sync started")
}

// GetStatus handles GET /sync/status, returning the most recent sync
// attempts across all data types.
func (h *SyncHandler) GetStatus(c *gin.Context) {
	records, err := h.statusUseCase.Execute(c.Request.Context(), syncHistoryLimit)
	if err != nil {
		h.logger.Errorw("failed to load sync status", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", records)
}

// GetTask handles GET /sync/tasks/:id
func (h *SyncHandler) GetTask(c *gin.Context) {
	id := c.Param("id")
	task := h.runner.Get(id)
	if task == nil {
		utils.ErrorResponse(c, http.StatusNotFound, "task not found")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", task)
}
