package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"pulseboard/internal/domain/psa"
	"pulseboard/internal/infrastructure/persistence/models"
	"pulseboard/internal/shared/logger"
)

// FeedbackRepository persists cached ticket satisfaction responses.
type FeedbackRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewFeedbackRepository(db *gorm.DB, logger logger.Interface) psa.FeedbackRepository {
	return &FeedbackRepository{db: db, logger: logger}
}

// UpsertBatch writes feedback rows keyed by provider ID. Callers are
// responsible for having dropped rows whose ticket is absent locally.
func (r *FeedbackRepository) UpsertBatch(ctx context.Context, feedback []*psa.Feedback) error {
	if len(feedback) == 0 {
		return nil
	}

	rows := make([]*models.PSAFeedbackModel, 0, len(feedback))
	for _, f := range feedback {
		rows = append(rows, &models.PSAFeedbackModel{
			ID:       f.ID,
			TicketID: f.TicketID,
			Score:    f.Score,
			Date:     f.Date,
		})
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"ticket_id", "score", "date", "updated_at",
		}),
	}).Create(&rows).Error
	if err != nil {
		r.logger.Errorw("failed to upsert feedback", "count", len(rows), "error", err)
		return fmt.Errorf("failed to upsert feedback: %w", err)
	}
	return nil
}

// List returns feedback scoped through the ticket's client against the
// restriction set. A non-nil empty ClientIDs yields no rows.
func (r *FeedbackRepository) List(ctx context.Context, filter psa.FeedbackFilter) ([]*psa.Feedback, error) {
	if filter.ClientIDs != nil && len(filter.ClientIDs) == 0 {
		return []*psa.Feedback{}, nil
	}

	query := r.db.WithContext(ctx).Model(&models.PSAFeedbackModel{})
	if filter.ClientIDs != nil {
		query = query.
			Joins("JOIN psa_tickets ON psa_tickets.id = psa_feedback.ticket_id").
			Where("psa_tickets.client_id IN ?", filter.ClientIDs)
	}
	if filter.StartDate != nil {
		query = query.Where("psa_feedback.date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("psa_feedback.date <= ?", *filter.EndDate)
	}

	var rows []*models.PSAFeedbackModel
	if err := query.Find(&rows).Error; err != nil {
		r.logger.Errorw("failed to list feedback", "error", err)
		return nil, fmt.Errorf("failed to list feedback: %w", err)
	}

	feedback := make([]*psa.Feedback, 0, len(rows))
	for _, row := range rows {
		feedback = append(feedback, &psa.Feedback{
			ID:        row.ID,
			TicketID:  row.TicketID,
			Score:     row.Score,
			Date:      row.Date,
			UpdatedAt: row.UpdatedAt,
		})
	}
	return feedback, nil
}
