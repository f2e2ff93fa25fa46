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

// upsertChunkSize bounds the size of a single multi-row upsert statement.
const upsertChunkSize = 1000

// TicketRepository persists cached PSA tickets.
type TicketRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewTicketRepository(db *gorm.DB, logger logger.Interface) psa.TicketRepository {
	return &TicketRepository{db: db, logger: logger}
}

// UpsertBatch writes tickets keyed by provider ID in chunks,
// last-write-wins.
func (r *TicketRepository) UpsertBatch(ctx context.Context, tickets []*psa.Ticket) error {
	if len(tickets) == 0 {
		return nil
	}

	rows := make([]*models.PSATicketModel, 0, len(tickets))
	for _, t := range tickets {
		rows = append(rows, ticketToModel(t))
	}

	for start := 0; start < len(rows); start += upsertChunkSize {
		end := min(start+upsertChunkSize, len(rows))
		err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"client_id", "status_id", "status_name",
				"date_occurred", "date_closed", "is_closed", "updated_at",
			}),
		}).Create(rows[start:end]).Error
		if err != nil {
			r.logger.Errorw("failed to upsert ticket batch",
				"offset", start, "count", end-start, "error", err)
			return fmt.Errorf("failed to upsert tickets: %w", err)
		}
	}
	return nil
}

// List returns tickets matching the filter. A non-nil empty ClientIDs
// restriction yields no rows.
func (r *TicketRepository) List(ctx context.Context, filter psa.TicketFilter) ([]*psa.Ticket, error) {
	if filter.ClientIDs != nil && len(filter.ClientIDs) == 0 {
		return []*psa.Ticket{}, nil
	}

	query := r.db.WithContext(ctx).Order("date_occurred DESC")
	if filter.ClientIDs != nil {
		query = query.Where("client_id IN ?", filter.ClientIDs)
	}
	if filter.ClientID != nil {
		query = query.Where("client_id = ?", *filter.ClientID)
	}
	if filter.StartDate != nil {
		query = query.Where("date_occurred >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("date_occurred <= ?", *filter.EndDate)
	}

	var rows []*models.PSATicketModel
	if err := query.Find(&rows).Error; err != nil {
		r.logger.Errorw("failed to list tickets", "error", err)
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}

	tickets := make([]*psa.Ticket, 0, len(rows))
	for _, row := range rows {
		tickets = append(tickets, ticketToEntity(row))
	}
	return tickets, nil
}

// ListIDs loads the full local ticket ID set for dependent-record
// filtering during feedback sync.
func (r *TicketRepository) ListIDs(ctx context.Context) (map[int]struct{}, error) {
	var ids []int
	if err := r.db.WithContext(ctx).Model(&models.PSATicketModel{}).Pluck("id", &ids).Error; err != nil {
		r.logger.Errorw("failed to list ticket IDs", "error", err)
		return nil, fmt.Errorf("failed to list ticket IDs: %w", err)
	}

	set := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set, nil
}

func ticketToModel(t *psa.Ticket) *models.PSATicketModel {
	return &models.PSATicketModel{
		ID:           t.ID,
		ClientID:     t.ClientID,
		StatusID:     t.StatusID,
		StatusName:   t.StatusName,
		DateOccurred: t.DateOccurred,
		DateClosed:   t.DateClosed,
		IsClosed:     t.IsClosed,
	}
}

func ticketToEntity(m *models.PSATicketModel) *psa.Ticket {
	return &psa.Ticket{
		ID:           m.ID,
		ClientID:     m.ClientID,
		StatusID:     m.StatusID,
		StatusName:   m.StatusName,
		DateOccurred: m.DateOccurred,
		DateClosed:   m.DateClosed,
		IsClosed:     m.IsClosed,
		UpdatedAt:    m.UpdatedAt,
	}
}
