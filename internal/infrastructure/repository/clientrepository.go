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

// ClientRepository persists cached PSA clients.
type ClientRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewClientRepository(db *gorm.DB, logger logger.Interface) psa.ClientRepository {
	return &ClientRepository{db: db, logger: logger}
}

// UpsertBatch writes clients keyed by provider ID, overwriting existing
// rows with the latest values.
func (r *ClientRepository) UpsertBatch(ctx context.Context, clients []*psa.Client) error {
	if len(clients) == 0 {
		return nil
	}

	rows := make([]*models.PSAClientModel, 0, len(clients))
	for _, c := range clients {
		rows = append(rows, clientToModel(c))
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "top_level_id", "top_level_name", "inactive", "updated_at",
		}),
	}).Create(&rows).Error
	if err != nil {
		r.logger.Errorw("failed to upsert clients", "count", len(rows), "error", err)
		return fmt.Errorf("failed to upsert clients: %w", err)
	}
	return nil
}

// List returns clients restricted to the given provider IDs. A nil slice
// means unrestricted; an empty slice yields no rows.
func (r *ClientRepository) List(ctx context.Context, ids []int) ([]*psa.Client, error) {
	if ids != nil && len(ids) == 0 {
		return []*psa.Client{}, nil
	}

	query := r.db.WithContext(ctx).Order("name")
	if ids != nil {
		query = query.Where("id IN ?", ids)
	}

	var rows []*models.PSAClientModel
	if err := query.Find(&rows).Error; err != nil {
		r.logger.Errorw("failed to list clients", "error", err)
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}

	clients := make([]*psa.Client, 0, len(rows))
	for _, row := range rows {
		clients = append(clients, clientToEntity(row))
	}
	return clients, nil
}

// GetByIDs returns the named clients keyed by provider ID, used for
// display-name resolution.
func (r *ClientRepository) GetByIDs(ctx context.Context, ids []int) (map[int]*psa.Client, error) {
	result := make(map[int]*psa.Client, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var rows []*models.PSAClientModel
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		r.logger.Errorw("failed to get clients by IDs", "error", err)
		return nil, fmt.Errorf("failed to get clients by IDs: %w", err)
	}

	for _, row := range rows {
		result[row.ID] = clientToEntity(row)
	}
	return result, nil
}

// RecomputeLastTicketDates refreshes last_ticket_date from the ticket
// table in a single statement.
func (r *ClientRepository) RecomputeLastTicketDates(ctx context.Context) error {
	err := r.db.WithContext(ctx).Exec(`
		UPDATE psa_clients
		SET last_ticket_date = (
			SELECT MAX(date_occurred) FROM psa_tickets
			WHERE psa_tickets.client_id = psa_clients.id
		)`).Error
	if err != nil {
		r.logger.Errorw("failed to recompute last ticket dates", "error", err)
		return fmt.Errorf("failed to recompute last ticket dates: %w", err)
	}
	return nil
}

func clientToModel(c *psa.Client) *models.PSAClientModel {
	return &models.PSAClientModel{
		ID:             c.ID,
		Name:           c.Name,
		TopLevelID:     c.TopLevelID,
		TopLevelName:   c.TopLevelName,
		Inactive:       c.Inactive,
		LastTicketDate: c.LastTicketDate,
	}
}

func clientToEntity(m *models.PSAClientModel) *psa.Client {
	return &psa.Client{
		ID:             m.ID,
		Name:           m.Name,
		TopLevelID:     m.TopLevelID,
		TopLevelName:   m.TopLevelName,
		Inactive:       m.Inactive,
		LastTicketDate: m.LastTicketDate,
		UpdatedAt:      m.UpdatedAt,
	}
}
