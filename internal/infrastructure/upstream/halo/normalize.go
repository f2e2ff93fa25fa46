package halo

import (
	"fmt"
	"time"

	"pulseboard/internal/domain/psa"
)

// Raw provider shapes. Normalization happens here at the boundary:
// missing optional fields degrade to nil, while an unparseable required
// field is a hard error rather than a silent guess.

type haloClient struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	TopLevelID   *int    `json:"toplevel_id"`
	TopLevelName *string `json:"toplevel_name"`
	Inactive     bool    `json:"inactive"`
}

func (r haloClient) normalize() *psa.Client {
	return &psa.Client{
		ID:           r.ID,
		Name:         r.Name,
		TopLevelID:   r.TopLevelID,
		TopLevelName: r.TopLevelName,
		Inactive:     r.Inactive,
	}
}

type haloTicket struct {
	ID           int     `json:"id"`
	ClientID     int     `json:"client_id"`
	StatusID     int     `json:"status_id"`
	StatusName   string  `json:"status_name"`
	DateOccurred string  `json:"dateoccurred"`
	DateClosed   *string `json:"dateclosed"`
}

func (r haloTicket) normalize() (*psa.Ticket, error) {
	occurred, err := parseHaloTime(r.DateOccurred)
	if err != nil {
		return nil, fmt.Errorf("ticket %d has invalid dateoccurred %q: %w", r.ID, r.DateOccurred, err)
	}

	var closed *time.Time
	if r.DateClosed != nil && *r.DateClosed != "" {
		// The provider reports 1900-01-01 for never-closed tickets.
		if t, err := parseHaloTime(*r.DateClosed); err == nil && t.Year() > 1900 {
			closed = &t
		}
	}

	return &psa.Ticket{
		ID:           r.ID,
		ClientID:     r.ClientID,
		StatusID:     r.StatusID,
		StatusName:   r.StatusName,
		DateOccurred: occurred,
		DateClosed:   closed,
		IsClosed:     psa.DeriveClosed(r.StatusID, r.StatusName),
	}, nil
}

type haloFeedback struct {
	ID       int     `json:"id"`
	TicketID int     `json:"ticket_id"`
	Score    *int    `json:"score"`
	Date     *string `json:"date"`
}

func (r haloFeedback) normalize() *psa.Feedback {
	var date *time.Time
	if r.Date != nil && *r.Date != "" {
		if t, err := parseHaloTime(*r.Date); err == nil {
			date = &t
		}
	}
	return &psa.Feedback{
		ID:       r.ID,
		TicketID: r.TicketID,
		Score:    r.Score,
		Date:     date,
	}
}

// parseHaloTime accepts the timestamp renditions observed in provider
// responses.
func parseHaloTime(s string) (time.Time, error) {
	for _, layout := range []string{
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
		"2006-01-02",
	} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp format")
}
