package psa

import (
	"strings"
	"time"
)

// closedStatusID is the provider's status code for closed tickets, as
// observed in HaloPSA responses. The substring check below covers
// renamed statuses that still read as closed.
const closedStatusID = 9

// Ticket is a PSA ticket cached locally. Upserted last-write-wins by the
// sync engine on every run.
type Ticket struct {
	ID           int
	ClientID     int
	StatusID     int
	StatusName   string
	DateOccurred time.Time
	DateClosed   *time.Time
	IsClosed     bool
	UpdatedAt    time.Time
}

// DeriveClosed reports whether a ticket counts as closed: the provider's
// closed status code, or a status name containing "closed" in any casing.
func DeriveClosed(statusID int, statusName string) bool {
	if statusID == closedStatusID {
		return true
	}
	return strings.Contains(strings.ToLower(statusName), "closed")
}
