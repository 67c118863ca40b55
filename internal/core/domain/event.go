package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Event struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Organizer uuid.UUID `json:"organizer_id"`
	CreatedAt time.Time `json:"created_at"`
}

// TicketType is a category of ticket within an event. Value is the face value
// set by the organizer; marketplace listings carry their own price.
type TicketType struct {
	ID     TicketTypeID    `json:"id"`
	Name   string          `json:"name"`
	Value  decimal.Decimal `json:"value"`
	Supply uint64          `json:"supply"`
}
