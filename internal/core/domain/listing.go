package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TicketTypeID identifies a ticket type within an event. Zero means "no ticket type".
type TicketTypeID uint64

type NotificationType string

const (
	ListingListed       NotificationType = "LISTED"
	ListingCancelled    NotificationType = "CANCELLED"
	ListingPriceUpdated NotificationType = "PRICE_UPDATED"
	ListingSold         NotificationType = "SOLD"
)

type Listing struct {
	EventID      uuid.UUID       `json:"event_id"`
	Seller       uuid.UUID       `json:"seller_id"`
	TicketTypeID TicketTypeID    `json:"ticket_type_id"`
	Price        decimal.Decimal `json:"price"`
	Amount       uint64          `json:"amount"`
}

// ListingNotification is emitted for every change applied to a listing.
// Price and Amount hold the listing state after the change.
type ListingNotification struct {
	Type         NotificationType `json:"type"`
	Seller       uuid.UUID        `json:"seller_id"`
	EventID      uuid.UUID        `json:"event_id"`
	TicketTypeID TicketTypeID     `json:"ticket_type_id"`
	Price        decimal.Decimal  `json:"price"`
	Amount       uint64           `json:"amount"`
	Buyer        *uuid.UUID       `json:"buyer_id,omitempty"`
	Quantity     uint64           `json:"quantity,omitempty"`
	OccurredAt   time.Time        `json:"occurred_at"`
}

type Sale struct {
	ID           uuid.UUID
	EventID      uuid.UUID
	TicketTypeID TicketTypeID
	Seller       uuid.UUID
	Buyer        uuid.UUID
	Quantity     uint64
	UnitPrice    decimal.Decimal
	Total        decimal.Decimal
	CreatedAt    time.Time
}
