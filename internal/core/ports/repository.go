package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/srgjo27/ticket_marketplace/internal/core/domain"
)

// TicketRegistry is the ticket ownership service consulted by the marketplace.
type TicketRegistry interface {
	BalanceOf(ctx context.Context, eventID, account uuid.UUID, ticketTypeID domain.TicketTypeID) (uint64, error)
	IsApprovedForAll(ctx context.Context, eventID, owner, operator uuid.UUID) (bool, error)
	SafeTransferFrom(ctx context.Context, operator, eventID, from, to uuid.UUID, ticketTypeID domain.TicketTypeID, amount uint64) error
}

type EventRegistry interface {
	TicketRegistry

	DeployEvent(ctx context.Context, organizer uuid.UUID, name string) (domain.Event, error)
	Events(ctx context.Context) ([]domain.Event, error)
	EventName(ctx context.Context, eventID uuid.UUID) (string, error)
	CreateTicketType(ctx context.Context, caller, eventID uuid.UUID, name string, supply uint64, value decimal.Decimal) (domain.TicketType, error)
	TicketIDs(ctx context.Context, eventID uuid.UUID) ([]domain.TicketTypeID, error)
	TicketDetails(ctx context.Context, eventID uuid.UUID, ticketTypeID domain.TicketTypeID) (domain.TicketType, error)
	MintMore(ctx context.Context, caller, eventID uuid.UUID, ticketTypeID domain.TicketTypeID, amount uint64) error
	AssignValue(ctx context.Context, caller, eventID uuid.UUID, value decimal.Decimal, ticketTypeID domain.TicketTypeID) error
	SetApprovalForAll(ctx context.Context, owner, eventID, operator uuid.UUID, approved bool) error
}

type PaymentChannel interface {
	Collect(ctx context.Context, from uuid.UUID, amount decimal.Decimal) error
	Payout(ctx context.Context, to uuid.UUID, amount decimal.Decimal) error
}

type NotificationPublisher interface {
	Publish(ctx context.Context, n domain.ListingNotification) error
}

type ListingHistoryRepository interface {
	SaveNotification(ctx context.Context, n domain.ListingNotification) error
	SaveSale(ctx context.Context, sale domain.Sale) error
	GetSalesByEvent(ctx context.Context, eventID uuid.UUID) ([]domain.Sale, error)
}
