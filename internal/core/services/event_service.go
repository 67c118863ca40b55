package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/srgjo27/ticket_marketplace/internal/core/domain"
	"github.com/srgjo27/ticket_marketplace/internal/core/ports"
)

type CreateEventRequest struct {
	Name string `json:"name"`
}

type CreateTicketTypeRequest struct {
	Name   string          `json:"name"`
	Supply uint64          `json:"supply"`
	Value  decimal.Decimal `json:"value"`
}

type SetApprovalRequest struct {
	// Operator defaults to the marketplace operator when empty.
	Operator string `json:"operator"`
	Approved bool   `json:"approved"`
}

type EventService struct {
	registry ports.EventRegistry
	operator uuid.UUID
}

func NewEventService(registry ports.EventRegistry, operator uuid.UUID) *EventService {
	return &EventService{
		registry: registry,
		operator: operator,
	}
}

func (s *EventService) CreateEvent(ctx context.Context, organizer uuid.UUID, req CreateEventRequest) (domain.Event, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.Event{}, fmt.Errorf("%w: event name is required", domain.ErrInvalidArgument)
	}

	ev, err := s.registry.DeployEvent(ctx, organizer, name)
	if err != nil {
		return domain.Event{}, err
	}

	log.Printf("Event %s (%q) deployed by %s", ev.ID, ev.Name, organizer)

	return ev, nil
}

func (s *EventService) ListEvents(ctx context.Context) ([]domain.Event, error) {
	return s.registry.Events(ctx)
}

func (s *EventService) EventName(ctx context.Context, eventID uuid.UUID) (string, error) {
	return s.registry.EventName(ctx, eventID)
}

func (s *EventService) CreateTicketType(ctx context.Context, caller, eventID uuid.UUID, req CreateTicketTypeRequest) (domain.TicketType, error) {
	return s.registry.CreateTicketType(ctx, caller, eventID, req.Name, req.Supply, req.Value)
}

// ListTicketTypes returns the event's ticket types in id order.
func (s *EventService) ListTicketTypes(ctx context.Context, eventID uuid.UUID) ([]domain.TicketType, error) {
	ids, err := s.registry.TicketIDs(ctx, eventID)
	if err != nil {
		return nil, err
	}

	types := make([]domain.TicketType, 0, len(ids))
	for _, id := range ids {
		tt, err := s.registry.TicketDetails(ctx, eventID, id)
		if err != nil {
			return nil, err
		}
		types = append(types, tt)
	}

	return types, nil
}

func (s *EventService) MintMore(ctx context.Context, caller, eventID uuid.UUID, ticketTypeID domain.TicketTypeID, amount uint64) error {
	return s.registry.MintMore(ctx, caller, eventID, ticketTypeID, amount)
}

func (s *EventService) AssignValue(ctx context.Context, caller, eventID uuid.UUID, ticketTypeID domain.TicketTypeID, value decimal.Decimal) error {
	return s.registry.AssignValue(ctx, caller, eventID, value, ticketTypeID)
}

func (s *EventService) SetApproval(ctx context.Context, owner, eventID uuid.UUID, req SetApprovalRequest) error {
	operator := s.operator
	if req.Operator != "" {
		id, err := parseID(req.Operator, "operator id")
		if err != nil {
			return err
		}
		operator = id
	}

	return s.registry.SetApprovalForAll(ctx, owner, eventID, operator, req.Approved)
}

func (s *EventService) BalanceOf(ctx context.Context, eventID, account uuid.UUID, ticketTypeID domain.TicketTypeID) (uint64, error) {
	return s.registry.BalanceOf(ctx, eventID, account, ticketTypeID)
}
