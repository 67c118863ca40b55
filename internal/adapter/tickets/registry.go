// Package tickets is an in-memory multi-token ticket registry. Every event
// owns a set of ticket types whose supply is minted to the event organizer;
// holders move units themselves or through an approved operator.
package tickets

import (
	"context"
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/srgjo27/ticket_marketplace/internal/core/domain"
	"github.com/srgjo27/ticket_marketplace/internal/core/ports"
)

var _ ports.EventRegistry = (*Registry)(nil)

type eventState struct {
	event     domain.Event
	types     []domain.TicketType
	balances  map[domain.TicketTypeID]map[uuid.UUID]uint64
	approvals map[uuid.UUID]map[uuid.UUID]bool
}

func (e *eventState) ticketType(id domain.TicketTypeID) (*domain.TicketType, error) {
	if id == 0 || uint64(id) > uint64(len(e.types)) {
		return nil, fmt.Errorf("%w: ticket type %d", domain.ErrNotFound, id)
	}

	return &e.types[id-1], nil
}

type Registry struct {
	mu     sync.RWMutex
	events map[uuid.UUID]*eventState
	order  []uuid.UUID
}

func NewRegistry() *Registry {
	return &Registry{
		events: make(map[uuid.UUID]*eventState),
	}
}

func (r *Registry) event(eventID uuid.UUID) (*eventState, error) {
	ev, ok := r.events[eventID]
	if !ok {
		return nil, fmt.Errorf("%w: event %s", domain.ErrNotFound, eventID)
	}

	return ev, nil
}

func (r *Registry) organizerEvent(caller, eventID uuid.UUID) (*eventState, error) {
	ev, err := r.event(eventID)
	if err != nil {
		return nil, err
	}

	if ev.event.Organizer != caller {
		return nil, fmt.Errorf("%w: only the organizer can manage ticket types", domain.ErrForbidden)
	}

	return ev, nil
}

func (r *Registry) DeployEvent(ctx context.Context, organizer uuid.UUID, name string) (domain.Event, error) {
	if strings.TrimSpace(name) == "" {
		return domain.Event{}, fmt.Errorf("%w: event name is required", domain.ErrInvalidArgument)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	ev := domain.Event{
		ID:        uuid.New(),
		Name:      name,
		Organizer: organizer,
		CreatedAt: time.Now().UTC(),
	}

	r.events[ev.ID] = &eventState{
		event:     ev,
		balances:  make(map[domain.TicketTypeID]map[uuid.UUID]uint64),
		approvals: make(map[uuid.UUID]map[uuid.UUID]bool),
	}
	r.order = append(r.order, ev.ID)

	return ev, nil
}

// Events returns the deployed events in deploy order.
func (r *Registry) Events(ctx context.Context) ([]domain.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Event, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.events[id].event)
	}

	return out, nil
}

func (r *Registry) EventName(ctx context.Context, eventID uuid.UUID) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ev, err := r.event(eventID)
	if err != nil {
		return "", err
	}

	return ev.event.Name, nil
}

func (r *Registry) CreateTicketType(ctx context.Context, caller, eventID uuid.UUID, name string, supply uint64, value decimal.Decimal) (domain.TicketType, error) {
	if strings.TrimSpace(name) == "" {
		return domain.TicketType{}, fmt.Errorf("%w: ticket type name is required", domain.ErrInvalidArgument)
	}

	if supply == 0 {
		return domain.TicketType{}, fmt.Errorf("%w: supply must be greater than zero", domain.ErrInvalidArgument)
	}

	if value.IsNegative() {
		return domain.TicketType{}, fmt.Errorf("%w: value must not be negative", domain.ErrInvalidArgument)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	ev, err := r.organizerEvent(caller, eventID)
	if err != nil {
		return domain.TicketType{}, err
	}

	tt := domain.TicketType{
		ID:     domain.TicketTypeID(len(ev.types) + 1),
		Name:   name,
		Value:  value,
		Supply: supply,
	}
	ev.types = append(ev.types, tt)
	ev.balances[tt.ID] = map[uuid.UUID]uint64{caller: supply}

	return tt, nil
}

func (r *Registry) TicketIDs(ctx context.Context, eventID uuid.UUID) ([]domain.TicketTypeID, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ev, err := r.event(eventID)
	if err != nil {
		return nil, err
	}

	ids := make([]domain.TicketTypeID, 0, len(ev.types))
	for _, tt := range ev.types {
		ids = append(ids, tt.ID)
	}

	return ids, nil
}

func (r *Registry) TicketDetails(ctx context.Context, eventID uuid.UUID, ticketTypeID domain.TicketTypeID) (domain.TicketType, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ev, err := r.event(eventID)
	if err != nil {
		return domain.TicketType{}, err
	}

	tt, err := ev.ticketType(ticketTypeID)
	if err != nil {
		return domain.TicketType{}, err
	}

	return *tt, nil
}

// MintMore mints additional units of an existing ticket type to the organizer.
func (r *Registry) MintMore(ctx context.Context, caller, eventID uuid.UUID, ticketTypeID domain.TicketTypeID, amount uint64) error {
	if amount == 0 {
		return fmt.Errorf("%w: amount must be greater than zero", domain.ErrInvalidArgument)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	ev, err := r.organizerEvent(caller, eventID)
	if err != nil {
		return err
	}

	tt, err := ev.ticketType(ticketTypeID)
	if err != nil {
		return err
	}

	// Balances sum to the supply, so bounding the supply bounds every holder.
	if tt.Supply > math.MaxUint64-amount {
		return fmt.Errorf("%w: supply overflows", domain.ErrInvalidArgument)
	}

	tt.Supply += amount
	ev.balances[ticketTypeID][caller] += amount

	return nil
}

func (r *Registry) AssignValue(ctx context.Context, caller, eventID uuid.UUID, value decimal.Decimal, ticketTypeID domain.TicketTypeID) error {
	if value.IsNegative() {
		return fmt.Errorf("%w: value must not be negative", domain.ErrInvalidArgument)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	ev, err := r.organizerEvent(caller, eventID)
	if err != nil {
		return err
	}

	tt, err := ev.ticketType(ticketTypeID)
	if err != nil {
		return err
	}

	tt.Value = value

	return nil
}

func (r *Registry) BalanceOf(ctx context.Context, eventID, account uuid.UUID, ticketTypeID domain.TicketTypeID) (uint64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ev, err := r.event(eventID)
	if err != nil {
		return 0, err
	}

	return ev.balances[ticketTypeID][account], nil
}

func (r *Registry) SetApprovalForAll(ctx context.Context, owner, eventID, operator uuid.UUID, approved bool) error {
	if owner == operator {
		return fmt.Errorf("%w: cannot set approval for self", domain.ErrInvalidArgument)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	ev, err := r.event(eventID)
	if err != nil {
		return err
	}

	ops, ok := ev.approvals[owner]
	if !ok {
		ops = make(map[uuid.UUID]bool)
		ev.approvals[owner] = ops
	}
	ops[operator] = approved

	return nil
}

func (r *Registry) IsApprovedForAll(ctx context.Context, eventID, owner, operator uuid.UUID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ev, err := r.event(eventID)
	if err != nil {
		return false, err
	}

	return ev.approvals[owner][operator], nil
}

// SafeTransferFrom moves amount units from one holder to another. The
// operator must be the holder or approved by the holder.
func (r *Registry) SafeTransferFrom(ctx context.Context, operator, eventID, from, to uuid.UUID, ticketTypeID domain.TicketTypeID, amount uint64) error {
	if amount == 0 {
		return fmt.Errorf("%w: amount must be greater than zero", domain.ErrInvalidArgument)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	ev, err := r.event(eventID)
	if err != nil {
		return err
	}

	if _, err := ev.ticketType(ticketTypeID); err != nil {
		return err
	}

	if operator != from && !ev.approvals[from][operator] {
		return domain.ErrNotApproved
	}

	holders := ev.balances[ticketTypeID]
	if holders[from] < amount {
		return fmt.Errorf("%w: holder has %d, transfer %d", domain.ErrInsufficientQuantity, holders[from], amount)
	}

	if from != to && holders[to] > math.MaxUint64-amount {
		return fmt.Errorf("%w: recipient balance overflows", domain.ErrInvalidArgument)
	}

	holders[from] -= amount
	holders[to] += amount

	return nil
}
