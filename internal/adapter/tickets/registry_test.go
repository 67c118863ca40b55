package tickets_test

import (
	"context"
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/srgjo27/ticket_marketplace/internal/adapter/tickets"
	"github.com/srgjo27/ticket_marketplace/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func deploy(t *testing.T, r *tickets.Registry, organizer uuid.UUID) domain.Event {
	t.Helper()

	ev, err := r.DeployEvent(context.Background(), organizer, "New Event")
	require.NoError(t, err)

	return ev
}

func TestDeployEvent(t *testing.T) {
	r := tickets.NewRegistry()
	ctx := context.Background()

	events, err := r.Events(ctx)
	require.NoError(t, err)
	assert.Empty(t, events)

	ev := deploy(t, r, uuid.New())

	events, err = r.Events(ctx)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, ev.ID, events[0].ID)

	name, err := r.EventName(ctx, ev.ID)
	require.NoError(t, err)
	assert.Equal(t, "New Event", name)

	ids, err := r.TicketIDs(ctx, ev.ID)
	require.NoError(t, err)
	assert.Empty(t, ids)

	_, err = r.DeployEvent(ctx, uuid.New(), "  ")
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestCreateTicketType(t *testing.T) {
	r := tickets.NewRegistry()
	ctx := context.Background()
	organizer := uuid.New()
	ev := deploy(t, r, organizer)

	tt, err := r.CreateTicketType(ctx, organizer, ev.ID, "Ticket type A", 2000, decimal.NewFromInt(100))
	require.NoError(t, err)
	assert.Equal(t, domain.TicketTypeID(1), tt.ID)

	details, err := r.TicketDetails(ctx, ev.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, "Ticket type A", details.Name)
	assert.True(t, decimal.NewFromInt(100).Equal(details.Value))

	balance, err := r.BalanceOf(ctx, ev.ID, organizer, 1)
	require.NoError(t, err)
	assert.Equal(t, uint64(2000), balance)

	_, err = r.CreateTicketType(ctx, organizer, ev.ID, "Type B", 100, decimal.NewFromInt(60))
	require.NoError(t, err)

	ids, err := r.TicketIDs(ctx, ev.ID)
	require.NoError(t, err)
	assert.Equal(t, []domain.TicketTypeID{1, 2}, ids)
}

func TestCreateTicketType_Rejected(t *testing.T) {
	r := tickets.NewRegistry()
	ctx := context.Background()
	organizer := uuid.New()
	ev := deploy(t, r, organizer)

	_, err := r.CreateTicketType(ctx, organizer, ev.ID, "", 2000, decimal.NewFromInt(100))
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = r.CreateTicketType(ctx, organizer, ev.ID, "A", 0, decimal.NewFromInt(100))
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = r.CreateTicketType(ctx, uuid.New(), ev.ID, "A", 10, decimal.NewFromInt(100))
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = r.CreateTicketType(ctx, organizer, uuid.New(), "A", 10, decimal.NewFromInt(100))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMintMore(t *testing.T) {
	r := tickets.NewRegistry()
	ctx := context.Background()
	organizer := uuid.New()
	ev := deploy(t, r, organizer)

	err := r.MintMore(ctx, organizer, ev.ID, 1, 20)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = r.CreateTicketType(ctx, organizer, ev.ID, "Type A", 100, decimal.NewFromInt(50))
	require.NoError(t, err)

	require.NoError(t, r.MintMore(ctx, organizer, ev.ID, 1, 20))

	balance, err := r.BalanceOf(ctx, ev.ID, organizer, 1)
	require.NoError(t, err)
	assert.Equal(t, uint64(120), balance)

	details, err := r.TicketDetails(ctx, ev.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, uint64(120), details.Supply)

	err = r.MintMore(ctx, uuid.New(), ev.ID, 1, 20)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestAssignValue(t *testing.T) {
	r := tickets.NewRegistry()
	ctx := context.Background()
	organizer := uuid.New()
	ev := deploy(t, r, organizer)

	_, err := r.CreateTicketType(ctx, organizer, ev.ID, "Type A", 100, decimal.NewFromInt(50))
	require.NoError(t, err)

	require.NoError(t, r.AssignValue(ctx, organizer, ev.ID, decimal.NewFromInt(60), 1))

	details, err := r.TicketDetails(ctx, ev.ID, 1)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(60).Equal(details.Value))
}

func TestSafeTransferFrom(t *testing.T) {
	r := tickets.NewRegistry()
	ctx := context.Background()
	organizer, operator, buyer := uuid.New(), uuid.New(), uuid.New()
	ev := deploy(t, r, organizer)

	_, err := r.CreateTicketType(ctx, organizer, ev.ID, "Type A", 100, decimal.NewFromInt(20))
	require.NoError(t, err)

	err = r.SafeTransferFrom(ctx, operator, ev.ID, organizer, buyer, 1, 1)
	assert.ErrorIs(t, err, domain.ErrNotApproved)

	require.NoError(t, r.SetApprovalForAll(ctx, organizer, ev.ID, operator, true))
	approved, err := r.IsApprovedForAll(ctx, ev.ID, organizer, operator)
	require.NoError(t, err)
	assert.True(t, approved)

	require.NoError(t, r.SafeTransferFrom(ctx, operator, ev.ID, organizer, buyer, 1, 1))

	balance, err := r.BalanceOf(ctx, ev.ID, buyer, 1)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), balance)

	balance, err = r.BalanceOf(ctx, ev.ID, organizer, 1)
	require.NoError(t, err)
	assert.Equal(t, uint64(99), balance)

	err = r.SafeTransferFrom(ctx, buyer, ev.ID, buyer, organizer, 1, 2)
	assert.ErrorIs(t, err, domain.ErrInsufficientQuantity)

	err = r.SetApprovalForAll(ctx, organizer, ev.ID, organizer, true)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestMintMore_Overflow(t *testing.T) {
	r := tickets.NewRegistry()
	ctx := context.Background()
	organizer := uuid.New()
	ev := deploy(t, r, organizer)

	_, err := r.CreateTicketType(ctx, organizer, ev.ID, "Ticket type A", math.MaxUint64-1, decimal.NewFromInt(100))
	require.NoError(t, err)

	require.NoError(t, r.MintMore(ctx, organizer, ev.ID, 1, 1))

	err = r.MintMore(ctx, organizer, ev.ID, 1, 1)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	balance, err := r.BalanceOf(ctx, ev.ID, organizer, 1)
	require.NoError(t, err)
	assert.Equal(t, uint64(math.MaxUint64), balance)

	holder := uuid.New()
	require.NoError(t, r.SafeTransferFrom(ctx, organizer, ev.ID, organizer, holder, 1, math.MaxUint64))

	balance, err = r.BalanceOf(ctx, ev.ID, holder, 1)
	require.NoError(t, err)
	assert.Equal(t, uint64(math.MaxUint64), balance)
}
