// Package ledger keeps the marketplace listings and seller proceeds in memory.
//
// Listings are keyed by (event, seller, ticket type). A listing whose amount
// drops to zero is removed: its price reads back as zero and its id leaves
// ListingIDs, while the seller stays in the event's seller registry.
package ledger

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/srgjo27/ticket_marketplace/internal/core/domain"
)

type entry struct {
	price  decimal.Decimal
	amount uint64
}

type sellerBook struct {
	// slots keeps ticket type ids in listing order; removed ids are zeroed.
	slots   []domain.TicketTypeID
	entries map[domain.TicketTypeID]*entry
}

type eventBook struct {
	sellers []uuid.UUID
	books   map[uuid.UUID]*sellerBook
}

type Ledger struct {
	mu       sync.RWMutex
	events   map[uuid.UUID]*eventBook
	proceeds map[uuid.UUID]decimal.Decimal
	now      func() time.Time
}

func New() *Ledger {
	return &Ledger{
		events:   make(map[uuid.UUID]*eventBook),
		proceeds: make(map[uuid.UUID]decimal.Decimal),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func validPrice(p decimal.Decimal) bool {
	return !p.IsNegative() && p.IsInteger()
}

func (l *Ledger) lookup(eventID, seller uuid.UUID, ticketTypeID domain.TicketTypeID) *entry {
	ev, ok := l.events[eventID]
	if !ok {
		return nil
	}

	book, ok := ev.books[seller]
	if !ok {
		return nil
	}

	e, ok := book.entries[ticketTypeID]
	if !ok || e.amount == 0 {
		return nil
	}

	return e
}

func (l *Ledger) bookFor(eventID, seller uuid.UUID) *sellerBook {
	ev, ok := l.events[eventID]
	if !ok {
		ev = &eventBook{books: make(map[uuid.UUID]*sellerBook)}
		l.events[eventID] = ev
	}

	book, ok := ev.books[seller]
	if !ok {
		book = &sellerBook{entries: make(map[domain.TicketTypeID]*entry)}
		ev.books[seller] = book
	}

	return book
}

func (l *Ledger) remove(eventID, seller uuid.UUID, ticketTypeID domain.TicketTypeID) {
	book := l.events[eventID].books[seller]
	delete(book.entries, ticketTypeID)

	for i, id := range book.slots {
		if id == ticketTypeID {
			book.slots[i] = 0
		}
	}
}

// List creates the caller's listing or adds amount to an existing one.
// The price of an existing listing is left untouched.
func (l *Ledger) List(caller, eventID uuid.UUID, ticketTypeID domain.TicketTypeID, price decimal.Decimal, amount uint64) (domain.ListingNotification, error) {
	if ticketTypeID == 0 {
		return domain.ListingNotification{}, fmt.Errorf("%w: ticket type id must be non-zero", domain.ErrInvalidArgument)
	}

	if amount == 0 {
		return domain.ListingNotification{}, fmt.Errorf("%w: amount must be greater than zero", domain.ErrInvalidArgument)
	}

	if !validPrice(price) {
		return domain.ListingNotification{}, fmt.Errorf("%w: price must be a non-negative integer", domain.ErrInvalidArgument)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	// The seller's total across ticket types must stay representable.
	if l.totalAmount(eventID, caller) > math.MaxUint64-amount {
		return domain.ListingNotification{}, fmt.Errorf("%w: listed amount overflows", domain.ErrInvalidArgument)
	}

	if e := l.lookup(eventID, caller, ticketTypeID); e != nil {
		e.amount += amount

		return l.notification(domain.ListingListed, caller, eventID, ticketTypeID, e), nil
	}

	book := l.bookFor(eventID, caller)
	ev := l.events[eventID]
	ev.sellers = append(ev.sellers, caller)

	e := &entry{price: price, amount: amount}
	book.entries[ticketTypeID] = e
	book.slots = append(domain.CompactTicketIDs(book.slots), ticketTypeID)

	return l.notification(domain.ListingListed, caller, eventID, ticketTypeID, e), nil
}

func (l *Ledger) Cancel(caller, eventID uuid.UUID, ticketTypeID domain.TicketTypeID, amount uint64) (domain.ListingNotification, error) {
	if amount == 0 {
		return domain.ListingNotification{}, fmt.Errorf("%w: amount must be greater than zero", domain.ErrInvalidArgument)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	e := l.lookup(eventID, caller, ticketTypeID)
	if e == nil {
		return domain.ListingNotification{}, fmt.Errorf("%w: no listing for ticket type %d", domain.ErrNotFound, ticketTypeID)
	}

	if amount > e.amount {
		return domain.ListingNotification{}, fmt.Errorf("%w: cancel %d, listed %d", domain.ErrInsufficientQuantity, amount, e.amount)
	}

	e.amount -= amount
	if e.amount == 0 {
		e.price = decimal.Zero
		l.remove(eventID, caller, ticketTypeID)
	}

	n := l.notification(domain.ListingCancelled, caller, eventID, ticketTypeID, e)
	n.Quantity = amount

	return n, nil
}

func (l *Ledger) UpdatePrice(caller, eventID uuid.UUID, ticketTypeID domain.TicketTypeID, newPrice decimal.Decimal) (domain.ListingNotification, error) {
	if !validPrice(newPrice) {
		return domain.ListingNotification{}, fmt.Errorf("%w: price must be a non-negative integer", domain.ErrInvalidArgument)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	e := l.lookup(eventID, caller, ticketTypeID)
	if e == nil {
		return domain.ListingNotification{}, fmt.Errorf("%w: no listing for ticket type %d", domain.ErrNotFound, ticketTypeID)
	}

	e.price = newPrice

	return l.notification(domain.ListingPriceUpdated, caller, eventID, ticketTypeID, e), nil
}

func (l *Ledger) quote(eventID uuid.UUID, ticketTypeID domain.TicketTypeID, seller uuid.UUID, quantity uint64, payment decimal.Decimal) (*entry, decimal.Decimal, error) {
	if quantity == 0 {
		return nil, decimal.Zero, fmt.Errorf("%w: quantity must be greater than zero", domain.ErrInvalidArgument)
	}

	e := l.lookup(eventID, seller, ticketTypeID)
	if e == nil {
		return nil, decimal.Zero, fmt.Errorf("%w: seller has no listing for ticket type %d", domain.ErrNotFound, ticketTypeID)
	}

	if quantity > e.amount {
		return nil, decimal.Zero, fmt.Errorf("%w: requested %d, listed %d", domain.ErrInsufficientQuantity, quantity, e.amount)
	}

	total := e.price.Mul(decimal.NewFromUint64(quantity))
	if !payment.Equal(total) {
		return nil, decimal.Zero, fmt.Errorf("%w: payment %s does not match price %s", domain.ErrInvalidArgument, payment, total)
	}

	return e, total, nil
}

// QuotePurchase validates a purchase without applying it and returns the total due.
func (l *Ledger) QuotePurchase(eventID uuid.UUID, ticketTypeID domain.TicketTypeID, seller uuid.UUID, quantity uint64, payment decimal.Decimal) (decimal.Decimal, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	_, total, err := l.quote(eventID, ticketTypeID, seller, quantity, payment)

	return total, err
}

// Purchase moves quantity units out of the seller's listing and credits the
// payment to the seller's proceeds.
func (l *Ledger) Purchase(buyer, eventID uuid.UUID, ticketTypeID domain.TicketTypeID, seller uuid.UUID, quantity uint64, payment decimal.Decimal) (domain.Sale, domain.ListingNotification, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	e, total, err := l.quote(eventID, ticketTypeID, seller, quantity, payment)
	if err != nil {
		return domain.Sale{}, domain.ListingNotification{}, err
	}

	sale := domain.Sale{
		ID:           uuid.New(),
		EventID:      eventID,
		TicketTypeID: ticketTypeID,
		Seller:       seller,
		Buyer:        buyer,
		Quantity:     quantity,
		UnitPrice:    e.price,
		Total:        total,
		CreatedAt:    l.now(),
	}

	e.amount -= quantity
	if e.amount == 0 {
		e.price = decimal.Zero
		l.remove(eventID, seller, ticketTypeID)
	}

	l.proceeds[seller] = l.proceeds[seller].Add(total)

	n := l.notification(domain.ListingSold, seller, eventID, ticketTypeID, e)
	n.Buyer = &buyer
	n.Quantity = quantity

	return sale, n, nil
}

// WithdrawProceeds zeroes the seller's proceeds and returns the withdrawn balance.
func (l *Ledger) WithdrawProceeds(seller uuid.UUID) (decimal.Decimal, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	balance := l.proceeds[seller]
	if !balance.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: no proceeds to withdraw", domain.ErrInsufficientBalance)
	}

	delete(l.proceeds, seller)

	return balance, nil
}

func (l *Ledger) CreditProceeds(seller uuid.UUID, amount decimal.Decimal) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.proceeds[seller] = l.proceeds[seller].Add(amount)
}

func (l *Ledger) notification(t domain.NotificationType, seller, eventID uuid.UUID, ticketTypeID domain.TicketTypeID, e *entry) domain.ListingNotification {
	return domain.ListingNotification{
		Type:         t,
		Seller:       seller,
		EventID:      eventID,
		TicketTypeID: ticketTypeID,
		Price:        e.price,
		Amount:       e.amount,
		OccurredAt:   l.now(),
	}
}
