package ledger

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/srgjo27/ticket_marketplace/internal/core/domain"
)

// ListingIDs returns the seller's active ticket type ids in listing order.
func (l *Ledger) ListingIDs(eventID, seller uuid.UUID) []domain.TicketTypeID {
	l.mu.RLock()
	defer l.mu.RUnlock()

	ev, ok := l.events[eventID]
	if !ok {
		return []domain.TicketTypeID{}
	}

	book, ok := ev.books[seller]
	if !ok {
		return []domain.TicketTypeID{}
	}

	return domain.CompactTicketIDs(book.slots)
}

func (l *Ledger) Price(eventID, seller uuid.UUID, ticketTypeID domain.TicketTypeID) decimal.Decimal {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if e := l.lookup(eventID, seller, ticketTypeID); e != nil {
		return e.price
	}

	return decimal.Zero
}

func (l *Ledger) Amount(eventID, seller uuid.UUID, ticketTypeID domain.TicketTypeID) uint64 {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if e := l.lookup(eventID, seller, ticketTypeID); e != nil {
		return e.amount
	}

	return 0
}

func (l *Ledger) TotalAmount(eventID, seller uuid.UUID) uint64 {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.totalAmount(eventID, seller)
}

func (l *Ledger) totalAmount(eventID, seller uuid.UUID) uint64 {
	ev, ok := l.events[eventID]
	if !ok {
		return 0
	}

	book, ok := ev.books[seller]
	if !ok {
		return 0
	}

	var total uint64
	for _, e := range book.entries {
		total += e.amount
	}

	return total
}

// Sellers returns every seller that has opened a listing for the event, in
// order. A seller appears once per listing opened, so duplicates are expected.
func (l *Ledger) Sellers(eventID uuid.UUID) []uuid.UUID {
	l.mu.RLock()
	defer l.mu.RUnlock()

	ev, ok := l.events[eventID]
	if !ok {
		return []uuid.UUID{}
	}

	out := make([]uuid.UUID, len(ev.sellers))
	copy(out, ev.sellers)

	return out
}

func (l *Ledger) Proceeds(seller uuid.UUID) decimal.Decimal {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.proceeds[seller]
}

// Listings returns a snapshot of the seller's active listings in listing order.
func (l *Ledger) Listings(eventID, seller uuid.UUID) []domain.Listing {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := []domain.Listing{}

	ev, ok := l.events[eventID]
	if !ok {
		return out
	}

	book, ok := ev.books[seller]
	if !ok {
		return out
	}

	for _, id := range domain.CompactTicketIDs(book.slots) {
		e := book.entries[id]
		out = append(out, domain.Listing{
			EventID:      eventID,
			Seller:       seller,
			TicketTypeID: id,
			Price:        e.price,
			Amount:       e.amount,
		})
	}

	return out
}
