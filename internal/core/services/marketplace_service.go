package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/srgjo27/ticket_marketplace/internal/core/domain"
	"github.com/srgjo27/ticket_marketplace/internal/core/ledger"
	"github.com/srgjo27/ticket_marketplace/internal/core/ports"
	"github.com/srgjo27/ticket_marketplace/internal/platform/monitoring"
)

const defaultListingCacheTTL = 5 * time.Minute

type ListTicketRequest struct {
	EventID      string              `json:"event_id"`
	TicketTypeID domain.TicketTypeID `json:"ticket_type_id"`
	Price        decimal.Decimal     `json:"price"`
	Amount       uint64              `json:"amount"`
}

type CancelListingRequest struct {
	EventID      string              `json:"event_id"`
	TicketTypeID domain.TicketTypeID `json:"ticket_type_id"`
	Amount       uint64              `json:"amount"`
}

type UpdateListingRequest struct {
	EventID      string              `json:"event_id"`
	TicketTypeID domain.TicketTypeID `json:"ticket_type_id"`
	Price        decimal.Decimal     `json:"price"`
}

type BuyItemRequest struct {
	EventID      string              `json:"event_id"`
	TicketTypeID domain.TicketTypeID `json:"ticket_type_id"`
	SellerID     string              `json:"seller_id"`
	Quantity     uint64              `json:"quantity"`
	Payment      decimal.Decimal     `json:"payment"`
}

type BuyItemResponse struct {
	SaleID    string          `json:"sale_id"`
	Quantity  uint64          `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Total     decimal.Decimal `json:"total"`
	Remaining uint64          `json:"remaining"`
}

type MarketplaceConfig struct {
	// Operator is the account the marketplace moves tickets as; sellers approve it.
	Operator uuid.UUID
	CacheTTL time.Duration
}

type MarketplaceService struct {
	// mu serialises mutations so the ledger and the external collaborators
	// observe the same order of operations.
	mu        sync.Mutex
	ledger    *ledger.Ledger
	tickets   ports.TicketRegistry
	payments  ports.PaymentChannel
	publisher ports.NotificationPublisher
	history   ports.ListingHistoryRepository
	cache     redis.Cmdable
	monitor   *monitoring.Monitor
	operator  uuid.UUID
	cacheTTL  time.Duration
}

func NewMarketplaceService(
	l *ledger.Ledger,
	tickets ports.TicketRegistry,
	payments ports.PaymentChannel,
	publisher ports.NotificationPublisher,
	history ports.ListingHistoryRepository,
	cache redis.Cmdable,
	cfg MarketplaceConfig,
) *MarketplaceService {
	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = defaultListingCacheTTL
	}

	return &MarketplaceService{
		ledger:    l,
		tickets:   tickets,
		payments:  payments,
		publisher: publisher,
		history:   history,
		cache:     cache,
		monitor:   monitoring.NewMonitor(),
		operator:  cfg.Operator,
		cacheTTL:  ttl,
	}
}

func (s *MarketplaceService) Operator() uuid.UUID {
	return s.operator
}

func parseID(raw, field string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: invalid %s", domain.ErrInvalidArgument, field)
	}

	return id, nil
}

func listingsCacheKey(eventID, seller uuid.UUID) string {
	return fmt.Sprintf("listings:%s:%s", eventID, seller)
}

func (s *MarketplaceService) ListTicket(ctx context.Context, caller uuid.UUID, req ListTicketRequest) (n domain.ListingNotification, err error) {
	defer func(started time.Time) { s.monitor.TrackOperation("list", started, err) }(time.Now())

	eventID, err := parseID(req.EventID, "event id")
	if err != nil {
		return n, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	balance, err := s.tickets.BalanceOf(ctx, eventID, caller, req.TicketTypeID)
	if err != nil {
		return n, fmt.Errorf("failed to read seller balance: %w", err)
	}

	listed := s.ledger.Amount(eventID, caller, req.TicketTypeID)
	if balance < listed || balance-listed < req.Amount {
		return n, fmt.Errorf("%w: seller holds %d, already listed %d, requested %d",
			domain.ErrInsufficientQuantity, balance, listed, req.Amount)
	}

	approved, err := s.tickets.IsApprovedForAll(ctx, eventID, caller, s.operator)
	if err != nil {
		return n, fmt.Errorf("failed to read approval: %w", err)
	}

	if !approved {
		return n, domain.ErrNotApproved
	}

	n, err = s.ledger.List(caller, eventID, req.TicketTypeID, req.Price, req.Amount)
	if err != nil {
		return n, err
	}

	s.afterCommit(ctx, n)

	return n, nil
}

func (s *MarketplaceService) CancelListing(ctx context.Context, caller uuid.UUID, req CancelListingRequest) (n domain.ListingNotification, err error) {
	defer func(started time.Time) { s.monitor.TrackOperation("cancel", started, err) }(time.Now())

	eventID, err := parseID(req.EventID, "event id")
	if err != nil {
		return n, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	n, err = s.ledger.Cancel(caller, eventID, req.TicketTypeID, req.Amount)
	if err != nil {
		return n, err
	}

	s.afterCommit(ctx, n)

	return n, nil
}

func (s *MarketplaceService) UpdateListing(ctx context.Context, caller uuid.UUID, req UpdateListingRequest) (n domain.ListingNotification, err error) {
	defer func(started time.Time) { s.monitor.TrackOperation("update_price", started, err) }(time.Now())

	eventID, err := parseID(req.EventID, "event id")
	if err != nil {
		return n, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	n, err = s.ledger.UpdatePrice(caller, eventID, req.TicketTypeID, req.Price)
	if err != nil {
		return n, err
	}

	s.afterCommit(ctx, n)

	return n, nil
}

// BuyItem collects the payment from the buyer, moves the tickets from the
// seller to the buyer and then settles the listing. A failed ticket transfer
// refunds the buyer and leaves the listing untouched.
func (s *MarketplaceService) BuyItem(ctx context.Context, buyer uuid.UUID, req BuyItemRequest) (resp *BuyItemResponse, err error) {
	defer func(started time.Time) { s.monitor.TrackOperation("buy", started, err) }(time.Now())

	eventID, err := parseID(req.EventID, "event id")
	if err != nil {
		return nil, err
	}

	seller, err := parseID(req.SellerID, "seller id")
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	total, err := s.ledger.QuotePurchase(eventID, req.TicketTypeID, seller, req.Quantity, req.Payment)
	if err != nil {
		return nil, err
	}

	if err := s.payments.Collect(ctx, buyer, total); err != nil {
		return nil, fmt.Errorf("failed to collect payment: %w", err)
	}

	err = s.tickets.SafeTransferFrom(ctx, s.operator, eventID, seller, buyer, req.TicketTypeID, req.Quantity)
	if err != nil {
		err = fmt.Errorf("failed to transfer tickets: %w", err)
		if refundErr := s.refund(ctx, buyer, total); refundErr != nil {
			err = errors.Join(err, refundErr)
		}
		return nil, err
	}

	sale, n, err := s.ledger.Purchase(buyer, eventID, req.TicketTypeID, seller, req.Quantity, req.Payment)
	if err != nil {
		// mu is held since the quote, so the listing cannot have changed.
		log.Printf("Settlement failed after ticket transfer for buyer %s: %v", buyer, err)
		return nil, err
	}

	if s.history != nil {
		if err := s.history.SaveSale(ctx, sale); err != nil {
			log.Printf("Failed to record sale %s: %v", sale.ID, err)
		}
	}

	s.monitor.TrackSale(eventID.String(), sale.Quantity)
	s.afterCommit(ctx, n)

	return &BuyItemResponse{
		SaleID:    sale.ID.String(),
		Quantity:  sale.Quantity,
		UnitPrice: sale.UnitPrice,
		Total:     sale.Total,
		Remaining: n.Amount,
	}, nil
}

func (s *MarketplaceService) refund(ctx context.Context, buyer uuid.UUID, amount decimal.Decimal) error {
	if err := s.payments.Payout(ctx, buyer, amount); err != nil {
		log.Printf("Failed to refund %s to buyer %s: %v", amount, buyer, err)
		return fmt.Errorf("failed to refund buyer: %w", err)
	}

	return nil
}

// WithdrawProceeds pays out the seller's whole proceeds balance. If the payout
// fails the balance is restored.
func (s *MarketplaceService) WithdrawProceeds(ctx context.Context, seller uuid.UUID) (amount decimal.Decimal, err error) {
	defer func(started time.Time) { s.monitor.TrackOperation("withdraw", started, err) }(time.Now())

	s.mu.Lock()
	defer s.mu.Unlock()

	amount, err = s.ledger.WithdrawProceeds(seller)
	if err != nil {
		return decimal.Zero, err
	}

	if err := s.payments.Payout(ctx, seller, amount); err != nil {
		s.ledger.CreditProceeds(seller, amount)
		return decimal.Zero, fmt.Errorf("failed to pay out proceeds: %w", err)
	}

	log.Printf("Seller %s withdrew %s", seller, amount)

	return amount, nil
}

func (s *MarketplaceService) afterCommit(ctx context.Context, n domain.ListingNotification) {
	if s.history != nil {
		if err := s.history.SaveNotification(ctx, n); err != nil {
			log.Printf("Failed to record %s notification: %v", n.Type, err)
		}
	}

	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, n); err != nil {
			log.Printf("Failed to publish %s notification: %v", n.Type, err)
		}
	}

	if s.cache != nil {
		if err := s.cache.Del(ctx, listingsCacheKey(n.EventID, n.Seller)).Err(); err != nil {
			log.Printf("Failed to invalidate listing cache: %v", err)
		}
	}
}

func (s *MarketplaceService) GetListingIDs(eventID, seller uuid.UUID) []domain.TicketTypeID {
	return s.ledger.ListingIDs(eventID, seller)
}

func (s *MarketplaceService) GetTicketPrice(eventID, seller uuid.UUID, ticketTypeID domain.TicketTypeID) decimal.Decimal {
	return s.ledger.Price(eventID, seller, ticketTypeID)
}

func (s *MarketplaceService) GetTicketAmount(eventID, seller uuid.UUID, ticketTypeID domain.TicketTypeID) uint64 {
	return s.ledger.Amount(eventID, seller, ticketTypeID)
}

func (s *MarketplaceService) GetListingTotalAmount(eventID, seller uuid.UUID) uint64 {
	return s.ledger.TotalAmount(eventID, seller)
}

func (s *MarketplaceService) GetListingGroupSellers(eventID uuid.UUID) []uuid.UUID {
	return s.ledger.Sellers(eventID)
}

func (s *MarketplaceService) GetProceeds(seller uuid.UUID) decimal.Decimal {
	return s.ledger.Proceeds(seller)
}

// GetSellerListings serves the seller's active listings, going through the
// redis cache when one is configured.
func (s *MarketplaceService) GetSellerListings(ctx context.Context, eventID, seller uuid.UUID) ([]domain.Listing, error) {
	if s.cache == nil {
		return s.ledger.Listings(eventID, seller), nil
	}

	key := listingsCacheKey(eventID, seller)

	cached, err := s.cache.Get(ctx, key).Bytes()
	if err == nil {
		var listings []domain.Listing
		if err := json.Unmarshal(cached, &listings); err == nil {
			s.monitor.TrackCacheLookup(true)
			return listings, nil
		}
		log.Printf("Discarding malformed cache entry %s", key)
	} else if !errors.Is(err, redis.Nil) {
		log.Printf("Listing cache read failed: %v", err)
	}

	s.monitor.TrackCacheLookup(false)

	// Mutations invalidate the key while holding mu, so the snapshot and the
	// write must not straddle one.
	s.mu.Lock()
	defer s.mu.Unlock()

	listings := s.ledger.Listings(eventID, seller)

	data, err := json.Marshal(listings)
	if err != nil {
		return nil, fmt.Errorf("failed to encode listings: %w", err)
	}

	if err := s.cache.Set(ctx, key, data, s.cacheTTL).Err(); err != nil {
		log.Printf("Listing cache write failed: %v", err)
	}

	return listings, nil
}

// GetSales returns the recorded sales of an event, oldest first.
func (s *MarketplaceService) GetSales(ctx context.Context, eventID uuid.UUID) ([]domain.Sale, error) {
	if s.history == nil {
		return []domain.Sale{}, nil
	}

	sales, err := s.history.GetSalesByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to load sales: %w", err)
	}

	if sales == nil {
		sales = []domain.Sale{}
	}

	return sales, nil
}
