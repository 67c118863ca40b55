package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/srgjo27/ticket_marketplace/internal/core/domain"
	"github.com/srgjo27/ticket_marketplace/internal/core/services"
)

// Funds is the account-facing side of the payment channel.
type Funds interface {
	Deposit(ctx context.Context, account uuid.UUID, amount decimal.Decimal) error
	Balance(ctx context.Context, account uuid.UUID) decimal.Decimal
}

type MarketplaceHandler struct {
	svc   *services.MarketplaceService
	funds Funds
}

func NewMarketplaceHandler(svc *services.MarketplaceService, funds Funds) *MarketplaceHandler {
	return &MarketplaceHandler{svc: svc, funds: funds}
}

func (h *MarketplaceHandler) ListTicket(w http.ResponseWriter, r *http.Request) {
	var req services.ListTicketRequest
	if !decode(w, r, &req) {
		return
	}

	n, err := h.svc.ListTicket(r.Context(), callerFrom(r.Context()), req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, n)
}

func (h *MarketplaceHandler) CancelListing(w http.ResponseWriter, r *http.Request) {
	var req services.CancelListingRequest
	if !decode(w, r, &req) {
		return
	}

	n, err := h.svc.CancelListing(r.Context(), callerFrom(r.Context()), req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, n)
}

func (h *MarketplaceHandler) UpdateListing(w http.ResponseWriter, r *http.Request) {
	var req services.UpdateListingRequest
	if !decode(w, r, &req) {
		return
	}

	n, err := h.svc.UpdateListing(r.Context(), callerFrom(r.Context()), req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, n)
}

func (h *MarketplaceHandler) BuyItem(w http.ResponseWriter, r *http.Request) {
	var req services.BuyItemRequest
	if !decode(w, r, &req) {
		return
	}

	resp, err := h.svc.BuyItem(r.Context(), callerFrom(r.Context()), req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

func (h *MarketplaceHandler) WithdrawProceeds(w http.ResponseWriter, r *http.Request) {
	amount, err := h.svc.WithdrawProceeds(r.Context(), callerFrom(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]decimal.Decimal{"withdrawn": amount})
}

func (h *MarketplaceHandler) GetProceeds(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]decimal.Decimal{
		"proceeds": h.svc.GetProceeds(callerFrom(r.Context())),
	})
}

func (h *MarketplaceHandler) GetSellers(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathUUID(w, r, "eventID")
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, map[string][]uuid.UUID{
		"sellers": h.svc.GetListingGroupSellers(eventID),
	})
}

func (h *MarketplaceHandler) GetSellerListings(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathUUID(w, r, "eventID")
	if !ok {
		return
	}

	seller, ok := pathUUID(w, r, "sellerID")
	if !ok {
		return
	}

	listings, err := h.svc.GetSellerListings(r.Context(), eventID, seller)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"listing_ids":  h.svc.GetListingIDs(eventID, seller),
		"total_amount": h.svc.GetListingTotalAmount(eventID, seller),
		"listings":     listings,
	})
}

func (h *MarketplaceHandler) GetSales(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathUUID(w, r, "eventID")
	if !ok {
		return
	}

	sales, err := h.svc.GetSales(r.Context(), eventID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"sales": sales})
}

func (h *MarketplaceHandler) GetListing(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathUUID(w, r, "eventID")
	if !ok {
		return
	}

	seller, ok := pathUUID(w, r, "sellerID")
	if !ok {
		return
	}

	ticketTypeID, ok := pathTicketType(w, r)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"ticket_type_id": ticketTypeID,
		"price":          h.svc.GetTicketPrice(eventID, seller, ticketTypeID),
		"amount":         h.svc.GetTicketAmount(eventID, seller, ticketTypeID),
	})
}

// Deposit credits an account's wallet. Only the marketplace operator may
// fund accounts.
func (h *MarketplaceHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	if callerFrom(r.Context()) != h.svc.Operator() {
		writeError(w, fmt.Errorf("%w: only the marketplace operator can fund wallets", domain.ErrForbidden))
		return
	}

	var req struct {
		Account string          `json:"account"`
		Amount  decimal.Decimal `json:"amount"`
	}
	if !decode(w, r, &req) {
		return
	}

	account, err := uuid.Parse(req.Account)
	if err != nil {
		writeError(w, fmt.Errorf("%w: invalid account", domain.ErrInvalidArgument))
		return
	}

	if err := h.funds.Deposit(r.Context(), account, req.Amount); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]decimal.Decimal{"balance": h.funds.Balance(r.Context(), account)})
}

func (h *MarketplaceHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]decimal.Decimal{
		"balance": h.funds.Balance(r.Context(), callerFrom(r.Context())),
	})
}
