package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(auth *Authenticator, events *EventHandler, market *MarketplaceHandler) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /events", auth.Require(events.CreateEvent))
	mux.HandleFunc("GET /events", events.ListEvents)
	mux.HandleFunc("GET /events/{eventID}", events.GetEvent)
	mux.HandleFunc("POST /events/{eventID}/ticket-types", auth.Require(events.CreateTicketType))
	mux.HandleFunc("GET /events/{eventID}/ticket-types", events.ListTicketTypes)
	mux.HandleFunc("POST /events/{eventID}/ticket-types/{ticketTypeID}/mint", auth.Require(events.MintMore))
	mux.HandleFunc("PUT /events/{eventID}/ticket-types/{ticketTypeID}/value", auth.Require(events.AssignValue))
	mux.HandleFunc("POST /events/{eventID}/approvals", auth.Require(events.SetApproval))
	mux.HandleFunc("GET /events/{eventID}/balances/{accountID}/{ticketTypeID}", events.GetBalance)

	mux.HandleFunc("GET /events/{eventID}/sales", market.GetSales)
	mux.HandleFunc("GET /events/{eventID}/sellers", market.GetSellers)
	mux.HandleFunc("GET /events/{eventID}/sellers/{sellerID}/listings", market.GetSellerListings)
	mux.HandleFunc("GET /events/{eventID}/sellers/{sellerID}/listings/{ticketTypeID}", market.GetListing)

	mux.HandleFunc("POST /listings", auth.Require(market.ListTicket))
	mux.HandleFunc("DELETE /listings", auth.Require(market.CancelListing))
	mux.HandleFunc("PUT /listings/price", auth.Require(market.UpdateListing))
	mux.HandleFunc("POST /purchases", auth.Require(market.BuyItem))
	mux.HandleFunc("GET /proceeds", auth.Require(market.GetProceeds))
	mux.HandleFunc("POST /proceeds/withdraw", auth.Require(market.WithdrawProceeds))
	mux.HandleFunc("POST /wallet/deposit", auth.Require(market.Deposit))
	mux.HandleFunc("GET /wallet", auth.Require(market.GetBalance))

	mux.Handle("GET /metrics", promhttp.Handler())

	return mux
}
