package handler

import (
	"net/http"

	"github.com/shopspring/decimal"
	"github.com/srgjo27/ticket_marketplace/internal/core/services"
)

type EventHandler struct {
	svc *services.EventService
}

func NewEventHandler(svc *services.EventService) *EventHandler {
	return &EventHandler{svc: svc}
}

func (h *EventHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req services.CreateEventRequest
	if !decode(w, r, &req) {
		return
	}

	ev, err := h.svc.CreateEvent(r.Context(), callerFrom(r.Context()), req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, ev)
}

func (h *EventHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.svc.ListEvents(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, events)
}

func (h *EventHandler) GetEvent(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathUUID(w, r, "eventID")
	if !ok {
		return
	}

	name, err := h.svc.EventName(r.Context(), eventID)
	if err != nil {
		writeError(w, err)
		return
	}

	types, err := h.svc.ListTicketTypes(r.Context(), eventID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"id":           eventID,
		"name":         name,
		"ticket_types": types,
	})
}

func (h *EventHandler) CreateTicketType(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathUUID(w, r, "eventID")
	if !ok {
		return
	}

	var req services.CreateTicketTypeRequest
	if !decode(w, r, &req) {
		return
	}

	tt, err := h.svc.CreateTicketType(r.Context(), callerFrom(r.Context()), eventID, req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, tt)
}

func (h *EventHandler) ListTicketTypes(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathUUID(w, r, "eventID")
	if !ok {
		return
	}

	types, err := h.svc.ListTicketTypes(r.Context(), eventID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, types)
}

func (h *EventHandler) MintMore(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathUUID(w, r, "eventID")
	if !ok {
		return
	}

	ticketTypeID, ok := pathTicketType(w, r)
	if !ok {
		return
	}

	var req struct {
		Amount uint64 `json:"amount"`
	}
	if !decode(w, r, &req) {
		return
	}

	if err := h.svc.MintMore(r.Context(), callerFrom(r.Context()), eventID, ticketTypeID, req.Amount); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *EventHandler) AssignValue(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathUUID(w, r, "eventID")
	if !ok {
		return
	}

	ticketTypeID, ok := pathTicketType(w, r)
	if !ok {
		return
	}

	var req struct {
		Value decimal.Decimal `json:"value"`
	}
	if !decode(w, r, &req) {
		return
	}

	if err := h.svc.AssignValue(r.Context(), callerFrom(r.Context()), eventID, ticketTypeID, req.Value); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *EventHandler) SetApproval(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathUUID(w, r, "eventID")
	if !ok {
		return
	}

	var req services.SetApprovalRequest
	if !decode(w, r, &req) {
		return
	}

	if err := h.svc.SetApproval(r.Context(), callerFrom(r.Context()), eventID, req); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *EventHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathUUID(w, r, "eventID")
	if !ok {
		return
	}

	account, ok := pathUUID(w, r, "accountID")
	if !ok {
		return
	}

	ticketTypeID, ok := pathTicketType(w, r)
	if !ok {
		return
	}

	balance, err := h.svc.BalanceOf(r.Context(), eventID, account, ticketTypeID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]uint64{"balance": balance})
}
