/*
handlers.go - HTTP API handlers for the scooter-rental engine

PURPOSE:
  Exposes the rental engine via REST. Handles HTTP request/response and
  JSON serialization; all business rules stay in the fleet and rental
  packages.

ENDPOINTS:
  Scooters:
    GET    /api/scooters            List all scooters
    POST   /api/scooters            Register a scooter
    GET    /api/scooters/available  List available scooters
    DELETE /api/scooters/{id}       Remove a scooter

  Rentals:
    POST   /api/rentals/{id}/start  Start renting a scooter
    POST   /api/rentals/{id}/end    End the rental, returns the price
    GET    /api/rentals             List rental records

  Reporting:
    GET    /api/income?year=&include_open=  Income report

ERROR HANDLING:
  Domain errors map to HTTP status via errors.Is:
  - 400: invalid id / price / query parameters
  - 404: scooter not found
  - 409: state conflicts (already rented, not rented, duplicate id,
         rented-out removal, no scooters available)
  - 422: no rentals in the requested year
  - 500: everything else

SEE ALSO:
  - dto.go: request/response shapes
  - server.go: router setup and middleware
*/
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/bluescooters/rental-engine/fleet"
	"github.com/bluescooters/rental-engine/rental"
)

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Company   *rental.Company
	Inventory *fleet.Inventory
	Ledger    *rental.Ledger
}

// NewHandler creates a handler over the company and its collaborators.
func NewHandler(company *rental.Company, inventory *fleet.Inventory, ledger *rental.Ledger) *Handler {
	return &Handler{Company: company, Inventory: inventory, Ledger: ledger}
}

// =============================================================================
// SCOOTER HANDLERS
// =============================================================================

// ListScooters returns every scooter, rented or not.
func (h *Handler) ListScooters(w http.ResponseWriter, r *http.Request) {
	scooters := h.Inventory.All()
	dtos := make([]ScooterDTO, len(scooters))
	for i, s := range scooters {
		dtos[i] = toScooterDTO(s)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// ListAvailable returns scooters that can be rented right now.
func (h *Handler) ListAvailable(w http.ResponseWriter, r *http.Request) {
	scooters, err := h.Inventory.Available()
	if err != nil {
		writeDomainError(w, err)
		return
	}
	dtos := make([]ScooterDTO, len(scooters))
	for i, s := range scooters {
		dtos[i] = toScooterDTO(s)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// AddScooter registers a new scooter.
func (h *Handler) AddScooter(w http.ResponseWriter, r *http.Request) {
	var req AddScooterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	price, err := decimal.NewFromString(req.PricePerMinute)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid price_per_minute", err)
		return
	}

	if err := h.Inventory.Add(req.ID, price); err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, ScooterDTO{ID: req.ID, PricePerMinute: price.String()})
}

// RemoveScooter deletes a scooter that is not rented out.
func (h *Handler) RemoveScooter(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.Inventory.Remove(id); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// RENTAL HANDLERS
// =============================================================================

// StartRent begins a rental session.
func (h *Handler) StartRent(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.Company.StartRent(r.Context(), id); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"scooter_id": id, "status": "rented"})
}

// EndRent closes a rental session and returns its price.
func (h *Handler) EndRent(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	price, err := h.Company.EndRent(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, PriceDTO{ScooterID: id, Price: price.StringFixed(2)})
}

// ListRentals returns the full ledger.
func (h *Handler) ListRentals(w http.ResponseWriter, r *http.Request) {
	records, err := h.Ledger.All(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list rentals", err)
		return
	}
	dtos := make([]RentalDTO, len(records))
	for i, rec := range records {
		dtos[i] = toRentalDTO(rec)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// =============================================================================
// REPORTING HANDLERS
// =============================================================================

// GetIncome reports total income, optionally filtered by start year and
// optionally valuing open rentals as of now.
func (h *Handler) GetIncome(w http.ResponseWriter, r *http.Request) {
	var year *int
	if raw := r.URL.Query().Get("year"); raw != "" {
		y, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid year", err)
			return
		}
		year = &y
	}

	includeOpen := false
	if raw := r.URL.Query().Get("include_open"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid include_open", err)
			return
		}
		includeOpen = v
	}

	total, err := h.Company.CalculateIncome(r.Context(), year, includeOpen)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, IncomeDTO{Total: total.StringFixed(2), Year: year, IncludeOpen: includeOpen})
}

// =============================================================================
// HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}

// writeDomainError maps domain errors onto HTTP status codes.
func writeDomainError(w http.ResponseWriter, err error) {
	writeError(w, statusForError(err), err.Error(), nil)
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, fleet.ErrInvalidID),
		errors.Is(err, fleet.ErrInvalidPrice),
		errors.Is(err, rental.ErrInvalidName):
		return http.StatusBadRequest
	case errors.Is(err, fleet.ErrScooterNotFound):
		return http.StatusNotFound
	case errors.Is(err, fleet.ErrDuplicateID),
		errors.Is(err, fleet.ErrScooterRentedOut),
		errors.Is(err, fleet.ErrNoScootersAvailable),
		errors.Is(err, rental.ErrScooterRented),
		errors.Is(err, rental.ErrScooterNotRented),
		errors.Is(err, rental.ErrNoOpenRecord):
		return http.StatusConflict
	case errors.Is(err, rental.ErrNoRentalsInYear):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
