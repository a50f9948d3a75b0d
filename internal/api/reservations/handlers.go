// internal/api/reservations/handlers.go
package reservations

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/sgchoi-dev/facilitybook/internal/api/apiutil"
	"github.com/sgchoi-dev/facilitybook/internal/booking"
	"github.com/sgchoi-dev/facilitybook/internal/db"
)

var (
	ledger     *booking.Ledger
	ledgerOnce sync.Once
)

const reservationQueryTimeout = 5 * time.Second

// InitHandlers must be called during server startup before handling requests.
func InitHandlers(l *booking.Ledger) {
	if l == nil {
		return
	}
	ledgerOnce.Do(func() {
		ledger = l
	})
}

type createRequest struct {
	Name      string  `json:"name"`
	Phone     string  `json:"phone"`
	Age       *int64  `json:"age"`
	Gender    *string `json:"gender"`
	Facility  string  `json:"facility"`
	Detail    string  `json:"detail"`
	Date      string  `json:"date"`
	StartTime string  `json:"start_time"`
	EndTime   string  `json:"end_time"`
	Purpose   *string `json:"purpose"`
}

type updateRequest struct {
	Name      string  `json:"name"`
	Phone     string  `json:"phone"`
	Facility  string  `json:"facility"`
	Date      string  `json:"date"`
	StartTime string  `json:"start_time"`
	EndTime   string  `json:"end_time"`
	Purpose   *string `json:"purpose"`
}

type createResponse struct {
	ID          int64          `json:"id"`
	Message     string         `json:"message"`
	Reservation db.Reservation `json:"reservation"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// GET /reservations
func HandleList(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	l := loadLedger()
	if l == nil {
		logger.Error().Msg("Ledger not initialized")
		apiutil.WriteError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), reservationQueryTimeout)
	defer cancel()

	reservations, err := l.ListAll(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to list reservations")
		apiutil.WriteError(w, http.StatusInternalServerError, "Failed to list reservations")
		return
	}

	writeReservations(w, r, reservations)
}

// GET /reservations/date/{date}
func HandleListByDate(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	l := loadLedger()
	if l == nil {
		logger.Error().Msg("Ledger not initialized")
		apiutil.WriteError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	date := strings.TrimSpace(r.PathValue("date"))

	ctx, cancel := context.WithTimeout(r.Context(), reservationQueryTimeout)
	defer cancel()

	reservations, err := l.ListByDate(ctx, date)
	if err != nil {
		logger.Error().Err(err).Str("date", date).Msg("Failed to list reservations by date")
		apiutil.WriteError(w, http.StatusInternalServerError, "Failed to list reservations")
		return
	}

	writeReservations(w, r, reservations)
}

// GET /reservations/range?start=&end=
func HandleListByRange(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	l := loadLedger()
	if l == nil {
		logger.Error().Msg("Ledger not initialized")
		apiutil.WriteError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	start := r.URL.Query().Get("start")
	end := r.URL.Query().Get("end")

	ctx, cancel := context.WithTimeout(r.Context(), reservationQueryTimeout)
	defer cancel()

	reservations, err := l.ListByRange(ctx, start, end)
	if err != nil {
		if errors.Is(err, booking.ErrMissingRangeBounds) {
			apiutil.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		logger.Error().Err(err).Str("start", start).Str("end", end).Msg("Failed to list reservations by range")
		apiutil.WriteError(w, http.StatusInternalServerError, "Failed to list reservations")
		return
	}

	writeReservations(w, r, reservations)
}

// POST /reservations
func HandleCreate(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	l := loadLedger()
	if l == nil {
		logger.Error().Msg("Ledger not initialized")
		apiutil.WriteError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	var req createRequest
	if err := apiutil.DecodeJSON(r, &req); err != nil {
		apiutil.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), reservationQueryTimeout)
	defer cancel()

	created, err := l.Create(ctx, booking.CreateInput{
		Name:      req.Name,
		Phone:     req.Phone,
		Age:       req.Age,
		Gender:    req.Gender,
		Facility:  req.Facility,
		Detail:    req.Detail,
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Purpose:   req.Purpose,
	})
	if err != nil {
		if isValidationError(err) {
			apiutil.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		logger.Error().Err(err).Str("facility", req.Facility).Msg("Failed to create reservation")
		apiutil.WriteError(w, http.StatusInternalServerError, "Failed to create reservation")
		return
	}

	if err := apiutil.WriteJSON(w, http.StatusOK, createResponse{
		ID:          created.ID,
		Message:     "Reservation created successfully.",
		Reservation: created,
	}); err != nil {
		logger.Error().Err(err).Int64("reservation_id", created.ID).Msg("Failed to write reservation response")
	}
}

// PUT /reservations/{id}
func HandleUpdate(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	l := loadLedger()
	if l == nil {
		logger.Error().Msg("Ledger not initialized")
		apiutil.WriteError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	id, err := reservationIDFromRequest(r)
	if err != nil {
		apiutil.WriteError(w, http.StatusBadRequest, "Invalid reservation ID")
		return
	}

	var req updateRequest
	if err := apiutil.DecodeJSON(r, &req); err != nil {
		apiutil.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), reservationQueryTimeout)
	defer cancel()

	err = l.Update(ctx, id, booking.UpdateInput{
		Name:      req.Name,
		Phone:     req.Phone,
		Facility:  req.Facility,
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Purpose:   req.Purpose,
	})
	if err != nil {
		if errors.Is(err, booking.ErrNotFound) {
			apiutil.WriteError(w, http.StatusNotFound, err.Error())
			return
		}
		logger.Error().Err(err).Int64("reservation_id", id).Msg("Failed to update reservation")
		apiutil.WriteError(w, http.StatusInternalServerError, "Failed to update reservation")
		return
	}

	_ = apiutil.WriteJSON(w, http.StatusOK, messageResponse{Message: "Reservation updated successfully."})
}

// DELETE /reservations/{id}
func HandleDelete(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	l := loadLedger()
	if l == nil {
		logger.Error().Msg("Ledger not initialized")
		apiutil.WriteError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	id, err := reservationIDFromRequest(r)
	if err != nil {
		apiutil.WriteError(w, http.StatusBadRequest, "Invalid reservation ID")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), reservationQueryTimeout)
	defer cancel()

	if err := l.Delete(ctx, id); err != nil {
		if errors.Is(err, booking.ErrNotFound) {
			apiutil.WriteError(w, http.StatusNotFound, err.Error())
			return
		}
		logger.Error().Err(err).Int64("reservation_id", id).Msg("Failed to delete reservation")
		apiutil.WriteError(w, http.StatusInternalServerError, "Failed to delete reservation")
		return
	}

	_ = apiutil.WriteJSON(w, http.StatusOK, messageResponse{Message: "Reservation deleted successfully."})
}

// isValidationError reports whether err belongs to the create validation
// taxonomy, including the double-booking conflict, all of which surface as
// 400 responses.
func isValidationError(err error) bool {
	for _, validation := range []error{
		booking.ErrMissingField,
		booking.ErrInvalidDateFormat,
		booking.ErrInvalidTimeFormat,
		booking.ErrPastDate,
		booking.ErrInvalidTimeRange,
		booking.ErrConflict,
	} {
		if errors.Is(err, validation) {
			return true
		}
	}
	return false
}

func writeReservations(w http.ResponseWriter, r *http.Request, reservations []db.Reservation) {
	if reservations == nil {
		reservations = []db.Reservation{}
	}
	if err := apiutil.WriteJSON(w, http.StatusOK, reservations); err != nil {
		log.Ctx(r.Context()).Error().Err(err).Msg("Failed to write reservation list response")
	}
}

func reservationIDFromRequest(r *http.Request) (int64, error) {
	pathID := strings.TrimSpace(r.PathValue("id"))
	id, err := strconv.ParseInt(pathID, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid reservation ID")
	}
	return id, nil
}

func loadLedger() *booking.Ledger {
	return ledger
}
