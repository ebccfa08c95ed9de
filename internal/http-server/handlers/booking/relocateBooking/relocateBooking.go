package relocateBooking

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"hotelBooker/internal/booking"
	"hotelBooker/internal/http-server/middleware/mwauth"
	"hotelBooker/internal/lib/api/response"
	"hotelBooker/internal/lib/logger/sl"
)

type BookingRequest struct {
	RoomID int `json:"room_id" validate:"required,gt=0"`
}

type BookingResponse struct {
	response.Response
	BookingID int `json:"booking_id"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingRelocator
type BookingRelocator interface {
	RelocateBooking(ctx context.Context, userID, bookingID, roomID int) error
}

func New(log *slog.Logger, relocator BookingRelocator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.relocateBooking.New"

		log = log.With(slog.String("op", op))

		userID, ok := mwauth.UserID(r.Context())
		if !ok {
			log.Error("no authenticated user in context")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("unauthorized"))
			return
		}

		log = log.With(slog.Int("user_id", userID))

		bookingIDStr := chi.URLParam(r, "bookingId")
		if bookingIDStr == "" {
			log.Error("booking id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("booking id is required"))
			return
		}

		bookingID, err := strconv.Atoi(bookingIDStr)
		if err != nil {
			log.Error("invalid booking id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid booking id format"))
			return
		}

		log = log.With(slog.Int("booking_id", bookingID))

		var req BookingRequest

		err = render.DecodeJSON(r.Body, &req)
		if errors.Is(err, io.EOF) {
			// An absent body carries no room id at all, same as an empty
			// object below.
			log.Error("request body is empty")
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("room id is required"))
			return
		}
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		// A request without a room id references no room at all, which the
		// contract treats as not found rather than invalid.
		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		err = relocator.RelocateBooking(r.Context(), userID, bookingID, req.RoomID)
		if err != nil {
			log.Error("failed to relocate booking", sl.Err(err))
			renderBookingError(w, r, err)
			return
		}

		log.Info("booking relocated", slog.Int("room_id", req.RoomID))

		render.JSON(w, r, BookingResponse{
			Response:  response.OK(),
			BookingID: bookingID,
		})
	}
}

func renderBookingError(w http.ResponseWriter, r *http.Request, err error) {
	switch booking.KindOf(err) {
	case booking.KindNotFound:
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, response.Error(err.Error()))
	case booking.KindForbidden:
		// Room full, missing booking and ownership failures collapse to one
		// external outcome.
		render.Status(r, http.StatusForbidden)
		render.JSON(w, r, response.Error("forbidden"))
	case booking.KindUnavailable:
		render.Status(r, http.StatusServiceUnavailable)
		render.JSON(w, r, response.Error(err.Error()))
	default:
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to process booking"))
	}
}
