package getBooking

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"hotelBooker/internal/booking"
	"hotelBooker/internal/http-server/middleware/mwauth"
	"hotelBooker/internal/lib/api/response"
	"hotelBooker/internal/lib/logger/sl"
	"hotelBooker/internal/models"
)

type BookingResponse struct {
	response.Response
	Booking *models.BookingWithRoom `json:"booking"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingProvider
type BookingProvider interface {
	ActiveBooking(ctx context.Context, userID int) (*models.BookingWithRoom, error)
}

func New(log *slog.Logger, provider BookingProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.getBooking.New"

		log = log.With(slog.String("op", op))

		userID, ok := mwauth.UserID(r.Context())
		if !ok {
			log.Error("no authenticated user in context")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("unauthorized"))
			return
		}

		log = log.With(slog.Int("user_id", userID))

		bwr, err := provider.ActiveBooking(r.Context(), userID)
		if err != nil {
			if booking.KindOf(err) == booking.KindNotFound {
				log.Info("user has no booking")
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("user has no booking"))
				return
			}

			log.Error("failed to get booking", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get booking"))
			return
		}

		log.Info("booking found", slog.Int("booking_id", bwr.ID))

		render.JSON(w, r, BookingResponse{
			Response: response.OK(),
			Booking:  bwr,
		})
	}
}
