package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"hotelBooker/internal/booking"
	"hotelBooker/internal/config"
	"hotelBooker/internal/models"
)

type Storage struct {
	DB *sql.DB
}

func InitDB(dbCfg *config.Database) (*Storage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.DBName,
		dbCfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	return &Storage{DB: db}, nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

func (s *Storage) FindActiveBookingByUser(ctx context.Context, userID int) (*models.BookingWithRoom, error) {
	query := `
		SELECT b.id, b.user_id, b.room_id, b.created_at, b.updated_at,
		       r.id, r.name, r.capacity, r.hotel_id
		FROM bookings b
		JOIN rooms r ON r.id = b.room_id
		WHERE b.user_id = $1
		ORDER BY b.created_at ASC
		LIMIT 1`

	var bwr models.BookingWithRoom
	err := s.DB.QueryRowContext(ctx, query, userID).Scan(
		&bwr.ID,
		&bwr.UserID,
		&bwr.RoomID,
		&bwr.CreatedAt,
		&bwr.UpdatedAt,
		&bwr.Room.ID,
		&bwr.Room.Name,
		&bwr.Room.Capacity,
		&bwr.Room.HotelID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}

	return &bwr, nil
}

func (s *Storage) FindEnrollmentByUser(ctx context.Context, userID int) (*models.Enrollment, error) {
	query := `
		SELECT id, user_id
		FROM enrollments
		WHERE user_id = $1`

	var enrollment models.Enrollment
	err := s.DB.QueryRowContext(ctx, query, userID).Scan(&enrollment.ID, &enrollment.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get enrollment: %w", err)
	}

	return &enrollment, nil
}

func (s *Storage) FindTicketByEnrollment(ctx context.Context, enrollmentID int) (*models.Ticket, error) {
	query := `
		SELECT t.id, t.enrollment_id, t.status,
		       tt.id, tt.is_remote, tt.includes_hotel
		FROM tickets t
		JOIN ticket_types tt ON tt.id = t.ticket_type_id
		WHERE t.enrollment_id = $1`

	var ticket models.Ticket
	err := s.DB.QueryRowContext(ctx, query, enrollmentID).Scan(
		&ticket.ID,
		&ticket.EnrollmentID,
		&ticket.Status,
		&ticket.Type.ID,
		&ticket.Type.IsRemote,
		&ticket.Type.IncludesHotel,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}

	return &ticket, nil
}

func (s *Storage) InTx(ctx context.Context, fn func(tx booking.Tx) error) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err = fn(&storageTx{tx: tx}); err != nil {
		if isRetriable(err) {
			return booking.ErrTxConflict
		}
		return err
	}

	if err = tx.Commit(); err != nil {
		if isRetriable(err) {
			return booking.ErrTxConflict
		}
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// isRetriable reports serialization failures and deadlocks, which resolve on
// a fresh attempt.
func isRetriable(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "40001" || pqErr.Code == "40P01"
	}
	return false
}

type storageTx struct {
	tx *sql.Tx
}

// Room locks the room row with FOR UPDATE. Every capacity-affecting
// transaction on the same room goes through this lock, so occupancy cannot
// change between the count and the commit.
func (t *storageTx) Room(ctx context.Context, roomID int) (*models.Room, error) {
	query := `
		SELECT id, name, capacity, hotel_id
		FROM rooms
		WHERE id = $1
		FOR UPDATE`

	var room models.Room
	err := t.tx.QueryRowContext(ctx, query, roomID).Scan(
		&room.ID,
		&room.Name,
		&room.Capacity,
		&room.HotelID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to lock room row: %w", err)
	}

	return &room, nil
}

func (t *storageTx) CountBookingsByRoom(ctx context.Context, roomID int, excludeBookingID int) (int, error) {
	// Booking ids start at 1, so an excludeBookingID of 0 excludes nothing.
	query := `
		SELECT COUNT(*)
		FROM bookings
		WHERE room_id = $1 AND id <> $2`

	var count int
	err := t.tx.QueryRowContext(ctx, query, roomID, excludeBookingID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count bookings: %w", err)
	}

	return count, nil
}

func (t *storageTx) FindBooking(ctx context.Context, bookingID int) (*models.Booking, error) {
	query := `
		SELECT id, user_id, room_id, created_at, updated_at
		FROM bookings
		WHERE id = $1
		FOR UPDATE`

	var b models.Booking
	err := t.tx.QueryRowContext(ctx, query, bookingID).Scan(
		&b.ID,
		&b.UserID,
		&b.RoomID,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}

	return &b, nil
}

func (t *storageTx) InsertBooking(ctx context.Context, userID, roomID int) (int, error) {
	query := `
		INSERT INTO bookings (user_id, room_id, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		RETURNING id`

	var id int
	err := t.tx.QueryRowContext(ctx, query, userID, roomID).Scan(&id)
	if err != nil {
		// The unique constraint on user_id catches a concurrent insert the
		// allocator's pre-check could not see.
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return 0, booking.ErrAlreadyBooked
		}
		return 0, fmt.Errorf("failed to create booking: %w", err)
	}

	return id, nil
}

func (t *storageTx) UpdateBookingRoom(ctx context.Context, bookingID, roomID int) error {
	query := `
		UPDATE bookings
		SET room_id = $2, updated_at = NOW()
		WHERE id = $1`

	_, err := t.tx.ExecContext(ctx, query, bookingID, roomID)
	if err != nil {
		return fmt.Errorf("failed to update booking room: %w", err)
	}

	return nil
}
