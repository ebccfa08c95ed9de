package booking

import (
	"context"
	"sync"
	"time"

	"hotelBooker/internal/models"
)

// fakeStore is an in-memory Store. InTx holds one mutex for the whole
// transaction, which gives the same per-room serialization guarantee the
// postgres row lock does.
type fakeStore struct {
	mu          sync.Mutex
	nextID      int
	rooms       map[int]models.Room
	bookings    map[int]models.Booking
	enrollments map[int]models.Enrollment // keyed by user id
	tickets     map[int]models.Ticket     // keyed by enrollment id

	// conflicts makes the next N transactions fail with ErrTxConflict before
	// fn runs, to exercise the allocator's retry loop.
	conflicts int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		rooms:       make(map[int]models.Room),
		bookings:    make(map[int]models.Booking),
		enrollments: make(map[int]models.Enrollment),
		tickets:     make(map[int]models.Ticket),
	}
}

func (s *fakeStore) addRoom(id, capacity int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rooms[id] = models.Room{ID: id, Name: "room", Capacity: capacity, HotelID: 1}
}

func (s *fakeStore) addEligibleUser(userID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.enrollments[userID] = models.Enrollment{ID: userID, UserID: userID}
	s.tickets[userID] = models.Ticket{
		ID:           userID,
		EnrollmentID: userID,
		Status:       models.TicketStatusPaid,
		Type:         models.TicketType{ID: 1, IncludesHotel: true},
	}
}

func (s *fakeStore) setTicket(userID int, ticket models.Ticket) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tickets[userID] = ticket
}

func (s *fakeStore) occupancy(roomID int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, b := range s.bookings {
		if b.RoomID == roomID {
			count++
		}
	}
	return count
}

func (s *fakeStore) totalBookings() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.bookings)
}

func (s *fakeStore) FindActiveBookingByUser(_ context.Context, userID int) (*models.BookingWithRoom, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range s.bookings {
		if b.UserID == userID {
			return &models.BookingWithRoom{Booking: b, Room: s.rooms[b.RoomID]}, nil
		}
	}
	return nil, nil
}

func (s *fakeStore) FindEnrollmentByUser(_ context.Context, userID int) (*models.Enrollment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.enrollments[userID]; ok {
		return &e, nil
	}
	return nil, nil
}

func (s *fakeStore) FindTicketByEnrollment(_ context.Context, enrollmentID int) (*models.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.tickets[enrollmentID]; ok {
		return &t, nil
	}
	return nil, nil
}

func (s *fakeStore) InTx(_ context.Context, fn func(tx Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conflicts > 0 {
		s.conflicts--
		return ErrTxConflict
	}

	return fn(&fakeTx{store: s})
}

type fakeTx struct {
	store *fakeStore
}

func (t *fakeTx) Room(_ context.Context, roomID int) (*models.Room, error) {
	if r, ok := t.store.rooms[roomID]; ok {
		return &r, nil
	}
	return nil, nil
}

func (t *fakeTx) CountBookingsByRoom(_ context.Context, roomID int, excludeBookingID int) (int, error) {
	count := 0
	for _, b := range t.store.bookings {
		if b.RoomID == roomID && b.ID != excludeBookingID {
			count++
		}
	}
	return count, nil
}

func (t *fakeTx) FindBooking(_ context.Context, bookingID int) (*models.Booking, error) {
	if b, ok := t.store.bookings[bookingID]; ok {
		return &b, nil
	}
	return nil, nil
}

func (t *fakeTx) InsertBooking(_ context.Context, userID, roomID int) (int, error) {
	// Mirrors the unique constraint on bookings.user_id.
	for _, b := range t.store.bookings {
		if b.UserID == userID {
			return 0, ErrAlreadyBooked
		}
	}

	t.store.nextID++
	id := t.store.nextID
	now := time.Now()
	t.store.bookings[id] = models.Booking{
		ID:        id,
		UserID:    userID,
		RoomID:    roomID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return id, nil
}

func (t *fakeTx) UpdateBookingRoom(_ context.Context, bookingID, roomID int) error {
	b := t.store.bookings[bookingID]
	b.RoomID = roomID
	b.UpdatedAt = time.Now()
	t.store.bookings[bookingID] = b
	return nil
}
