package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	bookingRepo "shareit/database/repository/booking"
	"shareit/metrics"
	"shareit/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateBooking validates the request and stores a WAITING booking.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, req models.BookingRequestInput, bookerID string) (*models.BookingView, error) {
	user, err := s.UserRepo.GetByID(ctx, bookerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load booker: %w", err)
	}
	if user == nil {
		return nil, s.reject(NewUserNotFound(bookerID))
	}
	item, err := s.ItemRepo.GetByID(ctx, req.ItemID)
	if err != nil {
		return nil, fmt.Errorf("failed to load item: %w", err)
	}
	if item == nil {
		return nil, s.reject(NewItemNotFound(req.ItemID))
	}

	candidate := Candidate{
		Item:     item.Snapshot(),
		BookerID: bookerID,
		Start:    req.Start.UTC(),
		End:      req.End.UTC(),
	}
	if err := Validate(candidate, s.owns()); err != nil {
		return nil, s.reject(err)
	}

	now := s.now()
	booking := &models.Booking{
		ID:        uuid.New().String(),
		Item:      candidate.Item,
		Booker:    user.Ref(),
		Start:     candidate.Start,
		End:       candidate.End,
		Status:    models.StatusWaiting,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Repo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to save booking: %w", err)
	}

	metrics.IncBookingCreated()
	s.logger().Info("booking created",
		zap.String("bookingID", booking.ID),
		zap.String("itemID", booking.Item.ID),
		zap.String("bookerID", bookerID))

	view := booking.ToView()
	return &view, nil
}

// Decide approves or rejects a waiting booking on behalf of the item owner.
func (s *DefaultBookingService) Decide(ctx context.Context, bookingID, actorID string, approve bool) (*models.BookingView, error) {
	current, err := s.Repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to load booking: %w", err)
	}
	if current == nil {
		return nil, s.reject(NewBookingNotFound(bookingID))
	}

	next, err := Decide(*current, actorID, approve, s.owns())
	if err != nil {
		return nil, s.reject(err)
	}

	err = s.Repo.UpdateStatus(ctx, bookingID, current.Status, next.Status)
	if errors.Is(err, bookingRepo.ErrStatusConflict) {
		return nil, s.reject(NewAlreadyDecided(bookingID))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to save decision: %w", err)
	}

	metrics.IncOwnerDecision(next.Status.String())
	s.logger().Info("booking decided",
		zap.String("bookingID", bookingID),
		zap.String("ownerID", actorID),
		zap.String("status", next.Status.String()))

	view := next.ToView()
	return &view, nil
}

// GetBooking returns a booking to its booker or to the item owner. Anyone else
// gets an error that the transport layer reports as not found.
func (s *DefaultBookingService) GetBooking(ctx context.Context, bookingID, actorID string) (*models.BookingView, error) {
	b, err := s.Repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to load booking: %w", err)
	}
	if b == nil {
		return nil, s.reject(NewBookingNotFound(bookingID))
	}
	if b.Booker.ID != actorID && !s.owns()(b.Item, actorID) {
		return nil, s.reject(NewNotVisible(bookingID))
	}
	view := b.ToView()
	return &view, nil
}

// ListForBooker lists the user's own bookings in the requested bucket.
func (s *DefaultBookingService) ListForBooker(ctx context.Context, bookerID, state string, page models.Page) ([]models.BookingView, error) {
	return s.list(ctx, bookerID, state, page, s.Repo.FindByBooker)
}

// ListForOwner lists the bookings of the user's items in the requested bucket.
func (s *DefaultBookingService) ListForOwner(ctx context.Context, ownerID, state string, page models.Page) ([]models.BookingView, error) {
	return s.list(ctx, ownerID, state, page, s.Repo.FindByOwner)
}

type finder func(ctx context.Context, userID string, state models.BookingState, now time.Time) ([]models.Booking, error)

func (s *DefaultBookingService) list(ctx context.Context, userID, keyword string, page models.Page, find finder) ([]models.BookingView, error) {
	exists, err := s.UserRepo.Exists(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to check user: %w", err)
	}
	if !exists {
		return nil, s.reject(NewUserNotFound(userID))
	}
	state, err := ParseState(keyword)
	if err != nil {
		return nil, s.reject(err)
	}

	now := s.now()
	bookings, err := find(ctx, userID, state, now)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings: %w", err)
	}

	classified := Paginate(Classify(bookings, state, now), page)
	views := make([]models.BookingView, 0, len(classified))
	for _, b := range classified {
		views = append(views, b.ToView())
	}
	return views, nil
}

// ProjectAvailability returns the last/next booking of each item relative to now.
func (s *DefaultBookingService) ProjectAvailability(ctx context.Context, itemIDs []string, now time.Time) (map[string]models.Projection, error) {
	var (
		bookings []models.Booking
		err      error
	)
	switch len(itemIDs) {
	case 0:
		return map[string]models.Projection{}, nil
	case 1:
		bookings, err = s.Repo.FindByItem(ctx, itemIDs[0])
	default:
		bookings, err = s.Repo.FindByItems(ctx, itemIDs)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load item bookings: %w", err)
	}
	return ProjectAll(bookings, itemIDs, now.UTC()), nil
}

// reject records a client-side failure and passes it through.
func (s *DefaultBookingService) reject(err error) error {
	kind := KindOf(err)
	metrics.IncBookingRejected(string(kind))
	s.logger().Warn("booking request rejected", zap.String("kind", string(kind)), zap.Error(err))
	return err
}
