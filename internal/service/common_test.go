package service_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"event-ticketing/internal/auth"
	"event-ticketing/internal/model"
	"event-ticketing/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	store    *memStore
	cache    *memStatusCache
	queue    *recordingQueue
	bookings service.BookingService
	events   service.EventService
	users    service.UserService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := newMemStore()
	statusCache := newMemStatusCache()
	activityQueue := &recordingQueue{}

	return &fixture{
		store: store,
		cache: statusCache,
		queue: activityQueue,
		bookings: service.NewBookingService(store,
			memEventRepo{store}, memBookingRepo{store}, memUserRepo{store}, statusCache, activityQueue),
		events: service.NewEventService(store,
			memEventRepo{store}, memBookingRepo{store}, memActivityRepo{store}, statusCache, activityQueue),
		users: service.NewUserService(memUserRepo{store}, memBookingRepo{store}, auth.NewBcryptHasher(4), false),
	}
}

func (f *fixture) createEvent(t *testing.T, name string, capacity int) *model.Event {
	t.Helper()
	event, err := f.events.Create(context.Background(), model.CreateEventParams{
		Name:         name,
		Venue:        "Main Hall",
		Date:         testDate,
		Price:        500,
		Description:  "test event",
		TotalTickets: capacity,
	}, 0)
	require.NoError(t, err)
	return event
}

func (f *fixture) createUsers(n int) []*model.User {
	users := make([]*model.User, n)
	for i := range users {
		users[i] = f.store.addUser(fmt.Sprintf("user%d", i+1), false)
	}
	return users
}

func (f *fixture) status(t *testing.T, eventID uuid.UUID) model.EventStatusSnapshot {
	t.Helper()
	status, err := f.bookings.GetStatus(context.Background(), eventID)
	require.NoError(t, err)
	return *status
}

// assertCapacity 檢查 0 <= available <= total 以及 confirmed + available == total
func (f *fixture) assertCapacity(t *testing.T, eventID uuid.UUID) {
	t.Helper()
	f.store.mu.Lock()
	defer f.store.mu.Unlock()

	event := f.store.eventByUUID(eventID)
	require.NotNil(t, event)
	require.GreaterOrEqual(t, event.AvailableTickets, 0)
	require.LessOrEqual(t, event.AvailableTickets, event.TotalTickets)

	confirmed, waiting := 0, 0
	for _, b := range f.store.bookings {
		if b.EventID != event.ID {
			continue
		}
		if b.Status == model.BookingStatusConfirmed {
			confirmed++
		} else {
			waiting++
		}
	}
	require.Equal(t, event.TotalTickets, confirmed+event.AvailableTickets)
	if waiting > 0 && event.Status == model.EventStatusActive {
		require.Zero(t, event.AvailableTickets, "waiting list must be empty while tickets are available")
	}
}

var testDate = time.Date(2026, 12, 24, 19, 0, 0, 0, time.UTC)
