package service_test

import (
	"context"
	"sync"
	"testing"

	"event-ticketing/internal/model"
	apperrors "event-ticketing/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingService_ConcurrentRequests(t *testing.T) {
	const (
		capacity = 10
		requests = 50
	)

	ctx := context.Background()
	f := newFixture(t)
	event := f.createEvent(t, "Rush", capacity)
	users := f.createUsers(requests)

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		outcomes = map[model.BookingOutcome]int{}
	)
	for _, u := range users {
		wg.Add(1)
		go func(userID int) {
			defer wg.Done()
			result, err := f.bookings.RequestBooking(ctx, event.EventID, userID)
			if !assert.NoError(t, err) {
				return
			}
			mu.Lock()
			outcomes[result.Outcome]++
			mu.Unlock()
		}(u.ID)
	}
	wg.Wait()

	assert.Equal(t, capacity, outcomes[model.OutcomeBooked])
	assert.Equal(t, requests-capacity, outcomes[model.OutcomeWaitlisted])

	status := f.status(t, event.EventID)
	assert.Equal(t, 0, status.AvailableTickets)
	assert.Equal(t, capacity, status.BookingsCount)
	assert.Equal(t, requests-capacity, status.WaitingListCount)
	f.assertCapacity(t, event.EventID)
}

func TestBookingService_ConcurrentCancellations(t *testing.T) {
	const capacity = 5

	ctx := context.Background()
	f := newFixture(t)
	event := f.createEvent(t, "Churn", capacity)
	users := f.createUsers(capacity * 3)
	for _, u := range users {
		_, err := f.bookings.RequestBooking(ctx, event.EventID, u.ID)
		require.NoError(t, err)
	}

	// 前 capacity 位同時取消，候補依序遞補
	var wg sync.WaitGroup
	for _, u := range users[:capacity] {
		wg.Add(1)
		go func(userID int) {
			defer wg.Done()
			_, err := f.bookings.CancelBooking(ctx, event.EventID, userID)
			assert.NoError(t, err)
		}(u.ID)
	}
	wg.Wait()

	got, err := f.events.GetByEventID(ctx, event.EventID)
	require.NoError(t, err)

	wantConfirmed := make([]int, 0, capacity)
	for _, u := range users[capacity : capacity*2] {
		wantConfirmed = append(wantConfirmed, u.ID)
	}
	assert.Equal(t, wantConfirmed, got.Bookings)
	assert.Len(t, got.WaitingList, capacity)

	status := f.status(t, event.EventID)
	assert.Equal(t, model.EventStatusSnapshot{AvailableTickets: 0, WaitingListCount: capacity, BookingsCount: capacity}, withoutVersion(status))
	f.assertCapacity(t, event.EventID)
}

func TestBookingService_ConcurrentDuplicateRequests(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	event := f.createEvent(t, "Double click", 3)
	user := f.createUsers(1)[0]

	var (
		wg         sync.WaitGroup
		mu         sync.Mutex
		successes  int
		duplicates int
	)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.bookings.RequestBooking(ctx, event.EventID, user.ID)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case assert.ErrorIs(t, err, apperrors.ErrAlreadyBooked):
				duplicates++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Equal(t, 9, duplicates)
	assert.Equal(t, 2, f.status(t, event.EventID).AvailableTickets)
}
