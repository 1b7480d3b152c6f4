package model

import (
	"time"

	"github.com/google/uuid"
)

// BookingAction 已提交的名額變化種類
type BookingAction string

const (
	ActionBooked       BookingAction = "booked"
	ActionWaitlisted   BookingAction = "waitlisted"
	ActionCancelled    BookingAction = "cancelled"
	ActionPromoted     BookingAction = "promoted"
	ActionEventRemoved BookingAction = "event_removed"
)

// BookingActivity 經由 queue 傳給 worker 後寫入 booking_activities
type BookingActivity struct {
	ID               int64         `json:"id"`
	EventID          uuid.UUID     `json:"eventId"`
	UserID           int           `json:"userId"`
	BookingID        *int          `json:"bookingId,omitempty"`
	Action           BookingAction `json:"action"`
	AvailableTickets int           `json:"availableTickets"`
	WaitingListCount int           `json:"waitingListCount"`
	OccurredAt       time.Time     `json:"occurredAt"`
}
