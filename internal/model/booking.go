package model

import (
	"time"

	"github.com/google/uuid"
)

// BookingStatus 訂位狀態類型
type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusWaiting   BookingStatus = "waiting"
)

// IsValid 驗證狀態是否有效
func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingStatusConfirmed, BookingStatusWaiting:
		return true
	}
	return false
}

// CanTransitionTo 只允許候補轉正；取消直接刪除資料列
func (s BookingStatus) CanTransitionTo(target BookingStatus) bool {
	transitions := map[BookingStatus][]BookingStatus{
		BookingStatusWaiting:   {BookingStatusConfirmed},
		BookingStatusConfirmed: {},
	}

	allowed, ok := transitions[s]
	if !ok {
		return false
	}

	for _, status := range allowed {
		if status == target {
			return true
		}
	}
	return false
}

// Booking 訂位紀錄，(EventID, UserID) 至多一筆
type Booking struct {
	ID        int           `json:"id" db:"id"`
	EventID   int           `json:"-" db:"event_id"`
	UserID    int           `json:"userId" db:"user_id"`
	Status    BookingStatus `json:"status" db:"status"`
	CreatedAt time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time     `json:"updatedAt" db:"updated_at"`

	Event *EventSummary `json:"event,omitempty" db:"-"`
}

// EventSummary 個人頁面顯示用的活動摘要
type EventSummary struct {
	EventID uuid.UUID `json:"eventId"`
	Name    string    `json:"name"`
	Venue   string    `json:"venue"`
	Date    time.Time `json:"date"`
}

// BookingOutcome 訂位請求的結果
type BookingOutcome string

const (
	OutcomeBooked     BookingOutcome = "booked"
	OutcomeWaitlisted BookingOutcome = "waitlisted"
)

type BookingResult struct {
	Outcome BookingOutcome
	Booking *Booking
	Status  EventStatusSnapshot
}

type CancellationResult struct {
	Cancelled *Booking
	Promoted  *Booking
	Status    EventStatusSnapshot
}
