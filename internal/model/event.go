package model

import (
	"time"

	apperrors "event-ticketing/pkg/app_errors"

	"github.com/google/uuid"
)

// EventStatus 活動狀態
type EventStatus string

const (
	EventStatusActive    EventStatus = "active"
	EventStatusCancelled EventStatus = "cancelled"
)

func (s EventStatus) IsValid() bool {
	switch s {
	case EventStatusActive, EventStatusCancelled:
		return true
	}
	return false
}

// Event 活動模型；Bookings 與 WaitingList 由 booking ledger 推導，不直接存於 events 表
type Event struct {
	ID               int         `json:"id" db:"id"`
	EventID          uuid.UUID   `json:"eventId" db:"event_id"`
	Name             string      `json:"name" db:"name"`
	Venue            string      `json:"venue" db:"venue"`
	Date             time.Time   `json:"date" db:"event_date"`
	Price            float64     `json:"price" db:"price"`
	Description      string      `json:"description" db:"description"`
	TotalTickets     int         `json:"totalTickets" db:"total_tickets"`
	AvailableTickets int         `json:"availableTickets" db:"available_tickets"`
	Status           EventStatus `json:"status" db:"status"`
	CreatedBy        *int        `json:"createdBy,omitempty" db:"created_by"`
	Version          int64       `json:"-" db:"version"`
	CreatedAt        time.Time   `json:"createdAt" db:"created_at"`
	UpdatedAt        time.Time   `json:"updatedAt" db:"updated_at"`

	Bookings    []int `json:"bookings,omitempty" db:"-"`
	WaitingList []int `json:"waitingList,omitempty" db:"-"`
}

// IsCancelled 檢查活動是否已取消
func (e *Event) IsCancelled() bool {
	return e.Status == EventStatusCancelled
}

// ConfirmedCount 已確認（佔用名額）的數量
func (e *Event) ConfirmedCount() int {
	return e.TotalTickets - e.AvailableTickets
}

// CheckAvailable 寫入前的容量保護：0 <= available <= total
func (e *Event) CheckAvailable(available int) error {
	if available < 0 || available > e.TotalTickets {
		return apperrors.ErrCapacityInvariant
	}
	return nil
}

// CreateEventParams 建立活動所需欄位
type CreateEventParams struct {
	Name         string
	Venue        string
	Date         time.Time
	Price        float64
	Description  string
	TotalTickets int
}

func (p CreateEventParams) Validate() error {
	if p.Name == "" || p.Venue == "" || p.Description == "" || p.Date.IsZero() {
		return apperrors.ErrInvalidInput
	}
	if p.Price < 0 || p.TotalTickets < 1 {
		return apperrors.ErrInvalidInput
	}
	return nil
}

type UpdateEventParams struct {
	Name         *string
	Venue        *string
	Date         *time.Time
	Price        *float64
	Description  *string
	Status       *EventStatus
	TotalTickets *int
}

// IsEmpty 沒有任何欄位需要更新
func (p UpdateEventParams) IsEmpty() bool {
	return p.Name == nil && p.Venue == nil && p.Date == nil && p.Price == nil &&
		p.Description == nil && p.Status == nil && p.TotalTickets == nil
}

// HasDetails 是否更新了容量以外的欄位
func (p UpdateEventParams) HasDetails() bool {
	return p.Name != nil || p.Venue != nil || p.Date != nil || p.Price != nil ||
		p.Description != nil || p.Status != nil
}

func (p UpdateEventParams) Validate() error {
	if p.IsEmpty() {
		return apperrors.ErrInvalidInput
	}
	if p.Name != nil && *p.Name == "" {
		return apperrors.ErrInvalidInput
	}
	if p.Venue != nil && *p.Venue == "" {
		return apperrors.ErrInvalidInput
	}
	if p.Description != nil && *p.Description == "" {
		return apperrors.ErrInvalidInput
	}
	if p.Price != nil && *p.Price < 0 {
		return apperrors.ErrInvalidInput
	}
	if p.Status != nil && !p.Status.IsValid() {
		return apperrors.ErrInvalidInput
	}
	if p.TotalTickets != nil && *p.TotalTickets < 0 {
		return apperrors.ErrInvalidInput
	}
	return nil
}

// EventStatusSnapshot 活動名額狀態；Version 對應 events.version，用於快取比較新舊
type EventStatusSnapshot struct {
	AvailableTickets int   `json:"availableTickets"`
	WaitingListCount int   `json:"waitingListCount"`
	BookingsCount    int   `json:"bookingsCount"`
	Version          int64 `json:"-"`
}
