package apperrors

import "errors"

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrInternalServerError = errors.New("internal server error")

	ErrEventNotFound   = errors.New("event not found")
	ErrEventCancelled  = errors.New("event has been cancelled")
	ErrUserNotFound    = errors.New("user not found")
	ErrBookingNotFound = errors.New("booking not found")

	ErrAlreadyBooked         = errors.New("you have already booked this event")
	ErrEventAlreadyExists    = errors.New("event with the same name and venue already exists")
	ErrUserAlreadyExists     = errors.New("user already exists")
	ErrCapacityBelowBookings = errors.New("total tickets cannot be lower than confirmed bookings")
	ErrInvalidBookingStatus  = errors.New("invalid booking status transition")

	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid token")
	ErrMissingToken       = errors.New("no token provided")
	ErrAdminOnly          = errors.New("access denied, admins only")
	ErrAdminSignupClosed  = errors.New("admin registration is disabled")

	ErrCapacityInvariant = errors.New("capacity invariant violated")

	ErrCacheMiss = errors.New("cache miss")
)

// Kind 將錯誤分類，讓 HTTP 邊界統一轉換狀態碼
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindConflict
	KindUnauthorized
	KindForbidden
	KindInvariant
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	case KindInvariant:
		return "invariant_violation"
	default:
		return "internal"
	}
}

var kinds = []struct {
	err  error
	kind Kind
}{
	{ErrInvalidInput, KindValidation},
	{ErrEventNotFound, KindNotFound},
	{ErrEventCancelled, KindNotFound},
	{ErrUserNotFound, KindNotFound},
	{ErrBookingNotFound, KindNotFound},
	{ErrAlreadyBooked, KindConflict},
	{ErrEventAlreadyExists, KindConflict},
	{ErrUserAlreadyExists, KindConflict},
	{ErrCapacityBelowBookings, KindConflict},
	{ErrInvalidBookingStatus, KindConflict},
	{ErrInvalidCredentials, KindUnauthorized},
	{ErrInvalidToken, KindUnauthorized},
	{ErrMissingToken, KindForbidden},
	{ErrAdminOnly, KindForbidden},
	{ErrAdminSignupClosed, KindForbidden},
	{ErrCapacityInvariant, KindInvariant},
}

// KindOf 回傳 err（可被包裝）所屬的分類；無法辨識時為 KindInternal
func KindOf(err error) Kind {
	if err == nil {
		return KindInternal
	}
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.kind
		}
	}
	return KindInternal
}
