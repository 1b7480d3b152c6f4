package handler

import (
	"net/http"

	"event-ticketing/internal/middleware"
	"event-ticketing/internal/model"
	"event-ticketing/internal/service"
	apperrors "event-ticketing/pkg/app_errors"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	service service.BookingService
}

func NewBookingHandler(service service.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) RegisterRoutes(r *gin.Engine, authn gin.HandlerFunc) {
	router := r.Group("/api/v1/events")
	{
		router.GET(":id/status", h.GetStatus)
		router.POST(":id/book", authn, h.Book)
		router.POST(":id/cancel", authn, h.Cancel)
	}
}

// BookResponse 訂票結果
type BookResponse struct {
	Message          string               `json:"message"`
	Status           model.BookingOutcome `json:"status"`
	Booking          *model.Booking       `json:"booking"`
	AvailableTickets int                  `json:"availableTickets"`
	WaitingListCount int                  `json:"waitingListCount"`
}

// CancelResponse 取消結果；有人遞補時帶 promotedUserId
type CancelResponse struct {
	Message          string `json:"message"`
	AvailableTickets int    `json:"availableTickets"`
	WaitingListCount int    `json:"waitingListCount"`
	PromotedUserID   *int   `json:"promotedUserId,omitempty"`
}

func (h *BookingHandler) Book(c *gin.Context) {
	eventID, ok := bindEventID(c)
	if !ok {
		return
	}
	user, ok := middleware.CurrentUser(c)
	if !ok {
		handleError(c, apperrors.ErrMissingToken, "Book")
		return
	}

	result, err := h.service.RequestBooking(c, eventID, user.ID)
	if err != nil {
		handleError(c, err, "Book")
		return
	}

	message := "Ticket booked successfully"
	if result.Outcome == model.OutcomeWaitlisted {
		message = "Added to waiting list"
	}
	c.JSON(http.StatusCreated, BookResponse{
		Message:          message,
		Status:           result.Outcome,
		Booking:          result.Booking,
		AvailableTickets: result.Status.AvailableTickets,
		WaitingListCount: result.Status.WaitingListCount,
	})
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	eventID, ok := bindEventID(c)
	if !ok {
		return
	}
	user, ok := middleware.CurrentUser(c)
	if !ok {
		handleError(c, apperrors.ErrMissingToken, "Cancel")
		return
	}

	result, err := h.service.CancelBooking(c, eventID, user.ID)
	if err != nil {
		handleError(c, err, "Cancel")
		return
	}

	resp := CancelResponse{
		Message:          "Booking cancelled successfully",
		AvailableTickets: result.Status.AvailableTickets,
		WaitingListCount: result.Status.WaitingListCount,
	}
	if result.Promoted != nil {
		promoted := result.Promoted.UserID
		resp.PromotedUserID = &promoted
	}
	c.JSON(http.StatusOK, resp)
}

func (h *BookingHandler) GetStatus(c *gin.Context) {
	eventID, ok := bindEventID(c)
	if !ok {
		return
	}
	status, err := h.service.GetStatus(c, eventID)
	if err != nil {
		handleError(c, err, "GetStatus")
		return
	}
	c.JSON(http.StatusOK, status)
}
