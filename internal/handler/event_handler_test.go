package handler_test

import (
	"net/http"
	"testing"
	"time"

	"event-ticketing/internal/handler"
	"event-ticketing/internal/model"
	"event-ticketing/internal/service/mocks"
	apperrors "event-ticketing/pkg/app_errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var admin = &model.User{ID: 1, IsAdmin: true}

func setupEventTestRouter(mockService *mocks.MockEventService, user *model.User) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	eventHandler := handler.NewEventHandler(mockService)
	eventHandler.RegisterRoutes(router, fakeAuth(user))

	return router
}

func validCreateRequest() handler.CreateEventRequest {
	return handler.CreateEventRequest{
		Name:         "Go Conference",
		Venue:        "Taipei",
		Date:         time.Date(2026, 12, 1, 9, 0, 0, 0, time.UTC),
		Price:        1200,
		Description:  "A day of talks",
		TotalTickets: 100,
	}
}

func TestCreateEvent(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewMockEventService(t)
		router := setupEventTestRouter(mockService, admin)

		req := validCreateRequest()
		mockService.EXPECT().Create(mock.Anything, mock.MatchedBy(func(p model.CreateEventParams) bool {
			return p.Name == req.Name && p.TotalTickets == 100 && p.Date.Equal(req.Date)
		}), 1).Return(&model.Event{ID: 1, EventID: uuid.New(), Name: req.Name, TotalTickets: 100, AvailableTickets: 100}, nil).Once()

		w := serve(router, createJSONHTTPRequest(http.MethodPost, "/api/v1/events/initialize", req))

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("Failed - missing fields", func(t *testing.T) {
		mockService := mocks.NewMockEventService(t)
		router := setupEventTestRouter(mockService, admin)

		w := serve(router, createJSONHTTPRequest(http.MethodPost, "/api/v1/events/initialize", map[string]interface{}{
			"name": "No venue",
		}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var body struct {
			Error  string   `json:"error"`
			Fields []string `json:"fields"`
		}
		require.NoError(t, decode(w, &body))
		assert.Equal(t, "Invalid request format", body.Error)
		assert.Contains(t, body.Fields, "venue: required")
		assert.Contains(t, body.Fields, "totalTickets: required")
	})

	t.Run("Failed - invalid JSON", func(t *testing.T) {
		mockService := mocks.NewMockEventService(t)
		router := setupEventTestRouter(mockService, admin)

		w := serve(router, createJSONHTTPRequest(http.MethodPost, "/api/v1/events/initialize", InvalidJSON))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Failed - duplicate", func(t *testing.T) {
		mockService := mocks.NewMockEventService(t)
		router := setupEventTestRouter(mockService, admin)

		mockService.EXPECT().Create(mock.Anything, mock.Anything, 1).Return(nil, apperrors.ErrEventAlreadyExists).Once()

		w := serve(router, createJSONHTTPRequest(http.MethodPost, "/api/v1/events/initialize", validCreateRequest()))

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Failed - not admin", func(t *testing.T) {
		mockService := mocks.NewMockEventService(t)
		router := setupEventTestRouter(mockService, &model.User{ID: 2})

		w := serve(router, createJSONHTTPRequest(http.MethodPost, "/api/v1/events/initialize", validCreateRequest()))

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestListAndGetEvent(t *testing.T) {
	eventID := uuid.New()

	t.Run("List", func(t *testing.T) {
		mockService := mocks.NewMockEventService(t)
		router := setupEventTestRouter(mockService, nil)

		mockService.EXPECT().List(mock.Anything).Return([]*model.Event{{ID: 1, EventID: eventID}}, nil).Once()

		w := serve(router, createJSONHTTPRequest(http.MethodGet, "/api/v1/events", nil))

		require.Equal(t, http.StatusOK, w.Code)
		var events []model.Event
		require.NoError(t, decode(w, &events))
		assert.Len(t, events, 1)
	})

	t.Run("Get with ledger", func(t *testing.T) {
		mockService := mocks.NewMockEventService(t)
		router := setupEventTestRouter(mockService, nil)

		mockService.EXPECT().GetByEventID(mock.Anything, eventID).Return(&model.Event{
			ID: 1, EventID: eventID, TotalTickets: 1, Bookings: []int{3}, WaitingList: []int{4, 5},
		}, nil).Once()

		w := serve(router, createJSONHTTPRequest(http.MethodGet, "/api/v1/events/"+eventID.String(), nil))

		require.Equal(t, http.StatusOK, w.Code)
		var event model.Event
		require.NoError(t, decode(w, &event))
		assert.Equal(t, []int{3}, event.Bookings)
		assert.Equal(t, []int{4, 5}, event.WaitingList)
	})

	t.Run("Get not found", func(t *testing.T) {
		mockService := mocks.NewMockEventService(t)
		router := setupEventTestRouter(mockService, nil)

		mockService.EXPECT().GetByEventID(mock.Anything, eventID).Return(nil, apperrors.ErrEventNotFound).Once()

		w := serve(router, createJSONHTTPRequest(http.MethodGet, "/api/v1/events/"+eventID.String(), nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestUpdateEvent(t *testing.T) {
	eventID := uuid.New()
	url := "/api/v1/events/" + eventID.String()

	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewMockEventService(t)
		router := setupEventTestRouter(mockService, admin)

		mockService.EXPECT().Update(mock.Anything, eventID, mock.MatchedBy(func(p model.UpdateEventParams) bool {
			return p.TotalTickets != nil && *p.TotalTickets == 50 && p.Status != nil && *p.Status == model.EventStatusCancelled
		})).Return(&model.Event{EventID: eventID, TotalTickets: 50}, nil).Once()

		w := serve(router, createJSONHTTPRequest(http.MethodPut, url, map[string]interface{}{
			"totalTickets": 50,
			"status":       "cancelled",
		}))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Failed - empty body", func(t *testing.T) {
		mockService := mocks.NewMockEventService(t)
		router := setupEventTestRouter(mockService, admin)

		w := serve(router, createJSONHTTPRequest(http.MethodPut, url, map[string]interface{}{}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Failed - invalid status", func(t *testing.T) {
		mockService := mocks.NewMockEventService(t)
		router := setupEventTestRouter(mockService, admin)

		w := serve(router, createJSONHTTPRequest(http.MethodPut, url, map[string]interface{}{"status": "sold-out"}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Failed - below bookings", func(t *testing.T) {
		mockService := mocks.NewMockEventService(t)
		router := setupEventTestRouter(mockService, admin)

		mockService.EXPECT().Update(mock.Anything, eventID, mock.Anything).Return(nil, apperrors.ErrCapacityBelowBookings).Once()

		w := serve(router, createJSONHTTPRequest(http.MethodPut, url, map[string]interface{}{"totalTickets": 1}))

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestRemoveEvent(t *testing.T) {
	eventID := uuid.New()
	url := "/api/v1/events/" + eventID.String()

	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewMockEventService(t)
		router := setupEventTestRouter(mockService, admin)

		mockService.EXPECT().Remove(mock.Anything, eventID, 1).Return(&model.Event{EventID: eventID, Name: "gone"}, nil).Once()

		w := serve(router, createJSONHTTPRequest(http.MethodDelete, url, nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Event deleted successfully")
		assert.Contains(t, w.Body.String(), "gone")
	})

	t.Run("Failed - not found", func(t *testing.T) {
		mockService := mocks.NewMockEventService(t)
		router := setupEventTestRouter(mockService, admin)

		mockService.EXPECT().Remove(mock.Anything, eventID, 1).Return(nil, apperrors.ErrEventNotFound).Once()

		w := serve(router, createJSONHTTPRequest(http.MethodDelete, url, nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestListActivity(t *testing.T) {
	eventID := uuid.New()

	t.Run("Success with limit", func(t *testing.T) {
		mockService := mocks.NewMockEventService(t)
		router := setupEventTestRouter(mockService, admin)

		mockService.EXPECT().ListActivity(mock.Anything, eventID, 20).Return([]*model.BookingActivity{
			{ID: 1, EventID: eventID, Action: model.ActionBooked},
		}, nil).Once()

		w := serve(router, createJSONHTTPRequest(http.MethodGet, "/api/v1/events/"+eventID.String()+"/activity?limit=20", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"action":"booked"`)
	})

	t.Run("Failed - limit out of range", func(t *testing.T) {
		mockService := mocks.NewMockEventService(t)
		router := setupEventTestRouter(mockService, admin)

		w := serve(router, createJSONHTTPRequest(http.MethodGet, "/api/v1/events/"+eventID.String()+"/activity?limit=9999", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
