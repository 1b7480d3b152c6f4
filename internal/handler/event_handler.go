package handler

import (
	"net/http"
	"time"

	"event-ticketing/internal/middleware"
	"event-ticketing/internal/model"
	"event-ticketing/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type EventHandler struct {
	service service.EventService
}

func NewEventHandler(service service.EventService) *EventHandler {
	return &EventHandler{service: service}
}

// RegisterRoutes authn 為驗證 middleware；管理操作另外需要 admin
func (h *EventHandler) RegisterRoutes(r *gin.Engine, authn gin.HandlerFunc) {
	router := r.Group("/api/v1/events")
	{
		router.GET("", h.List)
		router.GET(":id", h.GetByEventID)
	}

	admin := router.Group("", authn, middleware.RequireAdmin())
	{
		admin.POST("initialize", h.Create)
		admin.PUT(":id", h.Update)
		admin.DELETE(":id", h.Remove)
		admin.GET(":id/activity", h.ListActivity)
	}
}

// EventURI 路徑中的活動 UUID
type EventURI struct {
	ID string `uri:"id" binding:"required,uuid"`
}

// bindEventID 解析失敗時已寫入 400
func bindEventID(c *gin.Context) (uuid.UUID, bool) {
	var uri EventURI
	if err := BindUri(c, &uri); err != nil {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(uri.ID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event id"})
		return uuid.Nil, false
	}
	return id, true
}

// CreateEventRequest 建立活動請求
type CreateEventRequest struct {
	Name         string    `json:"name" binding:"required,max=255"`
	Venue        string    `json:"venue" binding:"required,max=255"`
	Date         time.Time `json:"date" binding:"required"`
	Price        float64   `json:"price" binding:"gte=0"`
	Description  string    `json:"description" binding:"required"`
	TotalTickets int       `json:"totalTickets" binding:"required,gte=1"`
}

// UpdateEventRequest 更新活動請求；未提供的欄位不變
type UpdateEventRequest struct {
	Name         *string    `json:"name" binding:"omitempty,min=1,max=255"`
	Venue        *string    `json:"venue" binding:"omitempty,min=1,max=255"`
	Date         *time.Time `json:"date"`
	Price        *float64   `json:"price" binding:"omitempty,gte=0"`
	Description  *string    `json:"description" binding:"omitempty,min=1"`
	Status       *string    `json:"status" binding:"omitempty,oneof=active cancelled"`
	TotalTickets *int       `json:"totalTickets" binding:"omitempty,gte=0"`
}

type ActivityQuery struct {
	Limit int `form:"limit" binding:"omitempty,gte=1,lte=500"`
}

func (h *EventHandler) List(c *gin.Context) {
	events, err := h.service.List(c)
	if err != nil {
		handleError(c, err, "List")
		return
	}
	c.JSON(http.StatusOK, events)
}

func (h *EventHandler) GetByEventID(c *gin.Context) {
	eventID, ok := bindEventID(c)
	if !ok {
		return
	}
	event, err := h.service.GetByEventID(c, eventID)
	if err != nil {
		handleError(c, err, "GetByEventID")
		return
	}
	c.JSON(http.StatusOK, event)
}

func (h *EventHandler) Create(c *gin.Context) {
	var req CreateEventRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	var createdBy int
	if user, ok := middleware.CurrentUser(c); ok {
		createdBy = user.ID
	}

	created, err := h.service.Create(c, model.CreateEventParams{
		Name:         req.Name,
		Venue:        req.Venue,
		Date:         req.Date,
		Price:        req.Price,
		Description:  req.Description,
		TotalTickets: req.TotalTickets,
	}, createdBy)
	if err != nil {
		handleError(c, err, "Create")
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *EventHandler) Update(c *gin.Context) {
	eventID, ok := bindEventID(c)
	if !ok {
		return
	}
	var req UpdateEventRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	params := model.UpdateEventParams{
		Name:         req.Name,
		Venue:        req.Venue,
		Date:         req.Date,
		Price:        req.Price,
		Description:  req.Description,
		TotalTickets: req.TotalTickets,
	}
	if req.Status != nil {
		status := model.EventStatus(*req.Status)
		params.Status = &status
	}
	if params.IsEmpty() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "At least one field is required"})
		return
	}

	updated, err := h.service.Update(c, eventID, params)
	if err != nil {
		handleError(c, err, "Update")
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *EventHandler) Remove(c *gin.Context) {
	eventID, ok := bindEventID(c)
	if !ok {
		return
	}

	var removedBy int
	if user, ok := middleware.CurrentUser(c); ok {
		removedBy = user.ID
	}

	event, err := h.service.Remove(c, eventID, removedBy)
	if err != nil {
		handleError(c, err, "Remove")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Event deleted successfully",
		"event":   event,
	})
}

func (h *EventHandler) ListActivity(c *gin.Context) {
	eventID, ok := bindEventID(c)
	if !ok {
		return
	}
	var query ActivityQuery
	if err := BindQuery(c, &query); err != nil {
		return
	}

	activities, err := h.service.ListActivity(c, eventID, query.Limit)
	if err != nil {
		handleError(c, err, "ListActivity")
		return
	}
	c.JSON(http.StatusOK, activities)
}
