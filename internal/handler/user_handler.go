package handler

import (
	"net/http"
	"time"

	"event-ticketing/internal/auth"
	"event-ticketing/internal/middleware"
	"event-ticketing/internal/model"
	"event-ticketing/internal/service"
	apperrors "event-ticketing/pkg/app_errors"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	service      service.UserService
	tokens       *auth.TokenManager
	cookieSecure bool
}

func NewUserHandler(service service.UserService, tokens *auth.TokenManager, cookieSecure bool) *UserHandler {
	return &UserHandler{service: service, tokens: tokens, cookieSecure: cookieSecure}
}

func (h *UserHandler) RegisterRoutes(r *gin.Engine, authn gin.HandlerFunc) {
	router := r.Group("/api/v1/users")
	{
		router.POST("register", h.Register)
		router.POST("login", h.Login)
		router.POST("logout", h.Logout)
		router.GET("profile", authn, h.Profile)
		router.GET("", authn, middleware.RequireAdmin(), h.List)
	}
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6,max=72"`
	IsAdmin  bool   `json:"isAdmin"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse 註冊/登入成功；token 同時寫入 cookie
type AuthResponse struct {
	Message   string      `json:"message"`
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expiresAt"`
	User      *model.User `json:"user"`
}

func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	user, err := h.service.Register(c, model.RegisterParams{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		IsAdmin:  req.IsAdmin,
	})
	if err != nil {
		handleError(c, err, "Register")
		return
	}

	h.respondWithSession(c, http.StatusCreated, "User registered successfully", user)
}

func (h *UserHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	user, err := h.service.Authenticate(c, req.Email, req.Password)
	if err != nil {
		handleError(c, err, "Login")
		return
	}

	h.respondWithSession(c, http.StatusOK, "Login successful", user)
}

func (h *UserHandler) Logout(c *gin.Context) {
	h.setCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

func (h *UserHandler) Profile(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		handleError(c, apperrors.ErrMissingToken, "Profile")
		return
	}

	profile, err := h.service.Profile(c, user.ID)
	if err != nil {
		handleError(c, err, "Profile")
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.service.List(c)
	if err != nil {
		handleError(c, err, "List")
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) respondWithSession(c *gin.Context, status int, message string, user *model.User) {
	token, expiresAt, err := h.tokens.Issue(user.ID)
	if err != nil {
		handleError(c, err, "IssueToken")
		return
	}

	h.setCookie(c, token, int(h.tokens.TTL().Seconds()))
	c.JSON(status, AuthResponse{
		Message:   message,
		Token:     token,
		ExpiresAt: expiresAt,
		User:      user,
	})
}

// setCookie maxAge < 0 時刪除 cookie
func (h *UserHandler) setCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.CookieName, value, maxAge, "/", "", h.cookieSecure, true)
}
