package handlers

import (
	"net/http"

	"github.com/MaxKtzv/TodoAppPetProject/internal/service"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles registration and login HTTP requests.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new AuthHandler instance.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRequest represents the user registration payload.
type RegisterRequest struct {
	Username    string `json:"username" binding:"required"`
	Password    string `json:"password" binding:"required,min=8,max=32"`
	Email       string `json:"email" binding:"omitempty,email"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	PhoneNumber string `json:"phone_number" binding:"omitempty,phone"`
	Admin       bool   `json:"admin"`
}

// LoginRequest represents the login form payload.
type LoginRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// Register godoc
// @Summary Register a new user
// @Description Create a new user account after checking the password against known breaches
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 201
// @Failure 400 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /auth [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	_, err := h.authService.Register(c.Request.Context(), &service.RegisterRequest{
		Username:    req.Username,
		Password:    req.Password,
		Email:       req.Email,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
		Admin:       req.Admin,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusCreated)
}

// Token godoc
// @Summary Obtain an access token
// @Description Authenticate with username and password and receive a bearer token
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param username formData string true "Username"
// @Param password formData string true "Password"
// @Success 200 {object} service.TokenResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/token [post]
func (h *AuthHandler) Token(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	response, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
