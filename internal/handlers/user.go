package handlers

import (
	"net/http"

	"github.com/MaxKtzv/TodoAppPetProject/internal/middleware"
	"github.com/MaxKtzv/TodoAppPetProject/internal/service"
	"github.com/gin-gonic/gin"
)

// UserHandler handles profile HTTP requests for the current user.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new UserHandler instance.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// UserResponse represents the current user's profile.
type UserResponse struct {
	Username    string  `json:"username"`
	Email       *string `json:"email"`
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	PhoneNumber *string `json:"phone_number"`
	Admin       bool    `json:"admin"`
}

// UpdateUserRequest represents a profile and password update payload.
type UpdateUserRequest struct {
	Username    string `json:"username" binding:"required"`
	OldPassword string `json:"old_password" binding:"required,min=8,max=32"`
	NewPassword string `json:"new_password" binding:"required,min=8,max=32"`
	Email       string `json:"email" binding:"omitempty,email"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	PhoneNumber string `json:"phone_number" binding:"omitempty,phone"`
}

// Get godoc
// @Summary Get profile
// @Description Return the authenticated user's profile
// @Tags user
// @Security BearerAuth
// @Produce json
// @Success 200 {object} UserResponse
// @Failure 401 {object} map[string]string
// @Router /user [get]
func (h *UserHandler) Get(c *gin.Context) {
	claims := middleware.CurrentUser(c)

	user, err := h.userService.Get(c.Request.Context(), claims.UserID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, UserResponse{
		Username:    user.Username,
		Email:       user.Email,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		PhoneNumber: user.PhoneNumber,
		Admin:       user.Admin,
	})
}

// Update godoc
// @Summary Update profile
// @Description Update the authenticated user's profile and password
// @Tags user
// @Security BearerAuth
// @Accept json
// @Param request body UpdateUserRequest true "Profile data"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /user/update [put]
func (h *UserHandler) Update(c *gin.Context) {
	claims := middleware.CurrentUser(c)

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	err := h.userService.Update(c.Request.Context(), claims.UserID, &service.UpdateUserRequest{
		Username:    req.Username,
		OldPassword: req.OldPassword,
		NewPassword: req.NewPassword,
		Email:       req.Email,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
