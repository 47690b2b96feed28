package handlers

import (
	"net/http"

	"github.com/MaxKtzv/TodoAppPetProject/internal/middleware"
	"github.com/MaxKtzv/TodoAppPetProject/internal/service"
	"github.com/gin-gonic/gin"
)

// AdminHandler handles admin-only todo HTTP requests.
type AdminHandler struct {
	adminService service.AdminService
}

// NewAdminHandler creates a new AdminHandler instance.
func NewAdminHandler(adminService service.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// GetAllTodos godoc
// @Summary List all todos
// @Description List every user's todos; requires admin privileges
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {array} TodoResponse
// @Failure 401 {object} map[string]string
// @Router /admin/todo [get]
func (h *AdminHandler) GetAllTodos(c *gin.Context) {
	claims := middleware.CurrentUser(c)

	todos, err := h.adminService.GetAllTodos(c.Request.Context(), claims)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, toTodoResponses(todos))
}

// DeleteTodo godoc
// @Summary Delete any todo
// @Description Delete a todo by ID regardless of owner; requires admin privileges
// @Tags admin
// @Security BearerAuth
// @Param id path int true "Todo ID" minimum(1)
// @Success 204
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/todo/{id} [delete]
func (h *AdminHandler) DeleteTodo(c *gin.Context) {
	claims := middleware.CurrentUser(c)
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.adminService.Delete(c.Request.Context(), claims, id); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
