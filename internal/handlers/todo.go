package handlers

import (
	"net/http"
	"strconv"

	"github.com/MaxKtzv/TodoAppPetProject/internal/middleware"
	"github.com/MaxKtzv/TodoAppPetProject/internal/models"
	"github.com/MaxKtzv/TodoAppPetProject/internal/service"
	"github.com/gin-gonic/gin"
)

// TodoHandler handles todo CRUD HTTP requests for the current user.
type TodoHandler struct {
	todoService service.TodoService
}

// NewTodoHandler creates a new TodoHandler instance.
func NewTodoHandler(todoService service.TodoService) *TodoHandler {
	return &TodoHandler{todoService: todoService}
}

// TodoRequest represents a todo create or update payload.
type TodoRequest struct {
	Title       string `json:"title" binding:"required,min=3"`
	Description string `json:"description"`
	Priority    int    `json:"priority" binding:"required,min=1,max=5"`
	Complete    bool   `json:"complete"`
}

// TodoResponse represents a todo in responses.
type TodoResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    int    `json:"priority"`
	Complete    bool   `json:"complete"`
	OwnerID     int64  `json:"owner_id"`
}

func toTodoResponse(todo *models.Todo) TodoResponse {
	return TodoResponse{
		ID:          todo.ID,
		Title:       todo.Title,
		Description: todo.Description,
		Priority:    todo.Priority,
		Complete:    todo.Complete,
		OwnerID:     todo.OwnerID,
	}
}

func toTodoResponses(todos []models.Todo) []TodoResponse {
	responses := make([]TodoResponse, 0, len(todos))
	for i := range todos {
		responses = append(responses, toTodoResponse(&todos[i]))
	}
	return responses
}

// pathID parses the ":id" path parameter, rejecting values below 1.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		RespondError(c, http.StatusBadRequest, "invalid todo id")
		return 0, false
	}
	return id, true
}

// GetAll godoc
// @Summary List todos
// @Description List all todos belonging to the authenticated user
// @Tags todos
// @Security BearerAuth
// @Produce json
// @Success 200 {array} TodoResponse
// @Failure 401 {object} map[string]string
// @Router /todos [get]
func (h *TodoHandler) GetAll(c *gin.Context) {
	user := middleware.CurrentUser(c)

	todos, err := h.todoService.GetAll(c.Request.Context(), user.UserID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, toTodoResponses(todos))
}

// GetByID godoc
// @Summary Get a todo
// @Description Get one of the authenticated user's todos by ID
// @Tags todos
// @Security BearerAuth
// @Produce json
// @Param id path int true "Todo ID" minimum(1)
// @Success 200 {object} TodoResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /todos/todo/{id} [get]
func (h *TodoHandler) GetByID(c *gin.Context) {
	user := middleware.CurrentUser(c)
	id, ok := pathID(c)
	if !ok {
		return
	}

	todo, err := h.todoService.GetByID(c.Request.Context(), user.UserID, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, toTodoResponse(todo))
}

// Create godoc
// @Summary Create a todo
// @Description Create a todo owned by the authenticated user
// @Tags todos
// @Security BearerAuth
// @Accept json
// @Param request body TodoRequest true "Todo data"
// @Success 201
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /todos/todo [post]
func (h *TodoHandler) Create(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req TodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	err := h.todoService.Create(c.Request.Context(), user.UserID, &service.TodoRequest{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Complete:    req.Complete,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusCreated)
}

// Update godoc
// @Summary Update a todo
// @Description Update one of the authenticated user's todos
// @Tags todos
// @Security BearerAuth
// @Accept json
// @Param id path int true "Todo ID" minimum(1)
// @Param request body TodoRequest true "Todo data"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /todos/todo/{id} [put]
func (h *TodoHandler) Update(c *gin.Context) {
	user := middleware.CurrentUser(c)
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req TodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	err := h.todoService.Update(c.Request.Context(), user.UserID, id, &service.TodoRequest{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Complete:    req.Complete,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Delete godoc
// @Summary Delete a todo
// @Description Delete one of the authenticated user's todos
// @Tags todos
// @Security BearerAuth
// @Param id path int true "Todo ID" minimum(1)
// @Success 204
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /todos/todo/{id} [delete]
func (h *TodoHandler) Delete(c *gin.Context) {
	user := middleware.CurrentUser(c)
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.todoService.Delete(c.Request.Context(), user.UserID, id); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
