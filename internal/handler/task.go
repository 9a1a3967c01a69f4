package handler

import (
	"net/http"

	"connectvault/internal/dto"
	"connectvault/internal/service"

	"github.com/labstack/echo/v4"
)

type TaskHandler struct {
	taskService service.TaskService
}

func NewTaskHandler(taskService service.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

func (h *TaskHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	owner, err := ownerID(c)
	if err != nil {
		return err
	}

	tasks, err := h.taskService.List(ctx, owner)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.FromTasks(tasks))
}

func (h *TaskHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()

	owner, err := ownerID(c)
	if err != nil {
		return err
	}

	var req dto.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	task, err := h.taskService.Create(ctx, owner, req.ToInput())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.FromTask(task))
}

func (h *TaskHandler) Get(c echo.Context) error {
	ctx := c.Request().Context()

	owner, err := ownerID(c)
	if err != nil {
		return err
	}

	task, err := h.taskService.Get(ctx, owner, c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.FromTask(task))
}

func (h *TaskHandler) Update(c echo.Context) error {
	ctx := c.Request().Context()

	owner, err := ownerID(c)
	if err != nil {
		return err
	}

	var req dto.UpdateTaskRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	task, err := h.taskService.Update(ctx, owner, c.Param("id"), req.ToInput())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.FromTask(task))
}

func (h *TaskHandler) Delete(c echo.Context) error {
	ctx := c.Request().Context()

	owner, err := ownerID(c)
	if err != nil {
		return err
	}

	if err := h.taskService.Delete(ctx, owner, c.Param("id")); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "task deleted"})
}
