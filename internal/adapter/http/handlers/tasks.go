package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskhub/internal/adapter/http/dto"
	"taskhub/internal/adapter/http/mapper"
	"taskhub/internal/adapter/http/middleware"
	"taskhub/internal/adapter/http/validation"
	"taskhub/internal/core/domain"
	"taskhub/internal/core/ports"
	"taskhub/pkg/apierrors"
)

const taskDeletedMessage = "Task deleted successfully"

type TaskHandler struct {
	taskService ports.TaskService
	errorWriter *apierrors.Writer
}

func NewTaskHandler(taskService ports.TaskService, errorWriter *apierrors.Writer) *TaskHandler {
	return &TaskHandler{taskService: taskService, errorWriter: errorWriter}
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.CreateTaskRequest
	raw, err := validation.DecodeTaskBody(c, &req)
	if err != nil {
		h.errorWriter.Respond(c, lang, err)
		return
	}

	input, err := validation.BuildCreateTaskInput(req, raw)
	if err != nil {
		h.errorWriter.Respond(c, lang, err)
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), input)
	if err != nil {
		h.errorWriter.Respond(c, lang, err)
		return
	}

	c.JSON(http.StatusCreated, dto.TaskResponse{Success: true, Data: mapper.ToTaskItem(task)})
}

func (h *TaskHandler) ListTasks(c *gin.Context) {
	lang := middleware.GetLang(c)

	query, err := validation.BuildListTasksQuery(c.Request.URL.Query())
	if err != nil {
		h.errorWriter.Respond(c, lang, err)
		return
	}

	page, err := h.taskService.ListTasks(c.Request.Context(), query)
	if err != nil {
		h.errorWriter.Respond(c, lang, err)
		return
	}

	c.JSON(http.StatusOK, dto.TaskListResponse{
		Success:    true,
		Data:       mapper.ToTaskItems(page.Items),
		Pagination: mapper.ToPagination(page.Pagination),
	})
}

func (h *TaskHandler) GetTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	taskID, err := validation.ParseTaskID(c.Param("id"))
	if err != nil {
		h.errorWriter.Respond(c, lang, err)
		return
	}

	task, err := h.taskService.GetTask(c.Request.Context(), taskID)
	if err != nil {
		h.errorWriter.Respond(c, lang, err)
		return
	}
	if task == nil {
		// A lookup miss is a normal service outcome; the not-found
		// response is this layer's decision.
		h.errorWriter.Respond(c, lang, domain.ErrTaskNotFound)
		return
	}

	c.JSON(http.StatusOK, dto.TaskResponse{Success: true, Data: mapper.ToTaskItem(*task)})
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	taskID, err := validation.ParseTaskID(c.Param("id"))
	if err != nil {
		h.errorWriter.Respond(c, lang, err)
		return
	}

	var req dto.UpdateTaskRequest
	raw, err := validation.DecodeTaskBody(c, &req)
	if err != nil {
		h.errorWriter.Respond(c, lang, err)
		return
	}

	input, err := validation.BuildUpdateTaskInput(req, raw)
	if err != nil {
		h.errorWriter.Respond(c, lang, err)
		return
	}

	task, err := h.taskService.UpdateTask(c.Request.Context(), taskID, input)
	if err != nil {
		h.errorWriter.Respond(c, lang, err)
		return
	}

	c.JSON(http.StatusOK, dto.TaskResponse{Success: true, Data: mapper.ToTaskItem(task)})
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	taskID, err := validation.ParseTaskID(c.Param("id"))
	if err != nil {
		h.errorWriter.Respond(c, lang, err)
		return
	}

	task, err := h.taskService.DeleteTask(c.Request.Context(), taskID)
	if err != nil {
		h.errorWriter.Respond(c, lang, err)
		return
	}

	c.JSON(http.StatusOK, dto.DeleteTaskResponse{
		Success: true,
		Message: taskDeletedMessage,
		Data:    mapper.ToTaskItem(task),
	})
}
