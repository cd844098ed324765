package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"task-reminder-api/internal/database"
	"task-reminder-api/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateTaskRequest represents the request payload for creating a task
type CreateTaskRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"due_date" binding:"required"`
}

// UpdateTaskRequest represents the request payload for updating a task
type UpdateTaskRequest struct {
	DueDate *time.Time         `json:"due_date"`
	Status  *models.TaskStatus `json:"status"`
}

/*
*
CreateTask handles POST /tasks
Creates a new task owned by the authenticated user, with status TODO
and the default priority until the nightly sweep recomputes it.
*/
func CreateTask(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User ID not found in token",
		})
		return
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "title and due_date are required",
		})
		return
	}

	task := models.Task{
		ID:          uuid.New().String(),
		Title:       req.Title,
		Description: req.Description,
		DueDate:     *req.DueDate,
		Priority:    models.DefaultPriority,
		Status:      models.StatusTodo,
		UserID:      userID,
	}

	if err := database.GetDB().Create(&task).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to create task",
		})
		return
	}

	c.JSON(http.StatusCreated, task)
}

/*
*
GetTasks handles GET /tasks
Returns the caller's active (not soft-deleted) tasks, optionally
filtered by exact priority, due-date ceiling (inclusive) and status.
Query params: priority, due_date, status, page (default 1), limit (default 10).
*/
func GetTasks(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User ID not found in token",
		})
		return
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	offset := (page - 1) * limit

	query := database.GetDB().Model(&models.Task{}).
		Where("user_id = ? AND deleted_at IS NULL", userID)

	if priorityStr := c.Query("priority"); priorityStr != "" {
		priority, err := strconv.Atoi(priorityStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "priority must be an integer"})
			return
		}
		query = query.Where("priority = ?", priority)
	}
	if dueDateStr := c.Query("due_date"); dueDateStr != "" {
		dueDate, ok := parseDateFlexible(dueDateStr)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "due_date must be a date"})
			return
		}
		query = query.Where("due_date <= ?", dueDate)
	}
	if statusStr := c.Query("status"); statusStr != "" {
		status := models.TaskStatus(statusStr)
		if !status.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
			return
		}
		query = query.Where("status = ?", status)
	}

	tasks := make([]models.Task, 0)
	if err := query.Limit(limit).Offset(offset).Find(&tasks).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to fetch tasks",
		})
		return
	}

	c.JSON(http.StatusOK, tasks)
}

// UpdateTask handles PUT /tasks/:id
// Applies the provided due_date and/or status. A status-bearing update
// always cascades to the task's non-deleted subtasks: DONE marks them
// complete, any other status marks them incomplete. The lookup is by id
// alone; ownership is not re-verified.
func UpdateTask(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User ID not found in token",
		})
		return
	}

	taskID := c.Param("id")
	if taskID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Task ID is required"})
		return
	}

	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Status != nil && !req.Status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}

	db := database.GetDB()

	var task models.Task
	result := db.Where("id = ?", taskID).First(&task)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch task"})
		}
		return
	}

	if req.DueDate != nil {
		task.DueDate = *req.DueDate
	}
	if req.Status != nil {
		task.Status = *req.Status
	}

	if err := db.Save(&task).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update task"})
		return
	}

	// Cascade fires on every status-bearing update, not just transitions.
	if req.Status != nil {
		err := db.Model(&models.SubTask{}).
			Where("task_id = ? AND deleted_at IS NULL", taskID).
			Update("status", models.SubTaskStatusFor(*req.Status)).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update subtasks"})
			return
		}
	}

	c.JSON(http.StatusOK, task)
}

// DeleteTask handles DELETE /tasks/:id
// Soft-deletes the task and stamps every subtask referencing it,
// including subtasks that were already soft-deleted.
func DeleteTask(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User ID not found in token",
		})
		return
	}

	taskID := c.Param("id")
	if taskID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Task ID is required"})
		return
	}

	db := database.GetDB()

	var task models.Task
	result := db.Where("id = ?", taskID).First(&task)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch task"})
		}
		return
	}

	now := time.Now()
	if err := db.Model(&task).Update("deleted_at", now).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete task"})
		return
	}
	err := db.Model(&models.SubTask{}).
		Where("task_id = ?", taskID).
		Update("deleted_at", now).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete subtasks"})
		return
	}

	c.Status(http.StatusNoContent)
}

func parseDateFlexible(dateStr string) (time.Time, bool) {
	layouts := []string{
		time.RFC3339,
		"2006-01-02",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, dateStr); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
