package handlers

import (
	"errors"
	"net/http"
	"time"

	"task-reminder-api/internal/database"
	"task-reminder-api/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateSubTaskRequest represents the request payload for creating a subtask
type CreateSubTaskRequest struct {
	TaskID string `json:"task_id" binding:"required"`
}

// UpdateSubTaskRequest represents the request payload for updating a subtask
type UpdateSubTaskRequest struct {
	Status *int `json:"status" binding:"required"`
}

// CreateSubTask handles POST /subtasks
// Creates an incomplete subtask under the given task id. The task is
// not checked for existence; creation is a pass-through.
func CreateSubTask(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User ID not found in token",
		})
		return
	}

	var req CreateSubTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "task_id is required",
		})
		return
	}

	subtask := models.SubTask{
		ID:     uuid.New().String(),
		TaskID: req.TaskID,
		Status: models.SubTaskIncomplete,
	}

	if err := database.GetDB().Create(&subtask).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to create subtask",
		})
		return
	}

	c.JSON(http.StatusCreated, subtask)
}

// GetSubTasks handles GET /subtasks
// Returns every subtask referencing the given task id, soft-deleted
// ones included (no active filter on this listing).
func GetSubTasks(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User ID not found in token",
		})
		return
	}

	taskID := c.Query("task_id")

	subtasks := make([]models.SubTask, 0)
	err := database.GetDB().
		Where("task_id = ?", taskID).
		Find(&subtasks).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to fetch subtasks",
		})
		return
	}

	c.JSON(http.StatusOK, subtasks)
}

// UpdateSubTask handles PUT /subtasks/:id
// Sets the subtask's completion status directly. There is no cascade
// upward to the parent task.
func UpdateSubTask(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User ID not found in token",
		})
		return
	}

	subtaskID := c.Param("id")
	if subtaskID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "SubTask ID is required"})
		return
	}

	var req UpdateSubTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status is required"})
		return
	}
	if *req.Status != models.SubTaskIncomplete && *req.Status != models.SubTaskComplete {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status must be 0 or 1"})
		return
	}

	db := database.GetDB()

	var subtask models.SubTask
	result := db.Where("id = ?", subtaskID).First(&subtask)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "SubTask not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch subtask"})
		}
		return
	}

	subtask.Status = *req.Status
	if err := db.Save(&subtask).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update subtask"})
		return
	}

	c.JSON(http.StatusOK, subtask)
}

// DeleteSubTask handles DELETE /subtasks/:id
// Soft-deletes the subtask only; the parent task is untouched.
func DeleteSubTask(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User ID not found in token",
		})
		return
	}

	subtaskID := c.Param("id")
	if subtaskID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "SubTask ID is required"})
		return
	}

	db := database.GetDB()

	var subtask models.SubTask
	result := db.Where("id = ?", subtaskID).First(&subtask)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "SubTask not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch subtask"})
		}
		return
	}

	if err := db.Model(&subtask).Update("deleted_at", time.Now()).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete subtask"})
		return
	}

	c.Status(http.StatusNoContent)
}
