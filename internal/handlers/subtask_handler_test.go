package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"task-reminder-api/internal/auth"
	"task-reminder-api/internal/database"
	"task-reminder-api/internal/middleware"
	"task-reminder-api/internal/models"
	"task-reminder-api/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func subtaskRouter(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db, err := testutil.NewInMemoryDB()
	require.NoError(t, err)
	database.DB = db

	r := gin.New()
	protected := r.Group("")
	protected.Use(middleware.JWTAuthMiddleware())
	protected.POST("/subtasks", CreateSubTask)
	protected.GET("/subtasks", GetSubTasks)
	protected.PUT("/subtasks/:id", UpdateSubTask)
	protected.DELETE("/subtasks/:id", DeleteSubTask)

	token, err := auth.GenerateToken("u-1", "5551234")
	require.NoError(t, err)
	return r, token
}

func TestCreateSubTask_NoParentCheck(t *testing.T) {
	r, token := subtaskRouter(t)

	// The referenced task does not exist; creation still succeeds.
	w := doJSON(t, r, http.MethodPost, "/subtasks", token, map[string]string{"task_id": "t-ghost"})
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.SubTask
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)
	require.Equal(t, "t-ghost", created.TaskID)
	require.Equal(t, models.SubTaskIncomplete, created.Status)
	require.False(t, created.CreatedAt.IsZero())
}

func TestCreateSubTask_MissingTaskID(t *testing.T) {
	r, token := subtaskRouter(t)
	w := doJSON(t, r, http.MethodPost, "/subtasks", token, map[string]string{})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetSubTasks_IncludesSoftDeleted(t *testing.T) {
	r, token := subtaskRouter(t)

	deletedAt := time.Now().UTC()
	seed := []models.SubTask{
		{ID: "s-1", TaskID: "t-1", Status: models.SubTaskIncomplete},
		{ID: "s-2", TaskID: "t-1", Status: models.SubTaskComplete, DeletedAt: &deletedAt},
		{ID: "s-other", TaskID: "t-2", Status: models.SubTaskIncomplete},
	}
	for i := range seed {
		require.NoError(t, database.DB.Create(&seed[i]).Error)
	}

	w := doJSON(t, r, http.MethodGet, "/subtasks?task_id=t-1", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var subtasks []models.SubTask
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &subtasks))
	require.Len(t, subtasks, 2)
}

func TestUpdateSubTask_SetsStatusNoUpwardCascade(t *testing.T) {
	r, token := subtaskRouter(t)

	task := models.Task{ID: "t-1", Title: "a", DueDate: time.Now(), Status: models.StatusTodo, UserID: "u-1"}
	require.NoError(t, database.DB.Create(&task).Error)
	subtask := models.SubTask{ID: "s-1", TaskID: "t-1", Status: models.SubTaskIncomplete}
	require.NoError(t, database.DB.Create(&subtask).Error)

	w := doJSON(t, r, http.MethodPut, "/subtasks/s-1", token, map[string]int{"status": 1})
	require.Equal(t, http.StatusOK, w.Code)

	var got models.SubTask
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Equal(t, models.SubTaskComplete, got.Status)

	// Parent task is untouched.
	var parent models.Task
	require.NoError(t, database.DB.Where("id = ?", "t-1").First(&parent).Error)
	require.Equal(t, models.StatusTodo, parent.Status)
}

func TestUpdateSubTask_InvalidStatus(t *testing.T) {
	r, token := subtaskRouter(t)
	subtask := models.SubTask{ID: "s-1", TaskID: "t-1"}
	require.NoError(t, database.DB.Create(&subtask).Error)

	w := doJSON(t, r, http.MethodPut, "/subtasks/s-1", token, map[string]int{"status": 7})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteSubTask_SoftDeletesSelfOnly(t *testing.T) {
	r, token := subtaskRouter(t)

	seed := []models.SubTask{
		{ID: "s-1", TaskID: "t-1", Status: models.SubTaskIncomplete},
		{ID: "s-2", TaskID: "t-1", Status: models.SubTaskIncomplete},
	}
	for i := range seed {
		require.NoError(t, database.DB.Create(&seed[i]).Error)
	}

	w := doJSON(t, r, http.MethodDelete, "/subtasks/s-1", token, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	var deleted, sibling models.SubTask
	require.NoError(t, database.DB.Where("id = ?", "s-1").First(&deleted).Error)
	require.NotNil(t, deleted.DeletedAt)
	require.NoError(t, database.DB.Where("id = ?", "s-2").First(&sibling).Error)
	require.Nil(t, sibling.DeletedAt)
}

func TestSubTask_NotFound(t *testing.T) {
	r, token := subtaskRouter(t)
	require.Equal(t, http.StatusNotFound, doJSON(t, r, http.MethodPut, "/subtasks/missing", token, map[string]int{"status": 1}).Code)
	require.Equal(t, http.StatusNotFound, doJSON(t, r, http.MethodDelete, "/subtasks/missing", token, nil).Code)
}
