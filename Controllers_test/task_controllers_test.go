package Controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/smarthospital/cleantrack/controllers"
	"github.com/smarthospital/cleantrack/services"
	"github.com/smarthospital/cleantrack/utils"
)

func setupTaskRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()

	taskCtrl := controllers.NewTaskController(services.NewTaskService(db))
	router.POST("/assign_task", taskCtrl.AssignTask)
	router.GET("/tasks/:cleaner_id", taskCtrl.GetCleanerTasks)

	return router
}

func TestAssignTaskAndList(t *testing.T) {
	utils.InitLogger()
	db := setupTestDB()
	router := setupTaskRouter(db)

	w := postJSON(t, router, "/assign_task", map[string]string{
		"room_id":         "101",
		"cleaner_id":      "C1",
		"assigned_by_id":  "M1",
		"assignment_date": "2024-01-01",
		"notes":           "morning shift",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var createResp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &createResp))
	data := createResp["data"].(map[string]interface{})
	assert.Equal(t, "Pending", data["status"])
	assert.Equal(t, "101", data["room_id"])
	assert.Equal(t, "morning shift", data["notes"])

	// List penugasan milik C1
	req, err := http.NewRequest("GET", "/tasks/C1", nil)
	assert.NoError(t, err)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	var listResp map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listResp))
	tasks := listResp["data"].([]interface{})
	assert.Len(t, tasks, 1)
}

func TestAssignTaskMissingFields(t *testing.T) {
	utils.InitLogger()
	db := setupTestDB()
	router := setupTaskRouter(db)

	w := postJSON(t, router, "/assign_task", map[string]string{
		"room_id": "101",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
