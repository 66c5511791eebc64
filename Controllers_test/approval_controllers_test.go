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
	"github.com/smarthospital/cleantrack/models"
	"github.com/smarthospital/cleantrack/services"
	"github.com/smarthospital/cleantrack/utils"
)

func setupApprovalRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()

	approvalCtrl := controllers.NewApprovalController(services.NewApprovalService(db))
	router.GET("/dashboard", approvalCtrl.GetDashboard)
	router.POST("/approve", approvalCtrl.Approve)

	return router
}

func seedRecord(t *testing.T, db *gorm.DB) models.CleaningRecord {
	t.Helper()
	record := models.CleaningRecord{
		RoomID:                "101",
		CleanerID:             "C1",
		BeforePhotoURL:        "/uploads/before_placeholder.jpg",
		AfterPhotoURL:         "/uploads/after.jpg",
		CleanlinessStatus:     "NotClean",
		AIRemarks:             "stains found",
		ManagerApprovalStatus: models.ApprovalPending,
	}
	assert.NoError(t, db.Create(&record).Error)
	return record
}

func TestDashboardListsPendingRecords(t *testing.T) {
	utils.InitLogger()
	db := setupTestDB()
	router := setupApprovalRouter(db)
	seedRecord(t, db)

	req, err := http.NewRequest("GET", "/dashboard", nil)
	assert.NoError(t, err)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	records := resp["data"].([]interface{})
	assert.Len(t, records, 1)
}

func TestApproveRecord(t *testing.T) {
	utils.InitLogger()
	db := setupTestDB()
	router := setupApprovalRouter(db)
	record := seedRecord(t, db)

	w := postJSON(t, router, "/approve", map[string]interface{}{
		"record_id":  record.ID,
		"new_status": "Approved",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "Approved", data["manager_approval_status"])
}

func TestApproveInvalidStatus(t *testing.T) {
	utils.InitLogger()
	db := setupTestDB()
	router := setupApprovalRouter(db)
	record := seedRecord(t, db)

	w := postJSON(t, router, "/approve", map[string]interface{}{
		"record_id":  record.ID,
		"new_status": "Scrapped",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Record tersimpan tidak berubah
	var stored models.CleaningRecord
	assert.NoError(t, db.First(&stored, record.ID).Error)
	assert.Equal(t, models.ApprovalPending, stored.ManagerApprovalStatus)
}

func TestApproveMissingRecord(t *testing.T) {
	utils.InitLogger()
	db := setupTestDB()
	router := setupApprovalRouter(db)

	w := postJSON(t, router, "/approve", map[string]interface{}{
		"record_id":  9999,
		"new_status": "Approved",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}
