package controllers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smarthospital/cleantrack/services"
	"github.com/smarthospital/cleantrack/utils"
)

type VerificationController struct {
	Pipeline *services.VerificationService
}

func NewVerificationController(pipeline *services.VerificationService) *VerificationController {
	return &VerificationController{Pipeline: pipeline}
}

// VerifyRoom menerima foto "after" via multipart form, menjalankan klasifikasi
// AI, dan menyimpan cleaning record baru berstatus Pending.
func (vc *VerificationController) VerifyRoom(c *gin.Context) {
	fileHeader, err := c.FormFile("after_photo")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("missing 'after_photo' file part"))
		return
	}

	roomID := c.PostForm("room_id")
	cleanerID := c.PostForm("cleaner_id")
	if roomID == "" || cleanerID == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("missing room_id or cleaner_id form field"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	defer file.Close()

	imageBytes, err := io.ReadAll(file)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	record, err := vc.Pipeline.Submit(c.Request.Context(), roomID, cleanerID, fileHeader.Filename, imageBytes)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Cleaning record created", record)
}
