package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/smarthospital/cleantrack/models"
	"github.com/smarthospital/cleantrack/utils"
)

// VerificationService mengorkestrasi submit foto -> klasifikasi AI -> simpan record.
type VerificationService struct {
	DB       *gorm.DB
	Verifier ImageVerifier
	Assets   AssetStore
}

func NewVerificationService(db *gorm.DB, verifier ImageVerifier, assets AssetStore) *VerificationService {
	return &VerificationService{DB: db, Verifier: verifier, Assets: assets}
}

// Submit memproses satu pengajuan verifikasi. Operasi ini sengaja tidak
// idempotent: submit ulang foto yang sama membuat record baru.
//
// Panggilan verifier tidak di-retry dan tidak dikompensasi; jika penyimpanan
// record gagal setelah klasifikasi berhasil, hasil klasifikasi hilang.
func (vs *VerificationService) Submit(ctx context.Context, roomID, cleanerID, photoName string, photoBytes []byte) (*models.CleaningRecord, error) {
	if len(photoBytes) == 0 {
		return nil, utils.NewValidationError("after photo must not be empty")
	}
	if roomID == "" || cleanerID == "" {
		return nil, utils.NewValidationError("room_id and cleaner_id are required")
	}

	result, err := vs.Verifier.Classify(ctx, photoBytes)
	if err != nil {
		utils.ErrorLogger.Printf("Image verification failed for room %s: %v", roomID, err)
		return nil, utils.NewVerificationError("image verification failed", err)
	}

	afterURL, err := vs.Assets.SavePhoto(photoName, photoBytes)
	if err != nil {
		return nil, utils.NewStoreError("failed to store after photo", err)
	}

	// Foto "before" tidak dilacak per ruangan; pakai referensi placeholder
	// dari asset store, bukan inferensi dari riwayat.
	record := models.CleaningRecord{
		RoomID:                roomID,
		CleanerID:             cleanerID,
		BeforePhotoURL:        vs.Assets.PlaceholderURL(),
		AfterPhotoURL:         afterURL,
		CleanlinessStatus:     result.Status,
		AIRemarks:             result.Remarks,
		ManagerApprovalStatus: models.ApprovalPending,
	}

	if err := vs.DB.Create(&record).Error; err != nil {
		return nil, utils.NewStoreError("failed to save cleaning record", err)
	}

	utils.InfoLogger.Printf("Cleaning record %d created: room=%s status=%s", record.ID, roomID, result.Status)
	return &record, nil
}
