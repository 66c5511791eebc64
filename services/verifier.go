package services

import "context"

// Classification adalah hasil klasifikasi kebersihan dari image verifier.
type Classification struct {
	Status  string `json:"status"`  // e.g. "Clean", "NotClean" (ditentukan verifier)
	Remarks string `json:"remarks"` // free text dari model
}

// ImageVerifier mengklasifikasikan kebersihan ruangan dari foto.
// Implementasi produksi memanggil vision API eksternal; test memakai fake.
type ImageVerifier interface {
	Classify(ctx context.Context, imageBytes []byte) (*Classification, error)
}
