package api

import (
	"net/http"
	"time"

	"autokomis/backoffice/internal/models/dtos"
)

const uploadTokenTTL = 15 * time.Minute

// GenerateUploadLinkHandler handles POST /api/v1/admin/uploads/sign
//
// Issues a single-use presigned upload URL so the admin can push photos from
// a phone without a cookie session on that device.
func GenerateUploadLinkHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, err := deps.Services.URLSigner.GenerateUploadToken(uploadTokenTTL)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "failed to generate upload link")
			return
		}

		resp := dtos.UploadTokenResponse{
			URL:       "/api/v1/uploads/presigned?token=" + token,
			ExpiresIn: int(uploadTokenTTL.Seconds()),
		}
		respondWithSuccess(w, http.StatusOK, &resp)
	}
}

// PresignedUploadHandler handles POST /api/v1/uploads/presigned
func PresignedUploadHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := r.URL.Query().Get("token")
		if token == "" {
			respondWithError(w, http.StatusUnauthorized, "missing upload token")
			return
		}

		validated, err := deps.Services.URLSigner.ValidateUploadToken(r.Context(), token)
		if err != nil {
			respondWithError(w, http.StatusUnauthorized, "invalid upload token")
			return
		}

		url, err := storeUploadedFile(deps, w, r)
		if err != nil {
			return
		}

		_ = deps.Services.URLSigner.MarkTokenAsUsed(r.Context(), validated.TokenID)

		respondWithSuccess(w, http.StatusCreated, &dtos.UploadResponse{URL: url})
	}
}

// AdminUploadHandler handles POST /api/v1/admin/uploads
func AdminUploadHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		url, err := storeUploadedFile(deps, w, r)
		if err != nil {
			return
		}

		respondWithSuccess(w, http.StatusCreated, &dtos.UploadResponse{URL: url})
	}
}

// storeUploadedFile reads the multipart "file" part and stores it. On failure
// it writes the error response itself and returns a non-nil error.
func storeUploadedFile(deps *Dependencies, w http.ResponseWriter, r *http.Request) (string, error) {
	file, header, err := r.FormFile("file")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "missing file")
		deps.Metrics.UploadsTotal.WithLabelValues("rejected").Inc()
		return "", err
	}
	defer file.Close()

	url, err := deps.Services.Upload.Store(file, header)
	if err != nil {
		respondWithAppError(w, err)
		deps.Metrics.UploadsTotal.WithLabelValues("failed").Inc()
		return "", err
	}

	deps.Metrics.UploadsTotal.WithLabelValues("stored").Inc()
	return url, nil
}
