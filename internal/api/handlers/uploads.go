package handlers

import (
	"errors"
	"food-rescue-dashboard/internal/api/dto"
	"food-rescue-dashboard/internal/domain"
	"food-rescue-dashboard/internal/platform/obs"
	"food-rescue-dashboard/internal/ports"
	"food-rescue-dashboard/internal/services"
	"net/http"

	"go.uber.org/zap"
)

// Multipart parts beyond this size spill to temporary files.
const multipartMemory = 8 << 20

type UploadHandler struct {
	Reader   ports.WorkbookReader
	Store    ports.Store
	Aliases  services.FieldAliases
	MaxBytes int64
}

// Upload ingests one spreadsheet for the schema named in the form.
// Every outcome, including failures, is reported as an UploadResponse.
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if h.MaxBytes > 0 {
		// Leave room for the multipart envelope and the schema field.
		r.Body = http.MaxBytesReader(w, r.Body, h.MaxBytes+multipartMemory)
	}

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeUploadError(w, r, http.StatusRequestEntityTooLarge, "file too large", nil)
			return
		}
		writeUploadError(w, r, http.StatusBadRequest, "invalid multipart form", nil)
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	schema, err := domain.ParseSchema(r.FormValue("schema"))
	if err != nil {
		writeUploadError(w, r, http.StatusBadRequest, err.Error(), nil)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeUploadError(w, r, http.StatusBadRequest, "file is required", nil)
		return
	}
	defer file.Close()

	res, err := services.ImportFile(r.Context(), services.ImportRequest{
		Schema:   schema,
		FileName: header.Filename,
		File:     file,
	}, h.Reader, h.Store, h.Aliases)
	if err != nil {
		h.writeImportError(w, r, err)
		return
	}

	count := res.Inserted
	writeJSON(w, r, http.StatusOK, dto.UploadResponse{
		Success: true,
		Count:   &count,
		Details: dto.NewUploadDetails(res.Report, res.ImportID),
	})
}

func (h *UploadHandler) writeImportError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		parseErr   *domain.ParseError
		invalidErr *domain.ValidationError
		schemaErr  *domain.UnknownSchemaError
	)

	switch {
	case errors.Is(err, domain.ErrFileTooLarge):
		writeUploadError(w, r, http.StatusRequestEntityTooLarge, err.Error(), nil)
	case errors.As(err, &parseErr):
		writeUploadError(w, r, http.StatusBadRequest, parseErr.Error(), nil)
	case errors.As(err, &invalidErr):
		writeUploadError(w, r, http.StatusBadRequest, invalidErr.Error(), dto.NewUploadDetails(invalidErr.Report, ""))
	case errors.As(err, &schemaErr):
		writeUploadError(w, r, http.StatusBadRequest, schemaErr.Error(), nil)
	default:
		zap.L().Error("upload failed",
			zap.String("req_id", obs.RequestID(r.Context())),
			zap.Error(err),
		)
		writeUploadError(w, r, http.StatusInternalServerError, "failed to store uploaded rows", nil)
	}
}

func writeUploadError(w http.ResponseWriter, r *http.Request, status int, msg string, details *dto.UploadDetails) {
	writeJSON(w, r, status, dto.UploadResponse{
		Success: false,
		Error:   msg,
		Details: details,
	})
}
