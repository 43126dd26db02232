// Package http provides http transport for record ingestion and listing
package http

import (
	"io"
	stdhttp "net/http"
	"os"

	"viewlog/internal/modkit/httpkit"
	perr "viewlog/internal/platform/errors"
	"viewlog/internal/platform/logger"
	svc "viewlog/internal/services/records/service"
)

// uploadField is the multipart form field carrying the CSV file
const uploadField = "csvfile"

// maxUploadBytes caps in-memory multipart parsing; larger parts spill to disk
const maxUploadBytes = 32 << 20

// Register mounts records endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// upload one CSV batch
	r.Post("/", httpkit.Call(h.upload))

	// which batches have been loaded
	httpkit.Get(r, "/", h.list)
}

type handlers struct{ svc svc.Service }

// @Summary Upload a CSV batch
// @Tags Batches
// @Accept multipart/form-data
// @Produce json
// @Param csvfile formData file true "CSV export file named MM_DD_YYYY-<suffix>"
// @Success 201 {object} domain.IngestReceipt "receipt"
// @Router /batches [post]
func (h *handlers) upload(r *stdhttp.Request) (any, error) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return nil, perr.ValidationErrf("multipart form: %v", err)
	}
	part, header, err := r.FormFile(uploadField)
	if err != nil {
		return nil, perr.ValidationErrf("missing %q file field", uploadField)
	}
	defer closeQuietly(r, part)

	// stage the upload so a slow client can't hold the pipeline open; the
	// temp file is removed on every exit path once the batch is handed off
	staged, err := os.CreateTemp("", "viewlog-upload-*.csv")
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnknown, "stage upload")
	}
	defer func() {
		name := staged.Name()
		if err := staged.Close(); err != nil {
			logger.C(r.Context()).Warn().Err(err).Str("file", name).Msg("close staged upload")
		}
		if err := os.Remove(name); err != nil {
			logger.C(r.Context()).Warn().Err(err).Str("file", name).Msg("remove staged upload")
		}
	}()

	if _, err := io.Copy(staged, part); err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeValidation, "read upload %q", header.Filename)
	}
	if _, err := staged.Seek(0, io.SeekStart); err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnknown, "rewind staged upload")
	}

	receipt, err := h.svc.Ingest(r.Context(), header.Filename, staged)
	if err != nil {
		return nil, err
	}
	return httpkit.Created(receipt), nil
}

// @Summary List loaded batches with record counts
// @Tags Batches
// @Produce json
// @Success 200 {array} domain.FilenameCount "batches"
// @Router /batches [get]
func (h *handlers) list(r *stdhttp.Request) (any, error) {
	return h.svc.CountByFilename(r.Context())
}

func closeQuietly(r *stdhttp.Request, c io.Closer) {
	if err := c.Close(); err != nil {
		logger.C(r.Context()).Warn().Err(err).Msg("close multipart file")
	}
}
