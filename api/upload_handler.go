package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/storage"
)

type uploadHandler struct {
	responder Responder
	logger    zerolog.Logger
	uploader  *storage.Uploader
}

func newUploadHandler(uploader *storage.Uploader) uploadHandler {
	logger := log.With().Str("handlerName", "uploadHandler").Logger()

	return uploadHandler{
		responder: NewResponder(logger),
		logger:    logger,
		uploader:  uploader,
	}
}

// UploadResponse carries the public URL of a stored asset.
type UploadResponse struct {
	URL string `json:"url"`
}

// uploadAsset stores one multipart file into the requested folder and
// returns its public URL. Oversized files are rejected by the size check in
// the uploader before any storage call.
func (h uploadHandler) uploadAsset() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		folder := storage.Folder(chi.URLParam(r, "folder"))
		if !storage.ValidFolder(folder) {
			h.responder.WriteError(w, errs.NewBadRequestError("unknown upload folder"))
			return
		}

		// One extra byte of headroom lets the uploader report the limit
		// instead of the multipart reader truncating silently.
		if err := r.ParseMultipartForm(storage.MaxUploadSize + 1); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed multipart body"))
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("missing file field"))
			return
		}
		defer file.Close()

		url, err := h.uploader.Upload(r.Context(), folder, header.Filename, header.Size, file)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, UploadResponse{URL: url})
	}
}
