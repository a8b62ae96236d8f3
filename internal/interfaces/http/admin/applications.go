package admin

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/hireline/job-application-services/api/internal/interfaces/http/common"
	"go.mongodb.org/mongo-driver/mongo"
)

func (h *Handler) applicationListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		records, err := h.submissions.List(ctx)
		if err != nil {
			h.logger.Printf("application list fetch failed: %v", err)
			common.WriteFailure(h.logger, w, http.StatusInternalServerError, "Failed to fetch applications")
			return
		}

		common.WriteSuccess(h.logger, w, http.StatusOK, records, "")
	}
}

func (h *Handler) applicationDetailHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idParam := strings.TrimSpace(chi.URLParam(r, "id"))
		if idParam == "" {
			common.WriteFailure(h.logger, w, http.StatusBadRequest, "Application id is required")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		record, err := h.submissions.Detail(ctx, idParam)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				common.WriteFailure(h.logger, w, http.StatusNotFound, "Application not found")
				return
			}
			h.logger.Printf("application detail fetch failed id=%s err=%v", idParam, err)
			common.WriteFailure(h.logger, w, http.StatusInternalServerError, "Failed to fetch application")
			return
		}

		common.WriteSuccess(h.logger, w, http.StatusOK, record, "")
	}
}

type statusUpdateRequest struct {
	Status string `json:"status"`
}

func (h *Handler) statusUpdateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idParam := strings.TrimSpace(chi.URLParam(r, "id"))
		if idParam == "" {
			common.WriteFailure(h.logger, w, http.StatusBadRequest, "Application id is required")
			return
		}

		var req statusUpdateRequest
		if err := json.NewDecoder(io.LimitReader(r.Body, common.MaxStatusRequestBody)).Decode(&req); err != nil {
			common.WriteFailure(h.logger, w, http.StatusBadRequest, "Invalid request body")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := h.submissions.UpdateStatus(ctx, idParam, strings.TrimSpace(req.Status)); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				common.WriteFailure(h.logger, w, http.StatusNotFound, "Application not found")
				return
			}
			h.logger.Printf("status update failed id=%s err=%v", idParam, err)
			common.WriteFailure(h.logger, w, http.StatusBadRequest, "Failed to update status")
			return
		}

		common.WriteSuccess(h.logger, w, http.StatusOK, nil, "Status updated successfully")
	}
}

func (h *Handler) applicationDeleteHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idParam := strings.TrimSpace(chi.URLParam(r, "id"))
		if idParam == "" {
			common.WriteFailure(h.logger, w, http.StatusBadRequest, "Application id is required")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := h.submissions.Delete(ctx, idParam); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				common.WriteFailure(h.logger, w, http.StatusNotFound, "Application not found")
				return
			}
			h.logger.Printf("application delete failed id=%s err=%v", idParam, err)
			common.WriteFailure(h.logger, w, http.StatusInternalServerError, "Failed to delete application")
			return
		}

		common.WriteSuccess(h.logger, w, http.StatusOK, nil, "Application deleted successfully")
	}
}
