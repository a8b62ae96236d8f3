package admin

import (
	"context"
	"net/http"
	"time"

	admindomain "github.com/hireline/job-application-services/api/internal/admin/domain"
	"github.com/hireline/job-application-services/api/internal/interfaces/http/common"
)

type metricsResponse struct {
	StatusDistribution     []admindomain.StatusSlice `json:"statusDistribution"`
	ApplicationsOverTime   []admindomain.DailyCount  `json:"applicationsOverTime"`
	EducationDistribution  []admindomain.LabelCount  `json:"educationDistribution"`
	PositionDistribution   []admindomain.LabelCount  `json:"positionDistribution"`
	ExperienceDistribution []admindomain.LabelCount  `json:"experienceDistribution"`
	Stats                  admindomain.SummaryStats  `json:"stats"`
}

// metricsHandler は全応募を読み出し、6 種類の集計ビューをまとめて返す。
// 集計は保存せず毎回計算し直す。
func (h *Handler) metricsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		records, err := h.submissions.List(ctx)
		if err != nil {
			h.logger.Printf("metrics fetch failed: %v", err)
			common.WriteFailure(h.logger, w, http.StatusInternalServerError, "Failed to compute metrics")
			return
		}

		now := time.Now()
		common.WriteSuccess(h.logger, w, http.StatusOK, metricsResponse{
			StatusDistribution:     admindomain.StatusDistribution(records),
			ApplicationsOverTime:   admindomain.ApplicationsOverTime(records, now, h.location),
			EducationDistribution:  admindomain.EducationDistribution(records),
			PositionDistribution:   admindomain.PositionDistribution(records),
			ExperienceDistribution: admindomain.ExperienceDistribution(records),
			Stats:                  admindomain.Summarize(records, now, h.location),
		}, "")
	}
}

// exportHandler は全応募を固定列順の CSV としてダウンロードさせる。
func (h *Handler) exportHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		records, err := h.submissions.List(ctx)
		if err != nil {
			h.logger.Printf("export fetch failed: %v", err)
			common.WriteFailure(h.logger, w, http.StatusInternalServerError, "Failed to export applications")
			return
		}

		filename, content := admindomain.ExportCSV(records, time.Now(), h.location)

		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(content)); err != nil {
			h.logger.Printf("export write failed: %v", err)
		}
	}
}
