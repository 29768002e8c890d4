package endpoints

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/DavidIQ/onlytimer/internal/http/api"
	"github.com/DavidIQ/onlytimer/internal/http/api/packets"
	"github.com/DavidIQ/onlytimer/internal/report"
	"github.com/DavidIQ/onlytimer/internal/timing"
)

type ReportController struct {
	store timing.LogStore
	dir   string
}

func NewReportController(store timing.LogStore, dir string) *ReportController {
	return &ReportController{store: store, dir: dir}
}

func ReportModule(store timing.LogStore, dir string) api.Module {
	ctl := NewReportController(store, dir)
	return api.ModuleFunc(func(c *api.Controller) {
		c.POST("/reports", ctl.generate)
	})
}

// AdminModule exposes the explicit administrative operations; nothing
// in the recording flow routes here.
func AdminModule(store timing.LogStore) api.Module {
	return api.ModuleFunc(func(c *api.Controller) {
		c.DELETE("/timing-data", func(ctx *gin.Context) (any, *api.APIError) {
			if err := store.DeleteAllLogs(ctx.Request.Context()); err != nil {
				log.Error().Err(err).Msg("bulk delete of timing data failed")
				return nil, &api.APIError{Code: http.StatusBadGateway, Message: "could not delete timing data"}
			}
			return gin.H{"status": "deleted"}, nil
		})
	})
}

func (r *ReportController) generate(ctx *gin.Context) (any, *api.APIError) {
	artifact, err := report.Generate(ctx.Request.Context(), r.store, r.dir)
	if err != nil {
		log.Error().Err(err).Msg("report generation failed")
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "report generation failed"}
	}
	if artifact == nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "no timing data recorded"}
	}

	return packets.ReportResponse{
		Path:          artifact.Path,
		MeetingCount:  artifact.Report.MeetingCount,
		ExcludedCount: artifact.Report.ExcludedCount,
		EntryCount:    len(artifact.Report.Entries),
	}, nil
}
