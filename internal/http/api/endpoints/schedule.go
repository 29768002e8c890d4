package endpoints

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/DavidIQ/onlytimer/internal/feed"
	"github.com/DavidIQ/onlytimer/internal/http/api"
	"github.com/DavidIQ/onlytimer/internal/http/api/packets"
	"github.com/DavidIQ/onlytimer/internal/model"
	"github.com/DavidIQ/onlytimer/internal/schedule"
)

type ScheduleController struct {
	source feed.Source
}

func NewScheduleController(source feed.Source) *ScheduleController {
	return &ScheduleController{source: source}
}

func ScheduleModule(source feed.Source) api.Module {
	ctl := NewScheduleController(source)
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/schedule", ctl.getSchedule)
	})
}

func (s *ScheduleController) getSchedule(ctx *gin.Context) (any, *api.APIError) {
	kind := model.MeetingKind(ctx.DefaultQuery("kind", string(model.Midweek)))
	if kind != model.Midweek && kind != model.Weekend {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "kind must be midweek or weekend"}
	}
	circuit := ctx.Query("circuit") == "true"
	autoBell := ctx.Query("autobell") == "true"

	date := time.Now()
	if d := ctx.Query("date"); d != "" {
		parsed, err := time.Parse("2006-01-02", d)
		if err != nil {
			return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid date"}
		}
		date = parsed
	}

	var meeting *model.Meeting
	if kind == model.Midweek {
		m, err := s.source.MeetingFor(ctx.Request.Context(), date)
		if err != nil {
			log.Error().Err(err).Msg("talk feed lookup failed")
			return nil, &api.APIError{Code: http.StatusBadGateway, Message: "talk feed unavailable"}
		}
		meeting = m
	}

	segments := schedule.Generate(kind, circuit, autoBell, meeting)

	response := make([]packets.SegmentResponse, 0, len(segments))
	for _, seg := range segments {
		response = append(response, packets.SegmentResponse{
			TalkKind:               string(seg.TalkKind),
			DisplayName:            seg.DisplayName,
			Section:                seg.SectionKey,
			StartOffsetSeconds:     int(seg.StartOffset.Seconds()),
			PlannedDurationSeconds: int(seg.PlannedDuration.Seconds()),
			IsStudentTalk:          seg.IsStudentTalk,
			BellApplicable:         seg.BellApplicable,
			AutoBell:               seg.AutoBell,
			Editable:               seg.Editable,
			AllowAdaptive:          seg.AllowAdaptive,
			PersistFinalTimerValue: seg.PersistFinalTimerValue,
		})
	}
	return response, nil
}
