package endpoints

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/DavidIQ/onlytimer/internal/http/api"
	"github.com/DavidIQ/onlytimer/internal/http/api/packets"
	"github.com/DavidIQ/onlytimer/internal/timing"
)

// MeetingController is the live-meeting driver surface: each route
// appends one event to the date's timing log.
type MeetingController struct {
	registry *timing.Registry
}

func NewMeetingController(registry *timing.Registry) *MeetingController {
	return &MeetingController{registry: registry}
}

func MeetingModule(registry *timing.Registry) api.Module {
	ctl := NewMeetingController(registry)
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/meetings/:date", ctl.getLog)
		c.POST("/meetings/:date/start", ctl.meetingStart)
		c.POST("/meetings/:date/planned-end", ctl.plannedEnd)
		c.POST("/meetings/:date/timer/start", ctl.timerStart)
		c.POST("/meetings/:date/timer/stop", ctl.timerStop)
		c.POST("/meetings/:date/end", ctl.meetingEnd)
		c.POST("/meetings/:date/save", ctl.save)
	})
}

func (m *MeetingController) recorder(ctx *gin.Context) (*timing.Recorder, *api.APIError) {
	date, err := time.Parse("2006-01-02", ctx.Param("date"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid meeting date"}
	}
	return m.registry.Recorder(date), nil
}

func (m *MeetingController) getLog(ctx *gin.Context) (any, *api.APIError) {
	rec, apiErr := m.recorder(ctx)
	if apiErr != nil {
		return nil, apiErr
	}
	l := rec.Log()

	response := packets.MeetingLogResponse{
		MeetingDate: l.MeetingDate.Format("2006-01-02"),
		ActualEnd:   l.ActualEnd,
		Events:      make([]packets.TimerEventResponse, 0, len(l.Events)),
	}
	if !l.MeetingStart.IsZero() {
		response.MeetingStart = &l.MeetingStart
	}
	if !l.PlannedEnd.IsZero() {
		response.PlannedEnd = &l.PlannedEnd
	}
	for _, ev := range l.Events {
		response.Events = append(response.Events, packets.TimerEventResponse{
			Description:           ev.Description,
			IsStudentTalk:         ev.IsStudentTalk,
			StartedAt:             ev.StartedAt,
			StoppedAt:             ev.StoppedAt,
			OriginalTargetSeconds: int(ev.OriginalTarget.Seconds()),
			AdjustedTargetSeconds: int(ev.AdjustedTarget.Seconds()),
		})
	}
	return response, nil
}

func (m *MeetingController) meetingStart(ctx *gin.Context) (any, *api.APIError) {
	rec, apiErr := m.recorder(ctx)
	if apiErr != nil {
		return nil, apiErr
	}
	var request packets.MarkTimeRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}
	rec.InsertMeetingStart(request.Timestamp)
	return gin.H{"status": "recorded"}, nil
}

func (m *MeetingController) plannedEnd(ctx *gin.Context) (any, *api.APIError) {
	rec, apiErr := m.recorder(ctx)
	if apiErr != nil {
		return nil, apiErr
	}
	var request packets.MarkTimeRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}
	rec.InsertPlannedMeetingEnd(request.Timestamp)
	return gin.H{"status": "recorded"}, nil
}

func (m *MeetingController) timerStart(ctx *gin.Context) (any, *api.APIError) {
	rec, apiErr := m.recorder(ctx)
	if apiErr != nil {
		return nil, apiErr
	}
	var request packets.TimerStartRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	original := time.Duration(request.OriginalTargetSeconds) * time.Second
	adjusted := original
	if request.AdjustedTargetSeconds != nil {
		adjusted = time.Duration(*request.AdjustedTargetSeconds) * time.Second
	}

	if err := rec.InsertTimerStart(request.Description, request.IsStudentTalk, original, adjusted); err != nil {
		return nil, api.FromTimingError(err)
	}
	return gin.H{"status": "recorded"}, nil
}

func (m *MeetingController) timerStop(ctx *gin.Context) (any, *api.APIError) {
	rec, apiErr := m.recorder(ctx)
	if apiErr != nil {
		return nil, apiErr
	}
	if err := rec.InsertTimerStop(); err != nil {
		return nil, api.FromTimingError(err)
	}
	return gin.H{"status": "recorded"}, nil
}

func (m *MeetingController) meetingEnd(ctx *gin.Context) (any, *api.APIError) {
	rec, apiErr := m.recorder(ctx)
	if apiErr != nil {
		return nil, apiErr
	}
	if err := rec.InsertActualMeetingEnd(); err != nil {
		return nil, api.FromTimingError(err)
	}
	return gin.H{"status": "recorded"}, nil
}

func (m *MeetingController) save(ctx *gin.Context) (any, *api.APIError) {
	rec, apiErr := m.recorder(ctx)
	if apiErr != nil {
		return nil, apiErr
	}
	if err := rec.Save(ctx.Request.Context()); err != nil {
		return nil, api.FromTimingError(err)
	}
	return gin.H{"status": "saved"}, nil
}
