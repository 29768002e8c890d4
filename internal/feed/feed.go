// Package feed supplies the externally published talk assignments
// (kind, minutes, student flag) used to flesh out the midweek ministry
// and living sections. The schedule engine treats any talk the feed
// does not return as absent.
package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/DavidIQ/onlytimer/internal/model"
	"github.com/DavidIQ/onlytimer/internal/redis"
)

// Source supplies the talk data for a given meeting date. A nil
// meeting with nil error means the feed has no data for that date.
type Source interface {
	MeetingFor(ctx context.Context, date time.Time) (*model.Meeting, error)
}

// StaticSource returns the same talk set for every date. Used in
// development and tests, and as the fallback when no feed URL is
// configured.
type StaticSource struct {
	Talks []model.TalkTimer
}

func (s StaticSource) MeetingFor(_ context.Context, date time.Time) (*model.Meeting, error) {
	if len(s.Talks) == 0 {
		return nil, nil
	}
	talks := make([]model.TalkTimer, len(s.Talks))
	copy(talks, s.Talks)
	return &model.Meeting{Date: date, Talks: talks}, nil
}

// SampleSource mirrors a typical midweek assignment sheet.
func SampleSource() StaticSource {
	return StaticSource{Talks: []model.TalkTimer{
		{TalkKind: model.Ministry1, Minutes: 2, IsStudentTalk: true},
		{TalkKind: model.Ministry2, Minutes: 4, IsStudentTalk: true},
		{TalkKind: model.Ministry3, Minutes: 6, IsStudentTalk: true},
		{TalkKind: model.LivingPart1, Minutes: 15},
	}}
}

// HTTPSource fetches per-date talk data from a JSON feed, caching each
// day's answer in redis so the feed is hit at most once per date.
type HTTPSource struct {
	baseURL  string
	client   *http.Client
	cacheFor time.Duration
}

var _ Source = (*HTTPSource)(nil)

func NewHTTPSource(baseURL string) *HTTPSource {
	return &HTTPSource{
		baseURL:  baseURL,
		client:   &http.Client{Timeout: 15 * time.Second},
		cacheFor: 24 * time.Hour,
	}
}

func (s *HTTPSource) MeetingFor(ctx context.Context, date time.Time) (*model.Meeting, error) {
	day := date.UTC().Format("2006-01-02")
	cacheKey := "feed:" + day

	if raw, ok := redis.Get(ctx, cacheKey); ok {
		var m model.Meeting
		if err := json.Unmarshal([]byte(raw), &m); err == nil {
			return &m, nil
		}
		log.Warn().Str("key", cacheKey).Msg("discarding undecodable cached feed entry")
	}

	url := fmt.Sprintf("%s/%s.json", s.baseURL, day)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building feed request: %w", err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching talk feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		// no assignments published for this date
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("talk feed returned %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading talk feed: %w", err)
	}

	var talks []model.TalkTimer
	if err := json.Unmarshal(body, &talks); err != nil {
		return nil, fmt.Errorf("decoding talk feed: %w", err)
	}
	m := &model.Meeting{Date: date, Talks: talks}

	if cached, err := json.Marshal(m); err == nil {
		redis.Set(ctx, cacheKey, string(cached), s.cacheFor)
	}
	return m, nil
}
