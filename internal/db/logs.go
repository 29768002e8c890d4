package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"github.com/DavidIQ/onlytimer/internal/model"
	"github.com/DavidIQ/onlytimer/internal/timeutil"
	"github.com/DavidIQ/onlytimer/internal/timing"
)

// pgLogStore persists meeting timing logs as jsonb rows keyed by
// meeting date.
type pgLogStore struct {
	db *sqlx.DB
}

// compile-time check that pgLogStore implements the boundary
var _ timing.LogStore = (*pgLogStore)(nil)

func NewLogStore() timing.LogStore {
	return &pgLogStore{db: DB}
}

func (s *pgLogStore) UpsertLog(ctx context.Context, l model.MeetingTimingLog) error {
	payload, err := json.Marshal(l)
	if err != nil {
		return fmt.Errorf("encoding timing log: %w", err)
	}
	const q = `
	INSERT INTO meeting_timing_logs (meeting_date, payload, updated_at)
	VALUES ($1, $2, now())
	ON CONFLICT (meeting_date)
	DO UPDATE SET payload = EXCLUDED.payload, updated_at = now();`
	if _, err := s.db.ExecContext(ctx, q, timeutil.DayKey(l.MeetingDate), payload); err != nil {
		log.Error().Err(err).Time("meeting_date", l.MeetingDate).Msg("UpsertLog failed")
		return err
	}
	return nil
}

func (s *pgLogStore) ListLogs(ctx context.Context) ([]model.MeetingTimingLog, error) {
	type row struct {
		MeetingDate time.Time `db:"meeting_date"`
		Payload     []byte    `db:"payload"`
	}
	var rows []row
	const q = `SELECT meeting_date, payload FROM meeting_timing_logs ORDER BY meeting_date;`
	if err := s.db.SelectContext(ctx, &rows, q); err != nil {
		log.Error().Err(err).Msg("ListLogs failed")
		return nil, err
	}
	out := make([]model.MeetingTimingLog, 0, len(rows))
	for _, r := range rows {
		var l model.MeetingTimingLog
		if err := json.Unmarshal(r.Payload, &l); err != nil {
			// a corrupt row must not sink every other meeting's data
			log.Warn().Err(err).Time("meeting_date", r.MeetingDate).Msg("skipping undecodable timing log")
			continue
		}
		out = append(out, l)
	}
	return out, nil
}

func (s *pgLogStore) DeleteAllLogs(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM meeting_timing_logs;`); err != nil {
		log.Error().Err(err).Msg("DeleteAllLogs failed")
		return err
	}
	return nil
}
