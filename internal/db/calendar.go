package db

import (
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/rs/zerolog/log"

	"github.com/Verdant-Labs-LLC/tendril/internal/model"
	"github.com/Verdant-Labs-LLC/tendril/internal/plantcare"
)

const occurrenceColumns = `id, user_id, alarm_id, activity, date, time, status, created_at, updated_at`

// writes the generated rows in one bulk insert and returns how many
// survived. Duplicate (alarm, date, time) triples are dropped by the
// unique index, keeping the first row.
func (s *pgStore) InsertOccurrences(userID, alarmID int, seeds []plantcare.OccurrenceSeed) (int, error) {
	if len(seeds) == 0 {
		return 0, nil
	}

	builder := squirrel.Insert("calendar_occurrences").
		Columns("user_id", "alarm_id", "activity", "date", "time", "status").
		PlaceholderFormat(squirrel.Dollar).
		Suffix("ON CONFLICT (alarm_id, date, time) DO NOTHING")
	for _, seed := range seeds {
		builder = builder.Values(userID, alarmID, seed.Activity, seed.Date, seed.Time, model.OccurrenceUpcoming)
	}

	q, args, err := builder.ToSql()
	if err != nil {
		log.Error().Err(err).Msg("InsertOccurrences query build failed")
		return 0, err
	}

	res, err := s.db.Exec(q, args...)
	if err != nil {
		log.Error().Err(err).Int("alarm_id", alarmID).Msg("InsertOccurrences failed")
		return 0, err
	}
	created, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(created), nil
}

func (s *pgStore) ListOccurrences(userID int) ([]model.CalendarOccurrence, error) {
	var out []model.CalendarOccurrence
	const q = `
	SELECT ` + occurrenceColumns + `
	  FROM calendar_occurrences
	 WHERE user_id = $1
	 ORDER BY date ASC, time ASC, id ASC;`
	if err := s.db.Select(&out, q, userID); err != nil {
		log.Error().Err(err).Msg("ListOccurrences failed")
		return nil, err
	}
	return out, nil
}

func (s *pgStore) GetOccurrenceByID(id int) (model.CalendarOccurrence, error) {
	var occ model.CalendarOccurrence
	err := s.db.Get(&occ, `SELECT `+occurrenceColumns+` FROM calendar_occurrences WHERE id = $1;`, id)
	if err != nil && err != sql.ErrNoRows {
		log.Error().Err(err).Int("occurrence_id", id).Msg("GetOccurrenceByID failed")
	}
	return occ, err
}

// moves the occurrence to status and, when the new status is completed
// or missed, appends the matching activity log entry in the same
// transaction. Moving back to upcoming never touches the log.
func (s *pgStore) SetOccurrenceStatus(id int, status string) (model.CalendarOccurrence, error) {
	tx, err := s.db.Beginx()
	if err != nil {
		log.Error().Err(err).Msg("SetOccurrenceStatus begin failed")
		return model.CalendarOccurrence{}, err
	}
	defer tx.Rollback()

	var occ model.CalendarOccurrence
	const q = `
	UPDATE calendar_occurrences
	   SET status = $2, updated_at = now()
	 WHERE id = $1
	RETURNING ` + occurrenceColumns + `;`
	if err := tx.Get(&occ, q, id, status); err != nil {
		if err != sql.ErrNoRows {
			log.Error().Err(err).Int("occurrence_id", id).Msg("SetOccurrenceStatus failed")
		}
		return model.CalendarOccurrence{}, err
	}

	if status == model.OccurrenceCompleted || status == model.OccurrenceMissed {
		const logQ = `
		INSERT INTO activity_logs (user_id, alarm_id, activity, status, logged_at)
		VALUES ($1, $2, $3, $4, now());`
		if _, err := tx.Exec(logQ, occ.UserID, occ.AlarmID, occ.Activity, status); err != nil {
			log.Error().Err(err).Int("occurrence_id", id).Msg("SetOccurrenceStatus log append failed")
			return model.CalendarOccurrence{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return model.CalendarOccurrence{}, err
	}
	return occ, nil
}

// drops every occurrence of the alarm dated from or later; past rows are
// left untouched so history survives frequency changes.
func (s *pgStore) DeleteOccurrencesFrom(alarmID int, from time.Time) error {
	_, err := s.db.Exec(`DELETE FROM calendar_occurrences WHERE alarm_id = $1 AND date >= $2;`, alarmID, from)
	if err != nil {
		log.Error().Err(err).Int("alarm_id", alarmID).Msg("DeleteOccurrencesFrom failed")
	}
	return err
}
