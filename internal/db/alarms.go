package db

import (
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/rs/zerolog/log"

	"github.com/Verdant-Labs-LLC/tendril/internal/model"
)

const alarmColumns = `id, user_id, activity, frequency, date, times, status, created_at, updated_at`

func (s *pgStore) CreateAlarm(userID int, activity, frequency string, date time.Time, times string) (model.Alarm, error) {
	var a model.Alarm
	const q = `
	INSERT INTO alarms (user_id, activity, frequency, date, times, status, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, 'active', now(), now())
	RETURNING ` + alarmColumns + `;`
	if err := s.db.Get(&a, q, userID, activity, frequency, date, times); err != nil {
		log.Error().Err(err).Msg("CreateAlarm failed")
		return model.Alarm{}, err
	}
	return a, nil
}

func (s *pgStore) GetAlarmByID(id int) (model.Alarm, error) {
	var a model.Alarm
	err := s.db.Get(&a, `SELECT `+alarmColumns+` FROM alarms WHERE id = $1;`, id)
	if err != nil && err != sql.ErrNoRows {
		log.Error().Err(err).Int("alarm_id", id).Msg("GetAlarmByID failed")
	}
	return a, err
}

func (s *pgStore) ListAlarms(userID int) ([]model.Alarm, error) {
	var out []model.Alarm
	const q = `
	SELECT ` + alarmColumns + `
	  FROM alarms
	 WHERE user_id = $1
	 ORDER BY date ASC, created_at DESC;`
	if err := s.db.Select(&out, q, userID); err != nil {
		log.Error().Err(err).Msg("ListAlarms failed")
		return nil, err
	}
	return out, nil
}

// merges the supplied (non-nil) fields into the alarm and returns the
// updated row. sql.ErrNoRows when the alarm does not exist.
func (s *pgStore) UpdateAlarm(id int, activity, frequency *string, date *time.Time, times, status *string) (model.Alarm, error) {
	builder := squirrel.Update("alarms").
		PlaceholderFormat(squirrel.Dollar).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + alarmColumns)

	if activity != nil {
		builder = builder.Set("activity", *activity)
	}
	if frequency != nil {
		builder = builder.Set("frequency", *frequency)
	}
	if date != nil {
		builder = builder.Set("date", *date)
	}
	if times != nil {
		builder = builder.Set("times", *times)
	}
	if status != nil {
		builder = builder.Set("status", *status)
	}

	q, args, err := builder.ToSql()
	if err != nil {
		log.Error().Err(err).Msg("UpdateAlarm query build failed")
		return model.Alarm{}, err
	}

	var a model.Alarm
	if err := s.db.Get(&a, q, args...); err != nil {
		if err != sql.ErrNoRows {
			log.Error().Err(err).Int("alarm_id", id).Msg("UpdateAlarm failed")
		}
		return model.Alarm{}, err
	}
	return a, nil
}

// removes the alarm and everything derived from it (calendar rows,
// activity log entries, notifications) in one transaction. Returns
// sql.ErrNoRows when the alarm does not exist.
func (s *pgStore) DeleteAlarm(id int) error {
	tx, err := s.db.Beginx()
	if err != nil {
		log.Error().Err(err).Msg("DeleteAlarm begin failed")
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM notifications WHERE alarm_id = $1;`, id); err != nil {
		log.Error().Err(err).Int("alarm_id", id).Msg("DeleteAlarm notifications failed")
		return err
	}
	if _, err := tx.Exec(`DELETE FROM activity_logs WHERE alarm_id = $1;`, id); err != nil {
		log.Error().Err(err).Int("alarm_id", id).Msg("DeleteAlarm activity logs failed")
		return err
	}
	if _, err := tx.Exec(`DELETE FROM calendar_occurrences WHERE alarm_id = $1;`, id); err != nil {
		log.Error().Err(err).Int("alarm_id", id).Msg("DeleteAlarm occurrences failed")
		return err
	}

	res, err := tx.Exec(`DELETE FROM alarms WHERE id = $1;`, id)
	if err != nil {
		log.Error().Err(err).Int("alarm_id", id).Msg("DeleteAlarm failed")
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}

	return tx.Commit()
}
