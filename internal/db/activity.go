package db

import (
	"github.com/rs/zerolog/log"

	"github.com/Verdant-Labs-LLC/tendril/internal/model"
)

func (s *pgStore) ListActivityLog(userID int) ([]model.ActivityLog, error) {
	var out []model.ActivityLog
	const q = `
	SELECT id, user_id, alarm_id, activity, status, logged_at
	  FROM activity_logs
	 WHERE user_id = $1
	 ORDER BY logged_at DESC, id DESC;`
	if err := s.db.Select(&out, q, userID); err != nil {
		log.Error().Err(err).Msg("ListActivityLog failed")
		return nil, err
	}
	return out, nil
}
