package store

import (
	"database/sql"
	"errors"
	"time"
)

// GetStravaTokens retrieves the stored Strava API tokens
func (db *DB) GetStravaTokens() (*StravaTokens, error) {
	var t StravaTokens
	var expiresAt int64

	err := db.QueryRow(`
		SELECT athlete_id, access_token, refresh_token, expires_at
		FROM strava_tokens
		WHERE id = 1
	`).Scan(&t.AthleteID, &t.AccessToken, &t.RefreshToken, &expiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoTokens
	}
	if err != nil {
		return nil, err
	}

	t.ExpiresAt = time.Unix(expiresAt, 0)
	return &t, nil
}

// SaveStravaTokens stores or updates the Strava API tokens
func (db *DB) SaveStravaTokens(t *StravaTokens) error {
	_, err := db.Exec(`
		INSERT INTO strava_tokens (id, athlete_id, access_token, refresh_token, expires_at, updated_at)
		VALUES (1, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET
			athlete_id = excluded.athlete_id,
			access_token = excluded.access_token,
			refresh_token = excluded.refresh_token,
			expires_at = excluded.expires_at,
			updated_at = CURRENT_TIMESTAMP
	`, t.AthleteID, t.AccessToken, t.RefreshToken, t.ExpiresAt.Unix())
	return err
}

// UpdateStravaTokens updates just the access and refresh tokens
func (db *DB) UpdateStravaTokens(accessToken, refreshToken string, expiresAt time.Time) error {
	_, err := db.Exec(`
		UPDATE strava_tokens
		SET access_token = ?, refresh_token = ?, expires_at = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = 1
	`, accessToken, refreshToken, expiresAt.Unix())
	return err
}
