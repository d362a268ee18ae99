// internal/profile/repository.go

package profile

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// Repository defines the profile storage interface consumed by the matching
// core and the HTTP handlers.
type Repository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*Profile, error)
	GetActiveProfiles(ctx context.Context) ([]*Profile, error)
	UpdateProfile(ctx context.Context, p *Profile) error
	SetState(ctx context.Context, id uuid.UUID, state State, now time.Time) error
}

type postgresRepository struct {
	db *sqlx.DB
}

// NewPostgresRepository creates a new PostgreSQL repository
func NewPostgresRepository(db *sqlx.DB) Repository {
	return &postgresRepository{db: db}
}

const profileColumns = `
	id, display_name, bio, gender, interested_in, birth_date,
	latitude, longitude, max_distance_km, min_age, max_age,
	smoking, drinking, kids_stance, looking_for, education, height_cm,
	interests, dealbreakers, pace_preferences, state, created_at, updated_at`

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*Profile, error) {
	query := `SELECT` + profileColumns + ` FROM profiles WHERE id = $1`

	p, err := scanProfile(r.db.QueryRowxContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return p, nil
}

func (r *postgresRepository) GetActiveProfiles(ctx context.Context) ([]*Profile, error) {
	query := `SELECT` + profileColumns + ` FROM profiles WHERE state = $1 ORDER BY created_at, id`

	rows, err := r.db.QueryxContext(ctx, query, StateActive)
	if err != nil {
		return nil, fmt.Errorf("failed to list active profiles: %w", err)
	}
	defer rows.Close()

	var profiles []*Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan profile: %w", err)
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

func (r *postgresRepository) UpdateProfile(ctx context.Context, p *Profile) error {
	query := `
		UPDATE profiles SET
			display_name = $2, bio = $3, gender = $4, interested_in = $5,
			birth_date = $6, latitude = $7, longitude = $8, max_distance_km = $9,
			min_age = $10, max_age = $11, smoking = $12, drinking = $13,
			kids_stance = $14, looking_for = $15, education = $16, height_cm = $17,
			interests = $18, dealbreakers = $19, pace_preferences = $20,
			state = $21, updated_at = $22
		WHERE id = $1`

	interestedIn := make([]string, len(p.InterestedIn))
	for i, g := range p.InterestedIn {
		interestedIn[i] = string(g)
	}

	result, err := r.db.ExecContext(ctx, query,
		p.ID, p.DisplayName, p.Bio, nullable(string(p.Gender)), pq.Array(interestedIn),
		p.BirthDate, p.Latitude, p.Longitude, p.MaxDistanceKm,
		p.MinAge, p.MaxAge, nullable(string(p.Smoking)), nullable(string(p.Drinking)),
		nullable(string(p.KidsStance)), nullable(string(p.LookingFor)), nullable(string(p.Education)), p.HeightCm,
		pq.Array(p.Interests), p.Dealbreakers, p.Pace,
		p.State, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return ErrProfileNotFound
	}
	return nil
}

func (r *postgresRepository) SetState(ctx context.Context, id uuid.UUID, state State, now time.Time) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE profiles SET state = $2, updated_at = $3 WHERE id = $1`,
		id, state, now,
	)
	if err != nil {
		return fmt.Errorf("failed to set profile state: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return ErrProfileNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProfile(row rowScanner) (*Profile, error) {
	var (
		p            Profile
		gender       sql.NullString
		interestedIn pq.StringArray
		smoking      sql.NullString
		drinking     sql.NullString
		kidsStance   sql.NullString
		lookingFor   sql.NullString
		education    sql.NullString
		interests    pq.StringArray
	)

	err := row.Scan(
		&p.ID, &p.DisplayName, &p.Bio, &gender, &interestedIn, &p.BirthDate,
		&p.Latitude, &p.Longitude, &p.MaxDistanceKm, &p.MinAge, &p.MaxAge,
		&smoking, &drinking, &kidsStance, &lookingFor, &education, &p.HeightCm,
		&interests, &p.Dealbreakers, &p.Pace, &p.State, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.Gender = Gender(gender.String)
	p.Smoking = Smoking(smoking.String)
	p.Drinking = Drinking(drinking.String)
	p.KidsStance = KidsStance(kidsStance.String)
	p.LookingFor = LookingFor(lookingFor.String)
	p.Education = Education(education.String)
	p.Interests = []string(interests)
	p.InterestedIn = make([]Gender, len(interestedIn))
	for i, g := range interestedIn {
		p.InterestedIn[i] = Gender(g)
	}

	return &p, nil
}

func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
