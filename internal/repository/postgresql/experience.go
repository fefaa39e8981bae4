package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/bravoapp/volunteering-backend-go/internal/domain/experience"
	"github.com/bravoapp/volunteering-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type experienceRepositoryImpl struct {
	db *database.DB
}

func NewExperienceRepository(db *database.DB) experience.ExperienceRepository {
	return &experienceRepositoryImpl{db: db}
}

// ListByCompanyID implements experience.ExperienceRepository.
//
// Three queries: experiences assigned to the company, their dates, and the
// bookings on those dates narrowed to the company's own employees. Bookings
// from other companies sharing an experience never appear in the result.
func (r *experienceRepositoryImpl) ListByCompanyID(ctx context.Context, companyID string) ([]experience.Experience, error) {
	q := GetQuerier(ctx, r.db)

	expQuery := `
		SELECT e.id, e.title, e.description, e.image_url, e.status, e.address,
			e.category_id, e.city_id, e.association_name, cat.name, ci.name, e.created_at
		FROM experiences e
		JOIN experience_companies ec ON ec.experience_id = e.id
		LEFT JOIN categories cat ON cat.id = e.category_id
		LEFT JOIN cities ci ON ci.id = e.city_id
		WHERE ec.company_id = $1
		ORDER BY e.created_at DESC
	`

	rows, err := q.Query(ctx, expQuery, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list experiences: %w", err)
	}
	defer rows.Close()

	var experiences []experience.Experience
	index := make(map[string]int)
	for rows.Next() {
		var e experience.Experience
		err := rows.Scan(
			&e.ID,
			&e.Title,
			&e.Description,
			&e.ImageURL,
			&e.Status,
			&e.Address,
			&e.CategoryID,
			&e.CityID,
			&e.AssociationName,
			&e.CategoryName,
			&e.CityName,
			&e.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan experience: %w", err)
		}
		index[e.ID] = len(experiences)
		experiences = append(experiences, e)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	if len(experiences) == 0 {
		return experiences, nil
	}

	dateQuery := `
		SELECT d.id, d.experience_id, d.start_datetime, d.end_datetime,
			d.max_participants, d.volunteer_hours
		FROM experience_dates d
		JOIN experience_companies ec ON ec.experience_id = d.experience_id
		WHERE ec.company_id = $1
		ORDER BY d.start_datetime ASC
	`

	dateRows, err := q.Query(ctx, dateQuery, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list experience dates: %w", err)
	}
	defer dateRows.Close()

	dateIndex := make(map[string][2]int) // date id -> (experience idx, date idx)
	for dateRows.Next() {
		var d experience.ExperienceDate
		err := dateRows.Scan(
			&d.ID,
			&d.ExperienceID,
			&d.StartDatetime,
			&d.EndDatetime,
			&d.MaxParticipants,
			&d.VolunteerHours,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan experience date: %w", err)
		}
		i, ok := index[d.ExperienceID]
		if !ok {
			continue
		}
		dateIndex[d.ID] = [2]int{i, len(experiences[i].Dates)}
		experiences[i].Dates = append(experiences[i].Dates, d)
	}
	if err = dateRows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	bookingQuery := `
		SELECT b.id, b.user_id, b.status, b.created_at, b.experience_date_id,
			p.first_name, p.last_name, p.email
		FROM bookings b
		JOIN profiles p ON p.id = b.user_id
		JOIN experience_dates d ON d.id = b.experience_date_id
		JOIN experience_companies ec ON ec.experience_id = d.experience_id
		WHERE ec.company_id = $1 AND p.company_id = $1
		ORDER BY b.created_at ASC
	`

	bookingRows, err := q.Query(ctx, bookingQuery, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list date bookings: %w", err)
	}
	defer bookingRows.Close()

	for bookingRows.Next() {
		var b experience.DateBooking
		var dateID string
		err := bookingRows.Scan(
			&b.ID,
			&b.UserID,
			&b.Status,
			&b.CreatedAt,
			&dateID,
			&b.FirstName,
			&b.LastName,
			&b.Email,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan date booking: %w", err)
		}
		loc, ok := dateIndex[dateID]
		if !ok {
			continue
		}
		date := &experiences[loc[0]].Dates[loc[1]]
		date.Bookings = append(date.Bookings, b)
	}
	if err = bookingRows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return experiences, nil
}

// ListPublishedByCompanyID implements experience.ExperienceRepository.
func (r *experienceRepositoryImpl) ListPublishedByCompanyID(ctx context.Context, companyID string, after time.Time) ([]experience.BrowseExperience, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id, e.title, e.description, e.image_url, e.address,
			e.association_name, e.category_id, e.city_id, cat.name, ci.name,
			d.id, d.start_datetime, d.end_datetime, d.max_participants, d.volunteer_hours,
			(SELECT COUNT(*) FROM bookings b WHERE b.experience_date_id = d.id AND b.status = 'confirmed') AS confirmed
		FROM experiences e
		JOIN experience_companies ec ON ec.experience_id = e.id
		JOIN experience_dates d ON d.experience_id = e.id
		LEFT JOIN categories cat ON cat.id = e.category_id
		LEFT JOIN cities ci ON ci.id = e.city_id
		WHERE ec.company_id = $1
		AND e.status = 'published'
		AND d.start_datetime > $2
		ORDER BY d.start_datetime ASC
	`

	rows, err := q.Query(ctx, query, companyID, after)
	if err != nil {
		return nil, fmt.Errorf("failed to list published experiences: %w", err)
	}
	defer rows.Close()

	var result []experience.BrowseExperience
	index := make(map[string]int)
	for rows.Next() {
		var e experience.BrowseExperience
		var d experience.BrowseDate
		var confirmed int
		err := rows.Scan(
			&e.ID,
			&e.Title,
			&e.Description,
			&e.ImageURL,
			&e.Address,
			&e.AssociationName,
			&e.CategoryID,
			&e.CityID,
			&e.CategoryName,
			&e.CityName,
			&d.ID,
			&d.StartDatetime,
			&d.EndDatetime,
			&d.MaxParticipants,
			&d.VolunteerHours,
			&confirmed,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan published experience: %w", err)
		}

		d.SpotsLeft = d.MaxParticipants - confirmed
		if d.SpotsLeft < 0 {
			d.SpotsLeft = 0
		}

		i, ok := index[e.ID]
		if !ok {
			i = len(result)
			index[e.ID] = i
			result = append(result, e)
		}
		result[i].Dates = append(result[i].Dates, d)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return result, nil
}

// GetDateByID implements experience.ExperienceRepository.
func (r *experienceRepositoryImpl) GetDateByID(ctx context.Context, dateID string) (experience.ExperienceDate, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, experience_id, start_datetime, end_datetime, max_participants, volunteer_hours
		FROM experience_dates
		WHERE id = $1
	`

	var d experience.ExperienceDate
	err := q.QueryRow(ctx, query, dateID).Scan(
		&d.ID,
		&d.ExperienceID,
		&d.StartDatetime,
		&d.EndDatetime,
		&d.MaxParticipants,
		&d.VolunteerHours,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return experience.ExperienceDate{}, experience.ErrDateNotFound
		}
		return experience.ExperienceDate{}, fmt.Errorf("failed to get experience date: %w", err)
	}

	return d, nil
}
