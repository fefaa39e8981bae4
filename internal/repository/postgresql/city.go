package postgresql

import (
	"context"
	"fmt"

	"github.com/bravoapp/volunteering-backend-go/internal/domain/master/city"
	"github.com/bravoapp/volunteering-backend-go/internal/pkg/database"
)

type cityRepositoryImpl struct {
	db *database.DB
}

func NewCityRepository(db *database.DB) city.CityRepository {
	return &cityRepositoryImpl{db: db}
}

// List implements city.CityRepository.
func (r *cityRepositoryImpl) List(ctx context.Context) ([]city.City, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT id, name FROM cities ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list cities: %w", err)
	}
	defer rows.Close()

	var cities []city.City
	for rows.Next() {
		var c city.City
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("failed to scan city: %w", err)
		}
		cities = append(cities, c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return cities, nil
}
