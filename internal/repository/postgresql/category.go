package postgresql

import (
	"context"
	"fmt"

	"github.com/bravoapp/volunteering-backend-go/internal/domain/master/category"
	"github.com/bravoapp/volunteering-backend-go/internal/pkg/database"
)

type categoryRepositoryImpl struct {
	db *database.DB
}

func NewCategoryRepository(db *database.DB) category.CategoryRepository {
	return &categoryRepositoryImpl{db: db}
}

// List implements category.CategoryRepository.
func (r *categoryRepositoryImpl) List(ctx context.Context) ([]category.Category, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT id, name FROM categories ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	var categories []category.Category
	for rows.Next() {
		var c category.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return categories, nil
}
