package category

import "context"

// Category is platform-wide master data feeding the experience filters.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type CategoryRepository interface {
	List(ctx context.Context) ([]Category, error)
}

type CategoryService interface {
	List(ctx context.Context) ([]Category, error)
}
