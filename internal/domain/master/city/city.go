package city

import "context"

// City is platform-wide master data feeding the experience filters.
type City struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type CityRepository interface {
	List(ctx context.Context) ([]City, error)
}

type CityService interface {
	List(ctx context.Context) ([]City, error)
}
