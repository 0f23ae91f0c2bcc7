package entity

// Category is static reference data for grouping listings. Categories are
// created by the seeder only and never mutated by end users.
type Category struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}
