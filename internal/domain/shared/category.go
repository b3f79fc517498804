package shared

import "fmt"

// Category is a vehicle category letter. Customers hold the set of
// categories they are allowed to book; each vehicle model has exactly one.
type Category string

const (
	CategoryA Category = "A"
	CategoryB Category = "B"
	CategoryC Category = "C"
)

// NewCategory validates a stored or inbound category letter.
func NewCategory(value string) (Category, error) {
	switch c := Category(value); c {
	case CategoryA, CategoryB, CategoryC:
		return c, nil
	default:
		return "", fmt.Errorf("%w: unknown vehicle category %q", ErrValueOutOfRange, value)
	}
}

// NewCategories validates a list of category letters.
func NewCategories(values []string) ([]Category, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: categories cannot be empty", ErrValueIsRequired)
	}
	categories := make([]Category, 0, len(values))
	for _, v := range values {
		c, err := NewCategory(v)
		if err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, nil
}
