package enums

import "fmt"

// Category is the content vertical an influencer publishes in.
type Category string

const (
	CategoryFashion   Category = "fashion"
	CategoryFitness   Category = "fitness"
	CategoryTech      Category = "tech"
	CategoryTravel    Category = "travel"
	CategoryGaming    Category = "gaming"
	CategoryFood      Category = "food"
	CategoryLifestyle Category = "lifestyle"
	CategoryBeauty    Category = "beauty"
	CategoryBusiness  Category = "business"
)

var validCategories = []Category{
	CategoryFashion,
	CategoryFitness,
	CategoryTech,
	CategoryTravel,
	CategoryGaming,
	CategoryFood,
	CategoryLifestyle,
	CategoryBeauty,
	CategoryBusiness,
}

// String implements fmt.Stringer.
func (c Category) String() string {
	return string(c)
}

// IsValid reports whether the value is a known Category.
func (c Category) IsValid() bool {
	for _, candidate := range validCategories {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseCategory converts raw input into a Category.
func ParseCategory(value string) (Category, error) {
	for _, candidate := range validCategories {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid category %q", value)
}
