package models

// Category is the closed set of spending categories. Unknown values are
// rejected at the API boundary rather than defaulting silently.
type Category string

const (
	CategoryFood      Category = "food"
	CategoryHousing   Category = "housing"
	CategoryTransport Category = "transport"
	CategoryLeisure   Category = "leisure"
	CategoryHealth    Category = "health"
	CategorySalary    Category = "salary"
	CategoryOther     Category = "other"
)

// Categories lists every valid category.
var Categories = []Category{
	CategoryFood,
	CategoryHousing,
	CategoryTransport,
	CategoryLeisure,
	CategoryHealth,
	CategorySalary,
	CategoryOther,
}

// Valid reports whether c is a member of the closed category set.
func (c Category) Valid() bool {
	switch c {
	case CategoryFood, CategoryHousing, CategoryTransport,
		CategoryLeisure, CategoryHealth, CategorySalary, CategoryOther:
		return true
	}
	return false
}
