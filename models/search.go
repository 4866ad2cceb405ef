package models

// SearchCriteria is the optional filter set of a catalog listing.
//
// Text fields match as case-insensitive substrings, Year matches exactly, and
// the Min/Max pairs are inclusive bounds. A nil field does not filter.
type SearchCriteria struct {
	Name    *string `json:"name,omitempty"`
	Color   *string `json:"color,omitempty"`
	Winery  *string `json:"winery,omitempty"`
	Kind    *string `json:"kind,omitempty"`
	Country *string `json:"country,omitempty"`
	Region  *string `json:"region,omitempty"`

	Year *int `json:"year,omitempty"`

	MinScore   *float64 `json:"min_score,omitempty"`
	MaxScore   *float64 `json:"max_score,omitempty"`
	MinAlcohol *float64 `json:"min_alcohol,omitempty"`
	MaxAlcohol *float64 `json:"max_alcohol,omitempty"`
}

// Domain limits of the criteria values.
const (
	MinCriteriaYear = 1900
	MaxCriteriaYear = 2100

	MinCriteriaPercent = 0.0
	MaxCriteriaPercent = 100.0
)
