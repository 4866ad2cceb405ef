// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/google/uuid"

// Wine is a single catalog record.
//
// ID is assigned by the store on insert and never changes afterwards. Every
// other field is mutable through a partial update.
type Wine struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Year        int       `json:"year"`
	Color       string    `json:"color"`
	State       string    `json:"state"`
	Winery      string    `json:"winery"`
	Kind        string    `json:"kind"`
	Sugar       float64   `json:"sugar"`
	Alcohol     float64   `json:"alcohol"`
	Country     string    `json:"country"`
	Region      string    `json:"region"`
	Score       float64   `json:"score"`
	Description string    `json:"description"`
	Picture     string    `json:"picture"`
}

// CreateWineRequest carries the fields of a new catalog record.
//
// Fields are pointers so that a missing value can be told apart from a zero
// one; every field is mandatory and is checked before [CreateWineRequest.ToWine]
// is called.
type CreateWineRequest struct {
	Name        *string  `json:"name"`
	Year        *int     `json:"year"`
	Color       *string  `json:"color"`
	State       *string  `json:"state"`
	Winery      *string  `json:"winery"`
	Kind        *string  `json:"kind"`
	Sugar       *float64 `json:"sugar"`
	Alcohol     *float64 `json:"alcohol"`
	Country     *string  `json:"country"`
	Region      *string  `json:"region"`
	Score       *float64 `json:"score"`
	Description *string  `json:"description"`
	Picture     *string  `json:"picture"`
}

// ToWine converts a validated request into a record without an identity.
// Nil fields are converted to zero values.
func (r CreateWineRequest) ToWine() Wine {
	return Wine{
		Name:        deref(r.Name),
		Year:        deref(r.Year),
		Color:       deref(r.Color),
		State:       deref(r.State),
		Winery:      deref(r.Winery),
		Kind:        deref(r.Kind),
		Sugar:       deref(r.Sugar),
		Alcohol:     deref(r.Alcohol),
		Country:     deref(r.Country),
		Region:      deref(r.Region),
		Score:       deref(r.Score),
		Description: deref(r.Description),
		Picture:     deref(r.Picture),
	}
}

// WineUpdate is a partial update of a catalog record. A nil field means
// "leave the stored value untouched".
type WineUpdate struct {
	Name        *string  `json:"name,omitempty"`
	Year        *int     `json:"year,omitempty"`
	Color       *string  `json:"color,omitempty"`
	State       *string  `json:"state,omitempty"`
	Winery      *string  `json:"winery,omitempty"`
	Kind        *string  `json:"kind,omitempty"`
	Sugar       *float64 `json:"sugar,omitempty"`
	Alcohol     *float64 `json:"alcohol,omitempty"`
	Country     *string  `json:"country,omitempty"`
	Region      *string  `json:"region,omitempty"`
	Score       *float64 `json:"score,omitempty"`
	Description *string  `json:"description,omitempty"`
	Picture     *string  `json:"picture,omitempty"`
}

// IsEmpty reports whether the update carries no fields at all.
func (u WineUpdate) IsEmpty() bool {
	return u == WineUpdate{}
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

// MissingField returns the JSON name of the first unset field of the request,
// or an empty string when every field is present.
func (r CreateWineRequest) MissingField() string {
	switch {
	case r.Name == nil:
		return "name"
	case r.Year == nil:
		return "year"
	case r.Color == nil:
		return "color"
	case r.State == nil:
		return "state"
	case r.Winery == nil:
		return "winery"
	case r.Kind == nil:
		return "kind"
	case r.Sugar == nil:
		return "sugar"
	case r.Alcohol == nil:
		return "alcohol"
	case r.Country == nil:
		return "country"
	case r.Region == nil:
		return "region"
	case r.Score == nil:
		return "score"
	case r.Description == nil:
		return "description"
	case r.Picture == nil:
		return "picture"
	}
	return ""
}
