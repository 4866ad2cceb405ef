// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-wine-cellar/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func ptr[T any](v T) *T { return &v }

func validCreateRequest() models.CreateWineRequest {
	return models.CreateWineRequest{
		Name:        ptr("Chianti Classico"),
		Year:        ptr(2019),
		Color:       ptr("red"),
		State:       ptr("still"),
		Winery:      ptr("Castello di Ama"),
		Kind:        ptr("Sangiovese"),
		Sugar:       ptr(1.5),
		Alcohol:     ptr(13.5),
		Country:     ptr("Italy"),
		Region:      ptr("Tuscany"),
		Score:       ptr(91.0),
		Description: ptr("Cherry and violet"),
		Picture:     ptr("chianti.png"),
	}
}

// ---------------------------------------------------------------------------
// Dispatch
// ---------------------------------------------------------------------------

func TestNewWineValidator(t *testing.T) {
	require.NotNil(t, NewWineValidator(100))
}

func TestValidate_Dispatch(t *testing.T) {
	v := NewWineValidator(100)
	ctx := context.Background()

	t.Run("unsupported type", func(t *testing.T) {
		assert.ErrorIs(t, v.Validate(ctx, "a string"), ErrUnsupportedType)
	})

	t.Run("nil criteria pointer means no filter", func(t *testing.T) {
		var c *models.SearchCriteria
		assert.NoError(t, v.Validate(ctx, c))
	})

	t.Run("criteria value and pointer", func(t *testing.T) {
		c := models.SearchCriteria{Year: ptr(2019)}
		assert.NoError(t, v.Validate(ctx, c))
		assert.NoError(t, v.Validate(ctx, &c))
	})

	t.Run("page request value and pointer", func(t *testing.T) {
		r := models.PageRequest{Page: 1, Size: 12}
		assert.NoError(t, v.Validate(ctx, r))
		assert.NoError(t, v.Validate(ctx, &r))
	})

	t.Run("nil page request pointer", func(t *testing.T) {
		var r *models.PageRequest
		assert.ErrorIs(t, v.Validate(ctx, r), ErrUnsupportedType)
	})

	t.Run("create request value and pointer", func(t *testing.T) {
		r := validCreateRequest()
		assert.NoError(t, v.Validate(ctx, r))
		assert.NoError(t, v.Validate(ctx, &r))
	})

	t.Run("nil create request pointer", func(t *testing.T) {
		var r *models.CreateWineRequest
		assert.ErrorIs(t, v.Validate(ctx, r), ErrNilCreateWineRequest)
	})

	t.Run("unknown field", func(t *testing.T) {
		assert.ErrorIs(t, v.Validate(ctx, models.SearchCriteria{}, "colour"), ErrUnknownField)
		assert.ErrorIs(t, v.Validate(ctx, models.PageRequest{Page: 1, Size: 1}, "sort"), ErrUnknownField)
		assert.ErrorIs(t, v.Validate(ctx, validCreateRequest(), "name"), ErrUnknownField)
	})
}

// ---------------------------------------------------------------------------
// Search criteria
// ---------------------------------------------------------------------------

func TestValidate_SearchCriteria(t *testing.T) {
	v := NewWineValidator(100)

	tests := []struct {
		name     string
		criteria models.SearchCriteria
		fieldErr error
	}{
		{name: "empty criteria"},
		{name: "year lower edge", criteria: models.SearchCriteria{Year: ptr(1900)}},
		{name: "year upper edge", criteria: models.SearchCriteria{Year: ptr(2100)}},
		{name: "year below domain", criteria: models.SearchCriteria{Year: ptr(1899)}, fieldErr: ErrInvalidYear},
		{name: "year above domain", criteria: models.SearchCriteria{Year: ptr(2101)}, fieldErr: ErrInvalidYear},
		{name: "score edges", criteria: models.SearchCriteria{MinScore: ptr(0.0), MaxScore: ptr(100.0)}},
		{name: "negative min score", criteria: models.SearchCriteria{MinScore: ptr(-0.5)}, fieldErr: ErrInvalidMinScore},
		{name: "max score above domain", criteria: models.SearchCriteria{MaxScore: ptr(100.1)}, fieldErr: ErrInvalidMaxScore},
		{name: "min alcohol above domain", criteria: models.SearchCriteria{MinAlcohol: ptr(101.0)}, fieldErr: ErrInvalidMinAlcohol},
		{name: "negative max alcohol", criteria: models.SearchCriteria{MaxAlcohol: ptr(-1.0)}, fieldErr: ErrInvalidMaxAlcohol},
		{
			name:     "inverted bounds are not an error",
			criteria: models.SearchCriteria{MinScore: ptr(95.0), MaxScore: ptr(90.0)},
		},
		{
			name:     "text fields are never range checked",
			criteria: models.SearchCriteria{Name: ptr("  "), Country: ptr("France")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.criteria)
			if tt.fieldErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrInvalidCriteriaRange)
			assert.ErrorIs(t, err, tt.fieldErr)
		})
	}
}

func TestValidate_SearchCriteria_FieldScoping(t *testing.T) {
	v := NewWineValidator(100)
	c := models.SearchCriteria{Year: ptr(1500), MinScore: ptr(50.0)}

	assert.NoError(t, v.Validate(context.Background(), c, FieldMinScore))
	assert.ErrorIs(t, v.Validate(context.Background(), c, FieldYear), ErrInvalidYear)
}

// ---------------------------------------------------------------------------
// Page request
// ---------------------------------------------------------------------------

func TestValidate_PageRequest(t *testing.T) {
	tests := []struct {
		name    string
		max     int
		request models.PageRequest
		wantErr error
	}{
		{name: "first page", max: 100, request: models.PageRequest{Page: 1, Size: 12}},
		{name: "size at max", max: 100, request: models.PageRequest{Page: 3, Size: 100}},
		{name: "zero page", max: 100, request: models.PageRequest{Page: 0, Size: 12}, wantErr: ErrInvalidPage},
		{name: "negative page", max: 100, request: models.PageRequest{Page: -2, Size: 12}, wantErr: ErrInvalidPage},
		{name: "zero size", max: 100, request: models.PageRequest{Page: 1, Size: 0}, wantErr: ErrInvalidPageSize},
		{name: "size above max", max: 100, request: models.PageRequest{Page: 1, Size: 101}, wantErr: ErrInvalidPageSize},
		{name: "no upper bound", max: 0, request: models.PageRequest{Page: 1, Size: 5000}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewWineValidator(tt.max).Validate(context.Background(), tt.request)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ---------------------------------------------------------------------------
// Create request
// ---------------------------------------------------------------------------

func TestValidate_CreateWineRequest(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *models.CreateWineRequest)
		wantErr error
		wantMsg string
	}{
		{name: "complete request", mutate: func(r *models.CreateWineRequest) {}},
		{
			name:    "missing name",
			mutate:  func(r *models.CreateWineRequest) { r.Name = nil },
			wantErr: ErrMissingField,
			wantMsg: "name",
		},
		{
			name:    "blank winery",
			mutate:  func(r *models.CreateWineRequest) { r.Winery = ptr(" \t") },
			wantErr: ErrBlankField,
			wantMsg: "winery",
		},
		{
			name:    "missing year",
			mutate:  func(r *models.CreateWineRequest) { r.Year = nil },
			wantErr: ErrMissingField,
			wantMsg: "year",
		},
		{
			name:    "missing score",
			mutate:  func(r *models.CreateWineRequest) { r.Score = nil },
			wantErr: ErrMissingField,
			wantMsg: "score",
		},
		{
			name:   "zero numbers are present values",
			mutate: func(r *models.CreateWineRequest) { r.Sugar = ptr(0.0) },
		},
		{
			name:    "negative year",
			mutate:  func(r *models.CreateWineRequest) { r.Year = ptr(-1) },
			wantErr: ErrInvalidWineYear,
		},
		{
			name:    "alcohol above 100",
			mutate:  func(r *models.CreateWineRequest) { r.Alcohol = ptr(120.0) },
			wantErr: ErrInvalidWinePercent,
			wantMsg: "alcohol",
		},
	}

	v := NewWineValidator(100)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validCreateRequest()
			tt.mutate(&r)

			err := v.Validate(context.Background(), r)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestValidate_CreateWineRequest_EmptyRequest(t *testing.T) {
	err := NewWineValidator(100).Validate(context.Background(), models.CreateWineRequest{}, FieldMandatory)
	assert.ErrorIs(t, err, ErrMissingField)

	assert.NoError(t, NewWineValidator(100).Validate(context.Background(), models.CreateWineRequest{}, FieldValues))
}
