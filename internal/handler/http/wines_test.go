// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/MKhiriev/go-wine-cellar/internal/app"
	"github.com/MKhiriev/go-wine-cellar/internal/config"
	"github.com/MKhiriev/go-wine-cellar/internal/logger"
	"github.com/MKhiriev/go-wine-cellar/internal/metrics"
	"github.com/MKhiriev/go-wine-cellar/internal/mock"
	"github.com/MKhiriev/go-wine-cellar/internal/query"
	"github.com/MKhiriev/go-wine-cellar/internal/service"
	"github.com/MKhiriev/go-wine-cellar/internal/validators"
	"github.com/MKhiriev/go-wine-cellar/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var wineID = uuid.MustParse("0190f3a4-7c6e-7b1a-9d51-6a3f1c2b4d5e")

func serve(h *Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

// ─────────────────────────────────────────────
// GET /api/wines/{id}
// ─────────────────────────────────────────────

func TestGetWine(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		h, deps := newTestHandler(t, config.StructuredConfig{})
		deps.wines.EXPECT().GetWine(gomock.Any(), wineID).Return(models.Wine{ID: wineID, Name: "Barolo"}, nil)

		rec := serve(h, http.MethodGet, "/api/wines/"+wineID.String(), "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

		var got models.Wine
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, wineID, got.ID)
		assert.Equal(t, "Barolo", got.Name)
	})

	t.Run("not found", func(t *testing.T) {
		h, deps := newTestHandler(t, config.StructuredConfig{})
		deps.wines.EXPECT().GetWine(gomock.Any(), wineID).Return(models.Wine{}, &service.NotFoundError{ID: wineID})

		rec := serve(h, http.MethodGet, "/api/wines/"+wineID.String(), "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, app.MsgWineNotFound, strings.TrimSpace(rec.Body.String()))
	})

	t.Run("malformed id", func(t *testing.T) {
		h, _ := newTestHandler(t, config.StructuredConfig{})

		rec := serve(h, http.MethodGet, "/api/wines/not-a-uuid", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, app.MsgInvalidWineID, strings.TrimSpace(rec.Body.String()))
	})

	t.Run("unexpected failure", func(t *testing.T) {
		h, deps := newTestHandler(t, config.StructuredConfig{})
		deps.wines.EXPECT().GetWine(gomock.Any(), wineID).Return(models.Wine{}, assert.AnError)

		rec := serve(h, http.MethodGet, "/api/wines/"+wineID.String(), "")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, app.MsgInternalServerError, strings.TrimSpace(rec.Body.String()))
	})
}

// ─────────────────────────────────────────────
// GET /api/wines
// ─────────────────────────────────────────────

func TestListWines(t *testing.T) {
	t.Run("passes criteria and page request", func(t *testing.T) {
		h, deps := newTestHandler(t, config.StructuredConfig{})

		wantCriteria := &models.SearchCriteria{
			Color:    ptr("red"),
			Year:     ptr(2016),
			MinScore: ptr(90.0),
		}
		wantPage := models.PageRequest{
			Page: 2,
			Size: 5,
			Sort: models.SortSpec{Field: "score", Direction: models.SortDescending},
		}
		result := models.PageResult[models.Wine]{
			Content:       []models.Wine{{ID: wineID, Name: "Barolo"}},
			CurrentPage:   2,
			TotalPages:    3,
			TotalElements: 11,
			Size:          5,
		}
		deps.wines.EXPECT().ListWines(gomock.Any(), wantCriteria, wantPage).Return(result, nil)

		q := url.Values{}
		q.Set("color", "red")
		q.Set("year", "2016")
		q.Set("minScore", "90")
		q.Set("pageNo", "2")
		q.Set("pageSize", "5")
		q.Set("sortBy", "score")
		q.Set("sortOrder", "desc")

		rec := serve(h, http.MethodGet, "/api/wines?"+q.Encode(), "")

		require.Equal(t, http.StatusOK, rec.Code)
		var got models.PageResult[models.Wine]
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, result, got)
	})

	t.Run("no parameters uses listing defaults", func(t *testing.T) {
		h, deps := newTestHandler(t, config.StructuredConfig{})
		deps.wines.EXPECT().
			ListWines(gomock.Any(), &models.SearchCriteria{}, models.NewPageRequest(models.DefaultPageSize)).
			Return(models.PageResult[models.Wine]{Content: []models.Wine{}}, nil)

		rec := serve(h, http.MethodGet, "/api/wines", "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("configured default page size", func(t *testing.T) {
		h, deps := newTestHandler(t, config.StructuredConfig{App: config.App{DefaultPageSize: 24}})
		deps.wines.EXPECT().
			ListWines(gomock.Any(), gomock.Any(), models.NewPageRequest(24)).
			Return(models.PageResult[models.Wine]{}, nil)

		rec := serve(h, http.MethodGet, "/api/wines", "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("explicit zero page is passed through", func(t *testing.T) {
		h, deps := newTestHandler(t, config.StructuredConfig{})
		want := models.NewPageRequest(models.DefaultPageSize)
		want.Page = 0
		deps.wines.EXPECT().
			ListWines(gomock.Any(), gomock.Any(), want).
			Return(models.PageResult[models.Wine]{}, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrInvalidPage))

		rec := serve(h, http.MethodGet, "/api/wines?pageNo=0", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, app.MsgInvalidPage, strings.TrimSpace(rec.Body.String()))
	})

	t.Run("sort order without field sorts by name", func(t *testing.T) {
		h, deps := newTestHandler(t, config.StructuredConfig{})
		deps.wines.EXPECT().
			ListWines(gomock.Any(), gomock.Any(), models.PageRequest{
				Page: models.DefaultPage,
				Size: models.DefaultPageSize,
				Sort: models.SortSpec{Field: models.DefaultSortField, Direction: models.SortDescending},
			}).
			Return(models.PageResult[models.Wine]{}, nil)

		rec := serve(h, http.MethodGet, "/api/wines?sortOrder=DESC", "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	tests := []struct {
		name        string
		query       string
		serviceErr  error
		wantMessage string
	}{
		{name: "malformed year", query: "year=old", wantMessage: app.MsgInvalidDataProvided},
		{name: "malformed score", query: "minScore=high", wantMessage: app.MsgInvalidDataProvided},
		{name: "nan score", query: "maxScore=NaN", wantMessage: app.MsgInvalidDataProvided},
		{name: "malformed page", query: "pageNo=first", wantMessage: app.MsgInvalidDataProvided},
		{name: "bad sort order", query: "sortOrder=sideways", wantMessage: app.MsgInvalidSortDirection},
		{
			name:        "bad sort field",
			query:       "sortBy=colour",
			serviceErr:  fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, query.ErrInvalidSortField),
			wantMessage: app.MsgInvalidSortField,
		},
		{
			name:        "criteria out of range",
			query:       "year=1800",
			serviceErr:  fmt.Errorf("%w: %w: %w", service.ErrInvalidDataProvided, validators.ErrInvalidCriteriaRange, validators.ErrInvalidYear),
			wantMessage: app.MsgInvalidCriteriaRange,
		},
		{
			name:        "page size too large",
			query:       "pageSize=1000",
			serviceErr:  fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrInvalidPageSize),
			wantMessage: app.MsgInvalidPage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, deps := newTestHandler(t, config.StructuredConfig{})
			if tt.serviceErr != nil {
				deps.wines.EXPECT().ListWines(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(models.PageResult[models.Wine]{}, tt.serviceErr)
			}

			rec := serve(h, http.MethodGet, "/api/wines?"+tt.query, "")

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.wantMessage, strings.TrimSpace(rec.Body.String()))
		})
	}
}

func TestListWines_ZeroPagingIsRejected(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{name: "zero page", query: "pageNo=0"},
		{name: "zero page size", query: "pageSize=0"},
		{name: "zero page and size", query: "pageNo=0&pageSize=0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			inner := mock.NewMockWineService(ctrl)
			services := &service.Services{
				WineService: service.NewWineValidationService(config.App{MaxPageSize: 50}).Wrap(inner),
			}
			h := NewHandler(services, metrics.New(), config.StructuredConfig{}, logger.Nop())

			rec := serve(h, http.MethodGet, "/api/wines?"+tt.query, "")

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, app.MsgInvalidPage, strings.TrimSpace(rec.Body.String()))
		})
	}
}

// ─────────────────────────────────────────────
// POST /api/wines
// ─────────────────────────────────────────────

func TestCreateWine(t *testing.T) {
	body := `{"name":"Barolo","year":2016,"color":"red","state":"still","winery":"Vietti",
		"kind":"nebbiolo","sugar":0.5,"alcohol":14,"country":"Italy","region":"Piedmont",
		"score":95,"description":"tar and roses","picture":"barolo.png"}`

	t.Run("created", func(t *testing.T) {
		h, deps := newTestHandler(t, config.StructuredConfig{})
		deps.wines.EXPECT().
			CreateWine(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, req models.CreateWineRequest) (models.Wine, error) {
				wine := req.ToWine()
				wine.ID = wineID
				return wine, nil
			})

		rec := serve(h, http.MethodPost, "/api/wines", body)

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "/api/wines/"+wineID.String(), rec.Header().Get("Location"))

		var got models.Wine
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "Barolo", got.Name)
		assert.Equal(t, 95.0, got.Score)
	})

	t.Run("missing field", func(t *testing.T) {
		h, deps := newTestHandler(t, config.StructuredConfig{})
		deps.wines.EXPECT().CreateWine(gomock.Any(), gomock.Any()).
			Return(models.Wine{}, fmt.Errorf("%w: %w", service.ErrMissingMandatoryField, validators.ErrMissingField))

		rec := serve(h, http.MethodPost, "/api/wines", `{"name":"Barolo"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, app.MsgMissingMandatoryField, strings.TrimSpace(rec.Body.String()))
	})

	for name, payload := range map[string]string{
		"malformed json": `{"name":`,
		"unknown field":  `{"grape":"nebbiolo"}`,
		"empty body":     "",
	} {
		t.Run(name, func(t *testing.T) {
			h, _ := newTestHandler(t, config.StructuredConfig{})

			rec := serve(h, http.MethodPost, "/api/wines", payload)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, app.MsgInvalidDataProvided, strings.TrimSpace(rec.Body.String()))
		})
	}
}

// ─────────────────────────────────────────────
// PATCH /api/wines/{id}
// ─────────────────────────────────────────────

func TestUpdateWine(t *testing.T) {
	t.Run("updated", func(t *testing.T) {
		h, deps := newTestHandler(t, config.StructuredConfig{})
		deps.wines.EXPECT().
			UpdateWine(gomock.Any(), wineID, models.WineUpdate{Score: ptr(97.0)}).
			Return(models.Wine{ID: wineID, Name: "Barolo", Score: 97}, nil)

		rec := serve(h, http.MethodPatch, "/api/wines/"+wineID.String(), `{"score":97}`)

		require.Equal(t, http.StatusOK, rec.Code)
		var got models.Wine
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, 97.0, got.Score)
	})

	t.Run("not found", func(t *testing.T) {
		h, deps := newTestHandler(t, config.StructuredConfig{})
		deps.wines.EXPECT().UpdateWine(gomock.Any(), wineID, gomock.Any()).
			Return(models.Wine{}, &service.NotFoundError{ID: wineID})

		rec := serve(h, http.MethodPatch, "/api/wines/"+wineID.String(), `{"score":97}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		h, _ := newTestHandler(t, config.StructuredConfig{})

		rec := serve(h, http.MethodPatch, "/api/wines/42", `{"score":97}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

// ─────────────────────────────────────────────
// DELETE /api/wines/{id}
// ─────────────────────────────────────────────

func TestDeleteWine(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		h, deps := newTestHandler(t, config.StructuredConfig{})
		deps.wines.EXPECT().DeleteWine(gomock.Any(), wineID).Return(int64(1), nil)

		rec := serve(h, http.MethodDelete, "/api/wines/"+wineID.String(), "")

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("not found", func(t *testing.T) {
		h, deps := newTestHandler(t, config.StructuredConfig{})
		deps.wines.EXPECT().DeleteWine(gomock.Any(), wineID).Return(int64(0), &service.NotFoundError{ID: wineID})

		rec := serve(h, http.MethodDelete, "/api/wines/"+wineID.String(), "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

// ─────────────────────────────────────────────
// version, metrics and unknown methods
// ─────────────────────────────────────────────

func TestGetServerVersion(t *testing.T) {
	h, deps := newTestHandler(t, config.StructuredConfig{})
	deps.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("v1.4.0")

	rec := serve(h, http.MethodGet, "/api/version/", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
	assert.Equal(t, "v1.4.0", rec.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	h, deps := newTestHandler(t, config.StructuredConfig{})
	deps.wines.EXPECT().GetWine(gomock.Any(), wineID).Return(models.Wine{ID: wineID}, nil)

	router := h.Init()
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/wines/"+wineID.String(), nil))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `winecellar_requests_total{route="/api/wines/{id}",status="200",transport="http"} 1`)
}

func TestUnknownMethodIsNotFound(t *testing.T) {
	h, _ := newTestHandler(t, config.StructuredConfig{})

	for _, target := range []string{"/api/wines", "/api/wines/" + wineID.String()} {
		rec := serve(h, http.MethodPut, target, "")
		assert.Equal(t, http.StatusNotFound, rec.Code, target)
	}
}
