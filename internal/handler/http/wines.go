// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"

	"github.com/MKhiriev/go-wine-cellar/internal/app"
	"github.com/MKhiriev/go-wine-cellar/internal/logger"
	"github.com/MKhiriev/go-wine-cellar/internal/utils"
	"github.com/MKhiriev/go-wine-cellar/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

const winesPath = "/api/wines"

func (h *Handler) getWine(w http.ResponseWriter, r *http.Request) {
	id, ok := wineIDFromPath(w, r)
	if !ok {
		return
	}

	wine, err := h.services.WineService.GetWine(r.Context(), id)
	if err != nil {
		writeError(w, r, err, "error getting wine")
		return
	}

	utils.WriteJSON(w, wine, http.StatusOK)
}

func (h *Handler) listWines(w http.ResponseWriter, r *http.Request) {
	criteria, pageRequest, err := parseListQuery(r.URL.Query(), h.defaultPageSize)
	if err != nil {
		writeError(w, r, err, "error parsing listing query")
		return
	}

	page, err := h.services.WineService.ListWines(r.Context(), &criteria, pageRequest)
	if err != nil {
		writeError(w, r, err, "error listing wines")
		return
	}

	utils.WriteJSON(w, page, http.StatusOK)
}

func (h *Handler) createWine(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var request models.CreateWineRequest
	if err := utils.ReadJSON(r, &request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	wine, err := h.services.WineService.CreateWine(r.Context(), request)
	if err != nil {
		writeError(w, r, err, "error creating wine")
		return
	}

	operator, _ := utils.GetOperatorFromContext(r.Context())
	log.Info().Str("id", wine.ID.String()).Str("operator", operator).Msg("wine created")

	w.Header().Set("Location", winesPath+"/"+wine.ID.String())
	utils.WriteJSON(w, wine, http.StatusCreated)
}

func (h *Handler) updateWine(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, ok := wineIDFromPath(w, r)
	if !ok {
		return
	}

	var update models.WineUpdate
	if err := utils.ReadJSON(r, &update); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	wine, err := h.services.WineService.UpdateWine(r.Context(), id, update)
	if err != nil {
		writeError(w, r, err, "error updating wine")
		return
	}

	operator, _ := utils.GetOperatorFromContext(r.Context())
	log.Info().Str("id", id.String()).Str("operator", operator).Msg("wine updated")

	utils.WriteJSON(w, wine, http.StatusOK)
}

func (h *Handler) deleteWine(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, ok := wineIDFromPath(w, r)
	if !ok {
		return
	}

	deleted, err := h.services.WineService.DeleteWine(r.Context(), id)
	if err != nil {
		writeError(w, r, err, "error deleting wine")
		return
	}

	operator, _ := utils.GetOperatorFromContext(r.Context())
	log.Info().Str("id", id.String()).Str("operator", operator).Int64("deleted", deleted).Msg("wine deleted")

	w.WriteHeader(http.StatusNoContent)
}

func wineIDFromPath(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("invalid wine id")
		http.Error(w, app.MsgInvalidWineID, http.StatusBadRequest)
		return uuid.Nil, false
	}
	return id, true
}

// parseListQuery reads the listing filters and the page request from the
// query string. Absent paging parameters take the listing defaults; present
// ones are passed on as given, so pageNo=0 reaches validation and fails there.
func parseListQuery(values url.Values, defaultPageSize int) (models.SearchCriteria, models.PageRequest, error) {
	var (
		criteria    models.SearchCriteria
		pageRequest = models.NewPageRequest(defaultPageSize)
		err         error
	)

	criteria.Name = textParam(values, "name")
	criteria.Color = textParam(values, "color")
	criteria.Winery = textParam(values, "winery")
	criteria.Kind = textParam(values, "kind")
	criteria.Country = textParam(values, "country")
	criteria.Region = textParam(values, "region")

	if criteria.Year, err = numberParam(values, "year", strconv.Atoi); err != nil {
		return criteria, pageRequest, err
	}
	if criteria.MinScore, err = numberParam(values, "minScore", parseFloat); err != nil {
		return criteria, pageRequest, err
	}
	if criteria.MaxScore, err = numberParam(values, "maxScore", parseFloat); err != nil {
		return criteria, pageRequest, err
	}
	if criteria.MinAlcohol, err = numberParam(values, "minAlcohol", parseFloat); err != nil {
		return criteria, pageRequest, err
	}
	if criteria.MaxAlcohol, err = numberParam(values, "maxAlcohol", parseFloat); err != nil {
		return criteria, pageRequest, err
	}

	page, err := numberParam(values, "pageNo", strconv.Atoi)
	if err != nil {
		return criteria, pageRequest, err
	}
	if page != nil {
		pageRequest.Page = *page
	}
	size, err := numberParam(values, "pageSize", strconv.Atoi)
	if err != nil {
		return criteria, pageRequest, err
	}
	if size != nil {
		pageRequest.Size = *size
	}

	if field := values.Get("sortBy"); field != "" {
		pageRequest.Sort.Field = field
	}
	if order := values.Get("sortOrder"); order != "" {
		direction, err := models.ParseSortDirection(order)
		if err != nil {
			return criteria, pageRequest, err
		}
		pageRequest.Sort.Direction = direction
	}

	return criteria, pageRequest, nil
}

func textParam(values url.Values, key string) *string {
	if !values.Has(key) {
		return nil
	}
	v := values.Get(key)
	return &v
}

func numberParam[T int | float64](values url.Values, key string, parse func(string) (T, error)) (*T, error) {
	raw := values.Get(key)
	if raw == "" {
		return nil, nil
	}
	v, err := parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s=%q", ErrInvalidQueryParameter, key, raw)
	}
	return &v, nil
}

func parseFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, strconv.ErrSyntax
	}
	return v, nil
}
