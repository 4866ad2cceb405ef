package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/go-wine-cellar/internal/config"
	"github.com/MKhiriev/go-wine-cellar/internal/logger"
	"github.com/MKhiriev/go-wine-cellar/internal/utils"
	"github.com/MKhiriev/go-wine-cellar/models"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

const (
	winesPath   = "/api/wines"
	winePath    = "/api/wines/{id}"
	versionPath = "/api/version/"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with it and the request timeout.
//
// Returns ErrInvalidAddress if adapterCfg.HTTPAddress is empty or cannot be
// parsed as a valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout, logger),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. The token is whitespace-trimmed.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// GetWine implements [ServerAdapter] with GET /api/wines/{id}.
func (h *httpServerAdapter) GetWine(ctx context.Context, id uuid.UUID) (models.Wine, error) {
	var wine models.Wine

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", id.String()).
		SetResult(&wine).
		Get(winePath)
	if err != nil {
		return models.Wine{}, fmt.Errorf("%w: get wine: %w", ErrRequestFailed, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Wine{}, err
	}

	return wine, nil
}

// ListWines implements [ServerAdapter] with GET /api/wines. Unset criteria
// and page fields are left out of the query so the server applies its
// defaults.
func (h *httpServerAdapter) ListWines(ctx context.Context, criteria models.SearchCriteria, pageRequest models.PageRequest) (models.PageResult[models.Wine], error) {
	var page models.PageResult[models.Wine]

	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParamsFromValues(listQuery(criteria, pageRequest)).
		SetResult(&page).
		Get(winesPath)
	if err != nil {
		return models.PageResult[models.Wine]{}, fmt.Errorf("%w: list wines: %w", ErrRequestFailed, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PageResult[models.Wine]{}, err
	}

	if page.Content == nil {
		page.Content = []models.Wine{}
	}
	return page, nil
}

// CreateWine implements [ServerAdapter] with POST /api/wines.
func (h *httpServerAdapter) CreateWine(ctx context.Context, request models.CreateWineRequest) (models.Wine, error) {
	var wine models.Wine

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		SetResult(&wine).
		Post(winesPath)
	if err != nil {
		return models.Wine{}, fmt.Errorf("%w: create wine: %w", ErrRequestFailed, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Wine{}, err
	}

	return wine, nil
}

// UpdateWine implements [ServerAdapter] with PATCH /api/wines/{id}.
func (h *httpServerAdapter) UpdateWine(ctx context.Context, id uuid.UUID, update models.WineUpdate) (models.Wine, error) {
	var wine models.Wine

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", id.String()).
		SetBody(update).
		SetResult(&wine).
		Patch(winePath)
	if err != nil {
		return models.Wine{}, fmt.Errorf("%w: update wine: %w", ErrRequestFailed, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Wine{}, err
	}

	return wine, nil
}

// DeleteWine implements [ServerAdapter] with DELETE /api/wines/{id}.
func (h *httpServerAdapter) DeleteWine(ctx context.Context, id uuid.UUID) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", id.String()).
		Delete(winePath)
	if err != nil {
		return fmt.Errorf("%w: delete wine: %w", ErrRequestFailed, err)
	}

	return mapHTTPError(resp)
}

// GetVersion implements [ServerAdapter] with GET /api/version/.
func (h *httpServerAdapter) GetVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get(versionPath)
	if err != nil {
		return "", fmt.Errorf("%w: get version: %w", ErrRequestFailed, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(string(resp.Body())), nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

// listQuery encodes criteria and pageRequest with the parameter names of the
// listing endpoint.
func listQuery(criteria models.SearchCriteria, pageRequest models.PageRequest) url.Values {
	values := url.Values{}

	setString := func(key string, v *string) {
		if v != nil {
			values.Set(key, *v)
		}
	}
	setFloat := func(key string, v *float64) {
		if v != nil {
			values.Set(key, strconv.FormatFloat(*v, 'f', -1, 64))
		}
	}

	setString("name", criteria.Name)
	setString("color", criteria.Color)
	setString("winery", criteria.Winery)
	setString("kind", criteria.Kind)
	setString("country", criteria.Country)
	setString("region", criteria.Region)
	if criteria.Year != nil {
		values.Set("year", strconv.Itoa(*criteria.Year))
	}
	setFloat("minScore", criteria.MinScore)
	setFloat("maxScore", criteria.MaxScore)
	setFloat("minAlcohol", criteria.MinAlcohol)
	setFloat("maxAlcohol", criteria.MaxAlcohol)

	if pageRequest.Page > 0 {
		values.Set("pageNo", strconv.Itoa(pageRequest.Page))
	}
	if pageRequest.Size > 0 {
		values.Set("pageSize", strconv.Itoa(pageRequest.Size))
	}
	if pageRequest.Sort.Field != "" {
		values.Set("sortBy", pageRequest.Sort.Field)
		values.Set("sortOrder", pageRequest.Sort.Direction.String())
	}

	return values
}
