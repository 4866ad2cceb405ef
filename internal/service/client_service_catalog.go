package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-wine-cellar/internal/adapter"
	"github.com/MKhiriev/go-wine-cellar/internal/logger"
	"github.com/MKhiriev/go-wine-cellar/models"
	"github.com/google/uuid"
)

// tokenRefreshMargin is how long before expiry a minted token is replaced.
const tokenRefreshMargin = 30 * time.Second

type clientCatalogService struct {
	adapter adapter.ServerAdapter

	// authService is nil when the client has no sign key; writes then go out
	// unsigned.
	authService AuthService
	operator    string

	mu        sync.Mutex
	expiresAt time.Time

	now    func() time.Time
	logger *logger.Logger
}

// NewClientCatalogService constructs a ClientCatalogService over
// serverAdapter. A nil authService disables token minting.
func NewClientCatalogService(serverAdapter adapter.ServerAdapter, authService AuthService, operator string, logger *logger.Logger) ClientCatalogService {
	return &clientCatalogService{
		adapter:     serverAdapter,
		authService: authService,
		operator:    operator,
		now:         time.Now,
		logger:      logger,
	}
}

func (c *clientCatalogService) Browse(ctx context.Context, criteria models.SearchCriteria, pageRequest models.PageRequest) (models.PageResult[models.Wine], error) {
	page, err := c.adapter.ListWines(ctx, criteria, pageRequest)
	if err != nil {
		c.logger.Err(err).Str("func", "clientCatalogService.Browse").Msg("error listing wines")
		return models.PageResult[models.Wine]{}, mapAdapterError(err, uuid.Nil)
	}

	return page, nil
}

func (c *clientCatalogService) Get(ctx context.Context, id uuid.UUID) (models.Wine, error) {
	wine, err := c.adapter.GetWine(ctx, id)
	if err != nil {
		c.logger.Err(err).Str("func", "clientCatalogService.Get").Stringer("id", id).Msg("error getting wine")
		return models.Wine{}, mapAdapterError(err, id)
	}

	return wine, nil
}

func (c *clientCatalogService) Create(ctx context.Context, request models.CreateWineRequest) (models.Wine, error) {
	if err := c.ensureToken(ctx); err != nil {
		return models.Wine{}, err
	}

	wine, err := c.adapter.CreateWine(ctx, request)
	if err != nil {
		c.logger.Err(err).Str("func", "clientCatalogService.Create").Msg("error creating wine")
		return models.Wine{}, mapAdapterError(err, uuid.Nil)
	}

	return wine, nil
}

func (c *clientCatalogService) Update(ctx context.Context, id uuid.UUID, update models.WineUpdate) (models.Wine, error) {
	if err := c.ensureToken(ctx); err != nil {
		return models.Wine{}, err
	}

	wine, err := c.adapter.UpdateWine(ctx, id, update)
	if err != nil {
		c.logger.Err(err).Str("func", "clientCatalogService.Update").Stringer("id", id).Msg("error updating wine")
		return models.Wine{}, mapAdapterError(err, id)
	}

	return wine, nil
}

func (c *clientCatalogService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := c.ensureToken(ctx); err != nil {
		return err
	}

	if err := c.adapter.DeleteWine(ctx, id); err != nil {
		c.logger.Err(err).Str("func", "clientCatalogService.Delete").Stringer("id", id).Msg("error deleting wine")
		return mapAdapterError(err, id)
	}

	return nil
}

func (c *clientCatalogService) ServerVersion(ctx context.Context) (string, error) {
	version, err := c.adapter.GetVersion(ctx)
	if err != nil {
		return "", mapAdapterError(err, uuid.Nil)
	}

	return version, nil
}

// ensureToken mints a new token when there is none or the current one is
// about to expire.
func (c *clientCatalogService) ensureToken(ctx context.Context) error {
	if c.authService == nil {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.adapter.Token() != "" && c.now().Add(tokenRefreshMargin).Before(c.expiresAt) {
		return nil
	}

	token, err := c.authService.CreateToken(ctx, c.operator)
	if err != nil {
		return fmt.Errorf("error signing catalog request: %w", err)
	}

	c.adapter.SetToken(token.SignedString)
	if token.ExpiresAt != nil {
		c.expiresAt = token.ExpiresAt.Time
	}

	return nil
}
