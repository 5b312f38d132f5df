package webhook

import (
	"context"

	"sheetcut_backend/internal/config"
	"sheetcut_backend/platform/apperr"
	"sheetcut_backend/platform/logger"

	"golang.org/x/sync/errgroup"
)

// CatalogDeleter removes products from the remote catalog.
type CatalogDeleter interface {
	DeleteProduct(ctx context.Context, productID string) error
}

// maxParallelDeletes bounds the fan-out against the remote catalog API.
const maxParallelDeletes = 4

// DeletionOutcome records the result for one deletion target.
type DeletionOutcome struct {
	ProductID string `json:"productId"`
	Deleted   bool   `json:"deleted"`
	Error     string `json:"error,omitempty"`
}

// Result is the reconciliation report returned for every processed event.
type Result struct {
	OK        bool              `json:"ok"`
	EventType *string           `json:"eventType"`
	Count     int               `json:"count"`
	Results   []DeletionOutcome `json:"results"`
}

// Service reconciles order events against the remote catalog by deleting the
// one-off products referenced by the event's line items.
type Service struct {
	cfg     *config.Config
	catalog CatalogDeleter
	log     *logger.Logger
}

// NewService creates a new webhook reconciliation service.
func NewService(cfg *config.Config, catalog CatalogDeleter, log *logger.Logger) *Service {
	return &Service{cfg: cfg, catalog: catalog, log: log}
}

// Reconcile extracts the deletion targets from an order-event payload and
// issues one delete per unique product ID. Deletions target distinct remote
// products, so they fan out with bounded parallelism and each failure is
// captured in that target's outcome without affecting the rest.
func (s *Service) Reconcile(ctx context.Context, payload map[string]any, secret string) (*Result, error) {
	if !s.cfg.StoreConfigured() {
		return nil, apperr.Config("Server not configured")
	}
	if s.cfg.WebhookSecret != "" && secret != s.cfg.WebhookSecret {
		return nil, apperr.Forbidden("Invalid webhook secret")
	}

	items := ExtractItems(payload)
	targets := CollectTargets(items)

	results := make([]DeletionOutcome, len(targets))
	group := new(errgroup.Group)
	group.SetLimit(maxParallelDeletes)
	for i, id := range targets {
		i, id := i, id
		group.Go(func() error {
			if err := s.catalog.DeleteProduct(ctx, id); err != nil {
				s.log.UpstreamError("delete product", err)
				results[i] = DeletionOutcome{ProductID: id, Deleted: false, Error: err.Error()}
				return nil
			}
			results[i] = DeletionOutcome{ProductID: id, Deleted: true}
			return nil
		})
	}
	_ = group.Wait()

	eventType := extractEventType(payload)
	s.log.Info("webhook reconciled",
		"event_type", stringOrEmpty(eventType),
		"items", len(items),
		"targets", len(targets),
	)

	return &Result{
		OK:        true,
		EventType: eventType,
		Count:     len(targets),
		Results:   results,
	}, nil
}

func extractEventType(payload map[string]any) *string {
	if eventType, ok := payload["eventType"].(string); ok && eventType != "" {
		return &eventType
	}
	return nil
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
