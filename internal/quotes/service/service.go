// Package service implements the quote calculation and catalog create path.
package service

import (
	"context"
	"math"
	"regexp"
	"strings"
	"time"

	"sheetcut_backend/internal/config"
	"sheetcut_backend/internal/ecwid"
	"sheetcut_backend/internal/quotes/transport"
	"sheetcut_backend/platform/apperr"
	"sheetcut_backend/platform/logger"
	"sheetcut_backend/platform/validator"
)

// CatalogCreator creates products in the remote catalog.
type CatalogCreator interface {
	CreateProduct(ctx context.Context, product ecwid.NewProduct) (int64, error)
}

// baseSkuPattern restricts base SKUs to the single 1210mm-wide panel family.
// The \b keeps WIDTH-12100 and friends out while allowing suffixes like
// WIDTH-1210-X.
var baseSkuPattern = regexp.MustCompile(`^WIDTH-1210\b`)

// Service handles quote calculation and remote catalog entry creation.
type Service struct {
	cfg     *config.Config
	catalog CatalogCreator
	val     *validator.Validator
	log     *logger.Logger
	now     func() time.Time
}

// New creates a new quotes service.
func New(cfg *config.Config, catalog CatalogCreator, val *validator.Validator, log *logger.Logger) *Service {
	return &Service{
		cfg:     cfg,
		catalog: catalog,
		val:     val,
		log:     log,
		now:     time.Now,
	}
}

// CreateQuote validates the request, computes the price breakdown and creates
// the corresponding one-off product in the remote catalog. Checks run in a
// fixed order and the first failure wins; the create call itself is a single
// attempt with no idempotency key.
func (s *Service) CreateQuote(ctx context.Context, req transport.QuoteRequest) (*transport.QuoteResponse, error) {
	if !s.cfg.StoreConfigured() {
		return nil, apperr.Config("Server not configured")
	}

	lengthMm, ok := wholeMillimeters(req.LengthMm)
	if !ok || lengthMm < 1000 || lengthMm > 12000 {
		return nil, apperr.Validation("Length must be 1000..12000 mm")
	}

	if err := s.val.Var(req.Thickness, "required,oneof=0.5 0.6 0.7"); err != nil {
		return nil, apperr.Validation("Thickness must be 0.5/0.6/0.7")
	}

	baseSku := strings.ToUpper(req.BaseSku)
	if baseSku != "" && !baseSkuPattern.MatchString(baseSku) {
		return nil, apperr.Validation("Base SKU not allowed")
	}

	calc := Calculate(lengthMm, req.Thickness)
	sku := BuildSKU(baseSku, lengthMm, req.Thickness, s.now())

	product := ecwid.NewProduct{
		Name:            BuildName(baseSku, lengthMm, req.Thickness),
		Price:           calc.Final,
		SKU:             sku,
		Enabled:         true,
		ShowOnFrontpage: 0,
		TrackQuantity:   false,
		Description:     BuildDescription(calc),
		Attributes: []ecwid.Attribute{
			{Name: ecwid.MarkerAttribute, Value: "true"},
		},
	}

	productID, err := s.catalog.CreateProduct(ctx, product)
	if err != nil {
		s.log.UpstreamError("create product", err)
		return nil, err
	}

	s.log.Info("quote accepted",
		"product_id", productID,
		"sku", sku,
		"length_mm", lengthMm,
		"thickness", req.Thickness,
		"price", calc.Final,
	)

	return &transport.QuoteResponse{
		OK:        true,
		ProductID: productID,
		Price:     calc.Final,
		Area:      calc.Area,
		SKU:       sku,
	}, nil
}

// wholeMillimeters accepts the JSON number only when it is a finite whole
// value; lengths are specified in whole millimeters.
func wholeMillimeters(v float64) (int, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	if v != math.Trunc(v) {
		return 0, false
	}
	return int(v), true
}
