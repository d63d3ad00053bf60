package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/madhuraks/ecobazaar/catalog/internal/otel"
	"github.com/madhuraks/ecobazaar/catalog/pkg/request"
	"github.com/madhuraks/ecobazaar/catalog/pkg/response"
	"github.com/madhuraks/ecobazaar/internal/constants"
	inErrors "github.com/madhuraks/ecobazaar/internal/errors"
	inOtel "github.com/madhuraks/ecobazaar/internal/otel"
	"github.com/madhuraks/ecobazaar/internal/repository"
)

type CatalogService struct {
	products []response.Product
}

// NewCatalogService loads the full catalog once at startup. The table is
// seeded by migrations and read-only afterwards, so every request is served
// from memory.
func NewCatalogService(
	c context.Context,
	queries *repository.Queries,
) (*CatalogService, error) {
	c, span := otel.Tracer.Start(c, "NewCatalogService")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(constants.KEY_TAG, "NewCatalogService").
		Str(constants.KEY_PROCESS, "loading products").
		Logger()

	logger.Info().Msg("loading products")
	rows, err := queries.FindProducts(c)
	if err != nil {
		err = fmt.Errorf("failed loading products with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return nil, err
	}

	products := make([]response.Product, len(rows))
	for i, row := range rows {
		products[i] = row.Response()
	}
	logger.Info().Int(constants.KEY_ITEMS_COUNT, len(products)).Msg("loaded products")

	return &CatalogService{products: products}, nil
}

func (s *CatalogService) FindProducts(c context.Context) []response.Product {
	c, span := otel.Tracer.Start(c, "CatalogService FindProducts")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(constants.KEY_TAG, "CatalogService FindProducts").
		Logger()
	logger.Info().Int(constants.KEY_ITEMS_COUNT, len(s.products)).Msg("found products")

	return s.products
}

func (s *CatalogService) FindProductById(
	c context.Context,
	productId int32,
) (response.Product, error) {
	c, span := otel.Tracer.Start(c, "CatalogService FindProductById")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(constants.KEY_TAG, "CatalogService FindProductById").
		Int32(constants.KEY_PRODUCT_ID, productId).
		Str(constants.KEY_PROCESS, "finding product").
		Logger()

	logger.Info().Msg("finding product")
	for _, product := range s.products {
		if product.ID == productId {
			logger.Info().Msg("found product")
			return product, nil
		}
	}

	err := fmt.Errorf("failed finding product with id=%d with error=%w", productId, inErrors.ErrProductNotFound)
	inOtel.RecordError(err, span)
	logger.Error().Err(err).Msg(err.Error())
	return response.Product{}, err
}

func (s *CatalogService) SearchProducts(
	c context.Context,
	param request.SearchProducts,
) ([]response.Product, error) {
	c, span := otel.Tracer.Start(c, "CatalogService SearchProducts")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(constants.KEY_TAG, "CatalogService SearchProducts").
		Str(constants.KEY_QUERY, param.Query).
		Str(constants.KEY_LANGUAGE, param.Language).
		Logger()

	logger = logger.With().Str(constants.KEY_PROCESS, "validating maxBudget").Logger()
	if param.MaxBudget != nil {
		logger = logger.With().Str(constants.KEY_MAX_BUDGET, param.MaxBudget.String()).Logger()
		if param.MaxBudget.IsNegative() {
			err := fmt.Errorf(
				"failed validating maxBudget=%s with error=%w",
				param.MaxBudget.String(),
				inErrors.ErrInvalidBudget,
			)
			inOtel.RecordError(err, span)
			logger.Error().Err(err).Msg(err.Error())
			return nil, err
		}
	}
	logger.Info().Msg("validated maxBudget")

	logger = logger.With().Str(constants.KEY_PROCESS, "searching products").Logger()
	logger.Info().Msg("searching products")
	matched := Search(s.products, param.Query, param.MaxBudget)
	logger.Info().Int(constants.KEY_RESULT_COUNT, len(matched)).Msg("searched products")

	return matched, nil
}

func (s *CatalogService) SampleSearches(c context.Context) []response.SampleSearch {
	c, span := otel.Tracer.Start(c, "CatalogService SampleSearches")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(constants.KEY_TAG, "CatalogService SampleSearches").
		Logger()
	logger.Info().Int(constants.KEY_ITEMS_COUNT, len(sampleSearches)).Msg("found sample searches")

	return sampleSearches
}
