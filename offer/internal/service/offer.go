package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/madhuraks/ecobazaar/internal/constants"
	inErrors "github.com/madhuraks/ecobazaar/internal/errors"
	inOtel "github.com/madhuraks/ecobazaar/internal/otel"
	"github.com/madhuraks/ecobazaar/offer/internal/otel"
	"github.com/madhuraks/ecobazaar/offer/pkg/response"
)

const DefaultRadiusKm = 5.0

type OfferService struct {
	stores []response.Store
}

func NewOfferService() OfferService {
	return OfferService{stores: nearbyStores}
}

func (s OfferService) FindStores(
	c context.Context,
	radiusKm float64,
) ([]response.Store, error) {
	c, span := otel.Tracer.Start(c, "OfferService FindStores")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(constants.KEY_TAG, "OfferService FindStores").
		Float64(constants.KEY_RADIUS, radiusKm).
		Logger()

	logger = logger.With().Str(constants.KEY_PROCESS, "validating radius").Logger()
	if radiusKm <= 0 {
		err := fmt.Errorf(
			"failed validating radius=%f with error=%w",
			radiusKm,
			inErrors.ErrInvalidRadius,
		)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return nil, err
	}
	logger.Info().Msg("validated radius")

	logger = logger.With().Str(constants.KEY_PROCESS, "filtering stores").Logger()
	stores := []response.Store{}
	for _, store := range s.stores {
		if store.DistanceKm <= radiusKm {
			stores = append(stores, store)
		}
	}
	sort.SliceStable(stores, func(i, j int) bool {
		return stores[i].DistanceKm < stores[j].DistanceKm
	})
	logger.Info().Int(constants.KEY_RESULT_COUNT, len(stores)).Msg("filtered stores")

	return stores, nil
}

func (s OfferService) FindStoreById(
	c context.Context,
	storeId int32,
) (response.Store, error) {
	c, span := otel.Tracer.Start(c, "OfferService FindStoreById")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(constants.KEY_TAG, "OfferService FindStoreById").
		Int32(constants.KEY_STORE_ID, storeId).
		Logger()

	for _, store := range s.stores {
		if store.ID == storeId {
			logger.Info().Msg("found store")
			return store, nil
		}
	}

	err := fmt.Errorf(
		"failed finding store with id=%d with error=%w",
		storeId,
		inErrors.ErrStoreNotFound,
	)
	inOtel.RecordError(err, span)
	logger.Error().Err(err).Msg(err.Error())
	return response.Store{}, err
}

func (s OfferService) FindStoreLinks(
	c context.Context,
	storeId int32,
) (response.StoreLinks, error) {
	c, span := otel.Tracer.Start(c, "OfferService FindStoreLinks")
	defer span.End()

	store, err := s.FindStoreById(c, storeId)
	if err != nil {
		inOtel.RecordError(err, span)
		return response.StoreLinks{}, err
	}
	return StoreLinks(store), nil
}
