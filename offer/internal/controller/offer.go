package controller

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/madhuraks/ecobazaar/internal/constants"
	inErrors "github.com/madhuraks/ecobazaar/internal/errors"
	inHttp "github.com/madhuraks/ecobazaar/internal/http"
	inOtel "github.com/madhuraks/ecobazaar/internal/otel"
	"github.com/madhuraks/ecobazaar/offer/internal/otel"
	"github.com/madhuraks/ecobazaar/offer/internal/service"
)

type OfferController struct {
	service service.OfferService
}

func AttachOfferController(mux *mux.Router, service service.OfferService) {
	controller := OfferController{service: service}

	router := mux.PathPrefix("/offers").Subrouter()
	router.HandleFunc("", controller.FindStores).Methods(http.MethodGet)
	router.HandleFunc("/{storeId}", controller.FindStoreById).Methods(http.MethodGet)
	router.HandleFunc("/{storeId}/links", controller.FindStoreLinks).Methods(http.MethodGet)
}

func (s *OfferController) FindStores(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "OfferController FindStores")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(constants.KEY_TAG, "OfferController FindStores").
		Logger()

	logger = logger.With().Str(constants.KEY_PROCESS, "validating radius").Logger()
	logger.Info().Msg("validating radius")
	radiusKm := service.DefaultRadiusKm
	if raw := r.URL.Query().Get("radius"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			err = fmt.Errorf("failed validating radius=%s with error=%w", raw, err)
			inOtel.RecordError(err, span)
			logger.Error().Err(err).Msg(err.Error())
			inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
				"status":     "failed",
				"statusCode": http.StatusBadRequest,
				"message":    err.Error(),
			})
			return
		}
		radiusKm = parsed
	}
	logger.Info().Msg("validated radius")

	logger = logger.With().Str(constants.KEY_PROCESS, "finding stores").Logger()
	logger.Info().Msg("finding stores")
	c = logger.WithContext(c)
	stores, err := s.service.FindStores(c, radiusKm)
	if err != nil {
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		statusCode := http.StatusInternalServerError
		if errors.Is(err, inErrors.ErrInvalidRadius) {
			statusCode = http.StatusBadRequest
		}
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": statusCode,
			"message":    err.Error(),
		})
		return
	}
	logger.Info().Msg("found stores")

	inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    "found stores",
		"data": map[string]interface{}{
			"stores": stores,
		},
	})
}

func (s *OfferController) FindStoreById(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "OfferController FindStoreById")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(constants.KEY_TAG, "OfferController FindStoreById").
		Logger()

	storeId, ok := s.parseStoreId(c, w, r, logger)
	if !ok {
		return
	}

	logger = logger.With().Str(constants.KEY_PROCESS, "finding store").Logger()
	logger.Info().Msg("finding store")
	c = logger.WithContext(c)
	store, err := s.service.FindStoreById(c, storeId)
	if err != nil {
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusNotFound,
			"message":    fmt.Sprintf("store with id=%d not found", storeId),
		})
		return
	}
	logger.Info().Msg("found store")

	inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    "found store",
		"data": map[string]interface{}{
			"store": store,
		},
	})
}

func (s *OfferController) FindStoreLinks(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "OfferController FindStoreLinks")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(constants.KEY_TAG, "OfferController FindStoreLinks").
		Logger()

	storeId, ok := s.parseStoreId(c, w, r, logger)
	if !ok {
		return
	}

	logger = logger.With().Str(constants.KEY_PROCESS, "building store links").Logger()
	logger.Info().Msg("building store links")
	c = logger.WithContext(c)
	links, err := s.service.FindStoreLinks(c, storeId)
	if err != nil {
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusNotFound,
			"message":    fmt.Sprintf("store with id=%d not found", storeId),
		})
		return
	}
	logger.Info().Msg("built store links")

	inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    "built store links",
		"data": map[string]interface{}{
			"links": links,
		},
	})
}

func (s *OfferController) parseStoreId(
	c context.Context,
	w http.ResponseWriter,
	r *http.Request,
	logger zerolog.Logger,
) (int32, bool) {
	pathValues := mux.Vars(r)
	storeId, err := strconv.ParseInt(pathValues["storeId"], 10, 32)
	if err != nil {
		err = fmt.Errorf("failed validating storeId=%s with error=%w", pathValues["storeId"], err)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusBadRequest,
			"message":    err.Error(),
		})
		return 0, false
	}
	return int32(storeId), true
}
