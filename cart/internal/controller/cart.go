package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/madhuraks/ecobazaar/cart/internal/otel"
	"github.com/madhuraks/ecobazaar/cart/internal/service"
	"github.com/madhuraks/ecobazaar/cart/pkg/request"
	"github.com/madhuraks/ecobazaar/internal/constants"
	inErrors "github.com/madhuraks/ecobazaar/internal/errors"
	inHttp "github.com/madhuraks/ecobazaar/internal/http"
	inOtel "github.com/madhuraks/ecobazaar/internal/otel"
)

type CartController struct {
	service service.CartService
}

func AttachCartController(mux *mux.Router, service service.CartService) {
	controller := CartController{service: service}

	router := mux.PathPrefix("/carts").Subrouter()
	router.HandleFunc("", controller.CreateCart).Methods(http.MethodPost)
	router.HandleFunc("/{cartCode}", controller.FindCart).Methods(http.MethodGet)
	router.HandleFunc("/{cartCode}/join", controller.JoinCart).Methods(http.MethodPost)
	router.HandleFunc("/{cartCode}/members", controller.Members).Methods(http.MethodGet)
	router.HandleFunc("/{cartCode}/share", controller.Share).Methods(http.MethodGet)
	router.HandleFunc("/{cartCode}/watch", controller.Watch).Methods(http.MethodGet)
	router.HandleFunc("/{cartCode}/items", controller.AddItem).Methods(http.MethodPost)
	router.HandleFunc("/{cartCode}/items/{cartItemId}", controller.UpdateQuantity).
		Methods(http.MethodPut)
	router.HandleFunc("/{cartCode}/items/{cartItemId}", controller.RemoveItem).
		Methods(http.MethodDelete)
}

func statusCodeFromError(err error) int {
	switch {
	case errors.Is(err, inErrors.ErrCartNotFound),
		errors.Is(err, inErrors.ErrCartItemNotFound),
		errors.Is(err, inErrors.ErrProductNotFound):
		return http.StatusNotFound
	case errors.Is(err, inErrors.ErrInvalidQuantity):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *CartController) CreateCart(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "CartController CreateCart")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(constants.KEY_TAG, "CartController CreateCart").
		Logger()

	logger = logger.With().Str(constants.KEY_PROCESS, "creating cart").Logger()
	logger.Info().Msg("creating cart")
	c = logger.WithContext(c)
	cart, err := s.service.CreateCart(c)
	if err != nil {
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusInternalServerError,
			"message":    err.Error(),
		})
		return
	}
	logger.Info().Str(constants.KEY_CART_CODE, cart.Code).Msg("created cart")

	inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusCreated,
		"message":    "created cart",
		"data": map[string]interface{}{
			"cart": cart,
		},
	})
}

func (s *CartController) FindCart(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "CartController FindCart")
	defer span.End()

	cartCode := mux.Vars(r)["cartCode"]
	logger := zerolog.Ctx(c).
		With().
		Str(constants.KEY_TAG, "CartController FindCart").
		Str(constants.KEY_CART_CODE, cartCode).
		Logger()

	logger = logger.With().Str(constants.KEY_PROCESS, "finding cart").Logger()
	logger.Info().Msg("finding cart")
	c = logger.WithContext(c)
	cart, err := s.service.FindCart(c, cartCode)
	if err != nil {
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": statusCodeFromError(err),
			"message":    err.Error(),
		})
		return
	}
	logger.Info().Msg("found cart")

	inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    "found cart",
		"data": map[string]interface{}{
			"cart": cart,
		},
	})
}

func (s *CartController) JoinCart(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "CartController JoinCart")
	defer span.End()

	cartCode := mux.Vars(r)["cartCode"]
	logger := zerolog.Ctx(c).
		With().
		Str(constants.KEY_TAG, "CartController JoinCart").
		Str(constants.KEY_CART_CODE, cartCode).
		Logger()

	logger = logger.With().Str(constants.KEY_PROCESS, "joining cart").Logger()
	logger.Info().Msg("joining cart")
	c = logger.WithContext(c)
	cart, err := s.service.JoinCart(c, cartCode)
	if err != nil {
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": statusCodeFromError(err),
			"message":    err.Error(),
		})
		return
	}
	logger.Info().Msg("joined cart")

	inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    "joined cart",
		"data": map[string]interface{}{
			"cart": cart,
		},
	})
}

func (s *CartController) Members(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "CartController Members")
	defer span.End()

	cartCode := mux.Vars(r)["cartCode"]
	logger := zerolog.Ctx(c).
		With().
		Str(constants.KEY_TAG, "CartController Members").
		Str(constants.KEY_CART_CODE, cartCode).
		Logger()

	c = logger.WithContext(c)
	members, err := s.service.Members(c, cartCode)
	if err != nil {
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": statusCodeFromError(err),
			"message":    err.Error(),
		})
		return
	}

	inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    "found members",
		"data": map[string]interface{}{
			"members": members,
		},
	})
}

func (s *CartController) Share(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "CartController Share")
	defer span.End()

	cartCode := mux.Vars(r)["cartCode"]
	logger := zerolog.Ctx(c).
		With().
		Str(constants.KEY_TAG, "CartController Share").
		Str(constants.KEY_CART_CODE, cartCode).
		Logger()

	c = logger.WithContext(c)
	payload, err := s.service.Share(c, cartCode)
	if err != nil {
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": statusCodeFromError(err),
			"message":    err.Error(),
		})
		return
	}

	inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    "built share payload",
		"data": map[string]interface{}{
			"share": payload,
		},
	})
}

func (s *CartController) AddItem(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "CartController AddItem")
	defer span.End()

	cartCode := mux.Vars(r)["cartCode"]
	logger := zerolog.Ctx(c).
		With().
		Str(constants.KEY_TAG, "CartController AddItem").
		Str(constants.KEY_CART_CODE, cartCode).
		Logger()

	logger = logger.With().Str(constants.KEY_PROCESS, "decoding request body").Logger()
	logger.Info().Msg("decoding request body")
	reqBody := request.AddCartItem{}
	err := json.NewDecoder(r.Body).Decode(&reqBody)
	if err != nil {
		err = fmt.Errorf("failed decoding request body with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusBadRequest,
			"message":    err.Error(),
		})
		return
	}
	logger.Info().Msg("decoded request body")

	logger = logger.With().Str(constants.KEY_PROCESS, "validating request body").Logger()
	logger.Info().Msg("validating request body")
	err = validator.New(validator.WithRequiredStructEnabled()).StructCtx(c, reqBody)
	if err != nil {
		err = fmt.Errorf("failed validating request body with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusBadRequest,
			"message":    err.Error(),
		})
		return
	}
	logger.Info().Msg("validated request body")

	logger = logger.With().Str(constants.KEY_PROCESS, "adding cart item").Logger()
	logger.Info().Msg("adding cart item")
	c = logger.WithContext(c)
	item, err := s.service.AddItem(c, cartCode, reqBody)
	if err != nil {
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": statusCodeFromError(err),
			"message":    err.Error(),
		})
		return
	}
	logger.Info().Msg("added cart item")

	inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusCreated,
		"message":    "added cart item",
		"data": map[string]interface{}{
			"cartItem": item,
		},
	})
}

func (s *CartController) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "CartController UpdateQuantity")
	defer span.End()

	pathValues := mux.Vars(r)
	cartCode := pathValues["cartCode"]
	logger := zerolog.Ctx(c).
		With().
		Str(constants.KEY_TAG, "CartController UpdateQuantity").
		Str(constants.KEY_CART_CODE, cartCode).
		Logger()

	logger = logger.With().Str(constants.KEY_PROCESS, "validating cartItemId").Logger()
	logger.Info().Msg("validating cartItemId")
	cartItemId, err := uuid.Parse(pathValues["cartItemId"])
	if err != nil {
		err = fmt.Errorf(
			"failed validating cartItemId=%s with error=%w",
			pathValues["cartItemId"],
			err,
		)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusBadRequest,
			"message":    err.Error(),
		})
		return
	}
	logger.Info().Msg("validated cartItemId")

	logger = logger.With().Str(constants.KEY_PROCESS, "decoding request body").Logger()
	logger.Info().Msg("decoding request body")
	reqBody := request.UpdateCartItemQuantity{}
	err = json.NewDecoder(r.Body).Decode(&reqBody)
	if err != nil {
		err = fmt.Errorf("failed decoding request body with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusBadRequest,
			"message":    err.Error(),
		})
		return
	}
	logger.Info().Msg("decoded request body")

	logger = logger.With().Str(constants.KEY_PROCESS, "updating quantity").Logger()
	logger.Info().Msg("updating quantity")
	c = logger.WithContext(c)
	cart, err := s.service.UpdateQuantity(c, cartCode, cartItemId, reqBody.Quantity)
	if err != nil {
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": statusCodeFromError(err),
			"message":    err.Error(),
		})
		return
	}
	logger.Info().Msg("updated quantity")

	inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    "updated quantity",
		"data": map[string]interface{}{
			"cart": cart,
		},
	})
}

func (s *CartController) RemoveItem(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "CartController RemoveItem")
	defer span.End()

	pathValues := mux.Vars(r)
	cartCode := pathValues["cartCode"]
	logger := zerolog.Ctx(c).
		With().
		Str(constants.KEY_TAG, "CartController RemoveItem").
		Str(constants.KEY_CART_CODE, cartCode).
		Logger()

	logger = logger.With().Str(constants.KEY_PROCESS, "validating cartItemId").Logger()
	logger.Info().Msg("validating cartItemId")
	cartItemId, err := uuid.Parse(pathValues["cartItemId"])
	if err != nil {
		err = fmt.Errorf(
			"failed validating cartItemId=%s with error=%w",
			pathValues["cartItemId"],
			err,
		)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusBadRequest,
			"message":    err.Error(),
		})
		return
	}
	logger.Info().Msg("validated cartItemId")

	logger = logger.With().Str(constants.KEY_PROCESS, "removing cart item").Logger()
	logger.Info().Msg("removing cart item")
	c = logger.WithContext(c)
	cart, err := s.service.RemoveItem(c, cartCode, cartItemId)
	if err != nil {
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": statusCodeFromError(err),
			"message":    err.Error(),
		})
		return
	}
	logger.Info().Msg("removed cart item")

	inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    "removed cart item",
		"data": map[string]interface{}{
			"cart": cart,
		},
	})
}

func (s *CartController) Watch(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "CartController Watch")
	defer span.End()

	cartCode := mux.Vars(r)["cartCode"]
	logger := zerolog.Ctx(c).
		With().
		Str(constants.KEY_TAG, "CartController Watch").
		Str(constants.KEY_CART_CODE, cartCode).
		Logger()

	flusher, ok := w.(http.Flusher)
	if !ok {
		err := fmt.Errorf("failed streaming cart, response writer does not support flushing")
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusInternalServerError,
			"message":    err.Error(),
		})
		return
	}

	logger = logger.With().Str(constants.KEY_PROCESS, "watching cart").Logger()
	logger.Info().Msg("watching cart")
	c = logger.WithContext(c)
	events, err := s.service.Watch(c, cartCode)
	if err != nil {
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": statusCodeFromError(err),
			"message":    err.Error(),
		})
		return
	}

	w.Header().Set(inHttp.KEY_HEADER_CONTENT_TYPE, inHttp.VALUE_HEADER_EVENT_STREAM)
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	for {
		select {
		case <-c.Done():
			logger.Info().Msg("watcher disconnected")
			return
		case event, ok := <-events:
			if !ok {
				logger.Info().Msg("watch stream closed")
				return
			}
			payload, err := json.Marshal(event)
			if err != nil {
				err = fmt.Errorf("failed marshaling watch event with error=%w", err)
				inOtel.RecordError(err, span)
				logger.Error().Err(err).Msg(err.Error())
				continue
			}
			_, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Type, payload)
			if err != nil {
				err = fmt.Errorf("failed writing watch event with error=%w", err)
				inOtel.RecordError(err, span)
				logger.Error().Err(err).Msg(err.Error())
				return
			}
			flusher.Flush()
		}
	}
}
