package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/madhuraks/ecobazaar/budget/internal/otel"
	"github.com/madhuraks/ecobazaar/budget/internal/service"
	"github.com/madhuraks/ecobazaar/budget/pkg/request"
	"github.com/madhuraks/ecobazaar/internal/constants"
	inErrors "github.com/madhuraks/ecobazaar/internal/errors"
	inHttp "github.com/madhuraks/ecobazaar/internal/http"
	inOtel "github.com/madhuraks/ecobazaar/internal/otel"
)

type BudgetController struct {
	service service.BudgetService
}

func AttachBudgetController(mux *mux.Router, service service.BudgetService) {
	controller := BudgetController{service: service}

	router := mux.PathPrefix("/budgets").Subrouter()
	router.HandleFunc("/{cartCode}", controller.FindBudget).Methods(http.MethodGet)
	router.HandleFunc("/{cartCode}", controller.SetBudget).Methods(http.MethodPut)
	router.HandleFunc("/{cartCode}/summary", controller.Summary).Methods(http.MethodGet)
}

func statusCodeFromError(err error) int {
	switch {
	case errors.Is(err, inErrors.ErrCartNotFound):
		return http.StatusNotFound
	case errors.Is(err, inErrors.ErrInvalidBudget):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *BudgetController) FindBudget(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "BudgetController FindBudget")
	defer span.End()

	cartCode := mux.Vars(r)["cartCode"]
	logger := zerolog.Ctx(c).
		With().
		Str(constants.KEY_TAG, "BudgetController FindBudget").
		Str(constants.KEY_CART_CODE, cartCode).
		Logger()

	logger = logger.With().Str(constants.KEY_PROCESS, "finding budget").Logger()
	logger.Info().Msg("finding budget")
	c = logger.WithContext(c)
	budget, err := s.service.FindBudget(c, cartCode)
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
	logger.Info().Msg("found budget")

	inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    "found budget",
		"data": map[string]interface{}{
			"budget": budget,
		},
	})
}

func (s *BudgetController) SetBudget(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "BudgetController SetBudget")
	defer span.End()

	cartCode := mux.Vars(r)["cartCode"]
	logger := zerolog.Ctx(c).
		With().
		Str(constants.KEY_TAG, "BudgetController SetBudget").
		Str(constants.KEY_CART_CODE, cartCode).
		Logger()

	logger = logger.With().Str(constants.KEY_PROCESS, "decoding request body").Logger()
	logger.Info().Msg("decoding request body")
	reqBody := request.SetBudget{}
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

	logger = logger.With().Str(constants.KEY_PROCESS, "setting budget").Logger()
	logger.Info().Msg("setting budget")
	c = logger.WithContext(c)
	budget, err := s.service.SetBudget(c, cartCode, reqBody.MonthlyBudget)
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
	logger.Info().Msg("set budget")

	inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    "set budget",
		"data": map[string]interface{}{
			"budget": budget,
		},
	})
}

func (s *BudgetController) Summary(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "BudgetController Summary")
	defer span.End()

	cartCode := mux.Vars(r)["cartCode"]
	logger := zerolog.Ctx(c).
		With().
		Str(constants.KEY_TAG, "BudgetController Summary").
		Str(constants.KEY_CART_CODE, cartCode).
		Logger()

	logger = logger.With().Str(constants.KEY_PROCESS, "summarizing budget").Logger()
	logger.Info().Msg("summarizing budget")
	c = logger.WithContext(c)
	summary, err := s.service.Summary(c, cartCode)
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
	logger.Info().Msg("summarized budget")

	inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    "summarized budget",
		"data": map[string]interface{}{
			"summary": summary,
		},
	})
}
