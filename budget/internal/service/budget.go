package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/madhuraks/ecobazaar/budget/internal/calc"
	"github.com/madhuraks/ecobazaar/budget/internal/otel"
	"github.com/madhuraks/ecobazaar/budget/pkg/response"
	cartResponse "github.com/madhuraks/ecobazaar/cart/pkg/response"
	"github.com/madhuraks/ecobazaar/internal/constants"
	inErrors "github.com/madhuraks/ecobazaar/internal/errors"
	inHttp "github.com/madhuraks/ecobazaar/internal/http"
	"github.com/madhuraks/ecobazaar/internal/log"
	inOtel "github.com/madhuraks/ecobazaar/internal/otel"
)

type BudgetService struct {
	settings    SettingsStore
	cartBaseURL string
	client      *http.Client
}

func NewBudgetService(settings SettingsStore, cartBaseURL string) BudgetService {
	return BudgetService{
		settings:    settings,
		cartBaseURL: cartBaseURL,
		client:      otelhttp.DefaultClient,
	}
}

func (s BudgetService) FindBudget(
	c context.Context,
	cartCode string,
) (response.Budget, error) {
	c, span := otel.Tracer.Start(c, "BudgetService FindBudget")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(constants.KEY_TAG, "BudgetService FindBudget").
		Str(constants.KEY_CART_CODE, cartCode).
		Str(constants.KEY_PROCESS, "finding monthly budget").
		Logger()

	logger.Info().Msg("finding monthly budget")
	budget, err := s.settings.MonthlyBudget(c, cartCode)
	if err != nil {
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Budget{}, err
	}
	logger.Info().Str(constants.KEY_MONTHLY_BUDGET, budget.String()).Msg("found monthly budget")

	return response.Budget{CartCode: cartCode, MonthlyBudget: budget}, nil
}

func (s BudgetService) SetBudget(
	c context.Context,
	cartCode string,
	monthlyBudget decimal.Decimal,
) (response.Budget, error) {
	c, span := otel.Tracer.Start(c, "BudgetService SetBudget")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(constants.KEY_TAG, "BudgetService SetBudget").
		Str(constants.KEY_CART_CODE, cartCode).
		Str(constants.KEY_MONTHLY_BUDGET, monthlyBudget.String()).
		Logger()

	logger = logger.With().Str(constants.KEY_PROCESS, "validating monthly budget").Logger()
	if !monthlyBudget.IsPositive() {
		err := fmt.Errorf(
			"failed validating monthlyBudget=%s with error=%w",
			monthlyBudget.String(),
			inErrors.ErrInvalidBudget,
		)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Budget{}, err
	}
	logger.Info().Msg("validated monthly budget")

	logger = logger.With().Str(constants.KEY_PROCESS, "setting monthly budget").Logger()
	logger.Info().Msg("setting monthly budget")
	err := s.settings.SetMonthlyBudget(c, cartCode, monthlyBudget)
	if err != nil {
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Budget{}, err
	}
	logger.Info().Msg("set monthly budget")

	return response.Budget{CartCode: cartCode, MonthlyBudget: monthlyBudget}, nil
}

func (s BudgetService) Summary(
	c context.Context,
	cartCode string,
) (response.Summary, error) {
	c, span := otel.Tracer.Start(c, "BudgetService Summary")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(constants.KEY_TAG, "BudgetService Summary").
		Str(constants.KEY_CART_CODE, cartCode).
		Logger()

	logger = logger.With().Str(constants.KEY_PROCESS, "finding cart snapshot").Logger()
	logger.Info().Msg("finding cart snapshot")
	c = logger.WithContext(c)
	cart, err := s.findCart(c, cartCode)
	if err != nil {
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Summary{}, err
	}
	logger.Info().
		Int(constants.KEY_ITEMS_COUNT, len(cart.CartItems)).
		Msg("found cart snapshot")

	logger = logger.With().Str(constants.KEY_PROCESS, "finding monthly budget").Logger()
	logger.Info().Msg("finding monthly budget")
	budget, err := s.settings.MonthlyBudget(c, cartCode)
	if err != nil {
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Summary{}, err
	}
	logger.Info().Msg("found monthly budget")

	return calc.Summarize(cart.CartItems, budget), nil
}

func (s BudgetService) findCart(
	c context.Context,
	cartCode string,
) (cartResponse.Cart, error) {
	c, span := otel.Tracer.Start(c, "BudgetService findCart")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(constants.KEY_TAG, "BudgetService findCart").
		Str(constants.KEY_CART_CODE, cartCode).
		Logger()

	req, err := http.NewRequestWithContext(
		c,
		http.MethodGet,
		s.cartBaseURL+"/"+cartCode,
		nil,
	)
	if err != nil {
		err = fmt.Errorf("failed finding cart with code=%s with error=%w", cartCode, err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return cartResponse.Cart{}, err
	}
	requestId := log.RequestIDFromContext(c)
	req.Header.Add(inHttp.KEY_HEADER_REQUEST_ID, requestId)

	resp, err := s.client.Do(req)
	if err != nil {
		err = fmt.Errorf("failed finding cart with code=%s with error=%w", cartCode, err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return cartResponse.Cart{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		err = fmt.Errorf(
			"failed finding cart with code=%s with error=%w",
			cartCode,
			inErrors.ErrCartNotFound,
		)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return cartResponse.Cart{}, err
	}
	if resp.StatusCode != http.StatusOK {
		err = fmt.Errorf("failed finding cart with code=%s, statusCode=%d", cartCode, resp.StatusCode)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return cartResponse.Cart{}, err
	}

	envelope := struct {
		Data struct {
			Cart cartResponse.Cart `json:"cart"`
		} `json:"data"`
	}{}
	err = json.NewDecoder(resp.Body).Decode(&envelope)
	if err != nil {
		err = fmt.Errorf("failed decoding cart with code=%s with error=%w", cartCode, err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return cartResponse.Cart{}, err
	}

	return envelope.Data.Cart, nil
}
