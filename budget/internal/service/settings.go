package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/madhuraks/ecobazaar/budget/internal/calc"
	"github.com/madhuraks/ecobazaar/internal/cache"
	"github.com/madhuraks/ecobazaar/internal/constants"
)

// SettingsStore holds the per-cart monthly budget. A missing entry falls
// back to the default, a stored value that fails to parse is an error, never
// silently coerced.
type SettingsStore interface {
	MonthlyBudget(c context.Context, cartCode string) (decimal.Decimal, error)
	SetMonthlyBudget(c context.Context, cartCode string, budget decimal.Decimal) error
}

type redisSettingsStore struct {
	cache *redis.Client
}

func NewRedisSettingsStore(cache *redis.Client) SettingsStore {
	return redisSettingsStore{cache: cache}
}

func (s redisSettingsStore) MonthlyBudget(
	c context.Context,
	cartCode string,
) (decimal.Decimal, error) {
	cacheKey := fmt.Sprintf(cache.KEY_BUDGET_MONTHLY, cartCode)

	logger := zerolog.Ctx(c).
		With().
		Str(constants.KEY_TAG, "redisSettingsStore MonthlyBudget").
		Str(constants.KEY_CACHE_KEY, cacheKey).
		Logger()

	raw, err := s.cache.Get(c, cacheKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			logger.Info().Msg("monthly budget not set, using default")
			return calc.DefaultMonthlyBudget, nil
		}
		err = fmt.Errorf("failed finding monthly budget with error=%w", err)
		logger.Error().Err(err).Msg(err.Error())
		return decimal.Zero, err
	}

	budget, err := decimal.NewFromString(raw)
	if err != nil {
		err = fmt.Errorf("failed parsing monthly budget=%s with error=%w", raw, err)
		logger.Error().Err(err).Msg(err.Error())
		return decimal.Zero, err
	}
	return budget, nil
}

func (s redisSettingsStore) SetMonthlyBudget(
	c context.Context,
	cartCode string,
	budget decimal.Decimal,
) error {
	cacheKey := fmt.Sprintf(cache.KEY_BUDGET_MONTHLY, cartCode)

	logger := zerolog.Ctx(c).
		With().
		Str(constants.KEY_TAG, "redisSettingsStore SetMonthlyBudget").
		Str(constants.KEY_CACHE_KEY, cacheKey).
		Str(constants.KEY_MONTHLY_BUDGET, budget.String()).
		Logger()

	err := s.cache.Set(c, cacheKey, budget.String(), 0).Err()
	if err != nil {
		err = fmt.Errorf("failed setting monthly budget with error=%w", err)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	logger.Info().Msg("set monthly budget")
	return nil
}
