package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/trace"

	"github.com/madhuraks/ecobazaar/cart/internal/otel"
	"github.com/madhuraks/ecobazaar/cart/pkg/request"
	"github.com/madhuraks/ecobazaar/cart/pkg/response"
	"github.com/madhuraks/ecobazaar/internal/cache"
	"github.com/madhuraks/ecobazaar/internal/constants"
	inErrors "github.com/madhuraks/ecobazaar/internal/errors"
	inOtel "github.com/madhuraks/ecobazaar/internal/otel"
	"github.com/madhuraks/ecobazaar/internal/repository"
)

const (
	maxCartCodeAttempts = 5
	ecoCarbonThreshold  = 0.5
	defaultAddedBy      = "You"

	pgUniqueViolation = "23505"
)

type CartService struct {
	store CartStore
	cache *redis.Client
	bus   EventBus
}

func NewCartService(store CartStore, cache *redis.Client, bus EventBus) CartService {
	return CartService{store: store, cache: cache, bus: bus}
}

func (s CartService) CreateCart(c context.Context) (response.Cart, error) {
	c, span := otel.Tracer.Start(c, "CartService CreateCart")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(constants.KEY_TAG, "CartService CreateCart").
		Str(constants.KEY_PROCESS, "creating cart").
		Logger()

	logger.Info().Msg("creating cart")
	for attempt := 0; attempt < maxCartCodeAttempts; attempt++ {
		code, err := NewCartCode()
		if err != nil {
			inOtel.RecordError(err, span)
			logger.Error().Err(err).Msg(err.Error())
			return response.Cart{}, err
		}

		cart, err := s.store.InsertCart(c, code)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
				logger.Warn().
					Str(constants.KEY_CART_CODE, code).
					Msg("cart code collided, retrying")
				continue
			}
			err = fmt.Errorf("failed inserting cart with error=%w", err)
			inOtel.RecordError(err, span)
			logger.Error().Err(err).Msg(err.Error())
			return response.Cart{}, err
		}

		logger.Info().Str(constants.KEY_CART_CODE, cart.Code).Msg("created cart")
		members := memberRoster(time.Now())
		return response.Cart{
			Code:      cart.Code,
			CreatedAt: cart.CreatedAt.Time,
			CartItems: []response.CartItem{},
			Summary:   Summarize(nil, len(members)),
		}, nil
	}

	err := fmt.Errorf("failed creating cart with error=%w", inErrors.ErrCartCodeExhausted)
	inOtel.RecordError(err, span)
	logger.Error().Err(err).Msg(err.Error())
	return response.Cart{}, err
}

func (s CartService) JoinCart(c context.Context, cartCode string) (response.Cart, error) {
	c, span := otel.Tracer.Start(c, "CartService JoinCart")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(constants.KEY_TAG, "CartService JoinCart").
		Str(constants.KEY_CART_CODE, cartCode).
		Str(constants.KEY_PROCESS, "validating cart code").
		Logger()

	logger.Info().Msg("validating cart code")
	_, err := s.findCart(c, cartCode)
	if err != nil {
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Cart{}, err
	}
	logger.Info().Msg("validated cart code")

	c = logger.WithContext(c)
	return s.FindCart(c, cartCode)
}

func (s CartService) FindCart(c context.Context, cartCode string) (response.Cart, error) {
	c, span := otel.Tracer.Start(c, "CartService FindCart")
	defer span.End()

	cacheKey := fmt.Sprintf(cache.KEY_CARTS, cartCode)

	logger := zerolog.Ctx(c).
		With().
		Str(constants.KEY_TAG, "CartService FindCart").
		Str(constants.KEY_CART_CODE, cartCode).
		Str(constants.KEY_CACHE_KEY, cacheKey).
		Logger()

	logger = logger.With().Str(constants.KEY_PROCESS, "finding cart in cache").Logger()
	logger.Info().Msg("finding cart in cache")
	jsonCache, err := s.cache.JSONGet(c, cacheKey).Result()
	if err == nil && jsonCache != "" {
		cart := response.Cart{}
		err = json.Unmarshal([]byte(jsonCache), &cart)
		if err == nil {
			logger.Info().Msg("found cart in cache")
			return cart, nil
		}
		err = fmt.Errorf("failed unmarshaling cached cart with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
	}

	logger = logger.With().Str(constants.KEY_PROCESS, "finding cart in db").Logger()
	logger.Info().Msg("finding cart in db")
	cart, err := s.findCart(c, cartCode)
	if err != nil {
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Cart{}, err
	}

	items, err := s.store.FindCartItemsByCode(c, cartCode)
	if err != nil {
		err = fmt.Errorf("failed finding cart items with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Cart{}, err
	}
	logger.Info().Int(constants.KEY_ITEMS_COUNT, len(items)).Msg("found cart in db")

	cartItems := make([]response.CartItem, len(items))
	for i, item := range items {
		cartItems[i] = item.Response()
	}
	members := memberRoster(time.Now())
	cartResponse := response.Cart{
		Code:      cart.Code,
		CreatedAt: cart.CreatedAt.Time,
		CartItems: cartItems,
		Summary:   Summarize(cartItems, len(members)),
	}

	logger = logger.With().Str(constants.KEY_PROCESS, "inserting cart in cache").Logger()
	err = s.cache.JSONSet(c, cacheKey, "$", cartResponse).Err()
	if err != nil {
		err = fmt.Errorf("failed inserting cart in cache with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return cartResponse, nil
	}
	logger.Info().Msg("inserted cart in cache")

	return cartResponse, nil
}

func (s CartService) AddItem(
	c context.Context,
	cartCode string,
	param request.AddCartItem,
) (response.CartItem, error) {
	c, span := otel.Tracer.Start(c, "CartService AddItem")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(constants.KEY_TAG, "CartService AddItem").
		Str(constants.KEY_CART_CODE, cartCode).
		Int32(constants.KEY_PRODUCT_ID, param.ProductID).
		Int32(constants.KEY_QUANTITY, param.Quantity).
		Logger()

	logger = logger.With().Str(constants.KEY_PROCESS, "validating cart code").Logger()
	logger.Info().Msg("validating cart code")
	_, err := s.findCart(c, cartCode)
	if err != nil {
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.CartItem{}, err
	}
	logger.Info().Msg("validated cart code")

	logger = logger.With().Str(constants.KEY_PROCESS, "finding product").Logger()
	logger.Info().Msg("finding product")
	product, err := s.store.FindProductById(c, param.ProductID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = fmt.Errorf(
				"failed finding product with id=%d with error=%w",
				param.ProductID,
				inErrors.ErrProductNotFound,
			)
		} else {
			err = fmt.Errorf("failed finding product with error=%w", err)
		}
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.CartItem{}, err
	}
	logger.Info().Msg("found product")

	logger = logger.With().Str(constants.KEY_PROCESS, "upserting cart item").Logger()
	logger.Info().Msg("upserting cart item")
	existing, err := s.store.FindCartItemByProduct(
		c,
		repository.FindCartItemByProductParams{CartCode: cartCode, ProductID: param.ProductID},
	)
	eventType := EventInsert
	var item repository.GroupCartItem
	switch {
	case err == nil:
		item, err = s.store.AddCartItemQuantity(
			c,
			repository.AddCartItemQuantityParams{
				CartCode: cartCode,
				ID:       existing.ID,
				Quantity: param.Quantity,
			},
		)
		eventType = EventUpdate
	case errors.Is(err, pgx.ErrNoRows):
		addedBy := param.AddedBy
		if addedBy == "" {
			addedBy = defaultAddedBy
		}
		item, err = s.store.InsertCartItem(
			c,
			repository.InsertCartItemParams{
				ID:            uuid.New(),
				CartCode:      cartCode,
				ProductID:     product.ID,
				Name:          product.Name,
				Price:         product.Price,
				OriginalPrice: product.OriginalPrice,
				Quantity:      param.Quantity,
				Category:      product.Category,
				Eco:           product.CarbonScore <= ecoCarbonThreshold,
				CarbonScore:   product.CarbonScore,
				AddedBy:       addedBy,
			},
		)
	default:
		err = fmt.Errorf("failed finding cart item by product with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.CartItem{}, err
	}
	if err != nil {
		err = fmt.Errorf("failed upserting cart item with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.CartItem{}, err
	}
	logger = logger.With().Str(constants.KEY_CART_ITEM_ID, item.ID.String()).Logger()
	logger.Info().Msg("upserted cart item")

	c = logger.WithContext(c)
	s.afterMutation(c, span, ChangeEvent{Type: eventType, CartCode: cartCode, ItemID: item.ID})

	return item.Response(), nil
}

func (s CartService) UpdateQuantity(
	c context.Context,
	cartCode string,
	cartItemId uuid.UUID,
	quantity int32,
) (response.Cart, error) {
	c, span := otel.Tracer.Start(c, "CartService UpdateQuantity")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(constants.KEY_TAG, "CartService UpdateQuantity").
		Str(constants.KEY_CART_CODE, cartCode).
		Str(constants.KEY_CART_ITEM_ID, cartItemId.String()).
		Int32(constants.KEY_QUANTITY, quantity).
		Logger()

	logger = logger.With().Str(constants.KEY_PROCESS, "validating quantity").Logger()
	if quantity < 0 {
		err := fmt.Errorf(
			"failed validating quantity=%d with error=%w",
			quantity,
			inErrors.ErrInvalidQuantity,
		)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Cart{}, err
	}
	logger.Info().Msg("validated quantity")

	logger = logger.With().Str(constants.KEY_PROCESS, "finding cart item").Logger()
	logger.Info().Msg("finding cart item")
	_, err := s.store.FindCartItemById(
		c,
		repository.FindCartItemByIdParams{CartCode: cartCode, ID: cartItemId},
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = fmt.Errorf(
				"failed finding cart item with id=%s with error=%w",
				cartItemId.String(),
				inErrors.ErrCartItemNotFound,
			)
		} else {
			err = fmt.Errorf("failed finding cart item with error=%w", err)
		}
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Cart{}, err
	}
	logger.Info().Msg("found cart item")

	logger = logger.With().Str(constants.KEY_PROCESS, "updating quantity").Logger()
	logger.Info().Msg("updating quantity")
	eventType := EventUpdate
	if quantity == 0 {
		_, err = s.store.DeleteCartItem(
			c,
			repository.DeleteCartItemParams{CartCode: cartCode, ID: cartItemId},
		)
		eventType = EventDelete
	} else {
		_, err = s.store.UpdateCartItemQuantity(
			c,
			repository.UpdateCartItemQuantityParams{
				CartCode: cartCode,
				ID:       cartItemId,
				Quantity: quantity,
			},
		)
	}
	if err != nil {
		err = fmt.Errorf("failed updating quantity with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Cart{}, err
	}
	logger.Info().Msg("updated quantity")

	c = logger.WithContext(c)
	s.afterMutation(c, span, ChangeEvent{Type: eventType, CartCode: cartCode, ItemID: cartItemId})

	return s.FindCart(c, cartCode)
}

func (s CartService) RemoveItem(
	c context.Context,
	cartCode string,
	cartItemId uuid.UUID,
) (response.Cart, error) {
	c, span := otel.Tracer.Start(c, "CartService RemoveItem")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(constants.KEY_TAG, "CartService RemoveItem").
		Str(constants.KEY_CART_CODE, cartCode).
		Str(constants.KEY_CART_ITEM_ID, cartItemId.String()).
		Str(constants.KEY_PROCESS, "removing cart item").
		Logger()

	logger.Info().Msg("removing cart item")
	affected, err := s.store.DeleteCartItem(
		c,
		repository.DeleteCartItemParams{CartCode: cartCode, ID: cartItemId},
	)
	if err != nil {
		err = fmt.Errorf("failed removing cart item with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Cart{}, err
	}

	if affected > 0 {
		c = logger.WithContext(c)
		s.afterMutation(
			c,
			span,
			ChangeEvent{Type: EventDelete, CartCode: cartCode, ItemID: cartItemId},
		)
		logger.Info().Msg("removed cart item")
	} else {
		logger.Info().Msg("cart item already absent")
	}

	return s.FindCart(c, cartCode)
}

func (s CartService) Members(c context.Context, cartCode string) ([]response.Member, error) {
	c, span := otel.Tracer.Start(c, "CartService Members")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(constants.KEY_TAG, "CartService Members").
		Str(constants.KEY_CART_CODE, cartCode).
		Logger()

	_, err := s.findCart(c, cartCode)
	if err != nil {
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return nil, err
	}

	members := memberRoster(time.Now())
	logger.Info().Int(constants.KEY_ITEMS_COUNT, len(members)).Msg("found members")
	return members, nil
}

func (s CartService) Share(c context.Context, cartCode string) (response.SharePayload, error) {
	c, span := otel.Tracer.Start(c, "CartService Share")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(constants.KEY_TAG, "CartService Share").
		Str(constants.KEY_CART_CODE, cartCode).
		Logger()

	_, err := s.findCart(c, cartCode)
	if err != nil {
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.SharePayload{}, err
	}

	logger.Info().Msg("built share payload")
	return response.SharePayload{
		Title:         "Join our Smart Shopping Cart!",
		Text:          fmt.Sprintf("Join our group shopping cart with code: %s", cartCode),
		ClipboardText: cartCode,
	}, nil
}

// Watch streams a self-consistent snapshot on every change event. Snapshots
// are re-fetched instead of patched so watchers never observe a partially
// applied update. On a re-fetch failure the watcher keeps the last snapshot
// and a sync_failed event is emitted.
func (s CartService) Watch(
	c context.Context,
	cartCode string,
) (<-chan response.WatchEvent, error) {
	c, span := otel.Tracer.Start(c, "CartService Watch")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(constants.KEY_TAG, "CartService Watch").
		Str(constants.KEY_CART_CODE, cartCode).
		Logger()

	logger = logger.With().Str(constants.KEY_PROCESS, "validating cart code").Logger()
	logger.Info().Msg("validating cart code")
	_, err := s.findCart(c, cartCode)
	if err != nil {
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return nil, err
	}
	logger.Info().Msg("validated cart code")

	logger = logger.With().Str(constants.KEY_PROCESS, "subscribing to change events").Logger()
	logger.Info().Msg("subscribing to change events")
	events, closeSubscription, err := s.bus.Subscribe(c, cartCode)
	if err != nil {
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return nil, err
	}
	logger.Info().Msg("subscribed to change events")

	initial, err := s.FindCart(c, cartCode)
	if err != nil {
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		newErr := closeSubscription()
		if newErr != nil {
			logger.Error().Err(newErr).Msg(newErr.Error())
		}
		return nil, err
	}

	out := make(chan response.WatchEvent, 1)
	out <- response.WatchEvent{Type: response.WatchEventSnapshot, Cart: &initial}

	go func() {
		defer close(out)
		defer func() {
			err := closeSubscription()
			if err != nil {
				logger.Error().Err(err).Msg(err.Error())
			}
		}()
		for {
			select {
			case <-c.Done():
				return
			case event, ok := <-events:
				if !ok {
					return
				}
				logger.Info().Str(constants.KEY_EVENT, event.Type).Msg("received change event")
				cart, err := s.FindCart(c, cartCode)
				if err != nil {
					err = fmt.Errorf("failed refreshing cart snapshot with error=%w", err)
					logger.Error().Err(err).Msg(err.Error())
					select {
					case out <- response.WatchEvent{Type: response.WatchEventSyncFailed, Error: err.Error()}:
					case <-c.Done():
						return
					}
					continue
				}
				select {
				case out <- response.WatchEvent{Type: response.WatchEventSnapshot, Cart: &cart}:
				case <-c.Done():
					return
				}
			}
		}
	}()

	return out, nil
}

func (s CartService) findCart(
	c context.Context,
	cartCode string,
) (repository.GroupCart, error) {
	cart, err := s.store.FindCartByCode(c, cartCode)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return repository.GroupCart{}, fmt.Errorf(
				"failed finding cart with code=%s with error=%w",
				cartCode,
				inErrors.ErrCartNotFound,
			)
		}
		return repository.GroupCart{}, fmt.Errorf("failed finding cart with error=%w", err)
	}
	return cart, nil
}

// afterMutation drops the cached snapshot and fans the change out. Failures
// here are logged but never fail the mutation itself, the next read rebuilds
// the cache from the database.
func (s CartService) afterMutation(
	c context.Context,
	span trace.Span,
	event ChangeEvent,
) {
	logger := zerolog.Ctx(c).
		With().
		Str(constants.KEY_TAG, "CartService afterMutation").
		Str(constants.KEY_EVENT, event.Type).
		Logger()

	cacheKey := fmt.Sprintf(cache.KEY_CARTS, event.CartCode)
	err := s.cache.JSONDel(c, cacheKey, "$").Err()
	if err != nil {
		err = fmt.Errorf("failed invalidating cached cart with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
	}

	err = s.bus.Publish(c, event)
	if err != nil {
		err = fmt.Errorf("failed publishing change event with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
	}
}
