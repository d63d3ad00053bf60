package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/madhuraks/ecobazaar/internal/cache"
	"github.com/madhuraks/ecobazaar/internal/constants"
)

const (
	EventInsert = "insert"
	EventUpdate = "update"
	EventDelete = "delete"
)

type ChangeEvent struct {
	Type     string    `json:"type"`
	CartCode string    `json:"cartCode"`
	ItemID   uuid.UUID `json:"itemId"`
}

// EventBus fans cart mutations out to every watcher of the same cart code.
type EventBus interface {
	Publish(c context.Context, event ChangeEvent) error
	Subscribe(c context.Context, cartCode string) (<-chan ChangeEvent, func() error, error)
}

type redisEventBus struct {
	cache *redis.Client
}

func NewRedisEventBus(cache *redis.Client) EventBus {
	return redisEventBus{cache: cache}
}

func (b redisEventBus) Publish(c context.Context, event ChangeEvent) error {
	channel := fmt.Sprintf(cache.CHANNEL_CART_EVENTS, event.CartCode)

	logger := zerolog.Ctx(c).
		With().
		Str(constants.KEY_TAG, "redisEventBus Publish").
		Str(constants.KEY_CHANNEL, channel).
		Str(constants.KEY_EVENT, event.Type).
		Logger()

	payload, err := json.Marshal(event)
	if err != nil {
		err = fmt.Errorf("failed marshaling change event with error=%w", err)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}

	err = b.cache.Publish(c, channel, payload).Err()
	if err != nil {
		err = fmt.Errorf("failed publishing change event with error=%w", err)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	logger.Info().Msg("published change event")
	return nil
}

func (b redisEventBus) Subscribe(
	c context.Context,
	cartCode string,
) (<-chan ChangeEvent, func() error, error) {
	channel := fmt.Sprintf(cache.CHANNEL_CART_EVENTS, cartCode)

	logger := zerolog.Ctx(c).
		With().
		Str(constants.KEY_TAG, "redisEventBus Subscribe").
		Str(constants.KEY_CHANNEL, channel).
		Logger()

	pubsub := b.cache.Subscribe(c, channel)
	_, err := pubsub.Receive(c)
	if err != nil {
		err = fmt.Errorf("failed subscribing to channel=%s with error=%w", channel, err)
		logger.Error().Err(err).Msg(err.Error())
		newErr := pubsub.Close()
		if newErr != nil {
			logger.Error().Err(newErr).Msg(newErr.Error())
		}
		return nil, nil, err
	}
	logger.Info().Msg("subscribed to channel")

	events := make(chan ChangeEvent)
	go func() {
		defer close(events)
		for message := range pubsub.Channel() {
			event := ChangeEvent{}
			err := json.Unmarshal([]byte(message.Payload), &event)
			if err != nil {
				err = fmt.Errorf("failed unmarshaling change event with error=%w", err)
				logger.Error().Err(err).Msg(err.Error())
				continue
			}
			select {
			case events <- event:
			case <-c.Done():
				return
			}
		}
	}()

	return events, pubsub.Close, nil
}
