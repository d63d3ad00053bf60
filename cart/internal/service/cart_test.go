package service

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/madhuraks/ecobazaar/cart/pkg/request"
	"github.com/madhuraks/ecobazaar/cart/pkg/response"
	inErrors "github.com/madhuraks/ecobazaar/internal/errors"
)

func testContext() context.Context {
	c := context.Background()
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339Nano}).
		WithContext(c)
}

func TestCreateAndJoinCart(t *testing.T) {
	c := testContext()
	redis, pool, pgContainer, redisContainer, _, cartService := setup(t)(c)
	defer teardown(t)(redis, pool, pgContainer, redisContainer)

	created, err := cartService.CreateCart(c)
	assert.NoError(t, err)
	assert.Len(t, created.Code, cartCodeLength)
	assert.Empty(t, created.CartItems)
	assert.EqualValues(t, 4, created.Summary.MemberCount)

	joined, err := cartService.JoinCart(c, created.Code)
	assert.NoError(t, err)
	assert.EqualValues(t, created.Code, joined.Code)
	assert.Empty(t, joined.CartItems)

	_, err = cartService.JoinCart(c, "ZZZZZZ")
	assert.ErrorIs(t, err, inErrors.ErrCartNotFound)
}

func TestAddItem(t *testing.T) {
	c := testContext()
	redis, pool, pgContainer, redisContainer, _, cartService := setup(t)(c)
	defer teardown(t)(redis, pool, pgContainer, redisContainer)

	cart, err := cartService.CreateCart(c)
	assert.NoError(t, err)

	item, err := cartService.AddItem(
		c,
		cart.Code,
		request.AddCartItem{ProductID: 1, Quantity: 2},
	)
	assert.NoError(t, err)
	assert.EqualValues(t, "Organic Neem Soap", item.Name)
	assert.True(t, decimal.NewFromInt(85).Equal(item.Price), "price should be 85 got %s", item.Price)
	assert.EqualValues(t, int32(2), item.Quantity)
	assert.True(t, item.Eco, "carbon score 0.2 should mark the item eco")
	assert.EqualValues(t, "You", item.AddedBy, "added by should default to You")

	// same product again merges into the existing row
	merged, err := cartService.AddItem(
		c,
		cart.Code,
		request.AddCartItem{ProductID: 1, Quantity: 1, AddedBy: "Priya"},
	)
	assert.NoError(t, err)
	assert.EqualValues(t, item.ID, merged.ID)
	assert.EqualValues(t, int32(3), merged.Quantity)

	found, err := cartService.FindCart(c, cart.Code)
	assert.NoError(t, err)
	assert.Len(t, found.CartItems, 1)
	assert.EqualValues(t, int32(3), found.Summary.TotalItems)
	assert.True(
		t,
		decimal.NewFromInt(255).Equal(found.Summary.TotalAmount),
		"total amount should be 255 got %s",
		found.Summary.TotalAmount,
	)
}

func TestAddItemNonEcoProduct(t *testing.T) {
	c := testContext()
	redis, pool, pgContainer, redisContainer, _, cartService := setup(t)(c)
	defer teardown(t)(redis, pool, pgContainer, redisContainer)

	cart, err := cartService.CreateCart(c)
	assert.NoError(t, err)

	// product 8 has carbon score 0.6, above the eco threshold
	item, err := cartService.AddItem(
		c,
		cart.Code,
		request.AddCartItem{ProductID: 8, Quantity: 1, AddedBy: "Raj"},
	)
	assert.NoError(t, err)
	assert.False(t, item.Eco)
	assert.EqualValues(t, "Raj", item.AddedBy)
}

func TestAddItemErrors(t *testing.T) {
	c := testContext()
	redis, pool, pgContainer, redisContainer, _, cartService := setup(t)(c)
	defer teardown(t)(redis, pool, pgContainer, redisContainer)

	cart, err := cartService.CreateCart(c)
	assert.NoError(t, err)

	_, err = cartService.AddItem(c, cart.Code, request.AddCartItem{ProductID: 999, Quantity: 1})
	assert.ErrorIs(t, err, inErrors.ErrProductNotFound)

	_, err = cartService.AddItem(c, "ZZZZZZ", request.AddCartItem{ProductID: 1, Quantity: 1})
	assert.ErrorIs(t, err, inErrors.ErrCartNotFound)
}

func TestUpdateQuantity(t *testing.T) {
	c := testContext()
	redis, pool, pgContainer, redisContainer, _, cartService := setup(t)(c)
	defer teardown(t)(redis, pool, pgContainer, redisContainer)

	cart, err := cartService.CreateCart(c)
	assert.NoError(t, err)

	item, err := cartService.AddItem(c, cart.Code, request.AddCartItem{ProductID: 2, Quantity: 1})
	assert.NoError(t, err)

	updated, err := cartService.UpdateQuantity(c, cart.Code, item.ID, 5)
	assert.NoError(t, err)
	assert.Len(t, updated.CartItems, 1)
	assert.EqualValues(t, int32(5), updated.CartItems[0].Quantity)

	// zero removes the row instead of keeping a dead line
	emptied, err := cartService.UpdateQuantity(c, cart.Code, item.ID, 0)
	assert.NoError(t, err)
	assert.Empty(t, emptied.CartItems)

	_, err = cartService.UpdateQuantity(c, cart.Code, item.ID, 1)
	assert.ErrorIs(t, err, inErrors.ErrCartItemNotFound)

	_, err = cartService.UpdateQuantity(c, cart.Code, uuid.New(), -1)
	assert.ErrorIs(t, err, inErrors.ErrInvalidQuantity)
}

func TestRemoveItem(t *testing.T) {
	c := testContext()
	redis, pool, pgContainer, redisContainer, _, cartService := setup(t)(c)
	defer teardown(t)(redis, pool, pgContainer, redisContainer)

	cart, err := cartService.CreateCart(c)
	assert.NoError(t, err)

	item, err := cartService.AddItem(c, cart.Code, request.AddCartItem{ProductID: 3, Quantity: 2})
	assert.NoError(t, err)

	removed, err := cartService.RemoveItem(c, cart.Code, item.ID)
	assert.NoError(t, err)
	assert.Empty(t, removed.CartItems)

	// removing an already absent item is a no-op
	again, err := cartService.RemoveItem(c, cart.Code, item.ID)
	assert.NoError(t, err)
	assert.Empty(t, again.CartItems)
}

func TestMembersAndShare(t *testing.T) {
	c := testContext()
	redis, pool, pgContainer, redisContainer, _, cartService := setup(t)(c)
	defer teardown(t)(redis, pool, pgContainer, redisContainer)

	cart, err := cartService.CreateCart(c)
	assert.NoError(t, err)

	members, err := cartService.Members(c, cart.Code)
	assert.NoError(t, err)
	assert.Len(t, members, 4)
	assert.EqualValues(t, "Owner", members[0].Role)

	share, err := cartService.Share(c, cart.Code)
	assert.NoError(t, err)
	assert.EqualValues(t, "Join our Smart Shopping Cart!", share.Title)
	assert.Contains(t, share.Text, cart.Code)
	assert.EqualValues(t, cart.Code, share.ClipboardText)

	_, err = cartService.Members(c, "ZZZZZZ")
	assert.ErrorIs(t, err, inErrors.ErrCartNotFound)
	_, err = cartService.Share(c, "ZZZZZZ")
	assert.ErrorIs(t, err, inErrors.ErrCartNotFound)
}

func TestWatch(t *testing.T) {
	c := testContext()
	redis, pool, pgContainer, redisContainer, _, cartService := setup(t)(c)
	defer teardown(t)(redis, pool, pgContainer, redisContainer)

	cart, err := cartService.CreateCart(c)
	assert.NoError(t, err)

	watchCtx, cancel := context.WithCancel(c)
	defer cancel()
	events, err := cartService.Watch(watchCtx, cart.Code)
	assert.NoError(t, err)

	initial := receiveWatchEvent(t, events)
	assert.EqualValues(t, response.WatchEventSnapshot, initial.Type)
	assert.NotNil(t, initial.Cart)
	assert.Empty(t, initial.Cart.CartItems)

	_, err = cartService.AddItem(c, cart.Code, request.AddCartItem{ProductID: 7, Quantity: 1})
	assert.NoError(t, err)

	snapshot := receiveWatchEvent(t, events)
	assert.EqualValues(t, response.WatchEventSnapshot, snapshot.Type)
	assert.NotNil(t, snapshot.Cart)
	assert.Len(t, snapshot.Cart.CartItems, 1)
	assert.EqualValues(t, "Steel Water Bottle", snapshot.Cart.CartItems[0].Name)
}

func TestWatchUnknownCart(t *testing.T) {
	c := testContext()
	redis, pool, pgContainer, redisContainer, _, cartService := setup(t)(c)
	defer teardown(t)(redis, pool, pgContainer, redisContainer)

	_, err := cartService.Watch(c, "ZZZZZZ")
	assert.ErrorIs(t, err, inErrors.ErrCartNotFound)
}
