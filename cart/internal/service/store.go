package service

import (
	"context"

	"github.com/madhuraks/ecobazaar/internal/repository"
)

// CartStore is the slice of the repository the cart service needs. It is
// satisfied by *repository.Queries and by the in-memory fake used in tests.
type CartStore interface {
	InsertCart(c context.Context, code string) (repository.GroupCart, error)
	FindCartByCode(c context.Context, code string) (repository.GroupCart, error)
	FindCartItemsByCode(c context.Context, cartCode string) ([]repository.GroupCartItem, error)
	FindCartItemById(
		c context.Context,
		arg repository.FindCartItemByIdParams,
	) (repository.GroupCartItem, error)
	FindCartItemByProduct(
		c context.Context,
		arg repository.FindCartItemByProductParams,
	) (repository.GroupCartItem, error)
	InsertCartItem(
		c context.Context,
		arg repository.InsertCartItemParams,
	) (repository.GroupCartItem, error)
	AddCartItemQuantity(
		c context.Context,
		arg repository.AddCartItemQuantityParams,
	) (repository.GroupCartItem, error)
	UpdateCartItemQuantity(
		c context.Context,
		arg repository.UpdateCartItemQuantityParams,
	) (repository.GroupCartItem, error)
	DeleteCartItem(c context.Context, arg repository.DeleteCartItemParams) (int64, error)
	FindProductById(c context.Context, id int32) (repository.Product, error)
}
