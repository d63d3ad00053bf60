package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const insertCart = `
insert into group_carts (code)
values ($1)
returning code, created_at
`

func (q *Queries) InsertCart(c context.Context, code string) (GroupCart, error) {
	row := q.db.QueryRow(c, insertCart, code)
	var i GroupCart
	err := row.Scan(&i.Code, &i.CreatedAt)
	return i, err
}

const findCartByCode = `
select code, created_at
from group_carts
where code = $1
`

func (q *Queries) FindCartByCode(c context.Context, code string) (GroupCart, error) {
	row := q.db.QueryRow(c, findCartByCode, code)
	var i GroupCart
	err := row.Scan(&i.Code, &i.CreatedAt)
	return i, err
}

const findCartItemsByCode = `
select id, cart_code, product_id, name, price, original_price, quantity, category, eco, carbon_score, added_by, added_at
from group_cart_items
where cart_code = $1
order by added_at desc, id desc
`

func (q *Queries) FindCartItemsByCode(c context.Context, cartCode string) ([]GroupCartItem, error) {
	rows, err := q.db.Query(c, findCartItemsByCode, cartCode)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []GroupCartItem{}
	for rows.Next() {
		var i GroupCartItem
		err := rows.Scan(
			&i.ID,
			&i.CartCode,
			&i.ProductID,
			&i.Name,
			&i.Price,
			&i.OriginalPrice,
			&i.Quantity,
			&i.Category,
			&i.Eco,
			&i.CarbonScore,
			&i.AddedBy,
			&i.AddedAt,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const findCartItemById = `
select id, cart_code, product_id, name, price, original_price, quantity, category, eco, carbon_score, added_by, added_at
from group_cart_items
where cart_code = $1 and id = $2
`

type FindCartItemByIdParams struct {
	CartCode string
	ID       uuid.UUID
}

func (q *Queries) FindCartItemById(
	c context.Context,
	arg FindCartItemByIdParams,
) (GroupCartItem, error) {
	row := q.db.QueryRow(c, findCartItemById, arg.CartCode, arg.ID)
	var i GroupCartItem
	err := row.Scan(
		&i.ID,
		&i.CartCode,
		&i.ProductID,
		&i.Name,
		&i.Price,
		&i.OriginalPrice,
		&i.Quantity,
		&i.Category,
		&i.Eco,
		&i.CarbonScore,
		&i.AddedBy,
		&i.AddedAt,
	)
	return i, err
}

const findCartItemByProduct = `
select id, cart_code, product_id, name, price, original_price, quantity, category, eco, carbon_score, added_by, added_at
from group_cart_items
where cart_code = $1 and product_id = $2
`

type FindCartItemByProductParams struct {
	CartCode  string
	ProductID int32
}

func (q *Queries) FindCartItemByProduct(
	c context.Context,
	arg FindCartItemByProductParams,
) (GroupCartItem, error) {
	row := q.db.QueryRow(c, findCartItemByProduct, arg.CartCode, arg.ProductID)
	var i GroupCartItem
	err := row.Scan(
		&i.ID,
		&i.CartCode,
		&i.ProductID,
		&i.Name,
		&i.Price,
		&i.OriginalPrice,
		&i.Quantity,
		&i.Category,
		&i.Eco,
		&i.CarbonScore,
		&i.AddedBy,
		&i.AddedAt,
	)
	return i, err
}

const insertCartItem = `
insert into group_cart_items (id, cart_code, product_id, name, price, original_price, quantity, category, eco, carbon_score, added_by)
values ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
returning id, cart_code, product_id, name, price, original_price, quantity, category, eco, carbon_score, added_by, added_at
`

type InsertCartItemParams struct {
	ID            uuid.UUID
	CartCode      string
	ProductID     int32
	Name          string
	Price         pgtype.Numeric
	OriginalPrice pgtype.Numeric
	Quantity      int32
	Category      string
	Eco           bool
	CarbonScore   float64
	AddedBy       string
}

func (q *Queries) InsertCartItem(
	c context.Context,
	arg InsertCartItemParams,
) (GroupCartItem, error) {
	row := q.db.QueryRow(
		c,
		insertCartItem,
		arg.ID,
		arg.CartCode,
		arg.ProductID,
		arg.Name,
		arg.Price,
		arg.OriginalPrice,
		arg.Quantity,
		arg.Category,
		arg.Eco,
		arg.CarbonScore,
		arg.AddedBy,
	)
	var i GroupCartItem
	err := row.Scan(
		&i.ID,
		&i.CartCode,
		&i.ProductID,
		&i.Name,
		&i.Price,
		&i.OriginalPrice,
		&i.Quantity,
		&i.Category,
		&i.Eco,
		&i.CarbonScore,
		&i.AddedBy,
		&i.AddedAt,
	)
	return i, err
}

const addCartItemQuantity = `
update group_cart_items
set quantity = quantity + $3
where cart_code = $1 and id = $2
returning id, cart_code, product_id, name, price, original_price, quantity, category, eco, carbon_score, added_by, added_at
`

type AddCartItemQuantityParams struct {
	CartCode string
	ID       uuid.UUID
	Quantity int32
}

func (q *Queries) AddCartItemQuantity(
	c context.Context,
	arg AddCartItemQuantityParams,
) (GroupCartItem, error) {
	row := q.db.QueryRow(c, addCartItemQuantity, arg.CartCode, arg.ID, arg.Quantity)
	var i GroupCartItem
	err := row.Scan(
		&i.ID,
		&i.CartCode,
		&i.ProductID,
		&i.Name,
		&i.Price,
		&i.OriginalPrice,
		&i.Quantity,
		&i.Category,
		&i.Eco,
		&i.CarbonScore,
		&i.AddedBy,
		&i.AddedAt,
	)
	return i, err
}

const updateCartItemQuantity = `
update group_cart_items
set quantity = $3
where cart_code = $1 and id = $2
returning id, cart_code, product_id, name, price, original_price, quantity, category, eco, carbon_score, added_by, added_at
`

type UpdateCartItemQuantityParams struct {
	CartCode string
	ID       uuid.UUID
	Quantity int32
}

func (q *Queries) UpdateCartItemQuantity(
	c context.Context,
	arg UpdateCartItemQuantityParams,
) (GroupCartItem, error) {
	row := q.db.QueryRow(c, updateCartItemQuantity, arg.CartCode, arg.ID, arg.Quantity)
	var i GroupCartItem
	err := row.Scan(
		&i.ID,
		&i.CartCode,
		&i.ProductID,
		&i.Name,
		&i.Price,
		&i.OriginalPrice,
		&i.Quantity,
		&i.Category,
		&i.Eco,
		&i.CarbonScore,
		&i.AddedBy,
		&i.AddedAt,
	)
	return i, err
}

const deleteCartItem = `
delete from group_cart_items
where cart_code = $1 and id = $2
`

type DeleteCartItemParams struct {
	CartCode string
	ID       uuid.UUID
}

func (q *Queries) DeleteCartItem(c context.Context, arg DeleteCartItemParams) (int64, error) {
	tag, err := q.db.Exec(c, deleteCartItem, arg.CartCode, arg.ID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
