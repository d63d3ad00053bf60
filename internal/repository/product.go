package repository

import (
	"context"
)

const findProducts = `
select id, name, price, original_price, carbon_score, rating, category, eco_features, keywords, image, in_stock
from products
order by id
`

func (q *Queries) FindProducts(c context.Context) ([]Product, error) {
	rows, err := q.db.Query(c, findProducts)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Product{}
	for rows.Next() {
		var i Product
		err := rows.Scan(
			&i.ID,
			&i.Name,
			&i.Price,
			&i.OriginalPrice,
			&i.CarbonScore,
			&i.Rating,
			&i.Category,
			&i.EcoFeatures,
			&i.Keywords,
			&i.Image,
			&i.InStock,
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

const findProductById = `
select id, name, price, original_price, carbon_score, rating, category, eco_features, keywords, image, in_stock
from products
where id = $1
`

func (q *Queries) FindProductById(c context.Context, id int32) (Product, error) {
	row := q.db.QueryRow(c, findProductById, id)
	var i Product
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Price,
		&i.OriginalPrice,
		&i.CarbonScore,
		&i.Rating,
		&i.Category,
		&i.EcoFeatures,
		&i.Keywords,
		&i.Image,
		&i.InStock,
	)
	return i, err
}
