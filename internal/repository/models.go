package repository

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Product struct {
	ID            int32
	Name          string
	Price         pgtype.Numeric
	OriginalPrice pgtype.Numeric
	CarbonScore   float64
	Rating        float64
	Category      string
	EcoFeatures   []string
	Keywords      []string
	Image         string
	InStock       bool
}

type GroupCart struct {
	Code      string
	CreatedAt pgtype.Timestamptz
}

type GroupCartItem struct {
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
	AddedAt       pgtype.Timestamptz
}
