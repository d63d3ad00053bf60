package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CartItem struct {
	ID            uuid.UUID       `json:"id"`
	CartCode      string          `json:"cartCode"`
	ProductID     int32           `json:"productId"`
	Name          string          `json:"name"`
	Price         decimal.Decimal `json:"price"`
	OriginalPrice decimal.Decimal `json:"originalPrice"`
	Quantity      int32           `json:"quantity"`
	Category      string          `json:"category"`
	Eco           bool            `json:"eco"`
	CarbonScore   float64         `json:"carbonScore"`
	AddedBy       string          `json:"addedBy"`
	AddedAt       time.Time       `json:"addedAt"`
}

type Summary struct {
	TotalItems      int32           `json:"totalItems"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	TotalCarbon     float64         `json:"totalCarbon"`
	MemberCount     int             `json:"memberCount"`
	AmountPerPerson decimal.Decimal `json:"amountPerPerson"`
}

type Cart struct {
	Code      string     `json:"code"`
	CreatedAt time.Time  `json:"createdAt"`
	CartItems []CartItem `json:"cartItems"`
	Summary   Summary    `json:"summary"`
}

type Member struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Role     string    `json:"role"`
	Status   string    `json:"status"`
	JoinedAt time.Time `json:"joinedAt"`
}

type SharePayload struct {
	Title         string `json:"title"`
	Text          string `json:"text"`
	ClipboardText string `json:"clipboardText"`
}
