package service

import (
	"github.com/shopspring/decimal"

	"github.com/madhuraks/ecobazaar/offer/pkg/response"
)

// Store data is a static in-process directory, there is no partner feed yet.
var nearbyStores = []response.Store{
	{
		ID:         1,
		Name:       "Green Valley Organic Store",
		Address:    "MG Road, Bangalore",
		DistanceKm: 1.2,
		Rating:     4.8,
		Phone:      "+91 98765 43210",
		OpenTill:   "21:00",
		Offers: []response.Offer{
			{
				Title:         "30% Off Organic Soaps",
				Description:   "All natural & eco-friendly soaps",
				OriginalPrice: decimal.NewFromInt(120),
				OfferPrice:    decimal.NewFromInt(84),
				Category:      "Personal Care",
				Eco:           true,
				ValidTill:     "Today",
			},
			{
				Title:         "Buy 2 Get 1 Free Hair Oil",
				Description:   "Herbal hair oils - chemical free",
				OriginalPrice: decimal.NewFromInt(200),
				OfferPrice:    decimal.NewFromInt(200),
				Category:      "Beauty",
				Eco:           true,
				ValidTill:     "Tomorrow",
			},
		},
		Specialties: []string{"Organic", "Eco-Friendly", "Zero Waste"},
		Image:       "🌱",
	},
	{
		ID:         2,
		Name:       "Eco Mart Supermarket",
		Address:    "Brigade Road, Bangalore",
		DistanceKm: 2.1,
		Rating:     4.5,
		Phone:      "+91 98765 43211",
		OpenTill:   "22:00",
		Offers: []response.Offer{
			{
				Title:         "25% Off Bamboo Products",
				Description:   "Toothbrushes, straws, containers",
				OriginalPrice: decimal.NewFromInt(150),
				OfferPrice:    decimal.NewFromInt(112),
				Category:      "Lifestyle",
				Eco:           true,
				ValidTill:     "This Week",
			},
			{
				Title:         "Organic Food Festival",
				Description:   "20% off on all organic food items",
				OriginalPrice: decimal.NewFromInt(300),
				OfferPrice:    decimal.NewFromInt(240),
				Category:      "Food",
				Eco:           true,
				ValidTill:     "Weekend",
			},
		},
		Specialties: []string{"Sustainable", "Local Products", "Bulk Shopping"},
		Image:       "🛒",
	},
	{
		ID:         3,
		Name:       "Nature's Bounty",
		Address:    "Koramangala, Bangalore",
		DistanceKm: 3.5,
		Rating:     4.6,
		Phone:      "+91 98765 43212",
		OpenTill:   "20:30",
		Offers: []response.Offer{
			{
				Title:         "Handmade Soap Collection",
				Description:   "Artisan soaps with natural ingredients",
				OriginalPrice: decimal.NewFromInt(180),
				OfferPrice:    decimal.NewFromInt(126),
				Category:      "Personal Care",
				Eco:           true,
				ValidTill:     "3 Days Left",
			},
			{
				Title:         "Eco-Friendly Kitchenware",
				Description:   "Steel & bamboo utensils - 40% off",
				OriginalPrice: decimal.NewFromInt(500),
				OfferPrice:    decimal.NewFromInt(300),
				Category:      "Home",
				Eco:           true,
				ValidTill:     "Limited Stock",
			},
		},
		Specialties: []string{"Handmade", "Artisan", "Chemical-Free"},
		Image:       "🌿",
	},
	{
		ID:         4,
		Name:       "Sustainable Living Co.",
		Address:    "Indiranagar, Bangalore",
		DistanceKm: 4.2,
		Rating:     4.7,
		Phone:      "+91 98765 43213",
		OpenTill:   "21:30",
		Offers: []response.Offer{
			{
				Title:         "Zero Waste Starter Kit",
				Description:   "Complete kit for sustainable living",
				OriginalPrice: decimal.NewFromInt(800),
				OfferPrice:    decimal.NewFromInt(560),
				Category:      "Lifestyle",
				Eco:           true,
				ValidTill:     "Flash Sale",
			},
			{
				Title:         "Organic Cotton Clothing",
				Description:   "Ethically sourced apparel - 35% off",
				OriginalPrice: decimal.NewFromInt(400),
				OfferPrice:    decimal.NewFromInt(260),
				Category:      "Clothing",
				Eco:           true,
				ValidTill:     "This Month",
			},
		},
		Specialties: []string{"Zero Waste", "Ethical", "Fair Trade"},
		Image:       "♻️",
	},
	{
		ID:         5,
		Name:       "Green Choice Mall",
		Address:    "Whitefield, Bangalore",
		DistanceKm: 8.5,
		Rating:     4.4,
		Phone:      "+91 98765 43214",
		OpenTill:   "22:30",
		Offers: []response.Offer{
			{
				Title:         "Solar Gadgets Expo",
				Description:   "Solar lanterns, chargers - 50% off",
				OriginalPrice: decimal.NewFromInt(600),
				OfferPrice:    decimal.NewFromInt(300),
				Category:      "Electronics",
				Eco:           true,
				ValidTill:     "Exhibition",
			},
			{
				Title:         "Organic Beauty Range",
				Description:   "Natural cosmetics & skincare",
				OriginalPrice: decimal.NewFromInt(350),
				OfferPrice:    decimal.NewFromInt(245),
				Category:      "Beauty",
				Eco:           true,
				ValidTill:     "New Launch",
			},
		},
		Specialties: []string{"Solar Tech", "Natural Beauty", "Green Electronics"},
		Image:       "🏬",
	},
}
