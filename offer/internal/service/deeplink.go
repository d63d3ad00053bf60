package service

import (
	"fmt"
	"net/url"

	"github.com/madhuraks/ecobazaar/offer/pkg/response"
)

func MapURL(address, storeName string) string {
	return "https://maps.google.com/maps?q=" + url.QueryEscape(address+", "+storeName)
}

func DirectionsURL(address string) string {
	return "https://www.google.com/maps/dir/?api=1&destination=" + url.QueryEscape(address)
}

func TelURL(phone string) string {
	return "tel:" + phone
}

func ShareText(store response.Store) string {
	return fmt.Sprintf(
		"Check out %s on EcoBazaar! %s, %.1f km away.",
		store.Name,
		store.Address,
		store.DistanceKm,
	)
}

func StoreLinks(store response.Store) response.StoreLinks {
	return response.StoreLinks{
		MapURL:        MapURL(store.Address, store.Name),
		DirectionsURL: DirectionsURL(store.Address),
		TelURL:        TelURL(store.Phone),
		ShareText:     ShareText(store),
	}
}
