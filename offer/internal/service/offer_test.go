package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	inErrors "github.com/madhuraks/ecobazaar/internal/errors"
)

func TestFindStores(t *testing.T) {
	tests := []struct {
		name        string
		radiusKm    float64
		expectedIds []int32
		expectedErr error
	}{
		{
			name:        "given default radius should exclude the far mall",
			radiusKm:    DefaultRadiusKm,
			expectedIds: []int32{1, 2, 3, 4},
		},
		{
			name:        "given large radius should return every store sorted by distance",
			radiusKm:    10,
			expectedIds: []int32{1, 2, 3, 4, 5},
		},
		{
			name:        "given tight radius should keep only the closest store",
			radiusKm:    1.5,
			expectedIds: []int32{1},
		},
		{
			name:        "given radius equal to a store distance should keep that store",
			radiusKm:    2.1,
			expectedIds: []int32{1, 2},
		},
		{
			name:        "given zero radius should return error invalid radius",
			radiusKm:    0,
			expectedErr: inErrors.ErrInvalidRadius,
		},
		{
			name:        "given negative radius should return error invalid radius",
			radiusKm:    -3,
			expectedErr: inErrors.ErrInvalidRadius,
		},
	}

	offerService := NewOfferService()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual, err := offerService.FindStores(context.Background(), tt.radiusKm)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			assert.NoError(t, err)

			actualIds := []int32{}
			for _, store := range actual {
				actualIds = append(actualIds, store.ID)
			}
			assert.EqualValues(t, tt.expectedIds, actualIds)
		})
	}
}

func TestFindStoreById(t *testing.T) {
	offerService := NewOfferService()

	actual, err := offerService.FindStoreById(context.Background(), 3)

	assert.NoError(t, err)
	assert.EqualValues(t, "Nature's Bounty", actual.Name)
	assert.Len(t, actual.Offers, 2)
}

func TestFindStoreByIdNotFound(t *testing.T) {
	offerService := NewOfferService()

	_, err := offerService.FindStoreById(context.Background(), 99)

	assert.ErrorIs(t, err, inErrors.ErrStoreNotFound)
}

func TestFindStoreLinks(t *testing.T) {
	offerService := NewOfferService()

	actual, err := offerService.FindStoreLinks(context.Background(), 1)

	assert.NoError(t, err)
	assert.EqualValues(
		t,
		"https://maps.google.com/maps?q=MG+Road%2C+Bangalore%2C+Green+Valley+Organic+Store",
		actual.MapURL,
	)
	assert.EqualValues(
		t,
		"https://www.google.com/maps/dir/?api=1&destination=MG+Road%2C+Bangalore",
		actual.DirectionsURL,
	)
	assert.EqualValues(t, "tel:+91 98765 43210", actual.TelURL)
	assert.EqualValues(
		t,
		"Check out Green Valley Organic Store on EcoBazaar! MG Road, Bangalore, 1.2 km away.",
		actual.ShareText,
	)
}

func TestFindStoreLinksNotFound(t *testing.T) {
	offerService := NewOfferService()

	_, err := offerService.FindStoreLinks(context.Background(), 42)

	assert.ErrorIs(t, err, inErrors.ErrStoreNotFound)
}
