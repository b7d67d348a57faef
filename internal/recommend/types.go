// Merchantlens - Predictive Commerce Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/merchantlens

package recommend

import (
	"github.com/tomtom215/merchantlens/internal/models"
)

// Request asks for personalized recommendations for one user.
type Request struct {
	// UserID identifies the user. Interactions carrying this id are treated
	// as part of the user's history.
	UserID string

	// Limit is the number of recommendations requested.
	// Zero uses the configured default; values above the maximum are capped.
	Limit int

	// UserInteractions is the user's own history. It may be empty when the
	// history is contained in Interactions.
	UserInteractions []models.InteractionRecord

	// Interactions is the interaction log of all users, used for
	// collaborative filtering.
	Interactions []models.InteractionRecord

	// Catalog holds the candidate products and the attributes used for
	// content similarity, popularity and product names.
	Catalog []models.ProductFeature
}

// SimilarRequest asks for products similar to one product.
type SimilarRequest struct {
	ProductID    string
	Limit        int
	Interactions []models.InteractionRecord
	Catalog      []models.ProductFeature
}

// BoughtTogetherRequest asks for products frequently ordered with one product.
type BoughtTogetherRequest struct {
	ProductID string
	Limit     int

	// Orders maps an order id to the product ids it contains.
	Orders map[string][]string

	// Catalog is optional and only used to resolve product names.
	Catalog []models.ProductFeature
}

// catalogIndex resolves product ids to catalog entries. The first entry for
// an id wins.
type catalogIndex map[string]*models.ProductFeature

func newCatalogIndex(catalog []models.ProductFeature) catalogIndex {
	idx := make(catalogIndex, len(catalog))
	for i := range catalog {
		if _, ok := idx[catalog[i].ProductID]; !ok {
			idx[catalog[i].ProductID] = &catalog[i]
		}
	}
	return idx
}

func (idx catalogIndex) name(id string) string {
	if p, ok := idx[id]; ok {
		return p.ProductName
	}
	return ""
}
