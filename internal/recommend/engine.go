// Merchantlens - Predictive Commerce Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/merchantlens

package recommend

import (
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/tomtom215/merchantlens/internal/models"
	"github.com/tomtom215/merchantlens/internal/recommend/algorithms"
)

// Engine combines the recommendation algorithms into ranked product lists.
// It holds no per-request state and is safe for concurrent use.
type Engine struct {
	config *Config
	logger zerolog.Logger

	content      *algorithms.ContentFilter
	popularity   *algorithms.Popularity
	coOccurrence *algorithms.CoOccurrence
}

// NewEngine creates a new recommendation engine.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	cfg = cfg.Clone()

	return &Engine{
		config:       cfg,
		logger:       logger.With().Str("component", "recommend").Logger(),
		content:      algorithms.NewContentFilter(cfg.Content),
		popularity:   algorithms.NewPopularity(cfg.Popularity),
		coOccurrence: algorithms.NewCoOccurrence(cfg.CoOccurrence),
	}, nil
}

// GetConfig returns a copy of the engine configuration.
func (e *Engine) GetConfig() *Config {
	return e.config.Clone()
}

// Recommend produces personalized recommendations.
//
// Collaborative candidates come from the user's full history, content-based
// candidates from the user's most recently touched products. Candidates found
// by both are averaged into hybrid entries. When the merged list is shorter
// than the limit it is topped up with popular products. Products the user
// already interacted with are never returned.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) Recommend(req Request) []models.Recommendation {
	limit := e.config.resolveLimit(req.Limit)
	catalog := newCatalogIndex(req.Catalog)
	history := userHistory(req)
	interacted := interactedSet(history)

	logger := e.logger.With().Str("user_id", req.UserID).Int("limit", limit).Logger()

	// Collaborative: every interaction, plus the user's own in case the log omits them.
	events := make([]models.InteractionRecord, 0, len(req.Interactions)+len(req.UserInteractions))
	events = append(events, req.Interactions...)
	events = append(events, withUser(req.UserInteractions, req.UserID)...)
	cf := algorithms.NewCollaborativeFilter(e.config.Collaborative, events)
	collaborative := cf.RecommendForUser(keys(interacted), cf.ProductCount())

	// Content-based: best similarity per candidate across the recent products.
	candidates := make([]models.ProductFeature, 0, len(req.Catalog))
	for i := range req.Catalog {
		if _, seen := interacted[req.Catalog[i].ProductID]; !seen {
			candidates = append(candidates, req.Catalog[i])
		}
	}
	var content []models.Recommendation
	for _, id := range recentProducts(history, e.config.Hybrid.RecentProducts) {
		source, ok := catalog[id]
		if !ok {
			continue
		}
		content = keepBest(content, e.content.RecommendSimilar(source, candidates, len(candidates)))
	}

	merged := e.merge(collaborative, content, models.MethodHybrid, limit)

	fallback := 0
	if len(merged) < limit {
		exclude := make(map[string]struct{}, len(interacted)+len(merged))
		for id := range interacted {
			exclude[id] = struct{}{}
		}
		for i := range merged {
			exclude[merged[i].ProductID] = struct{}{}
		}
		popular := e.popularity.TopK(req.Catalog, exclude, limit-len(merged))
		fallback = len(popular)
		merged = append(merged, popular...)
	}

	finalize(merged, catalog)

	logger.Debug().
		Int("history", len(interacted)).
		Int("collaborative", len(collaborative)).
		Int("content", len(content)).
		Int("popular", fallback).
		Int("returned", len(merged)).
		Msg("recommendation complete")

	return merged
}

// SimilarProducts lists products related to one product, combining shared
// customers with attribute similarity. Entries found by both signals are
// averaged and tagged as similar.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) SimilarProducts(req SimilarRequest) []models.Recommendation {
	limit := e.config.resolveLimit(req.Limit)
	catalog := newCatalogIndex(req.Catalog)

	cf := algorithms.NewCollaborativeFilter(e.config.Collaborative, req.Interactions)
	neighbors := cf.FindSimilarProducts(req.ProductID, cf.ProductCount())
	collaborative := make([]models.Recommendation, 0, len(neighbors))
	for _, n := range neighbors {
		collaborative = append(collaborative, models.Recommendation{
			ProductID:  n.ProductID,
			Score:      n.Score,
			Confidence: e.config.Collaborative.MaxConfidence,
			Reason:     "Customers who bought this also bought",
			Method:     models.MethodCollaborative,
		})
	}

	var content []models.Recommendation
	if target, ok := catalog[req.ProductID]; ok {
		content = e.content.RecommendSimilar(target, req.Catalog, len(req.Catalog))
	}

	merged := e.merge(collaborative, content, models.MethodSimilar, limit)
	finalize(merged, catalog)

	e.logger.Debug().
		Str("product_id", req.ProductID).
		Int("collaborative", len(collaborative)).
		Int("content", len(content)).
		Int("returned", len(merged)).
		Msg("similar products complete")

	return merged
}

// FrequentlyBoughtTogether ranks products by how often they share an order
// with the requested product. The product itself is never returned.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) FrequentlyBoughtTogether(req BoughtTogetherRequest) []models.Recommendation {
	limit := e.config.resolveLimit(req.Limit)
	recs := e.coOccurrence.BoughtTogether(req.Orders, req.ProductID, limit)
	finalize(recs, newCatalogIndex(req.Catalog))

	e.logger.Debug().
		Str("product_id", req.ProductID).
		Int("orders", len(req.Orders)).
		Int("returned", len(recs)).
		Msg("frequently bought together complete")

	return recs
}

// merge boosts collaborative scores and averages entries present in both
// lists, relabelling them with overlap. The result is sorted and truncated.
func (e *Engine) merge(collaborative, content []models.Recommendation, overlap models.RecommendationMethod, limit int) []models.Recommendation {
	byID := make(map[string]*models.Recommendation, len(collaborative)+len(content))
	for i := range collaborative {
		rec := collaborative[i]
		rec.Score *= e.config.Hybrid.CollaborativeBoost
		byID[rec.ProductID] = &rec
	}

	for i := range content {
		c := content[i]
		existing, ok := byID[c.ProductID]
		if !ok {
			byID[c.ProductID] = &c
			continue
		}
		existing.Score = (existing.Score + c.Score) / 2
		existing.Confidence = (existing.Confidence + c.Confidence) / 2
		existing.Method = overlap
		existing.Reason = existing.Reason + "; " + c.Reason
	}

	merged := make([]models.Recommendation, 0, len(byID))
	for _, rec := range byID {
		merged = append(merged, *rec)
	}
	algorithms.SortRecommendations(merged)
	if len(merged) > limit {
		merged = merged[:limit]
	}
	return merged
}

// finalize resolves names from the catalog and clamps numeric fields.
func finalize(recs []models.Recommendation, catalog catalogIndex) {
	for i := range recs {
		if recs[i].ProductName == "" {
			recs[i].ProductName = catalog.name(recs[i].ProductID)
		}
		recs[i].Score = algorithms.NonNegative(recs[i].Score)
		recs[i].Confidence = algorithms.Clamp01(recs[i].Confidence)
	}
}

// keepBest merges next into acc keeping the higher score per product.
func keepBest(acc, next []models.Recommendation) []models.Recommendation {
	pos := make(map[string]int, len(acc))
	for i := range acc {
		pos[acc[i].ProductID] = i
	}
	for i := range next {
		if j, ok := pos[next[i].ProductID]; ok {
			if next[i].Score > acc[j].Score {
				acc[j] = next[i]
			}
			continue
		}
		pos[next[i].ProductID] = len(acc)
		acc = append(acc, next[i])
	}
	return acc
}

// userHistory returns the user's interactions from both request fields.
func userHistory(req Request) []models.InteractionRecord {
	history := make([]models.InteractionRecord, 0, len(req.UserInteractions))
	history = append(history, req.UserInteractions...)
	if req.UserID == "" {
		return history
	}
	for i := range req.Interactions {
		if req.Interactions[i].UserID == req.UserID {
			history = append(history, req.Interactions[i])
		}
	}
	return history
}

// withUser fills a missing user id so the user's own history joins the
// collaborative index under the right user.
func withUser(records []models.InteractionRecord, userID string) []models.InteractionRecord {
	out := make([]models.InteractionRecord, len(records))
	for i := range records {
		out[i] = records[i]
		if out[i].UserID == "" {
			out[i].UserID = userID
		}
	}
	return out
}

func interactedSet(history []models.InteractionRecord) map[string]struct{} {
	set := make(map[string]struct{}, len(history))
	for i := range history {
		if history[i].ProductID != "" {
			set[history[i].ProductID] = struct{}{}
		}
	}
	return set
}

func keys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// recentProducts returns up to n distinct product ids, most recent first.
// Equal timestamps are ordered by product id.
func recentProducts(history []models.InteractionRecord, n int) []string {
	sorted := make([]models.InteractionRecord, len(history))
	copy(sorted, history)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].Timestamp.Equal(sorted[j].Timestamp) {
			return sorted[i].Timestamp.After(sorted[j].Timestamp)
		}
		return sorted[i].ProductID < sorted[j].ProductID
	})

	seen := make(map[string]struct{}, n)
	out := make([]string, 0, n)
	for i := range sorted {
		id := sorted[i].ProductID
		if _, dup := seen[id]; dup || id == "" {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
		if len(out) == n {
			break
		}
	}
	return out
}
