// Merchantlens - Predictive Commerce Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/merchantlens

package algorithms

import (
	"math"
	"testing"
	"time"

	"github.com/tomtom215/merchantlens/internal/models"
)

// buildInteractions expands user -> products into purchase records.
func buildInteractions(byUser map[string][]string) []models.InteractionRecord {
	ts := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	var out []models.InteractionRecord
	for user, products := range byUser {
		for _, p := range products {
			out = append(out, models.InteractionRecord{
				UserID:    user,
				ProductID: p,
				Type:      models.InteractionPurchase,
				Timestamp: ts,
			})
		}
	}
	return out
}

// jaccardFixture: A/B share 3 of 4 users, A/C share 1 of 5, D is isolated.
func jaccardFixture() []models.InteractionRecord {
	return buildInteractions(map[string][]string{
		"u1": {"A", "B", "C"},
		"u2": {"A", "B"},
		"u3": {"A", "B"},
		"u4": {"B"},
		"u5": {"C"},
		"u6": {"C"},
		"u7": {"D"},
	})
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCollaborativeFilter_Similarity(t *testing.T) {
	t.Parallel()
	cf := NewCollaborativeFilter(DefaultCollaborativeConfig(), jaccardFixture())

	tests := []struct {
		a, b string
		want float64
	}{
		{"A", "B", 0.75},
		{"A", "C", 0.2},
		{"B", "C", 1.0 / 6.0},
		{"A", "D", 0},
		{"A", "missing", 0},
	}
	for _, tt := range tests {
		if got := cf.Similarity(tt.a, tt.b); !almostEqual(got, tt.want) {
			t.Errorf("Similarity(%s, %s) = %f, want %f", tt.a, tt.b, got, tt.want)
		}
	}
	if cf.ProductCount() != 4 {
		t.Errorf("ProductCount() = %d, want 4", cf.ProductCount())
	}
}

func TestCollaborativeFilter_RecommendForUser_RanksByJaccard(t *testing.T) {
	t.Parallel()
	cf := NewCollaborativeFilter(DefaultCollaborativeConfig(), jaccardFixture())

	got := cf.RecommendForUser([]string{"A"}, 10)

	if len(got) != 2 {
		t.Fatalf("len(RecommendForUser) = %d, want 2: %+v", len(got), got)
	}
	if got[0].ProductID != "B" || got[1].ProductID != "C" {
		t.Fatalf("order = [%s %s], want [B C]", got[0].ProductID, got[1].ProductID)
	}
	if !almostEqual(got[0].Score, 0.75) || !almostEqual(got[1].Score, 0.2) {
		t.Errorf("scores = %f, %f, want 0.75, 0.2", got[0].Score, got[1].Score)
	}
	for _, r := range got {
		if r.Confidence != 0.95 {
			t.Errorf("%s confidence = %f, want 0.95", r.ProductID, r.Confidence)
		}
		if r.Method != models.MethodCollaborative {
			t.Errorf("%s method = %s, want collaborative", r.ProductID, r.Method)
		}
	}
}

func TestCollaborativeFilter_RecommendForUser_HitRatioConfidence(t *testing.T) {
	t.Parallel()
	cf := NewCollaborativeFilter(DefaultCollaborativeConfig(), jaccardFixture())

	got := cf.RecommendForUser([]string{"A", "D", "D"}, 10)

	if len(got) == 0 || got[0].ProductID != "B" {
		t.Fatalf("RecommendForUser() = %+v, want B first", got)
	}
	if !almostEqual(got[0].Confidence, 0.5) {
		t.Errorf("B confidence = %f, want 0.5 (1 of 2 distinct sources)", got[0].Confidence)
	}
}

func TestCollaborativeFilter_RecommendForUser_AveragesAcrossSources(t *testing.T) {
	t.Parallel()
	cf := NewCollaborativeFilter(DefaultCollaborativeConfig(), jaccardFixture())

	// C is reached from A (0.2) and from B (1/6).
	got := cf.RecommendForUser([]string{"A", "B"}, 10)

	if len(got) != 1 || got[0].ProductID != "C" {
		t.Fatalf("RecommendForUser() = %+v, want only C", got)
	}
	want := (0.2 + 1.0/6.0) / 2
	if !almostEqual(got[0].Score, want) {
		t.Errorf("C score = %f, want %f", got[0].Score, want)
	}
	if got[0].Confidence != 0.95 {
		t.Errorf("C confidence = %f, want 0.95", got[0].Confidence)
	}
}

func TestCollaborativeFilter_NeighborsTakenBeforeFiltering(t *testing.T) {
	t.Parallel()
	cf := NewCollaborativeFilter(CollaborativeConfig{NeighborsPerSource: 1}, jaccardFixture())

	// The single nearest neighbor of A is B and of B is A; both are interacted.
	if got := cf.RecommendForUser([]string{"A", "B"}, 10); len(got) != 0 {
		t.Errorf("RecommendForUser() = %+v, want empty", got)
	}
}

func TestCollaborativeFilter_NeverReturnsInteracted(t *testing.T) {
	t.Parallel()
	cf := NewCollaborativeFilter(DefaultCollaborativeConfig(), jaccardFixture())

	for _, interacted := range [][]string{{"A"}, {"B"}, {"C"}, {"A", "C"}, {"B", "C", "D"}} {
		set := newProductSet(interacted)
		for _, r := range cf.RecommendForUser(interacted, 10) {
			if set.has(r.ProductID) {
				t.Errorf("RecommendForUser(%v) returned interacted %s", interacted, r.ProductID)
			}
		}
	}
}

func TestCollaborativeFilter_FindSimilarProducts(t *testing.T) {
	t.Parallel()
	cf := NewCollaborativeFilter(DefaultCollaborativeConfig(), jaccardFixture())

	got := cf.FindSimilarProducts("C", 10)
	if len(got) != 2 || got[0].ProductID != "A" || got[1].ProductID != "B" {
		t.Fatalf("FindSimilarProducts(C) = %+v, want [A B]", got)
	}

	if got := cf.FindSimilarProducts("C", 1); len(got) != 1 {
		t.Errorf("len(FindSimilarProducts(C, 1)) = %d, want 1", len(got))
	}
	if got := cf.FindSimilarProducts("D", 10); len(got) != 0 {
		t.Errorf("FindSimilarProducts(D) = %+v, want empty", got)
	}
	if got := cf.FindSimilarProducts("A", 0); len(got) != 0 {
		t.Errorf("FindSimilarProducts(A, 0) = %+v, want empty", got)
	}
}

func TestCollaborativeFilter_TieBreakByProductID(t *testing.T) {
	t.Parallel()
	cf := NewCollaborativeFilter(DefaultCollaborativeConfig(), buildInteractions(map[string][]string{
		"u1": {"X", "Z", "Y"},
	}))

	got := cf.FindSimilarProducts("X", 10)
	if len(got) != 2 || got[0].ProductID != "Y" || got[1].ProductID != "Z" {
		t.Errorf("FindSimilarProducts(X) = %+v, want [Y Z]", got)
	}
}

func TestCollaborativeFilter_EmptyInputs(t *testing.T) {
	t.Parallel()

	cf := NewCollaborativeFilter(DefaultCollaborativeConfig(), nil)
	if got := cf.RecommendForUser([]string{"A"}, 5); len(got) != 0 {
		t.Errorf("RecommendForUser() on empty index = %+v, want empty", got)
	}

	cf = NewCollaborativeFilter(DefaultCollaborativeConfig(), jaccardFixture())
	if got := cf.RecommendForUser(nil, 5); len(got) != 0 {
		t.Errorf("RecommendForUser(nil) = %+v, want empty", got)
	}
}
