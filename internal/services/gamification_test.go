package services

import "testing"

func sampleEntries() []LeaderboardEntry {
	return []LeaderboardEntry{
		{UserID: "u1", TotalPoints: 10, TotalArticles: 7, AverageQualityScore: 0.5},
		{UserID: "u2", TotalPoints: 30, TotalArticles: 2, AverageQualityScore: 0.9},
		{UserID: "u3", TotalPoints: 20, TotalArticles: 5, AverageQualityScore: 0.1},
	}
}

func TestRankLeaderboardByPoints(t *testing.T) {
	ranked := RankLeaderboard(sampleEntries(), LeaderboardPoints)
	want := []string{"u2", "u3", "u1"}
	for i, id := range want {
		if ranked[i].UserID != id {
			t.Fatalf("position %d: expected %s, got %s", i, id, ranked[i].UserID)
		}
		if ranked[i].RankPosition != i+1 {
			t.Fatalf("position %d: expected rank %d, got %d", i, i+1, ranked[i].RankPosition)
		}
	}
}

func TestRankLeaderboardByArticles(t *testing.T) {
	ranked := RankLeaderboard(sampleEntries(), LeaderboardArticles)
	want := []string{"u1", "u3", "u2"}
	for i, id := range want {
		if ranked[i].UserID != id {
			t.Fatalf("position %d: expected %s, got %s", i, id, ranked[i].UserID)
		}
	}
	for i := 1; i < len(ranked); i++ {
		if ranked[i].TotalArticles > ranked[i-1].TotalArticles {
			t.Fatalf("articles not descending at index %d", i)
		}
	}
}

func TestRankLeaderboardByQuality(t *testing.T) {
	ranked := RankLeaderboard(sampleEntries(), LeaderboardQuality)
	if ranked[0].UserID != "u2" || ranked[2].UserID != "u3" {
		t.Fatalf("unexpected quality order: %v, %v, %v", ranked[0].UserID, ranked[1].UserID, ranked[2].UserID)
	}
}

func TestRankLeaderboardUnknownMetricFallsBackToPoints(t *testing.T) {
	ranked := RankLeaderboard(sampleEntries(), "bogus")
	if ranked[0].UserID != "u2" {
		t.Fatalf("expected points order for unknown metric, got %s first", ranked[0].UserID)
	}
}

func TestRankLeaderboardDoesNotMutateInput(t *testing.T) {
	entries := sampleEntries()
	_ = RankLeaderboard(entries, LeaderboardArticles)
	if entries[0].UserID != "u1" || entries[0].RankPosition != 0 {
		t.Fatalf("input slice was mutated: %+v", entries[0])
	}
}
