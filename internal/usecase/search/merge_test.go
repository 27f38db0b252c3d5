package search

import (
	"testing"

	"github.com/ethanaturner/libretexts-pts/internal/domain"
)

func TestMergeAssetHits_FirstOccurrenceWins(t *testing.T) {
	direct := []domain.AssetHit{publicHit("f1", "p1", 3.0)}
	byTag := []domain.AssetHit{publicHit("f1", "p1", 9.9), publicHit("f2", "p1", 2.0)}
	byAuthor := []domain.AssetHit{publicHit("f2", "p1", 8.8), publicHit("f3", "p1", 1.0)}

	merged := mergeAssetHits(direct, byTag, byAuthor)
	if len(merged) != 3 {
		t.Fatalf("merged count = %d, want 3", len(merged))
	}
	if merged[0].Score != 3.0 {
		t.Errorf("f1 should keep direct pipeline score, got %v", merged[0].Score)
	}
	if merged[1].Score != 2.0 {
		t.Errorf("f2 should keep tag pipeline score, got %v", merged[1].Score)
	}
}

func TestMergeAssetHits_DropsMalformedJoins(t *testing.T) {
	hits := []domain.AssetHit{
		publicHit("f1", "p1", 1),
		{File: domain.ProjectFile{FileID: "", ProjectID: "p1"}},
		{File: domain.ProjectFile{FileID: "f2", ProjectID: ""}},
		{File: domain.ProjectFile{FileID: "f3", ProjectID: "ghost"}}, // project join missing
	}

	merged := mergeAssetHits(hits)
	if len(merged) != 1 || merged[0].File.FileID != "f1" {
		t.Errorf("merged = %+v, want only f1", merged)
	}
}

func TestFilterVisibleAssets(t *testing.T) {
	private := publicHit("f2", "p2", 1)
	private.Project.Visibility = domain.VisibilityPrivate
	otherOrg := publicHit("f3", "p3", 1)
	otherOrg.Project.OrgID = "elsewhere"
	sameOrg := publicHit("f1", "p1", 1)
	sameOrg.Project.OrgID = "libretexts"

	out := filterVisibleAssets(
		[]domain.AssetHit{sameOrg, private, otherOrg},
		domain.OrgContext{OrgID: "libretexts"},
	)
	if len(out) != 1 || out[0].File.FileID != "f1" {
		t.Errorf("visible = %+v, want only f1", out)
	}
}

func TestFilterVisibleAssets_NoOrgScope(t *testing.T) {
	h := publicHit("f1", "p1", 1)
	h.Project.OrgID = "anywhere"

	out := filterVisibleAssets([]domain.AssetHit{h}, domain.OrgContext{})
	if len(out) != 1 {
		t.Error("without org scope, any public project passes")
	}
}

func TestFilterByOrgSubstring(t *testing.T) {
	h1 := publicHit("f1", "p1", 1)
	h1.Project.AssociatedOrgs = []string{"LibreTexts", "CalState"}
	h2 := publicHit("f2", "p2", 1)
	h2.Project.AssociatedOrgs = []string{"MIT OCW"}

	out := filterByOrgSubstring([]domain.AssetHit{h1, h2}, "calstate")
	if len(out) != 1 || out[0].File.FileID != "f1" {
		t.Errorf("filtered = %+v, want only f1", out)
	}

	all := filterByOrgSubstring([]domain.AssetHit{h1, h2}, "")
	if len(all) != 2 {
		t.Error("empty fragment should not filter")
	}
}

func TestFilterByScore(t *testing.T) {
	hits := []domain.AssetHit{
		publicHit("f1", "p1", 2.5),
		publicHit("f2", "p1", 2.0),
		publicHit("f3", "p1", 1.9),
	}

	out := filterByScore(hits, 2.0)
	if len(out) != 2 {
		t.Fatalf("kept %d hits, want 2 (floor inclusive)", len(out))
	}
	if out[1].File.FileID != "f2" {
		t.Errorf("boundary score should be kept: %+v", out)
	}
}
