package search

import (
	"strings"

	"github.com/ethanaturner/libretexts-pts/internal/domain"
)

// mergeAssetHits concatenates pipeline outputs in precedence order
// (direct, then tag, then author), drops records with a malformed join
// (missing file or project identifier), and dedupes by file ID with the
// first occurrence winning. Pipeline order therefore encodes precedence;
// no cross-pipeline score re-sort is performed.
func mergeAssetHits(pipelines ...[]domain.AssetHit) []domain.AssetHit {
	var merged []domain.AssetHit
	seen := make(map[string]bool)

	for _, hits := range pipelines {
		for _, h := range hits {
			if h.File.FileID == "" || h.File.ProjectID == "" || h.Project.ProjectID == "" {
				continue
			}
			if seen[h.File.FileID] {
				continue
			}
			seen[h.File.FileID] = true
			merged = append(merged, h)
		}
	}
	return merged
}

// filterVisibleAssets keeps hits whose parent project is publicly visible
// and, when the deployment is org-scoped, belongs to that org.
func filterVisibleAssets(hits []domain.AssetHit, org domain.OrgContext) []domain.AssetHit {
	out := hits[:0]
	for _, h := range hits {
		if h.Project.Visibility != domain.VisibilityPublic {
			continue
		}
		if org.OrgID != "" && h.Project.OrgID != org.OrgID {
			continue
		}
		out = append(out, h)
	}
	return out
}

// filterByOrgSubstring keeps hits whose parent project lists an associated
// organization containing the given fragment, case-insensitively.
func filterByOrgSubstring(hits []domain.AssetHit, fragment string) []domain.AssetHit {
	if fragment == "" {
		return hits
	}
	needle := strings.ToLower(fragment)

	out := hits[:0]
	for _, h := range hits {
		for _, org := range h.Project.AssociatedOrgs {
			if strings.Contains(strings.ToLower(org), needle) {
				out = append(out, h)
				break
			}
		}
	}
	return out
}

// filterByScore keeps hits at or above the pipeline's minimum score.
func filterByScore(hits []domain.AssetHit, floor float64) []domain.AssetHit {
	out := hits[:0]
	for _, h := range hits {
		if h.Score >= floor {
			out = append(out, h)
		}
	}
	return out
}
