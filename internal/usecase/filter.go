package usecase

import "FeedHarvester/internal/domain"

// FilterByScore keeps records whose keyword score is at least threshold,
// preserving order. When enabled is false every record is kept.
func FilterByScore(records []domain.AIRecord, threshold int, enabled bool) []domain.AIRecord {
	if !enabled {
		return records
	}

	kept := make([]domain.AIRecord, 0, len(records))
	for _, r := range records {
		if r.KeywordScore >= threshold {
			kept = append(kept, r)
		}
	}
	return kept
}
