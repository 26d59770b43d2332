package usecase

const (
	defaultRecommendationLimit = 20
	defaultTimelineLimit       = 50
	defaultHistoryLimit        = 20
	maxPageLimit               = 100
)

func pageWindow(page, limit, fallback int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = fallback
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return page, limit
}
