package config

import "sync"

type RecommendationConfig struct {
	MinJobScore    int
	MinCourseScore int
	MaxRetained    int
}

var (
	recommendationConfig *RecommendationConfig
	recommendationOnce   sync.Once
)

func LoadRecommendationConfig() *RecommendationConfig {
	recommendationOnce.Do(func() {
		recommendationConfig = &RecommendationConfig{
			MinJobScore:    getEnvInt("RECOMMENDATION_MIN_JOB_SCORE", 30),
			MinCourseScore: getEnvInt("RECOMMENDATION_MIN_COURSE_SCORE", 20),
			MaxRetained:    getEnvInt("RECOMMENDATION_MAX", 10),
		}
	})
	return recommendationConfig
}
