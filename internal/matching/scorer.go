package matching

import "math"

const (
	neutralJobScore = 50
	minJobScore     = 30
	maxJobScore     = 95
	jitterSpan      = 10.0
)

type Scorer struct {
	rand Rand
}

func NewScorer(r Rand) *Scorer {
	if r == nil {
		r = DefaultRand
	}
	return &Scorer{rand: r}
}

// JobScore rates how well userSkills cover the required tags of a job.
// A user without skills gets the neutral 50. Otherwise the overlap ratio is
// perturbed by up to five points and kept within [30, 95].
func (s *Scorer) JobScore(userSkills, required []string) int {
	if len(userSkills) == 0 {
		return neutralJobScore
	}
	base := 0.0
	if len(required) > 0 {
		matches := 0
		for _, skill := range required {
			if OverlapsAny(userSkills, skill) {
				matches++
			}
		}
		base = float64(matches) / float64(len(required)) * 100
	}
	jitter := s.rand.Float64()*jitterSpan - jitterSpan/2
	return clamp(round(base+jitter), minJobScore, maxJobScore)
}

// CourseScore favours courses that teach skills the user does not hold yet:
// 60 points for the share of new skills and 40 for the share of related ones.
func (s *Scorer) CourseScore(userSkills, courseSkills []string) int {
	if len(courseSkills) == 0 {
		return 0
	}
	var fresh, related int
	for _, skill := range courseSkills {
		if !HeldBy(userSkills, skill) {
			fresh++
		}
		if OverlapsAny(userSkills, skill) {
			related++
		}
	}
	n := float64(len(courseSkills))
	return clamp(round(float64(fresh)/n*60+float64(related)/n*40), 0, 100)
}

// round matches half-up rounding towards positive infinity.
func round(v float64) int {
	return int(math.Floor(v + 0.5))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
