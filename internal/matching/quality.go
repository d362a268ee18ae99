// internal/matching/quality.go

package matching

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/emberdate/ember-backend/internal/profile"
)

var ErrInvalidWeights = errors.New("quality weights must be non-negative and sum to 1.0")

// QualityWeights controls how the six sub-scores combine into the aggregate.
// Weights must be non-negative and sum to 1.0.
type QualityWeights struct {
	Distance  float64 `json:"distance"`
	Age       float64 `json:"age"`
	Interests float64 `json:"interests"`
	Lifestyle float64 `json:"lifestyle"`
	Pace      float64 `json:"pace"`
	Response  float64 `json:"response"`
}

// DefaultQualityWeights emphasizes interests and lifestyle.
func DefaultQualityWeights() QualityWeights {
	return QualityWeights{
		Distance:  0.15,
		Age:       0.10,
		Interests: 0.25,
		Lifestyle: 0.25,
		Pace:      0.10,
		Response:  0.15,
	}
}

func (w QualityWeights) Validate() error {
	if w.Distance < 0 || w.Age < 0 || w.Interests < 0 || w.Lifestyle < 0 || w.Pace < 0 || w.Response < 0 {
		return ErrInvalidWeights
	}
	total := w.Distance + w.Age + w.Interests + w.Lifestyle + w.Pace + w.Response
	if math.Abs(total-1.0) > 0.001 {
		return fmt.Errorf("%w: got %.3f", ErrInvalidWeights, total)
	}
	return nil
}

// MatchQuality is a computed snapshot of match compatibility from one user's
// perspective. It is never persisted; scores may differ between the two
// perspectives.
type MatchQuality struct {
	MatchID           uuid.UUID `json:"match_id"`
	PerspectiveUserID uuid.UUID `json:"perspective_user_id"`
	OtherUserID       uuid.UUID `json:"other_user_id"`
	ComputedAt        time.Time `json:"computed_at"`

	DistanceScore  float64 `json:"distance_score"`
	AgeScore       float64 `json:"age_score"`
	InterestScore  float64 `json:"interest_score"`
	LifestyleScore float64 `json:"lifestyle_score"`
	PaceScore      float64 `json:"pace_score"`
	ResponseScore  float64 `json:"response_score"`

	DistanceKm       float64       `json:"distance_km"`
	AgeDifference    int           `json:"age_difference"`
	SharedInterests  []string      `json:"shared_interests"`
	LifestyleMatches []string      `json:"lifestyle_matches"`
	TimeBetweenLikes time.Duration `json:"time_between_likes"`

	CompatibilityScore int      `json:"compatibility_score"`
	Highlights         []string `json:"highlights"`
}

// StarRating maps the aggregate score to 1-5 stars.
func (q *MatchQuality) StarRating() int {
	switch {
	case q.CompatibilityScore >= 90:
		return 5
	case q.CompatibilityScore >= 75:
		return 4
	case q.CompatibilityScore >= 60:
		return 3
	case q.CompatibilityScore >= 40:
		return 2
	default:
		return 1
	}
}

// CompatibilityLabel returns the display label for the aggregate score.
func (q *MatchQuality) CompatibilityLabel() string {
	switch {
	case q.CompatibilityScore >= 90:
		return "Excellent Match"
	case q.CompatibilityScore >= 75:
		return "Great Match"
	case q.CompatibilityScore >= 60:
		return "Good Match"
	case q.CompatibilityScore >= 40:
		return "Fair Match"
	default:
		return "Low Compatibility"
	}
}

// ComputeQuality scores the match between me and them from me's perspective.
// timeBetweenLikes is the gap between the two reciprocal likes; zero means
// unknown.
func ComputeQuality(match *Match, me, them *profile.Profile, timeBetweenLikes time.Duration, weights QualityWeights, now time.Time) *MatchQuality {
	distanceKm := 0.0
	distanceScore := 0.5
	if me.HasLocation() && them.HasLocation() {
		distanceKm = profileDistanceKm(me, them)
		distanceScore = calculateDistanceScore(distanceKm, me.MaxDistanceKm)
	}

	ageDiff := absInt(me.AgeAt(now) - them.AgeAt(now))
	ageScore := calculateAgeScore(ageDiff, me, them)

	interests := CompareInterests(me.Interests, them.Interests)
	interestScore := calculateInterestScore(interests, me, them)

	lifestyleMatches := findLifestyleMatches(me, them)
	lifestyleScore := calculateLifestyleScore(me, them)

	responseScore := calculateResponseScore(timeBetweenLikes)

	rawPace := PaceCompatibility(me.Pace, them.Pace)
	paceScore := PaceScore(rawPace)

	weighted := distanceScore*weights.Distance +
		ageScore*weights.Age +
		interestScore*weights.Interests +
		lifestyleScore*weights.Lifestyle +
		paceScore*weights.Pace +
		responseScore*weights.Response
	compatibility := int(math.Round(weighted * 100))

	q := &MatchQuality{
		MatchID:            match.ID,
		PerspectiveUserID:  me.ID,
		OtherUserID:        them.ID,
		ComputedAt:         now,
		DistanceScore:      distanceScore,
		AgeScore:           ageScore,
		InterestScore:      interestScore,
		LifestyleScore:     lifestyleScore,
		PaceScore:          paceScore,
		ResponseScore:      responseScore,
		DistanceKm:         distanceKm,
		AgeDifference:      ageDiff,
		SharedInterests:    interests.Shared,
		LifestyleMatches:   lifestyleMatches,
		TimeBetweenLikes:   timeBetweenLikes,
		CompatibilityScore: compatibility,
	}
	q.Highlights = generateHighlights(q, paceScore)
	return q
}

func calculateDistanceScore(distanceKm float64, maxDistanceKm int) float64 {
	if distanceKm <= 1 {
		return 1.0
	}
	if distanceKm >= float64(maxDistanceKm) {
		return 0.0
	}
	return 1.0 - distanceKm/float64(maxDistanceKm)
}

func calculateAgeScore(ageDiff int, me, them *profile.Profile) float64 {
	if ageDiff <= 2 {
		return 1.0
	}
	myRange := me.MaxAge - me.MinAge
	theirRange := them.MaxAge - them.MinAge
	avgRange := (myRange + theirRange) / 2
	if avgRange == 0 {
		return 1.0
	}
	return math.Max(0.0, 1.0-float64(ageDiff)/float64(avgRange))
}

func calculateInterestScore(m InterestMatch, me, them *profile.Profile) float64 {
	if len(me.Interests) == 0 && len(them.Interests) == 0 {
		return 0.5
	}
	if len(me.Interests) == 0 || len(them.Interests) == 0 {
		return 0.3
	}
	return m.OverlapRatio
}

func calculateLifestyleScore(me, them *profile.Profile) float64 {
	total := 0
	matches := 0
	if me.Smoking != "" && them.Smoking != "" {
		total++
		if me.Smoking == them.Smoking {
			matches++
		}
	}
	if me.Drinking != "" && them.Drinking != "" {
		total++
		if me.Drinking == them.Drinking {
			matches++
		}
	}
	if me.KidsStance != "" && them.KidsStance != "" {
		total++
		if kidsStancesCompatible(me.KidsStance, them.KidsStance) {
			matches++
		}
	}
	if me.LookingFor != "" && them.LookingFor != "" {
		total++
		if me.LookingFor == them.LookingFor {
			matches++
		}
	}
	if total == 0 {
		return 0.5
	}
	return float64(matches) / float64(total)
}

// kidsStancesCompatible: equal stances match, open matches anything, and
// "someday" pairs with "has kids".
func kidsStancesCompatible(a, b profile.KidsStance) bool {
	if a == b {
		return true
	}
	if a == profile.KidsOpen || b == profile.KidsOpen {
		return true
	}
	return (a == profile.KidsSomeday && b == profile.KidsHasKids) ||
		(a == profile.KidsHasKids && b == profile.KidsSomeday)
}

func calculateResponseScore(timeBetween time.Duration) float64 {
	if timeBetween <= 0 {
		return 0.5
	}
	hours := timeBetween.Hours()
	switch {
	case hours < 1:
		return 1.0
	case hours < 24:
		return 0.9
	case hours < 72:
		return 0.7
	case hours < 168:
		return 0.5
	case hours < 720:
		return 0.3
	default:
		return 0.1
	}
}

func findLifestyleMatches(me, them *profile.Profile) []string {
	var matches []string
	if me.Smoking != "" && me.Smoking == them.Smoking {
		switch me.Smoking {
		case profile.SmokingNever:
			matches = append(matches, "Both non-smokers")
		case profile.SmokingSometimes:
			matches = append(matches, "Both occasional smokers")
		}
	}
	if me.Drinking != "" && me.Drinking == them.Drinking {
		switch me.Drinking {
		case profile.DrinkingNever:
			matches = append(matches, "Neither drinks")
		case profile.DrinkingSocially:
			matches = append(matches, "Both social drinkers")
		}
	}
	if me.KidsStance != "" && them.KidsStance != "" {
		if me.KidsStance == them.KidsStance {
			matches = append(matches, "Same stance on kids")
		} else if kidsStancesCompatible(me.KidsStance, them.KidsStance) {
			matches = append(matches, "Compatible on kids")
		}
	}
	if me.LookingFor != "" && me.LookingFor == them.LookingFor {
		matches = append(matches, "Both looking for "+strings.ReplaceAll(string(me.LookingFor), "_", " "))
	}
	return matches
}

func generateHighlights(q *MatchQuality, paceScore float64) []string {
	var highlights []string

	if q.DistanceKm > 0 {
		if q.DistanceKm < 5 {
			highlights = append(highlights, fmt.Sprintf("Lives nearby (%.1f km away)", q.DistanceKm))
		} else if q.DistanceKm < 15 {
			highlights = append(highlights, fmt.Sprintf("%.0f km away", q.DistanceKm))
		}
	}

	if len(q.SharedInterests) == 1 {
		highlights = append(highlights, "You both enjoy "+q.SharedInterests[0])
	} else if len(q.SharedInterests) > 1 {
		highlights = append(highlights, fmt.Sprintf("You share %d interests: %s",
			len(q.SharedInterests), FormatSharedInterests(q.SharedInterests)))
	}

	highlights = append(highlights, q.LifestyleMatches...)

	if paceScore >= 0.95 {
		highlights = append(highlights, "Total pace sync")
	} else if paceScore >= 0.8 {
		highlights = append(highlights, "Great communication sync")
	}

	if q.TimeBetweenLikes > 0 && q.TimeBetweenLikes < 24*time.Hour {
		highlights = append(highlights, "Quick mutual interest!")
	}

	if q.AgeDifference <= 2 {
		highlights = append(highlights, "Similar age")
	}

	if len(highlights) > 5 {
		highlights = highlights[:5]
	}
	return highlights
}

// InterestMatch carries the overlap metrics between two interest sets.
// OverlapRatio is shared/min(len(a),len(b)); JaccardIndex is shared/union.
type InterestMatch struct {
	Shared       []string `json:"shared"`
	SharedCount  int      `json:"shared_count"`
	OverlapRatio float64  `json:"overlap_ratio"`
	JaccardIndex float64  `json:"jaccard_index"`
}

// CompareInterests computes overlap metrics between two interest lists.
// Either list being empty yields zero metrics.
func CompareInterests(a, b []string) InterestMatch {
	if len(a) == 0 || len(b) == 0 {
		return InterestMatch{Shared: []string{}}
	}

	setA := make(map[string]bool, len(a))
	for _, v := range a {
		setA[v] = true
	}
	setB := make(map[string]bool, len(b))
	for _, v := range b {
		setB[v] = true
	}

	shared := make([]string, 0)
	union := make(map[string]bool, len(setA)+len(setB))
	for v := range setA {
		union[v] = true
		if setB[v] {
			shared = append(shared, v)
		}
	}
	for v := range setB {
		union[v] = true
	}
	sort.Strings(shared)

	minSize := len(setA)
	if len(setB) < minSize {
		minSize = len(setB)
	}
	return InterestMatch{
		Shared:       shared,
		SharedCount:  len(shared),
		OverlapRatio: float64(len(shared)) / float64(minSize),
		JaccardIndex: float64(len(shared)) / float64(len(union)),
	}
}

// FormatSharedInterests renders up to three interests with an "and N more"
// suffix when the list is longer.
func FormatSharedInterests(shared []string) string {
	switch len(shared) {
	case 0:
		return ""
	case 1:
		return shared[0]
	case 2:
		return shared[0] + " and " + shared[1]
	case 3:
		return shared[0] + ", " + shared[1] + ", and " + shared[2]
	default:
		return strings.Join(shared[:3], ", ") + fmt.Sprintf(", and %d more", len(shared)-3)
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
