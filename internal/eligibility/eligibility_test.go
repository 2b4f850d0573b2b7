package eligibility

import (
	"testing"
	"time"

	"github.com/boomghooom/BoomGhoomBackend-sub000/internal/domain"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string   { return &s }
func f64Ptr(f float64) *float64 { return &f }

var now = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func TestEvaluate_AllRulesPass(t *testing.T) {
	rules := domain.Eligibility{
		Genders:     []string{"male", "female"},
		MinAge:      18,
		MaxAge:      40,
		MemberLimit: 10,
	}
	dob := time.Date(2000, 1, 10, 0, 0, 0, 0, time.UTC)
	c := Candidate{Gender: strPtr("female"), DateOfBirth: &dob}

	res := Evaluate(rules, nil, c, 5, now)

	assert.True(t, res.Eligible)
	assert.Empty(t, res.Reason)
}

func TestEvaluate_GenderNotAllowed(t *testing.T) {
	rules := domain.Eligibility{Genders: []string{"female"}}
	c := Candidate{Gender: strPtr("male")}

	res := Evaluate(rules, nil, c, 0, now)

	assert.False(t, res.Eligible)
	assert.Contains(t, res.Reason, "gender")
}

func TestEvaluate_UnknownGenderPasses(t *testing.T) {
	rules := domain.Eligibility{Genders: []string{"female"}}

	res := Evaluate(rules, nil, Candidate{}, 0, now)

	assert.True(t, res.Eligible)
}

func TestEvaluate_TooYoung(t *testing.T) {
	rules := domain.Eligibility{MinAge: 21}
	dob := time.Date(2010, 1, 1, 0, 0, 0, 0, time.UTC)
	c := Candidate{DateOfBirth: &dob}

	res := Evaluate(rules, nil, c, 0, now)

	assert.False(t, res.Eligible)
	assert.Contains(t, res.Reason, "minimum age")
}

func TestEvaluate_TooOld(t *testing.T) {
	rules := domain.Eligibility{MaxAge: 30}
	dob := time.Date(1980, 1, 1, 0, 0, 0, 0, time.UTC)
	c := Candidate{DateOfBirth: &dob}

	res := Evaluate(rules, nil, c, 0, now)

	assert.False(t, res.Eligible)
	assert.Contains(t, res.Reason, "maximum age")
}

func TestEvaluate_GenderCheckedBeforeAge(t *testing.T) {
	rules := domain.Eligibility{Genders: []string{"female"}, MinAge: 21}
	dob := time.Date(2010, 1, 1, 0, 0, 0, 0, time.UTC)
	c := Candidate{Gender: strPtr("male"), DateOfBirth: &dob}

	res := Evaluate(rules, nil, c, 0, now)

	assert.False(t, res.Eligible)
	assert.Contains(t, res.Reason, "gender")
}

func TestEvaluate_TooFarAway(t *testing.T) {
	rules := domain.Eligibility{MaxDistanceKm: f64Ptr(10)}
	eventLoc := &domain.Location{Lat: 28.6139, Lng: 77.2090} // Delhi
	c := Candidate{Location: &domain.Location{Lat: 19.0760, Lng: 72.8777}} // Mumbai

	res := Evaluate(rules, eventLoc, c, 0, now)

	assert.False(t, res.Eligible)
	assert.Contains(t, res.Reason, "km away")
}

func TestEvaluate_DistanceSkippedWithoutLocation(t *testing.T) {
	rules := domain.Eligibility{MaxDistanceKm: f64Ptr(1)}
	eventLoc := &domain.Location{Lat: 28.6139, Lng: 77.2090}

	res := Evaluate(rules, eventLoc, Candidate{}, 0, now)

	assert.True(t, res.Eligible)
}

func TestEvaluate_AtCapacity(t *testing.T) {
	rules := domain.Eligibility{MemberLimit: 2}

	res := Evaluate(rules, nil, Candidate{}, 2, now)

	assert.False(t, res.Eligible)
	assert.Contains(t, res.Reason, "member limit")
}

func TestEvaluate_ZeroLimitIsUnlimited(t *testing.T) {
	res := Evaluate(domain.Eligibility{}, nil, Candidate{}, 10_000, now)

	assert.True(t, res.Eligible)
}

func TestAge_BirthdayNotYetReached(t *testing.T) {
	dob := time.Date(2000, 12, 31, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 24, Age(dob, now))
}

func TestAge_BirthdayToday(t *testing.T) {
	dob := time.Date(2000, 6, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 25, Age(dob, now))
}

func TestHaversineKm_KnownDistance(t *testing.T) {
	delhi := domain.Location{Lat: 28.6139, Lng: 77.2090}
	mumbai := domain.Location{Lat: 19.0760, Lng: 72.8777}

	d := HaversineKm(delhi, mumbai)

	assert.InDelta(t, 1153, d, 15)
}

func TestHaversineKm_SamePoint(t *testing.T) {
	p := domain.Location{Lat: 12.9716, Lng: 77.5946}
	assert.Zero(t, HaversineKm(p, p))
}
