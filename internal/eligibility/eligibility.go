// Package eligibility decides whether a user may join an event. Pure
// functions, no side effects, safe for concurrent use.
package eligibility

import (
	"fmt"
	"math"
	"time"

	"github.com/boomghooom/BoomGhoomBackend-sub000/internal/domain"
)

const earthRadiusKm = 6371

type Candidate struct {
	Gender      *string
	DateOfBirth *time.Time
	Location    *domain.Location
}

type Result struct {
	Eligible bool
	Reason   string
}

func ok() Result { return Result{Eligible: true} }

func fail(format string, args ...any) Result {
	return Result{Eligible: false, Reason: fmt.Sprintf(format, args...)}
}

// Evaluate runs the rules in a fixed order so the first failure yields a
// deterministic, user-legible reason: gender, age, distance, capacity.
// Unknown gender or date of birth passes the corresponding check.
func Evaluate(rules domain.Eligibility, eventLoc *domain.Location, c Candidate, approvedCount int, now time.Time) Result {
	if c.Gender != nil && len(rules.Genders) > 0 && !contains(rules.Genders, *c.Gender) {
		return fail("gender %s is not allowed for this event", *c.Gender)
	}

	if c.DateOfBirth != nil && (rules.MinAge > 0 || rules.MaxAge > 0) {
		age := Age(*c.DateOfBirth, now)
		if rules.MinAge > 0 && age < rules.MinAge {
			return fail("minimum age is %d", rules.MinAge)
		}
		if rules.MaxAge > 0 && age > rules.MaxAge {
			return fail("maximum age is %d", rules.MaxAge)
		}
	}

	if rules.MaxDistanceKm != nil && eventLoc != nil && c.Location != nil {
		dist := HaversineKm(*eventLoc, *c.Location)
		if dist > *rules.MaxDistanceKm {
			return fail("event is %.1f km away, limit is %.1f km", dist, *rules.MaxDistanceKm)
		}
	}

	if rules.MemberLimit > 0 && approvedCount >= rules.MemberLimit {
		return fail("event has reached its member limit of %d", rules.MemberLimit)
	}

	return ok()
}

// Age is the calendar-year difference with month/day correction.
func Age(dateOfBirth, now time.Time) int {
	years := now.Year() - dateOfBirth.Year()
	anniversary := dateOfBirth.AddDate(years, 0, 0)
	if anniversary.After(now) {
		years--
	}
	return years
}

// HaversineKm is the great-circle distance between two points.
func HaversineKm(a, b domain.Location) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)

	return 2 * earthRadiusKm * math.Asin(math.Sqrt(h))
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
