// Package calc holds the pure numeric calculators the plan assembler and
// the schedule engine delegate to: pace zones, heart-rate zones, and
// nutrition targets. Everything here is a deterministic function of the
// athlete's intake numbers.
package calc

import (
	"math"

	"github.com/claude/paceline/internal/models"
)

const kmPerMile = 1.60934

// riegelExponent models race-time scaling across distances.
const riegelExponent = 1.06

const marathonKm = 42.195

// MarathonPace predicts the athlete's marathon race pace in minutes per
// mile from a recent race result, using Riegel time scaling. A missing
// result falls back to a conservative default.
func MarathonPace(race models.RecentRace) float64 {
	if race.DistanceKm <= 0 || race.TimeMinutes <= 0 {
		return 10.0
	}
	predicted := race.TimeMinutes * math.Pow(marathonKm/race.DistanceKm, riegelExponent)
	return predicted / (marathonKm / kmPerMile)
}

// PaceZones derives the named training pace bands from a recent race
// result. Bands are offsets from predicted marathon pace, in minutes per
// mile, widest for easy running and tightest for interval work.
func PaceZones(race models.RecentRace) []models.PaceZone {
	mp := MarathonPace(race)
	zone := func(name string, minOffset, maxOffset float64, purpose string) models.PaceZone {
		return models.PaceZone{
			Name:       name,
			MinPerMile: roundPace(mp + minOffset),
			MaxPerMile: roundPace(mp + maxOffset),
			Purpose:    purpose,
		}
	}
	return []models.PaceZone{
		zone("easy", 1.0, 2.0, "aerobic base, conversational effort"),
		zone("long run", 0.75, 1.5, "endurance, race simulation"),
		zone("marathon", 0.0, 0.0, "goal race pace"),
		zone("tempo", -0.5, -0.25, "lactate threshold"),
		zone("interval", -1.0, -0.75, "VO2max development"),
	}
}

// roundPace rounds a pace to the nearest 5 seconds per mile, expressed as
// decimal minutes.
func roundPace(minPerMile float64) float64 {
	seconds := math.Round(minPerMile * 60 / 5) * 5
	return math.Round(seconds/60*100) / 100
}

// HRZones derives five heart-rate bands with the Karvonen method. A
// missing max heart rate is estimated as 220 minus age; a missing resting
// rate defaults to 60.
func HRZones(hr models.HeartRate, age int) []models.HRZone {
	maxBPM := hr.MaxBPM
	if maxBPM <= 0 {
		if age <= 0 {
			age = 35
		}
		maxBPM = 220 - age
	}
	resting := hr.RestingBPM
	if resting <= 0 {
		resting = 60
	}
	reserve := maxBPM - resting

	karvonen := func(fraction float64) int {
		return resting + int(math.Round(fraction*float64(reserve)))
	}
	return []models.HRZone{
		{Name: "zone 1 (recovery)", MinBPM: karvonen(0.50), MaxBPM: karvonen(0.60)},
		{Name: "zone 2 (aerobic)", MinBPM: karvonen(0.60), MaxBPM: karvonen(0.70)},
		{Name: "zone 3 (tempo)", MinBPM: karvonen(0.70), MaxBPM: karvonen(0.80)},
		{Name: "zone 4 (threshold)", MinBPM: karvonen(0.80), MaxBPM: karvonen(0.90)},
		{Name: "zone 5 (VO2max)", MinBPM: karvonen(0.90), MaxBPM: maxBPM},
	}
}
