package workout

import (
	"strings"
	"time"
)

// DayAny is the wildcard day token. A session scheduled on DayAny is never
// picked up by weekday matching; it is only reachable when the caller
// selects it explicitly.
const DayAny = "any"

// Canonical day names are French, matching the program authoring
// convention. Index follows time.Weekday (Sunday = 0).
var frenchDays = [7]string{
	"Dimanche", "Lundi", "Mardi", "Mercredi", "Jeudi", "Vendredi", "Samedi",
}

// canonicalDays maps lowercased day tokens to their canonical form:
// full French and English names, 3-letter abbreviations in both
// languages, and ISO numeric strings (1 = Monday .. 7 = Sunday).
var canonicalDays = map[string]string{
	"lundi":    "Lundi",
	"mardi":    "Mardi",
	"mercredi": "Mercredi",
	"jeudi":    "Jeudi",
	"vendredi": "Vendredi",
	"samedi":   "Samedi",
	"dimanche": "Dimanche",

	"monday":    "Lundi",
	"tuesday":   "Mardi",
	"wednesday": "Mercredi",
	"thursday":  "Jeudi",
	"friday":    "Vendredi",
	"saturday":  "Samedi",
	"sunday":    "Dimanche",

	"lun": "Lundi",
	"mar": "Mardi",
	"mer": "Mercredi",
	"jeu": "Jeudi",
	"ven": "Vendredi",
	"sam": "Samedi",
	"dim": "Dimanche",

	"mon": "Lundi",
	"tue": "Mardi",
	"wed": "Mercredi",
	"thu": "Jeudi",
	"fri": "Vendredi",
	"sat": "Samedi",
	"sun": "Dimanche",

	"1": "Lundi",
	"2": "Mardi",
	"3": "Mercredi",
	"4": "Jeudi",
	"5": "Vendredi",
	"6": "Samedi",
	"7": "Dimanche",
}

// NormalizeDay maps a free-form day-of-week token to its canonical French
// name. Matching is case-insensitive and ignores surrounding whitespace.
// Unrecognized tokens are returned unchanged, so normalization never fails.
func NormalizeDay(token string) string {
	if day, ok := canonicalDays[strings.ToLower(strings.TrimSpace(token))]; ok {
		return day
	}
	return token
}

// CurrentDay returns today's canonical day name from the local clock.
func CurrentDay() string {
	return currentDay(time.Now())
}

func currentDay(t time.Time) string {
	return frenchDays[t.Weekday()]
}
