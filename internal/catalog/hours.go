package catalog

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/concierge/internal/domain"
)

var frenchDayNames = [7]string{"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi"}

// FrenchDayName returns the lower-case French name of the weekday.
func FrenchDayName(d time.Weekday) string {
	return frenchDayNames[d]
}

var dayTokens = map[string]time.Weekday{
	"lundi": time.Monday, "lun": time.Monday, "monday": time.Monday, "mon": time.Monday,
	"mardi": time.Tuesday, "mar": time.Tuesday, "tuesday": time.Tuesday, "tues": time.Tuesday, "tue": time.Tuesday,
	"mercredi": time.Wednesday, "mer": time.Wednesday, "wednesday": time.Wednesday, "wed": time.Wednesday,
	"jeudi": time.Thursday, "jeu": time.Thursday, "thursday": time.Thursday, "thurs": time.Thursday, "thu": time.Thursday,
	"vendredi": time.Friday, "ven": time.Friday, "friday": time.Friday, "fri": time.Friday,
	"samedi": time.Saturday, "sam": time.Saturday, "saturday": time.Saturday, "sat": time.Saturday,
	"dimanche": time.Sunday, "dim": time.Sunday, "sunday": time.Sunday, "sun": time.Sunday,
}

var allWeek = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday, time.Sunday,
}

var (
	dayAlternation = func() string {
		names := make([]string, 0, len(dayTokens))
		for n := range dayTokens {
			names = append(names, n)
		}
		sort.Slice(names, func(i, j int) bool { return len(names[i]) > len(names[j]) })
		return `\b(` + strings.Join(names, "|") + `)\b\.?`
	}()

	dayRe      = regexp.MustCompile(dayAlternation)
	dayRangeRe = regexp.MustCompile(dayAlternation + `\s*(?:-|au|a|to|through)\s*` + dayAlternation)
	timeRe     = regexp.MustCompile(`(\d{1,2})\s*[h:]\s*(\d{2})?\s*(?:-|a|au|to|jusqu'a)\s*(\d{1,2})\s*[h:]?\s*(\d{2})?`)
	everyDayRe = regexp.MustCompile(`tous les jours|7\s*j\s*/\s*7|7\s*/\s*7|7 jours sur 7|every ?day|daily|\btlj\b`)
	clauseRe   = regexp.MustCompile(`[;,|/\n]+|\bet\b|\band\b`)
	closedRe   = regexp.MustCompile(`ferme|closed|fermeture`)
)

// ParseHours structures free-text opening hours. closedText is the content of
// a dedicated closed-days column, if the catalog has one. Unrecognised text
// yields unconstrained hours.
func ParseHours(text, closedText string) domain.Hours {
	h := domain.Hours{
		Text:    strings.TrimSpace(text),
		Windows: make(map[time.Weekday][]domain.TimeWindow),
		Closed:  make(map[time.Weekday]bool),
	}

	folded := prepareHours(text)
	var last, pending []time.Weekday
	closing := false
	for _, clause := range clauseRe.Split(folded, -1) {
		clause = strings.TrimSpace(clause)
		if clause == "" {
			continue
		}

		if closedRe.MatchString(clause) {
			for _, d := range daysIn(clause) {
				h.Closed[d] = true
			}
			closing = true
			continue
		}

		head, except, _ := strings.Cut(clause, "sauf")
		days := daysIn(head)
		if everyDayRe.MatchString(head) {
			days = allWeek
		}
		for _, d := range daysIn(except) {
			h.Closed[d] = true
			days = without(days, d)
		}

		windows := windowsIn(clause)
		if len(windows) == 0 {
			if closing {
				for _, d := range days {
					h.Closed[d] = true
				}
				continue
			}
			pending = append(pending, days...)
			continue
		}
		closing = false

		switch {
		case len(days) == 0 && len(pending) > 0:
			days = pending
		case len(days) == 0 && len(last) > 0:
			days = last
		case len(days) == 0:
			days = allWeek
		default:
			days = append(pending, days...)
		}
		pending = nil
		for _, d := range days {
			h.Windows[d] = append(h.Windows[d], windows...)
		}
		last = days
	}

	for _, d := range daysIn(prepareHours(closedText)) {
		h.Closed[d] = true
	}
	return h
}

func prepareHours(text string) string {
	s := domain.Fold(text)
	s = strings.ReplaceAll(s, "minuit", "24h")
	s = strings.ReplaceAll(s, "midi", "12h")
	return everyDayRe.ReplaceAllString(s, " tlj ")
}

// daysIn returns the weekdays named in text, expanding ranges like "lun-ven".
func daysIn(text string) []time.Weekday {
	if text == "" {
		return nil
	}
	seen := make(map[time.Weekday]bool)
	var days []time.Weekday
	add := func(d time.Weekday) {
		if !seen[d] {
			seen[d] = true
			days = append(days, d)
		}
	}

	for _, m := range dayRangeRe.FindAllStringSubmatch(text, -1) {
		from, to := dayTokens[m[1]], dayTokens[m[2]]
		for d := from; ; d = (d + 1) % 7 {
			add(d)
			if d == to {
				break
			}
		}
	}
	rest := dayRangeRe.ReplaceAllString(text, " ")
	for _, m := range dayRe.FindAllStringSubmatch(rest, -1) {
		add(dayTokens[m[1]])
	}
	return days
}

func windowsIn(text string) []domain.TimeWindow {
	var out []domain.TimeWindow
	for _, m := range timeRe.FindAllStringSubmatch(text, -1) {
		open, ok1 := clock(m[1], m[2])
		closeAt, ok2 := clock(m[3], m[4])
		if !ok1 || !ok2 {
			continue
		}
		out = append(out, domain.TimeWindow{Open: open, Close: closeAt})
	}
	return out
}

func clock(hour, minute string) (int, bool) {
	h, err := strconv.Atoi(hour)
	if err != nil || h > 24 {
		return 0, false
	}
	m := 0
	if minute != "" {
		m, err = strconv.Atoi(minute)
		if err != nil || m > 59 {
			return 0, false
		}
	}
	if h == 24 {
		return 24*60 - 1, true
	}
	return h*60 + m, true
}

func without(days []time.Weekday, d time.Weekday) []time.Weekday {
	out := days[:0:0]
	for _, x := range days {
		if x != d {
			out = append(out, x)
		}
	}
	return out
}
