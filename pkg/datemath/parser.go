package datemath

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/olebedev/when"
	"github.com/olebedev/when/rules"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

const (
	dayAfterTomorrow = "day after tomorrow"
	tomorrow         = "tomorrow"
	next             = "next"
)

// Parser resolves loose date expressions ("tomorrow at 2pm", "next friday",
// "December 15 at 14:00") into absolute times in a fixed timezone.
// A Parser is safe for concurrent use.
type Parser struct {
	location *time.Location
	natural  *when.Parser
	clock    *when.Parser
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Asia/Ho_Chi_Minh"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}

	natural := when.New(nil)
	natural.Add(en.All...)
	natural.Add(common.All...)

	clock := when.New(nil)
	clock.Add(en.HourMinute(rules.Override), en.Hour(rules.Override))

	return &Parser{location: loc, natural: natural, clock: clock}, nil
}

// Location returns the timezone the parser resolves into.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Resolve never fails. Rules, first match wins:
//   - "day after tomorrow": now + 2 days
//   - "tomorrow": now + 1 day
//   - "next": parsed expression, or now + 7 days
//   - anything else: parsed expression, or now + 1 day
//
// For the relative-day rules an explicit clock time in the expression is honoured.
// A result at exactly 00:00 takes the hour and minute of now.
func (p *Parser) Resolve(expression string, now time.Time) time.Time {
	now = now.In(p.location)
	expr := strings.ToLower(strings.TrimSpace(expression))

	var t time.Time
	switch {
	case strings.Contains(expr, dayAfterTomorrow):
		t = p.atClock(expr, now.AddDate(0, 0, 2))
	case strings.Contains(expr, tomorrow):
		t = p.atClock(expr, now.AddDate(0, 0, 1))
	case strings.Contains(expr, next):
		t = p.parse(expr, now, now.AddDate(0, 0, 7))
	default:
		t = p.parse(expr, now, now.AddDate(0, 0, 1))
	}

	if t.Hour() == 0 && t.Minute() == 0 {
		t = time.Date(t.Year(), t.Month(), t.Day(), now.Hour(), now.Minute(), t.Second(), t.Nanosecond(), t.Location())
	}
	return t
}

// atClock moves day onto the clock time named in expr, if any.
func (p *Parser) atClock(expr string, day time.Time) time.Time {
	res, err := p.clock.Parse(expr, day)
	if err != nil || res == nil {
		return day
	}
	c := res.Time.In(p.location)
	return time.Date(day.Year(), day.Month(), day.Day(), c.Hour(), c.Minute(), 0, 0, p.location)
}

// parse tries strict layouts first, then natural language. Dates written
// without a year ("December 15", "12/15 at 2pm") take now's year.
func (p *Parser) parse(expr string, now, fallback time.Time) time.Time {
	t, err := dateparse.ParseIn(expr, p.location)
	if err == nil && hasYear(t) {
		return t.In(p.location)
	}

	if t, ok := p.parseYearless(expr, now); ok {
		return t
	}

	res, nerr := p.natural.Parse(expr, now)
	if nerr == nil && res != nil {
		return res.Time.In(p.location)
	}
	if err == nil {
		return withYear(t, now.Year(), p.location)
	}
	return fallback
}

// parseYearless splits a clock time ("2pm", "14:00") off expr, parses the
// remaining month and day, and places both in now's year.
func (p *Parser) parseYearless(expr string, now time.Time) (time.Time, bool) {
	datePart := expr
	var clock *time.Time
	if res, err := p.clock.Parse(expr, now); err == nil && res != nil {
		c := res.Time.In(p.location)
		clock = &c
		datePart = expr[:res.Index] + " " + expr[res.Index+len(res.Text):]
	}
	datePart = stripFiller(datePart)
	if datePart == "" {
		return time.Time{}, false
	}

	t, ok := p.monthDay(datePart, now.Year())
	if !ok {
		return time.Time{}, false
	}
	if clock != nil {
		t = time.Date(t.Year(), t.Month(), t.Day(), clock.Hour(), clock.Minute(), 0, 0, p.location)
	}
	return t, true
}

// monthDay parses a bare month and day ("dec 15", "12/15") into year.
func (p *Parser) monthDay(s string, year int) (time.Time, bool) {
	if d, err := dateparse.ParseIn(s, p.location); err == nil {
		if hasYear(d) {
			return time.Time{}, false
		}
		return withYear(d, year, p.location), true
	}
	y := strconv.Itoa(year)
	for _, candidate := range []string{s + " " + y, s + "/" + y} {
		if d, err := dateparse.ParseIn(candidate, p.location); err == nil && d.Year() == year {
			return d.In(p.location), true
		}
	}
	return time.Time{}, false
}

// stripFiller drops connective words left around a removed clock time.
func stripFiller(s string) string {
	fields := strings.Fields(s)
	kept := fields[:0]
	for _, f := range fields {
		if f == "at" || f == "on" {
			continue
		}
		kept = append(kept, f)
	}
	return strings.Join(kept, " ")
}

// hasYear reports whether t carries a written year; dateparse leaves it at
// zero, or picks up a stray number, when none was given.
func hasYear(t time.Time) bool {
	return t.Year() >= 1000
}

func withYear(t time.Time, year int, loc *time.Location) time.Time {
	return time.Date(year, t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, loc)
}
