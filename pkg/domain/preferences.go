package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// default delivery settings applied when a user leaves them empty
const (
	DefaultDeliveryTime = "07:00"
	DefaultTimezone     = "America/Los_Angeles"
)

// Preferences describes what a user follows and when the daily digest is delivered
type Preferences struct {
	UserID       string   `json:"user_id"`
	Teams        []string `json:"teams"`
	Players      []string `json:"players"`
	Leagues      []string `json:"leagues"`
	DeliveryTime string   `json:"delivery_time"`
	Timezone     string   `json:"timezone"`
}

// Normalize trims values, removes empty and duplicated entries keeping the first occurrence,
// and fills default delivery time and timezone
func (p Preferences) Normalize() Preferences {
	res := Preferences{
		UserID:       strings.TrimSpace(p.UserID),
		Teams:        orderedSet(p.Teams),
		Players:      orderedSet(p.Players),
		Leagues:      orderedSet(p.Leagues),
		DeliveryTime: strings.TrimSpace(p.DeliveryTime),
		Timezone:     strings.TrimSpace(p.Timezone),
	}
	if res.DeliveryTime == "" {
		res.DeliveryTime = DefaultDeliveryTime
	}
	if res.Timezone == "" {
		res.Timezone = DefaultTimezone
	}
	return res
}

// Clone returns a deep copy, safe to hand to concurrent readers
func (p Preferences) Clone() Preferences {
	res := p
	res.Teams = append([]string(nil), p.Teams...)
	res.Players = append([]string(nil), p.Players...)
	res.Leagues = append([]string(nil), p.Leagues...)
	return res
}

// Entities returns tracked teams followed by tracked players
func (p Preferences) Entities() []string {
	res := make([]string, 0, len(p.Teams)+len(p.Players))
	res = append(res, p.Teams...)
	return append(res, p.Players...)
}

// Validate checks delivery time and timezone
func (p Preferences) Validate() error {
	_, _, _, err := ParseSchedule(p.DeliveryTime, p.Timezone)
	return err
}

// ParseSchedule parses "HH:MM" and an IANA timezone name.
// All failures wrap ErrInvalidSchedule.
func ParseSchedule(deliveryTime, timezone string) (hour, minute int, loc *time.Location, err error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(deliveryTime), ":")
	if !ok {
		return 0, 0, nil, fmt.Errorf("%w: delivery time %q is not HH:MM", ErrInvalidSchedule, deliveryTime)
	}
	if hour, err = clockNumber(hh); err != nil || hour > 23 {
		return 0, 0, nil, fmt.Errorf("%w: bad hour in %q", ErrInvalidSchedule, deliveryTime)
	}
	if minute, err = clockNumber(mm); err != nil || minute > 59 {
		return 0, 0, nil, fmt.Errorf("%w: bad minute in %q", ErrInvalidSchedule, deliveryTime)
	}
	if strings.TrimSpace(timezone) == "" {
		return 0, 0, nil, fmt.Errorf("%w: empty timezone", ErrInvalidSchedule)
	}
	if loc, err = time.LoadLocation(timezone); err != nil {
		return 0, 0, nil, fmt.Errorf("%w: timezone %q: %v", ErrInvalidSchedule, timezone, err)
	}
	return hour, minute, loc, nil
}

// clockNumber parses one or two ascii digits
func clockNumber(s string) (int, error) {
	if len(s) == 0 || len(s) > 2 {
		return 0, fmt.Errorf("want 1 or 2 digits, got %q", s)
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("not a digit in %q", s)
		}
	}
	return strconv.Atoi(s)
}

func orderedSet(values []string) []string {
	res := make([]string, 0, len(values))
	seen := make(map[string]bool, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		key := strings.ToLower(v)
		if v == "" || seen[key] {
			continue
		}
		seen[key] = true
		res = append(res, v)
	}
	return res
}
