package caster

import (
	"fmt"
	"reflect"
	"time"
	"unicode"

	"github.com/vk/bargeparse/internal/model"
)

// dateCaster parses YEAR-MONTH-DAY. Any single non-digit rune works as
// the delimiter, so "2000-01-01", "2000/01/01" and "2000.01.01" all
// name the same day.
func dateCaster() *model.Caster {
	return &model.Caster{
		Kind: model.CastDate,
		Convert: func(raw string) (reflect.Value, error) {
			parts, err := splitNumbers(raw, 3)
			if err != nil {
				return reflect.Value{}, &model.CastError{Value: raw, Target: "date", Err: err}
			}
			t, err := calendarTime(parts[0], parts[1], parts[2], 0, 0, 0)
			if err != nil {
				return reflect.Value{}, &model.CastError{Value: raw, Target: "date", Err: err}
			}
			return reflect.ValueOf(model.Date(t)), nil
		},
	}
}

// dateTimeCaster parses YEAR-MONTH-DAY-HOUR-MINUTE-SECOND with the same
// delimiter tolerance as dateCaster.
func dateTimeCaster() *model.Caster {
	return &model.Caster{
		Kind: model.CastDateTime,
		Convert: func(raw string) (reflect.Value, error) {
			parts, err := splitNumbers(raw, 6)
			if err != nil {
				return reflect.Value{}, &model.CastError{Value: raw, Target: "datetime", Err: err}
			}
			t, err := calendarTime(parts[0], parts[1], parts[2], parts[3], parts[4], parts[5])
			if err != nil {
				return reflect.Value{}, &model.CastError{Value: raw, Target: "datetime", Err: err}
			}
			return reflect.ValueOf(t), nil
		},
	}
}

// maxComponentDigits bounds one digit group of a date or datetime
// token. Years need four digits; the bound keeps the accumulator far
// from integer overflow.
const maxComponentDigits = 6

// splitNumbers splits raw into exactly n digit groups, each pair of
// groups separated by exactly one non-digit rune.
func splitNumbers(raw string, n int) ([]int, error) {
	var parts []int
	current := 0
	digits := 0
	for _, r := range raw {
		if unicode.IsDigit(r) {
			current = current*10 + int(r-'0')
			digits++
			if digits > maxComponentDigits {
				return nil, fmt.Errorf("numeric component longer than %d digits", maxComponentDigits)
			}
			continue
		}
		if digits == 0 {
			return nil, fmt.Errorf("expected a digit before %q", r)
		}
		parts = append(parts, current)
		current, digits = 0, 0
	}
	if digits == 0 {
		return nil, fmt.Errorf("value ends without a digit group")
	}
	parts = append(parts, current)
	if len(parts) != n {
		return nil, fmt.Errorf("expected %d numeric components, got %d", n, len(parts))
	}
	return parts, nil
}

// calendarTime builds a UTC time and rejects components that time.Date
// would silently normalize, such as month 13 or February 30th.
func calendarTime(year, month, day, hour, minute, sec int) (time.Time, error) {
	t := time.Date(year, time.Month(month), day, hour, minute, sec, 0, time.UTC)
	ok := t.Year() == year &&
		t.Month() == time.Month(month) &&
		t.Day() == day &&
		t.Hour() == hour &&
		t.Minute() == minute &&
		t.Second() == sec
	if !ok {
		return time.Time{}, fmt.Errorf("no such calendar moment")
	}
	return t, nil
}
