// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package model

import "time"

// Date is a calendar day. Declaring an argument-struct field as Date
// selects the date caster (YEAR-MONTH-DAY); a plain time.Time field
// selects the datetime caster instead.
type Date time.Time

// NewDate returns the Date for the given calendar day, in UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// Time returns the day as a time.Time at midnight UTC.
func (d Date) Time() time.Time {
	return time.Time(d)
}

// String formats the day as YYYY-MM-DD.
func (d Date) String() string {
	return time.Time(d).Format("2006-01-02")
}
