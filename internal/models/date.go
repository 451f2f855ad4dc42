package models

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// dateLayout is the ISO-8601 calendar date form used on the wire and in the
// database. Transactions carry no time-of-day semantics.
const dateLayout = "2006-01-02"

// Date is a calendar date with day granularity. It marshals to and from the
// ISO-8601 "YYYY-MM-DD" form and stores as a SQL DATE column.
type Date struct {
	t time.Time
}

// NewDate builds a Date from year, month, and day in UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates a time.Time to its calendar date.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// ParseDate parses an ISO-8601 "YYYY-MM-DD" string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return Date{t: t}, nil
}

// String returns the ISO-8601 form.
func (d Date) String() string {
	return d.t.Format(dateLayout)
}

// Month returns the "YYYY-MM" calendar month key, the first seven characters
// of the ISO form. Monthly aggregation buckets by this key.
func (d Date) Month() string {
	return d.t.Format("2006-01")
}

// IsZero reports whether the date is unset.
func (d Date) IsZero() bool {
	return d.t.IsZero()
}

// Before reports whether d is earlier than other.
func (d Date) Before(other Date) bool {
	return d.t.Before(other.t)
}

// Time returns the underlying time at midnight UTC.
func (d Date) Time() time.Time {
	return d.t
}

// MarshalJSON implements json.Marshaler.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid date %s: expected quoted YYYY-MM-DD", s)
	}
	parsed, err := ParseDate(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Value implements driver.Valuer.
func (d Date) Value() (driver.Value, error) {
	return d.t, nil
}

// Scan implements sql.Scanner. Drivers return DATE columns as time.Time
// (postgres) or as text (sqlite).
func (d *Date) Scan(src interface{}) error {
	switch v := src.(type) {
	case time.Time:
		*d = DateOf(v)
		return nil
	case string:
		return d.scanString(v)
	case []byte:
		return d.scanString(string(v))
	case nil:
		*d = Date{}
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Date", src)
	}
}

func (d *Date) scanString(s string) error {
	// sqlite stores time.Time values in RFC 3339 form; accept both that and
	// the plain date form.
	if len(s) >= len(dateLayout) {
		s = s[:len(dateLayout)]
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// GormDataType tells GORM to use a DATE column.
func (Date) GormDataType() string {
	return "date"
}
