package store

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar date, marshaled as YYYY-MM-DD on the wire.
// It is distinct from the full creation timestamp of a session.
type Date struct {
	time.Time
}

func NewDate(t time.Time) Date {
	year, month, day := t.Date()
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func ParseDate(value string) (Date, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", value, err)
	}
	return Date{Time: t}, nil
}

func MustParseDate(value string) Date {
	d, err := ParseDate(value)
	if err != nil {
		panic(err)
	}
	return d
}

func (d Date) String() string {
	return d.Format(dateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	value := string(data)
	if value == "null" || value == `""` {
		*d = Date{}
		return nil
	}
	if len(value) < 2 || value[0] != '"' || value[len(value)-1] != '"' {
		return fmt.Errorf("invalid date value: %s", value)
	}
	parsed, err := ParseDate(value[1 : len(value)-1])
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
