package tibia

import (
	"fmt"
	"strings"
	"time"
)

// Date is a bare calendar date with no known timezone, serialized as
// "2006-01-02". The upstream site prints several of its dates without any
// offset information, so pretending they are instants would be dishonest.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate builds a Date from its parts.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// MarshalJSON writes the date as a "2006-01-02" string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON reads a "2006-01-02" string.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return fmt.Errorf("parse date %q: %w", s, err)
	}
	d.Year, d.Month, d.Day = t.Year(), t.Month(), t.Day()
	return nil
}

// YearMonth is a month-granularity date, serialized as "2006-01". World
// creation dates are only published at this resolution.
type YearMonth struct {
	Year  int
	Month time.Month
}

// NewYearMonth builds a YearMonth from its parts.
func NewYearMonth(year int, month time.Month) YearMonth {
	return YearMonth{Year: year, Month: month}
}

func (m YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// MarshalJSON writes the value as a "2006-01" string.
func (m YearMonth) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.String() + `"`), nil
}

// UnmarshalJSON reads a "2006-01" string.
func (m *YearMonth) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return fmt.Errorf("parse year-month %q: %w", s, err)
	}
	m.Year, m.Month = t.Year(), t.Month()
	return nil
}
