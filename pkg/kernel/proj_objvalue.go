package kernel

import (
	"database/sql/driver"
	"fmt"
	"strconv"
	"strings"
	"time"
)

type FullName string

func (n FullName) String() string { return string(n) }

type Email string

func (e Email) String() string { return string(e) }

// Normalize trims surrounding whitespace. Case is preserved because the
// signature canonical form lower-cases on its own.
func (e Email) Normalize() Email { return Email(strings.TrimSpace(string(e))) }

// IsValid is a shape check only: one @ with something on both sides
func (e Email) IsValid() bool {
	local, domain, ok := strings.Cut(string(e), "@")
	return ok && local != "" && domain != "" && !strings.Contains(domain, "@")
}

type Salary int64

func (s Salary) String() string { return strconv.FormatInt(int64(s), 10) }

// DateLayout is the wire and storage format of calendar dates
const DateLayout = "2006-01-02"

// BirthDate is a calendar date without time or zone
type BirthDate struct {
	time.Time
}

// ParseBirthDate parses a YYYY-MM-DD date
func ParseBirthDate(s string) (BirthDate, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return BirthDate{}, err
	}
	return BirthDate{Time: t}, nil
}

// NewBirthDate builds a date from its parts
func NewBirthDate(year int, month time.Month, day int) BirthDate {
	return BirthDate{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func (d BirthDate) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateLayout)
}

func (d BirthDate) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(d.String())), nil
}

func (d *BirthDate) UnmarshalJSON(b []byte) error {
	s, err := strconv.Unquote(string(b))
	if err != nil {
		return fmt.Errorf("birth_date must be a string: %w", err)
	}
	parsed, err := ParseBirthDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Value stores the date as YYYY-MM-DD, which both Postgres DATE and SQLite TEXT accept
func (d BirthDate) Value() (driver.Value, error) {
	return d.String(), nil
}

// Scan accepts the representations returned by lib/pq (time.Time) and SQLite (string/[]byte)
func (d *BirthDate) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*d = NewBirthDate(v.Year(), v.Month(), v.Day())
		return nil
	case string:
		return d.scanString(v)
	case []byte:
		return d.scanString(string(v))
	case nil:
		*d = BirthDate{}
		return nil
	default:
		return fmt.Errorf("cannot scan %T into BirthDate", src)
	}
}

func (d *BirthDate) scanString(s string) error {
	// drivers may append a time component to DATE values
	if len(s) > len(DateLayout) {
		s = s[:len(DateLayout)]
	}
	parsed, err := ParseBirthDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
