package model

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"
)

// DateLayout is the input and display format of due dates.
const DateLayout = "2006-01-02"

var (
	// ErrEmptyTitle is returned when a title is blank.
	ErrEmptyTitle = errors.New("title is required")

	// ErrTitleTooLong is returned when a title exceeds MaxTitleLength.
	ErrTitleTooLong = errors.New("title is too long")

	// ErrNoteTooLong is returned when a note exceeds MaxNoteLength.
	ErrNoteTooLong = errors.New("note is too long")

	// ErrInvalidDueDate is returned when a due date is not YYYY-MM-DD.
	ErrInvalidDueDate = errors.New("invalid due date, use YYYY-MM-DD")

	// ErrPastDueDate is returned when a new todo is due before today.
	ErrPastDueDate = errors.New("due date is in the past")

	// ErrInvalidURL is returned when a URL is not an absolute http(s) URL.
	ErrInvalidURL = errors.New("invalid url")

	// ErrInvalidFilter is returned for an unknown filter name.
	ErrInvalidFilter = errors.New("invalid filter")

	// ErrInvalidSortOrder is returned for an unknown sort order name.
	ErrInvalidSortOrder = errors.New("invalid sort order")
)

// ValidateTitle checks that a title is non-blank and within MaxTitleLength runes.
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return ErrEmptyTitle
	}
	if n := utf8.RuneCountInString(title); n > MaxTitleLength {
		return fmt.Errorf("%w: %d > %d", ErrTitleTooLong, n, MaxTitleLength)
	}
	return nil
}

// ValidateNote checks that a note is within MaxNoteLength runes.
func ValidateNote(note string) error {
	if n := utf8.RuneCountInString(note); n > MaxNoteLength {
		return fmt.Errorf("%w: %d > %d", ErrNoteTooLong, n, MaxNoteLength)
	}
	return nil
}

// ValidateURL accepts an empty string or an absolute http/https URL.
func ValidateURL(raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	u, err := url.ParseRequestURI(raw)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: unsupported scheme %q", ErrInvalidURL, u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: missing host", ErrInvalidURL)
	}
	return nil
}

// ParseDueDate parses a YYYY-MM-DD string as local midnight in loc.
// An empty string yields a nil time.
func ParseDueDate(s string, loc *time.Location) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(DateLayout, s, loc)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDueDate, s)
	}
	return &t, nil
}

// ValidateDueDate returns ErrPastDueDate when endAt falls before the day of now.
func ValidateDueDate(endAt *time.Time, now time.Time) error {
	if endAt == nil {
		return nil
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if endAt.Before(today) {
		return fmt.Errorf("%w: %s", ErrPastDueDate, endAt.Format(DateLayout))
	}
	return nil
}

// ValidateDraft runs every field check on d. Past due dates are only
// rejected when rejectPast is set.
func ValidateDraft(d Draft, now time.Time, rejectPast bool) error {
	if err := ValidateTitle(d.Title); err != nil {
		return err
	}
	if err := ValidateNote(d.Note); err != nil {
		return err
	}
	if err := ValidateURL(d.URL); err != nil {
		return err
	}
	if rejectPast {
		return ValidateDueDate(d.EndAt, now)
	}
	return nil
}
