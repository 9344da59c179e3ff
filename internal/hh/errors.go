package hh

import "fmt"

// UnavailableError indicates the page was fetched but its content says the
// resume was hidden or deleted by its owner.
type UnavailableError struct {
	URL string
}

func (e *UnavailableError) Error() string {
	if e.URL != "" {
		return fmt.Sprintf("resume is hidden or deleted: %s", e.URL)
	}
	return "resume is hidden or deleted"
}
