package domain

// Content types an item may carry.
const (
	TypeMovie   = "movie"
	TypeSeries  = "series"
	TypeLive    = "live"
	TypeSpecial = "special"
)

type ContentItem struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	PlatformID string `json:"platformId"`
	Genre      string `json:"genre"`
	Type       string `json:"type"`
	Year       *int   `json:"year,omitempty"`
}

// ValidType reports whether t is one of the known content types.
func ValidType(t string) bool {
	switch t {
	case TypeMovie, TypeSeries, TypeLive, TypeSpecial:
		return true
	}
	return false
}
