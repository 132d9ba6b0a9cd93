package domain

// PageMode identifies the pagination style chosen by the client
type PageMode int

const (
	// PageModeOffset is classic page-numbered listing (?page=1&limit=20)
	PageModeOffset PageMode = iota
	// PageModeCursor is keyset listing (?take=20&cursor=<lastId>)
	PageModeCursor
)

// PageRequest is a tagged pagination plan resolved once at the API
// boundary from query parameters and passed down the layers as is
type PageRequest struct {
	Mode PageMode

	// Set for PageModeOffset
	Page  int
	Limit int

	// Set for PageModeCursor
	Take   int
	Cursor *int64 // id последнего элемента предыдущей страницы, nil - первая страница
}

// OffsetPage builds an offset-mode request with bounds normalization
func OffsetPage(page, limit int) PageRequest {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	return PageRequest{Mode: PageModeOffset, Page: page, Limit: limit}
}

// CursorPage builds a cursor-mode request with bounds normalization
func CursorPage(take int, cursor *int64) PageRequest {
	if take < 1 {
		take = DefaultPageLimit
	}
	if take > MaxPageLimit {
		take = MaxPageLimit
	}
	return PageRequest{Mode: PageModeCursor, Take: take, Cursor: cursor}
}

// PageMeta holds result page metadata:
// Page/Limit/Total for offset mode, NextCursor for cursor mode
type PageMeta struct {
	Page       int
	Limit      int
	Total      int64
	NextCursor *int64
}

// BookingPage is a single page of bookings with its metadata
type BookingPage struct {
	Bookings []*Booking
	Meta     PageMeta
}
