// Package pagination tracks an offset cursor across repeated paged requests
// against the same filter.
package pagination

// Page is one page of an offset-paginated result set.
// models.PaginatedResponse satisfies it.
type Page interface {
	// Len returns the number of items in the page.
	Len() int
	// TotalCount returns the total item count and whether it is known.
	TotalCount() (int64, bool)
	// More reports whether further pages exist.
	More() bool
}

// Tracker advances an offset cursor as pages are consumed. The offset only
// ever grows. A Tracker is owned by a single caller; it is not safe for
// concurrent mutation.
type Tracker struct {
	offset     int64
	pageSize   int
	total      int64
	totalKnown bool
	hasMore    bool
}

// NewTracker creates a tracker for the given page size. Before the first
// page arrives HasNext is true, since nothing is known yet.
func NewTracker(pageSize int) *Tracker {
	return &Tracker{pageSize: pageSize, hasMore: true}
}

// Advance consumes one page response: the offset grows by the page's item
// count, and total/has-more are taken verbatim from the page metadata.
func (t *Tracker) Advance(p Page) {
	t.offset += int64(p.Len())
	if total, ok := p.TotalCount(); ok {
		t.total = total
		t.totalKnown = true
	}
	t.hasMore = p.More()
}

// HasNext reports whether another page should be requested.
func (t *Tracker) HasNext() bool {
	return t.hasMore
}

// NextOffset returns the offset for the next page request.
func (t *Tracker) NextOffset() int64 {
	return t.offset
}

// PageSize returns the configured page size.
func (t *Tracker) PageSize() int {
	return t.pageSize
}

// TotalItems returns the total item count and whether any page reported one.
func (t *Tracker) TotalItems() (int64, bool) {
	return t.total, t.totalKnown
}

// Progress returns consumed items over total as a percentage, and whether a
// total is known. A known total of zero counts as fully consumed.
func (t *Tracker) Progress() (float64, bool) {
	if !t.totalKnown {
		return 0, false
	}
	if t.total == 0 {
		return 100, true
	}
	return float64(t.offset) / float64(t.total) * 100, true
}
