package pagination

import (
	"testing"

	"github.com/defitools/krystal-cloud-client/pkg/models"
)

func page(items int, total int64, hasMore bool) *models.PaginatedResponse[int] {
	return &models.PaginatedResponse[int]{
		Data:    make([]int, items),
		Total:   &total,
		HasMore: &hasMore,
	}
}

func TestTracker_AdvancesOffset(t *testing.T) {
	tr := NewTracker(10)

	if !tr.HasNext() {
		t.Fatal("HasNext() = false before any page, want true")
	}
	if tr.NextOffset() != 0 {
		t.Errorf("NextOffset() = %d, want 0", tr.NextOffset())
	}

	tr.Advance(page(10, 25, true))
	if tr.NextOffset() != 10 {
		t.Errorf("NextOffset() = %d, want 10", tr.NextOffset())
	}
	if !tr.HasNext() {
		t.Error("HasNext() = false with has_more set, want true")
	}

	tr.Advance(page(10, 25, true))
	if tr.NextOffset() != 20 {
		t.Errorf("NextOffset() = %d, want 20", tr.NextOffset())
	}

	tr.Advance(page(5, 25, false))
	if tr.NextOffset() != 25 {
		t.Errorf("NextOffset() = %d, want 25", tr.NextOffset())
	}
	if tr.HasNext() {
		t.Error("HasNext() = true after final page, want false")
	}
}

func TestTracker_Progress(t *testing.T) {
	tr := NewTracker(10)

	if _, known := tr.Progress(); known {
		t.Error("Progress() known before any page, want unknown")
	}

	tr.Advance(page(10, 25, true))
	got, known := tr.Progress()
	if !known {
		t.Fatal("Progress() unknown after page with total")
	}
	if got != 40.0 {
		t.Errorf("Progress() = %v, want 40.0", got)
	}
}

func TestTracker_ZeroTotalIsComplete(t *testing.T) {
	tr := NewTracker(10)
	tr.Advance(page(0, 0, false))

	got, known := tr.Progress()
	if !known || got != 100 {
		t.Errorf("Progress() = %v, %v, want 100, true for empty result set", got, known)
	}
	if tr.HasNext() {
		t.Error("HasNext() = true for empty result set, want false")
	}
}

func TestTracker_PageWithoutMetadata(t *testing.T) {
	tr := NewTracker(10)
	// Endpoints that omit pagination metadata imply a single page.
	tr.Advance(&models.PaginatedResponse[int]{Data: make([]int, 7)})

	if tr.HasNext() {
		t.Error("HasNext() = true without has_more metadata, want false")
	}
	if tr.NextOffset() != 7 {
		t.Errorf("NextOffset() = %d, want 7", tr.NextOffset())
	}
	if _, known := tr.TotalItems(); known {
		t.Error("TotalItems() known without total metadata, want unknown")
	}
}

func TestTracker_PageSize(t *testing.T) {
	tr := NewTracker(50)
	if tr.PageSize() != 50 {
		t.Errorf("PageSize() = %d, want 50", tr.PageSize())
	}
}
