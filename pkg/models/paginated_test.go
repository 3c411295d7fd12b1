package models

import (
	"encoding/json"
	"testing"
)

func TestPaginatedResponse_Decode(t *testing.T) {
	payload := `{"data": [{"id": 1}, {"id": 137}], "total": 25, "offset": 0, "limit": 2, "has_more": true}`

	var page PaginatedResponse[ChainInfo]
	if err := json.Unmarshal([]byte(payload), &page); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if page.Len() != 2 {
		t.Errorf("Len() = %d, want 2", page.Len())
	}
	if total, ok := page.TotalCount(); !ok || total != 25 {
		t.Errorf("TotalCount() = %d, %v, want 25, true", total, ok)
	}
	if !page.More() {
		t.Error("More() = false, want true")
	}
}

func TestPaginatedResponse_MissingMetadata(t *testing.T) {
	var page PaginatedResponse[ChainInfo]
	if err := json.Unmarshal([]byte(`{"data": []}`), &page); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if _, ok := page.TotalCount(); ok {
		t.Error("TotalCount() known without total field, want unknown")
	}
	if page.More() {
		t.Error("More() = true without has_more field, want false")
	}
}
