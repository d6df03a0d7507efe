package dialog

import "testing"

func TestFilterMatch(t *testing.T) {
	tests := []struct {
		filter Filter
		path   string
		want   bool
	}{
		{DefaultFilters[0], "/any/thing", true},
		{DefaultFilters[1], "notes.txt", true},
		{DefaultFilters[1], "notes.TXT", true},
		{DefaultFilters[1], "notes.md", false},
		{DefaultFilters[2], "/data/table.csv", true},
		{DefaultFilters[3], "photo.jpeg", true},
		{DefaultFilters[3], "photo", false},
	}
	for _, tt := range tests {
		if got := tt.filter.Match(tt.path); got != tt.want {
			t.Errorf("%s.Match(%q) = %v, want %v", tt.filter.Name, tt.path, got, tt.want)
		}
	}
}

func TestNewNative(t *testing.T) {
	n := NewNative()
	if len(n.Filters) != 4 || n.Filters[0].Name != "All Files" {
		t.Errorf("filters = %+v", n.Filters)
	}
}
