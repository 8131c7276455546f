package domain

import (
	"fmt"
	"testing"
)

func makeStations(n int) []Station {
	statuses := []StationStatus{StationOnline, StationOffline, StationMaintenance}
	out := make([]Station, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, Station{
			ID:     fmt.Sprintf("st-%d", i),
			Name:   fmt.Sprintf("Hub %d", i),
			City:   "Kochi",
			Status: statuses[i%3],
		})
	}
	return out
}

func TestFilterStationsByStatus(t *testing.T) {
	stations := makeStations(48)

	got := FilterStations(stations, StationOnline, "")
	want := 0
	for _, s := range stations {
		if s.Status == StationOnline {
			want++
		}
	}
	if len(got) != want {
		t.Fatalf("FilterStations() returned %d stations, want %d", len(got), want)
	}
	// Relative order must match the input.
	j := 0
	for _, s := range stations {
		if s.Status != StationOnline {
			continue
		}
		if got[j].ID != s.ID {
			t.Fatalf("order broken at %d: got %s, want %s", j, got[j].ID, s.ID)
		}
		j++
	}
}

func TestFilterStationsBySearch(t *testing.T) {
	stations := []Station{
		{ID: "1", Name: "VoltMate Hub", Address: "MG Road", City: "Kochi", Status: StationOnline},
		{ID: "2", Name: "GreenCharge", Address: "Anna Salai", City: "Chennai", Status: StationOnline},
		{ID: "3", Name: "Hub East", Address: "Ring Road", City: "Kochi", Status: StationOffline},
	}
	tests := []struct {
		name    string
		status  StationStatus
		term    string
		wantIDs []string
	}{
		{name: "empty matches all", wantIDs: []string{"1", "2", "3"}},
		{name: "name match", term: "hub", wantIDs: []string{"1", "3"}},
		{name: "city match", term: "chennai", wantIDs: []string{"2"}},
		{name: "status and term", status: StationOnline, term: "kochi", wantIDs: []string{"1"}},
		{name: "no match", term: "delhi", wantIDs: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterStations(stations, tt.status, tt.term)
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("got %d stations, want %d", len(got), len(tt.wantIDs))
			}
			for i, id := range tt.wantIDs {
				if got[i].ID != id {
					t.Errorf("result[%d] = %s, want %s", i, got[i].ID, id)
				}
			}
		})
	}
}

func TestPaginate(t *testing.T) {
	items := make([]int, 100)
	for i := range items {
		items[i] = i
	}
	tests := []struct {
		name      string
		page      int
		perPage   int
		wantFirst int
		wantLen   int
	}{
		{name: "page 3 of 20", page: 3, perPage: 20, wantFirst: 40, wantLen: 20},
		{name: "first page", page: 1, perPage: 20, wantFirst: 0, wantLen: 20},
		{name: "last partial page", page: 4, perPage: 30, wantFirst: 90, wantLen: 10},
		{name: "past the end", page: 7, perPage: 20, wantLen: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Paginate(items, tt.page, tt.perPage)
			if len(got) != tt.wantLen {
				t.Fatalf("len = %d, want %d", len(got), tt.wantLen)
			}
			if tt.wantLen > 0 && got[0] != tt.wantFirst {
				t.Errorf("first item = %d, want %d", got[0], tt.wantFirst)
			}
		})
	}
	if got := Paginate(items, 0, 20); got != nil {
		t.Errorf("page 0 = %v, want nil", got)
	}
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		total, perPage, want int
	}{
		{100, 20, 5},
		{101, 20, 6},
		{0, 20, 0},
		{5, 0, 0},
	}
	for _, tt := range tests {
		if got := TotalPages(tt.total, tt.perPage); got != tt.want {
			t.Errorf("TotalPages(%d, %d) = %d, want %d", tt.total, tt.perPage, got, tt.want)
		}
	}
}
