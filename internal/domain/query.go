package domain

import "strings"

// FilterStations returns the stations matching status and search term,
// preserving the input order. Empty status or term means "match all".
func FilterStations(items []Station, status StationStatus, term string) []Station {
	term = strings.ToLower(strings.TrimSpace(term))
	out := make([]Station, 0, len(items))
	for _, s := range items {
		if status != "" && s.Status != status {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(s.Name), term) &&
			!strings.Contains(strings.ToLower(s.Address), term) &&
			!strings.Contains(strings.ToLower(s.City), term) {
			continue
		}
		out = append(out, s)
	}
	return out
}

// FilterBookings returns the bookings with the given status, preserving order.
func FilterBookings(items []Booking, status BookingStatus) []Booking {
	if status == "" {
		return items
	}
	out := make([]Booking, 0, len(items))
	for _, b := range items {
		if b.Status == status {
			out = append(out, b)
		}
	}
	return out
}

// Paginate slices items for a 1-based page of the given size. Out-of-range
// pages yield an empty slice.
func Paginate[T any](items []T, page, perPage int) []T {
	if perPage <= 0 || page <= 0 {
		return nil
	}
	start := (page - 1) * perPage
	if start >= len(items) {
		return []T{}
	}
	end := start + perPage
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// TotalPages reports how many pages of size perPage the collection spans.
func TotalPages(total, perPage int) int {
	if perPage <= 0 || total <= 0 {
		return 0
	}
	return (total + perPage - 1) / perPage
}
