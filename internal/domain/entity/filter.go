package entity

import (
	"strings"
)

// FilterMode selects whether the order search targets orders or line items.
type FilterMode string

const (
	FilterModeOrder FilterMode = "order"
	FilterModeItems FilterMode = "items"
)

// FilterField names one field of an OrderFilter.
type FilterField string

const (
	FilterFieldMode       FilterField = "filterMode"
	FilterFieldStatus     FilterField = "status"
	FilterFieldSearch     FilterField = "search"
	FilterFieldPOStatus   FilterField = "poStatus"
	FilterFieldRegion     FilterField = "region"
	FilterFieldVendor     FilterField = "vendor"
	FilterFieldDateFilter FilterField = "dateFilter"
)

// OrderFilter is the composite order grid filter.
type OrderFilter struct {
	FilterMode FilterMode `json:"filterMode" query:"filterMode"`
	Status     string     `json:"status" query:"status"`
	Search     string     `json:"search" query:"search"`
	POStatus   string     `json:"poStatus" query:"poStatus"`
	Region     string     `json:"region" query:"region"`
	Vendor     string     `json:"vendor" query:"vendor"`
	DateFilter string     `json:"dateFilter" query:"dateFilter"`
}

// DefaultOrderFilter is the cleared filter.
func DefaultOrderFilter() OrderFilter {
	return OrderFilter{FilterMode: FilterModeOrder}
}

// IsValidFilterField reports whether name is a known filter field.
func IsValidFilterField(name string) bool {
	switch FilterField(name) {
	case FilterFieldMode, FilterFieldStatus, FilterFieldSearch, FilterFieldPOStatus,
		FilterFieldRegion, FilterFieldVendor, FilterFieldDateFilter:
		return true
	default:
		return false
	}
}

// With returns a copy of the filter with field set to value.
// Switching to a different filter mode clears the mode-specific search and vendor fields.
func (f OrderFilter) With(field FilterField, value string) OrderFilter {
	next := f
	switch field {
	case FilterFieldMode:
		mode := FilterMode(value)
		if mode != f.FilterMode {
			next.Search = ""
			next.Vendor = ""
		}
		next.FilterMode = mode
	case FilterFieldStatus:
		next.Status = value
	case FilterFieldSearch:
		next.Search = value
	case FilterFieldPOStatus:
		next.POStatus = value
	case FilterFieldRegion:
		next.Region = value
	case FilterFieldVendor:
		next.Vendor = value
	case FilterFieldDateFilter:
		next.DateFilter = value
	}

	return next
}

// Params returns only the non-empty filter fields keyed by their query names.
func (f OrderFilter) Params() map[string]string {
	params := make(map[string]string, 7)
	add := func(field FilterField, value string) {
		if strings.TrimSpace(value) != "" {
			params[string(field)] = value
		}
	}

	add(FilterFieldMode, string(f.FilterMode))
	add(FilterFieldStatus, f.Status)
	add(FilterFieldSearch, f.Search)
	add(FilterFieldPOStatus, f.POStatus)
	add(FilterFieldRegion, f.Region)
	add(FilterFieldVendor, f.Vendor)
	add(FilterFieldDateFilter, f.DateFilter)

	return params
}

// OrderQuery is one order list request.
type OrderQuery struct {
	Filter OrderFilter
	Page   int
	Limit  int
}
