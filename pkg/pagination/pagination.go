// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package pagination provides shared types and helpers for API list endpoints.
//
// # Overview
//
// It standardizes how page-based navigation is requested via query parameters
// and how the resulting metadata is delivered in the API response envelope.
package pagination

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"
)

const (
	// DefaultLimit is the number of items per page if not specified.
	DefaultLimit = 10
	// MinLimit is the smallest accepted page size.
	MinLimit = 1
	// MaxLimit is the upper bound for items per page to prevent system abuse.
	MaxLimit = 100
	// DefaultPage is the starting page (1-indexed).
	DefaultPage = 1
)

// Query parameter names.
const (
	ParamPage  = "page"
	ParamLimit = "limit"
)

// Params holds the parsed page and limit from a request's query string.
type Params struct {
	Page  int
	Limit int
}

// Offset returns the SQL OFFSET value derived from [Page] and [Limit].
// It saturates at [math.MaxInt] instead of overflowing for huge pages.
func (p Params) Offset() int {
	if p.Page <= 1 || p.Limit <= 0 {
		return 0
	}
	if p.Page-1 > math.MaxInt/p.Limit {
		return math.MaxInt
	}
	return (p.Page - 1) * p.Limit
}

// Meta is the pagination metadata included in API list responses.
//
// PreviousPage and NextPage are null at the boundaries.
type Meta struct {
	Page         int  `json:"page"`
	Limit        int  `json:"limit"`
	Total        int  `json:"total"`
	TotalPages   int  `json:"total_pages"`
	HasMore      bool `json:"has_more"`
	PreviousPage *int `json:"previous_page"`
	NextPage     *int `json:"next_page"`
}

// NewMeta constructs pagination metadata for a response.
//
// TotalPages is ceil(total/limit) in integer arithmetic and 0 for an empty
// result. The page is never clamped: a page past TotalPages yields HasMore
// false, no NextPage, and a PreviousPage of page-1.
func NewMeta(page, limit, total int) Meta {
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}

	meta := Meta{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		HasMore:    page < totalPages,
	}

	if page > 1 {
		previous := page - 1
		meta.PreviousPage = &previous
	}

	if page < totalPages {
		next := page + 1
		meta.NextPage = &next
	}

	return meta
}

// ParamError describes a single rejected query parameter.
type ParamError struct {
	Param   string
	Message string
}

// ParamErrors is returned by [Parse] when one or more parameters are invalid.
type ParamErrors []ParamError

func (e ParamErrors) Error() string {
	parts := make([]string, 0, len(e))
	for _, pe := range e {
		parts = append(parts, pe.Param+": "+pe.Message)
	}
	return "pagination: " + strings.Join(parts, "; ")
}

// Parse reads "page" and "limit" from query values.
//
// Absent parameters take their defaults. Present ones must be integers with
// page >= 1 and limit within [MinLimit, MaxLimit]; anything else is rejected
// rather than clamped.
func Parse(query url.Values) (Params, error) {
	var problems ParamErrors

	page, err := parseIntParam(query, ParamPage, DefaultPage)
	if err != nil {
		problems = append(problems, ParamError{Param: ParamPage, Message: "Must be an integer"})
	} else if page < 1 {
		problems = append(problems, ParamError{Param: ParamPage, Message: "Must be at least 1"})
	}

	limit, err := parseIntParam(query, ParamLimit, DefaultLimit)
	if err != nil {
		problems = append(problems, ParamError{Param: ParamLimit, Message: "Must be an integer"})
	} else if limit < MinLimit || limit > MaxLimit {
		problems = append(problems, ParamError{
			Param:   ParamLimit,
			Message: fmt.Sprintf("Must be between %d and %d", MinLimit, MaxLimit),
		})
	}

	if len(problems) > 0 {
		return Params{}, problems
	}

	return Params{Page: page, Limit: limit}, nil
}

// parseIntParam parses a single integer query parameter with a fallback default.
func parseIntParam(query url.Values, key string, defaultVal int) (int, error) {
	raw := strings.TrimSpace(query.Get(key))
	if raw == "" {
		return defaultVal, nil
	}

	return strconv.Atoi(raw)
}
