// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package query contains small helpers for reading URL query parameters.
package query

import (
	"net/url"
	"strings"
)

// StringSlice parses a single comma-separated query string
// into a trimmed slice of strings.
func StringSlice(val string) []string {
	if val == "" {
		return nil
	}
	var res []string
	for _, v := range strings.Split(val, ",") {
		clean := strings.TrimSpace(v)
		if clean != "" {
			res = append(res, clean)
		}
	}
	return res
}

// List collects every value of a repeatable parameter, splitting each
// occurrence on commas. "?k=a,b&k=c" and "?k=a&k=b,c" both yield [a b c].
func List(values url.Values, key string) []string {
	var res []string
	for _, raw := range values[key] {
		res = append(res, StringSlice(raw)...)
	}
	return res
}

// Trimmed returns the whitespace-trimmed value of a single parameter.
func Trimmed(values url.Values, key string) string {
	return strings.TrimSpace(values.Get(key))
}
