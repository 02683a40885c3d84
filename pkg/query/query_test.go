// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package query_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/heroes/pkg/query"
)

func TestStringSlice(t *testing.T) {
	assert.Nil(t, query.StringSlice(""))
	assert.Equal(t, []string{"-name", "alias"}, query.StringSlice(" -name , alias ,"))
}

/*
TestList ensures comma-separated and repeated forms normalize identically.
*/
func TestList(t *testing.T) {
	comma, err := url.ParseQuery("order_by=-name,alias")
	assert.NoError(t, err)
	repeated, err := url.ParseQuery("order_by=-name&order_by=alias")
	assert.NoError(t, err)
	mixed, err := url.ParseQuery("order_by=-name&order_by=alias,id")
	assert.NoError(t, err)

	assert.Equal(t, []string{"-name", "alias"}, query.List(comma, "order_by"))
	assert.Equal(t, query.List(comma, "order_by"), query.List(repeated, "order_by"))
	assert.Equal(t, []string{"-name", "alias", "id"}, query.List(mixed, "order_by"))
	assert.Nil(t, query.List(url.Values{}, "order_by"))
}

func TestTrimmed(t *testing.T) {
	assert.Equal(t, "bat", query.Trimmed(url.Values{"search": {"  bat "}}, "search"))
	assert.Equal(t, "", query.Trimmed(url.Values{}, "search"))
}
