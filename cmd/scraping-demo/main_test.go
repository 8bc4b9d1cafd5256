package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"algorecall-scraper/lib/demoutil"
	"algorecall-scraper/lib/problem"

	"github.com/stretchr/testify/require"
)

func TestRunSample(t *testing.T) {
	var out bytes.Buffer
	parsed, err := run(demoutil.NewPrinter(&out), nil)
	if err != nil {
		t.Fatal(err)
	}

	require.Equal(t, "1. Two Sum", parsed.Title)
	require.Contains(t, out.String(), `"title": "1. Two Sum"`)
	require.Contains(t, out.String(), `"hints_count": 2`)
	require.Contains(t, out.String(), "ANSWER: YES - Web scraping is fully supported!")
}

func TestRunMissingTitle(t *testing.T) {
	var out bytes.Buffer
	_, err := run(demoutil.NewPrinter(&out), strings.NewReader(`<div class="difficulty">Easy</div>`))
	require.True(t, errors.Is(err, problem.ErrMissingElement))
	require.NotContains(t, out.String(), "Successfully parsed")
}
