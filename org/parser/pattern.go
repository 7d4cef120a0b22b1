package parser

import (
	"fmt"
	"regexp"
	"strings"
)

// Statically known patterns. Keyword-dependent patterns are compiled per
// Config in compilePatterns.
var (
	// A headline opener: a run of stars ended by horizontal whitespace or
	// the end of its line.
	reHeadline = regexp.MustCompile(`(?m)\*+(?:[ \t]|$)`)

	// Same shape, but anchored to line beginnings for forward searches.
	reHeadlineLine = regexp.MustCompile(`(?m)^\*+(?:[ \t]|$)`)

	// A priority cookie directly after the stars or TODO keyword.
	rePriority = regexp.MustCompile(`\[#(.)\][ \t]*`)

	// The trailing tag group of a headline, e.g. " :work:urgent:".
	reTags = regexp.MustCompile(`[ \t]+(:[[:alnum:]_@#%:]*:)[ \t]*$`)

	// A planning keyword with its terminating colon.
	rePlanningKeyword = regexp.MustCompile(`(CLOSED|DEADLINE|SCHEDULED):`)

	// First token of a planning line, after optional indentation.
	rePlanningLine = regexp.MustCompile(`[ \t]*(?:CLOSED|DEADLINE|SCHEDULED):`)

	// A clock line; never a planning line even though it looks like one.
	reClockLine = regexp.MustCompile(`(?i)[ \t]*CLOCK:`)

	// Property drawer delimiters, matched against a whole line.
	reDrawerBegin = regexp.MustCompile(`(?mi)[ \t]*:PROPERTIES:[ \t]*$`)
	reDrawerEnd   = regexp.MustCompile(`(?mi)[ \t]*:END:[ \t]*$`)

	// An interior drawer line, ":KEY:" with an optional value.
	reNodeProperty = regexp.MustCompile(`(?m)[ \t]*:([^\s:]+):(?:[ \t]+(.*?))?[ \t]*$`)

	// The closing line of a non-degenerate inline task.
	reInlinetaskEnd = regexp.MustCompile(`(?m)^(\*+)[ \t]+END[ \t]*$`)

	// An Org timestamp, active or inactive. Group layout: 1 opening
	// bracket, 2 date, 3 day name, 4 start time, 5 end time, 6 repeater,
	// 7 delay, 8 closing bracket.
	reTimestamp = regexp.MustCompile(
		`([<\[])(\d{4}-\d{2}-\d{2})(?:[ \t]+([^\d\s>\]+-][^>\]\n]*?))??` +
			`(?:[ \t]+(\d{1,2}:\d{2})(?:-(\d{1,2}:\d{2}))?)?` +
			`(?:[ \t]+([.+]?\+\d+[hdwmy]))?` +
			`(?:[ \t]+(-\d+[hdwmy]))?[ \t]*([>\]])`)
)

// patterns holds the regular expressions that depend on the configured
// keyword sets, compiled once per parser.
type patterns struct {
	todo    *regexp.Regexp
	comment *regexp.Regexp
}

func compilePatterns(cfg Config) (*patterns, error) {
	alts := make([]string, len(cfg.TodoKeywords))
	for i, kw := range cfg.TodoKeywords {
		alts[i] = regexp.QuoteMeta(kw)
	}
	todo, err := regexp.Compile(`(?m)(` + strings.Join(alts, "|") + `)(?:[ \t]+|$)`)
	if err != nil {
		return nil, fmt.Errorf("todo keywords: %w", err)
	}
	comment, err := regexp.Compile(`(?m)` + regexp.QuoteMeta(cfg.CommentKeyword) + `(?:[ \t]+|$)`)
	if err != nil {
		return nil, fmt.Errorf("comment keyword: %w", err)
	}
	return &patterns{todo: todo, comment: comment}, nil
}
