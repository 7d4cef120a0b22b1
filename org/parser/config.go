package parser

import (
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Config carries the user-settable keyword sets and literals that drive
// headline classification. The zero value is not usable; start from
// DefaultConfig.
type Config struct {
	// TodoKeywords lists every valid TODO state, in the order keyword
	// matching is attempted. Matching is case-sensitive.
	TodoKeywords []string `yaml:"todo_keywords"`

	// DoneKeywords is the subset of TodoKeywords that classifies a
	// headline as done.
	DoneKeywords []string `yaml:"done_keywords"`

	// ArchiveTag marks a headline as archived when present among its tags.
	ArchiveTag string `yaml:"archive_tag"`

	// FootnoteSection is the exact title of the footnote section headline.
	FootnoteSection string `yaml:"footnote_section"`

	// CommentKeyword marks a headline as commented when it appears as the
	// first word of the title.
	CommentKeyword string `yaml:"comment_keyword"`

	// OddLevelsOnly folds raw star counts so that only odd counts are
	// meaningful: 2n-1 stars produce level n.
	OddLevelsOnly bool `yaml:"odd_levels_only"`

	// InlinetaskMinLevel is the smallest star count recognized as an
	// inline task.
	InlinetaskMinLevel int `yaml:"inlinetask_min_level"`
}

// DefaultConfig mirrors the stock Org mode settings.
func DefaultConfig() Config {
	return Config{
		TodoKeywords:       []string{"TODO", "DONE"},
		DoneKeywords:       []string{"DONE"},
		ArchiveTag:         "ARCHIVE",
		FootnoteSection:    "Footnotes",
		CommentKeyword:     "COMMENT",
		InlinetaskMinLevel: 15,
	}
}

// Validate checks the configuration. It is called once when a parser is
// constructed; parse calls never re-validate.
func (c Config) Validate() error {
	err := validation.ValidateStruct(&c,
		validation.Field(&c.TodoKeywords, validation.Required, validation.Each(validation.Required, validation.By(noWhitespace))),
		validation.Field(&c.DoneKeywords, validation.Each(validation.Required, validation.By(noWhitespace))),
		validation.Field(&c.ArchiveTag, validation.Required),
		validation.Field(&c.CommentKeyword, validation.Required, validation.By(noWhitespace)),
		validation.Field(&c.InlinetaskMinLevel, validation.Min(1)),
	)
	if err != nil {
		return err
	}
	for _, done := range c.DoneKeywords {
		if !contains(c.TodoKeywords, done) {
			return fmt.Errorf("done keyword %q is not in todo_keywords", done)
		}
	}
	return nil
}

// ReducedLevel folds a raw star count into a headline level.
func (c Config) ReducedLevel(stars int) int {
	if c.OddLevelsOnly {
		return (stars + 1) / 2
	}
	return stars
}

// IsDone reports whether keyword belongs to the configured done subset.
func (c Config) IsDone(keyword string) bool {
	return contains(c.DoneKeywords, keyword)
}

func contains(set []string, s string) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}

func noWhitespace(value interface{}) error {
	s, _ := value.(string)
	if strings.ContainsAny(s, " \t\n") {
		return fmt.Errorf("must not contain whitespace")
	}
	return nil
}
