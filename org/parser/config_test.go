package parser

import (
	"errors"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		ok     bool
	}{
		{"default", func(c *Config) {}, true},
		{"custom keywords", func(c *Config) {
			c.TodoKeywords = []string{"NEXT", "WAITING", "DONE", "CANCELLED"}
			c.DoneKeywords = []string{"DONE", "CANCELLED"}
		}, true},
		{"no todo keywords", func(c *Config) { c.TodoKeywords = nil }, false},
		{"empty keyword", func(c *Config) { c.TodoKeywords = []string{"TODO", ""} }, false},
		{"keyword with space", func(c *Config) { c.TodoKeywords = []string{"IN PROGRESS"} }, false},
		{"done outside todo set", func(c *Config) { c.DoneKeywords = []string{"FINISHED"} }, false},
		{"empty archive tag", func(c *Config) { c.ArchiveTag = "" }, false},
		{"empty comment keyword", func(c *Config) { c.CommentKeyword = "" }, false},
		{"negative inlinetask level", func(c *Config) { c.InlinetaskMinLevel = -1 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			err := cfg.Validate()
			if tt.ok && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tt.ok && err == nil {
				t.Errorf("expected validation error")
			}
		})
	}
}

func TestNewReportsConfigError(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TodoKeywords = nil
	_, err := New([]byte("* x"), WithConfig(cfg))
	if err == nil {
		t.Fatal("expected error")
	}
	var cerr *ConfigError
	if !errors.As(err, &cerr) {
		t.Fatalf("error type = %T, want *ConfigError", err)
	}
}

func TestReducedLevel(t *testing.T) {
	flat := DefaultConfig()
	odd := DefaultConfig()
	odd.OddLevelsOnly = true

	tests := []struct {
		stars      int
		flat, odd2 int
	}{
		{1, 1, 1},
		{2, 2, 1},
		{3, 3, 2},
		{5, 5, 3},
		{6, 6, 3},
	}
	for _, tt := range tests {
		if got := flat.ReducedLevel(tt.stars); got != tt.flat {
			t.Errorf("flat ReducedLevel(%d) = %d, want %d", tt.stars, got, tt.flat)
		}
		if got := odd.ReducedLevel(tt.stars); got != tt.odd2 {
			t.Errorf("odd ReducedLevel(%d) = %d, want %d", tt.stars, got, tt.odd2)
		}
	}
}

func TestIsDone(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TodoKeywords = []string{"TODO", "DOING", "DONE", "SHIPPED"}
	cfg.DoneKeywords = []string{"DONE", "SHIPPED"}

	if !cfg.IsDone("SHIPPED") {
		t.Error("SHIPPED should be done")
	}
	if cfg.IsDone("DOING") {
		t.Error("DOING should not be done")
	}
	if cfg.IsDone("done") {
		t.Error("done classification is case-sensitive")
	}
}
