// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/pdiddy/bibdiff/internal/citation"
	"github.com/pdiddy/bibdiff/pkg/types"
)

// compareConfig assembles the run configuration from viper (config file,
// environment, bound flags). Positional args, when given, replace the
// configured input paths and must come as a pair.
func compareConfig(args []string) (types.CompareConfig, error) {
	cfg := types.CompareConfig{
		Left:                  viper.GetString("left"),
		Right:                 viper.GetString("right"),
		MaxAuthors:            viper.GetInt("max_authors"),
		AllowNonstandardTypes: viper.GetBool("nonstandard_types"),
		Journals:              citation.MergeJournals(citation.DefaultJournals(), viper.GetStringMapString("journals")),
	}

	switch len(args) {
	case 0:
	case 2:
		cfg.Left, cfg.Right = args[0], args[1]
	default:
		return cfg, fmt.Errorf("expected two bibliography files, got %d", len(args))
	}

	if cfg.Left == "" {
		cfg.Left = types.DefaultLeft
	}
	if cfg.Right == "" {
		cfg.Right = types.DefaultRight
	}
	if cfg.MaxAuthors <= 0 {
		cfg.MaxAuthors = types.DefaultMaxAuthors
	}
	return cfg, nil
}
