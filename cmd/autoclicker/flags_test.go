package main

import (
	"flag"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vedantwpatil/autoclicker/internal/config"
	"github.com/vedantwpatil/autoclicker/internal/geometry"
)

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("autoclicker", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestParseFlags_OnlySetFlagsOverride(t *testing.T) {
	opts, err := parseFlags(newFlagSet(), []string{"-repeat", "25", "-region", "10,10,0,0", "-headless"})
	require.NoError(t, err)
	assert.True(t, opts.headless)

	cfg := config.NewConfig()
	cfg.Rate = 42
	require.NoError(t, opts.apply(cfg))

	assert.Equal(t, 42.0, cfg.Rate)
	assert.EqualValues(t, 25, cfg.Repeat)
	require.NotNil(t, cfg.Region)
	assert.Equal(t, geometry.Rect{X1: 10, Y1: 10, X2: 0, Y2: 0}, *cfg.Region)
	assert.Equal(t, "ctrl+shift+d", cfg.Hotkey)
}

func TestParseFlags_ClearRegionAndHotkey(t *testing.T) {
	opts, err := parseFlags(newFlagSet(), []string{"-region", "", "-hotkey", "", "-display", "1", "-log-level", "debug"})
	require.NoError(t, err)

	cfg := config.NewConfig()
	cfg.Region = &geometry.Rect{X2: 1, Y2: 1}
	require.NoError(t, opts.apply(cfg))

	assert.Nil(t, cfg.Region)
	assert.Empty(t, cfg.Hotkey)
	assert.Equal(t, 1, cfg.Display)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestParseFlags_BadRegion(t *testing.T) {
	opts, err := parseFlags(newFlagSet(), []string{"-region", "1,2"})
	require.NoError(t, err)
	assert.Error(t, opts.apply(config.NewConfig()))
}

func TestParseFlags_Unknown(t *testing.T) {
	_, err := parseFlags(newFlagSet(), []string{"-nope"})
	assert.Error(t, err)
}
