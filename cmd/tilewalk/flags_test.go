package main

import (
	"flag"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tilewalk/grid"
)

func TestParseCoord(t *testing.T) {
	cases := []struct {
		in   string
		want grid.Coordinate
		ok   bool
	}{
		{"1,3", grid.C(1, 3), true},
		{" 15 , 11 ", grid.C(15, 11), true},
		{"-1,0", grid.C(-1, 0), true},
		{"1", grid.Coordinate{}, false},
		{"a,2", grid.Coordinate{}, false},
		{"1,2,3", grid.Coordinate{}, false},
	}
	for _, tc := range cases {
		got, err := parseCoord(tc.in)
		if !tc.ok {
			assert.Error(t, err, tc.in)
			continue
		}
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got)
	}
}

func TestCoordFlag(t *testing.T) {
	var c grid.Coordinate
	fs := flag.NewFlagSet("t", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Var(coordFlag{&c}, "start", "")

	require.NoError(t, fs.Parse([]string{"-start", "4,2"}))
	assert.Equal(t, grid.C(4, 2), c)
	assert.Equal(t, "4,2", coordFlag{&c}.String())
	assert.Error(t, fs.Parse([]string{"-start", "x"}))
}
