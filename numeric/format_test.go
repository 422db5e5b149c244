package numeric_test

import (
	"testing"

	"github.com/katalvlaran/rowreduce/numeric"
	"github.com/stretchr/testify/assert"
)

func TestFormatAnnotation(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{5e-11, "0"},
		{-5e-11, "0"},
		{2, "2"},
		{-3, "-3"},
		{2.00000000001, "2"},
		{-0.75, "-0.75"},
		{1.0 / 3, "0.33333333"},
		{-2.0 / 3, "-0.66666667"},
		{1.5, "1.5"},
		{123.456789012, "123.45679"},
		{0.00001, "0.00001"},
		{-0.0000025, "-0.0000025"},
		{123456789.5, "123456790"},
		{1.5e-7, "1.5e-07"},
		{1.5e21, "1.5e+21"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, numeric.FormatAnnotation(tc.in), "in=%v", tc.in)
	}
}

func TestFormatSolution(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{3, "3"},
		{-4, "-4"},
		{0, "0"},
		{2.8, "2.8"},
		{-0.6000000000000001, "-0.6"},
		{1.0 / 3, "0.333333"},
		{2.0 / 3, "0.666667"},
		{1e-9, "0"},
		{-1e-9, "0"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, numeric.FormatSolution(tc.in), "in=%v", tc.in)
	}
}
