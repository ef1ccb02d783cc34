package compression

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sample = []byte(strings.Repeat("K123456,Jane,Doe,Full-Time,Active,03/14/2011,Commercial Bank\n", 200))

func roundTrip(t *testing.T, alg Algorithm, level Level) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw, err := NewWriter(&buf, alg, level)
	require.NoError(t, err)
	_, err = zw.Write(sample)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	compressed := append([]byte(nil), buf.Bytes()...)

	zr, err := NewReader(bytes.NewReader(compressed), alg)
	require.NoError(t, err)
	got, err := io.ReadAll(zr)
	require.NoError(t, err)
	require.NoError(t, zr.Close())
	assert.Equal(t, sample, got)
	return compressed
}

func TestRoundTrip(t *testing.T) {
	for _, alg := range Algorithms {
		for _, level := range []Level{Fastest, Default, Better, Best} {
			t.Run(fmt.Sprintf("%s/%d", alg, level), func(t *testing.T) {
				compressed := roundTrip(t, alg, level)
				if alg != None {
					assert.Less(t, len(compressed), len(sample))
				}
			})
		}
	}
}

func TestWriter_Deterministic(t *testing.T) {
	for _, alg := range Algorithms {
		t.Run(string(alg), func(t *testing.T) {
			assert.Equal(t, roundTrip(t, alg, Default), roundTrip(t, alg, Default))
		})
	}
}

func TestParse(t *testing.T) {
	a, err := Parse("")
	require.NoError(t, err)
	assert.Equal(t, None, a)

	a, err = Parse("zstd")
	require.NoError(t, err)
	assert.Equal(t, Zstd, a)

	_, err = Parse("brotli")
	assert.Error(t, err)

	l, err := ParseLevel("best")
	require.NoError(t, err)
	assert.Equal(t, Best, l)

	l, err = ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, Default, l)

	_, err = ParseLevel("max")
	assert.Error(t, err)

	_, err = NewWriter(io.Discard, "brotli", Default)
	assert.Error(t, err)
	_, err = NewReader(strings.NewReader(""), "brotli")
	assert.Error(t, err)
}

func TestFromPath(t *testing.T) {
	tests := []struct {
		path string
		alg  Algorithm
		base string
	}{
		{"roster.csv", None, "roster.csv"},
		{"roster.csv.gz", Gzip, "roster.csv"},
		{"out/roster.jsonl.ZST", Zstd, "out/roster.jsonl"},
		{"roster.csv.s2", S2, "roster.csv"},
		{"roster.csv.snappy", Snappy, "roster.csv"},
		{"roster.csv.lz4", LZ4, "roster.csv"},
		{"roster", None, "roster"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			alg, base := FromPath(tt.path)
			assert.Equal(t, tt.alg, alg)
			assert.Equal(t, tt.base, base)
		})
	}
	assert.Equal(t, "", Extension(None))
}
