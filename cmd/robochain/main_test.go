package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/robochain/chain"
)

func TestReadCodes(t *testing.T) {
	codes, err := readCodes(strings.NewReader("029A\n\n  980A \r\n179A"))
	require.NoError(t, err)
	assert.Equal(t, []string{"029A", "980A", "179A"}, codes)

	codes, err = readCodes(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, codes)
}

func TestSolveInput(t *testing.T) {
	codes, err := readCodes(strings.NewReader("029A\n980A\n179A\n456A\n379A\n"))
	require.NoError(t, err)

	s, err := chain.New()
	require.NoError(t, err)
	total, err := s.Solve(codes)
	require.NoError(t, err)
	assert.Equal(t, 126384, total)
}
