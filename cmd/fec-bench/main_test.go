package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRaptorQEncodeDecodeRoundTripNoLoss(t *testing.T) {
	data := make([]byte, 8*16)
	for i := range data {
		data[i] = byte(i)
	}

	pkts, err := raptorQEncodeBlock(data, 10, 8, 16)
	require.NoError(t, err)
	require.Len(t, pkts, 10)

	got, ok := raptorQDecodeBytes(pkts, 10, 16, len(data))
	require.True(t, ok)
	assert.Equal(t, data, got)
}

func TestRaptorQDecodeWithOneMissingSymbol(t *testing.T) {
	data := make([]byte, 8*16)
	for i := range data {
		data[i] = byte(i * 3)
	}

	pkts, err := raptorQEncodeBlock(data, 12, 8, 16)
	require.NoError(t, err)

	recv := append([]raptorQPacket(nil), pkts[:8]...)
	recv = append(recv, pkts[9:]...) // drop index 8, the first repair symbol (k=8)

	got, ok := raptorQDecodeBytes(recv, 12, 16, len(data))
	require.True(t, ok)
	assert.Equal(t, data, got)
}

func TestRaptorQEncodeBlockRejectsBadParams(t *testing.T) {
	_, err := raptorQEncodeBlock([]byte("x"), 4, 8, 16) // k > n
	assert.Error(t, err)
}
