package captions

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const demoTrack = `1
00:00:00.000 --> 00:00:02.000
Hello everyone um welcome to the demo.

2
00:00:02.500 --> 00:00:04.000
We hope you enjoy it.
`

func TestParse_ReferenceTrack(t *testing.T) {
	tr, err := Parse(demoTrack)
	require.NoError(t, err)

	// The transcript start is assigned whenever the running start is still
	// 0.0, so a track opening at 0.000 takes its start from the second cue:
	// 4.0 - 2.5 = 1.5. This rule is part of the published contract.
	assert.InDelta(t, 1.5, tr.DurationSec, 1e-9)

	require.Len(t, tr.Cues, 2)
	assert.InDelta(t, 0.0, tr.Cues[0].Start, 1e-9)
	assert.InDelta(t, 2.0, tr.Cues[0].End, 1e-9)
	assert.InDelta(t, 2.5, tr.Cues[1].Start, 1e-9)
	assert.InDelta(t, 4.0, tr.Cues[1].End, 1e-9)

	assert.Equal(t, "Hello everyone um welcome to the demo.\nWe hope you enjoy it.", tr.PlainText)
	assert.Len(t, strings.Fields(tr.PlainText), 12)
}

func TestParse_CueIndexLinesSkipped(t *testing.T) {
	tr, err := Parse("12\n00:00:01.000 --> 00:00:03.000\nOnly this line survives.\n42\n")
	require.NoError(t, err)
	assert.Equal(t, "Only this line survives.", tr.PlainText)
}

func TestParse_CommaDecimalSeparator(t *testing.T) {
	tr, err := Parse("00:00:01,500 --> 00:00:04,250\nBonjour.")
	require.NoError(t, err)
	require.Len(t, tr.Cues, 1)
	assert.InDelta(t, 1.5, tr.Cues[0].Start, 1e-9)
	assert.InDelta(t, 4.25, tr.Cues[0].End, 1e-9)
}

func TestParse_HeaderLinesFlowIntoPlainText(t *testing.T) {
	tr, err := Parse("WEBVTT\n\n00:00:01.000 --> 00:00:02.000\nHi.")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(tr.PlainText, "WEBVTT"))
}

func TestParse_DurationFloor(t *testing.T) {
	// Single cue starting and ending at the same instant.
	tr, err := Parse("00:00:05.000 --> 00:00:05.000\nBlink.")
	require.NoError(t, err)
	assert.InDelta(t, 0.1, tr.DurationSec, 1e-9)

	// Non-monotonic timestamps are not validated; the floor still holds.
	tr, err = Parse("00:01:00.000 --> 00:00:10.000\nBackwards.")
	require.NoError(t, err)
	assert.InDelta(t, 0.1, tr.DurationSec, 1e-9)
}

func TestParse_MalformedTimestampAborts(t *testing.T) {
	cases := []string{
		"00:00 --> 00:05\ntwo-part timestamp",
		"00:00:xx.000 --> 00:00:05.000\nbad seconds",
		"00:00:01.000 --> 00:00:02.000 align:start\ncue settings",
	}
	for _, raw := range cases {
		_, err := Parse(raw)
		var mts *MalformedTimestampError
		assert.ErrorAs(t, err, &mts, "input: %q", raw)
	}
}

func TestParse_EmptyInput(t *testing.T) {
	_, err := Parse("   \n\t\n")
	assert.True(t, errors.Is(err, ErrEmptyInput))
}

func TestParse_TimingOnlyTrackHasEmptyText(t *testing.T) {
	tr, err := Parse("1\n00:00:00.500 --> 00:00:02.000\n\n2\n00:00:03.000 --> 00:00:04.000\n")
	require.NoError(t, err)
	assert.Empty(t, tr.PlainText)
	assert.Len(t, tr.Cues, 2)
	assert.InDelta(t, 3.5, tr.DurationSec, 1e-9)
}
