package analysis

import (
	"github.com/montanaflynn/stats"

	"github.com/podiumcoach/podium/internal/captions"
	"github.com/podiumcoach/podium/internal/models"
)

const (
	pauseThresholdSec     = 0.5
	longPauseThresholdSec = 3.0
)

// Pauses derives silence gaps between consecutive cue boundaries. Only gaps
// above 0.5s count as pauses; gaps above 3.0s count as long pauses.
//
// PauseRate is pauses per minute of cue count (cues/60), not elapsed time.
// The unusual normalization is part of the published contract and is kept
// as-is for compatibility.
func Pauses(cues []captions.Cue) models.PauseProfile {
	if len(cues) < 2 {
		return models.PauseProfile{Pauses: []float64{}}
	}

	var (
		kept      []float64
		longCount int
		total     float64
	)
	for i := 1; i < len(cues); i++ {
		gap := cues[i].Start - cues[i-1].End
		if gap <= pauseThresholdSec {
			continue
		}
		kept = append(kept, gap)
		total += gap
		if gap > longPauseThresholdSec {
			longCount++
		}
	}

	if len(kept) == 0 {
		return models.PauseProfile{Pauses: []float64{}}
	}

	avg, _ := stats.Mean(kept)
	rate := float64(len(kept)) / (float64(len(cues)) / 60.0)

	return models.PauseProfile{
		Pauses:         kept,
		AvgPause:       round2(avg),
		LongPauseCount: longCount,
		PauseRate:      round2(rate),
		TotalPauseTime: round2(total),
	}
}
