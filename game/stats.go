package game

import (
	"sort"
	"time"

	"github.com/rs/zerolog"
)

// FrameStats collects what the loop measured: frame counts, frames that ran
// past their budget and one frames-per-second sample for every title refresh.
type FrameStats struct {
	StartTick  uint64 `json:"startTick"`
	EndTick    uint64 `json:"endTick"`
	Frames     int    `json:"frames"`
	Overruns   int    `json:"overruns"`
	FPSSamples []int  `json:"fpsSamples"`
}

func NewFrameStats(start uint64) *FrameStats {
	return &FrameStats{
		StartTick:  start,
		EndTick:    start,
		FPSSamples: make([]int, 0),
	}
}

// AddFrame counts one finished frame.
func (s *FrameStats) AddFrame(overrun bool) {
	s.Frames++
	if overrun {
		s.Overruns++
	}
}

// AddSample records the frame count of one title interval.
func (s *FrameStats) AddSample(fps int) {
	s.FPSSamples = append(s.FPSSamples, fps)
}

func (s *FrameStats) Finish(end uint64) {
	s.EndTick = end
}

func (s *FrameStats) Elapsed() time.Duration {
	return time.Duration(s.EndTick-s.StartTick) * time.Millisecond
}

func (s *FrameStats) AverageFPS() float64 {
	if len(s.FPSSamples) == 0 {
		return 0
	}

	total := 0
	for _, fps := range s.FPSSamples {
		total += fps
	}
	return float64(total) / float64(len(s.FPSSamples))
}

func (s *FrameStats) MedianFPS() float64 {
	if len(s.FPSSamples) == 0 {
		return 0
	}

	samples := make([]int, len(s.FPSSamples))
	copy(samples, s.FPSSamples)
	sort.Ints(samples)

	mid := len(samples) / 2
	if len(samples)%2 == 0 {
		return float64(samples[mid-1]+samples[mid]) / 2
	}
	return float64(samples[mid])
}

func (s *FrameStats) MaxFPS() int {
	if len(s.FPSSamples) == 0 {
		return 0
	}

	maxFPS := s.FPSSamples[0]
	for _, fps := range s.FPSSamples {
		if fps > maxFPS {
			maxFPS = fps
		}
	}
	return maxFPS
}

func (s *FrameStats) MinFPS() int {
	if len(s.FPSSamples) == 0 {
		return 0
	}

	minFPS := s.FPSSamples[0]
	for _, fps := range s.FPSSamples {
		if fps < minFPS {
			minFPS = fps
		}
	}
	return minFPS
}

// MarshalZerologObject lets the stats ride along a log line.
func (s *FrameStats) MarshalZerologObject(e *zerolog.Event) {
	e.Int("count", s.Frames).
		Int("overruns", s.Overruns).
		Dur("elapsed", s.Elapsed()).
		Float64("avg_fps", s.AverageFPS()).
		Float64("median_fps", s.MedianFPS())
}
