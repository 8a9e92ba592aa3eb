package search

import "time"

// Stats accumulates the counters the UCI front end reports in its
// "info" lines: node count, selective depth, elapsed time (from which
// nodes-per-second is derived), and the running sum/count needed to
// report the mean ply depth at which a node was visited.
type Stats struct {
	Nodes        int64
	SelDepth     int
	DepthSum     int64
	DepthSamples int64
	Start        time.Time
}

// Reset zeroes the counters and starts the elapsed-time clock.
func (s *Stats) Reset() {
	s.Nodes = 0
	s.SelDepth = 0
	s.DepthSum = 0
	s.DepthSamples = 0
	s.Start = time.Now()
}

// Node records a visited node at ply, extending SelDepth if needed and
// folding ply into the running mean-depth accumulators.
func (s *Stats) Node(ply int) {
	s.Nodes++
	if ply > s.SelDepth {
		s.SelDepth = ply
	}
	s.DepthSum += int64(ply)
	s.DepthSamples++
}

// MeanDepth returns the average ply at which a node has been visited so
// far, or 0 before any node has been recorded.
func (s *Stats) MeanDepth() float64 {
	if s.DepthSamples == 0 {
		return 0
	}
	return float64(s.DepthSum) / float64(s.DepthSamples)
}

// Elapsed returns the time since Reset.
func (s *Stats) Elapsed() time.Duration {
	return time.Since(s.Start)
}

// NPS returns nodes searched per second so far.
func (s *Stats) NPS() int64 {
	secs := s.Elapsed().Seconds()
	if secs <= 0 {
		return 0
	}
	return int64(float64(s.Nodes) / secs)
}
