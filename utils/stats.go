package utils

import "time"

// Stats for performance monitoring.
// GenerationsPerSecond is derived from the latest step only; AveragePopulation
// is an exponential moving average weighting each new generation by 0.1.
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	TotalGenerations     int
	Population           int
	StartTime            time.Time
}

// NewStats starts collecting stats from now
func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records a completed step: the total steps so far, the living cells
// after it and how long it took since the previous one. A zero duration keeps
// the previous rate.
func (s *Stats) Update(generation int, population int, duration time.Duration) {
	s.TotalGenerations = generation
	s.Population = population
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}

// Runtime returns how long the stats have been collected
func (s Stats) Runtime() time.Duration {
	return time.Since(s.StartTime)
}
