// Package stats tracks in-memory generation counters for the health and
// listing endpoints. Counters reset on restart; durable history is out of
// scope for this service.
package stats

import (
	"sync"
	"time"

	"github.com/Samer-Gassouma/aeon-generator/internal/entities"
	"github.com/Samer-Gassouma/aeon-generator/internal/pkg/clock"
)

// Snapshot is a point-in-time copy of the counters
type Snapshot struct {
	TotalGenerated        int64              `json:"total_generated"`
	SuccessfulGenerations int64              `json:"successful_generations"`
	FailedGenerations     int64              `json:"failed_generations"`
	AverageTime           float64            `json:"average_time"`
	LastGeneration        string             `json:"last_generation,omitempty"`
	PersonalityCounts     map[string]int64   `json:"personality_counts"`
	ArenaThemeCounts      map[string]int64   `json:"arena_theme_counts"`
}

// Collector accumulates generation statistics. Safe for concurrent use.
type Collector struct {
	mu sync.Mutex

	clock clock.Clock

	totalGenerated int64
	successful     int64
	failed         int64
	averageTime    float64
	lastGeneration time.Time

	personalityCounts map[string]int64
	themeCounts       map[string]int64
}

// New creates an empty collector
func New(clk clock.Clock) *Collector {
	return &Collector{
		clock:             clk,
		personalityCounts: make(map[string]int64),
		themeCounts:       make(map[string]int64),
	}
}

// RecordGeneration folds one generation round into the counters. The average
// is a running mean over successful rounds only.
func (c *Collector) RecordGeneration(weapons []entities.WeaponRecord, elapsed time.Duration, success bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.totalGenerated += int64(len(weapons))
	if success {
		c.successful++
		count := float64(c.successful)
		c.averageTime = (c.averageTime*(count-1) + elapsed.Seconds()) / count
	} else {
		c.failed++
	}
	c.lastGeneration = c.clock.Now()

	for _, weapon := range weapons {
		personality := weapon.Personality
		if personality == "" {
			personality = "unknown"
		}
		c.personalityCounts[personality]++
	}
}

// RecordTheme counts one generation request per arena theme
func (c *Collector) RecordTheme(theme string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.themeCounts[theme]++
}

// Snapshot copies the counters
func (c *Collector) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	snapshot := Snapshot{
		TotalGenerated:        c.totalGenerated,
		SuccessfulGenerations: c.successful,
		FailedGenerations:     c.failed,
		AverageTime:           c.averageTime,
		PersonalityCounts:     make(map[string]int64, len(c.personalityCounts)),
		ArenaThemeCounts:      make(map[string]int64, len(c.themeCounts)),
	}
	if !c.lastGeneration.IsZero() {
		snapshot.LastGeneration = c.lastGeneration.Format(time.RFC3339)
	}
	for k, v := range c.personalityCounts {
		snapshot.PersonalityCounts[k] = v
	}
	for k, v := range c.themeCounts {
		snapshot.ArenaThemeCounts[k] = v
	}

	return snapshot
}
