package event

import (
	"math"
	"time"
)

// PortfolioStats summarizes a user's events for the dashboard.
type PortfolioStats struct {
	TotalEvents    int   `json:"totalEvents"`
	TotalBudget    int64 `json:"totalBudget"`
	UpcomingEvents int   `json:"upcomingEvents"`
	TaskCompletion int   `json:"taskCompletion"`
}

// Completion returns the fraction of the event's tasks that are done, in
// [0, 1]. An event with no tasks has completion 0.
func Completion(e *Event) float64 {
	if len(e.Tasks) == 0 {
		return 0
	}
	done := 0
	for _, task := range e.Tasks {
		if task.Done {
			done++
		}
	}
	return float64(done) / float64(len(e.Tasks))
}

// Portfolio computes aggregate statistics over a collection of events.
// Upcoming counts events whose date is on or after now. TaskCompletion is
// the done/total ratio across all events, rounded to the nearest integer
// percentage, and 0 when there are no tasks anywhere.
func Portfolio(events []*Event, now time.Time) PortfolioStats {
	stats := PortfolioStats{TotalEvents: len(events)}

	totalTasks := 0
	doneTasks := 0
	for _, e := range events {
		stats.TotalBudget += int64(e.Budget)
		if !e.Date.Before(now) {
			stats.UpcomingEvents++
		}
		totalTasks += len(e.Tasks)
		for _, task := range e.Tasks {
			if task.Done {
				doneTasks++
			}
		}
	}

	if totalTasks > 0 {
		stats.TaskCompletion = int(math.Round(float64(doneTasks) / float64(totalTasks) * 100))
	}
	return stats
}
