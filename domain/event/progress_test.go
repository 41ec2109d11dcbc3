package event

import (
	"testing"
	"time"
)

func TestCompletion(t *testing.T) {
	tests := []struct {
		name  string
		tasks []Task
		want  float64
	}{
		{
			name:  "no tasks",
			tasks: nil,
			want:  0,
		},
		{
			name:  "none done",
			tasks: []Task{{Description: "a"}, {Description: "b"}},
			want:  0,
		},
		{
			name:  "one of two done",
			tasks: []Task{{Description: "a", Done: true}, {Description: "b"}},
			want:  0.5,
		},
		{
			name: "all done",
			tasks: []Task{
				{Description: "a", Done: true},
				{Description: "b", Done: true},
				{Description: "c", Done: true},
			},
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := validEvent()
			e.Tasks = tt.tasks
			got := Completion(e)
			if got != tt.want {
				t.Errorf("Completion() = %v, want %v", got, tt.want)
			}
			if got < 0 || got > 1 {
				t.Errorf("Completion() = %v, outside [0, 1]", got)
			}
		})
	}
}

func TestPortfolio_Empty(t *testing.T) {
	stats := Portfolio(nil, time.Now())

	want := PortfolioStats{}
	if stats != want {
		t.Errorf("Portfolio(nil) = %+v, want %+v", stats, want)
	}
}

func TestPortfolio(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	past := validEvent()
	past.Date = now.AddDate(0, -1, 0)
	past.Budget = 100000
	past.Tasks = []Task{
		{Description: "a", Done: true},
		{Description: "b", Done: true},
	}

	today := validEvent()
	today.Date = now
	today.Budget = 50000
	today.Tasks = []Task{{Description: "c"}}

	future := validEvent()
	future.Date = now.AddDate(0, 2, 0)
	future.Budget = 500000

	stats := Portfolio([]*Event{past, today, future}, now)

	if stats.TotalEvents != 3 {
		t.Errorf("TotalEvents = %d, want 3", stats.TotalEvents)
	}
	if stats.TotalBudget != 650000 {
		t.Errorf("TotalBudget = %d, want 650000", stats.TotalBudget)
	}
	// Events dated on or after now count as upcoming.
	if stats.UpcomingEvents != 2 {
		t.Errorf("UpcomingEvents = %d, want 2", stats.UpcomingEvents)
	}
	// 2 of 3 tasks done across the portfolio: 66.67 rounds to 67.
	if stats.TaskCompletion != 67 {
		t.Errorf("TaskCompletion = %d, want 67", stats.TaskCompletion)
	}
}

func TestPortfolio_DoesNotMutateInputs(t *testing.T) {
	e := validEvent()
	e.Tasks = []Task{{Description: "a", Done: true}}
	before := *e

	Portfolio([]*Event{e}, time.Now())

	if e.Budget != before.Budget || len(e.Tasks) != 1 || e.Tasks[0] != before.Tasks[0] {
		t.Error("Portfolio() mutated its input event")
	}
}
