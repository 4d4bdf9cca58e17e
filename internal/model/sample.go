package model

import "time"

// SampleTasks builds a demo board around now: a handful of tasks today, one
// unscheduled task and one tomorrow.
func SampleTasks(now time.Time) []Task {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	at := func(days, hours int, minutes int) *time.Time {
		t := today.AddDate(0, 0, days).Add(time.Duration(hours)*time.Hour + time.Duration(minutes)*time.Minute)
		return &t
	}
	ago := func(days int) time.Time { return now.AddDate(0, 0, -days) }

	tasks := []Task{
		{ID: "demo-1", Title: "Review client proposal", Importance: 5, StartDate: at(0, 15, 0), Duration: 3 * time.Hour, Progress: 30, CreatedAt: ago(5)},
		{ID: "demo-2", Title: "Prepare project presentation", Importance: 4, StartDate: at(0, 9, 0), Duration: 2 * time.Hour, CreatedAt: ago(3)},
		{ID: "demo-3", Title: "Update technical docs", Importance: 3, StartDate: at(0, 11, 0), Duration: 4 * time.Hour, Progress: 60, CreatedAt: ago(7)},
		{ID: "demo-4", Title: "Team sync", Importance: 2, StartDate: at(0, 14, 0), Duration: 90 * time.Minute, Progress: 10, CreatedAt: ago(10)},
		{ID: "demo-5", Title: "Learn a new technology", Importance: 4, CreatedAt: ago(1)},
		{ID: "demo-6", Title: "Configure dev server", Importance: 5, StartDate: at(0, 10, 0), Duration: 2 * time.Hour, Progress: 95, CreatedAt: ago(6)},
		{ID: "demo-7", Title: "Design review", Importance: 3, StartDate: at(0, 17, 0), Duration: time.Hour, CreatedAt: ago(2)},
		{ID: "demo-8", Title: "Plan summer holidays", Importance: 2, StartDate: at(1, 0, 0), Duration: 2 * 24 * time.Hour, CreatedAt: ago(1)},
		{ID: "demo-9", Title: "Water the plants", Importance: 1, StartDate: at(0, 8, 30), Duration: 20 * time.Minute, CreatedAt: ago(1)},
	}
	for i := range tasks {
		tasks[i].OriginalViewMode = ViewDaily
		tasks[i].Urgency = CalculateUrgency(tasks[i], now)
	}
	return tasks
}
