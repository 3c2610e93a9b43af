package domain

import "time"

const (
	StatusCompleted = "completed"
	StatusAborted   = "aborted"
)

// Record is the slice of a session the aggregator reads.
type Record struct {
	StartTime     time.Time
	EndTime       *time.Time
	Status        string
	Interruptions int
}

type DailyStat struct {
	Date        string `json:"date"`
	Count       int    `json:"count"`
	AvgMinutes  int    `json:"avgMinutes"`
	Completed   int    `json:"completed"`
	Interrupted int    `json:"interrupted"`
	Aborted     int    `json:"aborted"`
}

type WeeklyStat struct {
	Week  string `json:"week"`
	Count int    `json:"count"`
}

type MonthlyStat struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

type DailyAverage struct {
	Date       string `json:"date"`
	AvgMinutes int    `json:"avgMinutes"`
}

type TotalPomodoros struct {
	Daily   []DailyStat   `json:"daily"`
	Weekly  []WeeklyStat  `json:"weekly"`
	Monthly []MonthlyStat `json:"monthly"`
	Total   int           `json:"total"`
}

type AverageFocusTime struct {
	Daily   []DailyAverage `json:"daily"`
	Overall int            `json:"overall"`
}

// StatusStats counts interrupted sessions independently of their terminal
// status, so a session can appear in both Completed and Interrupted.
type StatusStats struct {
	Completed   int `json:"completed"`
	Interrupted int `json:"interrupted"`
	Aborted     int `json:"aborted"`
}

type ProductivityPatterns struct {
	HourlyDistribution [24]int `json:"hourlyDistribution"`
	MostProductiveHour int     `json:"mostProductiveHour"`
	CurrentStreak      int     `json:"currentStreak"`
	LongestStreak      int     `json:"longestStreak"`
}

type Bundle struct {
	TotalPomodoros       TotalPomodoros       `json:"totalPomodoros"`
	AverageFocusTime     AverageFocusTime     `json:"averageFocusTime"`
	SessionStatusStats   StatusStats          `json:"sessionStatusStats"`
	ProductivityPatterns ProductivityPatterns `json:"productivityPatterns"`
	TrendData            []DailyStat          `json:"trendData"`
}
