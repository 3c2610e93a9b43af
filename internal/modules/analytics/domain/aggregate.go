package domain

import (
	"fmt"
	"sort"
	"time"
)

const dayLayout = "2006-01-02"

type dayBucket struct {
	count       int
	minutes     int
	completed   int
	interrupted int
	aborted     int
}

// Compute derives the statistics bundle from one user's records in a single
// pass. Calendar buckets are taken from each start time in loc; now decides
// which days count as today and yesterday for the current streak.
func Compute(records []Record, now time.Time, loc *time.Location) Bundle {
	if loc == nil {
		loc = time.Local
	}
	days := map[string]*dayBucket{}
	weeks := map[string]int{}
	months := map[string]int{}
	bundle := Bundle{}

	for _, r := range records {
		local := r.StartTime.In(loc)
		dayKey := local.Format(dayLayout)
		isoYear, isoWeek := local.ISOWeek()
		weeks[fmt.Sprintf("%04d-W%02d", isoYear, isoWeek)]++
		months[local.Format("2006-01")]++
		bundle.ProductivityPatterns.HourlyDistribution[local.Hour()]++

		day, ok := days[dayKey]
		if !ok {
			day = &dayBucket{}
			days[dayKey] = day
		}
		day.count++
		if r.EndTime != nil && !r.StartTime.IsZero() {
			if minutes := int(r.EndTime.Sub(r.StartTime).Minutes()); minutes > 0 {
				day.minutes += minutes
			}
		}
		switch r.Status {
		case StatusCompleted:
			day.completed++
			bundle.SessionStatusStats.Completed++
		case StatusAborted:
			day.aborted++
			bundle.SessionStatusStats.Aborted++
		}
		if r.Interruptions > 0 {
			day.interrupted++
			bundle.SessionStatusStats.Interrupted++
		}
	}

	dayKeys := sortedKeys(days)
	bundle.TotalPomodoros.Total = len(records)
	bundle.TotalPomodoros.Daily = make([]DailyStat, 0, len(dayKeys))
	bundle.AverageFocusTime.Daily = make([]DailyAverage, 0, len(dayKeys))
	avgSum := 0
	for _, key := range dayKeys {
		day := days[key]
		avg := day.minutes / day.count
		avgSum += avg
		bundle.TotalPomodoros.Daily = append(bundle.TotalPomodoros.Daily, DailyStat{
			Date:        key,
			Count:       day.count,
			AvgMinutes:  avg,
			Completed:   day.completed,
			Interrupted: day.interrupted,
			Aborted:     day.aborted,
		})
		bundle.AverageFocusTime.Daily = append(bundle.AverageFocusTime.Daily, DailyAverage{Date: key, AvgMinutes: avg})
	}
	if len(dayKeys) > 0 {
		// round half up; averages are never negative
		bundle.AverageFocusTime.Overall = (2*avgSum + len(dayKeys)) / (2 * len(dayKeys))
	}

	bundle.TotalPomodoros.Weekly = make([]WeeklyStat, 0, len(weeks))
	for _, key := range sortedKeys(weeks) {
		bundle.TotalPomodoros.Weekly = append(bundle.TotalPomodoros.Weekly, WeeklyStat{Week: key, Count: weeks[key]})
	}
	bundle.TotalPomodoros.Monthly = make([]MonthlyStat, 0, len(months))
	for _, key := range sortedKeys(months) {
		bundle.TotalPomodoros.Monthly = append(bundle.TotalPomodoros.Monthly, MonthlyStat{Month: key, Count: months[key]})
	}

	hourly := bundle.ProductivityPatterns.HourlyDistribution
	for hour := 1; hour < len(hourly); hour++ {
		if hourly[hour] > hourly[bundle.ProductivityPatterns.MostProductiveHour] {
			bundle.ProductivityPatterns.MostProductiveHour = hour
		}
	}

	today := now.In(loc)
	bundle.ProductivityPatterns.CurrentStreak, bundle.ProductivityPatterns.LongestStreak = Streaks(dayKeys, today)

	bundle.TrendData = append([]DailyStat(nil), bundle.TotalPomodoros.Daily...)
	if bundle.TrendData == nil {
		bundle.TrendData = []DailyStat{}
	}
	return bundle
}

// Streaks computes the current and longest run of consecutive calendar days
// from sorted, distinct YYYY-MM-DD keys. The current streak only counts when
// today or yesterday is present.
func Streaks(sortedDays []string, today time.Time) (current, longest int) {
	if len(sortedDays) == 0 {
		return 0, 0
	}
	dates := make([]time.Time, 0, len(sortedDays))
	for _, key := range sortedDays {
		d, err := time.Parse(dayLayout, key)
		if err != nil {
			continue
		}
		dates = append(dates, d)
	}
	if len(dates) == 0 {
		return 0, 0
	}

	run := 1
	longest = 1
	for i := 1; i < len(dates); i++ {
		if daysBetween(dates[i-1], dates[i]) == 1 {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}

	todayKey := today.Format(dayLayout)
	yesterdayKey := today.AddDate(0, 0, -1).Format(dayLayout)
	active := false
	for _, key := range sortedDays {
		if key == todayKey || key == yesterdayKey {
			active = true
			break
		}
	}
	if !active {
		return 0, longest
	}
	current = 1
	for i := len(dates) - 1; i > 0; i-- {
		if daysBetween(dates[i-1], dates[i]) != 1 {
			break
		}
		current++
	}
	return current, longest
}

// daysBetween counts calendar days between two UTC midnights.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
