// Package metrics holds the pure derivation logic behind the stats screens:
// streak counting, savings estimates and day-of-year content rotation.
// Nothing in here touches the database or the clock; callers pass dates in.
package metrics

import (
	"sort"
	"time"

	"soberSipAPI/internal/types/drinklog"
)

// CaloriesPerDrink is the flat per-drink estimate used for every calorie
// figure in the app.
const CaloriesPerDrink = 140

// AssumedReductionRate is the flat cut assumed when projecting future
// savings for a user with no usable history yet.
const AssumedReductionRate = 0.7

type StreakData struct {
	CurrentStreak int
	LongestStreak int
	LastDrinkDate *time.Time
	StartDate     time.Time
}

type UserStats struct {
	TotalDaysTracked     int
	AlcoholFreeDays      int
	AverageDrinksPerWeek float64
	MoneySaved           float64
	CaloriesSaved        float64
}

// day normalizes a timestamp to its calendar day in UTC so that streak
// arithmetic is immune to DST offsets.
func day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func daysBetween(a, b time.Time) int {
	return int(day(b).Sub(day(a)).Hours() / 24)
}

// drinkDays returns the distinct drinking days inside [start, today],
// sorted ascending.
func drinkDays(logs []drinklog.AlcoholLog, start, today time.Time) []time.Time {
	seen := make(map[time.Time]bool)
	for _, l := range logs {
		d := day(l.Timestamp)
		if d.Before(start) || d.After(today) {
			continue
		}
		seen[d] = true
	}
	days := make([]time.Time, 0, len(seen))
	for d := range seen {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	return days
}

// ComputeStreak walks the log history and derives the streak counters.
// A day with at least one log is a drinking day and breaks the streak; a
// day with none counts as alcohol-free. With no drinks ever logged both
// counters equal the days elapsed since the start date.
func ComputeStreak(logs []drinklog.AlcoholLog, startDate, today time.Time) StreakData {
	start := day(startDate)
	end := day(today)

	data := StreakData{StartDate: start}
	if end.Before(start) {
		return data
	}

	days := drinkDays(logs, start, end)

	// Streak lengths are day differences between consecutive drinking
	// days, seeded with the account start date and ended at today.
	prev := start
	longest := 0
	for _, d := range days {
		if gap := daysBetween(prev, d); gap > longest {
			longest = gap
		}
		prev = d
	}

	current := daysBetween(prev, end)
	if current > longest {
		longest = current
	}

	data.CurrentStreak = current
	data.LongestStreak = longest
	if len(days) > 0 {
		last := days[len(days)-1]
		data.LastDrinkDate = &last
	}
	return data
}

// ComputeStats derives the stats panel numbers from actual logs. Money and
// calorie figures here are backed by history; the forward-looking estimate
// lives in ProjectedSavings and must not be mixed up with these.
func ComputeStats(logs []drinklog.AlcoholLog, startDate, today time.Time, pricePerDrink float64) UserStats {
	start := day(startDate)
	end := day(today)

	var s UserStats
	if end.Before(start) {
		return s
	}

	s.TotalDaysTracked = daysBetween(start, end) + 1

	days := drinkDays(logs, start, end)
	s.AlcoholFreeDays = s.TotalDaysTracked - len(days)

	var totalDrinks float64
	for _, l := range logs {
		d := day(l.Timestamp)
		if d.Before(start) || d.After(end) {
			continue
		}
		totalDrinks += l.Amount
	}

	if s.TotalDaysTracked > 0 {
		s.AverageDrinksPerWeek = totalDrinks / (float64(s.TotalDaysTracked) / 7)

		drinksPerDay := totalDrinks / float64(s.TotalDaysTracked)
		drinksAvoided := float64(s.AlcoholFreeDays) * drinksPerDay
		s.MoneySaved = drinksAvoided * pricePerDrink
		s.CaloriesSaved = drinksAvoided * CaloriesPerDrink
	}
	return s
}

// ProjectedSavings estimates future savings over the given number of weeks
// assuming the user cuts their reported baseline by the flat reduction
// rate. Used before real log history exists.
func ProjectedSavings(avgDrinksPerWeek, pricePerDrink float64, weeks int) (money, calories float64) {
	if weeks <= 0 || avgDrinksPerWeek <= 0 {
		return 0, 0
	}
	avoided := avgDrinksPerWeek * AssumedReductionRate * float64(weeks)
	return avoided * pricePerDrink, avoided * CaloriesPerDrink
}

// DailySelection picks today's index into a fixed content pool. The index
// is a pure function of the calendar date: day-of-year modulo pool size.
func DailySelection(poolLen int, date time.Time) int {
	if poolLen <= 0 {
		return 0
	}
	return date.YearDay() % poolLen
}

// BurnADrinkTime is how many repetitions of a workout burn one drink's
// worth of calories, rounded up.
func BurnADrinkTime(workoutCalories int) int {
	if workoutCalories <= 0 {
		return 0
	}
	return (CaloriesPerDrink + workoutCalories - 1) / workoutCalories
}
