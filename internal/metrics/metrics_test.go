package metrics

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"soberSipAPI/internal/types/drinklog"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 14, 30, 0, 0, time.UTC)
}

func logOn(t time.Time, amount float64) drinklog.AlcoholLog {
	return drinklog.AlcoholLog{
		ID:        uuid.New(),
		Amount:    amount,
		DrinkType: "beer",
		Timestamp: t,
	}
}

func TestComputeStreakNoLogs(t *testing.T) {
	start := date(2026, 3, 11)
	today := date(2026, 3, 20)

	data := ComputeStreak(nil, start, today)

	if data.CurrentStreak != 9 {
		t.Errorf("expected current streak 9, got %d", data.CurrentStreak)
	}
	if data.LongestStreak != data.CurrentStreak {
		t.Errorf("with no logs longest (%d) must equal current (%d)", data.LongestStreak, data.CurrentStreak)
	}
	if data.LastDrinkDate != nil {
		t.Errorf("expected nil last drink date, got %v", data.LastDrinkDate)
	}
}

func TestComputeStreakOneDrink(t *testing.T) {
	// Ten-day-old account, one drink on day 3.
	start := date(2026, 3, 11)
	drinkDay := date(2026, 3, 14)
	today := date(2026, 3, 20)

	logs := []drinklog.AlcoholLog{logOn(drinkDay, 2)}
	data := ComputeStreak(logs, start, today)

	if data.CurrentStreak != 6 {
		t.Errorf("expected current streak 6, got %d", data.CurrentStreak)
	}
	if data.LongestStreak != 6 {
		t.Errorf("expected longest streak max(3, 6) = 6, got %d", data.LongestStreak)
	}
	if data.LastDrinkDate == nil || data.LastDrinkDate.Day() != 14 {
		t.Errorf("expected last drink date on the 14th, got %v", data.LastDrinkDate)
	}
}

func TestComputeStreakDrinkToday(t *testing.T) {
	today := date(2026, 3, 20)
	start := date(2026, 3, 1)

	logs := []drinklog.AlcoholLog{logOn(today, 1)}
	data := ComputeStreak(logs, start, today)

	if data.CurrentStreak != 0 {
		t.Errorf("a drink today must reset current streak, got %d", data.CurrentStreak)
	}
	if data.LongestStreak < data.CurrentStreak {
		t.Errorf("longest (%d) < current (%d)", data.LongestStreak, data.CurrentStreak)
	}
}

func TestComputeStreakLongestInvariant(t *testing.T) {
	start := date(2026, 1, 1)
	today := date(2026, 3, 20)

	histories := [][]drinklog.AlcoholLog{
		nil,
		{logOn(date(2026, 1, 5), 1)},
		{logOn(date(2026, 1, 5), 1), logOn(date(2026, 3, 19), 2)},
		{logOn(date(2026, 3, 18), 1), logOn(date(2026, 3, 19), 1), logOn(date(2026, 3, 20), 1)},
		{logOn(date(2026, 2, 1), 1), logOn(date(2026, 2, 1), 3)},
	}

	for i, logs := range histories {
		data := ComputeStreak(logs, start, today)
		if data.LongestStreak < data.CurrentStreak {
			t.Errorf("history %d: longest (%d) < current (%d)", i, data.LongestStreak, data.CurrentStreak)
		}
	}
}

func TestComputeStreakStartAfterToday(t *testing.T) {
	data := ComputeStreak(nil, date(2026, 3, 21), date(2026, 3, 20))
	if data.CurrentStreak != 0 || data.LongestStreak != 0 {
		t.Errorf("expected zeroed streak, got %+v", data)
	}
}

func TestComputeStatsEmptyWindow(t *testing.T) {
	// Start date after today: nothing tracked, and no divide-by-zero.
	s := ComputeStats(nil, date(2026, 3, 21), date(2026, 3, 20), 10)
	if s.TotalDaysTracked != 0 {
		t.Errorf("expected 0 tracked days, got %d", s.TotalDaysTracked)
	}
	if s.AverageDrinksPerWeek != 0 {
		t.Errorf("expected 0 average drinks per week, got %f", s.AverageDrinksPerWeek)
	}
}

func TestComputeStats(t *testing.T) {
	start := date(2026, 3, 11)
	today := date(2026, 3, 20)

	logs := []drinklog.AlcoholLog{
		logOn(date(2026, 3, 12), 2),
		logOn(date(2026, 3, 15), 2),
	}

	s := ComputeStats(logs, start, today, 10)

	if s.TotalDaysTracked != 10 {
		t.Errorf("expected 10 tracked days, got %d", s.TotalDaysTracked)
	}
	if s.AlcoholFreeDays != 8 {
		t.Errorf("expected 8 alcohol-free days, got %d", s.AlcoholFreeDays)
	}

	wantAvg := 4.0 / (10.0 / 7.0)
	if diff := s.AverageDrinksPerWeek - wantAvg; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("expected average %f drinks/week, got %f", wantAvg, s.AverageDrinksPerWeek)
	}

	// 0.4 drinks/day baseline, 8 free days, $10 a drink.
	if diff := s.MoneySaved - 32.0; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("expected $32 saved, got %f", s.MoneySaved)
	}
	if diff := s.CaloriesSaved - 448.0; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("expected 448 calories saved, got %f", s.CaloriesSaved)
	}
}

func TestProjectedSavings(t *testing.T) {
	money, calories := ProjectedSavings(10, 8, 12)

	// 10 drinks/week cut by 70% over 12 weeks = 84 drinks avoided.
	if diff := money - 84*8.0; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("expected projected money %f, got %f", 84*8.0, money)
	}
	if diff := calories - 84*140.0; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("expected projected calories %f, got %f", 84*140.0, calories)
	}

	if m, c := ProjectedSavings(0, 8, 12); m != 0 || c != 0 {
		t.Errorf("expected zero projection without a baseline, got %f/%f", m, c)
	}
}

func TestDailySelectionIdempotent(t *testing.T) {
	d := date(2026, 7, 4)
	first := DailySelection(14, d)
	second := DailySelection(14, d)
	if first != second {
		t.Errorf("same date gave different indexes: %d vs %d", first, second)
	}
	if first < 0 || first >= 14 {
		t.Errorf("index %d out of range", first)
	}
}

func TestDailySelectionSameDayOfYear(t *testing.T) {
	// Two non-leap years: same calendar day means the same ordinal day.
	d0 := date(2025, 3, 1)
	d1 := date(2026, 3, 1)
	if d0.YearDay() != d1.YearDay() {
		t.Fatalf("test dates must share a day-of-year")
	}
	if DailySelection(7, d0) != DailySelection(7, d1) {
		t.Errorf("same day-of-year must select the same index")
	}
}

func TestDailySelectionEmptyPool(t *testing.T) {
	if got := DailySelection(0, date(2026, 1, 1)); got != 0 {
		t.Errorf("expected 0 for empty pool, got %d", got)
	}
}

func TestBurnADrinkTime(t *testing.T) {
	cases := []struct {
		calories int
		want     int
	}{
		{140, 1},
		{70, 2},
		{35, 4},
		{100, 2},
		{200, 1},
		{0, 0},
	}
	for _, c := range cases {
		if got := BurnADrinkTime(c.calories); got != c.want {
			t.Errorf("BurnADrinkTime(%d) = %d, want %d", c.calories, got, c.want)
		}
	}
}
