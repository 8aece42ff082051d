package stats

// UserStats is derived on request from the log history plus the user's
// price-per-drink setting. It is never stored.
type UserStats struct {
	TotalDaysTracked     int     `json:"total_days_tracked"`
	AlcoholFreeDays      int     `json:"alcohol_free_days"`
	AverageDrinksPerWeek float64 `json:"average_drinks_per_week"`
	MoneySaved           float64 `json:"money_saved"`
	CaloriesSaved        float64 `json:"calories_saved"`
}

// SavingsProjection is the forward-looking estimate shown before any real
// history exists. It uses an assumed reduction rate and is a different
// number than UserStats.MoneySaved, which comes from actual logs.
type SavingsProjection struct {
	Weeks         int     `json:"weeks"`
	MoneySaved    float64 `json:"money_saved"`
	CaloriesSaved float64 `json:"calories_saved"`
}
