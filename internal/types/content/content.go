package content

type Quote struct {
	ID     string `json:"id"`
	Text   string `json:"text"`
	Author string `json:"author"`
}

type Workout struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	CaloriesBurned int    `json:"calories_burned"`
	DurationMin    int    `json:"duration_min"`
}

type Article struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Summary     string `json:"summary"`
	ReadTimeMin int    `json:"read_time_min"`
}
