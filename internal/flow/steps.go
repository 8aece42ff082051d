package flow

// OnboardingSteps is the fixed question sequence every new user walks
// through once. Order matters; the engine routes each step to the next
// one in this slice.
var OnboardingSteps = []Step{
	{ID: "welcome", Prompt: "Ready to change your relationship with alcohol?", Kind: KindInfo},
	{ID: "name", Prompt: "What should we call you?", Kind: KindText, Required: true, Persist: true},
	{ID: "gender", Prompt: "How do you identify?", Kind: KindSingle, Required: true,
		Options: []string{"Female", "Male", "Non-binary", "Prefer not to say"}},
	{ID: "age_range", Prompt: "How old are you?", Kind: KindSingle, Required: true,
		Options: []string{"18-24", "25-34", "35-44", "45-54", "55+"}},
	{ID: "drinking_frequency", Prompt: "How often do you drink?", Kind: KindSingle, Required: true, Persist: true,
		Options: []string{"Daily", "4-6 times a week", "2-3 times a week", "Once a week", "Less often"}},
	{ID: "drinks_per_session", Prompt: "How many drinks in a typical session?", Kind: KindNumeric, Required: true, Persist: true},
	{ID: "drink_types", Prompt: "What do you usually drink?", Kind: KindMulti, Required: true,
		Options: []string{"Beer", "Wine", "Spirits", "Cocktails", "Cider", "Other"}},
	{ID: "price_per_drink", Prompt: "Roughly what does one drink cost you?", Kind: KindNumeric, Required: true, Persist: true},
	{ID: "weekly_spend", Prompt: "How much do you spend on alcohol per week?", Kind: KindSingle, Required: true,
		Options: []string{"Under $20", "$20-$50", "$50-$100", "$100-$200", "Over $200"}},
	{ID: "triggers", Prompt: "When are you most likely to drink?", Kind: KindMulti, Required: true,
		Options: []string{"After work", "Social events", "Stress", "Boredom", "Weekends", "Before sleep"}},
	{ID: "social_pressure", Prompt: "Do people around you drink often?", Kind: KindSingle, Required: true,
		Options: []string{"Almost everyone", "Some of them", "Hardly anyone"}},
	{ID: "previous_attempts", Prompt: "Have you tried cutting back before?", Kind: KindSingle, Required: true,
		Options: []string{"Yes, several times", "Once or twice", "This is my first try"}},
	{ID: "sleep_quality", Prompt: "How is your sleep lately?", Kind: KindSingle, Required: true,
		Options: []string{"Great", "Okay", "Poor", "Terrible"}},
	{ID: "energy_level", Prompt: "How is your energy during the day?", Kind: KindSingle, Required: true,
		Options: []string{"High", "Average", "Low"}},
	{ID: "health_concerns", Prompt: "Any health areas you want to improve?", Kind: KindMulti, Required: true,
		Options: []string{"Sleep", "Weight", "Liver health", "Mental clarity", "Skin", "Fitness"}},
	{ID: "motivation", Prompt: "What is driving this change?", Kind: KindMulti, Required: true, Persist: true,
		Options: []string{"Health", "Money", "Family", "Career", "Self-respect", "Appearance"}},
	{ID: "goal", Prompt: "What is your goal?", Kind: KindSingle, Required: true, Persist: true,
		Options: []string{"Quit completely", "Drink less", "Take a break", "Just tracking"}},
	{ID: "target_free_days", Prompt: "How many alcohol-free days a week are you aiming for?", Kind: KindNumeric, Required: true},
	{ID: "hardest_part", Prompt: "What do you expect to be hardest?", Kind: KindSingle, Required: true,
		Options: []string{"Cravings", "Social situations", "Habit and routine", "Stress relief"}},
	{ID: "support_system", Prompt: "Who knows you're doing this?", Kind: KindSingle, Required: true,
		Options: []string{"Partner or family", "Friends", "No one yet"}},
	{ID: "reminder_time", Prompt: "When should we check in with you?", Kind: KindSingle, Required: true,
		Options: []string{"Morning", "Afternoon", "Evening"}},
	{ID: "notifications_opt_in", Prompt: "Turn on daily reminders?", Kind: KindSingle,
		Options: []string{"Yes", "Not now"}},
	{ID: "tracking_consent", Prompt: "Allow anonymous usage analytics?", Kind: KindSingle,
		Options: []string{"Allow", "Don't allow"}},
	{ID: "projection", Prompt: "Here's what you could save in 12 weeks", Kind: KindInfo},
	{ID: "commitment", Prompt: "I'm ready to start my journey", Kind: KindSingle, Required: true,
		Options: []string{"I'm in"}},
}
