package services

import "soberSipAPI/internal/types/content"

var quotePool = []content.Quote{
	{ID: "quote-1", Text: "You don't have to see the whole staircase, just take the first step.", Author: "Martin Luther King Jr."},
	{ID: "quote-2", Text: "Every time you resist, you get stronger.", Author: "Unknown"},
	{ID: "quote-3", Text: "The best time to plant a tree was 20 years ago. The second best time is now.", Author: "Chinese proverb"},
	{ID: "quote-4", Text: "Rock bottom became the solid foundation on which I rebuilt my life.", Author: "J.K. Rowling"},
	{ID: "quote-5", Text: "It does not matter how slowly you go as long as you do not stop.", Author: "Confucius"},
	{ID: "quote-6", Text: "One day at a time.", Author: "Unknown"},
	{ID: "quote-7", Text: "Your future self is watching you right now through memories.", Author: "Unknown"},
	{ID: "quote-8", Text: "Discipline is choosing between what you want now and what you want most.", Author: "Abraham Lincoln"},
	{ID: "quote-9", Text: "Fall seven times, stand up eight.", Author: "Japanese proverb"},
	{ID: "quote-10", Text: "The chains of habit are too light to be felt until they are too heavy to be broken.", Author: "Warren Buffett"},
	{ID: "quote-11", Text: "Sobriety is a journey, not a destination.", Author: "Unknown"},
	{ID: "quote-12", Text: "Courage is not having the strength to go on; it is going on when you don't have the strength.", Author: "Theodore Roosevelt"},
	{ID: "quote-13", Text: "What lies behind us and what lies before us are tiny matters compared to what lies within us.", Author: "Ralph Waldo Emerson"},
	{ID: "quote-14", Text: "The first step towards getting somewhere is to decide you're not going to stay where you are.", Author: "J.P. Morgan"},
}

var workoutPool = []content.Workout{
	{ID: "workout-1", Name: "Brisk walk", Description: "A 20 minute walk at a pace where talking takes effort.", CaloriesBurned: 90, DurationMin: 20},
	{ID: "workout-2", Name: "Jump rope", Description: "Ten minutes of steady skipping, rest as needed.", CaloriesBurned: 140, DurationMin: 10},
	{ID: "workout-3", Name: "Bodyweight circuit", Description: "Three rounds of squats, push-ups and lunges.", CaloriesBurned: 120, DurationMin: 15},
	{ID: "workout-4", Name: "Stair climbing", Description: "Ten minutes up and down, steady pace.", CaloriesBurned: 100, DurationMin: 10},
	{ID: "workout-5", Name: "Yoga flow", Description: "A gentle 25 minute evening sequence.", CaloriesBurned: 70, DurationMin: 25},
	{ID: "workout-6", Name: "Cycling", Description: "A relaxed 30 minute ride.", CaloriesBurned: 200, DurationMin: 30},
	{ID: "workout-7", Name: "Swimming", Description: "Twenty minutes of easy laps.", CaloriesBurned: 180, DurationMin: 20},
	{ID: "workout-8", Name: "Plank intervals", Description: "Five rounds of 45 second planks.", CaloriesBurned: 35, DurationMin: 8},
}

var articlePool = []content.Article{
	{ID: "article-1", Title: "What happens to your body after 7 days without alcohol", Summary: "Sleep, hydration and energy in the first week.", ReadTimeMin: 4},
	{ID: "article-2", Title: "Handling social pressure without a drink in hand", Summary: "Scripts and tactics for nights out.", ReadTimeMin: 6},
	{ID: "article-3", Title: "The real cost of a nightly glass of wine", Summary: "Money, calories and sleep debt, added up.", ReadTimeMin: 5},
	{ID: "article-4", Title: "Cravings are waves: learning to surf them", Summary: "Urge surfing explained in practical terms.", ReadTimeMin: 7},
	{ID: "article-5", Title: "Alcohol and sleep: why the nightcap backfires", Summary: "What a drink before bed does to REM cycles.", ReadTimeMin: 5},
	{ID: "article-6", Title: "Building an evening routine that doesn't revolve around drinking", Summary: "Replacement habits that actually stick.", ReadTimeMin: 6},
	{ID: "article-7", Title: "How to talk to your doctor about cutting back", Summary: "What to expect and what to ask.", ReadTimeMin: 4},
}
