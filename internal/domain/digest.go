package domain

// DailyDigest is the combined hydration picture for one day: the planned
// goal, what has been consumed, and every recommendation on record. It is
// the text source for reminder notifications rendered by clients.
// @Description Combined daily hydration summary.
type DailyDigest struct {
	// Calendar day (YYYY-MM-DD) in the user's timezone
	Day string `json:"day" example:"2024-07-19"`
	// Planned baseline goal in millilitres, zero until onboarded
	GoalMl int `json:"goal_ml" example:"2800"`
	// Goal plus all recommendation adjustments for the day
	AdjustedGoalMl int `json:"adjusted_goal_ml" example:"3450"`
	// Effective intake so far in millilitres
	ConsumedMl int `json:"consumed_ml" example:"1750"`
	// Remaining against the adjusted goal, never negative
	RemainingMl int `json:"remaining_ml" example:"1700"`
	// Consumed as a percentage of the adjusted goal (0-100, capped)
	ProgressPct float64 `json:"progress_pct" example:"50.7"`
	// Adjusted goal in the user's display unit
	Display VolumeDisplay `json:"display"`
	// Recommendations recorded for the day
	Recommendations []RecommendationResponse `json:"recommendations"`
	// One-line summary suitable for a notification
	Headline string `json:"headline" example:"Halfway there. Hot day ahead, aim for 3.5 L."`
}
