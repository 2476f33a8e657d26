package dto

// UpdatePomodoroRequest overwrites today's counters with the supplied values.
// Nil fields are left as they are.
type UpdatePomodoroRequest struct {
	SessionsCompleted *int `json:"sessions_completed" validate:"omitempty,gte=0"`
	TotalFocusTime    *int `json:"total_focus_time" validate:"omitempty,gte=0"`
}

type PomodoroStatsResponse struct {
	Date              string `json:"date"` // YYYY-MM-DD
	SessionsCompleted int    `json:"sessions_completed"`
	TotalFocusTime    int    `json:"total_focus_time"`
}
