package model

// LeaderboardEntry is one user's ranked summary.
type LeaderboardEntry struct {
	UserID          string `json:"user_id"`
	FullName        string `json:"full_name"`
	Email           string `json:"email"`
	TotalQuizzes    int    `json:"total_quizzes"`
	AvgQuizScore    int    `json:"avg_quiz_score"`
	TotalChallenges int    `json:"total_challenges"`
	BadgeCount      int    `json:"badge_count"`
}

// CompositeScore is the single ranking number: average quiz accuracy in
// percent, plus 5 per completed challenge and 10 per earned badge.
func (e LeaderboardEntry) CompositeScore() int {
	return e.AvgQuizScore + e.TotalChallenges*5 + e.BadgeCount*10
}
