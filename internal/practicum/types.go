package practicum

// Homework is one submission's review state as reported by the API.
// The watcher only ever inspects HomeworkName and Status; the remaining
// fields are decoded for completeness (they show up in debug logs).
type Homework struct {
	ID              int64  `json:"id,omitempty"`
	HomeworkName    string `json:"homework_name"`
	Status          string `json:"status"`
	ReviewerComment string `json:"reviewer_comment,omitempty"`
	DateUpdated     string `json:"date_updated,omitempty"`
	LessonName      string `json:"lesson_name,omitempty"`
}

// StatusResponse is the decoded API answer. Homeworks is ordered
// newest-first; index 0 is the current submission.
type StatusResponse struct {
	Homeworks   []Homework `json:"homeworks"`
	CurrentDate int64      `json:"current_date,omitempty"`
}
