package model

// Difficulty labels as the remote platform reports them. Submission stats use
// "All" as an aggregate sentinel alongside Easy/Medium/Hard; the accepted
// question progress uses the upper-case keys.
const (
	DifficultyAll    = "All"
	DifficultyEasy   = "EASY"
	DifficultyMedium = "MEDIUM"
	DifficultyHard   = "HARD"
)

// UserRecord is the raw `data` object returned by the profile query, persisted
// verbatim. Display fields are derived from it on every render rather than
// normalized at ingest.
type UserRecord struct {
	MatchedUser          MatchedUser        `json:"matchedUser"`
	RecentSubmissionList []RecentSubmission `json:"recentSubmissionList"`
	QuestionProgress     QuestionProgress   `json:"userProfileUserQuestionProgressV2"`
}

type MatchedUser struct {
	Username      string        `json:"username"`
	Contributions Contributions `json:"contributions"`
	Profile       Profile       `json:"profile"`
	SubmitStats   SubmitStats   `json:"submitStats"`
	Badges        []Badge       `json:"badges"`
	ActiveBadge   *Badge        `json:"activeBadge"`
}

type Contributions struct {
	Points int `json:"points"`
}

type Profile struct {
	RealName   string  `json:"realName"`
	StarRating float64 `json:"starRating"`
	UserAvatar string  `json:"userAvatar"`
	Ranking    int     `json:"ranking"`
}

type SubmitStats struct {
	AcSubmissionNum    []SubmissionCount `json:"acSubmissionNum"`
	TotalSubmissionNum []SubmissionCount `json:"totalSubmissionNum"`
}

type SubmissionCount struct {
	Difficulty  string `json:"difficulty"`
	Count       int    `json:"count"`
	Submissions int    `json:"submissions"`
}

type Badge struct {
	ID   string `json:"id"`
	Icon string `json:"icon,omitempty"`
}

// RecentSubmission carries only a timestamp; the query fetches at most one
// entry and it is never displayed.
type RecentSubmission struct {
	Timestamp string `json:"timestamp"`
}

type QuestionProgress struct {
	NumAcceptedQuestions []AcceptedCount `json:"numAcceptedQuestions"`
}

type AcceptedCount struct {
	Count      int    `json:"count"`
	Difficulty string `json:"difficulty"`
}
