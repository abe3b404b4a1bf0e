package render

import (
	"testing"

	"leetdeck/internal/domain/model"
)

func sampleRecord() model.UserRecord {
	return model.UserRecord{
		MatchedUser: model.MatchedUser{
			Username:      "johndoe",
			Contributions: model.Contributions{Points: 87},
			Profile: model.Profile{
				RealName:   "John Doe",
				StarRating: 3.5,
				UserAvatar: "https://assets.example.com/avatars/johndoe.png",
				Ranking:    1234567,
			},
			SubmitStats: model.SubmitStats{
				AcSubmissionNum: []model.SubmissionCount{
					{Difficulty: "All", Count: 420, Submissions: 600},
					{Difficulty: "Easy", Count: 200, Submissions: 250},
					{Difficulty: "Medium", Count: 150, Submissions: 230},
					{Difficulty: "Hard", Count: 70, Submissions: 120},
				},
			},
		},
		RecentSubmissionList: []model.RecentSubmission{{Timestamp: "1717171717"}},
		QuestionProgress: model.QuestionProgress{
			NumAcceptedQuestions: []model.AcceptedCount{
				{Difficulty: "EASY", Count: 200},
				{Difficulty: "MEDIUM", Count: 150},
				{Difficulty: "HARD", Count: 70},
			},
		},
	}
}

func TestBuildCardDerivedFields(t *testing.T) {
	card := BuildCard(sampleRecord())

	if card.DisplayName != "John Doe" {
		t.Errorf("expected display name John Doe, got %q", card.DisplayName)
	}
	if card.UsernameTag != "@johndoe" {
		t.Errorf("expected username tag @johndoe, got %q", card.UsernameTag)
	}
	if card.RankDisplay != "1,234,567" {
		t.Errorf("expected formatted rank 1,234,567, got %q", card.RankDisplay)
	}
	if card.PointsDisplay != "87 pts" {
		t.Errorf("expected 87 pts, got %q", card.PointsDisplay)
	}
	if card.TotalSolved != 420 {
		t.Errorf("expected total solved 420, got %d", card.TotalSolved)
	}
	if card.TotalLine != "420 Questions Solved" {
		t.Errorf("unexpected total line %q", card.TotalLine)
	}
	if card.ElementID != "card-johndoe" {
		t.Errorf("unexpected element id %q", card.ElementID)
	}
	if card.AvatarURL != "https://assets.example.com/avatars/johndoe.png" {
		t.Errorf("unexpected avatar url %q", card.AvatarURL)
	}
	if card.AvatarFallback == "" {
		t.Error("expected a non-empty avatar fallback glyph")
	}

	want := []DifficultyBadge{
		{Label: "Easy", Count: 200},
		{Label: "Medium", Count: 150},
		{Label: "Hard", Count: 70},
	}
	if len(card.Badges) != len(want) {
		t.Fatalf("expected %d badges, got %d", len(want), len(card.Badges))
	}
	for i, badge := range card.Badges {
		if badge != want[i] {
			t.Errorf("badge %d: expected %+v, got %+v", i, want[i], badge)
		}
	}

	if card.Remove.Username != "johndoe" {
		t.Errorf("remove action should carry the username, got %q", card.Remove.Username)
	}
	if card.Remove.CardHandle != card.Handle {
		t.Errorf("remove action handle %q does not match card handle %q", card.Remove.CardHandle, card.Handle)
	}
}

func TestBuildCardMissingEntriesDefaultToZero(t *testing.T) {
	rec := sampleRecord()
	rec.MatchedUser.SubmitStats.AcSubmissionNum = []model.SubmissionCount{
		{Difficulty: "Easy", Count: 200}, // no "All" aggregate
	}
	rec.QuestionProgress.NumAcceptedQuestions = []model.AcceptedCount{
		{Difficulty: "MEDIUM", Count: 150},
	}

	card := BuildCard(rec)
	if card.TotalSolved != 0 {
		t.Errorf("expected total 0 without the All aggregate, got %d", card.TotalSolved)
	}
	if card.Badges[0].Count != 0 || card.Badges[2].Count != 0 {
		t.Errorf("expected missing difficulties to derive 0, got %+v", card.Badges)
	}
	if card.Badges[1].Count != 150 {
		t.Errorf("expected medium 150, got %d", card.Badges[1].Count)
	}
}

func TestBuildCardZeroValueRecord(t *testing.T) {
	card := BuildCard(model.UserRecord{})
	if card.TotalSolved != 0 {
		t.Errorf("expected total 0, got %d", card.TotalSolved)
	}
	for _, badge := range card.Badges {
		if badge.Count != 0 {
			t.Errorf("expected zero count for %s, got %d", badge.Label, badge.Count)
		}
	}
}

func TestBuildCardRealNameFallback(t *testing.T) {
	rec := sampleRecord()
	rec.MatchedUser.Profile.RealName = ""
	card := BuildCard(rec)
	if card.DisplayName != "johndoe" {
		t.Errorf("expected fallback to username, got %q", card.DisplayName)
	}
}

func TestBuildCardsPreservesOrder(t *testing.T) {
	first := sampleRecord()
	second := sampleRecord()
	second.MatchedUser.Username = "janedoe"

	cards := BuildCards([]model.UserRecord{first, second})
	if len(cards) != 2 {
		t.Fatalf("expected 2 cards, got %d", len(cards))
	}
	if cards[0].Remove.Username != "johndoe" || cards[1].Remove.Username != "janedoe" {
		t.Errorf("card order not preserved: %q, %q", cards[0].Remove.Username, cards[1].Remove.Username)
	}
	if cards[0].Handle == cards[1].Handle {
		t.Error("expected distinct handles per card")
	}
}
