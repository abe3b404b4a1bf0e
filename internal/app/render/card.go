package render

import (
	"fmt"

	"leetdeck/internal/domain/model"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PlaceholderAvatar is the inline glyph a card falls back to when the avatar
// image cannot be loaded.
const PlaceholderAvatar = `data:image/svg+xml,%3Csvg xmlns=%22http://www.w3.org/2000/svg%22 width=%2264%22 height=%2264%22%3E%3Crect width=%2264%22 height=%2264%22 fill=%22%23ddd%22/%3E%3Ctext x=%2250%25%22 y=%2250%25%22 font-size=%2224%22 text-anchor=%22middle%22 dy=%22.3em%22 fill=%22%23999%22%3E?%3C/text%3E%3C/svg%3E`

var rankPrinter = message.NewPrinter(language.English)

// Card is the render intent for one tracked user: everything a UI layer
// (web, native, terminal) needs to draw the card and wire its remove control,
// with no presentation framework coupling.
type Card struct {
	Handle         string            `json:"handle"`
	ElementID      string            `json:"element_id"`
	AvatarURL      string            `json:"avatar_url"`
	AvatarFallback string            `json:"avatar_fallback"`
	DisplayName    string            `json:"display_name"`
	UsernameTag    string            `json:"username_tag"`
	RankDisplay    string            `json:"rank_display"`
	PointsDisplay  string            `json:"points_display"`
	TotalSolved    int               `json:"total_solved"`
	TotalLine      string            `json:"total_line"`
	Badges         []DifficultyBadge `json:"badges"`
	Remove         RemoveAction      `json:"remove"`
}

type DifficultyBadge struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// RemoveAction identifies what the remove control detaches: the tracked
// username and the handle of this specific card.
type RemoveAction struct {
	Username   string `json:"username"`
	CardHandle string `json:"card_handle"`
}

// BuildCard projects a raw user record into a card. Missing stats entries
// derive to zero and an empty real name falls back to the username; a
// zero-value record still yields a drawable card.
func BuildCard(rec model.UserRecord) Card {
	user := rec.MatchedUser

	name := user.Profile.RealName
	if name == "" {
		name = user.Username
	}

	total := 0
	for _, stat := range user.SubmitStats.AcSubmissionNum {
		if stat.Difficulty == model.DifficultyAll {
			total = stat.Count
			break
		}
	}

	handle := uuid.NewString()
	return Card{
		Handle:         handle,
		ElementID:      "card-" + slug.Make(user.Username),
		AvatarURL:      user.Profile.UserAvatar,
		AvatarFallback: PlaceholderAvatar,
		DisplayName:    name,
		UsernameTag:    "@" + user.Username,
		RankDisplay:    rankPrinter.Sprintf("%d", user.Profile.Ranking),
		PointsDisplay:  fmt.Sprintf("%d pts", user.Contributions.Points),
		TotalSolved:    total,
		TotalLine:      fmt.Sprintf("%d Questions Solved", total),
		Badges: []DifficultyBadge{
			{Label: "Easy", Count: acceptedCount(rec, model.DifficultyEasy)},
			{Label: "Medium", Count: acceptedCount(rec, model.DifficultyMedium)},
			{Label: "Hard", Count: acceptedCount(rec, model.DifficultyHard)},
		},
		Remove: RemoveAction{Username: user.Username, CardHandle: handle},
	}
}

// BuildCards preserves list order, one card per record.
func BuildCards(recs []model.UserRecord) []Card {
	cards := make([]Card, 0, len(recs))
	for _, rec := range recs {
		cards = append(cards, BuildCard(rec))
	}
	return cards
}

func acceptedCount(rec model.UserRecord, difficulty string) int {
	for _, entry := range rec.QuestionProgress.NumAcceptedQuestions {
		if entry.Difficulty == difficulty {
			return entry.Count
		}
	}
	return 0
}
