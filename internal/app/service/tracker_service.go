package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"leetdeck/internal/app/render"
	"leetdeck/internal/common"
	"leetdeck/internal/domain/model"
	"leetdeck/internal/domain/repository"
)

// Banner texts shown for the two visible failure kinds.
const (
	BannerDuplicateUser = "User already added!"
	BannerFetchFailed   = "Failed to fetch user data. Please check the username and try again."
)

// Fetcher is the remote query client as the tracker sees it.
type Fetcher interface {
	FetchUserRecord(ctx context.Context, username string) (*model.UserRecord, error)
}

// TrackerService owns the tracked-user list. Every mutation persists the full
// list before it is visible, so no caller can change the list without
// triggering persistence. At most one search is in flight at a time; while it
// is loading the popup controls read as disabled and further searches are
// rejected.
type TrackerService struct {
	fetcher Fetcher
	repo    repository.TrackedUserRepository

	duplicateTTL time.Duration
	fetchErrTTL  time.Duration

	mu      sync.Mutex
	users   []model.UserRecord
	cards   []render.Card
	loading bool
	banner  *Banner
	now     func() time.Time
}

func NewTrackerService(fetcher Fetcher, repo repository.TrackedUserRepository, duplicateTTL, fetchErrTTL time.Duration) *TrackerService {
	return &TrackerService{
		fetcher:      fetcher,
		repo:         repo,
		duplicateTTL: duplicateTTL,
		fetchErrTTL:  fetchErrTTL,
		now:          time.Now,
	}
}

// Banner is a transient error message; it disappears from snapshots once
// ExpiresAt passes.
type Banner struct {
	Text      string    `json:"text"`
	ExpiresAt time.Time `json:"expires_at"`
}

// PopupView is the full popup state a UI layer draws from: whether the input
// and search controls are enabled, the active banner if any, and the cards in
// stored order.
type PopupView struct {
	Loading       bool          `json:"loading"`
	InputEnabled  bool          `json:"input_enabled"`
	SearchEnabled bool          `json:"search_enabled"`
	Banner        *Banner       `json:"banner,omitempty"`
	Cards         []render.Card `json:"cards"`
}

// Hydrate loads the persisted list and renders one card per entry in stored
// order. Called once at startup, before any user interaction.
func (s *TrackerService) Hydrate(ctx context.Context) error {
	users, err := s.repo.Load(ctx)
	if err != nil {
		return common.Errorf("load tracked users: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = users
	s.cards = render.BuildCards(users)
	return nil
}

// Search runs the popup's search flow for one username. Blank input is
// silently ignored. A username already tracked raises the duplicate banner
// without any network call. Otherwise the record is fetched, appended,
// persisted and its new card returned; fetch failure of any kind raises the
// fetch-failed banner. The controls are re-enabled on every path.
func (s *TrackerService) Search(ctx context.Context, username string) (*render.Card, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, common.ErrEmptyInput
	}

	s.mu.Lock()
	if s.loading {
		s.mu.Unlock()
		return nil, common.ErrSearchInFlight
	}
	if s.isTracked(username) {
		s.banner = &Banner{Text: BannerDuplicateUser, ExpiresAt: s.now().Add(s.duplicateTTL)}
		s.mu.Unlock()
		return nil, common.Errorf("%q: %w", username, common.ErrDuplicateUser)
	}
	s.loading = true
	s.banner = nil
	s.mu.Unlock()

	// The loading gate above keeps this the only fetch in flight; no lock is
	// held across the network call.
	rec, fetchErr := s.fetcher.FetchUserRecord(ctx, username)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false

	if fetchErr != nil {
		s.banner = &Banner{Text: BannerFetchFailed, ExpiresAt: s.now().Add(s.fetchErrTTL)}
		return nil, common.Errorf("fetch %q: %w", username, fetchErr)
	}

	users := append(append([]model.UserRecord{}, s.users...), *rec)
	if err := s.repo.Save(ctx, users); err != nil {
		return nil, common.Errorf("persist tracked users: %w", err)
	}
	s.users = users

	card := render.BuildCard(*rec)
	s.cards = append(s.cards, card)
	return &card, nil
}

// Remove detaches the entry and card matching the username, persisting the
// shrunk list. Usernames compare case-insensitively, the same policy the
// duplicate check uses. Removing an untracked username is a no-op.
func (s *TrackerService) Remove(ctx context.Context, username string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, u := range s.users {
		if strings.EqualFold(u.MatchedUser.Username, username) {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false, nil
	}

	users := append(append([]model.UserRecord{}, s.users[:idx]...), s.users[idx+1:]...)
	if err := s.repo.Save(ctx, users); err != nil {
		return false, common.Errorf("persist tracked users: %w", err)
	}
	s.users = users
	s.cards = append(s.cards[:idx:idx], s.cards[idx+1:]...)
	return true, nil
}

// Snapshot returns the current popup view. Expired banners are dropped here,
// so a snapshot taken after the banner's lifetime never shows it.
func (s *TrackerService) Snapshot() PopupView {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.banner != nil && !s.now().Before(s.banner.ExpiresAt) {
		s.banner = nil
	}

	var banner *Banner
	if s.banner != nil {
		b := *s.banner
		banner = &b
	}

	cards := make([]render.Card, len(s.cards))
	copy(cards, s.cards)

	return PopupView{
		Loading:       s.loading,
		InputEnabled:  !s.loading,
		SearchEnabled: !s.loading,
		Banner:        banner,
		Cards:         cards,
	}
}

// caller holds s.mu
func (s *TrackerService) isTracked(username string) bool {
	for _, u := range s.users {
		if strings.EqualFold(u.MatchedUser.Username, username) {
			return true
		}
	}
	return false
}
