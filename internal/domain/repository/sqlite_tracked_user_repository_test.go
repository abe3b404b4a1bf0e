package repository

import (
	"context"
	"database/sql"
	"path/filepath"
	"reflect"
	"testing"

	"leetdeck/internal/domain/model"

	_ "modernc.org/sqlite"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "slots.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	return db
}

func testRecord(username string, total int) model.UserRecord {
	return model.UserRecord{
		MatchedUser: model.MatchedUser{
			Username:      username,
			Contributions: model.Contributions{Points: 12},
			Profile:       model.Profile{RealName: "Some Name", UserAvatar: "https://example.com/a.png", Ranking: 99},
			SubmitStats: model.SubmitStats{
				AcSubmissionNum: []model.SubmissionCount{{Difficulty: "All", Count: total, Submissions: total + 10}},
			},
			Badges:      []model.Badge{{ID: "b1", Icon: "i1"}},
			ActiveBadge: &model.Badge{ID: "b1"},
		},
		RecentSubmissionList: []model.RecentSubmission{{Timestamp: "1700000000"}},
		QuestionProgress: model.QuestionProgress{
			NumAcceptedQuestions: []model.AcceptedCount{{Difficulty: "EASY", Count: total}},
		},
	}
}

func TestSQLiteLoadEmptySlot(t *testing.T) {
	ctx := context.Background()
	repo, err := NewSQLiteTrackedUserRepository(ctx, newTestDB(t), "addedUsers")
	if err != nil {
		t.Fatalf("new repository: %v", err)
	}

	users, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(users) != 0 {
		t.Errorf("expected empty list from an absent slot, got %d entries", len(users))
	}
}

func TestSQLiteSaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo, err := NewSQLiteTrackedUserRepository(ctx, newTestDB(t), "addedUsers")
	if err != nil {
		t.Fatalf("new repository: %v", err)
	}

	want := []model.UserRecord{testRecord("johndoe", 420), testRecord("janedoe", 17)}
	if err := repo.Save(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, want)
	}
}

func TestSQLiteSaveOverwritesSlot(t *testing.T) {
	ctx := context.Background()
	repo, err := NewSQLiteTrackedUserRepository(ctx, newTestDB(t), "addedUsers")
	if err != nil {
		t.Fatalf("new repository: %v", err)
	}

	if err := repo.Save(ctx, []model.UserRecord{testRecord("a", 1), testRecord("b", 2), testRecord("c", 3)}); err != nil {
		t.Fatalf("first save: %v", err)
	}
	if err := repo.Save(ctx, []model.UserRecord{testRecord("b", 2)}); err != nil {
		t.Fatalf("second save: %v", err)
	}

	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 1 || got[0].MatchedUser.Username != "b" {
		t.Errorf("expected the slot fully overwritten with [b], got %+v", got)
	}
}

func TestSQLiteSlotsAreIndependent(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)

	first, err := NewSQLiteTrackedUserRepository(ctx, db, "addedUsers")
	if err != nil {
		t.Fatalf("new repository: %v", err)
	}
	second, err := NewSQLiteTrackedUserRepository(ctx, db, "otherSlot")
	if err != nil {
		t.Fatalf("new repository: %v", err)
	}

	if err := first.Save(ctx, []model.UserRecord{testRecord("johndoe", 1)}); err != nil {
		t.Fatalf("save: %v", err)
	}

	users, err := second.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(users) != 0 {
		t.Errorf("slots must not share state, got %d entries", len(users))
	}
}
