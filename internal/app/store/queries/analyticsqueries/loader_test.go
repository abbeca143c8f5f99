package analyticsqueries

import (
	"context"
	"errors"
	"testing"

	"github.com/serenity-app/serenity-admin/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// fakeFetcher serves canned records keyed by user and lets tests inject a
// failure for any single (user, collection) pair.
type fakeFetcher struct {
	users    []models.User
	usersErr error

	assessments map[primitive.ObjectID][]models.Assessment
	chats       map[primitive.ObjectID][]models.AIChatTurn
	journals    map[primitive.ObjectID][]models.JournalEntry
	fallback    map[primitive.ObjectID][]models.JournalEntry
	goals       map[primitive.ObjectID][]models.Goal

	failUser       primitive.ObjectID
	failCollection string

	fallbackCalls map[primitive.ObjectID]int
}

func (f *fakeFetcher) fail(userID primitive.ObjectID, collection string) error {
	if userID == f.failUser && collection == f.failCollection {
		return errors.New("injected fault")
	}
	return nil
}

func (f *fakeFetcher) Users(_ context.Context) ([]models.User, error) {
	return f.users, f.usersErr
}

func (f *fakeFetcher) Assessments(_ context.Context, userID primitive.ObjectID) ([]models.Assessment, error) {
	if err := f.fail(userID, "assessments"); err != nil {
		return nil, err
	}
	return f.assessments[userID], nil
}

func (f *fakeFetcher) ChatTurns(_ context.Context, userID primitive.ObjectID) ([]models.AIChatTurn, error) {
	if err := f.fail(userID, "ai_chats"); err != nil {
		return nil, err
	}
	return f.chats[userID], nil
}

func (f *fakeFetcher) JournalEntries(_ context.Context, userID primitive.ObjectID) ([]models.JournalEntry, error) {
	if err := f.fail(userID, "journal_entries"); err != nil {
		return nil, err
	}
	return f.journals[userID], nil
}

func (f *fakeFetcher) JournalFallback(_ context.Context, userID primitive.ObjectID) ([]models.JournalEntry, error) {
	if f.fallbackCalls != nil {
		f.fallbackCalls[userID]++
	}
	if err := f.fail(userID, "journals"); err != nil {
		return nil, err
	}
	return f.fallback[userID], nil
}

func (f *fakeFetcher) Goals(_ context.Context, userID primitive.ObjectID) ([]models.Goal, error) {
	if err := f.fail(userID, "goals"); err != nil {
		return nil, err
	}
	return f.goals[userID], nil
}

func newTestUsers(n int) []models.User {
	users := make([]models.User, n)
	for i := range users {
		users[i] = models.User{
			ID:   primitive.NewObjectID(),
			Name: string(rune('a'+i)) + "-user",
		}
	}
	return users
}

func newFakeFetcher(users []models.User) *fakeFetcher {
	f := &fakeFetcher{
		users:         users,
		assessments:   map[primitive.ObjectID][]models.Assessment{},
		chats:         map[primitive.ObjectID][]models.AIChatTurn{},
		journals:      map[primitive.ObjectID][]models.JournalEntry{},
		fallback:      map[primitive.ObjectID][]models.JournalEntry{},
		goals:         map[primitive.ObjectID][]models.Goal{},
		fallbackCalls: map[primitive.ObjectID]int{},
	}
	for _, u := range users {
		f.assessments[u.ID] = []models.Assessment{{Type: "phq9", Score: 5}, {Type: "gad7", Score: 3}}
		f.chats[u.ID] = []models.AIChatTurn{{Role: "user", Content: "hi"}}
		f.journals[u.ID] = []models.JournalEntry{{Title: "day one"}}
		f.goals[u.ID] = []models.Goal{{Title: "sleep more", Progress: 40}}
	}
	return f
}

func TestLoadAggregatesAllUsers(t *testing.T) {
	users := newTestUsers(5)
	f := newFakeFetcher(users)
	loader := NewLoader(f, zap.NewNop(), 3)

	snap, err := loader.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got := len(snap.Assessments); got != 10 {
		t.Errorf("assessments = %d, want 10", got)
	}
	if got := len(snap.ChatTurns); got != 5 {
		t.Errorf("chat turns = %d, want 5", got)
	}
	if got := len(snap.Journals); got != 5 {
		t.Errorf("journals = %d, want 5", got)
	}
	if got := len(snap.Goals); got != 5 {
		t.Errorf("goals = %d, want 5", got)
	}

	// results must follow user-iteration order regardless of which worker
	// finished first
	for i, u := range users {
		a := snap.Assessments[i*2]
		if a.UserID != u.ID {
			t.Errorf("assessment %d attributed to %s, want %s", i*2, a.UserID.Hex(), u.ID.Hex())
		}
		if a.UserName != u.Name {
			t.Errorf("assessment %d user name = %q, want %q", i*2, a.UserName, u.Name)
		}
	}
}

func TestLoadUsersFailureFailsWholeLoad(t *testing.T) {
	f := newFakeFetcher(newTestUsers(2))
	f.usersErr = errors.New("primary down")
	loader := NewLoader(f, zap.NewNop(), 2)

	if _, err := loader.Load(context.Background()); err == nil {
		t.Fatal("Load succeeded despite users fetch failure")
	}
}

func TestLoadIsolatesPerUserFailures(t *testing.T) {
	users := newTestUsers(3)
	f := newFakeFetcher(users)
	f.failUser = users[1].ID
	f.failCollection = "assessments"
	loader := NewLoader(f, zap.NewNop(), 4)

	snap, err := loader.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	// user[1] contributes no assessments but everything else is intact
	if got := len(snap.Assessments); got != 4 {
		t.Errorf("assessments = %d, want 4", got)
	}
	for _, a := range snap.Assessments {
		if a.UserID == users[1].ID {
			t.Errorf("assessment from failed user %s leaked into results", a.UserID.Hex())
		}
	}
	if got := len(snap.Goals); got != 3 {
		t.Errorf("goals = %d, want 3", got)
	}
}

func TestLoadJournalFallback(t *testing.T) {
	users := newTestUsers(2)
	f := newFakeFetcher(users)

	// users[0] has no modern journal entries but two legacy ones
	f.journals[users[0].ID] = nil
	f.fallback[users[0].ID] = []models.JournalEntry{{Title: "old one"}, {Title: "old two"}}

	loader := NewLoader(f, zap.NewNop(), 2)
	snap, err := loader.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got := len(snap.Journals); got != 3 {
		t.Fatalf("journals = %d, want 3", got)
	}
	if snap.Journals[0].UserID != users[0].ID || snap.Journals[0].Title != "old one" {
		t.Errorf("fallback entry not attributed to users[0]: %+v", snap.Journals[0])
	}
	if f.fallbackCalls[users[1].ID] != 0 {
		t.Errorf("fallback probed for a user whose primary collection had records")
	}
}

func TestLoadJournalErrorSkipsFallback(t *testing.T) {
	users := newTestUsers(1)
	f := newFakeFetcher(users)
	f.failUser = users[0].ID
	f.failCollection = "journal_entries"
	f.fallback[users[0].ID] = []models.JournalEntry{{Title: "should not appear"}}

	loader := NewLoader(f, zap.NewNop(), 1)
	snap, err := loader.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got := len(snap.Journals); got != 0 {
		t.Errorf("journals = %d, want 0 (fallback is not a retry path)", got)
	}
	if f.fallbackCalls[users[0].ID] != 0 {
		t.Errorf("fallback probed after a primary fetch error")
	}
}

func TestLoadUnknownDisplayName(t *testing.T) {
	user := models.User{ID: primitive.NewObjectID()} // no name, no email
	f := newFakeFetcher([]models.User{user})

	loader := NewLoader(f, zap.NewNop(), 1)
	snap, err := loader.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if snap.Assessments[0].UserName != "Unknown" {
		t.Errorf("user name = %q, want %q", snap.Assessments[0].UserName, "Unknown")
	}
}

func TestLoadEmptyUserSet(t *testing.T) {
	f := newFakeFetcher(nil)
	loader := NewLoader(f, zap.NewNop(), 0) // exercises DefaultWorkers fallback

	snap, err := loader.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if snap.Assessments == nil || len(snap.Assessments) != 0 {
		t.Errorf("assessments = %v, want empty non-nil slice", snap.Assessments)
	}
}

func TestLoadOrderingMatchesSequential(t *testing.T) {
	users := newTestUsers(8)
	f := newFakeFetcher(users)

	wide, err := NewLoader(f, zap.NewNop(), 8).Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	narrow, err := NewLoader(f, zap.NewNop(), 1).Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if len(wide.Assessments) != len(narrow.Assessments) {
		t.Fatalf("lengths differ: %d vs %d", len(wide.Assessments), len(narrow.Assessments))
	}
	for i := range wide.Assessments {
		if wide.Assessments[i].UserID != narrow.Assessments[i].UserID {
			t.Fatalf("assessment %d: order differs between worker counts", i)
		}
	}
}
