// Package analyticsqueries aggregates every user's wellness records into
// the combined lists behind the analytics view.
//
// The load fans out across (user, record kind) pairs with a bounded worker
// pool. Failures are isolated per pair: one user's broken subcollection is
// logged and contributes zero records without disturbing any other user or
// kind. Only a failure of the root users fetch fails the whole load.
package analyticsqueries

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/serenity-app/serenity-admin/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Fetcher is the read surface the loader needs. The Mongo implementation
// lives in the wellness store; tests substitute a fake to inject
// per-(user, kind) faults.
type Fetcher interface {
	Users(ctx context.Context) ([]models.User, error)
	Assessments(ctx context.Context, userID primitive.ObjectID) ([]models.Assessment, error)
	ChatTurns(ctx context.Context, userID primitive.ObjectID) ([]models.AIChatTurn, error)
	JournalEntries(ctx context.Context, userID primitive.ObjectID) ([]models.JournalEntry, error)
	JournalFallback(ctx context.Context, userID primitive.ObjectID) ([]models.JournalEntry, error)
	Goals(ctx context.Context, userID primitive.ObjectID) ([]models.Goal, error)
}

// Snapshot holds the four combined record lists. Within each list, records
// appear in user-iteration order, then in the store's per-collection order;
// no cross-user sort is applied.
type Snapshot struct {
	Assessments []models.Assessment   `json:"assessments"`
	ChatTurns   []models.AIChatTurn   `json:"ai_chats"`
	Journals    []models.JournalEntry `json:"journal_entries"`
	Goals       []models.Goal         `json:"goals"`

	Users    []models.User `json:"-"`
	LoadedAt time.Time     `json:"loaded_at"`
}

// DefaultWorkers bounds the fan-out when no explicit limit is configured.
const DefaultWorkers = 4

// record kinds, one task per (user, kind)
const (
	kindAssessments = iota
	kindChats
	kindJournals
	kindGoals
	kindCount
)

// Loader runs the aggregation.
type Loader struct {
	fetcher Fetcher
	log     *zap.Logger
	workers int
}

// NewLoader creates a Loader with the given concurrency limit.
// A limit below 1 falls back to DefaultWorkers.
func NewLoader(f Fetcher, logger *zap.Logger, workers int) *Loader {
	if workers < 1 {
		workers = DefaultWorkers
	}
	return &Loader{fetcher: f, log: logger, workers: workers}
}

// userSlot collects one user's records; slots are indexed by user position
// so assembly order never depends on task completion order.
type userSlot struct {
	assessments []models.Assessment
	chats       []models.AIChatTurn
	journals    []models.JournalEntry
	goals       []models.Goal
}

// Load fetches all users and their wellness subcollections, returning a
// fresh Snapshot. Re-invocation replaces any prior result; nothing is
// shared between calls.
func (l *Loader) Load(ctx context.Context) (*Snapshot, error) {
	users, err := l.fetcher.Users(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading users: %w", err)
	}
	l.log.Debug("aggregating wellness records", zap.Int("users", len(users)))

	slots := make([]userSlot, len(users))

	type task struct{ user, kind int }
	tasks := make(chan task)

	var wg sync.WaitGroup
	for w := 0; w < l.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for t := range tasks {
				l.loadOne(ctx, users[t.user], t.kind, &slots[t.user])
			}
		}()
	}
	for u := range users {
		for k := 0; k < kindCount; k++ {
			tasks <- task{user: u, kind: k}
		}
	}
	close(tasks)
	wg.Wait()

	snap := &Snapshot{
		Assessments: []models.Assessment{},
		ChatTurns:   []models.AIChatTurn{},
		Journals:    []models.JournalEntry{},
		Goals:       []models.Goal{},
		Users:       users,
		LoadedAt:    time.Now().UTC(),
	}
	for i := range slots {
		snap.Assessments = append(snap.Assessments, slots[i].assessments...)
		snap.ChatTurns = append(snap.ChatTurns, slots[i].chats...)
		snap.Journals = append(snap.Journals, slots[i].journals...)
		snap.Goals = append(snap.Goals, slots[i].goals...)
	}
	return snap, nil
}

// loadOne fetches a single (user, kind) pair into its slot. Each worker
// writes a disjoint field of a disjoint slot, so no locking is needed.
// A fetch failure is logged and leaves the slot field empty.
func (l *Loader) loadOne(ctx context.Context, user models.User, kind int, slot *userSlot) {
	name := user.DisplayName()

	switch kind {
	case kindAssessments:
		records, err := l.fetcher.Assessments(ctx, user.ID)
		if err != nil {
			l.warn("assessments", user.ID, err)
			return
		}
		for i := range records {
			records[i].UserID = user.ID
			records[i].UserName = name
		}
		slot.assessments = records

	case kindChats:
		records, err := l.fetcher.ChatTurns(ctx, user.ID)
		if err != nil {
			l.warn("ai_chats", user.ID, err)
			return
		}
		for i := range records {
			records[i].UserID = user.ID
			records[i].UserName = name
		}
		slot.chats = records

	case kindJournals:
		slot.journals = l.loadJournals(ctx, user, name)

	case kindGoals:
		records, err := l.fetcher.Goals(ctx, user.ID)
		if err != nil {
			l.warn("goals", user.ID, err)
			return
		}
		for i := range records {
			records[i].UserID = user.ID
			records[i].UserName = name
		}
		slot.goals = records
	}
}

// loadJournals reads the primary journal collection and, when it yields
// zero records, probes the legacy collection name once. The fallback is a
// one-shot alternate-schema probe, not a retry: a primary fetch error
// skips it entirely.
func (l *Loader) loadJournals(ctx context.Context, user models.User, name string) []models.JournalEntry {
	records, err := l.fetcher.JournalEntries(ctx, user.ID)
	if err != nil {
		l.warn("journal_entries", user.ID, err)
		return nil
	}
	if len(records) == 0 {
		records, err = l.fetcher.JournalFallback(ctx, user.ID)
		if err != nil {
			l.warn("journals", user.ID, err)
			return nil
		}
	}
	for i := range records {
		records[i].UserID = user.ID
		records[i].UserName = name
	}
	return records
}

func (l *Loader) warn(collection string, userID primitive.ObjectID, err error) {
	l.log.Warn("wellness records fetch failed; treating as empty",
		zap.String("collection", collection),
		zap.String("user_id", userID.Hex()),
		zap.Error(err))
}
