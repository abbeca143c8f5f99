package users

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/serenity-app/serenity-admin/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type fakeUserStore struct {
	users   []models.User
	listErr error
}

func (f *fakeUserStore) List(_ context.Context) ([]models.User, error) {
	return f.users, f.listErr
}

func (f *fakeUserStore) GetByID(_ context.Context, id primitive.ObjectID) (models.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return models.User{}, mongo.ErrNoDocuments
}

func sampleUsers() []models.User {
	joined := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
	return []models.User{
		{ID: primitive.NewObjectID(), Name: "Alice Smith", Email: "alice@example.com", EmailVerified: true, Streak: 3, CreatedAt: joined},
		{ID: primitive.NewObjectID(), Name: "Bob Jones", Email: "bob@example.com", EmailVerified: false, Streak: 0, CreatedAt: joined},
		{ID: primitive.NewObjectID(), Name: "Carol King", Email: "carol@other.org", EmailVerified: true, Streak: 7, CreatedAt: joined},
	}
}

func serveList(t *testing.T, store *fakeUserStore, target string) *httptest.ResponseRecorder {
	t.Helper()
	h := NewHandler(store, zap.NewNop())
	rec := httptest.NewRecorder()
	h.ServeList(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestServeListStatsCoverFullSet(t *testing.T) {
	rec := serveList(t, &fakeUserStore{users: sampleUsers()}, "/users?q=alice")

	var resp struct {
		Users []struct {
			Name   string `json:"name"`
			Joined string `json:"joined"`
		} `json:"users"`
		Stats struct {
			Total      int `json:"total"`
			Verified   int `json:"verified"`
			Unverified int `json:"unverified"`
			Active     int `json:"active"`
		} `json:"stats"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("parse response: %v", err)
	}

	if len(resp.Users) != 1 || resp.Users[0].Name != "Alice Smith" {
		t.Errorf("filtered users = %+v, want only Alice", resp.Users)
	}
	if resp.Users[0].Joined != "Mar 14, 2025" {
		t.Errorf("joined = %q, want %q", resp.Users[0].Joined, "Mar 14, 2025")
	}
	// stats describe the whole directory, not the filtered slice
	if resp.Stats.Total != 3 || resp.Stats.Verified != 2 || resp.Stats.Unverified != 1 || resp.Stats.Active != 2 {
		t.Errorf("stats = %+v", resp.Stats)
	}
}

func TestServeListStatusFilter(t *testing.T) {
	rec := serveList(t, &fakeUserStore{users: sampleUsers()}, "/users?status=unverified")

	var resp struct {
		Users []struct {
			Email string `json:"email"`
		} `json:"users"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("parse response: %v", err)
	}
	if len(resp.Users) != 1 || resp.Users[0].Email != "bob@example.com" {
		t.Errorf("users = %+v, want only bob", resp.Users)
	}
}

func TestServeListStoreFailure(t *testing.T) {
	rec := serveList(t, &fakeUserStore{listErr: errors.New("primary down")}, "/users")

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
	if strings.Contains(rec.Body.String(), "primary down") {
		t.Error("internal error text leaked to the client")
	}
}

func TestServeDetail(t *testing.T) {
	store := &fakeUserStore{users: sampleUsers()}
	h := NewHandler(store, zap.NewNop())

	r := chi.NewRouter()
	r.Get("/users/{id}", h.ServeDetail)

	req := httptest.NewRequest(http.MethodGet, "/users/"+store.users[0].ID.Hex(), nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/users/"+primitive.NewObjectID().Hex(), nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown id: status = %d, want 404", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/users/not-a-hex-id", nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bad id: status = %d, want 400", rec.Code)
	}
}

func TestServeExportHonorsFilters(t *testing.T) {
	h := NewHandler(&fakeUserStore{users: sampleUsers()}, zap.NewNop())
	rec := httptest.NewRecorder()
	h.ServeExport(rec, httptest.NewRequest(http.MethodGet, "/users/export.csv?status=verified", nil))

	if ct := rec.Header().Get("Content-Type"); ct != "text/csv" {
		t.Errorf("Content-Type = %q, want text/csv", ct)
	}
	body := rec.Body.String()
	lines := strings.Split(strings.TrimSpace(body), "\n")
	if len(lines) != 3 { // header + 2 verified users
		t.Fatalf("csv rows = %d, want 3:\n%s", len(lines), body)
	}
	if strings.Contains(body, "bob@example.com") {
		t.Error("unverified user leaked into a verified-only export")
	}
}
