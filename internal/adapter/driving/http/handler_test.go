package httphandler_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httphandler "github.com/ericfisherdev/seedpass/internal/adapter/driving/http"
	"github.com/ericfisherdev/seedpass/internal/application"
	"github.com/ericfisherdev/seedpass/internal/domain/model"
	"github.com/ericfisherdev/seedpass/internal/domain/port/driven"
)

// --- Mock implementations ---

// firstPick always selects index 0 and never reorders.
type firstPick struct{}

func (firstPick) IntN(int) int                 { return 0 }
func (firstPick) Shuffle(int, func(i, j int)) {}

type mockPasswordStore struct {
	records   map[string]model.PasswordRecord
	lastQuery model.ListQuery
	err       error
}

func newMockPasswordStore() *mockPasswordStore {
	return &mockPasswordStore{records: make(map[string]model.PasswordRecord)}
}

func (m *mockPasswordStore) Upsert(_ context.Context, seedText, password string) (model.PasswordRecord, error) {
	if m.err != nil {
		return model.PasswordRecord{}, m.err
	}
	rec := model.PasswordRecord{
		SeedText:  seedText,
		Password:  password,
		CreatedAt: time.Date(2024, 5, 17, 9, 30, 0, 0, time.Local),
	}
	m.records[seedText] = rec
	return rec, nil
}

func (m *mockPasswordStore) List(_ context.Context, q model.ListQuery) ([]model.PasswordRecord, error) {
	m.lastQuery = q
	if m.err != nil {
		return nil, m.err
	}
	var result []model.PasswordRecord
	for _, r := range m.records {
		if strings.Contains(r.SeedText, q.Search) {
			result = append(result, r)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].SeedText < result[j].SeedText })
	return result, nil
}

func (m *mockPasswordStore) Get(_ context.Context, seedText string) (*model.PasswordRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	rec, ok := m.records[seedText]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

type mockStorageProbe struct {
	err error
}

func (m *mockStorageProbe) Ping(context.Context) error { return m.err }

// --- Test helpers ---

func setupMux(store *mockPasswordStore) http.Handler {
	return setupMuxWithProbe(store, &mockStorageProbe{})
}

func setupMuxWithProbe(store *mockPasswordStore, probe driven.StorageProbe) http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := application.NewPasswordService(application.NewGenerator(firstPick{}), store)
	h := httphandler.NewHandler(svc, application.NewHealthService(probe), 12, logger)

	mux := http.NewServeMux()
	httphandler.RegisterAPIRoutes(mux, h)
	return httphandler.ApplyMiddleware(mux, logger)
}

func doRequest(t *testing.T, handler http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

// --- Tests ---

func TestGeneratePassword(t *testing.T) {
	store := newMockPasswordStore()
	mux := setupMux(store)

	rec := doRequest(t, mux, http.MethodPost, "/api/v1/passwords", `{"seed_text":"hello","length":12}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))

	var resp httphandler.PasswordResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "hello", resp.SeedText)
	assert.Equal(t, "aA0!Si~Eruho", resp.Password)
	assert.Equal(t, "2024-05-17 09:30:00", resp.CreatedAt)
	assert.Contains(t, store.records, "hello")
}

func TestGeneratePassword_DefaultLength(t *testing.T) {
	mux := setupMux(newMockPasswordStore())

	rec := doRequest(t, mux, http.MethodPost, "/api/v1/passwords", `{"seed_text":"hello"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp httphandler.PasswordResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Len(t, resp.Password, 12)
}

func TestGeneratePassword_BadRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "malformed json", body: `{"seed_text":`},
		{name: "empty seed", body: `{"seed_text":""}`},
		{name: "blank seed", body: `{"seed_text":"   "}`},
		{name: "negative length", body: `{"seed_text":"hello","length":-1}`},
		{name: "length too large", body: `{"seed_text":"hello","length":100000}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newMockPasswordStore()
			mux := setupMux(store)

			rec := doRequest(t, mux, http.MethodPost, "/api/v1/passwords", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Empty(t, store.records)
		})
	}
}

func TestGeneratePassword_StorageUnavailable(t *testing.T) {
	store := newMockPasswordStore()
	store.err = errors.Join(driven.ErrStorageUnavailable, errors.New("disk I/O error"))
	mux := setupMux(store)

	rec := doRequest(t, mux, http.MethodPost, "/api/v1/passwords", `{"seed_text":"hello"}`)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.NotContains(t, rec.Body.String(), "disk I/O error")
}

func TestListPasswords(t *testing.T) {
	store := newMockPasswordStore()
	mux := setupMux(store)
	for _, seed := range []string{"abc", "xabcx", "other"} {
		require.Equal(t, http.StatusCreated,
			doRequest(t, mux, http.MethodPost, "/api/v1/passwords", `{"seed_text":"`+seed+`"}`).Code)
	}

	rec := doRequest(t, mux, http.MethodGet, "/api/v1/passwords?sort=seed_text&order=asc&q=abc", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var resp []httphandler.PasswordResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "abc", resp[0].SeedText)
	assert.Equal(t, "xabcx", resp[1].SeedText)
	assert.Equal(t, model.ListQuery{OrderBy: model.SortBySeedText, Ascending: true, Search: "abc"}, store.lastQuery)
}

func TestListPasswords_EmptyIsArray(t *testing.T) {
	mux := setupMux(newMockPasswordStore())

	rec := doRequest(t, mux, http.MethodGet, "/api/v1/passwords", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestListPasswords_InvalidParams(t *testing.T) {
	tests := []struct {
		name   string
		target string
	}{
		{name: "unknown column", target: "/api/v1/passwords?sort=password"},
		{name: "injection attempt", target: "/api/v1/passwords?sort=created_at%3B%20DROP%20TABLE%20passwords"},
		{name: "unknown order", target: "/api/v1/passwords?order=up"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newMockPasswordStore()
			mux := setupMux(store)

			rec := doRequest(t, mux, http.MethodGet, tt.target, "")

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Empty(t, store.lastQuery.OrderBy, "store must not be queried")
		})
	}
}

func TestGetPassword(t *testing.T) {
	store := newMockPasswordStore()
	mux := setupMux(store)
	require.Equal(t, http.StatusCreated,
		doRequest(t, mux, http.MethodPost, "/api/v1/passwords", `{"seed_text":"mail/work"}`).Code)

	rec := doRequest(t, mux, http.MethodGet, "/api/v1/passwords/mail/work", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp httphandler.PasswordResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "mail/work", resp.SeedText)

	missing := doRequest(t, mux, http.MethodGet, "/api/v1/passwords/nope", "")
	assert.Equal(t, http.StatusNotFound, missing.Code)
}

func TestHealth(t *testing.T) {
	mux := setupMux(newMockPasswordStore())

	rec := doRequest(t, mux, http.MethodGet, "/api/v1/health", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var resp httphandler.HealthResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "ok", resp.Storage)
}

func TestHealth_StorageUnavailable(t *testing.T) {
	probe := &mockStorageProbe{err: errors.Join(driven.ErrStorageUnavailable, errors.New("unable to open database file"))}
	mux := setupMuxWithProbe(newMockPasswordStore(), probe)

	rec := doRequest(t, mux, http.MethodGet, "/api/v1/health", "")

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	var resp httphandler.HealthResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "degraded", resp.Status)
	assert.Equal(t, "unavailable", resp.Storage)
	assert.NotContains(t, rec.Body.String(), "unable to open")
}

func TestRecoveryMiddleware(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	panicking := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { panic("boom") })

	rec := doRequest(t, httphandler.ApplyMiddleware(panicking, logger), http.MethodGet, "/", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
