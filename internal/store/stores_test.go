package store_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"dante/internal/domain"
	"dante/internal/store"
)

type envelopeJSON struct {
	State   json.RawMessage `json:"state"`
	Version int             `json:"version"`
}

func readEnvelope(t *testing.T, kv domain.KV, key string) envelopeJSON {
	t.Helper()
	b, err := kv.Get(context.Background(), key)
	if err != nil {
		t.Fatalf("get %s: %v", key, err)
	}
	var env envelopeJSON
	if err := json.Unmarshal(b, &env); err != nil {
		t.Fatalf("decode %s: %v", key, err)
	}
	return env
}

func TestCompanyStore_LoginLogout(t *testing.T) {
	kv := store.NewMemoryKV()
	s := store.NewCompanyStore(kv, nil)

	if _, ok := s.Company(); ok {
		t.Fatal("fresh store should be empty")
	}

	s.Login(domain.Company{ID: "c1", Name: "Acme"}, "t1")
	c, ok := s.Company()
	if !ok || c.ID != "c1" {
		t.Fatalf("unexpected company %+v", c)
	}
	if tok, ok := s.Token(); !ok || tok != "t1" {
		t.Fatalf("unexpected token %q", tok)
	}

	s.Logout()
	s.Logout()
	if _, ok := s.Company(); ok {
		t.Fatal("company should be nil after logout")
	}
	if _, ok := s.Token(); ok {
		t.Fatal("token should be nil after logout")
	}

	env := readEnvelope(t, kv, store.CompanyKey)
	if env.Version != 0 {
		t.Fatalf("unexpected version %d", env.Version)
	}
	if string(env.State) != `{"company":null,"token":null}` {
		t.Fatalf("unexpected persisted state %s", env.State)
	}
}

func TestCompanyStore_Rehydrate(t *testing.T) {
	kv := store.NewFileKV(t.TempDir())
	want := domain.Company{ID: "c1", Name: "Acme", Email: "a@acme.test", RIF: "J-1"}
	store.NewCompanyStore(kv, nil).Login(want, "t1")

	s := store.NewCompanyStore(kv, nil)
	got, ok := s.Company()
	if !ok || got != want {
		t.Fatalf("rehydrated %+v, want %+v", got, want)
	}
	if tok, _ := s.Token(); tok != "t1" {
		t.Fatalf("rehydrated token %q", tok)
	}
}

func TestCompanyStore_LoginOverwrites(t *testing.T) {
	s := store.NewCompanyStore(store.NewMemoryKV(), nil)
	s.Login(domain.Company{ID: "c1"}, "t1")
	s.Login(domain.Company{ID: "c2"}, "t2")
	c, _ := s.Company()
	tok, _ := s.Token()
	if c.ID != "c2" || tok != "t2" {
		t.Fatalf("expected second login to win, got %s/%s", c.ID, tok)
	}
}

func TestUserStore_SetClear(t *testing.T) {
	kv := store.NewMemoryKV()
	s := store.NewUserStore(kv, nil)
	s.SetUser(domain.User{ID: "u1", Name: "Ana", Role: domain.RoleOwner})

	again := store.NewUserStore(kv, nil)
	u, ok := again.User()
	if !ok || u.ID != "u1" || u.Role != domain.RoleOwner {
		t.Fatalf("unexpected user %+v", u)
	}

	again.ClearUser()
	if _, ok := again.User(); ok {
		t.Fatal("user should be nil after clear")
	}
	if string(readEnvelope(t, kv, store.UserKey).State) != `{"user":null}` {
		t.Fatal("cleared state not persisted")
	}
}

func TestSessionStore_Token(t *testing.T) {
	kv := store.NewMemoryKV()
	s := store.NewSessionStore(kv, nil)
	if s.IsAuthenticated() {
		t.Fatal("fresh session should not be authenticated")
	}
	s.Login("t1")
	if !store.NewSessionStore(kv, nil).IsAuthenticated() {
		t.Fatal("rehydrated session should be authenticated")
	}
	s.Logout()
	if s.IsAuthenticated() {
		t.Fatal("session should not be authenticated after logout")
	}
	if string(readEnvelope(t, kv, store.SessionKey).State) != `{"token":null}` {
		t.Fatal("logout not persisted")
	}
}

func TestStores_CorruptBlobRehydratesEmpty(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryKV()
	for _, k := range []string{store.CompanyKey, store.UserKey, store.SessionKey} {
		_ = kv.Set(ctx, k, []byte("{not json"))
	}

	core, logs := observer.New(zap.WarnLevel)
	log := zap.New(core)

	if _, ok := store.NewCompanyStore(kv, log).Company(); ok {
		t.Fatal("company store should be empty")
	}
	if _, ok := store.NewUserStore(kv, log).User(); ok {
		t.Fatal("user store should be empty")
	}
	if store.NewSessionStore(kv, log).IsAuthenticated() {
		t.Fatal("session store should be empty")
	}
	if logs.Len() != 3 {
		t.Fatalf("expected 3 warnings, got %d", logs.Len())
	}
}

func TestStores_FutureVersionRehydratesEmpty(t *testing.T) {
	kv := store.NewMemoryKV()
	_ = kv.Set(context.Background(), store.SessionKey, []byte(`{"state":{"token":"t"},"version":7}`))
	if store.NewSessionStore(kv, nil).IsAuthenticated() {
		t.Fatal("unknown envelope version should be discarded")
	}
}

func TestStores_WrongPassphraseRehydratesEmpty(t *testing.T) {
	inner := store.NewMemoryKV()
	good := store.NewSealedKV(inner, "right", store.WithScryptParams(1<<10, 8, 1))
	store.NewSessionStore(good, nil).Login("t1")

	bad := store.NewSealedKV(inner, "wrong", store.WithScryptParams(1<<10, 8, 1))
	if store.NewSessionStore(bad, nil).IsAuthenticated() {
		t.Fatal("wrong passphrase should rehydrate empty")
	}
	if tok, _ := store.NewSessionStore(good, nil).Token(); tok != "t1" {
		t.Fatalf("right passphrase should still open, got %q", tok)
	}
}

type failingKV struct{ store.MemoryKV }

func (f *failingKV) Set(context.Context, string, []byte) error { return errors.New("disk full") }

func TestStores_WriteFailureKeepsMemoryState(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	s := store.NewSessionStore(&failingKV{}, zap.New(core))

	s.Login("t1")
	if tok, _ := s.Token(); tok != "t1" {
		t.Fatal("in-memory state should update even if persistence fails")
	}
	s.Logout()
	if s.IsAuthenticated() {
		t.Fatal("logout must reset in-memory state")
	}
	if logs.Len() != 2 {
		t.Fatalf("expected 2 error logs, got %d", logs.Len())
	}
}
