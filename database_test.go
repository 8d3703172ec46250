package main

import (
	"path/filepath"
	"testing"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := OpenDB(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestAccountRoundtrip(t *testing.T) {
	db := openTestDB(t)

	id, err := db.CreateAccount("alice", "hash")
	if err != nil {
		t.Fatalf("create account: %v", err)
	}

	acct, err := db.GetAccountByUsername("alice")
	if err != nil || acct == nil {
		t.Fatalf("get account: %v", err)
	}
	if acct.ID != id || acct.Username != "alice" || acct.PassHash != "hash" {
		t.Errorf("unexpected account row: %+v", acct)
	}

	exists, err := db.UsernameExists("alice")
	if err != nil || !exists {
		t.Error("username should exist")
	}
	missing, err := db.GetAccountByUsername("nobody")
	if err != nil || missing != nil {
		t.Error("missing username should return nil, nil")
	}
}

func TestProgressPersistence(t *testing.T) {
	db := openTestDB(t)
	id, err := db.CreateAccount("bob", "hash")
	if err != nil {
		t.Fatalf("create account: %v", err)
	}

	p, err := db.LoadProgress(id)
	if err != nil || p == nil {
		t.Fatalf("load fresh progress: %v", err)
	}
	if p.Credits != 0 || p.BestScore != 0 || p.Runs != 0 {
		t.Errorf("fresh progress should be zeroed: %+v", p)
	}

	if err := db.SaveProgress(id, 30, 100); err != nil {
		t.Fatalf("save progress: %v", err)
	}
	// Credits follow the live value; best score only ever moves up
	if err := db.SaveProgress(id, 10, 40); err != nil {
		t.Fatalf("save progress: %v", err)
	}

	p, err = db.LoadProgress(id)
	if err != nil {
		t.Fatalf("load progress: %v", err)
	}
	if p.Credits != 10 {
		t.Errorf("credits should track the latest run, got %d", p.Credits)
	}
	if p.BestScore != 100 {
		t.Errorf("best score must not regress, got %d", p.BestScore)
	}
	if p.Runs != 2 {
		t.Errorf("expected 2 runs, got %d", p.Runs)
	}
}

func TestLeaderboardOrder(t *testing.T) {
	db := openTestDB(t)
	a, _ := db.CreateAccount("low", "h")
	b, _ := db.CreateAccount("high", "h")
	db.SaveProgress(a, 0, 50)
	db.SaveProgress(b, 0, 200)

	entries, err := db.GetLeaderboard(10)
	if err != nil {
		t.Fatalf("leaderboard: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Username != "high" || entries[0].Rank != 1 {
		t.Errorf("best score should rank first: %+v", entries[0])
	}
	if entries[1].Username != "low" || entries[1].Rank != 2 {
		t.Errorf("expected low second: %+v", entries[1])
	}
}

func TestSettingsUpsert(t *testing.T) {
	db := openTestDB(t)

	if got := db.GetSetting("missing"); got != "" {
		t.Errorf("missing setting should be empty, got %q", got)
	}
	if err := db.SetSetting("k", "v1"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := db.SetSetting("k", "v2"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	if got := db.GetSetting("k"); got != "v2" {
		t.Errorf("expected v2, got %q", got)
	}
}
