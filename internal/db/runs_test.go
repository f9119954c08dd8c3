package db

import (
	"database/sql"
	"fmt"
	"testing"

	"github.com/hpungsan/seer/internal/errors"
)

func testDB(t *testing.T) *sql.DB {
	t.Helper()
	conn, err := Init(t.TempDir())
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func sampleRun(id string, createdAt int64) *Run {
	return &Run{
		ID:        id,
		Slug:      "login-screen",
		Name:      "Login screen",
		Prompt:    "header: Sign in; button: Continue",
		Preset:    "mobile",
		Theme:     "classic",
		Fidelity:  "low",
		Seed:      42,
		Screens:   1,
		Elements:  5,
		OutPath:   "/tmp/nl-login-screen-" + id + ".excalidraw",
		MetaJSON:  `{"grid":20}`,
		CreatedAt: createdAt,
	}
}

func TestInsertAndGetRun(t *testing.T) {
	conn := testDB(t)

	want := sampleRun("01ARZ3NDEKTSV4RRFFQ69G5FAV", 1000)
	if err := InsertRun(conn, want); err != nil {
		t.Fatalf("InsertRun() error = %v", err)
	}

	got, err := GetRun(conn, want.ID)
	if err != nil {
		t.Fatalf("GetRun() error = %v", err)
	}
	if got.Slug != want.Slug || got.Prompt != want.Prompt || got.Seed != want.Seed {
		t.Errorf("GetRun() = %+v, want %+v", got, want)
	}
	if got.MetaJSON != want.MetaJSON {
		t.Errorf("MetaJSON = %q, want %q", got.MetaJSON, want.MetaJSON)
	}
}

func TestGetRun_NotFound(t *testing.T) {
	conn := testDB(t)

	_, err := GetRun(conn, "missing")
	if !errors.Is(err, errors.ErrNotFound) {
		t.Fatalf("GetRun() error = %v, want NOT_FOUND", err)
	}
}

func TestLatestRun(t *testing.T) {
	conn := testDB(t)

	for i := 0; i < 3; i++ {
		r := sampleRun(fmt.Sprintf("id-%d", i), int64(1000+i))
		if err := InsertRun(conn, r); err != nil {
			t.Fatalf("InsertRun() error = %v", err)
		}
	}
	other := sampleRun("id-other", 5000)
	other.Slug = "settings"
	if err := InsertRun(conn, other); err != nil {
		t.Fatalf("InsertRun() error = %v", err)
	}

	got, err := LatestRun(conn, "login-screen")
	if err != nil {
		t.Fatalf("LatestRun() error = %v", err)
	}
	if got.ID != "id-2" {
		t.Errorf("LatestRun(slug) = %s, want id-2", got.ID)
	}

	got, err = LatestRun(conn, "")
	if err != nil {
		t.Fatalf("LatestRun() error = %v", err)
	}
	if got.ID != "id-other" {
		t.Errorf("LatestRun() = %s, want id-other", got.ID)
	}
}

func TestLatestRun_Empty(t *testing.T) {
	conn := testDB(t)

	if _, err := LatestRun(conn, ""); !errors.Is(err, errors.ErrNotFound) {
		t.Fatalf("LatestRun() error = %v, want NOT_FOUND", err)
	}
}

func TestListRuns(t *testing.T) {
	conn := testDB(t)

	for i := 0; i < 5; i++ {
		r := sampleRun(fmt.Sprintf("id-%d", i), int64(1000+i))
		if i%2 == 1 {
			r.Slug = "settings"
		}
		if err := InsertRun(conn, r); err != nil {
			t.Fatalf("InsertRun() error = %v", err)
		}
	}

	all, err := ListRuns(conn, "", 0)
	if err != nil {
		t.Fatalf("ListRuns() error = %v", err)
	}
	if len(all) != 5 {
		t.Fatalf("ListRuns() returned %d runs, want 5", len(all))
	}
	// Newest first
	if all[0].ID != "id-4" || all[4].ID != "id-0" {
		t.Errorf("order = %s .. %s, want id-4 .. id-0", all[0].ID, all[4].ID)
	}

	filtered, err := ListRuns(conn, "settings", 0)
	if err != nil {
		t.Fatalf("ListRuns(slug) error = %v", err)
	}
	if len(filtered) != 2 {
		t.Errorf("ListRuns(slug) returned %d runs, want 2", len(filtered))
	}

	limited, err := ListRuns(conn, "", 2)
	if err != nil {
		t.Fatalf("ListRuns(limit) error = %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("ListRuns(limit) returned %d runs, want 2", len(limited))
	}
}

func TestInsertRun_DuplicateID(t *testing.T) {
	conn := testDB(t)

	r := sampleRun("dup", 1000)
	if err := InsertRun(conn, r); err != nil {
		t.Fatalf("InsertRun() error = %v", err)
	}
	if err := InsertRun(conn, r); err == nil {
		t.Fatal("second InsertRun() with same id expected error")
	}
}

func TestInsertRun_EmptyOptionalFields(t *testing.T) {
	conn := testDB(t)

	r := sampleRun("bare", 1000)
	r.Name = ""
	r.MetaJSON = ""
	if err := InsertRun(conn, r); err != nil {
		t.Fatalf("InsertRun() error = %v", err)
	}

	got, err := GetRun(conn, "bare")
	if err != nil {
		t.Fatalf("GetRun() error = %v", err)
	}
	if got.Name != "" || got.MetaJSON != "" {
		t.Errorf("optional fields = %q, %q, want empty", got.Name, got.MetaJSON)
	}
}
