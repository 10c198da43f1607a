package archive

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/finfree-dev/finfree/internal/model"
	"github.com/finfree-dev/finfree/internal/store"
)

func testStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "finfree.db"))
	if err != nil {
		t.Fatalf("store.Open() error: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestCloseMonthSeedsNext(t *testing.T) {
	s := testStore(t)

	r := model.Report{
		Month: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		Data: model.FinancialData{
			Income:      model.Income{Earned1: 5000},
			Assets:      model.Assets{BankAccounts: 10000},
			Liabilities: model.Liabilities{CreditCards: 2000},
		},
		Sources: []model.DataSource{{Group: model.GroupAssets, Label: "Bank", URL: "https://bank.example"}},
	}
	if err := s.SaveReport(r); err != nil {
		t.Fatalf("SaveReport() error: %v", err)
	}

	now := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)
	nextKey, err := CloseMonth(s, "2026-03", now)
	if err != nil {
		t.Fatalf("CloseMonth() error: %v", err)
	}
	if nextKey != "2026-04" {
		t.Fatalf("next key = %q, want 2026-04", nextKey)
	}

	closed, err := s.GetReport("2026-03")
	if err != nil {
		t.Fatalf("GetReport(2026-03) error: %v", err)
	}
	if closed.ArchivedAt.IsZero() {
		t.Fatal("closed month not stamped archived")
	}

	next, err := s.GetReport("2026-04")
	if err != nil {
		t.Fatalf("GetReport(2026-04) error: %v", err)
	}
	if next == nil {
		t.Fatal("next month not seeded")
	}
	if next.Data.Assets.BankAccounts != 10000 {
		t.Fatalf("seeded bankAccounts = %v, want 10000", next.Data.Assets.BankAccounts)
	}
	if len(next.Sources) != 1 || next.Sources[0].Label != "Bank" {
		t.Fatalf("sources not carried forward: %+v", next.Sources)
	}
	if !next.ArchivedAt.IsZero() {
		t.Fatal("seeded month must start open")
	}
}

func TestCloseMonthDoesNotOverwriteExisting(t *testing.T) {
	s := testStore(t)

	mar := model.Report{
		Month: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		Data:  model.FinancialData{Assets: model.Assets{BankAccounts: 10000}},
	}
	apr := model.Report{
		Month: time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		Data:  model.FinancialData{Assets: model.Assets{BankAccounts: 99999}},
	}
	if err := s.SaveReport(mar); err != nil {
		t.Fatalf("SaveReport(mar) error: %v", err)
	}
	if err := s.SaveReport(apr); err != nil {
		t.Fatalf("SaveReport(apr) error: %v", err)
	}

	if _, err := CloseMonth(s, "2026-03", time.Now()); err != nil {
		t.Fatalf("CloseMonth() error: %v", err)
	}

	got, err := s.GetReport("2026-04")
	if err != nil {
		t.Fatalf("GetReport(2026-04) error: %v", err)
	}
	if got.Data.Assets.BankAccounts != 99999 {
		t.Fatalf("existing next month was overwritten: %v", got.Data.Assets.BankAccounts)
	}
}

func TestCloseMonthErrors(t *testing.T) {
	s := testStore(t)

	if _, err := CloseMonth(s, "2026-03", time.Now()); err == nil {
		t.Fatal("closing a missing month should error")
	}

	r := model.Report{Month: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)}
	if err := s.SaveReport(r); err != nil {
		t.Fatalf("SaveReport() error: %v", err)
	}
	if _, err := CloseMonth(s, "2026-03", time.Now()); err != nil {
		t.Fatalf("CloseMonth() error: %v", err)
	}
	if _, err := CloseMonth(s, "2026-03", time.Now()); err == nil {
		t.Fatal("closing an archived month twice should error")
	}
}

func TestOpenMonths(t *testing.T) {
	s := testStore(t)

	for _, m := range []time.Time{
		time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
	} {
		if err := s.SaveReport(model.Report{Month: m}); err != nil {
			t.Fatalf("SaveReport() error: %v", err)
		}
	}
	if err := s.MarkArchived("2026-01", time.Now()); err != nil {
		t.Fatalf("MarkArchived() error: %v", err)
	}

	open, err := OpenMonths(s)
	if err != nil {
		t.Fatalf("OpenMonths() error: %v", err)
	}
	if len(open) != 1 || open[0] != "2026-02" {
		t.Fatalf("OpenMonths() = %v, want [2026-02]", open)
	}
}
