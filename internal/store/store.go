// Package store provides the SQLite-backed home for monthly reports,
// level plans, and asset buckets.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/finfree-dev/finfree/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Store provides SQLite-backed persistence.
type Store struct {
	db *sql.DB
}

// Open opens or creates the database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveReport stores a monthly report, replacing any existing row for the
// same month. Field rows and sources are rewritten wholesale.
func (s *Store) SaveReport(r model.Report) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	key := model.MonthKey(r.Month)
	archived := ""
	if !r.ArchivedAt.IsZero() {
		archived = r.ArchivedAt.UTC().Format(time.RFC3339)
	}
	updated := r.UpdatedAt
	if updated.IsZero() {
		updated = time.Now()
	}

	_, err = tx.Exec(`INSERT OR REPLACE INTO reports (month, archived_at, updated_at)
		VALUES (?, ?, ?)`, key, archived, updated.UTC().Format(time.RFC3339))
	if err != nil {
		return err
	}

	if _, err = tx.Exec("DELETE FROM report_fields WHERE month = ?", key); err != nil {
		return err
	}
	for _, g := range model.Groups {
		for _, name := range model.FieldNames(g) {
			v, _ := r.Data.Field(g, name)
			if v == 0 {
				continue
			}
			_, err = tx.Exec(`INSERT INTO report_fields (month, grp, field, amount)
				VALUES (?, ?, ?, ?)`, key, string(g), name, v)
			if err != nil {
				return err
			}
		}
	}

	if _, err = tx.Exec("DELETE FROM data_sources WHERE month = ?", key); err != nil {
		return err
	}
	for i, src := range r.Sources {
		_, err = tx.Exec(`INSERT INTO data_sources (month, position, grp, label, url)
			VALUES (?, ?, ?, ?, ?)`, key, i, string(src.Group), src.Label, src.URL)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// GetReport loads the report for a "2006-01" month key. Returns nil with
// no error when the month has no report.
func (s *Store) GetReport(key string) (*model.Report, error) {
	var archived, updated string
	err := s.db.QueryRow("SELECT archived_at, updated_at FROM reports WHERE month = ?", key).
		Scan(&archived, &updated)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	month, err := model.ParseMonthKey(key)
	if err != nil {
		return nil, fmt.Errorf("bad month key %q: %w", key, err)
	}
	r := model.Report{Month: month}
	if archived != "" {
		r.ArchivedAt, _ = time.Parse(time.RFC3339, archived)
	}
	if updated != "" {
		r.UpdatedAt, _ = time.Parse(time.RFC3339, updated)
	}

	rows, err := s.db.Query("SELECT grp, field, amount FROM report_fields WHERE month = ?", key)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	for rows.Next() {
		var grp, field string
		var amount float64
		if err := rows.Scan(&grp, &field, &amount); err != nil {
			return nil, err
		}
		r.Data.SetField(model.Group(grp), field, amount)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	srcRows, err := s.db.Query(`SELECT grp, label, url FROM data_sources
		WHERE month = ? ORDER BY position`, key)
	if err != nil {
		return nil, err
	}
	defer func() { _ = srcRows.Close() }()
	for srcRows.Next() {
		var src model.DataSource
		var grp string
		if err := srcRows.Scan(&grp, &src.Label, &src.URL); err != nil {
			return nil, err
		}
		src.Group = model.Group(grp)
		r.Sources = append(r.Sources, src)
	}
	if err := srcRows.Err(); err != nil {
		return nil, err
	}

	return &r, nil
}

// ListReportMonths returns all stored month keys in ascending order.
func (s *Store) ListReportMonths() ([]string, error) {
	rows, err := s.db.Query("SELECT month FROM reports ORDER BY month")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var months []string
	for rows.Next() {
		var m string
		if err := rows.Scan(&m); err != nil {
			return nil, err
		}
		months = append(months, m)
	}
	return months, rows.Err()
}

// LatestReports loads up to n reports, newest first.
func (s *Store) LatestReports(n int) ([]model.Report, error) {
	rows, err := s.db.Query("SELECT month FROM reports ORDER BY month DESC LIMIT ?", n)
	if err != nil {
		return nil, err
	}
	keys := []string{}
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			_ = rows.Close()
			return nil, err
		}
		keys = append(keys, k)
	}
	if err := rows.Err(); err != nil {
		_ = rows.Close()
		return nil, err
	}
	_ = rows.Close()

	var reports []model.Report
	for _, k := range keys {
		r, err := s.GetReport(k)
		if err != nil {
			return nil, err
		}
		if r != nil {
			reports = append(reports, *r)
		}
	}
	return reports, nil
}

// ReportDates returns the month start dates of all stored reports,
// ascending. Used for streak evaluation.
func (s *Store) ReportDates() ([]time.Time, error) {
	months, err := s.ListReportMonths()
	if err != nil {
		return nil, err
	}
	dates := make([]time.Time, 0, len(months))
	for _, m := range months {
		t, err := model.ParseMonthKey(m)
		if err != nil {
			continue
		}
		dates = append(dates, t)
	}
	return dates, nil
}

// MarkArchived stamps a report as closed out.
func (s *Store) MarkArchived(key string, at time.Time) error {
	res, err := s.db.Exec("UPDATE reports SET archived_at = ? WHERE month = ?",
		at.UTC().Format(time.RFC3339), key)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("no report for month %s", key)
	}
	return nil
}

// DeleteReport removes a report and its field and source rows.
func (s *Store) DeleteReport(key string) error {
	_, err := s.db.Exec("DELETE FROM reports WHERE month = ?", key)
	return err
}

// ReportCount returns the number of stored reports.
func (s *Store) ReportCount() (int, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM reports").Scan(&count)
	return count, err
}

// SaveLevelPlan stores a freedom-level plan, rewriting its item rows.
func (s *Store) SaveLevelPlan(p model.LevelPlan) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.Exec(`INSERT OR REPLACE INTO level_plans (level, notes) VALUES (?, ?)`,
		string(p.Level), p.Notes)
	if err != nil {
		return err
	}

	if _, err = tx.Exec("DELETE FROM plan_items WHERE level = ?", string(p.Level)); err != nil {
		return err
	}
	for i, e := range p.Expenses {
		_, err = tx.Exec(`INSERT INTO plan_items (level, kind, position, label, amount)
			VALUES (?, 'expense', ?, ?, ?)`, string(p.Level), i, e.Label, e.Monthly)
		if err != nil {
			return err
		}
	}
	for i, pi := range p.PassiveIncome {
		_, err = tx.Exec(`INSERT INTO plan_items (level, kind, position, label, amount)
			VALUES (?, 'passive', ?, ?, ?)`, string(p.Level), i, pi.Label, pi.Annual)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// GetLevelPlan loads the plan for a level. Returns nil with no error when
// the level has no plan yet.
func (s *Store) GetLevelPlan(level model.LevelKey) (*model.LevelPlan, error) {
	var notes string
	err := s.db.QueryRow("SELECT notes FROM level_plans WHERE level = ?", string(level)).
		Scan(&notes)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	p := model.LevelPlan{Level: level, Notes: notes}

	rows, err := s.db.Query(`SELECT kind, label, amount FROM plan_items
		WHERE level = ? ORDER BY kind, position`, string(level))
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	for rows.Next() {
		var kind, label string
		var amount float64
		if err := rows.Scan(&kind, &label, &amount); err != nil {
			return nil, err
		}
		switch kind {
		case "expense":
			p.Expenses = append(p.Expenses, model.ExpenseItem{Label: label, Monthly: amount})
		case "passive":
			p.PassiveIncome = append(p.PassiveIncome, model.PassiveItem{Label: label, Annual: amount})
		}
	}
	return &p, rows.Err()
}

// ListLevelPlans loads all stored plans keyed by level.
func (s *Store) ListLevelPlans() (map[model.LevelKey]model.LevelPlan, error) {
	rows, err := s.db.Query("SELECT level FROM level_plans")
	if err != nil {
		return nil, err
	}
	var levels []model.LevelKey
	for rows.Next() {
		var l string
		if err := rows.Scan(&l); err != nil {
			_ = rows.Close()
			return nil, err
		}
		levels = append(levels, model.LevelKey(l))
	}
	if err := rows.Err(); err != nil {
		_ = rows.Close()
		return nil, err
	}
	_ = rows.Close()

	plans := make(map[model.LevelKey]model.LevelPlan, len(levels))
	for _, l := range levels {
		p, err := s.GetLevelPlan(l)
		if err != nil {
			return nil, err
		}
		if p != nil {
			plans[l] = *p
		}
	}
	return plans, nil
}

// SaveBucket inserts or updates an asset bucket. A zero ID inserts and
// fills in the assigned ID.
func (s *Store) SaveBucket(b *model.AssetBucket) error {
	priceUpdated := ""
	if !b.PriceUpdatedAt.IsZero() {
		priceUpdated = b.PriceUpdatedAt.UTC().Format(time.RFC3339)
	}
	loanStart := ""
	if !b.Loan.StartDate.IsZero() {
		loanStart = b.Loan.StartDate.UTC().Format(time.RFC3339)
	}

	if b.ID == 0 {
		res, err := s.db.Exec(`INSERT INTO buckets
			(name, kind, balance, yield_pct, ticker, quantity, price, price_updated_at,
			 loan_original, loan_rate_pct, loan_payment, loan_term_months, loan_start)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			b.Name, string(b.Kind), b.Balance, b.YieldPct, b.Ticker, b.Quantity, b.Price,
			priceUpdated, b.Loan.OriginalAmount, b.Loan.AnnualRatePct, b.Loan.MonthlyPayment,
			b.Loan.TermMonths, loanStart)
		if err != nil {
			return err
		}
		b.ID, err = res.LastInsertId()
		return err
	}

	_, err := s.db.Exec(`UPDATE buckets SET
		name = ?, kind = ?, balance = ?, yield_pct = ?, ticker = ?, quantity = ?,
		price = ?, price_updated_at = ?, loan_original = ?, loan_rate_pct = ?,
		loan_payment = ?, loan_term_months = ?, loan_start = ?
		WHERE id = ?`,
		b.Name, string(b.Kind), b.Balance, b.YieldPct, b.Ticker, b.Quantity, b.Price,
		priceUpdated, b.Loan.OriginalAmount, b.Loan.AnnualRatePct, b.Loan.MonthlyPayment,
		b.Loan.TermMonths, loanStart, b.ID)
	return err
}

// ListBuckets loads all asset buckets ordered by name.
func (s *Store) ListBuckets() ([]model.AssetBucket, error) {
	rows, err := s.db.Query(`SELECT
		id, name, kind, balance, yield_pct, ticker, quantity, price, price_updated_at,
		loan_original, loan_rate_pct, loan_payment, loan_term_months, loan_start
		FROM buckets ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var buckets []model.AssetBucket
	for rows.Next() {
		var b model.AssetBucket
		var kind string
		var priceUpdated, loanStart sql.NullString
		err := rows.Scan(&b.ID, &b.Name, &kind, &b.Balance, &b.YieldPct, &b.Ticker,
			&b.Quantity, &b.Price, &priceUpdated,
			&b.Loan.OriginalAmount, &b.Loan.AnnualRatePct, &b.Loan.MonthlyPayment,
			&b.Loan.TermMonths, &loanStart)
		if err != nil {
			return nil, err
		}
		b.Kind = model.BucketKind(kind)
		if priceUpdated.Valid && priceUpdated.String != "" {
			b.PriceUpdatedAt, _ = time.Parse(time.RFC3339, priceUpdated.String)
		}
		if loanStart.Valid && loanStart.String != "" {
			b.Loan.StartDate, _ = time.Parse(time.RFC3339, loanStart.String)
		}
		buckets = append(buckets, b)
	}
	return buckets, rows.Err()
}

// GetBucket loads one bucket by ID. Returns nil with no error when absent.
func (s *Store) GetBucket(id int64) (*model.AssetBucket, error) {
	buckets, err := s.ListBuckets()
	if err != nil {
		return nil, err
	}
	for i := range buckets {
		if buckets[i].ID == id {
			return &buckets[i], nil
		}
	}
	return nil, nil
}

// DeleteBucket removes an asset bucket.
func (s *Store) DeleteBucket(id int64) error {
	_, err := s.db.Exec("DELETE FROM buckets WHERE id = ?", id)
	return err
}
