// Package analytics records privacy-conscious page views and outbound link
// clicks in sqlite and aggregates them for the admin dashboard.
package analytics

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Visit is one tracked page view. The client IP is never stored, only a
// salted hash of it.
type Visit struct {
	ID        int64     `json:"id"`
	HashedIP  string    `json:"hashed_ip"`
	UserAgent string    `json:"user_agent"`
	Path      string    `json:"path"`
	Lang      string    `json:"lang"`
	Timestamp time.Time `json:"timestamp"`
}

// LinkStat is the click count of one outbound link.
type LinkStat struct {
	Name   string `json:"name"`
	URL    string `json:"url"`
	Clicks int64  `json:"clicks"`
}

// Stats is the dashboard summary.
type Stats struct {
	TotalVisitors    int64            `json:"total_visitors"`
	UniqueVisitors   int64            `json:"unique_visitors"`
	VisitorsToday    int64            `json:"visitors_today"`
	VisitorsThisWeek int64            `json:"visitors_this_week"`
	ByLanguage       map[string]int64 `json:"by_language"`
	TotalClicks      int64            `json:"total_clicks"`
	Links            []LinkStat       `json:"links"`
	RecentVisitors   []Visit          `json:"recent_visitors"`
}

const schema = `
CREATE TABLE IF NOT EXISTS visitors (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	hashed_ip TEXT NOT NULL,
	user_agent TEXT,
	path TEXT,
	lang TEXT,
	ts INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS visitors_ts ON visitors (ts);
CREATE TABLE IF NOT EXISTS links (
	name TEXT PRIMARY KEY,
	url TEXT NOT NULL,
	clicks INTEGER NOT NULL DEFAULT 0
);`

// Store persists analytics in a sqlite database.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens (creating if needed) the database at path. ":memory:" gives
// a private in-memory database.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	// sqlite allows one writer; an in-memory database is per connection.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate %s: %w", path, err)
	}
	return &Store{db: db, now: time.Now}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// RecordVisit stores v. A zero Timestamp means now.
func (s *Store) RecordVisit(ctx context.Context, v Visit) error {
	if v.Timestamp.IsZero() {
		v.Timestamp = s.now()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO visitors (hashed_ip, user_agent, path, lang, ts) VALUES (?, ?, ?, ?, ?)`,
		v.HashedIP, v.UserAgent, v.Path, v.Lang, v.Timestamp.Unix())
	if err != nil {
		return fmt.Errorf("record visit: %w", err)
	}
	return nil
}

// RecordClick counts one click on the named outbound link.
func (s *Store) RecordClick(ctx context.Context, name, url string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO links (name, url, clicks) VALUES (?, ?, 1)
		ON CONFLICT(name) DO UPDATE SET clicks = clicks + 1, url = excluded.url`,
		name, url)
	if err != nil {
		return fmt.Errorf("record click %s: %w", name, err)
	}
	return nil
}

// Cleanup deletes visits older than retention and returns how many went.
func (s *Store) Cleanup(ctx context.Context, retention time.Duration) (int64, error) {
	cutoff := s.now().Add(-retention).Unix()
	res, err := s.db.ExecContext(ctx, `DELETE FROM visitors WHERE ts < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("cleanup visitors: %w", err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}

// Visitors returns the most recent visits, newest first.
func (s *Store) Visitors(ctx context.Context, limit int) ([]Visit, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, hashed_ip, COALESCE(user_agent, ''), COALESCE(path, ''), COALESCE(lang, ''), ts
		FROM visitors
		ORDER BY ts DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query visitors: %w", err)
	}
	defer rows.Close()

	var visits []Visit
	for rows.Next() {
		var v Visit
		var ts int64
		if err := rows.Scan(&v.ID, &v.HashedIP, &v.UserAgent, &v.Path, &v.Lang, &ts); err != nil {
			return nil, fmt.Errorf("scan visitor: %w", err)
		}
		v.Timestamp = time.Unix(ts, 0).UTC()
		visits = append(visits, v)
	}
	return visits, rows.Err()
}

// Links returns outbound link counters, most clicked first.
func (s *Store) Links(ctx context.Context) ([]LinkStat, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name, url, clicks FROM links ORDER BY clicks DESC, name`)
	if err != nil {
		return nil, fmt.Errorf("query links: %w", err)
	}
	defer rows.Close()

	var links []LinkStat
	for rows.Next() {
		var l LinkStat
		if err := rows.Scan(&l.Name, &l.URL, &l.Clicks); err != nil {
			return nil, fmt.Errorf("scan link: %w", err)
		}
		links = append(links, l)
	}
	return links, rows.Err()
}

// Stats aggregates the dashboard summary.
func (s *Store) Stats(ctx context.Context) (*Stats, error) {
	now := s.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	stats := &Stats{ByLanguage: map[string]int64{}}

	counts := []struct {
		dst   *int64
		query string
		args  []any
	}{
		{&stats.TotalVisitors, `SELECT COUNT(*) FROM visitors`, nil},
		{&stats.UniqueVisitors, `SELECT COUNT(DISTINCT hashed_ip) FROM visitors`, nil},
		{&stats.VisitorsToday, `SELECT COUNT(*) FROM visitors WHERE ts >= ?`, []any{today.Unix()}},
		{&stats.VisitorsThisWeek, `SELECT COUNT(*) FROM visitors WHERE ts >= ?`, []any{now.Add(-7 * 24 * time.Hour).Unix()}},
		{&stats.TotalClicks, `SELECT COALESCE(SUM(clicks), 0) FROM links`, nil},
	}
	for _, c := range counts {
		if err := s.db.QueryRowContext(ctx, c.query, c.args...).Scan(c.dst); err != nil {
			return nil, fmt.Errorf("stats: %w", err)
		}
	}

	rows, err := s.db.QueryContext(ctx, `SELECT COALESCE(lang, ''), COUNT(*) FROM visitors GROUP BY lang`)
	if err != nil {
		return nil, fmt.Errorf("stats by language: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var lang string
		var n int64
		if err := rows.Scan(&lang, &n); err != nil {
			return nil, fmt.Errorf("scan language count: %w", err)
		}
		stats.ByLanguage[lang] = n
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if stats.Links, err = s.Links(ctx); err != nil {
		return nil, err
	}
	if stats.RecentVisitors, err = s.Visitors(ctx, 50); err != nil {
		return nil, err
	}
	return stats, nil
}
