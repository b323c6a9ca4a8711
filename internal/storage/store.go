package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/multierr"
)

// ErrEmptyAddress is returned when a record without an address is written.
var ErrEmptyAddress = errors.New("address is required")

// Store defines the profile data operations used by the browser.
type Store interface {
	CreateTables(ctx context.Context) error

	AddHistory(ctx context.Context, item HistoryItem) error
	RemoveHistory(ctx context.Context, address string) error
	History(ctx context.Context) ([]HistoryItem, error)
	SearchHistory(ctx context.Context, query string, limit int) ([]HistoryItem, error)
	ClearHistory(ctx context.Context) error
	PruneHistory(ctx context.Context, olderThan time.Time) (int64, error)

	AddBookmark(ctx context.Context, item BookmarkItem) error
	RemoveBookmark(ctx context.Context, address string) error
	UpdateBookmark(ctx context.Context, item BookmarkItem) error
	Bookmarks(ctx context.Context, folder string) ([]BookmarkItem, error)
	BookmarkFolders(ctx context.Context) ([]string, error)
	IsBookmarked(ctx context.Context, address string) (BookmarkItem, bool, error)

	Stats(ctx context.Context) (*Stats, error)
	Close() error
}

// timestampLayout is fixed width so stored values sort lexically.
const timestampLayout = "2006-01-02T15:04:05.000000000Z"

// SQLiteStore implements Store backed by a SQLite database.
type SQLiteStore struct {
	db     *sql.DB
	ownsDB bool

	insertHistory  *sql.Stmt
	deleteHistory  *sql.Stmt
	upsertBookmark *sql.Stmt
	updateBookmark *sql.Stmt
	deleteBookmark *sql.Stmt
	getBookmark    *sql.Stmt
}

var _ Store = (*SQLiteStore)(nil)

// Open opens (creating if needed) the database at path and returns a ready
// store that owns the connection. Use ":memory:" for a throwaway database.
func Open(path string) (*SQLiteStore, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, wrap("open", fmt.Errorf("create database directory: %w", err))
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, wrap("open", err)
	}
	// The store is single-owner; one connection also keeps ":memory:"
	// databases from splitting across the pool.
	db.SetMaxOpenConns(1)

	store, err := NewSQLiteStore(db)
	if err != nil {
		db.Close()
		return nil, err
	}
	store.ownsDB = true
	return store, nil
}

// NewSQLiteStore creates the schema on db if needed and prepares statements.
// The caller keeps ownership of db.
func NewSQLiteStore(db *sql.DB) (*SQLiteStore, error) {
	s := &SQLiteStore{db: db}

	if err := s.CreateTables(context.Background()); err != nil {
		return nil, err
	}

	if err := s.prepareStatements(); err != nil {
		return nil, wrap("prepare statements", err)
	}

	return s, nil
}

// CreateTables applies pending schema migrations. Calling it again is a no-op.
func (s *SQLiteStore) CreateTables(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return wrap("create tables", NewMigrationRunner(s.db).Run())
}

func (s *SQLiteStore) prepareStatements() error {
	var err error

	s.insertHistory, err = s.db.Prepare(`
		INSERT INTO history (address, title, timestamp) VALUES (?, ?, ?)
	`)
	if err != nil {
		return err
	}

	s.deleteHistory, err = s.db.Prepare(`DELETE FROM history WHERE address = ?`)
	if err != nil {
		return err
	}

	s.upsertBookmark, err = s.db.Prepare(`
		INSERT INTO bookmarks (address, title, folder) VALUES (?, ?, ?)
		ON CONFLICT(address) DO UPDATE SET title = excluded.title, folder = excluded.folder
	`)
	if err != nil {
		return err
	}

	s.updateBookmark, err = s.db.Prepare(`
		UPDATE bookmarks SET title = ?, folder = ? WHERE address = ?
	`)
	if err != nil {
		return err
	}

	s.deleteBookmark, err = s.db.Prepare(`DELETE FROM bookmarks WHERE address = ?`)
	if err != nil {
		return err
	}

	s.getBookmark, err = s.db.Prepare(`
		SELECT address, title, folder FROM bookmarks WHERE address = ?
	`)
	if err != nil {
		return err
	}

	return nil
}

// parseTimestamp tries several common SQLite timestamp formats.
func parseTimestamp(s string) (time.Time, error) {
	formats := []string{
		timestampLayout,
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02 15:04:05",
	}
	for _, f := range formats {
		if t, err := time.Parse(f, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse timestamp: %s", s)
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

// AddHistory records a visit. Repeated visits to the same address are kept
// as separate rows. A zero Timestamp is stamped with the current time.
func (s *SQLiteStore) AddHistory(ctx context.Context, item HistoryItem) error {
	if item.Address == "" {
		return ErrEmptyAddress
	}
	if item.Timestamp.IsZero() {
		item.Timestamp = time.Now()
	}

	_, err := s.insertHistory.ExecContext(ctx, item.Address, item.Title, formatTimestamp(item.Timestamp))
	return wrap("add history", err)
}

// RemoveHistory deletes every visit of address. A missing address is a no-op.
func (s *SQLiteStore) RemoveHistory(ctx context.Context, address string) error {
	_, err := s.deleteHistory.ExecContext(ctx, address)
	return wrap("remove history", err)
}

// History returns every visit, newest first.
func (s *SQLiteStore) History(ctx context.Context) ([]HistoryItem, error) {
	return s.scanHistory(ctx, "history", `
		SELECT address, title, timestamp FROM history
		ORDER BY timestamp DESC, rowid DESC
	`)
}

// likeEscaper makes LIKE wildcards in user text match literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// SearchHistory matches query against address and title, newest first.
// A non-positive limit returns every match.
func (s *SQLiteStore) SearchHistory(ctx context.Context, query string, limit int) ([]HistoryItem, error) {
	if limit <= 0 {
		limit = -1
	}
	pattern := "%" + likeEscaper.Replace(query) + "%"
	return s.scanHistory(ctx, "search history", `
		SELECT address, title, timestamp FROM history
		WHERE address LIKE ? ESCAPE '\' OR title LIKE ? ESCAPE '\'
		ORDER BY timestamp DESC, rowid DESC
		LIMIT ?
	`, pattern, pattern, limit)
}

func (s *SQLiteStore) scanHistory(ctx context.Context, op, query string, args ...interface{}) ([]HistoryItem, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrap(op, err)
	}
	defer rows.Close()

	items := []HistoryItem{}
	for rows.Next() {
		var item HistoryItem
		var tsStr string
		if err := rows.Scan(&item.Address, &item.Title, &tsStr); err != nil {
			return nil, wrap(op, err)
		}
		ts, err := parseTimestamp(tsStr)
		if err != nil {
			return nil, wrap(op, err)
		}
		item.Timestamp = ts
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, wrap(op, err)
	}
	return items, nil
}

// ClearHistory deletes all visits.
func (s *SQLiteStore) ClearHistory(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM history")
	return wrap("clear history", err)
}

// PruneHistory deletes visits older than olderThan and reports how many.
func (s *SQLiteStore) PruneHistory(ctx context.Context, olderThan time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM history WHERE timestamp < ?", formatTimestamp(olderThan))
	if err != nil {
		return 0, wrap("prune history", err)
	}
	n, err := res.RowsAffected()
	return n, wrap("prune history", err)
}

// AddBookmark saves item, replacing the title and folder of an existing
// bookmark for the same address.
func (s *SQLiteStore) AddBookmark(ctx context.Context, item BookmarkItem) error {
	if item.Address == "" {
		return ErrEmptyAddress
	}
	_, err := s.upsertBookmark.ExecContext(ctx, item.Address, item.Title, item.Folder)
	return wrap("add bookmark", err)
}

// RemoveBookmark deletes the bookmark for address. A missing address is a no-op.
func (s *SQLiteStore) RemoveBookmark(ctx context.Context, address string) error {
	_, err := s.deleteBookmark.ExecContext(ctx, address)
	return wrap("remove bookmark", err)
}

// UpdateBookmark rewrites title and folder of the bookmark at item.Address.
// Nothing is created when the address is not bookmarked.
func (s *SQLiteStore) UpdateBookmark(ctx context.Context, item BookmarkItem) error {
	_, err := s.updateBookmark.ExecContext(ctx, item.Title, item.Folder, item.Address)
	return wrap("update bookmark", err)
}

// Bookmarks returns the bookmarks tagged with folder, ordered by title.
// An empty folder returns every bookmark.
func (s *SQLiteStore) Bookmarks(ctx context.Context, folder string) ([]BookmarkItem, error) {
	query := "SELECT address, title, folder FROM bookmarks"
	var args []interface{}
	if folder != "" {
		query += " WHERE folder = ?"
		args = append(args, folder)
	}
	query += " ORDER BY title, address"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrap("bookmarks", err)
	}
	defer rows.Close()

	items := []BookmarkItem{}
	for rows.Next() {
		var item BookmarkItem
		if err := rows.Scan(&item.Address, &item.Title, &item.Folder); err != nil {
			return nil, wrap("bookmarks", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, wrap("bookmarks", err)
	}
	return items, nil
}

// BookmarkFolders returns each folder name in use exactly once, sorted.
func (s *SQLiteStore) BookmarkFolders(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT DISTINCT folder FROM bookmarks ORDER BY folder")
	if err != nil {
		return nil, wrap("bookmark folders", err)
	}
	defer rows.Close()

	folders := []string{}
	for rows.Next() {
		var f string
		if err := rows.Scan(&f); err != nil {
			return nil, wrap("bookmark folders", err)
		}
		folders = append(folders, f)
	}

	if err := rows.Err(); err != nil {
		return nil, wrap("bookmark folders", err)
	}
	return folders, nil
}

// IsBookmarked looks up the bookmark for address. When there is none it
// returns the zero BookmarkItem and false.
func (s *SQLiteStore) IsBookmarked(ctx context.Context, address string) (BookmarkItem, bool, error) {
	var item BookmarkItem
	err := s.getBookmark.QueryRowContext(ctx, address).Scan(&item.Address, &item.Title, &item.Folder)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return BookmarkItem{}, false, nil
		}
		return BookmarkItem{}, false, wrap("is bookmarked", err)
	}
	return item, true, nil
}

// Stats returns aggregate counts about the database.
func (s *SQLiteStore) Stats(ctx context.Context) (*Stats, error) {
	stats := &Stats{}

	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*), COUNT(DISTINCT address) FROM history",
	).Scan(&stats.HistoryEntries, &stats.DistinctAddresses)
	if err != nil {
		return nil, wrap("count history", err)
	}

	err = s.db.QueryRowContext(ctx,
		"SELECT COUNT(*), COUNT(DISTINCT folder) FROM bookmarks",
	).Scan(&stats.Bookmarks, &stats.Folders)
	if err != nil {
		return nil, wrap("count bookmarks", err)
	}

	if stats.HistoryEntries > 0 {
		var oldestStr, newestStr string
		err = s.db.QueryRowContext(ctx, "SELECT MIN(timestamp), MAX(timestamp) FROM history").Scan(&oldestStr, &newestStr)
		if err != nil {
			return nil, wrap("history time range", err)
		}
		if stats.OldestVisit, err = parseTimestamp(oldestStr); err != nil {
			return nil, wrap("history time range", err)
		}
		if stats.NewestVisit, err = parseTimestamp(newestStr); err != nil {
			return nil, wrap("history time range", err)
		}
	}

	var pageCount, pageSize int64
	if err := s.db.QueryRowContext(ctx, "PRAGMA page_count").Scan(&pageCount); err == nil {
		if err := s.db.QueryRowContext(ctx, "PRAGMA page_size").Scan(&pageSize); err == nil {
			stats.DatabaseSizeBytes = pageCount * pageSize
		}
	}

	return stats, nil
}

// Close releases all prepared statements, and the database itself when the
// store was created by Open.
func (s *SQLiteStore) Close() error {
	var err error
	stmts := []*sql.Stmt{
		s.insertHistory, s.deleteHistory, s.upsertBookmark,
		s.updateBookmark, s.deleteBookmark, s.getBookmark,
	}
	for _, stmt := range stmts {
		if stmt != nil {
			err = multierr.Append(err, stmt.Close())
		}
	}
	if s.ownsDB {
		err = multierr.Append(err, s.db.Close())
	}
	return err
}
