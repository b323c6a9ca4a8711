package storage

import "time"

// HistoryItem is one committed navigation.
type HistoryItem struct {
	Address   string
	Title     string
	Timestamp time.Time
}

// BookmarkItem is a saved page. Folder is a flat tag; the empty string is
// the unfiled folder.
type BookmarkItem struct {
	Address string
	Title   string
	Folder  string
}

// Stats holds aggregate counts about the profile database.
type Stats struct {
	HistoryEntries    int64
	DistinctAddresses int64
	Bookmarks         int64
	Folders           int64
	OldestVisit       time.Time
	NewestVisit       time.Time
	DatabaseSizeBytes int64
}
