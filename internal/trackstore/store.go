package trackstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"crate/internal/config"
	"crate/internal/library"
)

// Store manages track persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the track database and applies migrations.
func Open(cfg *config.Config) (*Store, error) {
	dbPath := cfg.Paths.DatabasePath
	if dir := filepath.Dir(dbPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath}
	if err := store.applyMigrations(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// Upsert inserts a track row or refreshes the existing row sharing its file
// path, returning the stable row identifier either way.
func (s *Store) Upsert(ctx context.Context, row library.Row) (int64, error) {
	if strings.TrimSpace(row.Path) == "" {
		return 0, errors.New("track path is empty")
	}

	timestamp := time.Now().UTC().Format(time.RFC3339Nano)
	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO tracks (
            path, title, artist, album, album_artist, genre, year,
            album_group_id, content_type, disc_number, track_number,
            duration_ms, created_at, updated_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
        ON CONFLICT(path) DO UPDATE SET
            title = excluded.title,
            artist = excluded.artist,
            album = excluded.album,
            album_artist = excluded.album_artist,
            genre = excluded.genre,
            year = excluded.year,
            album_group_id = excluded.album_group_id,
            content_type = excluded.content_type,
            disc_number = excluded.disc_number,
            track_number = excluded.track_number,
            duration_ms = excluded.duration_ms,
            updated_at = excluded.updated_at`,
		row.Path,
		row.Title,
		row.Artist,
		row.Album,
		nullableString(row.AlbumArtist),
		nullableString(row.Genre),
		row.Year,
		row.AlbumGroupID,
		row.ContentType,
		row.DiscNumber,
		row.TrackNumber,
		row.DurationMS,
		timestamp,
		timestamp,
	)
	if err != nil {
		return 0, fmt.Errorf("upsert track: %w", err)
	}

	var id int64
	if err := s.db.QueryRowContext(ctx, `SELECT id FROM tracks WHERE path = ?`, row.Path).Scan(&id); err != nil {
		return 0, fmt.Errorf("resolve track id: %w", err)
	}
	return id, nil
}

// Rows returns every stored track ordered by title, the ordering the indexer
// expects from its row source. Ties fall back to the row identifier so
// repeated reads stay deterministic.
func (s *Store) Rows(ctx context.Context) ([]library.Row, error) {
	result, err := s.db.QueryContext(
		ctx,
		`SELECT `+trackColumns+` FROM tracks ORDER BY title, id`,
	)
	if err != nil {
		return nil, fmt.Errorf("query tracks: %w", err)
	}
	defer result.Close()

	var rows []library.Row
	for result.Next() {
		row, err := scanRow(result)
		if err != nil {
			return nil, fmt.Errorf("scan track: %w", err)
		}
		rows = append(rows, row)
	}
	if err := result.Err(); err != nil {
		return nil, fmt.Errorf("iterate tracks: %w", err)
	}
	return rows, nil
}

// GetByPath fetches one track row by file path. A missing path returns
// sql.ErrNoRows wrapped in the returned error.
func (s *Store) GetByPath(ctx context.Context, path string) (library.Row, error) {
	result := s.db.QueryRowContext(ctx, `SELECT `+trackColumns+` FROM tracks WHERE path = ?`, path)
	row, err := scanRow(result)
	if err != nil {
		return library.Row{}, fmt.Errorf("get track by path: %w", err)
	}
	return row, nil
}

// DeleteMissing removes rows whose file paths are absent from seen and
// reports how many were pruned. An empty seen set clears the store.
func (s *Store) DeleteMissing(ctx context.Context, seen map[string]struct{}) (int64, error) {
	paths, err := s.allPaths(ctx)
	if err != nil {
		return 0, err
	}

	var pruned int64
	for _, path := range paths {
		if _, ok := seen[path]; ok {
			continue
		}
		res, err := s.db.ExecContext(ctx, `DELETE FROM tracks WHERE path = ?`, path)
		if err != nil {
			return pruned, fmt.Errorf("delete track %q: %w", path, err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return pruned, fmt.Errorf("rows affected: %w", err)
		}
		pruned += affected
	}
	return pruned, nil
}

// Count reports the number of stored track rows.
func (s *Store) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM tracks`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count tracks: %w", err)
	}
	return count, nil
}

func (s *Store) allPaths(ctx context.Context) ([]string, error) {
	result, err := s.db.QueryContext(ctx, `SELECT path FROM tracks ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query track paths: %w", err)
	}
	defer result.Close()

	var paths []string
	for result.Next() {
		var path string
		if err := result.Scan(&path); err != nil {
			return nil, fmt.Errorf("scan track path: %w", err)
		}
		paths = append(paths, path)
	}
	if err := result.Err(); err != nil {
		return nil, fmt.Errorf("iterate track paths: %w", err)
	}
	return paths, nil
}
