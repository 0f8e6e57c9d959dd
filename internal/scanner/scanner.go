package scanner

import (
	"context"
	"io/fs"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"crate/internal/artwork"
	"crate/internal/config"
	"crate/internal/library"
	"crate/internal/logging"
	"crate/internal/services"
	"crate/internal/trackstore"
)

// Scanner refreshes the track store from the files under the library root.
type Scanner struct {
	cfg    *config.Config
	store  *trackstore.Store
	covers *artwork.Cache
	logger *slog.Logger
}

// Summary reports the outcome of one scan run.
type Summary struct {
	RunID      string        `json:"run_id"`
	Discovered int           `json:"discovered"`
	Stored     int           `json:"stored"`
	TagErrors  int           `json:"tag_errors"`
	Covers     int           `json:"covers"`
	Pruned     int64         `json:"pruned"`
	Elapsed    time.Duration `json:"elapsed"`
}

// New constructs a scanner. The artwork cache may be nil to skip cover
// extraction.
func New(cfg *config.Config, store *trackstore.Store, covers *artwork.Cache, logger *slog.Logger) *Scanner {
	return &Scanner{
		cfg:    cfg,
		store:  store,
		covers: covers,
		logger: logging.NewComponentLogger(logger, "scanner"),
	}
}

// Scan walks the library root, extracts metadata concurrently, upserts one
// row per recognized file, and prunes rows whose files vanished. The store is
// only written from the collecting goroutine; workers do pure extraction.
func (s *Scanner) Scan(ctx context.Context) (*Summary, error) {
	started := time.Now()
	runID := uuid.NewString()
	ctx = services.WithRunID(ctx, runID)

	paths, err := s.discover()
	if err != nil {
		return nil, services.Wrap(services.ErrScan, "scanner", "discover", "walk library root", err)
	}

	s.logger.Info("scan started",
		logging.String(logging.FieldRunID, runID),
		logging.String("library_dir", s.cfg.Paths.LibraryDir),
		logging.Int("files", len(paths)),
	)

	results := make([]extraction, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.Scan.Workers)
	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = extract(path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, services.Wrap(services.ErrScan, "scanner", "extract", "read track metadata", err)
	}

	summary := &Summary{RunID: runID, Discovered: len(paths)}
	seen := make(map[string]struct{}, len(paths))
	for _, result := range results {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if result.tagErr != nil {
			summary.TagErrors++
			s.logger.Debug("tag read failed, using filename metadata",
				logging.String(logging.FieldTrackPath, result.row.Path),
				logging.Error(result.tagErr),
			)
		}
		if _, err := s.store.Upsert(ctx, result.row); err != nil {
			return nil, services.Wrap(services.ErrDatabase, "scanner", "upsert", "store track row", err)
		}
		summary.Stored++
		seen[result.row.Path] = struct{}{}
		s.cacheCover(result.row, result.picture, summary)
	}

	pruned, err := s.store.DeleteMissing(ctx, seen)
	if err != nil {
		return nil, services.Wrap(services.ErrDatabase, "scanner", "prune", "remove vanished rows", err)
	}
	summary.Pruned = pruned
	summary.Elapsed = time.Since(started)

	s.logger.Info("scan finished",
		logging.String(logging.FieldRunID, runID),
		logging.Int("stored", summary.Stored),
		logging.Int("tag_errors", summary.TagErrors),
		logging.Int("covers", summary.Covers),
		logging.Int64("pruned", summary.Pruned),
		logging.Duration("elapsed", summary.Elapsed),
	)
	return summary, nil
}

// discover walks the library root collecting recognized audio files in
// lexical walk order. Unreadable subtrees abort the walk; a missing root is
// surfaced to the caller rather than treated as an empty library.
func (s *Scanner) discover() ([]string, error) {
	var paths []string
	err := filepath.WalkDir(s.cfg.Paths.LibraryDir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return nil
		}
		if s.cfg.RecognizesExtension(filepath.Ext(path)) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return paths, nil
}

func (s *Scanner) cacheCover(row library.Row, picture []byte, summary *Summary) {
	if s.covers == nil || len(picture) == 0 {
		return
	}
	if s.covers.Has(row.AlbumGroupID) {
		return
	}
	if err := s.covers.Store(row.AlbumGroupID, picture); err != nil {
		s.logger.Debug("cover extraction skipped",
			logging.String(logging.FieldTrackPath, row.Path),
			logging.Int64("album_group_id", row.AlbumGroupID),
			logging.Error(err),
		)
		return
	}
	summary.Covers++
}
