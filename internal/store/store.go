package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/shuishan-lab/clad-core/internal/config"
	"github.com/shuishan-lab/clad-core/internal/models"
	"github.com/shuishan-lab/clad-core/internal/observability"
)

// cleanedMarker tags regenerated output files that must not be scanned as
// source documents.
const cleanedMarker = "_cleaned"

// Stats is a snapshot of store counters for observability.
type Stats struct {
	TotalFiles      int     `json:"total_files"`
	TotalCourses    int     `json:"total_courses"`
	CachedCourses   int     `json:"cached_courses"`
	LoadErrorFiles  int     `json:"load_error_files"`
	LastScanSeconds float64 `json:"last_scan_seconds"`
}

// CourseStore discovers course documents in a directory, indexes them by
// course id, and serves normalized Courses through a bounded LRU cache.
// All mutable state (index, cache, error log) sits behind one mutex; cache
// hits mutate recency order, so even read paths take the lock.
type CourseStore struct {
	dataDir     string
	eagerLoad   bool
	enableFuzzy bool
	logger      zerolog.Logger

	mu         sync.Mutex
	cache      *lruCache
	index      map[string]string // course_id -> file path
	indexOrder []string          // course ids in discovery order
	loadErrors map[string]string // file name -> failure reason
	totalFiles int
	lastScan   time.Duration
}

// New builds a store and runs the initial scan. A missing data directory is
// the only construction error; per-file failures degrade to entries in the
// load-error log instead.
func New(cfg config.Config, logger zerolog.Logger) (*CourseStore, error) {
	s := &CourseStore{
		dataDir:     cfg.DataDir,
		eagerLoad:   cfg.EagerLoad,
		enableFuzzy: cfg.EnableFuzzy,
		logger:      logger.With().Str("component", "course_store").Logger(),
		cache:       newLRUCache(cfg.MaxCacheSize),
		index:       make(map[string]string),
		loadErrors:  make(map[string]string),
	}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload re-scans the data directory from scratch, discarding the cache, the
// identifier index and all recorded load errors.
func (s *CourseStore) Reload() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scanLocked()
}

// Get resolves a course through an ordered matching ladder: cache, exact
// index, file name or stem, then optional fuzzy matching. It returns nil when
// nothing matches unambiguously; an ambiguous match is never guessed at.
func (s *CourseStore) Get(courseID string) *models.Course {
	courseID = strings.TrimSpace(courseID)
	if courseID == "" {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getLocked(courseID)
}

// List returns every known course. In lazy mode it first forces every indexed
// document through normalization so the result is complete.
func (s *CourseStore) List() []*models.Course {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.eagerLoad {
		for _, courseID := range s.indexOrder {
			s.getLocked(courseID)
		}
	}
	return s.cache.Values()
}

// LoadErrors returns a snapshot of per-file failure reasons accumulated since
// the last scan.
func (s *CourseStore) LoadErrors() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()

	errs := make(map[string]string, len(s.loadErrors))
	for name, reason := range s.loadErrors {
		errs[name] = reason
	}
	return errs
}

// Stats returns a snapshot of store counters.
func (s *CourseStore) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Stats{
		TotalFiles:      s.totalFiles,
		TotalCourses:    len(s.index),
		CachedCourses:   s.cache.Len(),
		LoadErrorFiles:  len(s.loadErrors),
		LastScanSeconds: s.lastScan.Seconds(),
	}
}

func (s *CourseStore) scanLocked() error {
	start := time.Now()

	if info, err := os.Stat(s.dataDir); err != nil || !info.IsDir() {
		return fmt.Errorf("data directory does not exist: %s", s.dataDir)
	}

	matches, err := filepath.Glob(filepath.Join(s.dataDir, "*.json"))
	if err != nil {
		return fmt.Errorf("scan data directory: %w", err)
	}

	s.index = make(map[string]string)
	s.indexOrder = nil
	s.loadErrors = make(map[string]string)
	s.cache.Purge()
	s.totalFiles = 0

	for _, path := range matches {
		name := filepath.Base(path)
		if strings.Contains(name, cleanedMarker) {
			continue
		}
		s.totalFiles++

		courseID, err := extractCourseID(path)
		if err != nil {
			s.recordLoadError(name, err.Error())
			continue
		}

		if existing, ok := s.index[courseID]; ok {
			// First-discovered file wins; the conflict is recorded, not fatal.
			s.recordLoadError(name, fmt.Sprintf(
				"duplicate course_id %q, already provided by %s", courseID, filepath.Base(existing)))
			continue
		}

		s.index[courseID] = path
		s.indexOrder = append(s.indexOrder, courseID)

		if s.eagerLoad {
			if course := s.loadCourse(path, courseID); course != nil {
				s.addToCache(course.CourseID, course)
			}
		}
	}

	s.lastScan = time.Since(start)
	observability.ScanDuration().Observe(s.lastScan.Seconds())

	s.logger.Info().
		Str("data_dir", s.dataDir).
		Int("total_files", s.totalFiles).
		Int("total_courses", len(s.index)).
		Int("cached_courses", s.cache.Len()).
		Dur("scan_duration", s.lastScan).
		Msg("data directory scan complete")

	return nil
}

func (s *CourseStore) getLocked(courseID string) *models.Course {
	// 1. Exact hit in the bounded cache.
	if course, ok := s.cache.Get(courseID); ok {
		observability.CacheLookups().WithLabelValues("hit").Inc()
		return course
	}
	observability.CacheLookups().WithLabelValues("miss").Inc()

	// 2. Exact hit in the identifier index.
	if _, ok := s.index[courseID]; ok {
		return s.loadIndexed(courseID)
	}

	// 3. Exact match against a source file name or stem.
	var fileMatches []string
	for _, candidate := range s.indexOrder {
		name := filepath.Base(s.index[candidate])
		stem := strings.TrimSuffix(name, filepath.Ext(name))
		if courseID == name || courseID == stem {
			fileMatches = append(fileMatches, candidate)
		}
	}
	if len(fileMatches) == 1 {
		return s.resolveCandidate(fileMatches[0])
	}
	if len(fileMatches) > 1 {
		s.logger.Warn().
			Str("course_id", courseID).
			Strs("candidates", fileMatches).
			Msg("file name matches multiple courses, refusing to guess")
		return nil
	}

	// 4. Optional fuzzy resolution: prefix first, substring only when no
	// prefix candidate exists, and never more than one candidate.
	if s.enableFuzzy {
		var candidates []string
		for _, candidate := range s.indexOrder {
			if strings.HasPrefix(candidate, courseID) {
				candidates = append(candidates, candidate)
			}
		}
		if len(candidates) == 0 {
			for _, candidate := range s.indexOrder {
				if strings.Contains(candidate, courseID) {
					candidates = append(candidates, candidate)
				}
			}
		}
		if len(candidates) == 1 {
			s.logger.Info().
				Str("course_id", courseID).
				Str("resolved", candidates[0]).
				Msg("fuzzy match resolved course")
			return s.resolveCandidate(candidates[0])
		}
		if len(candidates) > 1 {
			s.logger.Warn().
				Str("course_id", courseID).
				Strs("candidates", candidates).
				Msg("fuzzy match is ambiguous, refusing to guess")
			return nil
		}
	}

	s.logger.Debug().Str("course_id", courseID).Msg("no matching course")
	return nil
}

// resolveCandidate serves an already-validated index entry, from cache when
// resident.
func (s *CourseStore) resolveCandidate(courseID string) *models.Course {
	if course, ok := s.cache.Get(courseID); ok {
		observability.CacheLookups().WithLabelValues("hit").Inc()
		return course
	}
	return s.loadIndexed(courseID)
}

func (s *CourseStore) loadIndexed(courseID string) *models.Course {
	course := s.loadCourse(s.index[courseID], courseID)
	if course == nil {
		return nil
	}
	s.addToCache(course.CourseID, course)
	return course
}

// loadCourse normalizes one document from disk. Failures are recorded in the
// load-error log and surfaced as nil; disk reads are not retried here.
func (s *CourseStore) loadCourse(path, courseIDHint string) *models.Course {
	raw, err := decodeDocument(path)
	if err != nil {
		s.recordLoadError(filepath.Base(path), err.Error())
		observability.CourseLoads().WithLabelValues("error").Inc()
		s.logger.Error().Err(err).Str("path", path).Msg("failed to load course document")
		return nil
	}

	course := models.CourseFromRaw(raw, filepath.Base(path))

	if courseIDHint != "" && course.CourseID != courseIDHint {
		// The document is authoritative over the index hint.
		s.logger.Warn().
			Str("path", path).
			Str("document_course_id", course.CourseID).
			Str("indexed_course_id", courseIDHint).
			Msg("course_id in document differs from index, using document value")
	}

	observability.CourseLoads().WithLabelValues("ok").Inc()
	return course
}

func (s *CourseStore) addToCache(courseID string, course *models.Course) {
	for _, evicted := range s.cache.Put(courseID, course) {
		observability.CacheEvictions().Inc()
		s.logger.Debug().Str("course_id", evicted).Msg("course cache full, evicted least recently used")
	}
}

func (s *CourseStore) recordLoadError(fileName, reason string) {
	s.loadErrors[fileName] = reason
}

// extractCourseID does the cheap partial parse used to build the index: it
// decodes the document and pulls just the uniqueness key.
func extractCourseID(path string) (string, error) {
	raw, err := decodeDocument(path)
	if err != nil {
		return "", err
	}
	courseID := models.RawCourseID(raw)
	if courseID == "" {
		return "", fmt.Errorf("document is missing a non-empty 'course_id'")
	}
	return courseID, nil
}

func decodeDocument(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}

	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var raw any
	if err := decoder.Decode(&raw); err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}

	object, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("top-level JSON must be an object")
	}
	return object, nil
}
