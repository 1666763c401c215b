package registry

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	StateDirName = ".wt-manager"
	fileName     = "db.json"
)

// Project is one saved repository. LastAccessed is Unix seconds.
type Project struct {
	Path         string `json:"path"`
	Name         string `json:"name"`
	LastAccessed int64  `json:"last_accessed"`
}

// Label is how the project shows up in the selector.
func (p Project) Label() string {
	return p.Name + " (" + p.Path + ")"
}

type database struct {
	Projects map[string]Project `json:"projects"`
}

// Store is a JSON file of projects keyed by absolute path. Every mutation
// reads and rewrites the whole file without locking, so two processes
// writing at once can lose an update.
type Store struct {
	path string
	now  func() time.Time
	log  *zap.Logger
}

type Option func(*Store)

func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func WithLogger(log *zap.Logger) Option {
	return func(s *Store) {
		if log != nil {
			s.log = log.Named("registry")
		}
	}
}

func New(path string, opts ...Option) *Store {
	s := &Store{path: path, now: time.Now, log: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// StateDir is where wt keeps its registry, config and logs.
func StateDir(home string) string {
	return filepath.Join(home, StateDirName)
}

func DefaultPath(home string) string {
	return filepath.Join(StateDir(home), fileName)
}

func (s *Store) Path() string {
	return s.path
}

// UpsertProject records repoPath with its final path segment as name and
// stamps it as just accessed.
func (s *Store) UpsertProject(repoPath string) error {
	name := filepath.Base(filepath.Clean(repoPath))
	if strings.TrimSpace(repoPath) == "" || name == "." || name == string(filepath.Separator) {
		return fmt.Errorf("invalid repository path %q", repoPath)
	}
	db, err := s.load()
	if err != nil {
		return err
	}
	db.Projects[repoPath] = Project{
		Path:         repoPath,
		Name:         name,
		LastAccessed: s.now().Unix(),
	}
	s.log.Debug("upsert project", zap.String("path", repoPath))
	return s.save(db)
}

// ListProjects returns every project, most recently accessed first.
func (s *Store) ListProjects() ([]Project, error) {
	db, err := s.load()
	if err != nil {
		return nil, err
	}
	out := make([]Project, 0, len(db.Projects))
	for _, p := range db.Projects {
		out = append(out, p)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].LastAccessed != out[j].LastAccessed {
			return out[i].LastAccessed > out[j].LastAccessed
		}
		return out[i].Path < out[j].Path
	})
	return out, nil
}

// TouchProject bumps LastAccessed for a known project. Unknown paths are
// left alone and the file is not rewritten.
func (s *Store) TouchProject(repoPath string) error {
	db, err := s.load()
	if err != nil {
		return err
	}
	p, ok := db.Projects[repoPath]
	if !ok {
		s.log.Debug("touch skipped for unknown project", zap.String("path", repoPath))
		return nil
	}
	p.LastAccessed = s.now().Unix()
	db.Projects[repoPath] = p
	return s.save(db)
}

func (s *Store) load() (database, error) {
	db := database{Projects: map[string]Project{}}
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return db, nil
	}
	if err != nil {
		return db, fmt.Errorf("read project registry: %w", err)
	}
	if err := json.Unmarshal(data, &db); err != nil {
		return db, fmt.Errorf("parse project registry %s: %w", s.path, err)
	}
	if db.Projects == nil {
		db.Projects = map[string]Project{}
	}
	return db, nil
}

func (s *Store) save(db database) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create registry directory: %w", err)
	}
	data, err := json.MarshalIndent(db, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write project registry: %w", err)
	}
	return nil
}
