package registry

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type stepClock struct {
	t time.Time
}

func (c *stepClock) now() time.Time {
	c.t = c.t.Add(time.Second)
	return c.t
}

func newTestStore(t *testing.T) (*Store, *stepClock) {
	t.Helper()
	clock := &stepClock{t: time.Unix(1_700_000_000, 0)}
	path := DefaultPath(t.TempDir())
	return New(path, WithClock(clock.now)), clock
}

func TestUpsertAndListByRecency(t *testing.T) {
	s, _ := newTestStore(t)

	require.NoError(t, s.UpsertProject("/home/u/alpha"))
	require.NoError(t, s.UpsertProject("/home/u/beta"))
	require.NoError(t, s.UpsertProject("/home/u/gamma"))
	require.NoError(t, s.TouchProject("/home/u/alpha"))

	projects, err := s.ListProjects()
	require.NoError(t, err)
	require.Len(t, projects, 3)
	require.Equal(t, "alpha", projects[0].Name)
	require.Equal(t, "gamma", projects[1].Name)
	require.Equal(t, "beta", projects[2].Name)
	require.Equal(t, "alpha (/home/u/alpha)", projects[0].Label())
}

func TestUpsertReplacesExisting(t *testing.T) {
	s, _ := newTestStore(t)

	require.NoError(t, s.UpsertProject("/home/u/alpha"))
	require.NoError(t, s.UpsertProject("/home/u/alpha"))

	projects, err := s.ListProjects()
	require.NoError(t, err)
	require.Len(t, projects, 1)
	require.Equal(t, int64(1_700_000_002), projects[0].LastAccessed)
}

func TestUpsertRejectsRootPath(t *testing.T) {
	s, _ := newTestStore(t)
	require.Error(t, s.UpsertProject("/"))
	require.Error(t, s.UpsertProject(""))
}

func TestTouchUnknownIsNoop(t *testing.T) {
	s, _ := newTestStore(t)

	require.NoError(t, s.TouchProject("/home/u/nowhere"))
	_, err := os.Stat(s.Path())
	require.ErrorIs(t, err, os.ErrNotExist, "touching an unknown project must not create the file")
}

func TestListMissingFileIsEmpty(t *testing.T) {
	s, _ := newTestStore(t)

	projects, err := s.ListProjects()
	require.NoError(t, err)
	require.Empty(t, projects)
}

func TestCorruptFileIsAnError(t *testing.T) {
	s, _ := newTestStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(s.Path()), 0o755))
	require.NoError(t, os.WriteFile(s.Path(), []byte("{not json"), 0o644))

	_, err := s.ListProjects()
	require.Error(t, err)
	require.Error(t, s.UpsertProject("/home/u/alpha"))
}

func TestReadsExistingFileFormat(t *testing.T) {
	s, _ := newTestStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(s.Path()), 0o755))
	raw := `{
  "projects": {
    "/src/proj": {"path": "/src/proj", "name": "proj", "last_accessed": 1712345678}
  }
}`
	require.NoError(t, os.WriteFile(s.Path(), []byte(raw), 0o644))

	projects, err := s.ListProjects()
	require.NoError(t, err)
	require.Equal(t, []Project{{Path: "/src/proj", Name: "proj", LastAccessed: 1712345678}}, projects)
}

// Two processes that both read before either writes: the later write wins
// and the earlier project is lost. Mutations are not locked.
func TestConcurrentWritersLoseUpdates(t *testing.T) {
	path := DefaultPath(t.TempDir())
	first := New(path)
	second := New(path)

	dbFirst, err := first.load()
	require.NoError(t, err)
	dbSecond, err := second.load()
	require.NoError(t, err)

	dbFirst.Projects["/home/u/alpha"] = Project{Path: "/home/u/alpha", Name: "alpha", LastAccessed: 1}
	require.NoError(t, first.save(dbFirst))
	dbSecond.Projects["/home/u/beta"] = Project{Path: "/home/u/beta", Name: "beta", LastAccessed: 2}
	require.NoError(t, second.save(dbSecond))

	projects, err := New(path).ListProjects()
	require.NoError(t, err)
	require.Len(t, projects, 1)
	require.Equal(t, "beta", projects[0].Name)
}
