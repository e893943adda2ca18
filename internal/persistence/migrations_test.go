package persistence

import (
	"errors"
	"io/fs"
	"strings"
	"testing"

	"github.com/golang-migrate/migrate/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubMigrate struct {
	upErr      error
	downErr    error
	version    uint
	dirty      bool
	versionErr error
}

func (s *stubMigrate) Up() error                    { return s.upErr }
func (s *stubMigrate) Down() error                  { return s.downErr }
func (s *stubMigrate) Version() (uint, bool, error) { return s.version, s.dirty, s.versionErr }
func (s *stubMigrate) Close() (error, error)        { return nil, nil }

func TestMigrateURL(t *testing.T) {
	tests := map[string]string{
		"postgres://u:p@localhost:5432/db":   "pgx5://u:p@localhost:5432/db",
		"postgresql://u:p@localhost:5432/db": "pgx5://u:p@localhost:5432/db",
		"pgx5://localhost/db":                "pgx5://localhost/db",
	}
	for in, want := range tests {
		assert.Equal(t, want, migrateURL(in), in)
	}
}

func TestNewMigratorRequiresDSN(t *testing.T) {
	_, err := NewMigrator("", zap.NewNop())
	require.Error(t, err)
}

func TestNewMigratorUnknownScheme(t *testing.T) {
	_, err := NewMigrator("badscheme://localhost:5432/db", zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "init migrator")
}

func TestMigratorUp(t *testing.T) {
	tests := []struct {
		name    string
		upErr   error
		wantErr bool
	}{
		{name: "applied"},
		{name: "no change", upErr: migrate.ErrNoChange},
		{name: "failure", upErr: errors.New("database locked"), wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &Migrator{m: &stubMigrate{upErr: tt.upErr}, logger: zap.NewNop()}
			err := m.Up()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMigratorVersion(t *testing.T) {
	m := &Migrator{m: &stubMigrate{versionErr: migrate.ErrNilVersion}, logger: zap.NewNop()}
	version, dirty, err := m.Version()
	require.NoError(t, err)
	assert.Zero(t, version)
	assert.False(t, dirty)

	m = &Migrator{m: &stubMigrate{version: 2}, logger: zap.NewNop()}
	version, _, err = m.Version()
	require.NoError(t, err)
	assert.Equal(t, uint(2), version)
}

func TestEmbeddedMigrationsArePaired(t *testing.T) {
	entries, err := fs.ReadDir(migrationsFS, "migrations")
	require.NoError(t, err)

	ups, downs := map[string]bool{}, map[string]bool{}
	for _, e := range entries {
		name := e.Name()
		switch {
		case strings.HasSuffix(name, ".up.sql"):
			ups[strings.TrimSuffix(name, ".up.sql")] = true
		case strings.HasSuffix(name, ".down.sql"):
			downs[strings.TrimSuffix(name, ".down.sql")] = true
		}
	}
	require.NotEmpty(t, ups)
	assert.Equal(t, ups, downs)

	schema, err := fs.ReadFile(migrationsFS, "migrations/000001_create_users.up.sql")
	require.NoError(t, err)
	assert.Contains(t, string(schema), "email      VARCHAR(255) NOT NULL UNIQUE")
}
