package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oysterkode.backend/internal/config"
	"oysterkode.backend/internal/domain/entities"
	"oysterkode.backend/internal/infrastructure/storage"
	"oysterkode.backend/pkg/crypto"
)

func testDeps(t *testing.T, name string, env map[string]string) (cliDeps, *storage.Store, *bytes.Buffer) {
	t.Helper()
	dbCfg := config.DatabaseConfig{Driver: config.DriverSQLite, SQLDSN: "file:" + name + "?mode=memory&cache=shared"}

	// Holding a connection keeps the shared in-memory database alive between
	// command runs.
	holder, err := storage.Open(context.Background(), dbCfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = holder.Close(context.Background()) })

	out := &bytes.Buffer{}
	return cliDeps{
		loadEnv:   func(...string) error { return nil },
		loadDB:    func() (*config.DatabaseConfig, error) { return &dbCfg, nil },
		openStore: storage.Open,
		getenv:    func(k string) string { return env[k] },
		out:       out,
	}, holder, out
}

func run(d cliDeps, args ...string) error {
	root := newRootCmd(d)
	root.SetArgs(args)
	return root.ExecuteContext(context.Background())
}

func TestCreateAdmin(t *testing.T) {
	d, store, out := testDeps(t, "clubctl_create_admin", nil)

	require.NoError(t, run(d, "create-admin", "--username", "admin", "--password", "longpassword"))
	assert.Contains(t, out.String(), `Administrator "admin" created.`)

	admin, err := store.Admins.GetByUsername(context.Background(), "admin")
	require.NoError(t, err)
	assert.True(t, crypto.CheckPassword("longpassword", admin.PasswordHash))

	out.Reset()
	require.NoError(t, run(d, "create-admin", "--username", "other", "--password", "longpassword"))
	assert.Contains(t, out.String(), "already exists")
	n, err := store.Admins.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestCreateAdmin_FromEnv(t *testing.T) {
	d, store, _ := testDeps(t, "clubctl_create_admin_env", map[string]string{
		"ADMIN_USERNAME": "envadmin",
		"ADMIN_PASSWORD": "longpassword",
	})

	require.NoError(t, run(d, "create-admin"))
	_, err := store.Admins.GetByUsername(context.Background(), "envadmin")
	assert.NoError(t, err)
}

func TestCreateAdmin_Errors(t *testing.T) {
	d, _, _ := testDeps(t, "clubctl_create_admin_err", nil)

	assert.Error(t, run(d, "create-admin", "--username", "admin"))
	assert.Error(t, run(d, "create-admin", "--username", "admin", "--password", "short"))

	d.loadDB = func() (*config.DatabaseConfig, error) { return nil, errors.New("DATABASE_DSN is required") }
	assert.EqualError(t, run(d, "create-admin", "--username", "admin", "--password", "longpassword"), "DATABASE_DSN is required")
}

func TestHashPassword(t *testing.T) {
	d, _, out := testDeps(t, "clubctl_hash", nil)

	require.NoError(t, run(d, "hash-password", "longpassword"))
	hash := bytes.TrimSpace(out.Bytes())
	assert.True(t, crypto.CheckPassword("longpassword", string(hash)))

	assert.Error(t, run(d, "hash-password"))
}

func TestSeed(t *testing.T) {
	d, store, out := testDeps(t, "clubctl_seed", nil)
	ctx := context.Background()

	require.NoError(t, run(d, "seed"))
	assert.Contains(t, out.String(), "Seeded 2 members, 2 projects, 2 events.")

	require.NoError(t, run(d, "seed", "--reset"))
	members, err := store.Members.List(ctx, entities.MemberFilter{})
	require.NoError(t, err)
	assert.Len(t, members, 2)

	events, err := store.Events.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), events)
}
