package container_test

import (
	"testing"

	"github.com/km-arc/modcraft/framework/container"
	"github.com/stretchr/testify/require"
)

// Shared test types and constructors used across test files.

type testConfig struct{ DSN string }

type testDatabase struct{ Config *testConfig }

type testRepo struct {
	DB     *testDatabase
	Unit   *testUnit
	Config *testConfig
}

type testUnit struct{ ID int }

type testService struct {
	Users  *testRepo
	Orders *testRepo
	Unit   *testUnit
}

func newTestConfig() *testConfig { return &testConfig{DSN: "postgres://localhost"} }

func newTestDatabase(cfg *testConfig) *testDatabase { return &testDatabase{Config: cfg} }

func newTestRepo(db *testDatabase, unit *testUnit) *testRepo {
	return &testRepo{DB: db, Unit: unit}
}

func newTestService(users, orders *testRepo, unit *testUnit) *testService {
	return &testService{Users: users, Orders: orders, Unit: unit}
}

// counter returns a factory producing numbered units and a pointer to the
// number of calls made.
func counter() (func() *testUnit, *int) {
	calls := 0
	return func() *testUnit {
		calls++
		return &testUnit{ID: calls}
	}, &calls
}

func mustRegister(t *testing.T, err error) {
	t.Helper()
	require.NoError(t, err)
}

// newGraph registers a small graph: config (instance), db (singleton),
// unit (contextual), repo (transient), service (transient).
func newGraph(t *testing.T) *container.Resolver {
	t.Helper()
	newUnit, _ := counter()

	r := container.New()
	mustRegister(t, r.Instance("config", newTestConfig()))
	mustRegister(t, r.Singleton("db", "config", newTestDatabase))
	mustRegister(t, r.Contextual("unit", newUnit))
	mustRegister(t, r.Transient("repo", []string{"db", "unit"}, newTestRepo))
	mustRegister(t, r.Transient("service", []string{"repo", "repo", "unit"}, newTestService))
	return r
}
