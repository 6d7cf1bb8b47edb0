//go:build integration
// +build integration

package order_repo_test

import (
	"context"
	"fmt"
	"os"
	"testing"

	"paygate/internal/testinfra"
	"paygate/pkg/postgres"
)

var (
	pool      *postgres.Postgres
	container *testinfra.PostgresContainer
)

func TestMain(m *testing.M) {
	ctx := context.Background()

	pgContainer, err := testinfra.NewPostgres(ctx)
	if err != nil {
		panic(fmt.Sprintf("Failed to start postgres container: %v", err))
	}

	container = pgContainer
	pool = pgContainer.Pool

	code := m.Run()

	pgContainer.Cleanup(ctx)
	os.Exit(code)
}

func truncate(t *testing.T) {
	t.Helper()
	if err := container.Truncate(context.Background()); err != nil {
		t.Fatalf("truncate: %v", err)
	}
}
