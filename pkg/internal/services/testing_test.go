package services

import (
	"fmt"
	"testing"

	localCache "github.com/pulseworks/pulsecheck/pkg/internal/cache"
	"github.com/pulseworks/pulsecheck/pkg/internal/database"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// useTestDatabase points database.C at a fresh in-memory sqlite source
// for the duration of one test.
func useTestDatabase(t *testing.T) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	source, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("unable to open test database: %v", err)
	}
	if err := database.RunMigration(source); err != nil {
		t.Fatalf("unable to migrate test database: %v", err)
	}

	previous := database.C
	database.C = source
	t.Cleanup(func() {
		database.C = previous
	})

	if localCache.S == nil {
		if err := localCache.NewStore(); err != nil {
			t.Fatalf("unable to initialize cache store: %v", err)
		}
	}
	if err := FlushDepartmentSizesCache(); err != nil {
		t.Fatalf("unable to flush department cache: %v", err)
	}
}
