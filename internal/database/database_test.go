package database

import (
	"path/filepath"
	"testing"

	"staybook/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectSQLiteAndMigrate(t *testing.T) {
	db, err := Connect(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	city := domain.City{Name: "Berlin"}
	require.NoError(t, db.Create(&city).Error)

	var got domain.City
	require.NoError(t, db.First(&got, city.ID).Error)
	assert.Equal(t, "Berlin", got.Name)
}
