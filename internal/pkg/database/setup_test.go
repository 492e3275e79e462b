package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDSNMySQL(t *testing.T) {
	t.Setenv("DB_USER", "notaris")
	t.Setenv("DB_PASSWORD", "rahasia")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "3307")
	t.Setenv("DB_NAME", "notaris")

	dsn, err := DSN(DriverMySQL)
	require.NoError(t, err)
	assert.Equal(t, "notaris:rahasia@tcp(db:3307)/notaris?charset=utf8mb4&parseTime=True&loc=Local", dsn)
}

func TestDSNPostgres(t *testing.T) {
	t.Setenv("DB_USER", "notaris")
	t.Setenv("DB_PASSWORD", "rahasia")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_NAME", "notaris")
	t.Setenv("DB_SSLMODE", "require")

	dsn, err := DSN(DriverPostgres)
	require.NoError(t, err)
	assert.Equal(t, "host=db user=notaris password=rahasia dbname=notaris port=5432 sslmode=require TimeZone=UTC", dsn)
}

func TestDSNUnknownDriver(t *testing.T) {
	_, err := DSN("sqlite")
	assert.Error(t, err)
}

func TestPingWithoutConnection(t *testing.T) {
	DB = nil
	assert.NoError(t, Ping())
}
