package database

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigDSN(t *testing.T) {
	cfg := Config{Host: "db", Port: "5432", User: "market", Password: "secret", DBName: "ticket_marketplace"}
	assert.Equal(t, "postgres://market:secret@db:5432/ticket_marketplace?sslmode=disable", cfg.DSN())

	cfg.SSLMode = "require"
	assert.Equal(t, "postgres://market:secret@db:5432/ticket_marketplace?sslmode=require", cfg.DSN())
}

func TestConfigDSN_EscapesCredentials(t *testing.T) {
	cfg := Config{Host: "db", Port: "5432", User: "market", Password: "p@ss/w:rd", DBName: "ticket_marketplace"}

	dsn := cfg.DSN()
	assert.Equal(t, "postgres://market:p%40ss%2Fw%3Ard@db:5432/ticket_marketplace?sslmode=disable", dsn)

	u, err := url.Parse(dsn)
	require.NoError(t, err)
	password, _ := u.User.Password()
	assert.Equal(t, "p@ss/w:rd", password)
	assert.Equal(t, "db:5432", u.Host)
}
