package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenSignKey:  "sign-key",
			TokenIssuer:   "accountgate",
			TokenDuration: time.Hour,
		},
		Storage: Storage{
			DB: DB{Driver: "pgx", DSN: "postgres://localhost:5432/accountgate"},
		},
		Server: Server{
			HTTPAddress: "localhost:8080",
		},
	}
}

func TestValidate_OK(t *testing.T) {
	require.NoError(t, validConfig().validate())
}

func TestValidate_MissingDSN(t *testing.T) {
	cfg := validConfig()
	cfg.Storage.DB.DSN = ""

	assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)
}

func TestValidate_NoAddresses(t *testing.T) {
	cfg := validConfig()
	cfg.Server.HTTPAddress = ""
	cfg.Server.GRPCAddress = ""

	assert.ErrorIs(t, cfg.validate(), ErrInvalidServerConfigs)
}

// TestValidate_GRPCOnly verifies that a gRPC-only deployment does not require
// token settings: tokens are only issued and verified by the HTTP API.
func TestValidate_GRPCOnly(t *testing.T) {
	cfg := validConfig()
	cfg.Server.HTTPAddress = ""
	cfg.Server.GRPCAddress = "localhost:9090"
	cfg.App = App{}

	assert.NoError(t, cfg.validate())
}

func TestValidate_MissingTokenSettings(t *testing.T) {
	cfg := validConfig()
	cfg.App.TokenSignKey = ""

	assert.ErrorIs(t, cfg.validate(), ErrInvalidAppConfigs)
}

func TestValidate_CleanupWithoutRetention(t *testing.T) {
	cfg := validConfig()
	cfg.Workers.CleanupSchedule = "0 3 * * *"

	assert.ErrorIs(t, cfg.validate(), ErrInvalidWorkerConfigs)
}
