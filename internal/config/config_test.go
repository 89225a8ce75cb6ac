package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Server.Addr = ":9999"
	cfg.Ledger.LoanRate = 15

	path := filepath.Join(t.TempDir(), "coffer.yaml")
	err := Save(path, cfg)
	require.NoError(t, err)

	got, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, cfg.Server.Addr, got.Server.Addr)
	assert.Equal(t, cfg.Ledger.FixedDepositRate, got.Ledger.FixedDepositRate)
	assert.Equal(t, cfg.Ledger.LoanRate, got.Ledger.LoanRate)
	assert.Equal(t, cfg.Ledger.DecimalPlaces, got.Ledger.DecimalPlaces)
}

func TestDefaults(t *testing.T) {
	cfg := Default()

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, uint64(10), cfg.Ledger.FixedDepositRate)
	assert.Equal(t, uint64(12), cfg.Ledger.LoanRate)
	assert.Equal(t, int32(2), cfg.Ledger.DecimalPlaces)
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestYAMLFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "coffer.yaml")
	err := Save(path, Default())
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, `addr: ":8080"`)
	assert.Contains(t, contents, "fixed_deposit_rate: 10")
	assert.Contains(t, contents, "loan_rate: 12")
	assert.Contains(t, contents, "decimal_places: 2")
}

func TestApplyEnv(t *testing.T) {
	cfg := Default()
	t.Setenv("COFFER_ADDR", ":7070")
	cfg.ApplyEnv()
	assert.Equal(t, ":7070", cfg.Server.Addr)

	t.Setenv("COFFER_ADDR", "")
	cfg.ApplyEnv()
	assert.Equal(t, ":7070", cfg.Server.Addr)
}
