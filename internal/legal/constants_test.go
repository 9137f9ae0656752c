package legal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	consts := Defaults()
	assert.Equal(t, 55000.0, consts.CashCeiling)
	assert.Equal(t, 180.0, consts.MaxProbationDays)
	assert.Equal(t, 12.0, consts.MaxDailyHours)
	assert.Equal(t, 7.0, consts.WeekDays)
	assert.Equal(t, 2, consts.WitnessMinimum)
}

func TestLoadDefaultsOnly(t *testing.T) {
	consts, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Defaults(), consts)
}

func TestLoadMissingFileIsNotAnError(t *testing.T) {
	consts, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.Equal(t, Defaults(), consts)
}

func TestLoadFileOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "constants.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"cash_ceiling": 60000, "notice_band_max": 120}`), 0o644))

	consts, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 60000.0, consts.CashCeiling)
	assert.Equal(t, 120.0, consts.NoticeBandMax)
	// Untouched keys keep their defaults.
	assert.Equal(t, 180.0, consts.MaxProbationDays)
}

func TestLoadEnvBeatsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "constants.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"cash_ceiling": 60000}`), 0o644))
	t.Setenv("DOCWIZARD_CASH_CEILING", "70000")

	consts, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 70000.0, consts.CashCeiling)
}

func TestLoadRejectsInvalidFigures(t *testing.T) {
	t.Setenv("DOCWIZARD_MAX_DAILY_HOURS", "0")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid constants")
}

func TestLookup(t *testing.T) {
	consts := Defaults()

	cases := map[string]float64{
		"cashCeiling":      55000,
		"maxProbationDays": 180,
		"maxDailyHours":    12,
		"weekDays":         7,
		"witnessMinimum":   2,
		"noticeBandMin":    30,
		"noticeBandMax":    90,
	}
	for name, want := range cases {
		got, ok := consts.Lookup(name)
		require.True(t, ok, name)
		assert.Equal(t, want, got, name)
	}

	_, ok := consts.Lookup("speedLimit")
	assert.False(t, ok)
}
