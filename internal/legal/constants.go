// Package legal carries the UAE legal and labour-law figures the rule engine
// treats as opaque configured constants. Values ship with defaults, can be
// overridden by a JSON file, and finally by DOCWIZARD_* environment
// variables.
package legal

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Constants holds the configured legal figures. Schema documents reference
// them by their koanf key (cash_ceiling → const: cashCeiling resolves via
// Lookup).
type Constants struct {
	CashCeiling      float64 `koanf:"cash_ceiling" validate:"gt=0"`
	MaxProbationDays float64 `koanf:"max_probation_days" validate:"gt=0"`
	MaxDailyHours    float64 `koanf:"max_daily_hours" validate:"gt=0"`
	WeekDays         float64 `koanf:"week_days" validate:"gt=0"`
	WitnessMinimum   int     `koanf:"witness_minimum" validate:"min=1"`
	NoticeBandMin    float64 `koanf:"notice_band_min" validate:"gte=0"`
	NoticeBandMax    float64 `koanf:"notice_band_max" validate:"gtefield=NoticeBandMin"`
}

// Defaults returns the built-in figures: AED 55,000 cash transaction
// ceiling, a six-month probation cap, the eight-plus-overtime daily hour
// limit, and the common 30-90 day notice band.
func Defaults() Constants {
	return Constants{
		CashCeiling:      55000,
		MaxProbationDays: 180,
		MaxDailyHours:    12,
		WeekDays:         7,
		WitnessMinimum:   2,
		NoticeBandMin:    30,
		NoticeBandMax:    90,
	}
}

// Load layers configuration sources over the defaults. Priority: environment
// variables > config file > defaults. An empty path skips the file layer; a
// missing file at the supplied path is not an error.
func Load(path string) (Constants, error) {
	k := koanf.New(".")

	defaults := Defaults()
	k.Set("cash_ceiling", defaults.CashCeiling)
	k.Set("max_probation_days", defaults.MaxProbationDays)
	k.Set("max_daily_hours", defaults.MaxDailyHours)
	k.Set("week_days", defaults.WeekDays)
	k.Set("witness_minimum", defaults.WitnessMinimum)
	k.Set("notice_band_min", defaults.NoticeBandMin)
	k.Set("notice_band_max", defaults.NoticeBandMax)

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), json.Parser()); err != nil {
				return Constants{}, fmt.Errorf("legal: load config %s: %w", path, err)
			}
		}
	}

	k.Load(env.Provider("DOCWIZARD_", ".", envTransform), nil)

	var out Constants
	if err := k.Unmarshal("", &out); err != nil {
		return Constants{}, fmt.Errorf("legal: unmarshal config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(out); err != nil {
		return Constants{}, fmt.Errorf("legal: invalid constants: %w", err)
	}

	return out, nil
}

// envTransform converts DOCWIZARD_CASH_CEILING to cash_ceiling.
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, "DOCWIZARD_"))
}

// Lookup resolves a named constant as referenced from schema documents.
func (c Constants) Lookup(name string) (float64, bool) {
	switch name {
	case "cashCeiling":
		return c.CashCeiling, true
	case "maxProbationDays":
		return c.MaxProbationDays, true
	case "maxDailyHours":
		return c.MaxDailyHours, true
	case "weekDays":
		return c.WeekDays, true
	case "witnessMinimum":
		return float64(c.WitnessMinimum), true
	case "noticeBandMin":
		return c.NoticeBandMin, true
	case "noticeBandMax":
		return c.NoticeBandMax, true
	default:
		return 0, false
	}
}
