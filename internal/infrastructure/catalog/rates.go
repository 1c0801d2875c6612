package catalog

import (
	"encoding/json"
	"os"
	"strings"

	"auto_accessories/internal/domain/entities"

	"go.uber.org/zap"
)

// DefaultInstallationRates is the base fee per segment when a product has no override.
func DefaultInstallationRates() entities.InstallationRateMatrix {
	return entities.InstallationRateMatrix{
		entities.SegmentHatchback: 499,
		entities.SegmentSedan:     699,
		entities.SegmentSUV:       899,
		entities.SegmentMUV:       999,
		entities.SegmentLuxury:    1499,
	}
}

// InstallationRatesFromEnv starts from the defaults and applies INSTALLATION_RATES,
// a JSON object of segment to fee, e.g. {"SUV": 950}. Unknown segments and
// negative fees are ignored.
func InstallationRatesFromEnv() entities.InstallationRateMatrix {
	rates := DefaultInstallationRates()
	raw := strings.TrimSpace(os.Getenv("INSTALLATION_RATES"))
	if raw == "" {
		return rates
	}
	return applyRateOverrides(rates, raw)
}

func applyRateOverrides(rates entities.InstallationRateMatrix, raw string) entities.InstallationRateMatrix {
	var overrides map[string]float64
	if err := json.Unmarshal([]byte(raw), &overrides); err != nil {
		zap.L().Warn("catalog.rates invalid INSTALLATION_RATES; using defaults", zap.Error(err))
		return rates
	}
	for k, v := range overrides {
		seg, ok := entities.ParseVehicleSegment(k)
		if !ok || v < 0 {
			zap.L().Warn("catalog.rates ignoring override", zap.String("segment", k), zap.Float64("rate", v))
			continue
		}
		rates[seg] = v
	}
	return rates
}
