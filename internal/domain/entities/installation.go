package entities

// InstallationRateMatrix is the fallback installation fee per vehicle segment.
type InstallationRateMatrix map[VehicleSegment]float64

type QuoteSource string

const (
	QuoteSourceOverride QuoteSource = "override"
	QuoteSourceMatrix   QuoteSource = "matrix"
)

// QuoteReason explains an unavailable quote.
type QuoteReason string

const (
	QuoteReasonNoVehicle  QuoteReason = "no_vehicle"
	QuoteReasonNotOffered QuoteReason = "not_offered"
	QuoteReasonNoRate     QuoteReason = "no_rate"
)

// InstallationQuote is derived on every resolution and never persisted.
// Price is non-nil iff IsAvailable.
type InstallationQuote struct {
	IsAvailable bool        `json:"is_available"`
	Price       *float64    `json:"price"`
	Source      QuoteSource `json:"source,omitempty"`
	Reason      QuoteReason `json:"reason,omitempty"`
}

func unavailableQuote(reason QuoteReason) InstallationQuote {
	return InstallationQuote{Reason: reason}
}

func availableQuote(price float64, source QuoteSource) InstallationQuote {
	return InstallationQuote{IsAvailable: true, Price: &price, Source: source}
}

// Quote resolves the installation fee of p for vehicle. It has no side effects:
// the same inputs always yield the same quote.
func (m InstallationRateMatrix) Quote(p Product, vehicle *VehicleSelection) InstallationQuote {
	if vehicle == nil || !vehicle.IsComplete() {
		return unavailableQuote(QuoteReasonNoVehicle)
	}
	if o := p.InstallationOverride; o != nil {
		if !o.IsAvailable {
			return unavailableQuote(QuoteReasonNotOffered)
		}
		if o.FlatRate != nil {
			return availableQuote(*o.FlatRate, QuoteSourceOverride)
		}
	}
	rate, ok := m[vehicle.Segment]
	if !ok {
		return unavailableQuote(QuoteReasonNoRate)
	}
	return availableQuote(rate, QuoteSourceMatrix)
}
