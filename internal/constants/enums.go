package constants

// CarStatus is the two-state listing lifecycle flag. It drives the public
// active-vs-sold bucketing; the cosmetic sold badge is independent of it.
type CarStatus string

const (
	StatusActive CarStatus = "active"
	StatusSold   CarStatus = "sold"
)

// Closed value sets for the enumerated car attributes. Values outside a set
// are coerced to empty ("unset"), never rejected and never invented.
var (
	FuelTypes = map[string]struct{}{
		"petrol":   {},
		"diesel":   {},
		"lpg":      {},
		"hybrid":   {},
		"electric": {},
	}

	Transmissions = map[string]struct{}{
		"manual":    {},
		"automatic": {},
	}

	Drivetrains = map[string]struct{}{
		"fwd": {},
		"rwd": {},
		"awd": {},
		"4x4": {},
	}

	BodyTypes = map[string]struct{}{
		"sedan":     {},
		"hatchback": {},
		"estate":    {},
		"suv":       {},
		"coupe":     {},
		"cabrio":    {},
		"van":       {},
		"pickup":    {},
	}

	Conditions = map[string]struct{}{
		"excellent":  {},
		"very-good":  {},
		"good":       {},
		"needs-work": {},
	}

	Origins = map[string]struct{}{
		"poland":      {},
		"germany":     {},
		"france":      {},
		"belgium":     {},
		"netherlands": {},
		"switzerland": {},
		"usa":         {},
		"other":       {},
	}

	RegisteredInValues = map[string]struct{}{
		"poland": {},
		"abroad": {},
	}

	SaleDocuments = map[string]struct{}{
		"invoice-vat":    {},
		"invoice-margin": {},
		"sale-agreement": {},
	}
)

// CoerceEnum narrows value to the given closed set, returning "" when the
// value is not a member.
func CoerceEnum(value string, set map[string]struct{}) string {
	if _, ok := set[value]; ok {
		return value
	}
	return ""
}

// CoerceStatus narrows a status string to the active/sold pair.
func CoerceStatus(value string) string {
	switch CarStatus(value) {
	case StatusActive, StatusSold:
		return value
	}
	return ""
}
