package constants

// EquipmentCatalog maps equipment keys to their display labels. A listing's
// equipment field holds keys into this catalog; unknown keys are dropped on
// load.
var EquipmentCatalog = map[string]string{
	"abs":                "ABS",
	"air-conditioning":   "Klimatyzacja",
	"alloy-wheels":       "Alufelgi",
	"android-auto":       "Android Auto",
	"apple-carplay":      "Apple CarPlay",
	"cruise-control":     "Tempomat",
	"electric-windows":   "Elektryczne szyby",
	"heated-seats":       "Podgrzewane fotele",
	"leather-interior":   "Skórzana tapicerka",
	"navigation":         "Nawigacja",
	"panoramic-roof":     "Dach panoramiczny",
	"parking-sensors":    "Czujniki parkowania",
	"rear-camera":        "Kamera cofania",
	"start-stop":         "System start-stop",
	"sunroof":            "Szyberdach",
	"towbar":             "Hak holowniczy",
	"xenon-lights":       "Ksenony",
	"led-lights":         "Oświetlenie LED",
	"keyless-entry":      "Dostęp bezkluczykowy",
	"blind-spot-assist":  "Asystent martwego pola",
	"lane-assist":        "Asystent pasa ruchu",
	"adaptive-cruise":    "Aktywny tempomat",
	"heated-steering":    "Podgrzewana kierownica",
	"electric-tailgate":  "Elektryczna klapa",
	"four-zone-climate":  "Klimatyzacja 4-strefowa",
	"ventilated-seats":   "Wentylowane fotele",
	"memory-seats":       "Fotele z pamięcią",
	"head-up-display":    "Wyświetlacz HUD",
	"distronic":          "Distronic",
	"isofix":             "ISOFIX",
}

// FilterEquipment keeps only keys present in the catalog, preserving order
// and removing duplicates.
func FilterEquipment(keys []string) []string {
	out := make([]string, 0, len(keys))
	seen := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		if _, ok := EquipmentCatalog[k]; !ok {
			continue
		}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}
