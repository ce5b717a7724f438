package ecotouch

// The web GUI renders the alarm (I52) and interruption (I53) bitfields as
// localized word lists. The tables below are keyed by language, then by
// register code, with one label per bit index in TagData.Bits order.
var translations = map[string]map[string][]string{
	"en": {
		"I52": {
			"low pressure",
			"high pressure",
			"motor protection compressor",
			"motor protection source pump",
			"brine pressure",
			"flow rate",
			"hot gas temperature",
			"source temperature",
			"sensor fault",
		},
		"I53": {
			"utility lock time",
			"PV surplus",
			"flow rate",
			"heating operating limit",
			"minimum source temperature",
			"pressure switch",
			"defrost",
		},
	},
	"de": {
		"I52": {
			"Niederdruck",
			"Hochdruck",
			"Motorschutz Verdichter",
			"Motorschutz Quellenpumpe",
			"Soledruck",
			"Durchfluss",
			"Heissgastemperatur",
			"Quellentemperatur",
			"Fuehlerfehler",
		},
		"I53": {
			"EVU-Sperre",
			"PV-Ueberschuss",
			"Durchfluss",
			"Einsatzgrenze Heizen",
			"Minimale Quellentemperatur",
			"Druckschalter",
			"Abtauung",
		},
	},
}

// labelTable returns the label set for a language code, falling back to "en".
func labelTable(lang string) map[string][]string {
	if m, ok := translations[lang]; ok {
		return m
	}
	return translations["en"]
}
