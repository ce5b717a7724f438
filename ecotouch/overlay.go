package ecotouch

import (
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// overlayEntry is the YAML shape of one user-supplied property definition.
type overlayEntry struct {
	Registers []string `yaml:"registers"`
	Unit      string   `yaml:"unit"`
	Writeable bool     `yaml:"writeable"`
	Bit       *int     `yaml:"bit"`
	Bits      []int    `yaml:"bits"`
	Translate bool     `yaml:"translate"`
	Codec     string   `yaml:"codec"`
}

// LoadOverlay merges extra property definitions into the registry. The
// controller exposes far more registers than the built-in catalog names, and
// users routinely map additional ones. Meant to be called once at startup,
// before the first read; definitions clashing with a built-in identifier are
// rejected. Returns the number of properties added.
func LoadOverlay(r io.Reader) (int, error) {
	var entries map[string]overlayEntry
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&entries); err != nil {
		return 0, fmt.Errorf("catalog overlay: %w", err)
	}

	added := 0
	for name, e := range entries {
		if _, exists := Tags[name]; exists {
			return added, fmt.Errorf("catalog overlay: %v is already defined", name)
		}
		if len(e.Registers) == 0 {
			return added, fmt.Errorf("catalog overlay: %v has no registers", name)
		}
		for _, tag := range e.Registers {
			if !validTag(tag) {
				return added, fmt.Errorf("catalog overlay: %v: bad register code %q", name, tag)
			}
		}
		if e.Translate && len(e.Bits) == 0 {
			return added, fmt.Errorf("catalog overlay: %v: translate requires a bits list", name)
		}
		if e.Translate && e.Codec != "" {
			return added, fmt.Errorf("catalog overlay: %v: translate cannot be combined with codec %q", name, e.Codec)
		}
		var codec Codec
		if e.Codec != "" {
			var ok bool
			codec, ok = codecsByName[e.Codec]
			if !ok {
				return added, fmt.Errorf("catalog overlay: %v: unknown codec %q", name, e.Codec)
			}
		}
		Tags[name] = &TagData{
			Tags:      e.Registers,
			Unit:      e.Unit,
			Writeable: e.Writeable,
			Bit:       e.Bit,
			Bits:      e.Bits,
			Translate: e.Translate,
			Codec:     codec,
		}
		added++
	}
	log.Infof("catalog overlay: %v properties added", added)
	return added, nil
}
