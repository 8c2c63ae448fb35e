package inverter

import (
	"fmt"
	"strings"
)

// TopicFor returns the MQTT topic for one measurement stream.
//
// Format: inverter/{serial}/{measurementType}
//
// No escaping is applied. The inverter's measurement types are plain
// identifiers (e.g., "AC_Voltage1") and contain no path-hostile characters.
func TopicFor(serial, measurementType string) string {
	return fmt.Sprintf("inverter/%s/%s", serial, measurementType)
}

// PayloadFor returns the plain-text message body for one measurement.
//
// Format: "{value} {unit}", trimmed so a measurement without a unit has no
// trailing space. The value text is passed through verbatim.
func PayloadFor(value, unit string) string {
	return strings.TrimSpace(fmt.Sprintf("%s %s", value, unit))
}
