package inverter

// Device identifies the inverter that produced a telemetry document.
// It is re-derived from every polled document; the serial is the stable
// MQTT topic prefix and is expected constant for a given deployment.
type Device struct {
	Name   string
	Type   string
	Serial string
}

// Measurement is one (type, value, unit) triple from a telemetry document.
//
// Value and Unit are kept verbatim as the source text: whatever precision
// the inverter encodes is preserved. Value or Unit may be empty when the
// source attribute is absent; a measurement without a value is skipped at
// publish time.
type Measurement struct {
	Type  string
	Value string
	Unit  string
}

// Reading is the decoded content of one telemetry document: the device
// identity plus its measurements in document order.
type Reading struct {
	Device       Device
	Measurements []Measurement
}
