package inverter

import "errors"

// Sentinel errors for fetch and decode operations.
// Use errors.Is() to check for these errors in calling code.
var (
	// ErrFetchFailed is returned for any transport error, timeout, or
	// non-2xx response while fetching a telemetry document.
	ErrFetchFailed = errors.New("inverter: fetch failed")

	// ErrMalformedXML is returned when a document is not well-formed XML.
	ErrMalformedXML = errors.New("inverter: malformed XML")

	// ErrMissingSerial is returned when the Device element is absent or its
	// Serial attribute is empty.
	ErrMissingSerial = errors.New("inverter: missing device serial")

	// ErrNoMeasurements is returned when the document carries no
	// Measurement elements.
	ErrNoMeasurements = errors.New("inverter: no measurements in document")

	// ErrMissingType is returned when a Measurement element has no Type
	// attribute. The type is the topic key, so it is required.
	ErrMissingType = errors.New("inverter: measurement missing Type attribute")
)
