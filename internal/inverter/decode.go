package inverter

import (
	"encoding/xml"
	"fmt"
)

// xmlDocument mirrors the inverter's telemetry document structure.
//
// The root element name varies between firmware versions, so it is not
// matched; the single Device child carries the identity attributes and a
// Measurements collection.
type xmlDocument struct {
	Device xmlDevice `xml:"Device"`
}

type xmlDevice struct {
	Name         string          `xml:"Name,attr"`
	Type         string          `xml:"Type,attr"`
	Serial       string          `xml:"Serial,attr"`
	Measurements xmlMeasurements `xml:"Measurements"`
}

type xmlMeasurements struct {
	Measurement []xmlMeasurement `xml:"Measurement"`
}

type xmlMeasurement struct {
	Value string `xml:"Value,attr"`
	Unit  string `xml:"Unit,attr"`
	Type  string `xml:"Type,attr"`
}

// Decode parses one fetched telemetry document.
//
// Decoding is all-or-nothing: any structural problem fails the whole
// document and no partial reading is returned. Each call produces a fresh
// Reading; nothing is shared between calls.
//
// Error conditions (check with errors.Is):
//   - ErrMalformedXML: the bytes are not well-formed XML
//   - ErrMissingSerial: no Device element, or its Serial attribute is empty
//   - ErrNoMeasurements: the Device carries no Measurement elements
//   - ErrMissingType: a Measurement element has no Type attribute
//
// Parameters:
//   - data: raw bytes of one fetched document
//
// Returns:
//   - *Reading: device identity and measurements in document order
//   - error: nil on success, or a decode error describing the cause
func Decode(data []byte) (*Reading, error) {
	var doc xmlDocument
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedXML, err)
	}

	// The Serial attribute doubles as presence check for the Device
	// element: it is the topic prefix, so a document without it is useless.
	if doc.Device.Serial == "" {
		return nil, ErrMissingSerial
	}

	elems := doc.Device.Measurements.Measurement
	if len(elems) == 0 {
		return nil, ErrNoMeasurements
	}

	measurements := make([]Measurement, 0, len(elems))
	for i, m := range elems {
		if m.Type == "" {
			return nil, fmt.Errorf("%w: measurement %d", ErrMissingType, i)
		}
		measurements = append(measurements, Measurement{
			Type:  m.Type,
			Value: m.Value,
			Unit:  m.Unit,
		})
	}

	return &Reading{
		Device: Device{
			Name:   doc.Device.Name,
			Type:   doc.Device.Type,
			Serial: doc.Device.Serial,
		},
		Measurements: measurements,
	}, nil
}
