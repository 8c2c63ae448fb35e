package influxdb

import (
	"time"

	"github.com/influxdata/influxdb-client-go/v2/api/write"
)

// inverterMeasurement is the InfluxDB measurement (table) name for all
// inverter telemetry points.
const inverterMeasurement = "inverter_data"

// WriteMeasurement records one decoded inverter measurement.
//
// The point is tagged with the device serial and the measurement type so
// downstream queries can group by device and metric. The unit tag is omitted
// when the source document carried no unit.
//
// The write is non-blocking; data is batched and sent asynchronously.
//
// Parameters:
//   - serial: Device serial number (stable per deployment)
//   - measurementType: The measurement's Type attribute (e.g., "AC_Voltage1")
//   - unit: The measurement's Unit attribute (may be empty)
//   - value: The numeric value
//
// Example:
//
//	client.WriteMeasurement("7799ABCDEXXXXXX000", "AC_Voltage1", "V", 237.3)
func (c *Client) WriteMeasurement(serial, measurementType, unit string, value float64) {
	if !c.IsConnected() {
		return
	}

	tags := map[string]string{
		"serial": serial,
		"type":   measurementType,
	}
	if unit != "" {
		tags["unit"] = unit
	}

	point := write.NewPoint(
		inverterMeasurement,
		tags,
		map[string]interface{}{
			"value": value,
		},
		time.Now(),
	)

	c.writeAPI.WritePoint(point)
}
