// Package influxdb provides the optional InfluxDB sink for solbridge.
//
// It wraps the official influxdb-client-go v2 library with solbridge-specific
// patterns for connection management, measurement writing, and health
// monitoring.
//
// # Purpose
//
// Alongside the per-measurement MQTT messages, the bridge can record each
// numeric measurement as a time-series point. Points land in the
// "inverter_data" measurement tagged with the device serial, measurement
// type, and unit.
//
// # Usage
//
//	client, err := influxdb.Connect(ctx, cfg.InfluxDB)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	client.WriteMeasurement("7799ABCDEXXXXXX000", "AC_Voltage1", "V", 237.3)
//
// # Thread Safety
//
// All methods are safe for concurrent use from multiple goroutines.
// The underlying write API uses non-blocking batched writes.
//
// # Error Handling
//
// Write operations are non-blocking and batch errors are delivered via the
// SetOnError callback. Connection and health check errors are returned
// directly. A failing sink never interrupts MQTT publishing.
package influxdb
