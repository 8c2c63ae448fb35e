// Package bridge contains the poll loop that drives solbridge.
//
// On a fixed interval the loop fetches the inverter's XML telemetry
// document, decodes it, and publishes one MQTT message per measurement.
// Numeric measurements are additionally forwarded to the optional
// InfluxDB sink.
//
// # Error accounting
//
// The loop tolerates a bounded run of consecutive fetch/decode failures:
// an inverter reboot or a network blip should not crash a long-running
// telemetry bridge instantly, but a truly dead endpoint must eventually
// take the process down so a supervisor can restart it. Any single
// successful cycle fully forgives prior failures. Publish failures are a
// transport concern of the broker connection (which reconnects on its
// own) and never count toward the ceiling.
//
// # Collaborators
//
// The loop depends only on the small Fetcher, Publisher, and Recorder
// capability interfaces, so the whole state machine is unit-testable
// without a live inverter or broker. Production wiring binds them to
// inverter.Client, mqtt.Client, and influxdb.Client in cmd/solbridge.
package bridge
