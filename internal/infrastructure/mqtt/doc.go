// Package mqtt provides MQTT client connectivity for solbridge.
//
// This package manages:
//   - Connection to the broker with auto-reconnect
//   - Message publishing with QoS guarantees
//   - Last Will and Testament (LWT) for offline detection
//   - Connection health monitoring
//
// # Architecture
//
// The bridge is a pure publisher: it pushes one plain-text message per
// decoded inverter measurement and never subscribes. Home-automation and
// monitoring stacks consume the per-measurement topics directly.
//
//	Inverter (XML over HTTP) → solbridge → MQTT Broker → Subscribers
//
// # Usage
//
//	client, err := mqtt.Connect(cfg.MQTT)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	err = client.PublishString("inverter/7799ABC/AC_Voltage1", "237.3 V")
//
// # Reconnection
//
// A lost connection never crashes the poll loop. The paho client reconnects
// with exponential backoff in the background; publishes attempted while
// disconnected fail fast with ErrNotConnected and are logged and skipped.
package mqtt
