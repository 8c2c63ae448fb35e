// Package inverter handles the inverter side of the bridge: fetching XML
// telemetry documents over HTTP, decoding them into measurements, and
// mapping measurements onto MQTT topics and payloads.
//
// # Wire format consumed
//
// The inverter serves one XML document per poll:
//
//	<root>
//	  <Device Name="Solbrid 10K" Type="Inverter" Serial="7799ABCDEXXXXXX000">
//	    <Measurements>
//	      <Measurement Value="237.3" Unit="V" Type="AC_Voltage1"/>
//	      <Measurement Value="1350" Unit="W" Type="AC_Power"/>
//	    </Measurements>
//	  </Device>
//	</root>
//
// # Wire format produced
//
// One MQTT message per measurement per cycle:
//
//	topic:   inverter/{serial}/{type}
//	payload: "{value} {unit}" (plain text, trimmed)
//
// Decode and the topic/payload mappers are pure; the Client holds the only
// transport state (an http.Client with a bounded timeout).
package inverter
