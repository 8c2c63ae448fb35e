package inverter

import "testing"

func TestTopicFor(t *testing.T) {
	tests := []struct {
		name            string
		serial          string
		measurementType string
		want            string
	}{
		{
			name:            "typical measurement",
			serial:          "7799ABCDEXXXXXX000",
			measurementType: "AC_Voltage1",
			want:            "inverter/7799ABCDEXXXXXX000/AC_Voltage1",
		},
		{
			name:            "power measurement",
			serial:          "ABC123",
			measurementType: "AC_Power",
			want:            "inverter/ABC123/AC_Power",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TopicFor(tt.serial, tt.measurementType); got != tt.want {
				t.Errorf("TopicFor(%q, %q) = %q, want %q", tt.serial, tt.measurementType, got, tt.want)
			}
		})
	}
}

func TestPayloadFor(t *testing.T) {
	tests := []struct {
		name  string
		value string
		unit  string
		want  string
	}{
		{
			name:  "value with unit",
			value: "237.3",
			unit:  "V",
			want:  "237.3 V",
		},
		{
			name:  "value without unit has no trailing space",
			value: "0",
			unit:  "",
			want:  "0",
		},
		{
			name:  "precision preserved verbatim",
			value: "12345.678900",
			unit:  "kWh",
			want:  "12345.678900 kWh",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PayloadFor(tt.value, tt.unit); got != tt.want {
				t.Errorf("PayloadFor(%q, %q) = %q, want %q", tt.value, tt.unit, got, tt.want)
			}
		})
	}
}
