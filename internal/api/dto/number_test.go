package dto

import (
	"encoding/json"
	"testing"
)

func TestNumberParseOrZero(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want float64
	}{
		{"number", `{"v": 12.5}`, 12.5},
		{"quoted number", `{"v": "12.5"}`, 12.5},
		{"empty string", `{"v": ""}`, 0},
		{"garbage", `{"v": "abc"}`, 0},
		{"null", `{"v": null}`, 0},
		{"negative", `{"v": -3}`, -3},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var payload struct {
				V Number `json:"v"`
			}
			if err := json.Unmarshal([]byte(tc.in), &payload); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if float64(payload.V) != tc.want {
				t.Errorf("decoded %v, want %v", float64(payload.V), tc.want)
			}
		})
	}
}
