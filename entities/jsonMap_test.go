package entities

import (
	"reflect"
	"testing"
)

func TestJSONMapValueNil(t *testing.T) {
	var m JSONMap
	v, err := m.Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	if v != nil {
		t.Fatalf("nil map should produce a NULL value, got %v", v)
	}
}

func TestJSONMapRoundTrip(t *testing.T) {
	m := JSONMap{"theme": "dark", "volume": float64(7)}

	v, err := m.Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}

	var out JSONMap
	if err := out.Scan(v); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if !reflect.DeepEqual(m, out) {
		t.Fatalf("round trip mismatch: %v != %v", out, m)
	}
}

func TestJSONMapScanString(t *testing.T) {
	var m JSONMap
	if err := m.Scan(`{"lang":"en"}`); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if m["lang"] != "en" {
		t.Fatalf("unexpected map: %v", m)
	}
}

func TestJSONMapScanNil(t *testing.T) {
	m := JSONMap{"stale": true}
	if err := m.Scan(nil); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if m != nil {
		t.Fatalf("expected nil map, got %v", m)
	}
}

func TestJSONMapScanUnsupportedType(t *testing.T) {
	var m JSONMap
	if err := m.Scan(42); err == nil {
		t.Fatal("expected an error for an int source")
	}
}
