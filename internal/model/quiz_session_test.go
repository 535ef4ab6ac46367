package model

import (
	"strings"
	"testing"
)

func TestResponseMapCodec(t *testing.T) {
	in := ResponseMap{0: "c2", 3: "8"}

	raw, err := in.Value()
	if err != nil {
		t.Fatalf("value: %v", err)
	}
	if !strings.Contains(string(raw.([]byte)), `"v":1`) {
		t.Fatalf("envelope missing version: %s", raw)
	}

	var out ResponseMap
	if err := out.Scan(raw); err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(out) != 2 || out[0] != "c2" || out[3] != "8" {
		t.Fatalf("round trip mismatch: %v", out)
	}
}

func TestResponseMapScan_RejectsUnknownVersion(t *testing.T) {
	var out ResponseMap
	err := out.Scan([]byte(`{"v":99,"responses":{}}`))
	if err == nil {
		t.Fatalf("expected version error")
	}
}

func TestResponseMapScan_NilAndEmpty(t *testing.T) {
	var out ResponseMap
	if err := out.Scan(nil); err != nil {
		t.Fatalf("scan nil: %v", err)
	}
	if out == nil || len(out) != 0 {
		t.Fatalf("expected empty map, got %v", out)
	}
}

func TestIDListCodec(t *testing.T) {
	in := IDList{5, 2, 9}

	raw, err := in.Value()
	if err != nil {
		t.Fatalf("value: %v", err)
	}

	var out IDList
	if err := out.Scan(raw); err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(out) != 3 || out[0] != 5 || out[1] != 2 || out[2] != 9 {
		t.Fatalf("order lost in round trip: %v", out)
	}
}

func TestIDListScan_StringColumn(t *testing.T) {
	var out IDList
	if err := out.Scan(`{"v":1,"ids":[7]}`); err != nil {
		t.Fatalf("scan string: %v", err)
	}
	if len(out) != 1 || out[0] != 7 {
		t.Fatalf("unexpected result: %v", out)
	}
}
