package service

import (
	"reflect"
	"testing"
)

func TestSanitizeInputRecursion(t *testing.T) {
	input := map[string]interface{}{
		"name": "  S00042  ",
		"nested": map[string]interface{}{
			"city": " Riyadh ",
			"ids":  []interface{}{" 1 ", float64(2)},
		},
		"count": float64(3),
		"flag":  true,
		"empty": nil,
	}

	got, ok := SanitizeInput(input).(map[string]interface{})
	if !ok {
		t.Fatalf("sanitized value should stay a map")
	}
	if got["name"] != "S00042" {
		t.Fatalf("name want S00042 got %q", got["name"])
	}
	nested := got["nested"].(map[string]interface{})
	if nested["city"] != "Riyadh" {
		t.Fatalf("nested city want Riyadh got %q", nested["city"])
	}
	ids := nested["ids"].([]interface{})
	if ids[0] != "1" {
		t.Fatalf("nested slice string want 1 got %q", ids[0])
	}
	if ids[1] != float64(2) {
		t.Fatalf("numbers should pass through, got %v", ids[1])
	}
	if got["count"] != float64(3) || got["flag"] != true {
		t.Fatalf("scalars should pass through: %v %v", got["count"], got["flag"])
	}
	if got["empty"] != nil {
		t.Fatalf("nil should pass through, got %v", got["empty"])
	}

	// 原 map 不被修改
	if input["name"] != "  S00042  " {
		t.Fatalf("input map mutated: %q", input["name"])
	}
}

func TestMissingFields(t *testing.T) {
	payload := map[string]interface{}{
		"delivery_order_ids": []interface{}{float64(1)},
		"state":              "",
		"note":               nil,
	}
	missing := MissingFields(payload, []string{"delivery_order_ids", "state", "note", "absent"})
	want := []string{"state", "note", "absent"}
	if !reflect.DeepEqual(missing, want) {
		t.Fatalf("missing want %v got %v", want, missing)
	}

	payload["state"] = "done"
	payload["note"] = "x"
	if got := MissingFields(payload, []string{"delivery_order_ids", "state", "note"}); len(got) != 0 {
		t.Fatalf("expected no missing fields, got %v", got)
	}

	// 空数组视为缺失
	payload["delivery_order_ids"] = []interface{}{}
	if got := MissingFields(payload, []string{"delivery_order_ids"}); len(got) != 1 {
		t.Fatalf("empty array should be missing, got %v", got)
	}
}

func TestValidDeliveryState(t *testing.T) {
	for _, state := range []string{"draft", "waiting", "confirmed", "assigned", "done", "cancel"} {
		if !ValidDeliveryState(state) {
			t.Fatalf("state %s should be valid", state)
		}
	}
	for _, state := range []string{"", "shipped", "DONE", "delivery_assign "} {
		if ValidDeliveryState(state) {
			t.Fatalf("state %q should be invalid", state)
		}
	}
}
