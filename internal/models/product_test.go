package models

import (
	"encoding/json"
	"testing"
)

func TestSpecValueMarshal(t *testing.T) {
	specs := map[string]SpecValue{
		"color":          StringSpec("silver"),
		"ram_gb":         NumberSpec(16),
		"under_warranty": BoolSpec(true),
	}

	data, err := json.Marshal(specs)
	if err != nil {
		t.Fatal(err)
	}

	// Values must come out as bare scalars, not objects.
	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded["color"] != "silver" {
		t.Fatalf("color: got %v", decoded["color"])
	}
	if decoded["ram_gb"] != float64(16) {
		t.Fatalf("ram_gb: got %v", decoded["ram_gb"])
	}
	if decoded["under_warranty"] != true {
		t.Fatalf("under_warranty: got %v", decoded["under_warranty"])
	}
}

func TestSpecValueUnmarshal(t *testing.T) {
	var specs map[string]SpecValue
	input := `{"color":"black","weight_kg":2.5,"under_warranty":false}`
	if err := json.Unmarshal([]byte(input), &specs); err != nil {
		t.Fatal(err)
	}

	if v := specs["color"]; v.Kind != SpecString || v.Str != "black" {
		t.Fatalf("color: got %+v", v)
	}
	if v := specs["weight_kg"]; v.Kind != SpecNumber || v.Num != 2.5 {
		t.Fatalf("weight_kg: got %+v", v)
	}
	if v := specs["under_warranty"]; v.Kind != SpecBool || v.Bool != false {
		t.Fatalf("under_warranty: got %+v", v)
	}

	var bad SpecValue
	if err := json.Unmarshal([]byte(`[1,2]`), &bad); err == nil {
		t.Fatal("expected an error for a non-scalar spec value")
	}
}
