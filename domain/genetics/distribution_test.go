package genetics

import (
	"encoding/json"
	"testing"
)

func TestDistribution_InsertionOrderSurvivesJSON(t *testing.T) {
	d := NewDistribution()
	d.Add("Aa", 0.5)
	d.Add("AA", 0.25)
	d.Add("aa", 0.25)

	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"Aa":0.5,"AA":0.25,"aa":0.25}`
	if string(data) != want {
		t.Fatalf("marshal = %s, want %s", data, want)
	}

	var back Distribution
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	keys := back.Keys()
	if len(keys) != 3 || keys[0] != "Aa" || keys[1] != "AA" || keys[2] != "aa" {
		t.Fatalf("round-trip key order = %v", keys)
	}
}

func TestDistribution_AddAccumulates(t *testing.T) {
	d := NewDistribution()
	d.Add("Aa", 0.25)
	d.Add("Aa", 0.25)

	if d.Len() != 1 {
		t.Fatalf("expected one key, got %v", d.Keys())
	}
	if v, _ := d.Get("Aa"); v != 0.5 {
		t.Fatalf("accumulated mass = %v, want 0.5", v)
	}
	if d.Sum() != 0.5 {
		t.Fatalf("sum = %v, want 0.5", d.Sum())
	}
}

func TestDistribution_EmptyMarshalsAsObject(t *testing.T) {
	data, err := json.Marshal(NewDistribution())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != "{}" {
		t.Fatalf("empty distribution = %s, want {}", data)
	}

	var zero Distribution
	data, err = json.Marshal(zero)
	if err != nil {
		t.Fatalf("marshal zero value: %v", err)
	}
	if string(data) != "{}" {
		t.Fatalf("zero distribution = %s, want {}", data)
	}
}

func TestDistribution_ScaleLeavesReceiverAlone(t *testing.T) {
	d := NewDistribution()
	d.Add("AA", 0.25)

	scaled := d.Scale(100)

	if v, _ := scaled.Get("AA"); v != 25 {
		t.Fatalf("scaled mass = %v, want 25", v)
	}
	if v, _ := d.Get("AA"); v != 0.25 {
		t.Fatalf("original mass changed to %v", v)
	}
}

func TestDistribution_KeysEscapedInJSON(t *testing.T) {
	d := NewDistribution()
	d.Add(`say "brown"`, 1)

	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `{"say \"brown\"":1}` {
		t.Fatalf("escaped marshal = %s", data)
	}
}
