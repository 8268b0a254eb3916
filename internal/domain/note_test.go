package domain

import "testing"

func TestOptional_States(t *testing.T) {
	t.Parallel()

	var absent Optional[string]
	if absent.Set || absent.IsNull() {
		t.Error("zero Optional must be absent")
	}

	null := Null[string]()
	if !null.Set || !null.IsNull() {
		t.Error("Null() must be set and report IsNull")
	}

	some := Some("B")
	if some.IsNull() || !some.Set {
		t.Error("Some() must be set and non-null")
	}
	if some.Value == nil || *some.Value != "B" {
		t.Errorf("Some(\"B\").Value = %v, want B", some.Value)
	}
}
