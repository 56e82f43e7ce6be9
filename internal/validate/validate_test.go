package validate

import "testing"

func TestHex(t *testing.T) {
	valid := []string{"65a1b2c3d4e5f6a7b8c9d0e1", "ABCDEF", "0"}
	for _, v := range valid {
		if err := Hex(v); err != nil {
			t.Errorf("Hex(%q) = %v", v, err)
		}
	}
	invalid := []string{"", "xyz", "65a1-b2c3", "65a1 b2c3"}
	for _, v := range invalid {
		if err := Hex(v); err == nil {
			t.Errorf("Hex(%q) expected error", v)
		}
	}
}

func TestPrivateKey(t *testing.T) {
	if err := PrivateKey("a1b2c3d4-e5f6-a7b8-c9d0-e1f2a3b4c5d6"); err != nil {
		t.Errorf("PrivateKey = %v", err)
	}
	for _, v := range []string{"", "not_a_key", "a1b2 c3d4"} {
		if err := PrivateKey(v); err == nil {
			t.Errorf("PrivateKey(%q) expected error", v)
		}
	}
}

func TestDate(t *testing.T) {
	if err := Date("2024-01-01T00:00:00.000Z"); err != nil {
		t.Errorf("Date = %v", err)
	}
	invalid := []string{
		"2024-01-01",
		"2024-01-01T00:00:00Z",
		"2024-01-01T00:00:00.000",
		"01/01/2024",
	}
	for _, v := range invalid {
		if err := Date(v); err == nil {
			t.Errorf("Date(%q) expected error", v)
		}
	}
}

func TestLogTypes(t *testing.T) {
	types, err := LogTypes("FUNCTION,AUTH,SYNC_ERROR")
	if err != nil {
		t.Fatalf("LogTypes = %v", err)
	}
	if len(types) != 3 || types[0] != "FUNCTION" {
		t.Errorf("unexpected types: %v", types)
	}

	if _, err := LogTypes("FUNCTION,NOT_A_TYPE"); err == nil {
		t.Error("expected error for unknown type")
	}
	if _, err := LogTypes(""); err == nil {
		t.Error("expected error for empty list")
	}
}

func TestNonEmpty(t *testing.T) {
	if err := NonEmpty("key"); err != nil {
		t.Errorf("NonEmpty = %v", err)
	}
	for _, v := range []string{"", "   "} {
		if err := NonEmpty(v); err == nil {
			t.Errorf("NonEmpty(%q) expected error", v)
		}
	}
}
