package order

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestParseProducts_RoundTrip(t *testing.T) {
	items := []ProductItem{
		{Name: "Ceramic Mug", Quantity: 2, Price: 24900},
		{Name: "Tea Sampler", Quantity: 1, Price: 49900},
	}
	raw, err := json.Marshal(items)
	if err != nil {
		t.Fatal(err)
	}

	got, err := ParseProducts(raw)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, items) {
		t.Fatalf("round trip mismatch:\n got  %+v\n want %+v", got, items)
	}
}

// Legacy checkout rows store the array doubly encoded: a JSON string whose
// content is itself the JSON array.
func TestParseProducts_DoublyEncoded(t *testing.T) {
	inner := `[{"name":"Desk Lamp","quantity":1,"price":159900}]`
	raw, _ := json.Marshal(inner)

	got, err := ParseProducts(raw)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Name != "Desk Lamp" || got[0].Quantity != 1 || got[0].Price != 159900 {
		t.Fatalf("unexpected items: %+v", got)
	}
}

func TestParseProducts_Empty(t *testing.T) {
	for _, raw := range [][]byte{nil, []byte(""), []byte("null"), []byte(`""`)} {
		got, err := ParseProducts(raw)
		if err != nil {
			t.Fatalf("ParseProducts(%q) error: %v", raw, err)
		}
		if len(got) != 0 {
			t.Fatalf("ParseProducts(%q) = %+v, want empty", raw, got)
		}
	}
}

func TestParseProducts_Garbage(t *testing.T) {
	if _, err := ParseProducts([]byte("{not json")); err == nil {
		t.Fatal("expected error for malformed payload")
	}
}

func TestParseAddress_RoundTrip(t *testing.T) {
	addr := &Address{
		FullName:   "Asha Verma",
		Street:     "14 MG Road",
		City:       "Pune",
		State:      "Maharashtra",
		PostalCode: "411001",
		Country:    "India",
		Phone:      "+91 98765 43210",
	}
	raw, _ := json.Marshal(addr)

	got, err := ParseAddress(raw)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, addr) {
		t.Fatalf("round trip mismatch:\n got  %+v\n want %+v", got, addr)
	}
}

func TestParseAddress_DoublyEncodedAndEmpty(t *testing.T) {
	raw, _ := json.Marshal(`{"fullName":"Rohan Iyer","street":"5 Park St","city":"Kolkata","state":"WB","postalCode":"700016","country":"India"}`)
	got, err := ParseAddress(raw)
	if err != nil {
		t.Fatal(err)
	}
	if got == nil || got.FullName != "Rohan Iyer" || got.City != "Kolkata" {
		t.Fatalf("unexpected address: %+v", got)
	}

	for _, empty := range [][]byte{nil, []byte("null"), []byte(`""`)} {
		got, err := ParseAddress(empty)
		if err != nil || got != nil {
			t.Fatalf("ParseAddress(%q) = %+v, %v; want nil, nil", empty, got, err)
		}
	}
}
