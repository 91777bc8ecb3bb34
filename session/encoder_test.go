package session

import (
	"strings"
	"testing"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		id   Identity
	}{
		{"full", Identity{ID: "u-1", Name: "Ana García", Email: "ana@club.example", Role: "administrator"}},
		{"no email", Identity{ID: "u-2", Name: "Luis", Role: "collector"}},
		{"empty fields", Identity{ID: "u-3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded, err := Encode(&tt.id)
			if err != nil {
				t.Fatalf("Encode: %v", err)
			}

			decoded, err := Decode(encoded)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if *decoded != tt.id {
				t.Errorf("round trip = %+v, want %+v", *decoded, tt.id)
			}
		})
	}
}

func TestEncodeRejectsOversizedField(t *testing.T) {
	id := Identity{ID: "u-1", Name: strings.Repeat("x", 256), Role: "administrator"}
	if _, err := Encode(&id); err == nil {
		t.Error("Encode with 256-byte name succeeded, want error")
	}
}

func TestEncodeNil(t *testing.T) {
	if _, err := Encode(nil); err == nil {
		t.Error("Encode(nil) succeeded, want error")
	}
}

func TestDecodeV1BlobWithoutEmail(t *testing.T) {
	// v1 layout: version, id, name, role.
	blob := []byte{identityFormatVersionV1}
	for _, field := range []string{"u-9", "Marta", "treasurer"} {
		blob = append(blob, byte(len(field)))
		blob = append(blob, field...)
	}

	decoded, err := Decode(blob)
	if err != nil {
		t.Fatalf("Decode v1: %v", err)
	}

	want := Identity{ID: "u-9", Name: "Marta", Role: "treasurer"}
	if *decoded != want {
		t.Errorf("Decode v1 = %+v, want %+v", *decoded, want)
	}
}

func TestDecodeRejectsMalformed(t *testing.T) {
	valid, err := Encode(&Identity{ID: "u-1", Name: "Ana", Email: "a@b.c", Role: "collector"})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	tests := []struct {
		name string
		data []byte
	}{
		{"empty", []byte{}},
		{"unknown version", []byte{9, 0, 0, 0, 0}},
		{"truncated", valid[:len(valid)-2]},
		{"trailing bytes", append(append([]byte{}, valid...), 0xFF)},
		{"length past end", []byte{identityFormatVersionCurrent, 200, 'x'}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decode(tt.data); err == nil {
				t.Error("Decode succeeded, want error")
			}
		})
	}
}
