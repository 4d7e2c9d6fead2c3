package bluetooth

import (
	"testing"

	"tinygo.org/x/bluetooth"
)

func TestProtocolUUIDsParse(t *testing.T) {
	var zero bluetooth.UUID
	if ServiceUUID == zero {
		t.Fatalf("service UUID failed to parse")
	}
	if CharacteristicUUID == zero {
		t.Fatalf("characteristic UUID failed to parse")
	}
	if ServiceUUID == CharacteristicUUID {
		t.Fatalf("service and characteristic UUIDs must differ")
	}
}

func TestButtonCodes(t *testing.T) {
	got := []byte{ButtonReleased, ButtonMain, ButtonReset, ButtonLooping, ButtonAnimation}
	want := []byte{0x00, 0x01, 0x02, 0x04, 0x08}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("code %d = %#x, want %#x", i, got[i], want[i])
		}
	}
}
