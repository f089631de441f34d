package command

import "testing"

func TestParseAlign(t *testing.T) {
	tests := map[string]Align{"left": Left, "Center": Center, "middle": Center, " right ": Right, "2": Right}
	for in, want := range tests {
		got, err := ParseAlign(in)
		if err != nil || got != want {
			t.Errorf("ParseAlign(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseAlign("justify"); err == nil {
		t.Error("ParseAlign(justify) should fail")
	}
}

func TestParseReadablePosition(t *testing.T) {
	tests := map[string]ReadablePosition{"none": ReadableNone, "above": ReadableAbove, "BELOW": ReadableBelow, "both": ReadableBoth}
	for in, want := range tests {
		got, err := ParseReadablePosition(in)
		if err != nil || got != want {
			t.Errorf("ParseReadablePosition(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseReadablePosition("left"); err == nil {
		t.Error("ParseReadablePosition(left) should fail")
	}
}

func TestParseBarcodeType(t *testing.T) {
	tests := map[string]BarcodeType{"UPC-A": UPCA, "upca": UPCA, "ean13": EAN13, "code128": Code128, "10": MSI}
	for in, want := range tests {
		got, err := ParseBarcodeType(in)
		if err != nil || got != want {
			t.Errorf("ParseBarcodeType(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	for _, in := range []string{"qr", "11", "-1"} {
		if _, err := ParseBarcodeType(in); err == nil {
			t.Errorf("ParseBarcodeType(%q) should fail", in)
		}
	}
}

func TestParseSwitch(t *testing.T) {
	for _, in := range []string{"on", "1", "TRUE", "yes"} {
		if v, err := ParseSwitch(in); err != nil || !v {
			t.Errorf("ParseSwitch(%q) = %v, %v", in, v, err)
		}
	}
	for _, in := range []string{"off", "0", "false", "no"} {
		if v, err := ParseSwitch(in); err != nil || v {
			t.Errorf("ParseSwitch(%q) = %v, %v", in, v, err)
		}
	}
	if _, err := ParseSwitch("maybe"); err == nil {
		t.Error("ParseSwitch(maybe) should fail")
	}
}

func TestEnumStrings(t *testing.T) {
	if Korea.String() != "Korea" || CharacterSet(99).String() != "CharacterSet(99)" {
		t.Error("CharacterSet.String")
	}
	if Center.String() != "center" || ReadableBoth.String() != "both" || Code128.String() != "CODE128" {
		t.Error("enum String")
	}
}
