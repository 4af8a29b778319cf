package vars

import "testing"

func TestFirstNonZero(t *testing.T) {
	if v := FirstNonZero(0, 0, 3, 4); v != 3 {
		t.Fatalf("got %v", v)
	}
	if v := FirstNonZero("", ""); v != "" {
		t.Fatalf("got %q", v)
	}
}

func TestStrToBool(t *testing.T) {
	for _, str := range []string{"true", "Y", " yes ", "1", "on"} {
		if !StrToBool(str) {
			t.Fatalf("%q should be true", str)
		}
	}
	for _, str := range []string{"false", "n", "0", "", "maybe"} {
		if StrToBool(str) {
			t.Fatalf("%q should be false", str)
		}
	}
}
