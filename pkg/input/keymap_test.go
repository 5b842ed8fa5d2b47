package input

import "testing"

func TestLookupKeyLetters(t *testing.T) {
	key, uni := LookupKey("a")
	if key != KeyA || uni != 0x61 {
		t.Errorf("LookupKey(a) = (%d, %#x), want (KeyA, 0x61)", key, uni)
	}

	key, uni = LookupKey("A")
	if key != KeyA || uni != 0x41 {
		t.Errorf("LookupKey(A) = (%d, %#x), want (KeyA, 0x41)", key, uni)
	}

	key, uni = LookupKey("Z")
	if key != KeyZ || uni != 0x5A {
		t.Errorf("LookupKey(Z) = (%d, %#x), want (KeyZ, 0x5A)", key, uni)
	}
}

func TestLookupKeyShiftedPunctuation(t *testing.T) {
	key, uni := LookupKey("?")
	if key != KeySlash || uni != 0x3F {
		t.Errorf("LookupKey(?) = (%d, %#x), want (KeySlash, 0x3F)", key, uni)
	}

	key, uni = LookupKey(":")
	if key != KeySemicolon || uni != 0x3A {
		t.Errorf("LookupKey(:) = (%d, %#x), want (KeySemicolon, 0x3A)", key, uni)
	}
}

func TestLookupKeyNamed(t *testing.T) {
	for label, want := range map[string]Key{
		"ArrowLeft": KeyLeftArrow,
		"PageDown":  KeyPageDown,
		"Escape":    KeyEscape,
		"CapsLock":  KeyCapsLock,
		"F24":       KeyF24,
		" ":         KeySpace,
	} {
		key, _ := LookupKey(label)
		if key != want {
			t.Errorf("LookupKey(%q) = %d, want %d", label, key, want)
		}
	}
}

func TestLookupKeyUnknown(t *testing.T) {
	key, uni := LookupKey("MediaPlayPause")
	if key != KeyNone || uni != 0 {
		t.Errorf("LookupKey(MediaPlayPause) = (%d, %#x), want (KeyNone, 0)", key, uni)
	}

	key, uni = LookupKey("")
	if key != KeyNone || uni != 0 {
		t.Errorf("LookupKey(\"\") = (%d, %#x), want (KeyNone, 0)", key, uni)
	}
}

// refLookup is an independent reference scan: first row whose lower or
// upper label matches wins, and an upper-label match yields the upper
// codepoint. Duplicate labels (keypad digits vs the digit row) resolve to
// the earlier row by design.
func refLookup(label string) (Key, uint32) {
	for _, m := range keyTable {
		if m.Key == KeyNone {
			return KeyNone, 0
		}
		if m.Upper == label {
			return m.Key, m.UpperUnicode
		}
		if m.Lower == label {
			return m.Key, m.LowerUnicode
		}
	}
	return KeyNone, 0
}

// Every printable label in the table resolves to the row the reference
// scan selects, with the matching codepoint.
func TestLookupKeyRoundTrip(t *testing.T) {
	for _, m := range keyTable {
		if m.Key == KeyNone {
			break
		}
		for _, label := range []string{m.Lower, m.Upper} {
			if label == "" {
				continue
			}
			wantKey, wantUni := refLookup(label)
			key, uni := LookupKey(label)
			if key != wantKey || uni != wantUni {
				t.Errorf("LookupKey(%q) = (%d, %#x), want (%d, %#x)",
					label, key, uni, wantKey, wantUni)
			}
		}
	}
}

func TestLookupCodeStub(t *testing.T) {
	if LookupCode("KeyA") != KeyNone {
		t.Error("LookupCode should resolve everything to KeyNone")
	}
	if LookupCode("") != KeyNone {
		t.Error("LookupCode(\"\") should resolve to KeyNone")
	}
}

func TestRemapButton(t *testing.T) {
	cases := []struct{ in, want int32 }{
		{0, 0},
		{1, 2},
		{2, 1},
		{3, 3},
		{7, 7},
	}
	for _, c := range cases {
		if got := RemapButton(c.in); got != c.want {
			t.Errorf("RemapButton(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}

// Applying the remap twice is the identity for the standard three buttons.
func TestRemapButtonIdempotence(t *testing.T) {
	for _, b := range []int32{0, 1, 2} {
		if got := RemapButton(RemapButton(b)); got != b {
			t.Errorf("RemapButton(RemapButton(%d)) = %d, want %d", b, got, b)
		}
	}
}
