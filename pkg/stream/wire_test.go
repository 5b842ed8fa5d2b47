package stream

import (
	"encoding/json"
	"testing"

	"github.com/openvdb/nanovdb-editor-server/pkg/input"
)

func decodeJSON(t *testing.T, raw string) *clientMessage {
	t.Helper()
	var msg clientMessage
	if err := json.Unmarshal([]byte(raw), &msg); err != nil {
		t.Fatalf("unmarshal %s: %v", raw, err)
	}
	return &msg
}

func TestDecodeMouseMove(t *testing.T) {
	msg := decodeJSON(t, `{"type":"event","eventType":"mousemove","x":12.5,"y":-3.0}`)

	ev, ok := decodeEvent(msg)
	if !ok {
		t.Fatal("decodeEvent returned false")
	}
	mm, ok := ev.(input.MouseMove)
	if !ok {
		t.Fatalf("event type = %T, want MouseMove", ev)
	}
	if mm.X != 12.5 || mm.Y != -3.0 {
		t.Errorf("MouseMove = (%v, %v), want (12.5, -3.0)", mm.X, mm.Y)
	}
}

func TestDecodeMouseButtons(t *testing.T) {
	ev, ok := decodeEvent(decodeJSON(t, `{"type":"event","eventType":"mousedown","button":1}`))
	if !ok {
		t.Fatal("decodeEvent returned false")
	}
	if md := ev.(input.MouseDown); md.Button != 2 {
		t.Errorf("mousedown button = %d, want 2 (browser middle remaps)", md.Button)
	}

	ev, ok = decodeEvent(decodeJSON(t, `{"type":"event","eventType":"mouseup","button":2}`))
	if !ok {
		t.Fatal("decodeEvent returned false")
	}
	if mu := ev.(input.MouseUp); mu.Button != 1 {
		t.Errorf("mouseup button = %d, want 1 (browser right remaps)", mu.Button)
	}
}

// Wheel deltas are scaled to detents with Y inverted.
func TestDecodeMouseWheel(t *testing.T) {
	msg := decodeJSON(t, `{"type":"event","eventType":"mousewheel","deltaX":120,"deltaY":-240}`)

	ev, ok := decodeEvent(msg)
	if !ok {
		t.Fatal("decodeEvent returned false")
	}
	ms := ev.(input.MouseScroll)
	if ms.DeltaX != 1.0 {
		t.Errorf("DeltaX = %v, want 1.0", ms.DeltaX)
	}
	if ms.DeltaY != 2.0 {
		t.Errorf("DeltaY = %v, want 2.0 (sign flips)", ms.DeltaY)
	}
}

func TestDecodeKeyDown(t *testing.T) {
	msg := decodeJSON(t, `{"type":"event","eventType":"keydown","key":"A","code":"KeyA",`+
		`"altKey":false,"ctrlKey":true,"shiftKey":true,"metaKey":false}`)

	ev, ok := decodeEvent(msg)
	if !ok {
		t.Fatal("decodeEvent returned false")
	}
	kd := ev.(input.KeyDown)
	if kd.Key != input.KeyA {
		t.Errorf("Key = %d, want KeyA", kd.Key)
	}
	if kd.Unicode != 0x41 {
		t.Errorf("Unicode = %#x, want 0x41", kd.Unicode)
	}
	if kd.Code != input.KeyNone {
		t.Errorf("Code = %d, want KeyNone (code lookup is a stub)", kd.Code)
	}
	if !kd.Ctrl || !kd.Shift || kd.Alt || kd.Meta {
		t.Errorf("modifiers = %+v, want ctrl+shift only", kd)
	}
}

func TestDecodeKeyUp(t *testing.T) {
	msg := decodeJSON(t, `{"type":"event","eventType":"keyup","key":"Escape","code":"Escape",`+
		`"altKey":true,"ctrlKey":false,"shiftKey":false,"metaKey":true}`)

	ev, ok := decodeEvent(msg)
	if !ok {
		t.Fatal("decodeEvent returned false")
	}
	ku := ev.(input.KeyUp)
	if ku.Key != input.KeyEscape {
		t.Errorf("Key = %d, want KeyEscape", ku.Key)
	}
	if ku.Unicode != 0 {
		t.Errorf("Unicode = %#x, want 0", ku.Unicode)
	}
	if !ku.Alt || !ku.Meta || ku.Ctrl || ku.Shift {
		t.Errorf("modifiers = %+v, want alt+meta only", ku)
	}
}

func TestDecodeResize(t *testing.T) {
	msg := decodeJSON(t, `{"type":"event","eventType":"resize","width":1920,"height":1080}`)

	ev, ok := decodeEvent(msg)
	if !ok {
		t.Fatal("decodeEvent returned false")
	}
	rs := ev.(input.Resize)
	if rs.Width != 1920 || rs.Height != 1080 {
		t.Errorf("Resize = %dx%d, want 1920x1080", rs.Width, rs.Height)
	}
}

func TestDecodeUnknownEventType(t *testing.T) {
	msg := decodeJSON(t, `{"type":"event","eventType":"gamepad","button":4}`)

	if ev, ok := decodeEvent(msg); ok {
		t.Errorf("decodeEvent accepted unknown event type: %+v", ev)
	}
}

func TestFrameMetadataWireShape(t *testing.T) {
	meta := frameMeta{frameID: 42, width: 320, height: 240}

	raw, err := json.Marshal(newFrameMetadata(meta))
	if err != nil {
		t.Fatal(err)
	}
	want := `{"type":"event","eventType":"frameid","frameid":42,"width":320,"height":240}`
	if string(raw) != want {
		t.Errorf("metadata = %s, want %s", raw, want)
	}
}
