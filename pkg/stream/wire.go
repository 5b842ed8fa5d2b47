package stream

import (
	"github.com/openvdb/nanovdb-editor-server/pkg/input"
)

// Browser wheel events report deltas in multiples of a 120-unit detent;
// the host expects scroll ticks with Y pointing up.
const (
	wheelScaleX = float32(1.0 / 120.0)
	wheelScaleY = float32(-1.0 / 120.0)
)

// clientMessage is the JSON envelope viewers send over the WebSocket. One
// struct covers every eventType; absent fields decode to zero values.
type clientMessage struct {
	Type      string  `json:"type"`
	EventType string  `json:"eventType"`
	X         float32 `json:"x"`
	Y         float32 `json:"y"`
	Button    int32   `json:"button"`
	DeltaX    float32 `json:"deltaX"`
	DeltaY    float32 `json:"deltaY"`
	Key       string  `json:"key"`
	Code      string  `json:"code"`
	AltKey    bool    `json:"altKey"`
	CtrlKey   bool    `json:"ctrlKey"`
	ShiftKey  bool    `json:"shiftKey"`
	MetaKey   bool    `json:"metaKey"`
	Width     uint32  `json:"width"`
	Height    uint32  `json:"height"`
	FrameID   uint64  `json:"frameid"`
}

// frameMetadata is the text message that precedes every binary payload on
// the wire.
type frameMetadata struct {
	Type      string `json:"type"`
	EventType string `json:"eventType"`
	FrameID   uint64 `json:"frameid"`
	Width     uint32 `json:"width"`
	Height    uint32 `json:"height"`
}

func newFrameMetadata(meta frameMeta) frameMetadata {
	return frameMetadata{
		Type:      "event",
		EventType: "frameid",
		FrameID:   meta.frameID,
		Width:     meta.width,
		Height:    meta.height,
	}
}

// decodeEvent converts a parsed client message into an input event.
// It returns false for unknown event types; "frameid" acknowledgments are
// handled before this point and never reach the queue.
func decodeEvent(m *clientMessage) (input.Event, bool) {
	switch m.EventType {
	case "mousemove":
		return input.MouseMove{X: m.X, Y: m.Y}, true

	case "mousedown":
		return input.MouseDown{Button: input.RemapButton(m.Button)}, true

	case "mouseup":
		return input.MouseUp{Button: input.RemapButton(m.Button)}, true

	case "mousewheel":
		return input.MouseScroll{
			DeltaX: m.DeltaX * wheelScaleX,
			DeltaY: m.DeltaY * wheelScaleY,
		}, true

	case "keydown":
		key, unicode := input.LookupKey(m.Key)
		return input.KeyDown{
			Key:     key,
			Unicode: unicode,
			Code:    input.LookupCode(m.Code),
			Alt:     m.AltKey,
			Ctrl:    m.CtrlKey,
			Shift:   m.ShiftKey,
			Meta:    m.MetaKey,
		}, true

	case "keyup":
		key, unicode := input.LookupKey(m.Key)
		return input.KeyUp{
			Key:     key,
			Unicode: unicode,
			Code:    input.LookupCode(m.Code),
			Alt:     m.AltKey,
			Ctrl:    m.CtrlKey,
			Shift:   m.ShiftKey,
			Meta:    m.MetaKey,
		}, true

	case "resize":
		return input.Resize{Width: m.Width, Height: m.Height}, true
	}

	return nil, false
}
