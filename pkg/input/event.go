package input

// Event is a decoded viewer input event. The concrete types below are the
// only implementations; hosts switch on the type to consume them.
//
// Usage:
//
//	ev, ok := srv.PopEvent()
//	if !ok {
//		return
//	}
//	switch e := ev.(type) {
//	case input.MouseMove:
//		io.AddMousePosEvent(e.X, e.Y)
//	case input.Inactive:
//		// no viewers connected
//	}
type Event interface {
	isEvent()
}

// MouseMove reports the pointer position in viewer pixel coordinates.
type MouseMove struct {
	X float32
	Y float32
}

// MouseDown reports a pointer button press. Button has already been
// remapped from the browser numbering (see RemapButton).
type MouseDown struct {
	Button int32
}

// MouseUp reports a pointer button release.
type MouseUp struct {
	Button int32
}

// MouseScroll reports wheel movement in scroll ticks. Raw browser wheel
// deltas are divided by 120 on X and by -120 on Y at decode time.
type MouseScroll struct {
	DeltaX float32
	DeltaY float32
}

// KeyDown reports a key press.
type KeyDown struct {
	// Key is the resolved internal key code for the browser "key" value.
	Key Key

	// Unicode is the text codepoint for the key, or 0 for non-printing keys.
	Unicode uint32

	// Code is the resolved code for the browser "code" value. Currently
	// always KeyNone; the lookup hook is kept for future use.
	Code Key

	Alt   bool
	Ctrl  bool
	Shift bool
	Meta  bool
}

// KeyUp reports a key release. Fields match KeyDown.
type KeyUp struct {
	Key     Key
	Unicode uint32
	Code    Key
	Alt     bool
	Ctrl    bool
	Shift   bool
	Meta    bool
}

// Resize reports a viewer surface size change.
type Resize struct {
	Width  uint32
	Height uint32
}

// Inactive is synthetic: it is never decoded from a client. The server
// returns it from PopEvent when the event queue is empty and no viewer is
// connected, so producers can pause expensive work.
type Inactive struct{}

func (MouseMove) isEvent()   {}
func (MouseDown) isEvent()   {}
func (MouseUp) isEvent()     {}
func (MouseScroll) isEvent() {}
func (KeyDown) isEvent()     {}
func (KeyUp) isEvent()       {}
func (Resize) isEvent()      {}
func (Inactive) isEvent()    {}
