package interact

// PointerKind classifies pointer events.
type PointerKind int

const (
	PointerDown PointerKind = iota
	PointerMove
	PointerUp
	PointerWheel
	PointerDoubleClick
	PointerCancel
)

func (k PointerKind) String() string {
	return [...]string{"down", "move", "up", "wheel", "dblclick", "cancel"}[k]
}

// PointerEvent is a host-neutral mouse event in canvas (screen) pixels.
type PointerEvent struct {
	Kind    PointerKind
	X, Y    float64
	ScrollY float64 // wheel delta, positive scrolls down (zooms out)
	Ctrl    bool
	Shift   bool
}

// TouchKind classifies touch events.
type TouchKind int

const (
	TouchStart TouchKind = iota
	TouchMove
	TouchEnd
)

// TouchEvent is one touch point change in canvas pixels.
type TouchEvent struct {
	Kind TouchKind
	ID   int
	X, Y float64
}

// KeyEvent is a key press.
type KeyEvent struct {
	Name  string // "Z", "Y", "Delete", "Escape", ...
	Ctrl  bool
	Shift bool
}

// Key names understood by the event managers.
const (
	KeyZ         = "Z"
	KeyY         = "Y"
	KeyB         = "B"
	KeyDelete    = "Delete"
	KeyBackspace = "Backspace"
	KeyEscape    = "Escape"
)
