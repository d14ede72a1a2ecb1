package domain

// KeyAction is a keyboard intent delivered to the search controller.
// Adapters translate concrete key presses into actions.
type KeyAction int

const (
	// KeyNone is an unrecognised key.
	KeyNone KeyAction = iota
	// KeyToggle opens or closes the search surface. It is honoured while closed.
	KeyToggle
	// KeyNext moves the selection forward.
	KeyNext
	// KeyPrevious moves the selection backward.
	KeyPrevious
	// KeyConfirm opens the selected result.
	KeyConfirm
	// KeyDismiss closes the search surface without side effects.
	KeyDismiss
)

// String returns the string representation of the key action.
func (k KeyAction) String() string {
	switch k {
	case KeyToggle:
		return "toggle"
	case KeyNext:
		return "next"
	case KeyPrevious:
		return "previous"
	case KeyConfirm:
		return "confirm"
	case KeyDismiss:
		return "dismiss"
	default:
		return "none"
	}
}
