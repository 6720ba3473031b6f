package displaycard

// LoadState is the image load state of one mounted ImagePane.
type LoadState uint8

const (
	// NotLoaded is the initial state: skeleton shown, image transparent.
	NotLoaded LoadState = iota
	// Loaded means the browser reported the image as decoded.
	Loaded
	// Failed means the browser reported a load error.
	Failed
)

// String returns the value used for the pane's data-state attribute.
func (s LoadState) String() string {
	switch s {
	case NotLoaded:
		return "not-loaded"
	case Loaded:
		return "loaded"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further transition is possible.
func (s LoadState) Terminal() bool {
	return s == Loaded || s == Failed
}

// OnLoad returns the state after a load signal.
func (s LoadState) OnLoad() LoadState {
	if s == NotLoaded {
		return Loaded
	}
	return s
}

// OnError returns the state after an error signal.
func (s LoadState) OnError() LoadState {
	if s == NotLoaded {
		return Failed
	}
	return s
}
