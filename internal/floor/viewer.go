package floor

// Viewer is a floor in LIVE mode: every element is locked, there is no grid and no
// history, and tables are painted by reservation state.
type Viewer struct {
	*Floor
}

// NewViewer loads a floor document for live display.
func NewViewer(opts Options) (*Viewer, error) {
	f, err := newFloor(opts, ModeLive, ViewerLocks)
	if err != nil {
		return nil, err
	}
	f.events = newViewerEvents(f)
	if err := f.load(opts.Document.Scene); err != nil {
		return nil, err
	}
	f.ClearAllReservations()
	f.finish()
	return &Viewer{Floor: f}, nil
}
