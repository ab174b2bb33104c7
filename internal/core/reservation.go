package core

// Reservation is the externally owned booking attached to a table. The scene only
// stores it for painting and lookup.
type Reservation struct {
	ID        string
	GuestName string
	Guests    int
	Confirmed bool
}

// Palette holds the table colours used in live mode.
type Palette struct {
	Free      string
	Pending   string
	Confirmed string
}

// DefaultPalette is used when no palette is configured.
var DefaultPalette = Palette{
	Free:      DefaultTableFill,
	Pending:   "#f2c14e",
	Confirmed: "#5fb36b",
}

// DetermineTableColor maps a reservation state onto a table colour.
func DetermineTableColor(r *Reservation, p Palette) string {
	switch {
	case r == nil:
		return p.Free
	case !r.Confirmed:
		return p.Pending
	default:
		return p.Confirmed
	}
}
