package catalog

// Doctor is a single entry in the doctor catalog. The catalog is seeded at
// process start and read-only for the lifetime of the process.
type Doctor struct {
	ID             string   `db:"id" json:"id"`
	Name           string   `db:"name" json:"name"`
	Specialty      string   `db:"specialty" json:"specialty"`
	Photo          string   `db:"photo" json:"photo"`
	Rating         float64  `db:"rating" json:"rating"`
	ReviewCount    int      `db:"review_count" json:"review_count"`
	Location       string   `db:"location" json:"location"`
	AvailableSlots int      `db:"available_slots" json:"available_slots"`
	Tags           []string `db:"tags" json:"tags"`
}

// Bookable reports whether the doctor has any open slots. A doctor with
// zero available slots is rendered as fully booked and cannot be opened
// for booking.
func (d *Doctor) Bookable() bool {
	return d.AvailableSlots > 0
}
