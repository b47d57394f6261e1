package booking

// Slots is the fixed set of bookable time labels offered for every
// doctor and every date. Labels are independent of any specific date.
var Slots = []string{
	"9:00 AM",
	"9:30 AM",
	"10:00 AM",
	"10:30 AM",
	"11:00 AM",
	"11:30 AM",
	"2:00 PM",
	"2:30 PM",
	"3:00 PM",
	"3:30 PM",
	"4:00 PM",
}

var slotSet = func() map[string]bool {
	m := make(map[string]bool, len(Slots))
	for _, s := range Slots {
		m[s] = true
	}
	return m
}()

// ValidSlot reports whether the label is one of the offered slots.
func ValidSlot(s string) bool {
	return slotSet[s]
}
