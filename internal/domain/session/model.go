package session

// User is the signed-in patient identity. It is held independently of the
// booking and appointment data; appointments reference it only through
// their patient id.
type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar"`
}
