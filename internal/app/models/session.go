package models

// Session is the client-held proof of authentication. The three fields are
// always written and cleared together; a partial session never exists.
type Session struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
	User         User   `json:"user"`
}

// Complete reports whether every field the store persists is present.
func (s *Session) Complete() bool {
	return s != nil && s.Token != "" && s.RefreshToken != "" && s.User.ID != ""
}
