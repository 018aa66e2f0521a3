package auth

import "shelf/internal/authview"

// PageData is the rendering state of the sign in / sign up page.
type PageData struct {
	Mode     authview.Mode
	Title    string
	Action   string
	Username string
	// Errors maps field names to messages.
	Errors map[string]string
}

// AlternatePath is the route that switches to the other mode.
func (p PageData) AlternatePath() string {
	if p.Mode == authview.SignIn {
		return "/register"
	}
	return "/login"
}

func (p PageData) AlternateLabel() string {
	if p.Mode == authview.SignIn {
		return "Need an account?"
	}
	return "Have an account?"
}
