package models

// SignUpRequest is the request body for POST /signup.
type SignUpRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// SignInRequest is the request body for POST /signin.
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignInResponse carries the identity token issued on a successful sign-in.
type SignInResponse struct {
	IDToken string `json:"idToken"`
}
