package models

type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Username string `json:"username"`
	Address  string `json:"address"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks required fields only. Format rules (email shape,
// password strength) are left to Firebase.
func (r *SignupRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if r.Email == "" {
		errors["email"] = "Email is required"
	}
	if r.Password == "" {
		errors["password"] = "Password is required"
	}
	if r.Username == "" {
		errors["username"] = "Username is required"
	}
	if r.Address == "" {
		errors["address"] = "Address is required"
	}

	return errors
}
