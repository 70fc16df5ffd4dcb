package models

// AuthStatusSuccess is the application-level status the authentication
// procedure returns for a known card.
const AuthStatusSuccess = "success"

// AuthResult is the outcome of a card authentication. The status field is the
// procedure's own verdict; transport-level success does not imply an
// authenticated card.
type AuthResult struct {
	Status       string  `json:"status"`
	Message      string  `json:"message"`
	EmployeeName *string `json:"employee_name"`
	EmployeeID   *string `json:"employee_id"`
}

// Authenticated reports whether the procedure accepted the card. Any status
// other than "success" is treated as not authenticated, whatever its cause.
func (r *AuthResult) Authenticated() bool {
	return r.Status == AuthStatusSuccess
}
