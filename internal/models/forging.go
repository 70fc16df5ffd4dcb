package models

// ForgingPositions is the fixed set of scan positions on the forging line.
var ForgingPositions = []string{"A", "B"}

// ValidPosition reports membership in the forging-line position set.
func ValidPosition(position string) bool {
	for _, p := range ForgingPositions {
		if position == p {
			return true
		}
	}
	return false
}

// ForgingScanRequest records a gitterbox scan on the forging line.
type ForgingScanRequest struct {
	GitterID   string `json:"gitter_id" validate:"required"`
	EmployeeID string `json:"employee_id" validate:"required"`
	Position   string `json:"position" validate:"required,oneof=A B"`
}

// ForgingCheckResult reports whether a gitterbox has been scanned on the
// forging line, with the most recent scan when it has.
type ForgingCheckResult struct {
	Exists     bool    `json:"exists"`
	GitterID   *string `json:"gitter_id,omitempty"`
	EmployeeID *string `json:"employee_id,omitempty"`
	Timestamp  *string `json:"timestamp,omitempty"`
	Position   *string `json:"position,omitempty"`
	Message    string  `json:"message,omitempty"`
}
