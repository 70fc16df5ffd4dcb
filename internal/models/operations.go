package models

// OperationLogMessage is the queue payload for one traceability log row.
// Fields other than the part identifier are passed to the procedure as
// received, NULL when absent; the database enforces any further rules.
type OperationLogMessage struct {
	PartID          string  `json:"part_id" validate:"required"`
	EmployeeID      *string `json:"employee_id"`
	StationID       *string `json:"station_id"`
	Status          *string `json:"status"`
	StatusTimestamp *string `json:"status_timestamp"`
	ShippingID      *string `json:"shipping_id"`
}
