package models

// ProtocolPartRequest links a part to a measurement protocol. Only part and
// protocol identifiers are required; the remaining fields are passed through
// to the procedure as NULL when absent.
type ProtocolPartRequest struct {
	PartID          string  `json:"part_id" validate:"required"`
	ProtocolID      string  `json:"protocol_id" validate:"required"`
	EmployeeID      *string `json:"employee_id"`
	StationID       *string `json:"station_id"`
	Status          *string `json:"status"`
	StatusTimestamp *string `json:"status_timestamp"`
	ShippingID      *string `json:"shipping_id"`
}
