package models

// ChangeStatusRequest carries a gitterbox status transition scanned at a
// station.
type ChangeStatusRequest struct {
	StationID          string  `json:"station_id" binding:"required"`
	Status             string  `json:"status" binding:"required"`
	StatusTimestamp    string  `json:"status_timestamp" binding:"required"`
	ShippingID         string  `json:"shipping_id" binding:"required"`
	CurrentWorkspaceID *string `json:"current_workspace_id"`
}

// PartStatus is the latest recorded state of a single part.
type PartStatus struct {
	PartID            string  `json:"part_id"`
	LatestStatus      *string `json:"latest_status"`
	LatestWorkspaceID *string `json:"latest_workspace_id"`
	StatusTimestamp   *string `json:"status_timestamp"`
	CreateTimestamp   *string `json:"create_timestamp"`
	EmployeeID        *string `json:"employee_id"`
	ShippingID        *string `json:"shipping_id"`
}

// PartHistoryEntry is one row of a part's combined traceability and status
// history, most recent first.
type PartHistoryEntry struct {
	PartID        *string `json:"part_id"`
	StationID     *string `json:"station_id"`
	RezimCteni    *string `json:"rezim_cteni"`
	Timestamp     *string `json:"timestamp"`
	EmployeeID    *string `json:"employee_id"`
	GitterboxID   *string `json:"gitterbox_id"`
	ProtocolID    *string `json:"protocol_id"`
	HistoryStatus *string `json:"history_status"`
	Zmena         *string `json:"zmena"`
}

// GitterHistoryEntry is one part currently recorded against a gitterbox.
type GitterHistoryEntry struct {
	PartID          *string `json:"part_id"`
	CreateTimestamp *string `json:"create_timestamp"`
	EmployeeID      *string `json:"employee_id"`
	StationID       *string `json:"station_id"`
	LastStatus      *string `json:"last_status"`
	StatusTimestamp *string `json:"status_timestamp"`
	ShippingID      *string `json:"shipping_id"`
}
