package services

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"traceability-api/internal/dispatch"
	"traceability-api/internal/models"
)

type statusService struct {
	dispatcher Dispatcher
	logger     *logrus.Logger
}

// ChangeStatus records a gitterbox status transition.
func (s *statusService) ChangeStatus(ctx context.Context, req *models.ChangeStatusRequest) error {
	if req == nil || strings.TrimSpace(req.StationID) == "" {
		return dispatch.NewValidation("Missing required field: station_id")
	}

	_, err := s.dispatcher.Dispatch(ctx, setGitterStatusCommand(req))
	if err != nil {
		s.logger.WithField("station_id", req.StationID).WithError(err).Error("Error updating gitter status")
		return err
	}

	s.logger.WithField("station_id", req.StationID).Info("Gitter status updated")
	return nil
}

// ReadStatus returns the latest recorded state of a part, or nil when the
// part has no record. Absence of data is not an error.
func (s *statusService) ReadStatus(ctx context.Context, partID string) (*models.PartStatus, error) {
	partID = strings.TrimSpace(partID)
	if partID == "" {
		return nil, dispatch.NewValidation("Please pass part_id in the query string or request body")
	}

	outcome, err := s.dispatcher.Dispatch(ctx, partStatusCommand(partID))
	if err != nil {
		return nil, err
	}
	if !outcome.HasRows() {
		return nil, nil
	}

	row := outcome.Rows[0]
	return &models.PartStatus{
		PartID:            partID,
		LatestStatus:      optString(row["last_status"]),
		LatestWorkspaceID: optString(row["station_id"]),
		StatusTimestamp:   optString(row["status_timestamp"]),
		CreateTimestamp:   optString(row["create_timestamp"]),
		EmployeeID:        optString(row["employee_id"]),
		ShippingID:        optString(row["shipping_id"]),
	}, nil
}

// PartHistory returns the combined traceability and status history of a part,
// most recent first. The read runs through DispatchAll so it joins the same
// way the historical dual-read version did; today it is a single command.
func (s *statusService) PartHistory(ctx context.Context, partID string) ([]models.PartHistoryEntry, error) {
	partID = strings.TrimSpace(partID)
	if partID == "" {
		return nil, dispatch.NewValidation("Please pass part_id in the query string or request body")
	}

	outcomes, err := s.dispatcher.DispatchAll(ctx, partHistoryCommand(partID))
	if err != nil {
		return nil, err
	}

	outcome := outcomes[0]
	entries := make([]models.PartHistoryEntry, 0, len(outcome.Rows))
	for _, row := range outcome.Rows {
		entries = append(entries, models.PartHistoryEntry{
			PartID:        optString(row["Part_ID"]),
			StationID:     optString(row["Station"]),
			RezimCteni:    optString(row["Rezim_Cteni"]),
			Timestamp:     optString(row["Timestamp"]),
			EmployeeID:    optString(row["Employee"]),
			GitterboxID:   optString(row["Gitterbox_ID"]),
			ProtocolID:    optString(row["Protocol_ID"]),
			HistoryStatus: optString(row["History_Status"]),
			Zmena:         optString(row["zmena"]),
		})
	}
	return entries, nil
}
