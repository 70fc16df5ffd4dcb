package services

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"traceability-api/internal/dispatch"
	"traceability-api/internal/models"
)

type gitterService struct {
	dispatcher Dispatcher
	logger     *logrus.Logger
}

// GitterHistory lists every part recorded against a gitterbox, most recent
// status first. An unknown gitterbox yields an empty list, not an error.
func (s *gitterService) GitterHistory(ctx context.Context, shippingID string) ([]models.GitterHistoryEntry, error) {
	shippingID = strings.TrimSpace(shippingID)
	if shippingID == "" {
		return nil, dispatch.NewValidation("Please pass shipping_id in the query string or request body")
	}

	outcomes, err := s.dispatcher.DispatchAll(ctx, gitterHistoryCommand(shippingID))
	if err != nil {
		return nil, err
	}

	outcome := outcomes[0]
	entries := make([]models.GitterHistoryEntry, 0, len(outcome.Rows))
	for _, row := range outcome.Rows {
		// station_name is fetched for diagnostics but deliberately not part
		// of the response contract.
		entries = append(entries, models.GitterHistoryEntry{
			PartID:          optString(row["part_id"]),
			CreateTimestamp: optString(row["create_timestamp"]),
			EmployeeID:      optString(row["employee_id"]),
			StationID:       optString(row["station_id"]),
			LastStatus:      optString(row["last_status"]),
			StatusTimestamp: optString(row["status_timestamp"]),
			ShippingID:      optString(row["shipping_id"]),
		})
	}
	return entries, nil
}
