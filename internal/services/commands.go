package services

import (
	"database/sql"

	"traceability-api/internal/dispatch"
	"traceability-api/internal/models"
)

// Command constructors. Each one fixes the operation name and the parameter
// order of its target stored procedure or query; parameter order and
// nullability must match the database's declaration exactly.

func authenticateCardCommand(cardID string) dispatch.Command {
	return dispatch.Command{
		Operation: "sp_authenticate_card",
		Statement: "EXEC [dbo].[sp_authenticate_card] @card_id",
		Args:      []interface{}{sql.Named("card_id", cardID)},
		Kind:      dispatch.CommandRead,
		Key:       cardID,
	}
}

func setGitterStatusCommand(req *models.ChangeStatusRequest) dispatch.Command {
	return dispatch.Command{
		Operation: "set_gitter_status",
		Statement: "EXEC set_gitter_status @station_id, @status, @status_timestamp, @shipping_id, @current_workspace_id",
		Args: []interface{}{
			sql.Named("station_id", req.StationID),
			sql.Named("status", req.Status),
			sql.Named("status_timestamp", req.StatusTimestamp),
			sql.Named("shipping_id", req.ShippingID),
			sql.Named("current_workspace_id", req.CurrentWorkspaceID),
		},
		Kind: dispatch.CommandWrite,
		Key:  req.StationID,
	}
}

func insertForgingScanCommand(req *models.ForgingScanRequest) dispatch.Command {
	return dispatch.Command{
		Operation: "InsertKovaciLinkaScan",
		Statement: "EXEC InsertKovaciLinkaScan @gitter_id, @employee_id, @position",
		Args: []interface{}{
			sql.Named("gitter_id", req.GitterID),
			sql.Named("employee_id", req.EmployeeID),
			sql.Named("position", req.Position),
		},
		Kind: dispatch.CommandWrite,
		Key:  req.GitterID,
	}
}

func insertProtocolPartCommand(req *models.ProtocolPartRequest) dispatch.Command {
	return dispatch.Command{
		Operation: "insert_protocol_part",
		Statement: "EXEC insert_protocol_part @part_id, @employee_id, @station_id, @status, @status_timestamp, @shipping_id, @protocol_id",
		Args: []interface{}{
			sql.Named("part_id", req.PartID),
			sql.Named("employee_id", req.EmployeeID),
			sql.Named("station_id", req.StationID),
			sql.Named("status", req.Status),
			sql.Named("status_timestamp", req.StatusTimestamp),
			sql.Named("shipping_id", req.ShippingID),
			sql.Named("protocol_id", req.ProtocolID),
		},
		Kind: dispatch.CommandWrite,
		Key:  req.PartID,
	}
}

func insertTraceabilityLogCommand(msg *models.OperationLogMessage) dispatch.Command {
	return dispatch.Command{
		Operation: "InsertTraceabilityLog",
		Statement: "EXEC InsertTraceabilityLog @part_id, @employee_id, @station_id, @status, @status_timestamp, @shipping_id",
		Args: []interface{}{
			sql.Named("part_id", msg.PartID),
			sql.Named("employee_id", msg.EmployeeID),
			sql.Named("station_id", msg.StationID),
			sql.Named("status", msg.Status),
			sql.Named("status_timestamp", msg.StatusTimestamp),
			sql.Named("shipping_id", msg.ShippingID),
		},
		Kind: dispatch.CommandWrite,
		Key:  msg.PartID,
	}
}

func forgingCheckCommand(gitterID string) dispatch.Command {
	return dispatch.Command{
		Operation: "kovaci_linka_check",
		Statement: `SELECT TOP 1
				gitter_id,
				employee_id,
				timestamp,
				position
			FROM [dbo].[kovaci_linka_scans]
			WHERE gitter_id = @gitter_id
			ORDER BY timestamp DESC`,
		Args: []interface{}{sql.Named("gitter_id", gitterID)},
		Kind: dispatch.CommandRead,
		Key:  gitterID,
	}
}

func partStatusCommand(partID string) dispatch.Command {
	return dispatch.Command{
		Operation: "read_part_status",
		Statement: `SELECT last_status, station_id, status_timestamp, create_timestamp, employee_id, shipping_id
			FROM dbo.part_status
			WHERE part_id = @part_id`,
		Args: []interface{}{sql.Named("part_id", partID)},
		Kind: dispatch.CommandRead,
		Key:  partID,
	}
}

func gitterHistoryCommand(shippingID string) dispatch.Command {
	return dispatch.Command{
		Operation: "gitter_history",
		Statement: `SELECT
				ps.part_id,
				ps.last_status,
				ps.station_id,
				ps.status_timestamp,
				ps.create_timestamp,
				ps.employee_id,
				ps.shipping_id,
				cst.station_name
			FROM dbo.part_status ps
			LEFT JOIN dbo.c_station cst ON cst.station_id = ps.station_id
			WHERE ps.shipping_id = @shipping_id
			ORDER BY ps.status_timestamp DESC`,
		Args: []interface{}{sql.Named("shipping_id", shippingID)},
		Kind: dispatch.CommandRead,
		Key:  shippingID,
	}
}

func partHistoryCommand(partID string) dispatch.Command {
	return dispatch.Command{
		Operation: "part_history",
		Statement: `SELECT
				COALESCE(tl.part_id, hps.part_id)                   AS Part_ID,
				cst.station_name                                    AS Station,
				COALESCE(tl.status, hps.status)                     AS Rezim_Cteni,
				COALESCE(tl.status_timestamp, hps.status_timestamp) AS Timestamp,
				COALESCE(tl.employee_id, hps.employee_id)           AS Employee,
				COALESCE(tl.shipping_id, hps.shipping_id)           AS Gitterbox_ID,
				COALESCE(pp.protocol_id, NULL)                      AS Protocol_ID,
				hps.status                                          AS History_Status,
				CASE WHEN hps.status IS NOT NULL THEN 'zmena statusu' ELSE NULL END AS zmena
			FROM dbo.traceability_log tl
			FULL OUTER JOIN dbo.h_part_status hps
				ON tl.part_id = hps.part_id
				AND tl.status_timestamp = hps.status_timestamp
			LEFT JOIN dbo.c_station cst
				ON cst.station_id = COALESCE(tl.station_id, hps.station_id)
			LEFT JOIN (
				SELECT DISTINCT shipping_id, station_id, protocol_id
				FROM dbo.protocol_part
			) pp
				ON pp.shipping_id = tl.shipping_id
				AND pp.station_id = tl.station_id
			WHERE COALESCE(tl.part_id, hps.part_id) = @part_id
			ORDER BY COALESCE(tl.status_timestamp, hps.status_timestamp) DESC`,
		Args: []interface{}{sql.Named("part_id", partID)},
		Kind: dispatch.CommandRead,
		Key:  partID,
	}
}
