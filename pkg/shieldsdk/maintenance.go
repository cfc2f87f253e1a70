package shieldsdk

import (
	"context"
	"fmt"
	"net/url"
	"time"
)

// ListMaintenanceParams filters the maintenance log.
type ListMaintenanceParams struct {
	SensorID  int64
	UserID    int64
	StartDate time.Time
	EndDate   time.Time
	Paging
}

// ListMaintenance returns maintenance visits, newest first.
func (c *Client) ListMaintenance(ctx context.Context, params ListMaintenanceParams) (*PagedResult[Maintenance], error) {
	query := url.Values{}
	setInt(query, "sensorId", params.SensorID)
	setInt(query, "userId", params.UserID)
	setTime(query, "startDate", params.StartDate)
	setTime(query, "endDate", params.EndDate)
	params.Paging.apply(query)

	var result PagedResult[Maintenance]
	if err := c.get(ctx, "maintenance", query, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetMaintenance fetches one maintenance visit by ID.
func (c *Client) GetMaintenance(ctx context.Context, id int64) (*Maintenance, error) {
	var m Maintenance
	if err := c.get(ctx, fmt.Sprintf("maintenance/%d", id), nil, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// CreateMaintenance logs a maintenance visit against a sensor.
func (c *Client) CreateMaintenance(ctx context.Context, req CreateMaintenanceRequest) (*Maintenance, error) {
	var m Maintenance
	if err := c.post(ctx, "maintenance", req, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// DeleteMaintenance removes a maintenance log entry.
func (c *Client) DeleteMaintenance(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("maintenance/%d", id))
}
