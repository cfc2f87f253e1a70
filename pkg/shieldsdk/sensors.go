package shieldsdk

import (
	"context"
	"fmt"
	"net/url"
)

// ListSensorsParams filters, sorts and pages the sensor list.
type ListSensorsParams struct {
	DeviceID   int64
	NameSearch string
	SortField  string
	// SortOrder is 1 for ascending, -1 for descending, 0 for backend default.
	SortOrder int
	Paging
}

// ListSensors returns sensors, optionally filtered to one device.
func (c *Client) ListSensors(ctx context.Context, params ListSensorsParams) (*PagedResult[Sensor], error) {
	query := url.Values{}
	setInt(query, "deviceId", params.DeviceID)
	setStr(query, "nameSearch", params.NameSearch)
	setStr(query, "sortField", params.SortField)
	setInt(query, "sortOrder", int64(params.SortOrder))
	params.Paging.apply(query)

	var result PagedResult[Sensor]
	if err := c.get(ctx, "sensor", query, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetSensor fetches one sensor by ID.
func (c *Client) GetSensor(ctx context.Context, id int64) (*Sensor, error) {
	var sensor Sensor
	if err := c.get(ctx, fmt.Sprintf("sensor/%d", id), nil, &sensor); err != nil {
		return nil, err
	}
	return &sensor, nil
}

// CreateSensor adds a sensor to a device.
func (c *Client) CreateSensor(ctx context.Context, req CreateSensorRequest) (*Sensor, error) {
	var sensor Sensor
	if err := c.post(ctx, "sensor", req, &sensor); err != nil {
		return nil, err
	}
	return &sensor, nil
}

// UpdateSensor updates a sensor, including its alerting thresholds.
func (c *Client) UpdateSensor(ctx context.Context, req UpdateSensorRequest) (*Sensor, error) {
	var sensor Sensor
	if err := c.put(ctx, fmt.Sprintf("sensor/%d", req.ID), req, &sensor); err != nil {
		return nil, err
	}
	return &sensor, nil
}

// DeleteSensor removes a sensor along with its reading history.
func (c *Client) DeleteSensor(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("sensor/%d", id))
}
