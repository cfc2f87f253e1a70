package shieldsdk

import (
	"context"
	"fmt"
	"net/url"
	"time"
)

// ListReadingsParams selects the reading history of one sensor. SensorID is
// required; the time window and paging are optional.
type ListReadingsParams struct {
	SensorID  int64
	StartDate time.Time
	EndDate   time.Time
	Paging
}

// ListReadings returns readings for a sensor, newest first.
func (c *Client) ListReadings(ctx context.Context, params ListReadingsParams) (*PagedResult[Reading], error) {
	query := url.Values{}
	setInt(query, "sensorId", params.SensorID)
	setTime(query, "startDate", params.StartDate)
	setTime(query, "endDate", params.EndDate)
	params.Paging.apply(query)

	var result PagedResult[Reading]
	if err := c.get(ctx, "reading", query, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetReading fetches one reading by ID.
func (c *Client) GetReading(ctx context.Context, id int64) (*Reading, error) {
	var reading Reading
	if err := c.get(ctx, fmt.Sprintf("reading/%d", id), nil, &reading); err != nil {
		return nil, err
	}
	return &reading, nil
}

// LatestReading fetches the most recent reading of a sensor.
func (c *Client) LatestReading(ctx context.Context, sensorID int64) (*Reading, error) {
	var reading Reading
	if err := c.get(ctx, fmt.Sprintf("reading/latest/%d", sensorID), nil, &reading); err != nil {
		return nil, err
	}
	return &reading, nil
}
