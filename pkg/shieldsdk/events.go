package shieldsdk

import (
	"context"
	"fmt"
	"net/url"
	"time"
)

// ListEventsParams filters and pages the event list.
type ListEventsParams struct {
	SensorID    int64
	EventTypeID int64
	// Resolved filters by resolution state when non-nil.
	Resolved  *bool
	StartDate time.Time
	EndDate   time.Time
	Paging
}

// ListEvents returns events matching the filters, newest first.
func (c *Client) ListEvents(ctx context.Context, params ListEventsParams) (*PagedResult[Event], error) {
	query := url.Values{}
	setInt(query, "sensorId", params.SensorID)
	setInt(query, "eventTypeId", params.EventTypeID)
	setBool(query, "resolved", params.Resolved)
	setTime(query, "startDate", params.StartDate)
	setTime(query, "endDate", params.EndDate)
	params.Paging.apply(query)

	var result PagedResult[Event]
	if err := c.get(ctx, "event", query, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetEvent fetches one event by ID.
func (c *Client) GetEvent(ctx context.Context, id int64) (*Event, error) {
	var event Event
	if err := c.get(ctx, fmt.Sprintf("event/%d", id), nil, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

// UnresolvedEventCount returns the number of events still open. Drives the
// alert badge in the UI.
func (c *Client) UnresolvedEventCount(ctx context.Context) (int, error) {
	var count int
	if err := c.get(ctx, "event/unresolved/count", nil, &count); err != nil {
		return 0, err
	}
	return count, nil
}

// ResolveEvent marks an event resolved, attributing it to the calling user.
func (c *Client) ResolveEvent(ctx context.Context, id int64, req ResolveEventRequest) (*Event, error) {
	var event Event
	if err := c.post(ctx, fmt.Sprintf("event/%d/resolve", id), req, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

// DeleteEvent removes an event.
func (c *Client) DeleteEvent(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("event/%d", id))
}
