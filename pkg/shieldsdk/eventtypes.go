package shieldsdk

import (
	"context"
	"fmt"
	"net/url"
)

// ListEventTypesParams pages the event-type list.
type ListEventTypesParams struct {
	Category string
	Paging
}

// ListEventTypes returns event types, optionally filtered by category.
func (c *Client) ListEventTypes(ctx context.Context, params ListEventTypesParams) (*PagedResult[EventType], error) {
	query := url.Values{}
	setStr(query, "category", params.Category)
	params.Paging.apply(query)

	var result PagedResult[EventType]
	if err := c.get(ctx, "eventtype", query, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetEventType fetches one event type by ID.
func (c *Client) GetEventType(ctx context.Context, id int64) (*EventType, error) {
	var et EventType
	if err := c.get(ctx, fmt.Sprintf("eventtype/%d", id), nil, &et); err != nil {
		return nil, err
	}
	return &et, nil
}

// CreateEventType creates an event type.
func (c *Client) CreateEventType(ctx context.Context, req CreateEventTypeRequest) (*EventType, error) {
	var et EventType
	if err := c.post(ctx, "eventtype", req, &et); err != nil {
		return nil, err
	}
	return &et, nil
}

// UpdateEventType updates an event type.
func (c *Client) UpdateEventType(ctx context.Context, req UpdateEventTypeRequest) (*EventType, error) {
	var et EventType
	if err := c.put(ctx, fmt.Sprintf("eventtype/%d", req.ID), req, &et); err != nil {
		return nil, err
	}
	return &et, nil
}

// DeleteEventType removes an event type not referenced by any event.
func (c *Client) DeleteEventType(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("eventtype/%d", id))
}
