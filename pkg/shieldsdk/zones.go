package shieldsdk

import (
	"context"
	"fmt"
	"net/url"
)

// ListZonesParams filters, sorts and pages the zone list.
type ListZonesParams struct {
	NameSearch string
	SortField  string
	// SortOrder is 1 for ascending, -1 for descending, 0 for backend default.
	SortOrder int
	Paging
}

// ListZones returns zones the caller's tenant can see.
func (c *Client) ListZones(ctx context.Context, params ListZonesParams) (*PagedResult[Zone], error) {
	query := url.Values{}
	setStr(query, "nameSearch", params.NameSearch)
	setStr(query, "sortField", params.SortField)
	setInt(query, "sortOrder", int64(params.SortOrder))
	params.Paging.apply(query)

	var result PagedResult[Zone]
	if err := c.get(ctx, "zone", query, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetZone fetches one zone by ID.
func (c *Client) GetZone(ctx context.Context, id int64) (*Zone, error) {
	var zone Zone
	if err := c.get(ctx, fmt.Sprintf("zone/%d", id), nil, &zone); err != nil {
		return nil, err
	}
	return &zone, nil
}

// CreateZone creates a zone.
func (c *Client) CreateZone(ctx context.Context, req CreateZoneRequest) (*Zone, error) {
	var zone Zone
	if err := c.post(ctx, "zone", req, &zone); err != nil {
		return nil, err
	}
	return &zone, nil
}

// UpdateZone updates a zone.
func (c *Client) UpdateZone(ctx context.Context, req UpdateZoneRequest) (*Zone, error) {
	var zone Zone
	if err := c.put(ctx, fmt.Sprintf("zone/%d", req.ID), req, &zone); err != nil {
		return nil, err
	}
	return &zone, nil
}

// DeleteZone deletes a zone. Zones containing sites cannot be deleted; the
// backend answers with a validation error.
func (c *Client) DeleteZone(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("zone/%d", id))
}
