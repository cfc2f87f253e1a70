package shieldsdk

import (
	"context"
	"fmt"
	"net/url"
)

// ListDevicesParams filters, sorts and pages the device list.
type ListDevicesParams struct {
	SiteID     int64
	ZoneID     int64
	NameSearch string
	IPSearch   string
	SortField  string
	// SortOrder is 1 for ascending, -1 for descending, 0 for backend default.
	SortOrder int
	Paging
}

// ListDevices returns devices, optionally filtered to one site or zone.
func (c *Client) ListDevices(ctx context.Context, params ListDevicesParams) (*PagedResult[Device], error) {
	query := url.Values{}
	setInt(query, "siteId", params.SiteID)
	setInt(query, "zoneId", params.ZoneID)
	setStr(query, "nameSearch", params.NameSearch)
	setStr(query, "ipSearch", params.IPSearch)
	setStr(query, "sortField", params.SortField)
	setInt(query, "sortOrder", int64(params.SortOrder))
	params.Paging.apply(query)

	var result PagedResult[Device]
	if err := c.get(ctx, "device", query, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetDevice fetches one device by ID.
func (c *Client) GetDevice(ctx context.Context, id int64) (*Device, error) {
	var device Device
	if err := c.get(ctx, fmt.Sprintf("device/%d", id), nil, &device); err != nil {
		return nil, err
	}
	return &device, nil
}

// CreateDevice registers a device at a site.
func (c *Client) CreateDevice(ctx context.Context, req CreateDeviceRequest) (*Device, error) {
	var device Device
	if err := c.post(ctx, "device", req, &device); err != nil {
		return nil, err
	}
	return &device, nil
}

// UpdateDevice updates a device.
func (c *Client) UpdateDevice(ctx context.Context, req UpdateDeviceRequest) (*Device, error) {
	var device Device
	if err := c.put(ctx, fmt.Sprintf("device/%d", req.ID), req, &device); err != nil {
		return nil, err
	}
	return &device, nil
}

// DeleteDevice removes a device and its sensors.
func (c *Client) DeleteDevice(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("device/%d", id))
}
