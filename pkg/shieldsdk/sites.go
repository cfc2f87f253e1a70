package shieldsdk

import (
	"context"
	"fmt"
	"net/url"
)

// ListSitesParams filters, sorts and pages the site list.
type ListSitesParams struct {
	ZoneID       int64
	NameSearch   string
	StatusFilter string
	SortField    string
	// SortOrder is 1 for ascending, -1 for descending, 0 for backend default.
	SortOrder int
	Paging
}

// ListSites returns sites, optionally filtered to one zone.
func (c *Client) ListSites(ctx context.Context, params ListSitesParams) (*PagedResult[Site], error) {
	query := url.Values{}
	setInt(query, "zoneId", params.ZoneID)
	setStr(query, "nameSearch", params.NameSearch)
	setStr(query, "statusFilter", params.StatusFilter)
	setStr(query, "sortField", params.SortField)
	setInt(query, "sortOrder", int64(params.SortOrder))
	params.Paging.apply(query)

	var result PagedResult[Site]
	if err := c.get(ctx, "site", query, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetSite fetches one site by ID, including its latest status snapshot.
func (c *Client) GetSite(ctx context.Context, id int64) (*Site, error) {
	var site Site
	if err := c.get(ctx, fmt.Sprintf("site/%d", id), nil, &site); err != nil {
		return nil, err
	}
	return &site, nil
}

// CreateSite creates a site within a zone.
func (c *Client) CreateSite(ctx context.Context, req CreateSiteRequest) (*Site, error) {
	var site Site
	if err := c.post(ctx, "site", req, &site); err != nil {
		return nil, err
	}
	return &site, nil
}

// UpdateSite updates a site.
func (c *Client) UpdateSite(ctx context.Context, req UpdateSiteRequest) (*Site, error) {
	var site Site
	if err := c.put(ctx, fmt.Sprintf("site/%d", req.ID), req, &site); err != nil {
		return nil, err
	}
	return &site, nil
}

// DeleteSite deletes a site.
func (c *Client) DeleteSite(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("site/%d", id))
}
