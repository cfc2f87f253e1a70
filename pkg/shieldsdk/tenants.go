package shieldsdk

import (
	"context"
	"fmt"
	"net/url"
)

// ListTenantsParams pages the tenant list.
type ListTenantsParams struct {
	Paging
}

// ListTenants returns customer organizations. Requires a system-wide role.
func (c *Client) ListTenants(ctx context.Context, params ListTenantsParams) (*PagedResult[Tenant], error) {
	query := url.Values{}
	params.Paging.apply(query)

	var result PagedResult[Tenant]
	if err := c.get(ctx, "tenant", query, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetTenant fetches one tenant by ID.
func (c *Client) GetTenant(ctx context.Context, id int64) (*Tenant, error) {
	var t Tenant
	if err := c.get(ctx, fmt.Sprintf("tenant/%d", id), nil, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// CreateTenant creates a tenant.
func (c *Client) CreateTenant(ctx context.Context, req CreateTenantRequest) (*Tenant, error) {
	var t Tenant
	if err := c.post(ctx, "tenant", req, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// UpdateTenant updates a tenant.
func (c *Client) UpdateTenant(ctx context.Context, req UpdateTenantRequest) (*Tenant, error) {
	var t Tenant
	if err := c.put(ctx, fmt.Sprintf("tenant/%d", req.ID), req, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// DeleteTenant deactivates a tenant and its data.
func (c *Client) DeleteTenant(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("tenant/%d", id))
}
