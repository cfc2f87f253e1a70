package shieldsdk

import (
	"context"
	"net/url"
)

// ListUsersParams filters the user administration list.
type ListUsersParams struct {
	TenantID int64
	Search   string
	Paging
}

// ListUsers returns user accounts visible to the caller.
func (c *Client) ListUsers(ctx context.Context, params ListUsersParams) (*PagedResult[UserListItem], error) {
	query := url.Values{}
	setInt(query, "tenantId", params.TenantID)
	setStr(query, "search", params.Search)
	params.Paging.apply(query)

	var result PagedResult[UserListItem]
	if err := c.get(ctx, "user/list", query, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// SyncUser bootstraps the backend user record from identity-provider claims.
// Called once per session after login, before any other API call. The
// bootstrap request itself is sent without a tenant header since the tenant
// is not known until the response arrives.
func (c *Client) SyncUser(ctx context.Context, req SyncUserRequest) (*SyncUserResponse, error) {
	var resp SyncUserResponse
	if err := c.post(ctx, "auth/sync", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
