package shieldsdk

import (
	"context"
	"net/url"
	"time"
)

// DashboardParams scopes the dashboard payload to a site and time window.
// Zero values mean "all sites" and "backend default window".
type DashboardParams struct {
	SiteID    int64
	StartDate time.Time
	EndDate   time.Time
}

func (p DashboardParams) query() url.Values {
	query := url.Values{}
	setInt(query, "siteId", p.SiteID)
	setTime(query, "startDate", p.StartDate)
	setTime(query, "endDate", p.EndDate)
	return query
}

// GetDashboardData returns the full dashboard payload in one call.
func (c *Client) GetDashboardData(ctx context.Context, params DashboardParams) (*DashboardData, error) {
	var data DashboardData
	if err := c.get(ctx, "dashboard", params.query(), &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// GetDashboardSummary returns just the headline tile counts.
func (c *Client) GetDashboardSummary(ctx context.Context, params DashboardParams) (*DashboardSummary, error) {
	var summary DashboardSummary
	if err := c.get(ctx, "dashboard/summary", params.query(), &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}
