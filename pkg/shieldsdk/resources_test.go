package shieldsdk

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/siteshield/siteshield-go/pkg/identity"
)

func authedProvider() *testProvider {
	return &testProvider{
		authenticated: true,
		token:         "tok",
		claims:        identity.Claims{"tenantId": "1"},
	}
}

func TestListSitesQueryParameters(t *testing.T) {
	t.Parallel()

	var gotPath, gotQuery string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		writeJSON(w, PagedResult[Site]{TotalCount: 0})
	}), authedProvider(), nil)

	_, err := client.ListSites(context.Background(), ListSitesParams{
		ZoneID:       3,
		NameSearch:   "pump",
		StatusFilter: "Red",
		SortField:    "name",
		SortOrder:    -1,
		Paging:       Paging{PageNumber: 2, PageSize: 25},
	})
	require.NoError(t, err)

	require.Equal(t, "/api/site", gotPath)
	require.Contains(t, gotQuery, "zoneId=3")
	require.Contains(t, gotQuery, "nameSearch=pump")
	require.Contains(t, gotQuery, "statusFilter=Red")
	require.Contains(t, gotQuery, "sortField=name")
	require.Contains(t, gotQuery, "sortOrder=-1")
	require.Contains(t, gotQuery, "pageNumber=2")
	require.Contains(t, gotQuery, "pageSize=25")
}

func TestListReadingsTimeWindow(t *testing.T) {
	t.Parallel()

	var gotQuery string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		writeJSON(w, PagedResult[Reading]{})
	}), authedProvider(), nil)

	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 8, 2, 0, 0, 0, 0, time.UTC)

	_, err := client.ListReadings(context.Background(), ListReadingsParams{
		SensorID:  9,
		StartDate: start,
		EndDate:   end,
	})
	require.NoError(t, err)

	require.Contains(t, gotQuery, "sensorId=9")
	require.Contains(t, gotQuery, "startDate=2026-08-01T00%3A00%3A00Z")
	require.Contains(t, gotQuery, "endDate=2026-08-02T00%3A00%3A00Z")
}

func TestResolveEvent(t *testing.T) {
	t.Parallel()

	var gotPath string
	var gotBody ResolveEventRequest
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		resolvedAt := time.Now()
		writeJSON(w, Event{ID: 12, Resolved: true, ResolvedAt: &resolvedAt})
	}), authedProvider(), nil)

	event, err := client.ResolveEvent(context.Background(), 12, ResolveEventRequest{
		ResolutionNotes: "pump reset on site",
	})
	require.NoError(t, err)

	require.Equal(t, "/api/event/12/resolve", gotPath)
	require.Equal(t, "pump reset on site", gotBody.ResolutionNotes)
	require.True(t, event.Resolved)
}

func TestUnresolvedEventCount(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/event/unresolved/count", r.URL.Path)
		writeJSON(w, 17)
	}), authedProvider(), nil)

	count, err := client.UnresolvedEventCount(context.Background())
	require.NoError(t, err)
	require.Equal(t, 17, count)
}

func TestLatestReadingPath(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/reading/latest/9", r.URL.Path)
		writeJSON(w, Reading{ID: 101, SensorID: 9, Values: []ReadingValue{{Value: "13.4"}}})
	}), authedProvider(), nil)

	reading, err := client.LatestReading(context.Background(), 9)
	require.NoError(t, err)
	require.Equal(t, int64(101), reading.ID)
	require.Equal(t, "13.4", reading.Values[0].Value)
}

func TestDeleteExpectsNoContent(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/api/zone/4", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}), authedProvider(), nil)

	require.NoError(t, client.DeleteZone(context.Background(), 4))
}

func TestSyncUserBootstrap(t *testing.T) {
	t.Parallel()

	var gotBody map[string]string
	var gotTenantHeader string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/auth/sync", r.URL.Path)
		gotTenantHeader = r.Header.Get("X-Tenant-Id")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		writeJSON(w, SyncUserResponse{UserID: 8, Email: "ops@example.com", IsNewUser: true})
	}), authedProvider(), nil)

	resp, err := client.SyncUser(context.Background(), SyncUserRequest{
		IdentityID: "auth0|abc",
		Email:      "ops@example.com",
		FirstName:  "Robin",
		LastName:   "Chen",
		Provider:   "auth0",
	})
	require.NoError(t, err)
	require.True(t, resp.IsNewUser)

	// The wire field keeps its legacy name.
	require.Equal(t, "auth0|abc", gotBody["auth0Id"])
	// Bootstrap never carries a tenant header; the backend derives it.
	require.Empty(t, gotTenantHeader)
}

func TestSetScreenPermissionsWrapsPayload(t *testing.T) {
	t.Parallel()

	var gotPath string
	var gotBody struct {
		RoleID  int64              `json:"roleId"`
		Screens []ScreenPermission `json:"screens"`
	}
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusNoContent)
	}), authedProvider(), nil)

	perms := []ScreenPermission{
		{ScreenKey: "dashboard", Access: ScreenAccessManage},
		{ScreenKey: "reports", Access: ScreenAccessView},
	}
	require.NoError(t, client.SetScreenPermissions(context.Background(), 7, perms))

	require.Equal(t, "/api/role/7/screen-permissions", gotPath)
	// The backend binds an object, not a bare array.
	require.Equal(t, int64(7), gotBody.RoleID)
	require.Len(t, gotBody.Screens, 2)
	require.Equal(t, "reports", gotBody.Screens[1].ScreenKey)
	require.Equal(t, ScreenAccessView, gotBody.Screens[1].Access)
}

func TestListNotificationRulesQueryParameters(t *testing.T) {
	t.Parallel()

	var gotQuery url.Values
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/notificationrule", r.URL.Path)
		gotQuery = r.URL.Query()
		writeJSON(w, PagedResult[NotificationRule]{})
	}), authedProvider(), nil)

	inactive := false
	_, err := client.ListNotificationRules(context.Background(), ListNotificationRulesParams{
		NameSearch:  "flood",
		TriggerType: "Threshold",
		IsActive:    &inactive,
	})
	require.NoError(t, err)

	require.Equal(t, "flood", gotQuery.Get("nameSearch"))
	require.Equal(t, "Threshold", gotQuery.Get("triggerType"))
	// false still goes on the wire; only nil omits the filter.
	require.Equal(t, "false", gotQuery.Get("isActive"))
}

func TestListDevicesFilterSurface(t *testing.T) {
	t.Parallel()

	var gotQuery url.Values
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		writeJSON(w, PagedResult[Device]{})
	}), authedProvider(), nil)

	_, err := client.ListDevices(context.Background(), ListDevicesParams{
		SiteID:     4,
		ZoneID:     2,
		NameSearch: "gateway",
		IPSearch:   "10.1.",
		SortField:  "ip",
		SortOrder:  1,
	})
	require.NoError(t, err)

	require.Equal(t, "4", gotQuery.Get("siteId"))
	require.Equal(t, "2", gotQuery.Get("zoneId"))
	require.Equal(t, "gateway", gotQuery.Get("nameSearch"))
	require.Equal(t, "10.1.", gotQuery.Get("ipSearch"))
	require.Equal(t, "ip", gotQuery.Get("sortField"))
	require.Equal(t, "1", gotQuery.Get("sortOrder"))
}

func TestListSensorsFilterSurface(t *testing.T) {
	t.Parallel()

	var gotQuery url.Values
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		writeJSON(w, PagedResult[Sensor]{})
	}), authedProvider(), nil)

	_, err := client.ListSensors(context.Background(), ListSensorsParams{
		DeviceID:   6,
		NameSearch: "temp",
		SortField:  "name",
		SortOrder:  -1,
	})
	require.NoError(t, err)

	require.Equal(t, "6", gotQuery.Get("deviceId"))
	require.Equal(t, "temp", gotQuery.Get("nameSearch"))
	require.Equal(t, "name", gotQuery.Get("sortField"))
	require.Equal(t, "-1", gotQuery.Get("sortOrder"))
	require.False(t, gotQuery.Has("siteId"))
}

func TestGetDashboardData(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/dashboard", r.URL.Path)
		require.Equal(t, "3", r.URL.Query().Get("siteId"))
		writeJSON(w, DashboardData{
			Summary: DashboardSummary{TotalSites: 4, RedSites: 1},
		})
	}), authedProvider(), nil)

	data, err := client.GetDashboardData(context.Background(), DashboardParams{SiteID: 3})
	require.NoError(t, err)
	require.Equal(t, 4, data.Summary.TotalSites)
	require.Equal(t, 1, data.Summary.RedSites)
}
