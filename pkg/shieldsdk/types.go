package shieldsdk

import "time"

// SiteStatusColor is the traffic-light health state of a site.
type SiteStatusColor string

const (
	SiteStatusGreen  SiteStatusColor = "Green"
	SiteStatusYellow SiteStatusColor = "Yellow"
	SiteStatusRed    SiteStatusColor = "Red"
)

// Zone groups sites geographically.
type Zone struct {
	ID               int64      `json:"id"`
	Name             string     `json:"name"`
	Description      string     `json:"description,omitempty"`
	CreatedDate      time.Time  `json:"createdDate"`
	LastModifiedDate *time.Time `json:"lastModifiedDate,omitempty"`
}

type CreateZoneRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type UpdateZoneRequest struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// SiteStatus is the latest health snapshot for a site.
type SiteStatus struct {
	ID            int64           `json:"id"`
	SiteID        int64           `json:"siteId"`
	CurrentStatus SiteStatusColor `json:"currentStatus"`
	Message       string          `json:"message,omitempty"`
	LastUpdated   time.Time       `json:"lastUpdated"`
}

// Site is a monitored physical location within a zone.
type Site struct {
	ID               int64       `json:"id"`
	Name             string      `json:"name"`
	ZoneID           int64       `json:"zoneId"`
	ZoneName         string      `json:"zoneName"`
	Latitude         *float64    `json:"latitude,omitempty"`
	Longitude        *float64    `json:"longitude,omitempty"`
	SiteStatus       *SiteStatus `json:"siteStatus,omitempty"`
	CreatedDate      time.Time   `json:"createdDate"`
	LastModifiedDate *time.Time  `json:"lastModifiedDate,omitempty"`
}

type CreateSiteRequest struct {
	Name      string   `json:"name"`
	ZoneID    int64    `json:"zoneId"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

type UpdateSiteRequest struct {
	ID        int64    `json:"id"`
	Name      string   `json:"name"`
	ZoneID    int64    `json:"zoneId"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

// Device is a field unit installed at a site, hosting sensors.
type Device struct {
	ID               int64      `json:"id"`
	Name             string     `json:"name"`
	IP               string     `json:"ip,omitempty"`
	SiteID           int64      `json:"siteId"`
	SiteName         string     `json:"siteName"`
	ZoneName         string     `json:"zoneName"`
	CreatedDate      time.Time  `json:"createdDate"`
	LastModifiedDate *time.Time `json:"lastModifiedDate,omitempty"`
}

type CreateDeviceRequest struct {
	Name   string `json:"name"`
	IP     string `json:"ip,omitempty"`
	SiteID int64  `json:"siteId"`
}

type UpdateDeviceRequest struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	IP     string `json:"ip,omitempty"`
	SiteID int64  `json:"siteId"`
}

// Sensor is one measurement channel on a device. Thresholds drive event
// raising and clearing on the backend.
type Sensor struct {
	ID               int64      `json:"id"`
	Name             string     `json:"name"`
	Address          string     `json:"address,omitempty"`
	Threshold        *float64   `json:"threshold,omitempty"`
	ClearThreshold   *float64   `json:"clearThreshold,omitempty"`
	DeviceID         int64      `json:"deviceId"`
	DeviceName       string     `json:"deviceName"`
	SiteID           int64      `json:"siteId"`
	SiteName         string     `json:"siteName"`
	ZoneName         string     `json:"zoneName"`
	RegTypeID        int64      `json:"regTypeId"`
	RegTypeName      string     `json:"regTypeName"`
	RegTypeCount     int        `json:"regTypeCount"`
	RegTypeDataType  string     `json:"regTypeDataType"`
	CreatedDate      time.Time  `json:"createdDate"`
	LastModifiedDate *time.Time `json:"lastModifiedDate,omitempty"`
}

type CreateSensorRequest struct {
	Name           string   `json:"name"`
	Address        string   `json:"address,omitempty"`
	Threshold      *float64 `json:"threshold,omitempty"`
	ClearThreshold *float64 `json:"clearThreshold,omitempty"`
	DeviceID       int64    `json:"deviceId"`
	RegTypeID      int64    `json:"regTypeId"`
}

type UpdateSensorRequest struct {
	ID             int64    `json:"id"`
	Name           string   `json:"name"`
	Address        string   `json:"address,omitempty"`
	Threshold      *float64 `json:"threshold,omitempty"`
	ClearThreshold *float64 `json:"clearThreshold,omitempty"`
	DeviceID       int64    `json:"deviceId"`
	RegTypeID      int64    `json:"regTypeId"`
}

// RegType describes a register layout sensors read: how many registers and
// what data type they hold.
type RegType struct {
	ID               int64      `json:"id"`
	Name             string     `json:"name"`
	Count            int        `json:"count"`
	DataType         string     `json:"dataType"`
	CreatedDate      time.Time  `json:"createdDate"`
	LastModifiedDate *time.Time `json:"lastModifiedDate,omitempty"`
}

type CreateRegTypeRequest struct {
	Name     string `json:"name"`
	Count    int    `json:"count"`
	DataType string `json:"dataType"`
}

type UpdateRegTypeRequest struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Count    int    `json:"count"`
	DataType string `json:"dataType"`
}

// ReadingValue is one register value within a reading.
type ReadingValue struct {
	ID         int64  `json:"id"`
	ReadingID  int64  `json:"readingId"`
	ValueIndex int    `json:"valueIndex"`
	Value      string `json:"value"`
	ValueType  string `json:"valueType,omitempty"`
}

// Reading is a timestamped set of values sampled from a sensor.
type Reading struct {
	ID               int64          `json:"id"`
	SensorID         int64          `json:"sensorId"`
	SensorName       string         `json:"sensorName"`
	Timestamp        time.Time      `json:"timestamp"`
	Values           []ReadingValue `json:"values"`
	CreatedDate      time.Time      `json:"createdDate"`
	LastModifiedDate *time.Time     `json:"lastModifiedDate,omitempty"`
}

// Event is an alert raised when a sensor crosses its threshold.
type Event struct {
	ID                int64      `json:"id"`
	SensorID          int64      `json:"sensorId"`
	SensorName        string     `json:"sensorName"`
	DeviceID          int64      `json:"deviceId"`
	DeviceName        string     `json:"deviceName"`
	SiteID            int64      `json:"siteId"`
	SiteName          string     `json:"siteName"`
	ZoneName          string     `json:"zoneName"`
	TimeRaised        time.Time  `json:"timeRaised"`
	Message           string     `json:"message"`
	EventTypeID       int64      `json:"eventTypeId"`
	EventTypeName     string     `json:"eventTypeName"`
	EventTypeSeverity string     `json:"eventTypeSeverity"`
	Resolved          bool       `json:"resolved"`
	ResolvedBy        *int64     `json:"resolvedBy,omitempty"`
	ResolvedByName    string     `json:"resolvedByName,omitempty"`
	ResolvedAt        *time.Time `json:"resolvedAt,omitempty"`
	ResolutionNotes   string     `json:"resolutionNotes,omitempty"`
	CreatedDate       time.Time  `json:"createdDate"`
	LastModifiedDate  *time.Time `json:"lastModifiedDate,omitempty"`
}

type ResolveEventRequest struct {
	ResolutionNotes string `json:"resolutionNotes,omitempty"`
}

// EventType classifies events by category and severity.
type EventType struct {
	ID               int64      `json:"id"`
	Name             string     `json:"name"`
	Description      string     `json:"description,omitempty"`
	Category         string     `json:"category,omitempty"`
	Severity         string     `json:"severity"`
	CreatedDate      time.Time  `json:"createdDate"`
	LastModifiedDate *time.Time `json:"lastModifiedDate,omitempty"`
}

type CreateEventTypeRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
	Severity    string `json:"severity,omitempty"`
}

type UpdateEventTypeRequest struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
	Severity    string `json:"severity,omitempty"`
}

// Maintenance is a logged maintenance visit against a sensor.
type Maintenance struct {
	ID          int64     `json:"id"`
	SensorID    int64     `json:"sensorId"`
	SensorName  string    `json:"sensorName"`
	DeviceID    int64     `json:"deviceId"`
	DeviceName  string    `json:"deviceName"`
	SiteID      int64     `json:"siteId"`
	SiteName    string    `json:"siteName"`
	ZoneName    string    `json:"zoneName"`
	UserID      int64     `json:"userId"`
	UserName    string    `json:"userName"`
	Message     string    `json:"message"`
	CreatedDate time.Time `json:"createdDate"`
}

type CreateMaintenanceRequest struct {
	SensorID int64  `json:"sensorId"`
	UserID   int64  `json:"userId"`
	Message  string `json:"message"`
}

// NotificationRule routes matching events to a recipient over a channel.
type NotificationRule struct {
	ID                int64      `json:"id"`
	Name              string     `json:"name"`
	TriggerType       string     `json:"triggerType"`
	EventTypeID       *int64     `json:"eventTypeId,omitempty"`
	EventTypeName     string     `json:"eventTypeName,omitempty"`
	Channel           string     `json:"channel"`
	RecipientUserID   int64      `json:"recipientUserId"`
	RecipientUserName string     `json:"recipientUserName"`
	IsActive          bool       `json:"isActive"`
	CreatedDate       time.Time  `json:"createdDate"`
	LastModifiedDate  *time.Time `json:"lastModifiedDate,omitempty"`
}

type CreateNotificationRuleRequest struct {
	Name            string `json:"name"`
	TriggerType     string `json:"triggerType"`
	EventTypeID     *int64 `json:"eventTypeId,omitempty"`
	Channel         string `json:"channel"`
	RecipientUserID int64  `json:"recipientUserId"`
	IsActive        *bool  `json:"isActive,omitempty"`
}

type UpdateNotificationRuleRequest struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	TriggerType     string `json:"triggerType"`
	EventTypeID     *int64 `json:"eventTypeId,omitempty"`
	Channel         string `json:"channel"`
	RecipientUserID int64  `json:"recipientUserId"`
	IsActive        bool   `json:"isActive"`
}

// ScreenAccessLevel is the permission granted on one screen.
type ScreenAccessLevel int

const (
	ScreenAccessNone   ScreenAccessLevel = 0
	ScreenAccessView   ScreenAccessLevel = 1
	ScreenAccessManage ScreenAccessLevel = 2
)

// Role is a named permission set, optionally tenant-scoped.
type Role struct {
	ID               int64      `json:"id"`
	Name             string     `json:"name"`
	Description      string     `json:"description"`
	IsSystemRole     bool       `json:"isSystemRole"`
	IsSystemWide     bool       `json:"isSystemWide"`
	TenantID         *int64     `json:"tenantId,omitempty"`
	TenantName       string     `json:"tenantName,omitempty"`
	CreatedDate      time.Time  `json:"createdDate"`
	LastModifiedDate *time.Time `json:"lastModifiedDate,omitempty"`
}

type CreateRoleRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	TenantID    *int64 `json:"tenantId,omitempty"`
}

type UpdateRoleRequest struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Screen identifies one permission-gated area of the product.
type Screen struct {
	Key         string `json:"key"`
	DisplayName string `json:"displayName"`
}

// ScreenPermission pairs a screen with the access level a role grants on it.
type ScreenPermission struct {
	ScreenKey string            `json:"screenKey"`
	Access    ScreenAccessLevel `json:"access"`
}

// Tenant is one customer organization.
type Tenant struct {
	ID               int64      `json:"id"`
	Name             string     `json:"name"`
	Description      string     `json:"description,omitempty"`
	IsActive         bool       `json:"isActive"`
	CreatedDate      time.Time  `json:"createdDate"`
	LastModifiedDate *time.Time `json:"lastModifiedDate,omitempty"`
}

type CreateTenantRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	IsActive    *bool  `json:"isActive,omitempty"`
}

type UpdateTenantRequest struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	IsActive    bool   `json:"isActive"`
}

// UserListItem is one row of the user administration list.
type UserListItem struct {
	ID        int64    `json:"id"`
	Email     string   `json:"email"`
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Roles     []string `json:"roles"`
	TenantID  *int64   `json:"tenantId,omitempty"`
}

// SyncUserRequest bootstraps a backend user record from identity-provider
// claims. Sent to the session-bootstrap endpoint after login.
type SyncUserRequest struct {
	IdentityID string `json:"auth0Id"`
	Email      string `json:"email"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Provider   string `json:"provider"`
}

// SyncUserResponse describes the backend user plus its effective roles and
// permissions.
type SyncUserResponse struct {
	UserID      int64    `json:"userId"`
	Email       string   `json:"email"`
	FirstName   string   `json:"firstName"`
	LastName    string   `json:"lastName"`
	Roles       []string `json:"roles"`
	Permissions []string `json:"permissions"`
	IsNewUser   bool     `json:"isNewUser"`
}

// DashboardSummary is the headline tile counts for the dashboard.
type DashboardSummary struct {
	TotalSites   int `json:"totalSites"`
	TotalDevices int `json:"totalDevices"`
	TotalSensors int `json:"totalSensors"`
	ActiveEvents int `json:"activeEvents"`
	GreenSites   int `json:"greenSites"`
	YellowSites  int `json:"yellowSites"`
	RedSites     int `json:"redSites"`
}

// SiteOverview is one row of the dashboard site table.
type SiteOverview struct {
	SiteID   int64  `json:"siteId"`
	SiteName string `json:"siteName"`
	Level    *string `json:"level"`
	Status   string `json:"status"`
	Region   string `json:"region"`
	ZoneName string `json:"zoneName"`
}

// ChartPoint is one timestamped sensor value on a dashboard chart.
type ChartPoint struct {
	Timestamp  time.Time `json:"timestamp"`
	Value      *float64  `json:"value"`
	SensorName string    `json:"sensorName"`
	SensorID   int64     `json:"sensorId"`
}

// StateTransition is one site status change on the dashboard timeline.
type StateTransition struct {
	Timestamp time.Time `json:"timestamp"`
	Status    string    `json:"status"`
	SiteName  string    `json:"siteName"`
	SiteID    int64     `json:"siteId"`
}

// EventChartPoint is one event on the dashboard event strip.
type EventChartPoint struct {
	TimeRaised    time.Time `json:"timeRaised"`
	EventTypeName string    `json:"eventTypeName"`
	SensorName    string    `json:"sensorName"`
	SiteName      string    `json:"siteName"`
	Resolved      bool      `json:"resolved"`
	EventID       int64     `json:"eventId"`
}

// CategoryBreakdown is the per-category event count for the pie chart.
type CategoryBreakdown struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
	Severity string `json:"severity"`
}

// CurrentReading is a sensor's latest value for the dashboard gauges.
type CurrentReading struct {
	SensorID        int64      `json:"sensorId"`
	SensorName      string     `json:"sensorName"`
	CurrentValue    *string    `json:"currentValue"`
	LastReadingTime *time.Time `json:"lastReadingTime"`
}

// DashboardData is the full dashboard payload.
type DashboardData struct {
	Summary              DashboardSummary  `json:"summary"`
	SiteOverview         []SiteOverview    `json:"siteOverview"`
	LevelChartData       []ChartPoint      `json:"levelChartData"`
	AmpsChartData        []ChartPoint      `json:"ampsChartData"`
	CurrentLevelReadings []CurrentReading  `json:"currentLevelReadings"`
	CurrentAmpsReadings  []CurrentReading  `json:"currentAmpsReadings"`
	StateTransitions     []StateTransition `json:"stateTransitions"`
	EventsChartData      []EventChartPoint `json:"eventsChartData"`
	CategoryBreakdown    []CategoryBreakdown `json:"categoryBreakdown"`
}
