package transportx

import (
	"net/http"
	"time"

	"github.com/siteshield/siteshield-go/pkg/identity"
)

// Severity grades a user-visible notification.
type Severity string

const (
	SeverityInfo  Severity = "info"
	SeverityWarn  Severity = "warn"
	SeverityError Severity = "error"
)

// NotificationLife is the auto-dismiss lifetime attached to pipeline
// notifications.
const NotificationLife = 5 * time.Second

// Notification is a short, auto-dismissing user-visible message. It never
// blocks the request that produced it.
type Notification struct {
	Severity Severity
	Summary  string
	Detail   string
	Life     time.Duration
}

// Notifier delivers notifications to the user. Implementations must not
// block; Notify is called on the request path.
type Notifier interface {
	Notify(n Notification)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(n Notification)

func (f NotifierFunc) Notify(n Notification) { f(n) }

// NopNotifier discards all notifications.
type NopNotifier struct{}

func (NopNotifier) Notify(Notification) {}

// NotifyTransport classifies terminal failures of API requests into at most
// one user-visible notification each, then passes the outcome through
// unchanged so local error handling still runs.
//
// 401 responses are never notified here: authentication messaging belongs to
// the refresh transport, which knows whether a refresh was attempted.
// Consent-required failures are part of the normal consent redirect flow and
// stay silent too.
type NotifyTransport struct {
	base     http.RoundTripper
	apiBase  string
	notifier Notifier
}

// NewNotifyTransport wraps base with terminal-failure notification.
func NewNotifyTransport(base http.RoundTripper, apiBase string, notifier Notifier) *NotifyTransport {
	if base == nil {
		base = http.DefaultTransport
	}
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &NotifyTransport{
		base:     base,
		apiBase:  apiBase,
		notifier: notifier,
	}
}

func (t *NotifyTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.base.RoundTrip(req)
	if !underBase(req, t.apiBase) {
		return resp, err
	}

	if err != nil {
		if !identity.IsConsentRequired(err) {
			t.notifier.Notify(Notification{
				Severity: SeverityError,
				Summary:  "Network Error",
				Detail:   "Unable to connect to the server. Please check your connection.",
				Life:     NotificationLife,
			})
		}
		return resp, err
	}

	switch {
	case resp.StatusCode == http.StatusForbidden:
		t.notifier.Notify(Notification{
			Severity: SeverityError,
			Summary:  "Access Denied",
			Detail:   "You do not have permission to perform this action.",
			Life:     NotificationLife,
		})
	case resp.StatusCode >= 500:
		t.notifier.Notify(Notification{
			Severity: SeverityError,
			Summary:  "Server Error",
			Detail:   "An error occurred on the server. Please try again later.",
			Life:     NotificationLife,
		})
	}

	return resp, nil
}
