package domain

import (
	"fmt"
	"time"
)

// SecurityAlertKind tags the outcome a security alert reports
type SecurityAlertKind string

const (
	AlertLoginFailed  SecurityAlertKind = "failed"
	AlertLoginSuccess SecurityAlertKind = "success"
	AlertLogout       SecurityAlertKind = "logout"
)

// SecurityAlert is a notification about an admin authentication event,
// posted to the fixed alert channel. RecipientID is empty when the attempt
// never resolved to a known admin.
type SecurityAlert struct {
	Kind        SecurityAlertKind
	RecipientID string
	Reason      string
	Timestamp   time.Time
}

// NewSecurityAlert creates an alert stamped with the current time.
func NewSecurityAlert(kind SecurityAlertKind, recipientID, reason string) SecurityAlert {
	return SecurityAlert{
		Kind:        kind,
		RecipientID: recipientID,
		Reason:      reason,
		Timestamp:   time.Now().UTC(),
	}
}

// Message renders the alert as the Discord message posted to the alert
// channel. Four variants: failed with identity, failed anonymous, success
// and logout.
func (a SecurityAlert) Message() string {
	ts := a.Timestamp.Format(time.RFC3339)
	switch a.Kind {
	case AlertLoginSuccess:
		return fmt.Sprintf("✅ Admin login successful for <@%s> (%s)", a.RecipientID, ts)
	case AlertLogout:
		return fmt.Sprintf("👋 Admin logged out: <@%s> (%s)", a.RecipientID, ts)
	default:
		if a.RecipientID == "" {
			return fmt.Sprintf("⚠️ Failed admin login attempt: %s (%s)", a.Reason, ts)
		}
		return fmt.Sprintf("⚠️ Failed admin login for <@%s>: %s (%s)", a.RecipientID, a.Reason, ts)
	}
}
