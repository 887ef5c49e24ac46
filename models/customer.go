package models

// Notification preferences a customer can choose from.
const (
	NotifyEmail = "email"
	NotifySMS   = "sms"
	NotifyPush  = "push"
)

// Customer represents a shop customer contact. Distance is kilometers
// from the shop. NotificationPreference is stored but not acted upon;
// no delivery channel exists.
type Customer struct {
	ID                     string  `json:"id"`
	Name                   string  `json:"name"`
	Email                  string  `json:"email"`
	Phone                  string  `json:"phone"`
	Address                string  `json:"address"`
	Distance               float64 `json:"distance"`
	NotificationPreference string  `json:"notificationPreference"`
}

// Validate checks the caller-supplied fields of a customer.
func (c *Customer) Validate() error {
	if c.Name == "" {
		return NewValidationError("customer", "name", "cannot be empty", c.Name)
	}
	if c.Distance < 0 {
		return NewValidationError("customer", "distance", "must be non-negative", c.Distance)
	}
	switch c.NotificationPreference {
	case NotifyEmail, NotifySMS, NotifyPush:
	default:
		return NewValidationError("customer", "notificationPreference",
			"must be one of email, sms, push", c.NotificationPreference)
	}
	return nil
}
