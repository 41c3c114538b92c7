package entities

// AuthenticationProvider is the way users are authenticated by the backend
type AuthenticationProvider string

const (
	DatabaseProvider AuthenticationProvider = "DATABASE"
	// LDAPProvider means users are managed by an external directory and cannot register
	LDAPProvider AuthenticationProvider = "LDAP"
)

// ApplicationProperties is a configuration entry exposed by the backend
type ApplicationProperties struct {
	Key         string `json:"key"`
	Value       string `json:"value"`
	Type        string `json:"type,omitempty"`
	Description string `json:"description,omitempty"`
}
