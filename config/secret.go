package config

import "encoding/json"

const redacted = "******"

// SecretValue holds a credential that must never show up in logs or dumps.
type SecretValue string

func (s SecretValue) Value() string {
	return string(s)
}

func (s SecretValue) String() string {
	if s == "" {
		return ""
	}
	return redacted
}

func (s SecretValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}
