package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// createdAtLayouts are tried in order. Timestamps without a zone are read as UTC.
var createdAtLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
}

// UnmarshalJSON decodes a profile and accepts created_at with or without a
// zone offset. null or an empty string leave CreatedAt zero.
func (u *User) UnmarshalJSON(data []byte) error {
	type plain User
	aux := struct {
		*plain
		CreatedAt *string `json:"created_at"`
	}{plain: (*plain)(u)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	u.CreatedAt = time.Time{}
	if aux.CreatedAt == nil {
		return nil
	}

	createdAt, err := parseCreatedAt(*aux.CreatedAt)
	if err != nil {
		return err
	}
	u.CreatedAt = createdAt
	return nil
}

func parseCreatedAt(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, nil
	}

	for _, layout := range createdAtLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("created_at: unsupported time format %q", raw)
}
