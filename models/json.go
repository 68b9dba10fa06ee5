package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// jsonValue marshals a field for storage in a JSONB column.
func jsonValue(v interface{}) (driver.Value, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(data), nil // Return as string for JSONB type
}

// jsonScan unmarshals a JSONB column into the destination field.
func jsonScan(dst interface{}, value interface{}) error {
	if value == nil {
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("failed to unmarshal %T: unsupported type %T", dst, value)
	}

	return json.Unmarshal(data, dst)
}

// Image holds hosted image metadata. Uploading itself happens outside this API.
type Image struct {
	PublicID string `json:"public_id,omitempty"`
	URL      string `json:"url"`
}

func (i Image) Value() (driver.Value, error)  { return jsonValue(i) }
func (i *Image) Scan(value interface{}) error { return jsonScan(i, value) }

type ImageList []Image

func (l ImageList) Value() (driver.Value, error)  { return jsonValue(l) }
func (l *ImageList) Scan(value interface{}) error { return jsonScan(l, value) }

// StringList stores a list of plain strings (e.g. doctor availability entries).
type StringList []string

func (l StringList) Value() (driver.Value, error)  { return jsonValue(l) }
func (l *StringList) Scan(value interface{}) error { return jsonScan(l, value) }
