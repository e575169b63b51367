// Package config loads YAML configuration files as key/value documents.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Document is a parsed configuration file. Keys are looked up by dotted
// path, e.g. "mqtt.url".
type Document struct {
	values map[string]interface{}
}

// Load reads and parses a YAML file.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return doc, nil
}

// Parse parses YAML content. Empty content yields an empty document.
func Parse(data []byte) (*Document, error) {
	values := make(map[string]interface{})
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, err
	}
	return &Document{values: values}, nil
}

// Empty returns a document with no keys.
func Empty() *Document {
	return &Document{values: make(map[string]interface{})}
}

// Lookup finds the raw value at a dotted path.
func (d *Document) Lookup(key string) (interface{}, bool) {
	if d == nil {
		return nil, false
	}
	var cur interface{} = d.values
	for _, part := range strings.Split(key, ".") {
		m, ok := cur.(map[string]interface{})
		if !ok {
			return nil, false
		}
		if cur, ok = m[part]; !ok {
			return nil, false
		}
	}
	return cur, true
}

// Has reports whether the key is present.
func (d *Document) Has(key string) bool {
	_, ok := d.Lookup(key)
	return ok
}

// Sub returns the nested document at key, or an empty one.
func (d *Document) Sub(key string) *Document {
	if v, ok := d.Lookup(key); ok {
		if m, ok := v.(map[string]interface{}); ok {
			return &Document{values: m}
		}
	}
	return Empty()
}

// String returns the value at key formatted as a string.
func (d *Document) String(key string) (string, bool) {
	v, ok := d.Lookup(key)
	if !ok || v == nil {
		return "", false
	}
	if s, ok := v.(string); ok {
		return s, true
	}
	if _, ok := v.(map[string]interface{}); ok {
		return "", false
	}
	return fmt.Sprint(v), true
}

// Int returns the integer at key.
func (d *Document) Int(key string) (int, bool, error) {
	v, ok := d.Lookup(key)
	if !ok {
		return 0, false, nil
	}
	switch val := v.(type) {
	case int:
		return val, true, nil
	case string:
		n, err := strconv.Atoi(val)
		if err != nil {
			return 0, true, fmt.Errorf("%s: %w", key, err)
		}
		return n, true, nil
	default:
		return 0, true, fmt.Errorf("%s: expect integer, got %T", key, v)
	}
}

// Bool returns the boolean at key.
func (d *Document) Bool(key string) (bool, bool, error) {
	v, ok := d.Lookup(key)
	if !ok {
		return false, false, nil
	}
	switch val := v.(type) {
	case bool:
		return val, true, nil
	case string:
		b, err := strconv.ParseBool(val)
		if err != nil {
			return false, true, fmt.Errorf("%s: %w", key, err)
		}
		return b, true, nil
	default:
		return false, true, fmt.Errorf("%s: expect boolean, got %T", key, v)
	}
}

// Duration returns the duration at key. Strings use time.ParseDuration
// syntax; bare integers are milliseconds.
func (d *Document) Duration(key string) (time.Duration, bool, error) {
	v, ok := d.Lookup(key)
	if !ok {
		return 0, false, nil
	}
	switch val := v.(type) {
	case int:
		return time.Duration(val) * time.Millisecond, true, nil
	case string:
		dur, err := time.ParseDuration(val)
		if err != nil {
			return 0, true, fmt.Errorf("%s: %w", key, err)
		}
		return dur, true, nil
	default:
		return 0, true, fmt.Errorf("%s: expect duration, got %T", key, v)
	}
}

// Decode decodes the subtree at key into out using yaml struct tags.
func (d *Document) Decode(key string, out interface{}) error {
	v, ok := d.Lookup(key)
	if !ok {
		return nil
	}
	data, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, out)
}
