package models

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// 前端约定的时间格式
const (
	DateTimeLayout = "2006-01-02 15:04:05"
	DateLayout     = "2006-01-02"
)

// JSONTime 序列化为 "YYYY-MM-DD HH:MM:SS" 的时间类型，零值输出 null
type JSONTime struct {
	time.Time
}

// MarshalJSON 实现 json.Marshaler
func (t JSONTime) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + t.Format(DateTimeLayout) + `"`), nil
}

// Scan 实现 sql.Scanner，兼容 MySQL 与 SQLite 的时间取值
func (t *JSONTime) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		t.Time = time.Time{}
		return nil
	case time.Time:
		t.Time = v
		return nil
	case []byte:
		return t.parse(string(v))
	case string:
		return t.parse(v)
	default:
		return fmt.Errorf("unsupported time value: %T", value)
	}
}

// Value 实现 driver.Valuer
func (t JSONTime) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	return t.Time, nil
}

func (t *JSONTime) parse(s string) error {
	layouts := []string{time.RFC3339Nano, time.RFC3339, DateTimeLayout, DateLayout}
	for _, layout := range layouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("cannot parse time value: %q", s)
}

// JSONDate 序列化为 "YYYY-MM-DD" 的日期类型，零值输出 null
type JSONDate struct {
	time.Time
}

// MarshalJSON 实现 json.Marshaler
func (d JSONDate) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Format(DateLayout) + `"`), nil
}

// Scan 实现 sql.Scanner
func (d *JSONDate) Scan(value interface{}) error {
	var t JSONTime
	if err := t.Scan(value); err != nil {
		return err
	}
	d.Time = t.Time
	return nil
}

// Value 实现 driver.Valuer
func (d JSONDate) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.Time, nil
}
