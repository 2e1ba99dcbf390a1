package sqlite

import (
	"encoding/json"
	"time"
)

// TimeToMillis converts a time.Time to epoch milliseconds for database storage
func TimeToMillis(t time.Time) int64 {
	return t.UnixMilli()
}

// TimePtrToMillis converts a *time.Time to epoch milliseconds, returning nil if the pointer is nil
func TimePtrToMillis(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return TimeToMillis(*t)
}

// MillisToTime converts epoch milliseconds from the database to a time.Time
func MillisToTime(ms int64) time.Time {
	return time.UnixMilli(ms)
}

// EncodeSubtaskIDs encodes an ordered subtask id list as a JSON array.
// A nil slice encodes as the empty list.
func EncodeSubtaskIDs(ids []int64) (string, error) {
	if ids == nil {
		ids = []int64{}
	}
	data, err := json.Marshal(ids)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// DecodeSubtaskIDs decodes a JSON array of subtask ids. Rows written before
// the column existed decode to the empty list rather than failing.
func DecodeSubtaskIDs(s string) ([]int64, error) {
	if s == "" {
		return []int64{}, nil
	}
	var ids []int64
	if err := json.Unmarshal([]byte(s), &ids); err != nil {
		return nil, err
	}
	if ids == nil {
		ids = []int64{}
	}
	return ids, nil
}
