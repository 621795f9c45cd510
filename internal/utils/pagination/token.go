package pagination

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const timeFormat = time.RFC3339Nano

// DefaultLimit and MaxLimit bound page sizes of list endpoints.
const (
	DefaultLimit = 50
	MaxLimit     = 200
)

// EncodeToken creates an opaque cursor from a record timestamp and id.
func EncodeToken(ts time.Time, id int) string {
	tokenStr := fmt.Sprintf("%s|%d", ts.UTC().Format(timeFormat), id)
	return base64.URLEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeToken parses a cursor built by EncodeToken.
func DecodeToken(token string) (time.Time, int, error) {
	decodedBytes, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return time.Time{}, 0, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	tsPart, idPart, ok := strings.Cut(string(decodedBytes), "|")
	if !ok {
		return time.Time{}, 0, fmt.Errorf("invalid pagination token format (split)")
	}

	ts, err := time.Parse(timeFormat, tsPart)
	if err != nil {
		return time.Time{}, 0, fmt.Errorf("invalid pagination token format (timestamp parse): %w", err)
	}
	id, err := strconv.Atoi(idPart)
	if err != nil || id <= 0 {
		return time.Time{}, 0, fmt.Errorf("invalid pagination token format (id parse)")
	}
	return ts, id, nil
}

// ClampLimit maps a requested page size into [1, MaxLimit], using DefaultLimit for 0 or less.
func ClampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultLimit
	case limit > MaxLimit:
		return MaxLimit
	}
	return limit
}
