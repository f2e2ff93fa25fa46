package utils

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"pulseboard/internal/shared/errors"
)

// ParseIntParam parses a required integer URL path parameter.
func ParseIntParam(c *gin.Context, paramName, entityName string) (int, error) {
	raw := c.Param(paramName)
	if raw == "" {
		return 0, errors.NewValidationError(entityName + " ID is required")
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return 0, errors.NewValidationError("invalid " + entityName + " ID")
	}
	return v, nil
}

// ParseUintParam parses a required unsigned integer URL path parameter.
func ParseUintParam(c *gin.Context, paramName, entityName string) (uint, error) {
	v, err := ParseIntParam(c, paramName, entityName)
	if err != nil {
		return 0, err
	}
	return uint(v), nil
}

// ParseOptionalIntQuery parses an optional integer query parameter,
// returning nil when absent.
func ParseOptionalIntQuery(c *gin.Context, name string) (*int, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, errors.NewValidationError("invalid " + name + " parameter")
	}
	return &v, nil
}

// ParseOptionalDateQuery parses an optional RFC3339 or yyyy-mm-dd query
// parameter, returning nil when absent.
func ParseOptionalDateQuery(c *gin.Context, name string) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	t, err := ParseDateString(raw, name)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ParseDateString parses an RFC3339 or yyyy-mm-dd value.
func ParseDateString(raw, name string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	return time.Time{}, errors.NewValidationError("invalid " + name + " parameter, expected RFC3339 or yyyy-mm-dd")
}
