// Package filters translates named, typed filter parameters into gorm
// predicates. Every filter is optional; present filters combine with AND.
//
// Argument maps come straight from GraphQL resolvers. A value that fails to
// parse (malformed date, non-numeric id) is skipped rather than failing the
// whole query, so a bad filter degrades to "unfiltered" instead of an error.
package filters

import (
	"strconv"
	"strings"
	"time"

	"github.com/shashiranjanraj/crm/pkg/logger"
	"gorm.io/gorm"
)

// containsCI adds a case-insensitive substring predicate on column.
// LOWER + LIKE is portable across every supported driver.
func containsCI(tx *gorm.DB, column, v string) *gorm.DB {
	return tx.Where("LOWER("+column+") LIKE ?", "%"+strings.ToLower(v)+"%")
}

// ── Argument extraction ──────────────────────────────────────────────────────
// graphql-go hands resolvers a map[string]interface{}; scalar coercion gives
// string/int/float64/bool/time.Time depending on the declared arg type.

func argString(args map[string]interface{}, key string) string {
	if v, ok := args[key].(string); ok {
		return v
	}
	return ""
}

func argInt(args map[string]interface{}, key string) *int {
	switch v := args[key].(type) {
	case int:
		return &v
	case float64:
		n := int(v)
		return &n
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			logger.Debug("filters: ignoring unparseable int", "key", key, "value", v)
			return nil
		}
		return &n
	}
	return nil
}

func argFloat(args map[string]interface{}, key string) *float64 {
	switch v := args[key].(type) {
	case float64:
		return &v
	case int:
		f := float64(v)
		return &f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			logger.Debug("filters: ignoring unparseable number", "key", key, "value", v)
			return nil
		}
		return &f
	}
	return nil
}

func argBool(args map[string]interface{}, key string) *bool {
	if v, ok := args[key].(bool); ok {
		return &v
	}
	return nil
}

var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func argTime(args map[string]interface{}, key string) *time.Time {
	switch v := args[key].(type) {
	case time.Time:
		return &v
	case string:
		s := strings.TrimSpace(v)
		for _, layout := range timeLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return &t
			}
		}
		logger.Debug("filters: ignoring unparseable datetime", "key", key, "value", v)
	}
	return nil
}

// argID reads a GraphQL ID argument, which arrives as a string or int.
func argID(args map[string]interface{}, key string) *uint {
	switch v := args[key].(type) {
	case int:
		if v < 0 {
			return nil
		}
		id := uint(v)
		return &id
	case string:
		n, err := strconv.ParseUint(strings.TrimSpace(v), 10, 64)
		if err != nil {
			logger.Debug("filters: ignoring unparseable id", "key", key, "value", v)
			return nil
		}
		id := uint(n)
		return &id
	}
	return nil
}

// argIDList parses a comma-separated id list ("1,2,3"). Entries that fail
// to parse are skipped.
func argIDList(args map[string]interface{}, key string) []uint {
	raw, ok := args[key].(string)
	if !ok || strings.TrimSpace(raw) == "" {
		return nil
	}

	var ids []uint
	for _, part := range strings.Split(raw, ",") {
		n, err := strconv.ParseUint(strings.TrimSpace(part), 10, 64)
		if err != nil {
			logger.Debug("filters: ignoring unparseable id in list", "key", key, "value", part)
			continue
		}
		ids = append(ids, uint(n))
	}
	return ids
}
