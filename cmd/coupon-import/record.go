package main

import (
	"strconv"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/xenking/jewel-store/internal/domain/coupon"
)

// Columns the import CSV must carry. Optional columns are name, description,
// min_order_amount, max_discount_amount, usage_limit, applicable_users,
// first_purchase_only and is_active. Column order is free.
var requiredColumns = []string{"code", "type", "value", "start_date", "end_date"}

// header maps column names to record positions.
type header map[string]int

func parseHeader(record []string) (header, error) {
	h := make(header, len(record))
	for i, name := range record {
		name = strings.ToLower(strings.TrimSpace(name))
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		h[name] = i
	}
	for _, name := range requiredColumns {
		if _, ok := h[name]; !ok {
			return nil, errors.Errorf("missing column %q", name)
		}
	}
	return h, nil
}

func (h header) get(record []string, name string) string {
	i, ok := h[name]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

// parseTime accepts RFC 3339 timestamps and plain dates. A plain end date
// covers the whole day.
func parseTime(s string, endOfDay bool) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, errors.Errorf("invalid date %q", s)
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return t, nil
}

func parseBool(s string, def bool) (bool, error) {
	if s == "" {
		return def, nil
	}
	return strconv.ParseBool(s)
}

// parseRecord builds a coupon from one CSV record.
func (h header) parseRecord(record []string) (coupon.Coupon, error) {
	c := coupon.Coupon{
		ID:          uuid.New(),
		Code:        coupon.NormalizeCode(h.get(record, "code")),
		Name:        h.get(record, "name"),
		Description: h.get(record, "description"),
	}
	if c.Code == "" {
		return c, errors.New("code is empty")
	}
	if len(c.Code) > 50 {
		return c, errors.Errorf("code %q is longer than 50 characters", c.Code)
	}

	var err error
	if c.Type, err = coupon.ParseType(h.get(record, "type")); err != nil {
		return c, err
	}
	if c.Value, err = decimal.NewFromString(h.get(record, "value")); err != nil {
		return c, errors.Wrap(err, "value")
	}
	switch {
	case c.Value.IsNegative():
		return c, errors.New("value must not be negative")
	case c.Type == coupon.TypePercentage && c.Value.GreaterThan(decimal.NewFromInt(100)):
		return c, errors.New("percentage must not exceed 100")
	case c.Type != coupon.TypeFreeShipping && c.Value.IsZero():
		return c, errors.New("value must be positive")
	}

	if raw := h.get(record, "min_order_amount"); raw != "" {
		if c.MinOrderAmount, err = decimal.NewFromString(raw); err != nil {
			return c, errors.Wrap(err, "min_order_amount")
		}
	}
	if raw := h.get(record, "max_discount_amount"); raw != "" {
		v, err := decimal.NewFromString(raw)
		if err != nil {
			return c, errors.Wrap(err, "max_discount_amount")
		}
		c.MaxDiscountAmount = decimal.NewNullDecimal(v)
	}
	if raw := h.get(record, "usage_limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			return c, errors.Errorf("usage_limit %q must be a positive integer", raw)
		}
		c.UsageLimit = &limit
	}

	if c.StartDate, err = parseTime(h.get(record, "start_date"), false); err != nil {
		return c, errors.Wrap(err, "start_date")
	}
	if c.EndDate, err = parseTime(h.get(record, "end_date"), true); err != nil {
		return c, errors.Wrap(err, "end_date")
	}
	if !c.EndDate.After(c.StartDate) {
		return c, errors.New("end_date must be after start_date")
	}

	if c.Audience, err = coupon.ParseAudience(h.get(record, "applicable_users")); err != nil {
		return c, err
	}
	if c.FirstPurchaseOnly, err = parseBool(h.get(record, "first_purchase_only"), false); err != nil {
		return c, errors.Wrap(err, "first_purchase_only")
	}
	if c.IsActive, err = parseBool(h.get(record, "is_active"), true); err != nil {
		return c, errors.Wrap(err, "is_active")
	}
	return c, nil
}
