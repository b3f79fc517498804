package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBuilder_BasicSelect(t *testing.T) {
	stmt := From("bookings").
		Select("booking_id", "customer_id", "status_id").
		Build()

	assert.Equal(t, "SELECT booking_id, customer_id, status_id FROM bookings", stmt.SQL)
	assert.Empty(t, stmt.Params)
}

func TestBuilder_SelectAllColumns(t *testing.T) {
	stmt := From("bookings").Build()

	assert.Equal(t, "SELECT * FROM bookings", stmt.SQL)
	assert.Empty(t, stmt.Params)
}

func TestBuilder_SingleWhereCondition(t *testing.T) {
	stmt := From("bookings").
		Select("booking_id").
		Where(Eq("status_id", int64(3))).
		Build()

	assert.Equal(t, "SELECT booking_id FROM bookings WHERE status_id = @p0", stmt.SQL)
	assert.Equal(t, map[string]interface{}{
		"p0": int64(3),
	}, stmt.Params)
}

func TestBuilder_MultipleWhereConditions(t *testing.T) {
	stmt := From("vehicles").
		Select("vehicle_id", "model_id").
		Where(Eq("model_id", "m-1")).
		Where(Eq("is_deleted", false)).
		Build()

	assert.Equal(t, "SELECT vehicle_id, model_id FROM vehicles WHERE model_id = @p0 AND is_deleted = @p1", stmt.SQL)
	assert.Equal(t, map[string]interface{}{
		"p0": "m-1",
		"p1": false,
	}, stmt.Params)
}

func TestBuilder_OrderByAsc(t *testing.T) {
	stmt := From("outbox_events").
		Select("event_id", "event_type").
		OrderBy("occurred_on", Asc).
		Build()

	assert.Equal(t, "SELECT event_id, event_type FROM outbox_events ORDER BY occurred_on ASC", stmt.SQL)
	assert.Empty(t, stmt.Params)
}

func TestBuilder_OrderByDesc(t *testing.T) {
	stmt := From("outbox_events").
		Select("event_id").
		OrderBy("occurred_on", Desc).
		Build()

	assert.Equal(t, "SELECT event_id FROM outbox_events ORDER BY occurred_on DESC", stmt.SQL)
	assert.Empty(t, stmt.Params)
}

func TestBuilder_Limit(t *testing.T) {
	stmt := From("outbox_events").
		Select("event_id").
		Limit(30).
		Build()

	assert.Equal(t, "SELECT event_id FROM outbox_events LIMIT @limit", stmt.SQL)
	assert.Equal(t, map[string]interface{}{
		"limit": int64(30),
	}, stmt.Params)
}

func TestBuilder_CompleteQuery(t *testing.T) {
	stmt := From("outbox_events").
		Select("event_id", "event_type", "content").
		Where(IsNull("processed_on")).
		Where(Eq("event_type", "booking.created")).
		OrderBy("occurred_on", Asc).
		Limit(30).
		Build()

	expectedSQL := "SELECT event_id, event_type, content FROM outbox_events WHERE processed_on IS NULL AND event_type = @p0 ORDER BY occurred_on ASC LIMIT @limit"
	assert.Equal(t, expectedSQL, stmt.SQL)
	assert.Equal(t, map[string]interface{}{
		"p0":    "booking.created",
		"limit": int64(30),
	}, stmt.Params)
}

func TestBuilder_Count(t *testing.T) {
	builder := From("bookings").
		Select("booking_id", "customer_id").
		Where(Eq("status_id", int64(3))).
		OrderBy("created_at", Desc).
		Limit(50)

	countStmt := builder.Count().Build()
	assert.Equal(t, "SELECT COUNT(*) FROM bookings WHERE status_id = @p0", countStmt.SQL)
	assert.Equal(t, map[string]interface{}{
		"p0": int64(3),
	}, countStmt.Params)

	// Original builder keeps its pagination (immutability).
	mainStmt := builder.Build()
	assert.Contains(t, mainStmt.SQL, "LIMIT @limit")
}

func TestBuilder_Immutability(t *testing.T) {
	base := From("bookings").Select("booking_id")

	stmt1 := base.Where(Eq("status_id", int64(1))).Build()
	stmt2 := base.Where(Eq("customer_id", "c-1")).Build()

	assert.Contains(t, stmt1.SQL, "status_id = @p0")
	assert.NotContains(t, stmt1.SQL, "customer_id")

	assert.Contains(t, stmt2.SQL, "customer_id = @p0")
	assert.NotContains(t, stmt2.SQL, "status_id")
}

func TestCondition_Eq(t *testing.T) {
	sql, params := Eq("status_id", int64(2)).SQL(5)

	assert.Equal(t, "status_id = @p5", sql)
	assert.Equal(t, map[string]interface{}{
		"p5": int64(2),
	}, params)
}

func TestCondition_Lte(t *testing.T) {
	cutoff := time.Date(2025, 3, 22, 12, 0, 0, 0, time.UTC)

	sql, params := Lte("occurred_on", cutoff).SQL(0)
	assert.Equal(t, "occurred_on <= @p0", sql)
	assert.Equal(t, map[string]interface{}{
		"p0": cutoff,
	}, params)
}

func TestCondition_LteWithExpression(t *testing.T) {
	cutoff := time.Date(2025, 3, 22, 12, 0, 0, 0, time.UTC)

	stmt := From("bookings").
		Select("booking_id").
		Where(Eq("status_id", int64(3))).
		Where(Lte("TIMESTAMP_ADD(start_on, INTERVAL free_wait_seconds SECOND)", cutoff)).
		Build()

	assert.Equal(t,
		"SELECT booking_id FROM bookings WHERE status_id = @p0 AND TIMESTAMP_ADD(start_on, INTERVAL free_wait_seconds SECOND) <= @p1",
		stmt.SQL)
	assert.Equal(t, map[string]interface{}{
		"p0": int64(3),
		"p1": cutoff,
	}, stmt.Params)
}

func TestCondition_In(t *testing.T) {
	sql, params := In("status_id", []int64{1, 3}).SQL(2)

	assert.Equal(t, "status_id IN UNNEST(@p2)", sql)
	assert.Equal(t, map[string]interface{}{
		"p2": []int64{1, 3},
	}, params)
}

func TestCondition_IsNull(t *testing.T) {
	sql, params := IsNull("processed_on").SQL(0)

	assert.Equal(t, "processed_on IS NULL", sql)
	assert.Empty(t, params)
}

func TestCondition_IsNotNull(t *testing.T) {
	sql, params := IsNotNull("processed_on").SQL(0)

	assert.Equal(t, "processed_on IS NOT NULL", sql)
	assert.Empty(t, params)
}

func TestBuilder_MultipleSelectCalls(t *testing.T) {
	stmt := From("vehicles").
		Select("vehicle_id").
		Select("model_id", "is_deleted").
		Build()

	assert.Equal(t, "SELECT vehicle_id, model_id, is_deleted FROM vehicles", stmt.SQL)
	assert.Empty(t, stmt.Params)
}
