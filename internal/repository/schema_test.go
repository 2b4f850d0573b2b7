package repository

import (
	"os"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// The column lists the repositories select and write with must all exist in
// the shipped schema; a drifted migration fails every query at runtime.

func migrationTables(t *testing.T) map[string]map[string]bool {
	t.Helper()

	raw, err := os.ReadFile("../../migrations/0001_init.sql")
	require.NoError(t, err)

	tables := make(map[string]map[string]bool)
	re := regexp.MustCompile(`(?s)CREATE TABLE (\w+) \((.*?)\n\);`)
	for _, m := range re.FindAllStringSubmatch(string(raw), -1) {
		cols := make(map[string]bool)
		for _, line := range strings.Split(m[2], "\n") {
			fields := strings.Fields(line)
			if len(fields) < 2 || strings.ToUpper(fields[0]) == "CHECK" || strings.ToUpper(fields[0]) == "UNIQUE" {
				continue
			}
			cols[fields[0]] = true
		}
		tables[m[1]] = cols
	}
	return tables
}

func requireColumns(t *testing.T, tables map[string]map[string]bool, table, columnList string) {
	t.Helper()

	cols, ok := tables[table]
	require.True(t, ok, "table %s not defined in migration", table)
	for _, col := range strings.Split(columnList, ",") {
		col = strings.TrimSpace(col)
		require.True(t, cols[col], "%s table does not define column %q", table, col)
	}
}

func TestSchema_UserColumns(t *testing.T) {
	requireColumns(t, migrationTables(t), "users", userColumns)
}

func TestSchema_EventColumns(t *testing.T) {
	tables := migrationTables(t)

	requireColumns(t, tables, "events", eventColumns)

	// Written by the cancel transition but never selected.
	require.True(t, tables["events"]["cancel_reason"])
}

func TestSchema_ParticipantColumns(t *testing.T) {
	requireColumns(t, migrationTables(t), "participants",
		"id, event_id, user_id, status, status_reason, joined_at, has_pending_dues, dues_cleared, updated_at")
}

func TestSchema_DueColumns(t *testing.T) {
	requireColumns(t, migrationTables(t), "dues", dueColumns)
}

func TestSchema_CommissionColumns(t *testing.T) {
	requireColumns(t, migrationTables(t), "commissions", commissionColumns)
}

func TestSchema_PaymentOrderColumns(t *testing.T) {
	requireColumns(t, migrationTables(t), "payment_orders",
		"id, gateway_order_id, gateway_payment_id, user_id, due_ids, amount, gateway_fee, gst, discount, payable, status, created_at, updated_at")
}
