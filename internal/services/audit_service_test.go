package services

import (
	"strings"
	"testing"

	"luxeledger/internal/models"
	"luxeledger/internal/pagination"
	"luxeledger/internal/testutil"
)

func TestAuditLog(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewAuditService(db)

	svc.Log(AuditSetBudget, "budget", "Food", "10.0.0.1", map[string]interface{}{"limit": "500"})
	svc.Log(AuditDeleteTransaction, "transaction", "abc", "10.0.0.1", nil)

	var entries []models.AuditLog
	testutil.AssertNoError(t, db.Find(&entries).Error)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	for _, e := range entries {
		if e.Action == AuditSetBudget && !strings.Contains(e.Changes, `"limit":"500"`) {
			t.Errorf("expected changes JSON, got %q", e.Changes)
		}
		if e.Action == AuditDeleteTransaction && e.Changes != "" {
			t.Errorf("expected no changes, got %q", e.Changes)
		}
	}
}

func TestAuditLog_UnmarshalableChanges(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewAuditService(db)

	svc.Log(AuditImport, "transaction", "", "", map[string]interface{}{"bad": make(chan int)})

	var entry models.AuditLog
	testutil.AssertNoError(t, db.First(&entry).Error)
	if entry.Changes != "{}" {
		t.Errorf("expected {} fallback, got %q", entry.Changes)
	}
}

func TestListAuditLogs(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewAuditService(db)

	for i := 0; i < 3; i++ {
		svc.Log(AuditCreateTransaction, "transaction", "id", "", nil)
	}

	page, err := svc.ListAuditLogs(pagination.PageRequest{Page: 1, PageSize: 2})
	testutil.AssertNoError(t, err)
	if page.TotalItems != 3 || page.TotalPages != 2 || len(page.Data) != 2 {
		t.Errorf("unexpected page %d/%d with %d rows", page.TotalItems, page.TotalPages, len(page.Data))
	}
}
