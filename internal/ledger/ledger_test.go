package ledger_test

import (
	"encoding/json"
	"sync"
	"testing"
	"time"

	"zeroledger/internal/ledger"
	"zeroledger/internal/models"
	"zeroledger/internal/testutil"
)

func TestVersion(t *testing.T) {
	t.Run("increments_per_mutation", func(t *testing.T) {
		book := ledger.New()
		before := book.Version()

		testutil.CreateTestAccount(t, book, 0)
		if got := book.Version(); got != before+1 {
			t.Errorf("expected version %d, got %d", before+1, got)
		}
	})

	t.Run("unchanged_by_queries", func(t *testing.T) {
		book := ledger.New()
		before := book.Version()

		book.Budgets()
		book.NetWorth()
		book.ReadyToAssign(book.CurrentMonth())

		if got := book.Version(); got != before {
			t.Errorf("expected version unchanged at %d, got %d", before, got)
		}
	})

	t.Run("unchanged_by_rejected_mutation", func(t *testing.T) {
		book := ledger.New()
		before := book.Version()

		if err := book.SwitchBudget("no-such-id"); err == nil {
			t.Fatal("expected error")
		}
		if got := book.Version(); got != before {
			t.Errorf("expected version unchanged at %d, got %d", before, got)
		}
	})
}

func TestFailedMutationLeavesStateUntouched(t *testing.T) {
	book := ledger.New()
	account := testutil.CreateTestAccount(t, book, 500)

	_, err := book.CreateTransaction(ledger.TransactionInput{
		AccountID: "no-such-account",
		Amount:    -100,
	})
	testutil.AssertAppError(t, err, "ACCOUNT_NOT_FOUND")

	testutil.AssertMoney(t, book.AccountBalance(account.ID), 500)
	if got := len(book.Transactions()); got != 1 {
		t.Errorf("expected only the opening transaction, got %d", got)
	}
}

func TestConcurrentReadsDuringWrites(t *testing.T) {
	book := ledger.New()
	account := testutil.CreateTestAccount(t, book, 0)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_, err := book.CreateTransaction(ledger.TransactionInput{
					AccountID: account.ID,
					Amount:    -1,
				})
				if err != nil {
					t.Errorf("unexpected error: %v", err)
					return
				}
			}
		}()
	}
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				book.AccountBalance(account.ID)
				book.Transactions()
			}
		}()
	}
	wg.Wait()

	testutil.AssertMoney(t, book.AccountBalance(account.ID), -400)
}

func TestSnapshotRoundTrip(t *testing.T) {
	book := ledger.New()
	month := models.Month{Year: 2025, Mon: time.November}
	account := testutil.CreateTestAccount(t, book, 1000)
	group := testutil.CreateTestGroup(t, book)
	category := testutil.CreateTestCategory(t, book, group.ID, 200)
	testutil.AssertNoError(t, book.SetCategoryAssignment(month, category.ID, 200))
	testutil.CreateTestTransaction(t, book, account.ID, category.ID, -75, month.Time())
	_, err := book.CreateAsset("Car", models.AssetKindVehicle, 12000)
	testutil.AssertNoError(t, err)
	_, err = book.CreateBudgetTemplate("Plan", map[string]float64{category.ID: 200}, true)
	testutil.AssertNoError(t, err)
	testutil.AssertNoError(t, book.SetCurrentMonth(month))

	// Serialize through JSON, as the snapshot store does.
	payload, err := json.Marshal(book.Snapshot())
	testutil.AssertNoError(t, err)
	var snap models.Snapshot
	testutil.AssertNoError(t, json.Unmarshal(payload, &snap))

	restored, err := ledger.FromSnapshot(&snap)
	testutil.AssertNoError(t, err)

	if restored.ActiveBudget().ID != book.ActiveBudget().ID {
		t.Error("expected active budget to survive the round trip")
	}
	if restored.CurrentMonth() != month {
		t.Errorf("expected current month %v, got %v", month, restored.CurrentMonth())
	}
	testutil.AssertMoney(t, restored.AccountBalance(account.ID), 925)
	testutil.AssertMoney(t, restored.Assigned(month, category.ID), 200)
	testutil.AssertMoney(t, restored.CategoryAvailable(month, category.ID), 125)
	testutil.AssertMoney(t, restored.NetWorth(), 12925)
	if got := len(restored.Templates()); got != 1 {
		t.Errorf("expected 1 template, got %d", got)
	}
}

func TestFromSnapshot(t *testing.T) {
	t.Run("version_mismatch_rejected", func(t *testing.T) {
		snap := ledger.New().Snapshot()
		snap.Version = models.SnapshotVersion + 1

		_, err := ledger.FromSnapshot(snap)
		testutil.AssertAppError(t, err, "SNAPSHOT_VERSION_MISMATCH")
	})

	t.Run("no_budgets_rejected", func(t *testing.T) {
		snap := &models.Snapshot{Version: models.SnapshotVersion}
		_, err := ledger.FromSnapshot(snap)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("stale_active_budget_repaired", func(t *testing.T) {
		book := ledger.New()
		snap := book.Snapshot()
		snap.ActiveBudgetID = "no-such-id"

		restored, err := ledger.FromSnapshot(snap)
		testutil.AssertNoError(t, err)
		if restored.ActiveBudget().ID != snap.Budgets[0].ID {
			t.Error("expected active budget to fall back to the first budget")
		}
	})

	t.Run("zero_current_month_repaired", func(t *testing.T) {
		book := ledger.New()
		snap := book.Snapshot()
		snap.CurrentMonth = models.Month{}

		restored, err := ledger.FromSnapshot(snap)
		testutil.AssertNoError(t, err)
		if restored.CurrentMonth().IsZero() {
			t.Error("expected current month to be repaired")
		}
	})
}

func TestSnapshotSharesNoMemory(t *testing.T) {
	book := ledger.New()
	group := testutil.CreateTestGroup(t, book)
	category := testutil.CreateTestCategory(t, book, group.ID, 0)
	month := models.Month{Year: 2025, Mon: time.November}
	testutil.AssertNoError(t, book.SetCategoryAssignment(month, category.ID, 100))

	snap := book.Snapshot()
	testutil.AssertNoError(t, book.SetCategoryAssignment(month, category.ID, 999))

	for _, entry := range snap.Assignments {
		if entry.CategoryID == category.ID {
			testutil.AssertMoney(t, entry.Amount, 100)
		}
	}
}
