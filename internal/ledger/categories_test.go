package ledger_test

import (
	"testing"
	"time"

	"zeroledger/internal/ledger"
	"zeroledger/internal/models"
	"zeroledger/internal/testutil"
)

func TestCreateCategoryGroup(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		book := ledger.New()

		group, err := book.CreateCategoryGroup("Essentials")
		testutil.AssertNoError(t, err)
		if group.Name != "Essentials" {
			t.Errorf("expected Essentials, got %q", group.Name)
		}
		if group.BudgetID != book.ActiveBudget().ID {
			t.Error("expected group to be scoped to the active budget")
		}
	})

	t.Run("empty_name", func(t *testing.T) {
		book := ledger.New()
		_, err := book.CreateCategoryGroup("")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestDeleteCategoryGroup(t *testing.T) {
	t.Run("cascades_categories_and_assignments", func(t *testing.T) {
		book := ledger.New()
		month := models.Month{Year: 2025, Mon: time.April}
		group := testutil.CreateTestGroup(t, book)
		category := testutil.CreateTestCategory(t, book, group.ID, 0)
		testutil.AssertNoError(t, book.SetCategoryAssignment(month, category.ID, 150))

		testutil.AssertNoError(t, book.DeleteCategoryGroup(group.ID))

		if book.Category(category.ID) != nil {
			t.Error("expected member category to be gone")
		}
		testutil.AssertMoney(t, book.Assigned(month, category.ID), 0)
		testutil.AssertMoney(t, book.TotalAssigned(month), 0)
	})

	t.Run("missing_group_is_noop", func(t *testing.T) {
		book := ledger.New()
		testutil.CreateTestGroup(t, book)

		testutil.AssertNoError(t, book.DeleteCategoryGroup("no-such-id"))
		if got := len(book.CategoryGroups()); got != 1 {
			t.Errorf("expected 1 group, got %d", got)
		}
	})
}

func TestCreateCategory(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		book := ledger.New()
		group := testutil.CreateTestGroup(t, book)

		category, err := book.CreateCategory(group.ID, "Groceries", 300)
		testutil.AssertNoError(t, err)
		if category.GroupID != group.ID {
			t.Error("expected category to carry its group id")
		}
		testutil.AssertMoney(t, category.Goal, 300)
	})

	t.Run("missing_group", func(t *testing.T) {
		book := ledger.New()
		_, err := book.CreateCategory("no-such-group", "Orphan", 0)
		testutil.AssertAppError(t, err, "GROUP_NOT_FOUND")
	})

	t.Run("empty_name", func(t *testing.T) {
		book := ledger.New()
		group := testutil.CreateTestGroup(t, book)
		_, err := book.CreateCategory(group.ID, "", 0)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestUpdateCategory(t *testing.T) {
	t.Run("move_to_another_group", func(t *testing.T) {
		book := ledger.New()
		month := models.Month{Year: 2025, Mon: time.May}
		groupA := testutil.CreateTestGroup(t, book)
		groupB := testutil.CreateTestGroup(t, book)
		category := testutil.CreateTestCategory(t, book, groupA.ID, 0)
		testutil.AssertNoError(t, book.SetCategoryAssignment(month, category.ID, 75))

		updated, err := book.UpdateCategory(category.ID, "", groupB.ID)
		testutil.AssertNoError(t, err)
		if updated.GroupID != groupB.ID {
			t.Error("expected category to move groups")
		}
		// A group move keeps assignment history.
		testutil.AssertMoney(t, book.Assigned(month, category.ID), 75)
	})

	t.Run("move_to_missing_group", func(t *testing.T) {
		book := ledger.New()
		group := testutil.CreateTestGroup(t, book)
		category := testutil.CreateTestCategory(t, book, group.ID, 0)

		_, err := book.UpdateCategory(category.ID, "", "no-such-group")
		testutil.AssertAppError(t, err, "GROUP_NOT_FOUND")
	})

	t.Run("missing_category", func(t *testing.T) {
		book := ledger.New()
		_, err := book.UpdateCategory("no-such-id", "Renamed", "")
		testutil.AssertAppError(t, err, "CATEGORY_NOT_FOUND")
	})
}

func TestSetCategoryGoal(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		book := ledger.New()
		group := testutil.CreateTestGroup(t, book)
		category := testutil.CreateTestCategory(t, book, group.ID, 0)

		updated, err := book.SetCategoryGoal(category.ID, 250)
		testutil.AssertNoError(t, err)
		testutil.AssertMoney(t, updated.Goal, 250)
	})

	t.Run("negative_goal", func(t *testing.T) {
		book := ledger.New()
		group := testutil.CreateTestGroup(t, book)
		category := testutil.CreateTestCategory(t, book, group.ID, 0)

		_, err := book.SetCategoryGoal(category.ID, -1)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestDeleteCategory(t *testing.T) {
	t.Run("strips_assignments_keeps_transactions", func(t *testing.T) {
		book := ledger.New()
		month := models.Month{Year: 2025, Mon: time.June}
		account := testutil.CreateTestAccount(t, book, 500)
		group := testutil.CreateTestGroup(t, book)
		category := testutil.CreateTestCategory(t, book, group.ID, 0)
		testutil.AssertNoError(t, book.SetCategoryAssignment(month, category.ID, 80))
		tx := testutil.CreateTestTransaction(t, book, account.ID, category.ID, -30, month.Time())

		testutil.AssertNoError(t, book.DeleteCategory(category.ID))

		testutil.AssertMoney(t, book.Assigned(month, category.ID), 0)
		// The transaction survives with a dangling category reference.
		if book.Transaction(tx.ID) == nil {
			t.Fatal("expected transaction to survive category deletion")
		}
		testutil.AssertMoney(t, book.AccountBalance(account.ID), 470)
	})

	t.Run("missing_category_is_noop", func(t *testing.T) {
		book := ledger.New()
		testutil.AssertNoError(t, book.DeleteCategory("no-such-id"))
	})
}

func TestCategoriesOrdering(t *testing.T) {
	book := ledger.New()
	groupA := testutil.CreateTestGroup(t, book)
	groupB := testutil.CreateTestGroup(t, book)

	// Interleave creation across groups; listing must still group them.
	first := testutil.CreateTestCategory(t, book, groupA.ID, 0)
	second := testutil.CreateTestCategory(t, book, groupB.ID, 0)
	third := testutil.CreateTestCategory(t, book, groupA.ID, 0)

	categories := book.Categories()
	if len(categories) != 3 {
		t.Fatalf("expected 3 categories, got %d", len(categories))
	}
	wantOrder := []string{first.ID, third.ID, second.ID}
	for i, want := range wantOrder {
		if categories[i].ID != want {
			t.Errorf("position %d: expected %s, got %s", i, want, categories[i].ID)
		}
	}
}

func TestCreateCategoryRequiresActiveBudgetGroup(t *testing.T) {
	book := ledger.New()
	first := book.ActiveBudget()
	group := testutil.CreateTestGroup(t, book)

	_, err := book.CreateBudget("Other", ledger.BudgetSettings{})
	testutil.AssertNoError(t, err)

	_, err = book.CreateCategory(group.ID, "Stray", 0)
	testutil.AssertAppError(t, err, "GROUP_NOT_FOUND")

	testutil.AssertNoError(t, book.SwitchBudget(first.ID))
	if got := len(book.Categories()); got != 0 {
		t.Errorf("expected no categories in the original budget, got %d", got)
	}
}
