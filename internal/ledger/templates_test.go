package ledger_test

import (
	"testing"
	"time"

	"zeroledger/internal/ledger"
	"zeroledger/internal/models"
	"zeroledger/internal/testutil"
)

func TestCreateBudgetTemplate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		book := ledger.New()

		template, err := book.CreateBudgetTemplate("Monthly", map[string]float64{"cat-1": 100}, false)
		testutil.AssertNoError(t, err)
		testutil.AssertMoney(t, template.Goals["cat-1"], 100)
	})

	t.Run("empty_name", func(t *testing.T) {
		book := ledger.New()
		_, err := book.CreateBudgetTemplate("", nil, false)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("at_most_one_default", func(t *testing.T) {
		book := ledger.New()
		_, err := book.CreateBudgetTemplate("First", nil, true)
		testutil.AssertNoError(t, err)
		second, err := book.CreateBudgetTemplate("Second", nil, true)
		testutil.AssertNoError(t, err)

		defaults := 0
		for _, template := range book.Templates() {
			if template.IsDefault {
				defaults++
				if template.ID != second.ID {
					t.Errorf("expected %s to be the default, got %s", second.ID, template.ID)
				}
			}
		}
		if defaults != 1 {
			t.Errorf("expected exactly 1 default template, got %d", defaults)
		}
	})

	t.Run("caller_map_not_shared", func(t *testing.T) {
		book := ledger.New()
		goals := map[string]float64{"cat-1": 100}
		_, err := book.CreateBudgetTemplate("Isolated", goals, false)
		testutil.AssertNoError(t, err)

		goals["cat-1"] = 999
		stored := book.Templates()
		if len(stored) != 1 {
			t.Fatalf("expected 1 template, got %d", len(stored))
		}
		testutil.AssertMoney(t, stored[0].Goals["cat-1"], 100)
	})
}

func TestSaveCurrentAsTemplate(t *testing.T) {
	book := ledger.New()
	group := testutil.CreateTestGroup(t, book)
	funded := testutil.CreateTestCategory(t, book, group.ID, 300)
	testutil.CreateTestCategory(t, book, group.ID, 0)

	template, err := book.SaveCurrentAsTemplate("Snapshot", false)
	testutil.AssertNoError(t, err)

	if len(template.Goals) != 1 {
		t.Fatalf("expected only categories with positive goals, got %d entries", len(template.Goals))
	}
	testutil.AssertMoney(t, template.Goals[funded.ID], 300)
}

func TestUpdateBudgetTemplate(t *testing.T) {
	t.Run("nil_goals_unchanged", func(t *testing.T) {
		book := ledger.New()
		template, err := book.CreateBudgetTemplate("Monthly", map[string]float64{"cat-1": 100}, false)
		testutil.AssertNoError(t, err)

		updated, err := book.UpdateBudgetTemplate(template.ID, "Renamed", nil, nil)
		testutil.AssertNoError(t, err)
		if updated.Name != "Renamed" {
			t.Errorf("expected renamed template, got %q", updated.Name)
		}
		testutil.AssertMoney(t, updated.Goals["cat-1"], 100)
	})

	t.Run("promote_to_default_demotes_others", func(t *testing.T) {
		book := ledger.New()
		_, err := book.CreateBudgetTemplate("Old Default", nil, true)
		testutil.AssertNoError(t, err)
		challenger, err := book.CreateBudgetTemplate("Challenger", nil, false)
		testutil.AssertNoError(t, err)

		isDefault := true
		_, err = book.UpdateBudgetTemplate(challenger.ID, "", nil, &isDefault)
		testutil.AssertNoError(t, err)

		for _, template := range book.Templates() {
			if template.IsDefault && template.ID != challenger.ID {
				t.Errorf("expected only %s to be default", challenger.ID)
			}
		}
	})

	t.Run("missing_template", func(t *testing.T) {
		book := ledger.New()
		_, err := book.UpdateBudgetTemplate("no-such-id", "X", nil, nil)
		testutil.AssertAppError(t, err, "TEMPLATE_NOT_FOUND")
	})
}

func TestDeleteBudgetTemplate(t *testing.T) {
	book := ledger.New()
	template, err := book.CreateBudgetTemplate("Doomed", nil, false)
	testutil.AssertNoError(t, err)

	testutil.AssertNoError(t, book.DeleteBudgetTemplate(template.ID))
	if got := len(book.Templates()); got != 0 {
		t.Errorf("expected no templates, got %d", got)
	}

	// A second delete is a no-op.
	testutil.AssertNoError(t, book.DeleteBudgetTemplate(template.ID))
}

func TestApplyBudgetTemplate(t *testing.T) {
	month := models.Month{Year: 2025, Mon: time.October}

	t.Run("destructive_replace", func(t *testing.T) {
		book := ledger.New()
		group := testutil.CreateTestGroup(t, book)
		existing := testutil.CreateTestCategory(t, book, group.ID, 0)
		templated := testutil.CreateTestCategory(t, book, group.ID, 0)

		testutil.AssertNoError(t, book.SetCategoryAssignment(month, existing.ID, 100))
		template, err := book.CreateBudgetTemplate("Plan", map[string]float64{templated.ID: 50}, false)
		testutil.AssertNoError(t, err)

		testutil.AssertNoError(t, book.ApplyBudgetTemplate(template.ID, month))

		// The month now mirrors the template exactly.
		testutil.AssertMoney(t, book.Assigned(month, existing.ID), 0)
		testutil.AssertMoney(t, book.Assigned(month, templated.ID), 50)
		testutil.AssertMoney(t, book.TotalAssigned(month), 50)
	})

	t.Run("other_months_untouched", func(t *testing.T) {
		book := ledger.New()
		group := testutil.CreateTestGroup(t, book)
		category := testutil.CreateTestCategory(t, book, group.ID, 0)
		testutil.AssertNoError(t, book.SetCategoryAssignment(month.Prev(), category.ID, 100))

		template, err := book.CreateBudgetTemplate("Plan", map[string]float64{category.ID: 50}, false)
		testutil.AssertNoError(t, err)
		testutil.AssertNoError(t, book.ApplyBudgetTemplate(template.ID, month))

		testutil.AssertMoney(t, book.Assigned(month.Prev(), category.ID), 100)
	})

	t.Run("missing_template", func(t *testing.T) {
		book := ledger.New()
		testutil.AssertAppError(t, book.ApplyBudgetTemplate("no-such-id", month), "TEMPLATE_NOT_FOUND")
	})

	t.Run("zero_month_rejected", func(t *testing.T) {
		book := ledger.New()
		template, err := book.CreateBudgetTemplate("Plan", nil, false)
		testutil.AssertNoError(t, err)
		testutil.AssertAppError(t, book.ApplyBudgetTemplate(template.ID, models.Month{}), "INVALID_INPUT")
	})
}
