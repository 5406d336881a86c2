// Package testutil provides test helpers for building seeded ledgers and
// making assertions.
package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"zeroledger/internal/ledger"
	"zeroledger/internal/models"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestAccount creates a budget-type checking account with the given
// opening balance.
func CreateTestAccount(t *testing.T, book *ledger.Ledger, openingBalance float64) *models.Account {
	t.Helper()

	account, err := book.CreateAccount(
		fmt.Sprintf("Test Checking %d", nextID()),
		models.AccountTypeChecking,
		openingBalance,
		nil,
	)
	if err != nil {
		t.Fatalf("failed to create test account: %v", err)
	}
	return account
}

// CreateTestLoanAccount creates a loan account with the given balance
// (negative while the loan is outstanding) and terms.
func CreateTestLoanAccount(t *testing.T, book *ledger.Ledger, balance float64, terms ledger.LoanTerms) *models.Account {
	t.Helper()

	account, err := book.CreateAccount(
		fmt.Sprintf("Test Loan %d", nextID()),
		models.AccountTypeLoan,
		balance,
		&terms,
	)
	if err != nil {
		t.Fatalf("failed to create test loan account: %v", err)
	}
	return account
}

// CreateTestGroup creates a category group in the active budget.
func CreateTestGroup(t *testing.T, book *ledger.Ledger) *models.CategoryGroup {
	t.Helper()

	group, err := book.CreateCategoryGroup(fmt.Sprintf("Test Group %d", nextID()))
	if err != nil {
		t.Fatalf("failed to create test group: %v", err)
	}
	return group
}

// CreateTestCategory creates a category with the given monthly goal.
func CreateTestCategory(t *testing.T, book *ledger.Ledger, groupID string, goal float64) *models.Category {
	t.Helper()

	category, err := book.CreateCategory(groupID, fmt.Sprintf("Test Category %d", nextID()), goal)
	if err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}

// CreateTestTransaction posts a transaction against the given account and
// category, dated on the given day.
func CreateTestTransaction(t *testing.T, book *ledger.Ledger, accountID, categoryID string, amount float64, date time.Time) *models.Transaction {
	t.Helper()

	tx, err := book.CreateTransaction(ledger.TransactionInput{
		AccountID:  accountID,
		Date:       date,
		Payee:      fmt.Sprintf("Test Payee %d", nextID()),
		CategoryID: categoryID,
		Amount:     amount,
	})
	if err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return tx
}
