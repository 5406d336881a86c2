package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"zeroledger/internal/ledger"
	"zeroledger/internal/models"
)

func setupAccountRouter(book *ledger.Ledger) *gin.Engine {
	handler := NewAccountHandler(book)
	r := gin.New()
	r.POST("/accounts", handler.CreateAccount)
	r.GET("/accounts", handler.GetAccounts)
	r.GET("/accounts/:id", handler.GetAccount)
	r.PUT("/accounts/:id", handler.UpdateAccount)
	r.DELETE("/accounts/:id", handler.DeleteAccount)
	r.GET("/accounts/:id/projection", handler.GetLoanProjection)
	return r
}

func TestAccountHandler_CreateAccount(t *testing.T) {
	t.Run("returns 201 with opening balance applied", func(t *testing.T) {
		book := ledger.New()
		r := setupAccountRouter(book)

		rec := doRequest(r, "POST", "/accounts",
			`{"name":"Checking","type":"checking","opening_balance":1000}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		account := result["account"].(map[string]interface{})
		if account["balance"].(float64) != 1000 {
			t.Errorf("expected balance 1000, got %v", account["balance"])
		}
	})

	t.Run("returns 400 for unknown type", func(t *testing.T) {
		r := setupAccountRouter(ledger.New())

		rec := doRequest(r, "POST", "/accounts",
			`{"name":"Broker","type":"brokerage"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("loan_account_records_terms", func(t *testing.T) {
		book := ledger.New()
		r := setupAccountRouter(book)

		rec := doRequest(r, "POST", "/accounts",
			`{"name":"Car Loan","type":"loan","opening_balance":-5000,`+
				`"interest_rate":12,"monthly_payment":500,"original_principal":8000,"loan_start_date":"2024-01-15"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		accounts := book.Accounts()
		if len(accounts) != 1 {
			t.Fatalf("expected 1 account, got %d", len(accounts))
		}
		if accounts[0].InterestRate != 12 || accounts[0].MonthlyPayment != 500 {
			t.Errorf("expected 12%%/500 terms, got %.2f%%/%.2f",
				accounts[0].InterestRate, accounts[0].MonthlyPayment)
		}
	})
}

func TestAccountHandler_UpdateAccount(t *testing.T) {
	t.Run("returns 400 when editing a checking balance", func(t *testing.T) {
		book := ledger.New()
		account, err := book.CreateAccount("Checking", models.AccountTypeChecking, 100, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		r := setupAccountRouter(book)

		rec := doRequest(r, "PUT", "/accounts/"+account.ID, `{"balance":500}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
		}
		assertErrorCode(t, parseJSON(t, rec), "BALANCE_NOT_EDITABLE")
	})

	t.Run("returns 404 for a missing account", func(t *testing.T) {
		r := setupAccountRouter(ledger.New())

		rec := doRequest(r, "PUT", "/accounts/no-such-id", `{"name":"X"}`)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}

func TestAccountHandler_GetLoanProjection(t *testing.T) {
	t.Run("projects a loan payoff", func(t *testing.T) {
		book := ledger.New()
		account, err := book.CreateAccount("Car Loan", models.AccountTypeLoan, -5000, &ledger.LoanTerms{
			InterestRate:      12,
			MonthlyPayment:    500,
			OriginalPrincipal: 8000,
			StartDate:         time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		r := setupAccountRouter(book)

		rec := doRequest(r, "GET", "/accounts/"+account.ID+"/projection", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		current := result["current"].(map[string]interface{})
		if current["months_remaining"].(float64) != 11 {
			t.Errorf("expected 11 months remaining, got %v", current["months_remaining"])
		}
		if result["time_remaining"] != "11 mos" {
			t.Errorf("expected 11 mos, got %v", result["time_remaining"])
		}
		if _, ok := result["original_schedule"]; !ok {
			t.Error("expected an original schedule when the original principal is recorded")
		}
	})

	t.Run("returns 400 for a non-loan account", func(t *testing.T) {
		book := ledger.New()
		account, err := book.CreateAccount("Checking", models.AccountTypeChecking, 100, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		r := setupAccountRouter(book)

		rec := doRequest(r, "GET", "/accounts/"+account.ID+"/projection", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 when the payment cannot amortize", func(t *testing.T) {
		book := ledger.New()
		account, err := book.CreateAccount("Stuck Loan", models.AccountTypeLoan, -10000, &ledger.LoanTerms{
			InterestRate:   12,
			MonthlyPayment: 50,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		r := setupAccountRouter(book)

		rec := doRequest(r, "GET", "/accounts/"+account.ID+"/projection", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "PAYMENT_TOO_SMALL")
	})
}
