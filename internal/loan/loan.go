// Package loan computes amortization schedules and payoff projections for
// debt accounts. Everything here is pure and stateless: the projector is
// fed account fields owned by the ledger and never mutates it.
package loan

import (
	"math"
	"time"

	apperrors "zeroledger/internal/errors"
)

// maxMonths caps a projection at 50 years, so a too-small payment can
// never produce an unbounded loop.
const maxMonths = 600

// epsilon is the rounding threshold below which a remaining balance
// counts as paid off.
const epsilon = 0.01

// Row is one month of an amortization schedule.
type Row struct {
	Month     int       `json:"month"`
	Date      time.Time `json:"date"`
	Payment   float64   `json:"payment"`
	Principal float64   `json:"principal"`
	Interest  float64   `json:"interest"`
	Balance   float64   `json:"balance"`
}

// Projection is a loan's computed payoff outlook.
type Projection struct {
	PayoffDate      time.Time `json:"payoff_date"`
	MonthsRemaining int       `json:"months_remaining"`
	TotalInterest   float64   `json:"total_interest"`
	TotalPaid       float64   `json:"total_paid"`
	Schedule        []Row     `json:"schedule"`
}

// Project computes the amortization schedule for a balance at the given
// annual rate (percent) and monthly payment, starting from startDate.
// The balance may be passed signed (as ledger loan balances are negative);
// its magnitude is amortized. If the payment does not cover a month's
// interest the projection fails with ErrPaymentTooSmall rather than
// looping: callers must treat that as a validation error on the loan
// terms.
func Project(currentBalance, annualRatePercent, monthlyPayment float64, startDate time.Time) (*Projection, error) {
	monthlyRate := annualRatePercent / 100 / 12
	remaining := math.Abs(currentBalance)
	var schedule []Row
	var totalInterest float64

	for month := 1; remaining > epsilon && month <= maxMonths; month++ {
		interest := remaining * monthlyRate
		principal := math.Min(monthlyPayment-interest, remaining)

		if principal <= 0 {
			return nil, apperrors.ErrPaymentTooSmall
		}

		remaining -= principal
		totalInterest += interest

		schedule = append(schedule, Row{
			Month:     month,
			Date:      startDate.AddDate(0, month-1, 0),
			Payment:   principal + interest,
			Principal: principal,
			Interest:  interest,
			Balance:   math.Max(remaining, 0),
		})
	}

	return &Projection{
		PayoffDate:      startDate.AddDate(0, len(schedule), 0),
		MonthsRemaining: len(schedule),
		TotalInterest:   totalInterest,
		TotalPaid:       math.Abs(currentBalance) + totalInterest,
		Schedule:        schedule,
	}, nil
}

// OriginalSchedule re-runs the projection from the loan's original
// principal and start date, producing the "as planned" reference track for
// comparison with the current track.
func OriginalSchedule(originalPrincipal, annualRatePercent, monthlyPayment float64, startDate time.Time) ([]Row, error) {
	projection, err := Project(originalPrincipal, annualRatePercent, monthlyPayment, startDate)
	if err != nil {
		return nil, err
	}
	return projection.Schedule, nil
}

// ProgressPercent returns how much of the original principal has been paid
// off, as a percentage. It returns 0 when no original balance is recorded.
func ProgressPercent(currentBalance, originalPrincipal float64) float64 {
	if originalPrincipal == 0 {
		return 0
	}
	paid := originalPrincipal - math.Abs(currentBalance)
	return paid / originalPrincipal * 100
}

// MinimumInterestPayment returns the monthly payment that exactly covers
// interest on the balance; any payment at or below it never amortizes.
func MinimumInterestPayment(balance, annualRatePercent float64) float64 {
	monthlyRate := annualRatePercent / 100 / 12
	return math.Abs(balance) * monthlyRate
}

// Simulate projects a payoff with an increased monthly payment and/or a
// one-time extra principal payment applied immediately. Used to answer
// "what if" questions without touching the loan's stored terms.
func Simulate(currentBalance, annualRatePercent, monthlyPayment, extraMonthly, oneTimeExtra float64, startDate time.Time) (*Projection, error) {
	balance := math.Abs(currentBalance) - oneTimeExtra
	if balance <= epsilon {
		return &Projection{
			PayoffDate:      startDate,
			TotalPaid:       math.Abs(currentBalance),
			Schedule:        nil,
			MonthsRemaining: 0,
		}, nil
	}
	projection, err := Project(balance, annualRatePercent, monthlyPayment+extraMonthly, startDate)
	if err != nil {
		return nil, err
	}
	// Report total paid against the full starting balance, lump sum included.
	projection.TotalPaid = math.Abs(currentBalance) + projection.TotalInterest
	return projection, nil
}
