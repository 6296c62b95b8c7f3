// Package billing computes rental charges and late fees for a returned book.
package billing

import (
	"math"
	"time"

	"github.com/Roonpandit/Library-Management/internal/domain/borrow"
)

// LateFeeMultiplier scales the daily rate for every day past due, so the
// penalty grows with both the book's value and the delay.
const LateFeeMultiplier = 5

// Compute builds the bill for a loan returned at returnDate.
//
//	daysBorrowed = ceil(returnDate - borrowDate, in days)
//	amount       = daysBorrowed * chargePerDay
//	lateFee      = 5 * chargePerDay * ceil(returnDate - dueDate) when late
func Compute(borrowDate, dueDate, returnDate time.Time, chargePerDay float64, bookISBN string) borrow.Bill {
	daysBorrowed := ceilDays(borrowDate, returnDate)
	amount := float64(daysBorrowed) * chargePerDay

	isLate := returnDate.After(dueDate)
	var lateFee float64
	if isLate {
		daysLate := ceilDays(dueDate, returnDate)
		lateFee = LateFeeMultiplier * chargePerDay * float64(daysLate)
	}

	generated := returnDate
	return borrow.Bill{
		Amount:        amount,
		LateFee:       lateFee,
		TotalAmount:   amount + lateFee,
		IsLate:        isLate,
		GeneratedDate: &generated,
		BookISBN:      bookISBN,
	}
}

// Regenerate applies an administrative late-fee adjustment to an existing
// bill. The new fee replaces the stored one; the base amount is untouched.
func Regenerate(bill borrow.Bill, additionalLateFee float64, now time.Time, bookISBN string) borrow.Bill {
	bill.LateFee = additionalLateFee
	bill.TotalAmount = bill.Amount + additionalLateFee
	bill.IsLate = bill.IsLate || additionalLateFee > 0
	bill.GeneratedDate = &now
	if bookISBN != "" {
		bill.BookISBN = bookISBN
	}
	return bill
}

func ceilDays(from, to time.Time) int {
	d := to.Sub(from)
	if d <= 0 {
		return 0
	}
	return int(math.Ceil(d.Hours() / 24))
}
