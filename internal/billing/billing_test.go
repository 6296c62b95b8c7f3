package billing

import (
	"math"
	"testing"
	"time"
)

var d0 = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

func days(n int) time.Duration { return time.Duration(n) * 24 * time.Hour }

func approxEq(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestCompute_OnTime(t *testing.T) {
	// borrowed for 3 days, due in 3 days, returned exactly on the due date
	bill := Compute(d0, d0.Add(days(3)), d0.Add(days(3)), 2.00, "9780000000001")

	if !approxEq(bill.Amount, 6.00) {
		t.Fatalf("amount = %.2f, want 6.00", bill.Amount)
	}
	if !approxEq(bill.LateFee, 0) {
		t.Fatalf("lateFee = %.2f, want 0.00", bill.LateFee)
	}
	if !approxEq(bill.TotalAmount, 6.00) {
		t.Fatalf("total = %.2f, want 6.00", bill.TotalAmount)
	}
	if bill.IsLate {
		t.Fatal("isLate = true, want false")
	}
	if bill.GeneratedDate == nil {
		t.Fatal("generatedDate not set")
	}
	if bill.BookISBN != "9780000000001" {
		t.Fatalf("isbn = %q", bill.BookISBN)
	}
}

func TestCompute_TwoDaysLate(t *testing.T) {
	// due in 3 days, returned after 5: amount 5*2, fee 5*2*2
	bill := Compute(d0, d0.Add(days(3)), d0.Add(days(5)), 2.00, "")

	if !approxEq(bill.Amount, 10.00) {
		t.Fatalf("amount = %.2f, want 10.00", bill.Amount)
	}
	if !approxEq(bill.LateFee, 20.00) {
		t.Fatalf("lateFee = %.2f, want 20.00", bill.LateFee)
	}
	if !approxEq(bill.TotalAmount, 30.00) {
		t.Fatalf("total = %.2f, want 30.00", bill.TotalAmount)
	}
	if !bill.IsLate {
		t.Fatal("isLate = false, want true")
	}
}

func TestCompute_PartialDaysRoundUp(t *testing.T) {
	// 2 days and one hour borrowed → charged 3 days
	bill := Compute(d0, d0.Add(days(7)), d0.Add(days(2)+time.Hour), 1.50, "")

	if !approxEq(bill.Amount, 4.50) {
		t.Fatalf("amount = %.2f, want 4.50", bill.Amount)
	}
	if bill.IsLate {
		t.Fatal("isLate = true, want false")
	}
}

func TestCompute_OverdueShortLoan(t *testing.T) {
	// due in 1 day, returned after 3: amount 3*1, fee 5*1*2
	bill := Compute(d0, d0.Add(days(1)), d0.Add(days(3)), 1.00, "")

	if !approxEq(bill.Amount, 3.00) || !approxEq(bill.LateFee, 10.00) || !approxEq(bill.TotalAmount, 13.00) {
		t.Fatalf("got amount=%.2f fee=%.2f total=%.2f, want 3.00/10.00/13.00",
			bill.Amount, bill.LateFee, bill.TotalAmount)
	}
}

func TestCompute_SameInstantReturn(t *testing.T) {
	bill := Compute(d0, d0.Add(days(3)), d0, 2.00, "")
	if !approxEq(bill.Amount, 0) || !approxEq(bill.TotalAmount, 0) || bill.IsLate {
		t.Fatalf("zero-duration loan should cost nothing, got %+v", bill)
	}
}

func TestRegenerate_ReplacesLateFee(t *testing.T) {
	gen := d0.Add(days(5))
	orig := Compute(d0, d0.Add(days(3)), gen, 2.00, "9780000000001")
	// orig: amount 10, fee 20, total 30

	now := gen.Add(time.Hour)
	bill := Regenerate(orig, 5.00, now, "")

	if !approxEq(bill.Amount, 10.00) {
		t.Fatalf("base amount changed: %.2f", bill.Amount)
	}
	if !approxEq(bill.LateFee, 5.00) {
		t.Fatalf("lateFee = %.2f, want 5.00 (replaced, not accumulated)", bill.LateFee)
	}
	if !approxEq(bill.TotalAmount, 15.00) {
		t.Fatalf("total = %.2f, want 15.00", bill.TotalAmount)
	}
	if !bill.IsLate {
		t.Fatal("isLate should persist from the original bill")
	}
	if bill.GeneratedDate == nil || !bill.GeneratedDate.Equal(now) {
		t.Fatalf("generatedDate = %v, want %v", bill.GeneratedDate, now)
	}
	if bill.BookISBN != "9780000000001" {
		t.Fatalf("empty isbn must not overwrite the stored one, got %q", bill.BookISBN)
	}
}

func TestRegenerate_ZeroFeeOnTimeBill(t *testing.T) {
	orig := Compute(d0, d0.Add(days(3)), d0.Add(days(3)), 2.00, "")
	bill := Regenerate(orig, 0, d0.Add(days(4)), "")

	if bill.IsLate {
		t.Fatal("zero adjustment on an on-time bill must stay not-late")
	}
	if !approxEq(bill.TotalAmount, 6.00) {
		t.Fatalf("total = %.2f, want 6.00", bill.TotalAmount)
	}
}
