package calendar

import "testing"

func TestEasterSundayKnownDates(t *testing.T) {
	cases := []struct {
		year       int
		month, day int
	}{
		{2019, 4, 21},
		{2020, 4, 12},
		{2021, 4, 4},
		{2022, 4, 17},
		{2023, 4, 9},
		{2024, 3, 31},
		{2025, 4, 20},
		{2026, 4, 5},
		{2027, 3, 28},
	}

	for _, tt := range cases {
		month, day := EasterSunday(tt.year)
		if month != tt.month || day != tt.day {
			t.Errorf("EasterSunday(%d) = (%d, %d), want (%d, %d)", tt.year, month, day, tt.month, tt.day)
		}
	}
}

func TestInvoiceMonthKnownYears(t *testing.T) {
	cases := []struct {
		easterYear       int
		wantYear, wantMo int
	}{
		{2024, 2023, 12}, // Easter in March -> invoice month wraps to prior year
		{2025, 2025, 1},
		{2026, 2026, 1},
	}

	for _, tt := range cases {
		y, m := InvoiceMonth(tt.easterYear)
		if y != tt.wantYear || m != tt.wantMo {
			t.Errorf("InvoiceMonth(%d) = (%d, %d), want (%d, %d)", tt.easterYear, y, m, tt.wantYear, tt.wantMo)
		}
	}
}

func TestEasterInvoiceMonthAliasMatchesInvoiceMonth(t *testing.T) {
	y1, m1 := InvoiceMonth(2025)
	y2, m2 := EasterInvoiceMonth(2025)
	if y1 != y2 || m1 != m2 {
		t.Errorf("EasterInvoiceMonth(2025) = (%d, %d), want InvoiceMonth result (%d, %d)", y2, m2, y1, m1)
	}
}

func TestRegressorMarksInvoiceMonthsOnly(t *testing.T) {
	got := Regressor(2024, 1, 24)
	if len(got) != 24 {
		t.Fatalf("len(Regressor) = %d, want 24", len(got))
	}

	want := make([]float64, 24)
	want[12] = 1.0 // 2025-01, the invoice month for Easter 2025 (April 20)

	for i := range got {
		if got[i] != want[i] {
			t.Errorf("Regressor[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestRegressorZeroLength(t *testing.T) {
	got := Regressor(2024, 1, 0)
	if len(got) != 0 {
		t.Errorf("len(Regressor(length=0)) = %d, want 0", len(got))
	}
}

func TestNormalizeStartWrapsOverflow(t *testing.T) {
	cases := []struct {
		year, month         int
		wantYear, wantMonth int
	}{
		{2024, 13, 2025, 1},
		{2024, 1, 2024, 1},
		{2024, 12, 2024, 12},
		{2024, 0, 2023, 12},
		{2024, -13, 2022, 11},
	}

	for _, tt := range cases {
		y, m := NormalizeStart(tt.year, tt.month)
		if y != tt.wantYear || m != tt.wantMonth {
			t.Errorf("NormalizeStart(%d, %d) = (%d, %d), want (%d, %d)",
				tt.year, tt.month, y, m, tt.wantYear, tt.wantMonth)
		}
	}
}

func TestDatesRangeInclusive(t *testing.T) {
	dates := Dates(2024, 2026)
	if len(dates) != 3 {
		t.Fatalf("len(Dates(2024, 2026)) = %d, want 3", len(dates))
	}
	for i, year := range []int{2024, 2025, 2026} {
		if dates[i].Year != year {
			t.Errorf("Dates[%d].Year = %d, want %d", i, dates[i].Year, year)
		}
	}
}

func TestDatesEmptyForInvertedRange(t *testing.T) {
	dates := Dates(2026, 2024)
	if dates != nil {
		t.Errorf("Dates(2026, 2024) = %v, want nil", dates)
	}
}
