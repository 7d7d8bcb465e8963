package calendar

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestFirstAndLastDayOfYear(t *testing.T) {
	tests := []struct {
		year      int
		wantFirst time.Time
		wantLast  time.Time
	}{
		{2022, Date(2022, time.January, 1), Date(2022, time.December, 31)},
		{2023, Date(2023, time.January, 1), Date(2023, time.December, 31)},
		{2024, Date(2024, time.January, 1), Date(2024, time.December, 31)},
	}

	for _, tt := range tests {
		if got := FirstDayOfYear(tt.year); !got.Equal(tt.wantFirst) {
			t.Errorf("FirstDayOfYear(%d) = %v, want %v", tt.year, got, tt.wantFirst)
		}
		if got := LastDayOfYear(tt.year); !got.Equal(tt.wantLast) {
			t.Errorf("LastDayOfYear(%d) = %v, want %v", tt.year, got, tt.wantLast)
		}
	}
}

func TestAddAndSubDays(t *testing.T) {
	d := Date(2024, time.February, 27)

	if got, want := AddDays(d, 2), Date(2024, time.February, 29); got != want {
		t.Errorf("AddDays across leap day = %v, want %v", got, want)
	}
	if got, want := AddDays(d, 3), Date(2024, time.March, 1); got != want {
		t.Errorf("AddDays into March = %v, want %v", got, want)
	}
	if got, want := SubDays(Date(2024, time.January, 1), 1), Date(2023, time.December, 31); got != want {
		t.Errorf("SubDays across year = %v, want %v", got, want)
	}
	if got := SubDays(AddDays(d, 10), 10); got != d {
		t.Errorf("SubDays(AddDays(d, 10), 10) = %v, want %v", got, d)
	}
}

func TestNormalize(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*60*60)
	in := time.Date(2024, time.March, 5, 23, 30, 0, 0, loc)

	if got, want := Normalize(in), Date(2024, time.March, 5); got != want {
		t.Errorf("Normalize() = %v, want %v", got, want)
	}
}

func TestDaysBetweenInclusive(t *testing.T) {
	tests := []struct {
		name      string
		start     time.Time
		end       time.Time
		wantLen   int
		wantErr   bool
		wantFirst time.Time
		wantLast  time.Time
	}{
		{
			name:      "single day",
			start:     Date(2024, time.May, 1),
			end:       Date(2024, time.May, 1),
			wantLen:   1,
			wantFirst: Date(2024, time.May, 1),
			wantLast:  Date(2024, time.May, 1),
		},
		{
			name:      "full week",
			start:     Date(2022, time.March, 28),
			end:       Date(2022, time.April, 3),
			wantLen:   7,
			wantFirst: Date(2022, time.March, 28),
			wantLast:  Date(2022, time.April, 3),
		},
		{
			name:      "leap year",
			start:     Date(2024, time.January, 1),
			end:       Date(2024, time.December, 31),
			wantLen:   366,
			wantFirst: Date(2024, time.January, 1),
			wantLast:  Date(2024, time.December, 31),
		},
		{
			name:    "start after end",
			start:   Date(2024, time.January, 2),
			end:     Date(2024, time.January, 1),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days, err := DaysBetweenInclusive(tt.start, tt.end)
			if (err != nil) != tt.wantErr {
				t.Fatalf("DaysBetweenInclusive() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidRange) {
					t.Errorf("error %v does not match ErrInvalidRange", err)
				}
				return
			}
			if len(days) != tt.wantLen {
				t.Fatalf("len = %d, want %d", len(days), tt.wantLen)
			}
			if days[0] != tt.wantFirst {
				t.Errorf("first = %v, want %v", days[0], tt.wantFirst)
			}
			if days[len(days)-1] != tt.wantLast {
				t.Errorf("last = %v, want %v", days[len(days)-1], tt.wantLast)
			}
			for i := 1; i < len(days); i++ {
				if AddDays(days[i-1], 1) != days[i] {
					t.Fatalf("days[%d] = %v does not follow %v", i, days[i], days[i-1])
				}
			}
		})
	}
}

func TestRangeError(t *testing.T) {
	_, err := DaysBetweenInclusive(Date(2024, time.January, 2), Date(2024, time.January, 1))

	var rerr *RangeError
	if !errors.As(err, &rerr) {
		t.Fatalf("error %T is not a *RangeError", err)
	}
	if rerr.Start != Date(2024, time.January, 2) || rerr.End != Date(2024, time.January, 1) {
		t.Errorf("RangeError = %+v", rerr)
	}
	if !strings.Contains(err.Error(), "start 2024-01-02 is after end 2024-01-01") {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestFormat(t *testing.T) {
	if got := Format(Date(2024, time.February, 29)); got != "2024-02-29" {
		t.Errorf("Format() = %q", got)
	}
	if got := Format(Date(7, time.March, 1)); got != "0007-03-01" {
		t.Errorf("Format() = %q", got)
	}
}

func TestParseMonth(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Month
		wantErr bool
	}{
		{in: "january", want: time.January},
		{in: "March", want: time.March},
		{in: " SEP ", want: time.September},
		{in: "may", want: time.May},
		{in: "12", want: time.December},
		{in: "0", wantErr: true},
		{in: "13", wantErr: true},
		{in: "smarch", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMonth(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseMonth(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseMonth(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
