package credit

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestSession_Scenarios(t *testing.T) {
	testCases := []struct {
		name      string
		input     []string
		wantOut   string
		wantAlice [2]Money // balance, due
		wantBob   [2]Money
	}{
		{
			name:      "A: Alice cannot buy a Laptop cash",
			input:     []string{"1", "Alice", "1", "yes", "4"},
			wantOut:   "Alice does not have enough balance to buy Laptop.",
			wantAlice: [2]Money{M(500), M(0)},
			wantBob:   [2]Money{M(1000), M(0)},
		},
		{
			name:      "B: Bob buys a Phone cash",
			input:     []string{"1", "Bob", "2", "YES", "4"},
			wantOut:   "Bob bought Phone for $500.00. Remaining balance: $500.00",
			wantAlice: [2]Money{M(500), M(0)},
			wantBob:   [2]Money{M(500), M(0)},
		},
		{
			name:      "C: Alice buys a Laptop on credit",
			input:     []string{"1", "Alice", "1", "no", "10", "1", "4"},
			wantOut:   "Alice bought Laptop on credit. Due amount: $880.00 (including interest)",
			wantAlice: [2]Money{M(500), M(880)},
			wantBob:   [2]Money{M(1000), M(0)},
		},
		{
			name:      "D: Alice cannot pay more than due",
			input:     []string{"1", "Alice", "1", "no", "10", "1", "2", "Alice", "900.00", "4"},
			wantOut:   "You can't pay more than your due amount ($880.00).",
			wantAlice: [2]Money{M(500), M(880)},
			wantBob:   [2]Money{M(1000), M(0)},
		},
		{
			name:      "E: Alice pays everything",
			input:     []string{"1", "Alice", "1", "no", "10", "1", "2", "Alice", "880.00", "4"},
			wantOut:   "Payment successful! New due amount for Alice: $0.00",
			wantAlice: [2]Money{M(500), M(0)},
			wantBob:   [2]Money{M(1000), M(0)},
		},
		{
			name:      "F: Carol cannot buy",
			input:     []string{"1", "Carol", "4"},
			wantOut:   "Person not found.",
			wantAlice: [2]Money{M(500), M(0)},
			wantBob:   [2]Money{M(1000), M(0)},
		},
		{
			name:      "F: Carol cannot pay",
			input:     []string{"2", "Carol", "4"},
			wantOut:   "Person not found.",
			wantAlice: [2]Money{M(500), M(0)},
			wantBob:   [2]Money{M(1000), M(0)},
		},
		{
			name:      "anything but yes is credit",
			input:     []string{"1", "Bob", "2", "y", "10", "2", "4"},
			wantOut:   "Bob bought Phone on credit. Due amount: $600.00 (including interest)",
			wantAlice: [2]Money{M(500), M(0)},
			wantBob:   [2]Money{M(1000), M(600)},
		},
		{
			name:      "product out of range",
			input:     []string{"1", "Bob", "3", "4"},
			wantOut:   "Invalid product selection.",
			wantAlice: [2]Money{M(500), M(0)},
			wantBob:   [2]Money{M(1000), M(0)},
		},
		{
			name:      "product not a number",
			input:     []string{"1", "Bob", "Phone", "4"},
			wantOut:   "Invalid product selection.",
			wantAlice: [2]Money{M(500), M(0)},
			wantBob:   [2]Money{M(1000), M(0)},
		},
		{
			name:      "zero rate records nothing",
			input:     []string{"1", "Alice", "1", "no", "0", "4"},
			wantOut:   "Invalid interest rate.",
			wantAlice: [2]Money{M(500), M(0)},
			wantBob:   [2]Money{M(1000), M(0)},
		},
		{
			name:      "malformed rate records nothing",
			input:     []string{"1", "Alice", "1", "no", "ten", "4"},
			wantOut:   "Invalid interest rate.",
			wantAlice: [2]Money{M(500), M(0)},
			wantBob:   [2]Money{M(1000), M(0)},
		},
		{
			name:      "negative duration records nothing",
			input:     []string{"1", "Alice", "1", "no", "10", "-1", "4"},
			wantOut:   "Invalid time.",
			wantAlice: [2]Money{M(500), M(0)},
			wantBob:   [2]Money{M(1000), M(0)},
		},
		{
			name:      "huge rate records nothing",
			input:     []string{"1", "Alice", "1", "no", "1e20", "1", "4"},
			wantOut:   "Invalid interest rate.",
			wantAlice: [2]Money{M(500), M(0)},
			wantBob:   [2]Money{M(1000), M(0)},
		},
		{
			name:      "tiny duration records nothing",
			input:     []string{"1", "Alice", "1", "no", "10", "1e-999999999", "4"},
			wantOut:   "Invalid time.",
			wantAlice: [2]Money{M(500), M(0)},
			wantBob:   [2]Money{M(1000), M(0)},
		},
		{
			name:      "tiny payment is refused",
			input:     []string{"1", "Alice", "1", "no", "10", "1", "2", "Alice", "1e-999999999", "4"},
			wantOut:   "Invalid amount entered.",
			wantAlice: [2]Money{M(500), M(880)},
			wantBob:   [2]Money{M(1000), M(0)},
		},
		{
			name:      "zero payment keeps the due",
			input:     []string{"1", "Alice", "1", "no", "10", "1", "2", "Alice", "0", "4"},
			wantOut:   "Payment successful! New due amount for Alice: $880.00",
			wantAlice: [2]Money{M(500), M(880)},
			wantBob:   [2]Money{M(1000), M(0)},
		},
		{
			name:      "invalid option",
			input:     []string{"5", "4"},
			wantOut:   "Invalid option! Try again.",
			wantAlice: [2]Money{M(500), M(0)},
			wantBob:   [2]Money{M(1000), M(0)},
		},
		{
			name:      "two credits accumulate",
			input:     []string{"1", "Alice", "1", "no", "10", "1", "1", "Alice", "2", "no", "10", "1", "4"},
			wantOut:   "Alice bought Phone on credit. Due amount: $550.00 (including interest)",
			wantAlice: [2]Money{M(500), M(1430)},
			wantBob:   [2]Money{M(1000), M(0)},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, out := play(t, tc.input...)
			if !strings.Contains(out, tc.wantOut) {
				t.Errorf("output does not contain %q:\n%s", tc.wantOut, out)
			}
			for name, want := range map[string][2]Money{"Alice": tc.wantAlice, "Bob": tc.wantBob} {
				p := mustGet(t, s.People, name)
				if !p.Balance().Equal(want[0]) || !p.Due().Equal(want[1]) {
					t.Errorf("%s = balance %v, due %v; want %v, %v", name, p.Balance(), p.Due(), want[0], want[1])
				}
			}
			if !strings.HasSuffix(out, "Exiting...\n") {
				t.Errorf("session did not exit cleanly:\n%s", out)
			}
		})
	}
}

func TestSession_ShowBalances(t *testing.T) {
	_, out := play(t, "3", "4")
	want := menu + "\n" +
		"\nCurrent Balances and Dues:\n" +
		"Alice - Balance: $500.00, Due Amount: $0.00\n" +
		"Bob - Balance: $1000.00, Due Amount: $0.00\n" +
		menu + "\n" +
		"Exiting...\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestSession_BuyDialog(t *testing.T) {
	_, out := play(t, "1", "Bob", "2", "yes", "4")
	want := "Enter person name (Alice/Bob):\n" +
		"Available products:\n" +
		"1. Laptop - $800.00\n" +
		"2. Phone - $500.00\n" +
		"Enter product number:\n" +
		"Pay now? (yes/no):\n" +
		"Bob bought Phone for $500.00. Remaining balance: $500.00\n"
	if !strings.Contains(out, want) {
		t.Errorf("output does not contain %q:\n%s", want, out)
	}
}

func TestSession_EndOfInput(t *testing.T) {
	var out bytes.Buffer
	s := NewSession(&out, strings.NewReader("3\n"), DefaultPeople(), DefaultCatalog(), nil)
	err := s.Run(context.Background())
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("Run() error = %v, want %v", err, io.ErrUnexpectedEOF)
	}
}

func TestSession_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out bytes.Buffer
	s := NewSession(&out, strings.NewReader("4\n"), DefaultPeople(), DefaultCatalog(), nil)
	if err := s.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want %v", err, context.Canceled)
	}
	if out.Len() != 0 {
		t.Errorf("canceled session printed %q", out.String())
	}
}

func TestSession_LastLineWithoutNewline(t *testing.T) {
	var out bytes.Buffer
	s := NewSession(&out, strings.NewReader("3\n4"), DefaultPeople(), DefaultCatalog(), nil)
	if err := s.Run(context.Background()); err != nil {
		t.Errorf("Run() error = %v", err)
	}
}

// cancelingReader cancels its context on the first read.
type cancelingReader struct {
	io.Reader
	cancel context.CancelFunc
}

func (r cancelingReader) Read(p []byte) (int, error) {
	r.cancel()
	return r.Reader.Read(p)
}

func TestSession_CanceledWhileReading(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	var out bytes.Buffer
	r := cancelingReader{Reader: strings.NewReader("3\n4\n"), cancel: cancel}
	s := NewSession(&out, r, DefaultPeople(), DefaultCatalog(), nil)
	if err := s.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want %v", err, context.Canceled)
	}
	if strings.Contains(out.String(), "Current Balances and Dues:") {
		t.Errorf("choice read after cancel was run:\n%s", out.String())
	}
}
