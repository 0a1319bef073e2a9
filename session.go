package credit

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
)

// Session is an interactive run of the ledger: it owns people and catalog for its
// whole life and talks to the user through a Console.
type Session struct {
	ID      uuid.UUID
	People  *People
	Catalog *Catalog

	console *Console
	log     *slog.Logger
}

// NewSession creates a session reading user input from r and writing to w.
//
// logger receives diagnostic events; it may be nil.
func NewSession(w io.Writer, r io.Reader, people *People, catalog *Catalog, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	id := uuid.New()
	return &Session{
		ID:      id,
		People:  people,
		Catalog: catalog,
		console: NewConsole(w, r),
		log:     logger.With("session", id.String()),
	}
}

const menu = `
Available actions:
1. Buy a product
2. Pay due amount
3. Show balances
4. Exit`

// Run is the menu loop. It returns nil when the user exits.
//
// ctx is checked before and after reading each menu choice: a canceled session
// stops without running the choice, but a pending read is never interrupted.
//
// Invalid inputs are reported on the console and never end the session. Run returns an
// error if the input cannot be read, including when it ends before the user exits.
func (s *Session) Run(ctx context.Context) error {
	s.log.Info("session started", "people", s.People.Len(), "products", s.Catalog.Len())
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		choice, err := s.console.Ask(menu)
		if err != nil {
			return s.abort(err)
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		switch choice {
		case "1":
			err = s.Buy()
		case "2":
			err = s.PayDue()
		case "3":
			s.ShowBalances()
		case "4":
			s.console.Println("Exiting...")
			s.log.Info("session ended")
			return nil
		default:
			s.log.Debug("invalid option", "input", choice)
			s.console.Println("Invalid option! Try again.")
		}
		if err != nil {
			return s.abort(err)
		}
	}
}

// abort logs why the menu loop stops before the user exits.
func (s *Session) abort(err error) error {
	if errors.Is(err, io.ErrUnexpectedEOF) {
		s.log.Info("input ended", "error", err)
	} else {
		s.log.Error("session aborted", "error", err)
	}
	return err
}

// Buy runs the purchase dialog. Invalid inputs abort the dialog with a message and
// record nothing. The returned error is only for an unreadable console.
func (s *Session) Buy() error {
	name, err := s.console.Ask("Enter person name (" + strings.Join(s.People.Names(), "/") + "):")
	if err != nil {
		return err
	}
	person, err := s.People.Get(name)
	if err != nil {
		s.reject("buy", err)
		s.console.Println("Person not found.")
		return nil
	}

	s.console.Println("Available products:")
	for i, p := range s.Catalog.Products() {
		s.console.Printf("%d. %s - %v\n", i, p.Name(), p.Price())
	}
	input, err := s.console.Ask("Enter product number:")
	if err != nil {
		return err
	}
	product, err := s.Catalog.Select(input)
	if err != nil {
		s.reject("buy", err)
		s.console.Println("Invalid product selection.")
		return nil
	}

	input, err = s.console.Ask("Pay now? (yes/no):")
	if err != nil {
		return err
	}
	terms := Cash()
	if !strings.EqualFold(input, "yes") {
		var ok bool
		if terms, ok, err = s.askCredit(); err != nil || !ok {
			return err
		}
	}

	receipt, err := person.Buy(product, terms)
	switch {
	case errors.Is(err, ErrInsufficientBalance):
		s.reject("buy", err)
		s.console.Printf("%s does not have enough balance to buy %s.\n", person.Name(), product.Name())
	case err != nil:
		s.reject("buy", err)
		s.console.Println("Purchase failed.")
	case receipt.PayNow:
		s.log.Debug("cash purchase", "person", receipt.Person, "product", receipt.Product, "price", receipt.Price, "balance", receipt.Balance)
		s.console.Printf("%s bought %s for %v. Remaining balance: %v\n", receipt.Person, receipt.Product, receipt.Price, receipt.Balance)
	default:
		s.log.Debug("credit purchase", "person", receipt.Person, "product", receipt.Product, "total", receipt.Total, "due", receipt.Due)
		s.console.Printf("%s bought %s on credit. Due amount: %v (including interest)\n", receipt.Person, receipt.Product, receipt.Total)
	}
	return nil
}

// askCredit asks for the rate and duration of a credit. ok is false if any of them
// is not a positive number, the user has been told so.
func (s *Session) askCredit() (terms Terms, ok bool, err error) {
	input, err := s.console.Ask("Enter interest rate (%):")
	if err != nil {
		return terms, false, err
	}
	rate, err := ParsePercent(input)
	if err == nil && !rate.IsPositive() {
		err = fmt.Errorf("%v must be positive", rate)
	}
	if err != nil {
		s.reject("buy", fmt.Errorf("%w: %w", ErrInvalidRate, err))
		s.console.Println("Invalid interest rate.")
		return terms, false, nil
	}

	input, err = s.console.Ask("Enter time (years):")
	if err != nil {
		return terms, false, err
	}
	duration, err := ParseYears(input)
	if err == nil && !duration.IsPositive() {
		err = fmt.Errorf("%v must be positive", duration)
	}
	if err != nil {
		s.reject("buy", fmt.Errorf("%w: %w", ErrInvalidDuration, err))
		s.console.Println("Invalid time.")
		return terms, false, nil
	}
	return Credit(rate, duration), true, nil
}

// PayDue runs the settlement flow against every person of the session.
func (s *Session) PayDue() error {
	st, err := Settle(s.console, s.People)
	if err != nil {
		return err
	}
	if st.Err != nil {
		s.reject("pay", st.Err)
		return nil
	}
	s.log.Debug("payment applied", "person", st.Person, "amount", st.Amount, "due", st.Due)
	return nil
}

// ShowBalances prints the balance and due of every person.
func (s *Session) ShowBalances() {
	s.console.Println()
	s.console.Println("Current Balances and Dues:")
	for p := range s.People.All() {
		s.console.Printf("%s - Balance: %v, Due Amount: %v\n", p.Name(), p.Balance(), p.Due())
	}
}

// reject logs a user input that has been refused.
func (s *Session) reject(action string, err error) {
	s.log.Debug("rejected", "action", action, "error", err)
}
