package credit

import (
	"errors"
	"fmt"
)

// SettlementState is a step of the due settlement flow.
type SettlementState int

const (
	ListDues SettlementState = iota
	SelectPerson
	SelectAmount
	ApplyPayment
)

func (s SettlementState) String() string {
	switch s {
	case ListDues:
		return "list-dues"
	case SelectPerson:
		return "select-person"
	case SelectAmount:
		return "select-amount"
	case ApplyPayment:
		return "apply-payment"
	default:
		return "unknown"
	}
}

// Settlement is the outcome of one run of the settlement flow.
//
// State is the step where the flow stopped. The payment was applied if and only if
// State is ApplyPayment and Err is nil.
type Settlement struct {
	State  SettlementState
	Person string
	Amount Money
	Due    Money // due after the flow
	Err    error
}

// Paid reports whether the payment was applied.
func (s Settlement) Paid() bool { return s.State == ApplyPayment && s.Err == nil }

// Settle lets one person pay down part or all of their due amount.
//
// It is a single attempt: any invalid input ends the flow with a message written to
// the console and recorded in Settlement.Err. The returned error is only for an
// unreadable console.
func Settle(c *Console, people *People) (Settlement, error) {
	var (
		s      = Settlement{State: ListDues}
		person *Person
	)
	for {
		switch s.State {
		case ListDues:
			if people.Len() == 0 {
				c.Println("No people found.")
				s.Err = ErrNoPeople
				return s, nil
			}
			c.Println("People with dues:")
			i := 0
			for p := range people.WithDues() {
				i++
				c.Printf("%d. %s - Due: %v\n", i, p.Name(), p.Due())
			}
			s.State = SelectPerson

		case SelectPerson:
			name, err := c.Ask("Enter your name:")
			if err != nil {
				return s, err
			}
			s.Person = name
			person, err = people.Get(name)
			if err != nil {
				c.Println("Person not found.")
				s.Err = err
				return s, nil
			}
			s.Due = person.Due()
			if !person.HasDue() {
				c.Println("You have no due amount.")
				s.Err = fmt.Errorf("%s: %w", name, ErrNoDue)
				return s, nil
			}
			s.State = SelectAmount

		case SelectAmount:
			c.Printf("Your current due: %v\n", person.Due())
			input, err := c.Ask("Enter amount to pay:")
			if err != nil {
				return s, err
			}
			amount, err := ParseMoney(input)
			if err != nil {
				c.Println("Invalid amount entered.")
				s.Err = fmt.Errorf("%w: %w", ErrInvalidAmount, err)
				return s, nil
			}
			s.Amount = amount
			if err := person.CanPay(amount); err != nil {
				if errors.Is(err, ErrOverpayment) {
					c.Printf("You can't pay more than your due amount (%v).\n", person.Due())
				} else {
					c.Println("Invalid amount entered.")
				}
				s.Err = err
				return s, nil
			}
			s.State = ApplyPayment

		case ApplyPayment:
			person.settle(s.Amount)
			s.Due = person.Due()
			c.Printf("Payment successful! New due amount for %s: %v\n", person.Name(), person.Due())
			return s, nil
		}
	}
}
