package credit

import "fmt"

// Person is a customer of the ledger: some cash to spend, and the dues of past credit purchases.
type Person struct {
	name    string
	balance Money
	due     Money // never negative
}

// NewPerson creates a person with a starting balance and no due.
func NewPerson(name string, balance Money) *Person {
	return &Person{name: name, balance: balance}
}

func (p *Person) Name() string   { return p.name }
func (p *Person) Balance() Money { return p.balance }
func (p *Person) Due() Money     { return p.due }

// HasDue reports whether the person owes anything.
func (p *Person) HasDue() bool { return p.due.IsPositive() }

// Buy purchases a product according to terms.
//
// When paying now, the price is debited from the balance, or nothing happens and
// ErrInsufficientBalance is returned. On credit, the price and its simple interest
// are added to the due amount.
func (p *Person) Buy(product Product, terms Terms) (Receipt, error) {
	r := Receipt{Person: p.name, Product: product.Name(), PayNow: terms.PayNow, Price: product.Price()}
	if terms.PayNow {
		if p.balance.LessThan(product.Price()) {
			return r, fmt.Errorf("%s cannot buy %s for %v with %v: %w", p.name, product.Name(), product.Price(), p.balance, ErrInsufficientBalance)
		}
		p.balance = p.balance.Sub(product.Price())
		r.Balance, r.Due = p.balance, p.due
		return r, nil
	}

	if err := terms.Validate(); err != nil {
		return r, fmt.Errorf("%s cannot buy %s on credit: %w", p.name, product.Name(), err)
	}
	q := NewQuote(product.Price(), terms.Rate, terms.Duration)
	p.due = p.due.Add(q.Total)
	r.Interest, r.Total = q.Interest, q.Total
	r.Balance, r.Due = p.balance, p.due
	return r, nil
}

// CanPay checks that amount can be paid: the person must owe something, and the
// amount must be neither negative nor more than the due amount. Paying zero is allowed.
func (p *Person) CanPay(amount Money) error {
	if !p.HasDue() {
		return fmt.Errorf("%s: %w", p.name, ErrNoDue)
	}
	if amount.IsNegative() {
		return fmt.Errorf("%w: %v must not be negative", ErrInvalidAmount, amount)
	}
	if amount.GreaterThan(p.due) {
		return fmt.Errorf("%s pays %v for a due of %v: %w", p.name, amount, p.due, ErrOverpayment)
	}
	return nil
}

// Pay reduces the due amount, see CanPay.
func (p *Person) Pay(amount Money) error {
	if err := p.CanPay(amount); err != nil {
		return err
	}
	p.settle(amount)
	return nil
}

// settle applies an amount accepted by CanPay.
func (p *Person) settle(amount Money) { p.due = p.due.Sub(amount) }

// Terms describes how a purchase is paid.
type Terms struct {
	PayNow   bool
	Rate     Percent // yearly rate, credit only
	Duration Years   // credit only
}

// Cash are the terms of an immediate payment.
func Cash() Terms { return Terms{PayNow: true} }

// Credit are the terms of a purchase paid later with simple interest.
func Credit(rate Percent, duration Years) Terms {
	return Terms{Rate: rate, Duration: duration}
}

// Validate checks that credit terms have a positive rate and duration.
func (t Terms) Validate() error {
	if t.PayNow {
		return nil
	}
	if !t.Rate.IsPositive() {
		return fmt.Errorf("%w: %v must be positive", ErrInvalidRate, t.Rate)
	}
	if !t.Duration.IsPositive() {
		return fmt.Errorf("%w: %v must be positive", ErrInvalidDuration, t.Duration)
	}
	return nil
}

// Receipt is the outcome of a purchase.
type Receipt struct {
	Person   string
	Product  string
	PayNow   bool
	Price    Money
	Interest Money // credit only
	Total    Money // credit only: price plus interest
	Balance  Money // balance after the purchase
	Due      Money // due after the purchase
}
