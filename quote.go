package credit

// Quote is the cost of buying on credit.
type Quote struct {
	Price    Money
	Rate     Percent
	Duration Years
	Interest Money
	Total    Money
}

// NewQuote computes simple interest: price * rate/100 * duration, never compounded.
func NewQuote(price Money, rate Percent, duration Years) Quote {
	interest := Money{value: price.value.Mul(rate.Ratio()).Mul(duration.value)}
	return Quote{
		Price:    price,
		Rate:     rate,
		Duration: duration,
		Interest: interest,
		Total:    price.Add(interest),
	}
}
