package matchengine

import (
	"github.com/shopspring/decimal"
)

// Odds and EV arithmetic. The sportsbook's implied probability is used
// as the "true" win-probability proxy; the prediction-market price is
// the payout source (shares bought at price p redeem for $1).

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

// AmericanToDecimal converts American odds to decimal odds.
// Positive odds pay odds/100 per unit staked; negative odds require
// |odds|/100 staked to win one unit. Zero is not a valid American
// price and converts to zero decimal odds.
func AmericanToDecimal(odds float64) decimal.Decimal {
	d := decimal.NewFromFloat(odds)
	switch {
	case d.IsPositive():
		return one.Add(d.Div(hundred))
	case d.IsNegative():
		return one.Add(hundred.Div(d.Abs()))
	default:
		return decimal.Zero
	}
}

// ImpliedProbability returns 1/decimalOdds, or zero for invalid odds.
func ImpliedProbability(decimalOdds decimal.Decimal) decimal.Decimal {
	if !decimalOdds.IsPositive() {
		return decimal.Zero
	}
	return one.Div(decimalOdds)
}

// Payout returns the redemption value of stake dollars of shares
// bought at marketPrice. A non-positive price is an invalid or
// unfilled line and pays out nothing.
func Payout(stake, marketPrice decimal.Decimal) decimal.Decimal {
	if !marketPrice.IsPositive() {
		return decimal.Zero
	}
	return stake.Div(marketPrice)
}

// EVResult holds the full expected-value breakdown for one stake.
type EVResult struct {
	DecimalOdds    decimal.Decimal `json:"decimal_odds"`
	TrueProb       decimal.Decimal `json:"true_prob"`       // sportsbook implied, fraction
	Payout         decimal.Decimal `json:"payout"`          // gross redemption if win
	ProfitIfWin    decimal.Decimal `json:"profit_if_win"`   // payout - stake
	ExpectedProfit decimal.Decimal `json:"expected_profit"` // p * profitIfWin
	EV             decimal.Decimal `json:"ev"`              // dollars
	EVPercent      decimal.Decimal `json:"ev_percent"`
	Quality        Quality         `json:"quality"`
}

// ComputeEV prices a stake bought at the prediction-market price and
// judged against the sportsbook's American odds:
//
//	p           = 1 / decimal(americanOdds)
//	profitIfWin = stake/marketPrice - stake
//	EV          = p*profitIfWin - (1-p)*stake
//
// Returns nil when either price is unusable (zero odds, non-positive
// market price, or zero stake).
func ComputeEV(stake, marketPrice, americanOdds float64) *EVResult {
	st := decimal.NewFromFloat(stake)
	if !st.IsPositive() {
		return nil
	}

	dec := AmericanToDecimal(americanOdds)
	p := ImpliedProbability(dec)
	if p.IsZero() {
		return nil
	}

	payout := Payout(st, decimal.NewFromFloat(marketPrice))
	if payout.IsZero() {
		return nil
	}

	profitIfWin := payout.Sub(st)
	expectedProfit := p.Mul(profitIfWin)
	ev := expectedProfit.Sub(one.Sub(p).Mul(st))
	evPct := ev.Div(st).Mul(hundred)

	return &EVResult{
		DecimalOdds:    dec,
		TrueProb:       p,
		Payout:         payout,
		ProfitIfWin:    profitIfWin,
		ExpectedProfit: expectedProfit,
		EV:             ev,
		EVPercent:      evPct,
		Quality:        QualityFor(evPct),
	}
}

var (
	excellentCutoff = decimal.NewFromInt(5)
	goodCutoff      = decimal.NewFromInt(2)
)

// QualityFor buckets an EV percentage for display.
func QualityFor(evPercent decimal.Decimal) Quality {
	switch {
	case evPercent.GreaterThanOrEqual(excellentCutoff):
		return QualityExcellent
	case evPercent.GreaterThanOrEqual(goodCutoff):
		return QualityGood
	default:
		return QualityMarginal
	}
}
