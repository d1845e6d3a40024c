package service

import (
	"context"

	accountdomain "github.com/DevalGit/AccountEntry/internal/account/domain"
	"github.com/DevalGit/AccountEntry/internal/finance"
	totalsdomain "github.com/DevalGit/AccountEntry/internal/totals/domain"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// Service sums the per-account derived figures over the full store.
type Service struct {
	accounts accountdomain.Service
}

type ServiceParam struct {
	fx.In

	Accounts accountdomain.Service
}

func NewService(p ServiceParam) totalsdomain.Service {
	return &Service{accounts: p.Accounts}
}

func (s *Service) Compute(ctx context.Context) totalsdomain.Totals {
	var amount, discountAmount, discountedTotal, gst, finalAmount decimal.Decimal

	for _, account := range s.accounts.List(ctx) {
		amt := finance.Sanitize(account.Amount)
		disc := finance.Sanitize(account.Discount)

		off := finance.DiscountAmount(amt, disc)
		amount = amount.Add(decimal.NewFromFloat(amt))
		discountAmount = discountAmount.Add(decimal.NewFromFloat(off))
		discountedTotal = discountedTotal.Add(decimal.NewFromFloat(amt).Sub(decimal.NewFromFloat(off)))
		gst = gst.Add(decimal.NewFromFloat(finance.GST(amt, disc)))
		finalAmount = finalAmount.Add(decimal.NewFromFloat(finance.FinalAmount(amt, disc)))
	}

	return totalsdomain.Totals{
		Amount:          round2(amount),
		DiscountAmount:  round2(discountAmount),
		DiscountedTotal: round2(discountedTotal),
		GST:             round2(gst),
		FinalAmount:     round2(finalAmount),
	}
}

func round2(value decimal.Decimal) float64 {
	result, _ := value.Round(2).Float64()
	return result
}
