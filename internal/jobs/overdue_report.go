package jobs

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/internal/rental"
)

const overdueReportJob = "OverdueReport"

// OverdueReport находит активные аренды с истёкшим сроком и оценивает доплату за просрочку.
// Статус аренд не меняется: завершение остаётся за арендатором.
func (r *Runner) OverdueReport() {
	r.runWithRecovery(overdueReportJob, r.reportOverdue)
}

func (r *Runner) reportOverdue(ctx context.Context) error {
	now := r.timeProvider.Now()

	overdue, err := r.rentalRepo.GetOverdue(ctx, now)
	if err != nil {
		return fmt.Errorf("failed to load overdue rentals: %w", err)
	}

	surchargeTotal := decimal.Zero
	for _, item := range overdue {
		calc, err := rental.PreviewReturn(item, now)
		if err != nil {
			r.logger.Warn("%s: failed to preview return for rental id=%s: %v", overdueReportJob, item.ID, err)
			continue
		}

		surcharge := decimal.Zero
		if calc.AdditionalDaysAmount != nil {
			surcharge = *calc.AdditionalDaysAmount
		}
		surchargeTotal = surchargeTotal.Add(surcharge)

		r.logger.Warn("%s: rental id=%s, renter=%s, asset=%s overdue since %s, extra_days=%d, surcharge=%s",
			overdueReportJob, item.ID, item.RenterID, item.AssetID,
			item.ExpectedEndDate.Format(domain.DateFormat), calc.AdditionalDays,
			surcharge.StringFixed(domain.MoneyScale))
	}

	r.metrics.SetOverdue(len(overdue), surchargeTotal)

	r.logger.Info("%s: overdue rentals=%d, surcharge total=%s",
		overdueReportJob, len(overdue), surchargeTotal.StringFixed(domain.MoneyScale))
	return nil
}
