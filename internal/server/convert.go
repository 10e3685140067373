package server

import (
	"github.com/samber/lo"

	"lootvalue/internal/domain/entity"
	"lootvalue/internal/view"
	"lootvalue/pkg/errcodes"
	"lootvalue/pkg/rest"
)

func newDomainPolicy(policy rest.Policy) entity.Policy {
	return entity.Policy{
		DurabilityLossThreshold:  policy.DurabilityLossThreshold,
		MinMarginFraction:        policy.MinMarginFraction,
		ValueNonVitalAttachments: policy.ValueNonVitalAttachments,
		InRestrictedContext:      policy.InRestrictedContext,
	}
}

func newDomainDisplay(display rest.Display) entity.DisplaySettings {
	return entity.DisplaySettings{
		HideLowerPrice:              display.HideLowerPrice,
		HideLowerPriceInRaid:        display.HideLowerPriceInRaid,
		ShowMarketEligibility:       display.ShowMarketEligibility,
		ShowPricePerKgAndSlotInRaid: display.ShowPricePerKgAndSlotInRaid,
		ShowPricesInRaid:            display.ShowPricesInRaid,
	}
}

func newRESTChannelPrice(price entity.ChannelPrice) rest.ChannelPrice {
	return rest.ChannelPrice{
		Total:   price.Total,
		PerUnit: price.PerUnit,
		PerSlot: price.PerSlot,
	}
}

func newRESTAppraisal(a entity.Appraisal, display entity.DisplaySettings) rest.Appraisal {
	visible := view.Visible(a, display)

	result := rest.Appraisal{
		ItemID:          a.Item.ID,
		TemplateID:      a.Item.TemplateID,
		Name:            a.Item.Name,
		StackCount:      a.Item.StackCount,
		Market:          newRESTChannelPrice(a.Valuation.Market),
		Buyer:           newRESTChannelPrice(a.Valuation.Buyer),
		BuyerName:       a.Valuation.BuyerName,
		ModsMarketValue: a.Valuation.ModsMarketValue,
		ModsBuyerValue:  a.Valuation.ModsBuyerValue,
		Flags: rest.Flags{
			NonOperational:             a.Flags.NonOperational,
			BelowDurabilityThreshold:   a.Flags.BelowDurabilityThreshold,
			BelowProfitThreshold:       a.Flags.BelowProfitThreshold,
			IneligibleForP2PSale:       a.Flags.IneligibleForP2PSale,
			ContainsRestrictedContents: a.Flags.ContainsRestrictedContents,
			NonEmpty:                   a.Flags.NonEmpty,
			InRestrictedContext:        a.Flags.InRestrictedContext,
		},
		Unsellable: a.Unsellable,
		Aggregate: rest.Aggregate{
			Count:      a.Aggregate.Count,
			TotalValue: a.Aggregate.TotalValue,
		},
		Availability:             rest.ChannelSwitch{Market: a.Availability.Market, Buyer: a.Availability.Buyer},
		Visible:                  rest.ChannelSwitch{Market: visible.Market, Buyer: visible.Buyer},
		PricePerKg:               a.PricePerKg,
		MissingDurabilityPercent: a.MissingDurabilityPercent,
		Lines: lo.Map(view.Lines(a, display), func(l view.Line, _ int) rest.Line {
			return rest.Line{
				Text:       l.Text,
				Color:      l.Color,
				Emphasized: l.Emphasized,
				Separator:  l.Separator,
			}
		}),
	}

	if a.Unsellable {
		result.Code = rest.ErrorCode(errcodes.Unsellable)
	}

	if a.Recommendation != nil {
		result.Recommendation = &rest.Recommendation{
			Channel:         a.Recommendation.PreferredChannel.String(),
			OverrideApplied: a.Recommendation.OverrideApplied,
			OverrideReason:  a.Recommendation.OverrideReason.String(),
		}
	}

	return result
}
