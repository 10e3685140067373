package pricing_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"lootvalue/internal/domain"
	"lootvalue/internal/domain/entity"
	"lootvalue/internal/domain/service/pricing"
	"lootvalue/pkg/errcodes"
)

var errBoom = errors.New("boom")

type fakeRepo struct {
	market      map[string]int64
	buyers      map[string][]entity.BuyerQuote
	err         error
	marketCalls int
	buyerCalls  int
}

func (r *fakeRepo) MarketPrice(_ context.Context, templateID string) (entity.MarketQuote, error) {
	r.marketCalls++
	if r.err != nil {
		return entity.MarketQuote{}, r.err
	}

	price, ok := r.market[templateID]
	if !ok {
		return entity.MarketQuote{}, domain.NewError(errcodes.PriceNotFound, errcodes.KindNotFound, "market price not found")
	}

	return entity.MarketQuote{TemplateID: templateID, UnitPrice: price}, nil
}

func (r *fakeRepo) BuyerOffers(_ context.Context, templateID string) ([]entity.BuyerQuote, error) {
	r.buyerCalls++
	if r.err != nil {
		return nil, r.err
	}

	return r.buyers[templateID], nil
}

type fakeQuotes struct {
	market map[string]int64
	err    error
	calls  int
}

func (q *fakeQuotes) MarketPrice(_ context.Context, templateID string) (int64, bool, error) {
	q.calls++
	price, ok := q.market[templateID]
	return price, ok, q.err
}

func (q *fakeQuotes) BuyerOffers(context.Context, string) ([]entity.BuyerQuote, bool, error) {
	q.calls++
	return nil, false, q.err
}

func newRepo() *fakeRepo {
	return &fakeRepo{
		market: map[string]int64{"tpl-ak": 20000, "tpl-scope": 3000, "tpl-bolts": 201},
		buyers: map[string][]entity.BuyerQuote{
			"tpl-ak": {
				{TemplateID: "tpl-ak", BuyerName: "Mechanic", UnitPrice: 12000},
				{TemplateID: "tpl-ak", BuyerName: "Prapor", UnitPrice: 11000},
			},
			"tpl-receiver": {{TemplateID: "tpl-receiver", BuyerName: "Mechanic", UnitPrice: 500}},
			"tpl-scope":    {{TemplateID: "tpl-scope", BuyerName: "Mechanic", UnitPrice: 1500}},
			"tpl-bolts":    {{TemplateID: "tpl-bolts", BuyerName: "Therapist", UnitPrice: 100}},
		},
	}
}

func rifle() entity.Item {
	return entity.Item{
		ID:         "ak-1",
		TemplateID: "tpl-ak",
		StackCount: 1,
		Durability: 0.8,
		Mods: []entity.Item{{
			ID:         "receiver-1",
			TemplateID: "tpl-receiver",
			StackCount: 1,
			Durability: 1,
			Vital:      true,
			Mods: []entity.Item{{
				ID:         "scope-1",
				TemplateID: "tpl-scope",
				StackCount: 1,
				Durability: 1,
			}},
		}},
	}
}

func TestMarketUnitPrice(t *testing.T) {
	testCases := []struct {
		name string
		item entity.Item
		want int64
	}{
		{
			name: "worn rifle with mods",
			item: rifle(),
			want: 16000 + 0 + 3000,
		},
		{
			name: "condition rounds down",
			item: entity.Item{TemplateID: "tpl-bolts", StackCount: 1, Durability: 0.29},
			want: 58,
		},
		{
			name: "not traded",
			item: entity.Item{TemplateID: "tpl-dogtag", StackCount: 1, Durability: 1},
			want: 0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			got, err := pricing.NewService(newRepo()).MarketUnitPrice(context.Background(), tc.item)
			rq.NoError(err)
			rq.Equal(tc.want, got)
		})
	}
}

func TestBestBuyerOffer(t *testing.T) {
	testCases := []struct {
		name string
		item entity.Item
		want entity.BuyerOffer
	}{
		{
			name: "buyer that takes the mods wins",
			item: rifle(),
			want: entity.BuyerOffer{Price: 9600 + 500 + 1500, BuyerName: "Mechanic"},
		},
		{
			name: "stack",
			item: entity.Item{TemplateID: "tpl-bolts", StackCount: 3, Durability: 1},
			want: entity.BuyerOffer{Price: 300, BuyerName: "Therapist"},
		},
		{
			name: "nobody buys",
			item: entity.Item{TemplateID: "tpl-dogtag", StackCount: 1, Durability: 1},
			want: entity.BuyerOffer{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			got, err := pricing.NewService(newRepo()).BestBuyerOffer(context.Background(), tc.item)
			rq.NoError(err)
			rq.Equal(tc.want, got)
		})
	}
}

func TestCacheLayers(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	repo := newRepo()
	quotes := &fakeQuotes{market: map[string]int64{"tpl-bolts": 250}}
	svc := pricing.NewService(repo).WithQuoteCache(quotes)

	item := entity.Item{TemplateID: "tpl-bolts", StackCount: 1, Durability: 1}

	for range 3 {
		price, err := svc.MarketUnitPrice(ctx, item)
		rq.NoError(err)
		rq.Equal(int64(250), price)
	}

	rq.Equal(1, quotes.calls)
	rq.Zero(repo.marketCalls)

	offer, err := svc.BestBuyerOffer(ctx, item)
	rq.NoError(err)
	rq.Equal(int64(100), offer.Price)
	rq.Equal(1, repo.buyerCalls)
}

func TestQuoteCacheFailureFallsBackToDatabase(t *testing.T) {
	rq := require.New(t)

	repo := newRepo()
	svc := pricing.NewService(repo).WithQuoteCache(&fakeQuotes{err: errBoom})

	price, err := svc.MarketUnitPrice(context.Background(), entity.Item{TemplateID: "tpl-ak", StackCount: 1, Durability: 1})
	rq.NoError(err)
	rq.Equal(int64(20000), price)
	rq.Equal(1, repo.marketCalls)
}

func TestLookupFailurePropagates(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	repo := newRepo()
	repo.err = errBoom
	svc := pricing.NewService(repo)

	_, err := svc.MarketUnitPrice(ctx, rifle())
	rq.ErrorIs(err, errBoom)

	code, ok := domain.GetCode(err)
	rq.True(ok)
	rq.Equal(errcodes.PriceLookupFailed, code)

	_, err = svc.BestBuyerOffer(ctx, rifle())
	rq.ErrorIs(err, errBoom)

	sources := svc.Sources(ctx)
	_, err = sources.MarketUnitPrice(rifle())
	rq.ErrorIs(err, errBoom)
}
