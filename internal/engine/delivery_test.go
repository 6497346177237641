package engine

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"nova-ads/internal/core/domain"
	"nova-ads/internal/core/port"
	"nova-ads/internal/core/port/mocks"
)

func deliveryAd(id int64, bid int64) domain.Ad {
	ad := *testAd(id)
	ad.BidAmount = bid
	ad.Creative = domain.Creative{
		Headline:       "Spring sale",
		DestinationURL: "https://shop.example.com/sale",
	}
	return ad
}

func newTestDelivery(repo *mocks.MockAdRepository, freq *mocks.MockFrequencyStore) *Delivery {
	return NewDelivery(repo, freq, nil, nil, DeliveryOptions{
		Deadline: time.Second,
	})
}

func TestSelectAdPicksHighestScore(t *testing.T) {
	repo := mocks.NewMockAdRepository(t)
	freq := mocks.NewMockFrequencyStore(t)

	low := deliveryAd(1, 100)
	high := deliveryAd(2, 900)
	repo.EXPECT().CandidateAds(mock.Anything).Return([]domain.Ad{low, high}, nil)

	freq.EXPECT().Count(mock.Anything, "u1", mock.AnythingOfType("int64"), mock.AnythingOfType("time.Time")).Return(int64(0), nil)
	freq.EXPECT().LastShown(mock.Anything, "u1", mock.AnythingOfType("int64")).Return(time.Time{}, false, nil)

	// impression recording for the winner
	winner := high
	repo.EXPECT().GetAd(mock.Anything, int64(2)).Return(&winner, nil)
	repo.EXPECT().ApplyImpression(mock.Anything, mock.AnythingOfType("domain.AdEvent")).Return(nil)
	freq.EXPECT().Increment(mock.Anything, "u1", int64(2), 3, mock.AnythingOfType("time.Time")).Return(nil)
	freq.EXPECT().TouchShown(mock.Anything, "u1", int64(2), mock.AnythingOfType("time.Time")).Return(nil)

	d := newTestDelivery(repo, freq)
	decision, err := d.SelectAd(context.Background(), domain.ViewerContext{UserID: "u1"}, domain.SlotContext{})
	require.NoError(t, err)
	require.NotNil(t, decision)
	require.Equal(t, int64(2), decision.AdID)
	require.Equal(t, "Spring sale", decision.Headline)
	require.True(t, strings.HasPrefix(decision.ClickURL, "/api/v1/ad/click/"))
}

func TestSelectAdNoCandidates(t *testing.T) {
	repo := mocks.NewMockAdRepository(t)
	freq := mocks.NewMockFrequencyStore(t)
	repo.EXPECT().CandidateAds(mock.Anything).Return(nil, nil)

	d := newTestDelivery(repo, freq)
	decision, err := d.SelectAd(context.Background(), domain.ViewerContext{UserID: "u1"}, domain.SlotContext{})
	require.NoError(t, err)
	require.Nil(t, decision)
}

func TestSelectAdRejectsMissingViewerID(t *testing.T) {
	repo := mocks.NewMockAdRepository(t)
	freq := mocks.NewMockFrequencyStore(t)

	d := newTestDelivery(repo, freq)
	_, err := d.SelectAd(context.Background(), domain.ViewerContext{}, domain.SlotContext{})
	require.ErrorIs(t, err, port.ErrValidation)
}

func TestSelectAdSkipsGatedAndCapped(t *testing.T) {
	repo := mocks.NewMockAdRepository(t)
	freq := mocks.NewMockFrequencyStore(t)

	paused := deliveryAd(1, 900)
	paused.Lifecycle = domain.LifecyclePaused
	ended := deliveryAd(2, 800)
	ended.ScheduledEnd = time.Now().Add(-time.Second)
	capped := deliveryAd(3, 700)
	servable := deliveryAd(4, 100)

	repo.EXPECT().CandidateAds(mock.Anything).
		Return([]domain.Ad{paused, ended, capped, servable}, nil)

	freq.EXPECT().Count(mock.Anything, "u1", int64(3), mock.AnythingOfType("time.Time")).Return(int64(3), nil)
	freq.EXPECT().Count(mock.Anything, "u1", int64(4), mock.AnythingOfType("time.Time")).Return(int64(0), nil)
	freq.EXPECT().LastShown(mock.Anything, "u1", int64(4)).Return(time.Time{}, false, nil)

	won := servable
	repo.EXPECT().GetAd(mock.Anything, int64(4)).Return(&won, nil)
	repo.EXPECT().ApplyImpression(mock.Anything, mock.AnythingOfType("domain.AdEvent")).Return(nil)
	freq.EXPECT().Increment(mock.Anything, "u1", int64(4), 3, mock.AnythingOfType("time.Time")).Return(nil)
	freq.EXPECT().TouchShown(mock.Anything, "u1", int64(4), mock.AnythingOfType("time.Time")).Return(nil)

	d := newTestDelivery(repo, freq)
	decision, err := d.SelectAd(context.Background(), domain.ViewerContext{UserID: "u1"}, domain.SlotContext{})
	require.NoError(t, err)
	require.NotNil(t, decision)
	require.Equal(t, int64(4), decision.AdID)
}

func TestSelectAdSkipsBudgetExhausted(t *testing.T) {
	repo := mocks.NewMockAdRepository(t)
	freq := mocks.NewMockFrequencyStore(t)

	spent := deliveryAd(1, 900)
	spent.Counters.Spend = spent.Budget

	repo.EXPECT().CandidateAds(mock.Anything).Return([]domain.Ad{spent}, nil)
	freq.EXPECT().Count(mock.Anything, "u1", int64(1), mock.AnythingOfType("time.Time")).Return(int64(0), nil)

	d := newTestDelivery(repo, freq)
	decision, err := d.SelectAd(context.Background(), domain.ViewerContext{UserID: "u1"}, domain.SlotContext{})
	require.NoError(t, err)
	require.Nil(t, decision)
}

func TestSelectAdHonorsSlotSurface(t *testing.T) {
	repo := mocks.NewMockAdRepository(t)
	freq := mocks.NewMockFrequencyStore(t)

	stories := deliveryAd(1, 900)
	stories.Placement.Surface = "stories"

	repo.EXPECT().CandidateAds(mock.Anything).Return([]domain.Ad{stories}, nil)

	d := newTestDelivery(repo, freq)
	decision, err := d.SelectAd(context.Background(), domain.ViewerContext{UserID: "u1"}, domain.SlotContext{Surface: "feed"})
	require.NoError(t, err)
	require.Nil(t, decision)
}

func TestRegisterClick(t *testing.T) {
	repo := mocks.NewMockAdRepository(t)
	freq := mocks.NewMockFrequencyStore(t)

	ad := deliveryAd(1, 500)
	imp := &domain.AdEvent{
		EventID: "tok-1", Type: domain.EventImpression, AdID: 1, ViewerID: "u1",
	}
	repo.EXPECT().FindEvent(mock.Anything, "tok-1").Return(imp, nil)
	repo.EXPECT().GetAd(mock.Anything, int64(1)).Return(&ad, nil)
	repo.EXPECT().ApplyClick(mock.Anything, mock.MatchedBy(func(ev domain.AdEvent) bool {
		return ev.EventID == "tok-1:click" && ev.Type == domain.EventClick
	})).Return(nil).Once()

	d := newTestDelivery(repo, freq)
	url, err := d.RegisterClick(context.Background(), "tok-1")
	require.NoError(t, err)
	require.Equal(t, "https://shop.example.com/sale", url)

	// replay dedupes inside the repository and still returns the URL
	repo.EXPECT().ApplyClick(mock.Anything, mock.AnythingOfType("domain.AdEvent")).
		Return(port.ErrDuplicateEvent)
	url, err = d.RegisterClick(context.Background(), "tok-1")
	require.NoError(t, err)
	require.Equal(t, "https://shop.example.com/sale", url)
}

func TestRegisterClickUnknownToken(t *testing.T) {
	repo := mocks.NewMockAdRepository(t)
	freq := mocks.NewMockFrequencyStore(t)
	repo.EXPECT().FindEvent(mock.Anything, "nope").Return(nil, nil)

	d := newTestDelivery(repo, freq)
	_, err := d.RegisterClick(context.Background(), "nope")
	require.ErrorIs(t, err, port.ErrNotFound)
}

func TestAdMetricsDerived(t *testing.T) {
	repo := mocks.NewMockAdRepository(t)
	freq := mocks.NewMockFrequencyStore(t)

	ad := deliveryAd(1, 500)
	ad.Counters = domain.Counters{Impressions: 1000, Clicks: 20, Conversions: 5, Spend: 400}
	repo.EXPECT().GetAd(mock.Anything, int64(1)).Return(&ad, nil)

	d := newTestDelivery(repo, freq)
	m, err := d.AdMetrics(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, 2.0, m.CTR)
	require.Equal(t, 20.0, m.CPC)
	require.Equal(t, 400.0, m.CPM)
	require.Equal(t, 25.0, m.ConversionRate)
}
