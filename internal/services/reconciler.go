package services

import (
	"sort"
	"time"

	"subscription-tracker/internal/models"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// ReconcileInput is everything the rendered subscription list derives from.
type ReconcileInput struct {
	Base        []models.Subscription
	Custom      []models.Subscription
	CanceledIDs []string
	RemovedIDs  []string
	Preferences models.Preferences
	Now         time.Time
}

// Reconcile merges base and custom entries by normalized id (custom wins),
// splits them into removed, canceled and active views in that order of
// precedence, and sorts each view by the preferred order. Every merged entry
// lands in exactly one view.
func Reconcile(in ReconcileInput) models.SubscriptionView {
	prefs := in.Preferences.Normalize()
	now := in.Now
	if now.IsZero() {
		now = time.Now()
	}

	hidden := models.NewIDSet(in.RemovedIDs, prefs.HiddenIDs)
	canceled := models.NewIDSet(in.CanceledIDs)

	view := models.SubscriptionView{
		Active:      []models.Subscription{},
		Canceled:    []models.Subscription{},
		Removed:     []models.Subscription{},
		Preferences: prefs,
	}

	for _, sub := range models.MergeSubscriptions(in.Base, in.Custom) {
		sub = decorate(sub, now)
		switch {
		case hidden.Has(sub.ID):
			view.Removed = append(view.Removed, sub)
		case canceled.Has(sub.ID):
			view.Canceled = append(view.Canceled, sub)
		default:
			view.Active = append(view.Active, sub)
		}
	}

	SortSubscriptions(view.Active, prefs.Sort)
	SortSubscriptions(view.Canceled, prefs.Sort)
	SortSubscriptions(view.Removed, prefs.Sort)

	total, _ := models.SumPrices(view.Active).Float64()
	savings, _ := models.SumPrices(view.Canceled).Float64()
	view.MonthlyTotalUSD = total
	view.MonthlySavingsUSD = savings
	view.ActiveCount = len(view.Active)

	return view
}

// SortSubscriptions orders in place by name (English collation) or by price
// ascending. Equal keys keep their merge order.
func SortSubscriptions(subs []models.Subscription, order string) {
	if order == models.SortByPrice {
		sort.SliceStable(subs, func(i, j int) bool {
			return subs[i].PricePerMonthUSD < subs[j].PricePerMonthUSD
		})
		return
	}

	col := collate.New(language.English, collate.IgnoreCase)
	sort.SliceStable(subs, func(i, j int) bool {
		return col.CompareString(subs[i].Name, subs[j].Name) < 0
	})
}

// decorate fills the derived fields on a copy; stored entries never carry them.
func decorate(sub models.Subscription, now time.Time) models.Subscription {
	avatar := BrandAvatarFor(sub.Name)
	sub.Avatar = &avatar

	if days, ok := sub.DaysUntilCharge(now); ok {
		sub.RenewsInDays = &days
	}
	return sub
}
