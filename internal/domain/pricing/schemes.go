package pricing

import (
	"fmt"
	"time"

	"github.com/jhoicas/distributor-api/internal/domain/entity"
)

// eligibleSchemes filters the input scheme list for this calculation:
// not stopped, today inside the inclusive date window, both SKUs present in
// the catalog, positive buy threshold, and scope matching the distributor.
// Scope checks are independent; a distributor can match a global, a store and
// a distributor scheme on the same buy SKU at once. De-duplicated by id.
func eligibleSchemes(snap snapshot) []entity.Scheme {
	today := dateOnly(snap.in.Today)
	seen := make(map[string]bool, len(snap.in.Schemes))
	var out []entity.Scheme
	for _, s := range snap.in.Schemes {
		if seen[s.ID] || s.Stopped() {
			continue
		}
		if s.BuyQuantity <= 0 || s.GetQuantity <= 0 {
			continue
		}
		if _, ok := snap.skuByID[s.BuySKUID]; !ok {
			continue
		}
		if _, ok := snap.skuByID[s.GetSKUID]; !ok {
			continue
		}
		if today.Before(dateOnly(s.StartDate)) || today.After(dateOnly(s.EndDate)) {
			continue
		}
		if !scopeMatches(s, snap.in.Distributor) {
			continue
		}
		seen[s.ID] = true
		out = append(out, s)
	}
	return out
}

func scopeMatches(s entity.Scheme, d *entity.Distributor) bool {
	switch {
	case s.IsGlobal:
		return true
	case s.DistributorID != "":
		return s.DistributorID == d.ID
	case s.StoreID != "":
		return d.StoreID != "" && s.StoreID == d.StoreID
	}
	return false
}

// resolveSchemes computes free-goods lines and the applied-scheme audit list.
// Every eligible scheme on a buy SKU triggers independently and rewards are
// summed; multiple schemes rewarding the same get SKU aggregate into one free
// line whose source label is the last contributing scheme's.
func resolveSchemes(snap snapshot) ([]DisplayItem, []AppliedScheme) {
	byBuySKU := map[string][]entity.Scheme{}
	for _, s := range eligibleSchemes(snap) {
		byBuySKU[s.BuySKUID] = append(byBuySKU[s.BuySKUID], s)
	}

	freeQty := map[string]int{}
	freeSource := map[string]string{}
	timesBySchemeID := map[string]int{}
	var appliedOrder []entity.Scheme

	for _, skuID := range sortedQuantityKeys(snap.in.Quantities) {
		qty := snap.in.Quantities[skuID]
		if qty <= 0 {
			continue
		}
		if _, ok := snap.skuByID[skuID]; !ok {
			continue
		}
		for _, s := range byBuySKU[skuID] {
			times := qty / s.BuyQuantity
			if times < 1 {
				continue
			}
			freeQty[s.GetSKUID] += times * s.GetQuantity
			freeSource[s.GetSKUID] = schemeSource(s)
			if _, triggered := timesBySchemeID[s.ID]; !triggered {
				appliedOrder = append(appliedOrder, s)
			}
			timesBySchemeID[s.ID] += times
		}
	}

	free := make([]DisplayItem, 0, len(freeQty))
	for _, skuID := range sortedQuantityKeys(freeQty) {
		sku := snap.skuByID[skuID]
		free = append(free, DisplayItem{
			SKUID:        skuID,
			Name:         sku.Name,
			Quantity:     freeQty[skuID],
			IsFreebie:    true,
			SchemeSource: freeSource[skuID],
		})
	}

	applied := make([]AppliedScheme, 0, len(appliedOrder))
	for _, s := range appliedOrder {
		applied = append(applied, AppliedScheme{Scheme: s, TimesApplied: timesBySchemeID[s.ID]})
	}
	return free, applied
}

func schemeSource(s entity.Scheme) string {
	if s.Description != "" {
		return fmt.Sprintf("%s (%s)", s.Description, s.ScopeLabel())
	}
	return s.ScopeLabel()
}

// dateOnly truncates to calendar-day granularity; scheme windows are
// inclusive on both ends.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
