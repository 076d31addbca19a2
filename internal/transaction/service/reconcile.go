package service

import "github.com/tapetashop/tapeta/internal/transaction/domain"

// postingLine is one resolved line moving through a posting.
type postingLine struct {
	table       domain.ItemTable
	itemID      int64
	description string
	quantity    int64
	price       float64
	costPrice   int64
}

// reconcile redistributes the gap between a client-declared refund
// total and the store-computed total across the returned lines. The
// adjustment is spread per unit over wallpaper lines when any exist,
// otherwise over every line. With an even split over float currency
// the recomputed total may drift from the declared one by rounding
// error, bounded by one currency unit per line.
func reconcile(lines []postingLine, declaredTotal float64) []postingLine {
	var storeTotal float64
	var wallpaperUnits, totalUnits int64
	for _, l := range lines {
		storeTotal += l.price * float64(l.quantity)
		totalUnits += l.quantity
		if l.table == domain.TableWallpapers {
			wallpaperUnits += l.quantity
		}
	}

	diff := declaredTotal - storeTotal
	if diff == 0 || totalUnits == 0 {
		return lines
	}

	adjustWallpapersOnly := wallpaperUnits > 0
	units := totalUnits
	if adjustWallpapersOnly {
		units = wallpaperUnits
	}
	perUnit := diff / float64(units)

	adjusted := make([]postingLine, len(lines))
	for i, l := range lines {
		if !adjustWallpapersOnly || l.table == domain.TableWallpapers {
			l.price += perUnit
		}
		adjusted[i] = l
	}
	return adjusted
}
