package domain

// PercentShare computes floor(amount * pct / 100) on integer minor units.
// Flooring always rounds toward the platform: fees the platform pays out
// and discounts it grants both shrink, never grow.
func PercentShare(amount int64, pct int) int64 {
	if amount <= 0 || pct <= 0 {
		return 0
	}
	return amount * int64(pct) / 100
}

// SplitCommission splits the cleared dues total between the organizer and
// the platform. The platform keeps the rounding remainder.
func SplitCommission(totalCleared int64, adminPct int) (adminShare, platformShare int64) {
	adminShare = PercentShare(totalCleared, adminPct)
	platformShare = totalCleared - adminShare
	return adminShare, platformShare
}
