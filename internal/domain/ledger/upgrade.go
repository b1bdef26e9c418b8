package ledger

import "strings"

// A mid-cut service upgrade is encoded as two rows: the base service row
// relabeled with the upgrade marker at the originally booked price, plus a
// separate fee row for the price delta. Reports reunify them (see the report
// package). Kept in this two-row shape because downstream report tooling
// depends on it.
const (
	DiscountLabel   = "Potongan Diskon"
	UpgradeFeeLabel = "Biaya Upgrade Layanan"

	upgradeMarker = " (Up from "
)

// ServiceLabel renders the base service row label, e.g. "Jasa Signature Cut".
func ServiceLabel(serviceName string) string {
	return "Jasa " + serviceName
}

// AddOnLabel renders an add-on row label.
func AddOnLabel(serviceName string) string {
	return "Add-on " + serviceName
}

// UpgradedServiceLabel renders the marked base row of an upgraded checkout,
// e.g. "Jasa Executive Contour (Up from Signature Cut)".
func UpgradedServiceLabel(newService, oldService string) string {
	return "Jasa " + newService + upgradeMarker + oldService + ")"
}

// IsUpgradeFee reports whether the label marks the delta row of an upgrade.
func IsUpgradeFee(label string) bool {
	return strings.Contains(strings.ToLower(label), strings.ToLower(UpgradeFeeLabel))
}

// UpgradeTarget strips the upgrade marker from a label, returning the merged
// label and true when the marker was present.
func UpgradeTarget(label string) (string, bool) {
	idx := strings.Index(strings.ToLower(label), strings.ToLower(upgradeMarker))
	if idx < 0 {
		return label, false
	}
	return strings.TrimSpace(label[:idx]), true
}
