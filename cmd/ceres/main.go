// Ceres validates packaged-food nutrition labels against FDA labeling
// regulations (21 CFR 101).
//
// It checks label format eligibility by package size, serving size
// declarations against Reference Amounts Customarily Consumed (RACC),
// mandatory nutrient presence and order, and nutrient content claim
// thresholds.
//
// Usage:
//
//	# Validate a label document against the built-in catalog
//	ceres validate label.json
//
//	# Validate with a custom rule catalog
//	ceres validate --config /path/to/config.yaml label.json
//
//	# List catalog rules
//	ceres rules list
//
//	# Show which label formats a package is eligible for
//	ceres formats --surface-area 45
//
//	# Lint a catalog file before deploying it
//	ceres lint --file rules.yaml
//
//	# Show version information
//	ceres version
package main

func main() {
	Execute()
}
