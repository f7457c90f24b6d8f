// Package label defines the input data model for nutrition-label
// validation: the label record submitted by the surrounding
// application, the set of Nutrition Facts Panel layout formats, and
// the canonical nutrient keys used throughout the engine.
//
// The engine only reads label data; ownership stays with the caller.
// A LabelData value carries everything known about one packaged-food
// label: the per-serving nutrition declaration, serving size and
// household measure, container information, the declared panel
// format, and any nutrient content claims printed on the package.
package label
