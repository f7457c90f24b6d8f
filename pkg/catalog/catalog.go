package catalog

import "fmt"

// Catalog is the immutable set of compliance rules and RACC categories
// one engine instance evaluates against. Construct with New; a catalog
// is never mutated after construction and is safe for concurrent use.
type Catalog struct {
	rules  []*ComplianceRule
	byID   map[string]*ComplianceRule
	byType map[RuleType][]*ComplianceRule
	racc   map[string]*RACCCategory

	// version identifies the loaded dataset (dataset hash or source
	// revision); informational only.
	version string
}

// New builds a catalog from the given rules and RACC categories. Every
// entry is validated eagerly; the first malformed entry fails
// construction with a diagnostic naming the offending id. Rules are
// kept in evaluation order (format, serving size, mandatory nutrients,
// claims), stable within each family.
func New(version string, rules []*ComplianceRule, categories []*RACCCategory) (*Catalog, error) {
	c := &Catalog{
		byID:    make(map[string]*ComplianceRule, len(rules)),
		byType:  make(map[RuleType][]*ComplianceRule, len(EvaluationOrder)),
		racc:    make(map[string]*RACCCategory, len(categories)),
		version: version,
	}

	claimTerms := make(map[string]string)
	for _, rule := range rules {
		if err := validateRule(rule); err != nil {
			return nil, err
		}
		if _, exists := c.byID[rule.ID]; exists {
			return nil, &DuplicateError{Kind: "rule", ID: rule.ID}
		}
		c.byID[rule.ID] = rule
		c.byType[rule.RuleType] = append(c.byType[rule.RuleType], rule)

		// Claim terms resolve to exactly one rule; a phrase claimed
		// twice would silently shadow one of them at evaluation time.
		if rule.RuleType == RuleTypeClaim {
			for _, term := range rule.Claim.Terms {
				norm := NormalizeClaimTerm(term)
				if other, exists := claimTerms[norm]; exists {
					return nil, &RuleError{
						RuleID:  rule.ID,
						Field:   "claim.terms",
						Message: fmt.Sprintf("term %q is already claimed by rule %q", norm, other),
					}
				}
				claimTerms[norm] = rule.ID
			}
		}
	}

	for _, t := range EvaluationOrder {
		c.rules = append(c.rules, c.byType[t]...)
	}

	for _, cat := range categories {
		if err := cat.validate(); err != nil {
			return nil, err
		}
		if _, exists := c.racc[cat.ID]; exists {
			return nil, &DuplicateError{Kind: "racc_category", ID: cat.ID}
		}
		c.racc[cat.ID] = cat
	}

	return c, nil
}

// Version returns the dataset version the catalog was built from.
func (c *Catalog) Version() string {
	return c.version
}

// Rule returns the rule with the given id, or nil if absent.
func (c *Catalog) Rule(id string) *ComplianceRule {
	return c.byID[id]
}

// Rules returns all rules in evaluation order. The returned slice is a
// copy.
func (c *Catalog) Rules() []*ComplianceRule {
	out := make([]*ComplianceRule, len(c.rules))
	copy(out, c.rules)
	return out
}

// RulesByType returns the active rules of one family, in catalog order.
func (c *Catalog) RulesByType(t RuleType) []*ComplianceRule {
	var out []*ComplianceRule
	for _, r := range c.byType[t] {
		if r.Active {
			out = append(out, r)
		}
	}
	return out
}

// RACC returns the RACC category with the given id, or nil if absent.
// An unknown id is a configuration error the evaluators surface as a
// finding, never as a hard failure.
func (c *Catalog) RACC(id string) *RACCCategory {
	return c.racc[id]
}

// RACCCategories returns all RACC category ids known to the catalog.
func (c *Catalog) RACCCategories() []*RACCCategory {
	out := make([]*RACCCategory, 0, len(c.racc))
	for _, cat := range c.racc {
		out = append(out, cat)
	}
	return out
}

// RuleCount returns the number of rules in the catalog.
func (c *Catalog) RuleCount() int {
	return len(c.rules)
}
