// Package catalog holds the immutable compliance rule catalog and the
// RACC (Reference Amount Customarily Consumed) reference table that the
// validation engine evaluates labels against.
//
// A catalog is constructed once, validated eagerly, and never mutated
// afterwards, so it is safe to share across arbitrarily many concurrent
// evaluations without locking. Malformed rule entries fail catalog
// construction with a diagnostic naming the offending rule id; nothing
// else in the system is allowed to fail hard.
//
// Each ComplianceRule carries exactly one requirements variant selected
// by its RuleType. Evaluators receive only the requirement shape they
// understand, which keeps field-name mistakes out of the rule data
// path.
//
// The built-in catalog (see Builtin and BuiltinRACC) encodes the fixed
// regulation dataset; alternative rule sets load through the source
// subpackage from YAML files or the surrounding application's SQLite
// tables.
package catalog
