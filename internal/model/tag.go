package model

import "strings"

// InvestmentTag marks an outflow as an investment. It is the only reliable
// investment signal; the classifier also falls back to a substring match.
const InvestmentTag = "[INVESTMENT]"

// HasInvestmentTag reports whether desc starts with InvestmentTag, ignoring case.
func HasInvestmentTag(desc string) bool {
	return len(desc) >= len(InvestmentTag) &&
		strings.EqualFold(desc[:len(InvestmentTag)], InvestmentTag)
}

// TagInvestment prefixes desc with InvestmentTag unless it already has it.
func TagInvestment(desc string) string {
	desc = strings.TrimSpace(desc)
	if HasInvestmentTag(desc) {
		return desc
	}
	if desc == "" {
		return InvestmentTag
	}
	return InvestmentTag + " " + desc
}
