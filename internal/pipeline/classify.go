// Package pipeline classifies, aggregates and scores finance records.
package pipeline

import (
	"strings"

	"github.com/theirongolddev/finpulse/internal/model"
)

const investSubstring = "invest"

// Classify assigns a transaction to income, expense or investment.
//
// Any positive amount is income. An outflow whose description starts with
// model.InvestmentTag, or merely contains "invest" (case-insensitive), is an
// investment; everything else is an expense. The substring match is a known
// false-positive source: "Investment Banking Course" classifies as an
// investment.
func Classify(tx model.Transaction) model.Class {
	if tx.Amount.IsPositive() {
		return model.ClassIncome
	}
	if model.HasInvestmentTag(tx.Description) ||
		strings.Contains(strings.ToLower(tx.Description), investSubstring) {
		return model.ClassInvestment
	}
	return model.ClassExpense
}

// ClassifyAll classifies every transaction, preserving input order.
func ClassifyAll(txs []model.Transaction) []model.Classified {
	out := make([]model.Classified, len(txs))
	for i, tx := range txs {
		out[i] = model.Classified{Transaction: tx, Class: Classify(tx)}
	}
	return out
}
