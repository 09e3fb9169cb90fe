package assistant

import "parket-portal/internal/models"

type DecisionKind string

const (
	// DecisionExactProduct carries the canonical record for the queried code.
	DecisionExactProduct DecisionKind = "exact_product"
	// DecisionSimilarSuggestions carries prefix-similar candidates.
	DecisionSimilarSuggestions DecisionKind = "similar_suggestions"
	// DecisionNotFound means neither the code nor any prefix match exists.
	DecisionNotFound DecisionKind = "not_found"
	// DecisionDeferToKnowledge hands control to the knowledge selector for
	// supplementary material about the code.
	DecisionDeferToKnowledge DecisionKind = "defer_to_knowledge"
)

type Decision struct {
	Kind        DecisionKind
	Code        string // queried article code, lower-case
	Product     *models.Product
	Suggestions []models.Product
}

// Resolve maps an article code to a lookup decision. Priority order, first
// match wins: exact match without supplementary keywords, prefix-similar
// suggestions, not found, deferred knowledge search. The index is never
// mutated.
func Resolve(code string, wantsSupplementary bool, idx *ProductIndex) Decision {
	if wantsSupplementary {
		return Decision{Kind: DecisionDeferToKnowledge, Code: code}
	}

	if records := idx.Lookup(code); len(records) > 0 {
		product := records[0]
		return Decision{Kind: DecisionExactProduct, Code: code, Product: &product}
	}

	if similar := idx.PrefixMatches(code); len(similar) > 0 {
		return Decision{Kind: DecisionSimilarSuggestions, Code: code, Suggestions: similar}
	}

	return Decision{Kind: DecisionNotFound, Code: code}
}
