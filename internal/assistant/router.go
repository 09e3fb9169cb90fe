package assistant

import (
	"context"

	"parket-portal/internal/models"

	"go.uber.org/zap"
)

// Snapshot is the read-only session state the router works against. It is
// built once at session start and shared by any in-flight messages.
type Snapshot struct {
	Index        *ProductIndex
	Catalog      []models.KnowledgeItem
	SystemPrompt string
}

// Router is the chat response cascade: intent classification, product
// lookup, knowledge relevance selection, payload composition.
type Router struct {
	selector *Selector
	composer *Composer
	logger   *zap.Logger
}

func NewRouter(selector *Selector, composer *Composer, logger *zap.Logger) *Router {
	return &Router{selector: selector, composer: composer, logger: logger}
}

// Respond runs one message through the pipeline and returns exactly one
// composed response. External-call failures propagate; the caller owns the
// user-facing fallback.
func (r *Router) Respond(ctx context.Context, message string, history []models.ChatMessage, snap *Snapshot) (Response, error) {
	intent := Classify(message)

	// Product path only when a code is present and a feed is loaded; with no
	// feed configured, code-looking tokens flow through the knowledge path.
	if intent.ArticleCode != "" && snap.Index != nil && snap.Index.Len() > 0 {
		decision := Resolve(intent.ArticleCode, intent.WantsSupplementary, snap.Index)

		r.logger.Debug("Article code resolved",
			zap.String("code", decision.Code),
			zap.String("decision", string(decision.Kind)),
		)

		switch decision.Kind {
		case DecisionExactProduct, DecisionSimilarSuggestions, DecisionNotFound:
			return r.composer.ComposeProduct(decision), nil

		case DecisionDeferToKnowledge:
			items, err := r.selector.Select(ctx, message, snap.Catalog)
			if err != nil {
				return Response{}, err
			}
			if len(items) == 0 {
				return r.composer.ComposeNoSupplementary(decision.Code), nil
			}
			return r.composer.ComposeKnowledge(ctx, message, snap.SystemPrompt, history, items)
		}
	}

	items, err := r.selector.Select(ctx, message, snap.Catalog)
	if err != nil {
		return Response{}, err
	}
	if len(items) == 0 {
		return r.composer.ComposeClarification(ctx, message, snap.Catalog)
	}
	return r.composer.ComposeKnowledge(ctx, message, snap.SystemPrompt, history, items)
}
