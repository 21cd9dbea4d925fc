package service

import (
	"context"
	"fmt"

	"github.com/aqualog/hydration-api/internal/domain"
	"github.com/aqualog/hydration-api/internal/llm"
	"github.com/aqualog/hydration-api/internal/log"
)

// recommendationComment asks the comment writer for a one-liner and falls
// back to a template when the writer is absent or fails. A recommendation is
// never blocked on the LLM.
func recommendationComment(ctx context.Context, writer llm.CommentWriter, kind domain.RecommendationKind, rec domain.HydrationRecommendation) string {
	if writer != nil {
		comment, err := writer.GenerateComment(ctx, kind, rec)
		if err == nil && comment != "" {
			return comment
		}
		if err != nil {
			log.Warnf("comment generation failed, using template: %v", err)
		}
	}
	return templateComment(kind, rec)
}

func templateComment(kind domain.RecommendationKind, rec domain.HydrationRecommendation) string {
	if rec.AdditionalWaterMl <= 0 {
		if kind == domain.RecommendationSleep {
			return "No sleep signal today, so stick with your base goal."
		}
		return "Mild conditions today, your base goal has you covered."
	}
	switch rec.Priority {
	case domain.PriorityHigh:
		return fmt.Sprintf("Add about %d ml today and front-load it this morning.", rec.AdditionalWaterMl)
	case domain.PriorityMedium:
		return fmt.Sprintf("Add about %d ml to your goal today.", rec.AdditionalWaterMl)
	}
	return fmt.Sprintf("A small top-up of %d ml keeps you on track.", rec.AdditionalWaterMl)
}
