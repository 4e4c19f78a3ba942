package presenter

import (
	insightDTO "github.com/johnquangdev/cinejournal/internal/adapter/dto/insight"
	"github.com/johnquangdev/cinejournal/internal/domain/entities"
)

// LatestInsightMessage accompanies a successfully loaded insight
const LatestInsightMessage = "Successfully retrieved AI insights."

// ToLatestInsightResponse converts the latest insight for the dashboard
func ToLatestInsightResponse(i *entities.AIInsight) *insightDTO.LatestInsightResponse {
	if i == nil {
		return nil
	}

	return &insightDTO.LatestInsightResponse{
		Message: LatestInsightMessage,
		MoodAnalysis: &insightDTO.MoodAnalysis{
			MoodArcDescription: i.Content.MoodArcDescription,
			DominantEmotion:    i.Content.DominantEmotion,
		},
		GeneratedAt:     &i.GeneratedAt,
		PeriodStartDate: &i.PeriodStartDate,
		PeriodEndDate:   &i.PeriodEndDate,
	}
}

// ToInsightResponse converts a stored insight to its DTO
func ToInsightResponse(i *entities.AIInsight) *insightDTO.InsightResponse {
	if i == nil {
		return nil
	}

	ids := make([]string, 0, len(i.SourceEntryIDs))
	for _, id := range i.SourceEntryIDs {
		ids = append(ids, id.Hex())
	}

	return &insightDTO.InsightResponse{
		ID:              i.ID.Hex(),
		InsightType:     string(i.InsightType),
		GeneratedAt:     i.GeneratedAt,
		PeriodStartDate: i.PeriodStartDate,
		PeriodEndDate:   i.PeriodEndDate,
		Content: insightDTO.MoodAnalysis{
			MoodArcDescription: i.Content.MoodArcDescription,
			DominantEmotion:    i.Content.DominantEmotion,
		},
		SourceEntryIDs: ids,
	}
}
