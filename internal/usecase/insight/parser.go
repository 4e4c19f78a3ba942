package insight

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode"

	"github.com/johnquangdev/cinejournal/internal/domain/entities"
)

// ParseInsightContent decodes the vendor response into InsightContent.
// The error is informational: the fallback content is always usable.
func ParseInsightContent(raw string) (entities.InsightContent, error) {
	var content entities.InsightContent
	if err := json.Unmarshal([]byte(extractJSON(raw)), &content); err != nil {
		return entities.FallbackInsightContent, fmt.Errorf("failed to parse insight response: %w", err)
	}

	content.MoodArcDescription = strings.TrimSpace(content.MoodArcDescription)
	content.DominantEmotion = strings.TrimSpace(content.DominantEmotion)
	if content.MoodArcDescription == "" || content.DominantEmotion == "" {
		return entities.FallbackInsightContent, fmt.Errorf("insight response is missing required fields")
	}

	return content, nil
}

// extractJSON strips a markdown code fence around the payload, if any
func extractJSON(content string) string {
	content = strings.TrimSpace(content)

	if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
		// drop the info string ("json", "Json", "javascript", ...)
		if nl := strings.IndexByte(content, '\n'); nl != -1 {
			if !strings.ContainsAny(content[:nl], "{[") {
				content = content[nl+1:]
			}
		} else {
			content = strings.TrimLeftFunc(content, unicode.IsLetter)
		}
	}

	return strings.TrimSpace(content)
}
