package recommend

import (
	"fmt"
	"strings"

	"github.com/telos-labs/recommend/internal/store"
)

// SystemPrompt is the instruction sent alongside every user prompt.
const SystemPrompt = "Return only valid JSON."

const promptTemplate = `You are an intelligent business recommendation engine.

User ID: %s

Recent Activity Logs:
%s

Return ONLY valid JSON.
Do not include explanation text.
Do not include markdown.

Format:
{
  "recommendations": [
    {
      "action": "...",
      "priority": "High/Medium/Low",
      "reason": "..."
    }
  ]
}`

// BuildPrompt renders the activity window into the model prompt. Output is
// a pure function of its input: timestamps are formatted in UTC at minute
// precision and activities appear in the order given (newest first).
func BuildPrompt(userID string, activities []store.Activity) string {
	lines := make([]string, 0, len(activities))
	for _, activity := range activities {
		activityContext := activity.Context
		if activityContext == "" {
			activityContext = "no context"
		}
		lines = append(lines, fmt.Sprintf(
			"- %s: %s (%s)",
			activity.Timestamp.UTC().Format("2006-01-02 15:04"),
			activity.Action,
			activityContext,
		))
	}
	return fmt.Sprintf(promptTemplate, userID, strings.Join(lines, "\n"))
}
