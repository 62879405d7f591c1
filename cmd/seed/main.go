package main

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/telos-labs/recommend/internal/config"
	"github.com/telos-labs/recommend/internal/store"
	"github.com/telos-labs/recommend/internal/store/postgres"
)

type sampleActivity struct {
	action  string
	context string
}

// Demo activity windows per persona, oldest first.
var sampleActivities = map[string][]sampleActivity{
	"sales_rep": {
		{"email_opened", "Q1 campaign - Lead ABC Corp"},
		{"email_opened", "Follow-up - ABC Corp"},
		{"call_scheduled", "Demo call with ABC Corp"},
		{"email_sent", "Proposal sent to ABC Corp"},
		{"email_opened", "Q1 campaign - Lead XYZ Inc"},
		{"meeting_attended", "Sales team weekly sync"},
		{"crm_updated", "Added notes for ABC Corp"},
		{"email_opened", "Q1 campaign - Lead DEF Ltd"},
		{"call_completed", "Discovery call with XYZ Inc"},
		{"email_sent", "Follow-up email to XYZ Inc"},
	},
	"customer_success": {
		{"ticket_viewed", "Support ticket #123 - Bug report"},
		{"ticket_viewed", "Support ticket #124 - Feature request"},
		{"customer_call", "Check-in call with Acme Inc"},
		{"ticket_resolved", "Support ticket #123"},
		{"email_sent", "Product update notification"},
		{"ticket_viewed", "Support ticket #125 - Integration issue"},
		{"documentation_updated", "Updated API docs"},
		{"ticket_viewed", "Support ticket #126 - Billing question"},
		{"customer_call", "Onboarding call with Beta Corp"},
		{"health_score_check", "Reviewed customer health metrics"},
	},
	"product_manager": {
		{"feature_request_reviewed", "Mobile app improvement"},
		{"user_feedback_analyzed", "Q4 survey results"},
		{"roadmap_updated", "Added Q2 priorities"},
		{"meeting_attended", "Product strategy session"},
		{"analytics_reviewed", "User engagement metrics"},
		{"competitor_research", "Analyzed competitor feature set"},
		{"feature_request_reviewed", "API enhancement request"},
		{"user_interview", "Interview with enterprise customer"},
		{"sprint_planning", "Sprint 12 planning"},
		{"feature_request_reviewed", "Dashboard customization"},
	},
}

func main() {
	cfg := config.Load()

	st, err := postgres.New(cfg.PostgresURL)
	if err != nil {
		log.Fatalf("connect to postgres: %v", err)
	}

	ctx := context.Background()
	baseTime := time.Now().UTC()
	total := 0

	for persona, activities := range sampleActivities {
		userID := persona + "_001"
		for i, sample := range activities {
			activity := store.Activity{
				ID:        uuid.New().String(),
				UserID:    userID,
				Action:    sample.action,
				Context:   sample.context,
				Timestamp: baseTime.Add(-time.Duration(len(activities)-i) * time.Hour),
			}
			if err := st.AddActivity(ctx, activity); err != nil {
				log.Fatalf("seed activity for %s: %v", userID, err)
			}
			total++
		}
		log.Printf("created %d activities for %s", len(activities), userID)
	}

	log.Printf("seeded %d activity logs", total)
}
