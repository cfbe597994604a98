package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInferTopic(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		description string
		want        string
	}{
		{name: "governance keyword", title: "Regulation of frontier models", want: "AI Governance"},
		{name: "safety keyword", title: "Building trust in AI", want: "AI Safety"},
		{name: "health in description", title: "Scaling diagnosis", description: "clinical AI for health systems", want: "Healthcare"},
		{name: "education", title: "AI literacy for schools", want: "Education"},
		{name: "climate", title: "Green compute", want: "Climate"},
		{name: "infrastructure", title: "Semiconductor fabs in India", want: "Infrastructure"},
		{name: "workforce", title: "Unlocking human potential", want: "Workforce"},
		{name: "startups", title: "Founder stories", want: "Startups"},
		{name: "agriculture", title: "Farm advisory bots", want: "Agriculture"},
		{name: "finance", title: "Fintech lending", want: "Finance"},
		{name: "defense", title: "Military applications", want: "Defense"},
		{name: "ethics", title: "Human rights and AI", want: "Ethics"},
		{name: "case insensitive", title: "POLICY summit", want: "AI Governance"},
		{name: "no keyword defaults to governance", title: "Networking Lunch", want: "AI Governance"},
		{
			// "policy" (rule 1) beats "health" (rule 3) even though both hit.
			name:  "first matching rule wins",
			title: "Health policy frameworks",
			want:  "AI Governance",
		},
		{
			// "safety" outranks "startup".
			name:  "safety outranks startups",
			title: "Startup safety practices",
			want:  "AI Safety",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InferTopic(tt.title, tt.description))
		})
	}
}
