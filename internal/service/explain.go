package service

import (
	"fmt"
	"log/slog"

	"github.com/plainlearn/plainlearn/internal/domain"
)

const explainDisclaimer = "Note: AI-powered detailed explanations are unavailable; this is the built-in template."

var levelTemplates = map[domain.AcademicLevel]struct {
	body    string
	summary string
}{
	domain.LevelSchool: {
		body: "Here's a simple explanation of %[1]s:\n\n" +
			"%[1]s is an important concept that you can understand by thinking about it step by step. " +
			"It's used in many real-world situations and helps us solve problems. " +
			"Think of it like building blocks - each part works together to create something bigger.\n\n" +
			"Key points:\n" +
			"- It's a fundamental concept in its field\n" +
			"- It has practical applications\n" +
			"- Understanding it helps with related topics",
		summary: "Simple explanation of %s for school level",
	},
	domain.LevelCollege: {
		body: "Understanding %[1]s:\n\n" +
			"%[1]s is a fundamental concept with several key components. " +
			"It involves understanding the basic principles, how they apply in different contexts, " +
			"and why they matter in your field of study.\n\n" +
			"Key aspects:\n" +
			"- Theoretical foundation and principles\n" +
			"- Practical applications and use cases\n" +
			"- Connections to other concepts\n" +
			"- Real-world examples and implementations",
		summary: "Working explanation of %s for college level",
	},
	domain.LevelDegree: {
		body: "Advanced analysis of %[1]s:\n\n" +
			"%[1]s represents a complex theoretical framework with multiple dimensions. " +
			"It requires understanding both the foundational principles and their practical applications.\n\n" +
			"Advanced considerations:\n" +
			"- Theoretical underpinnings and research\n" +
			"- Current developments and trends\n" +
			"- Implementation challenges\n" +
			"- Future directions and opportunities",
		summary: "In-depth explanation of %s for degree level",
	},
}

// ExplainService produces explanation bundles from canned per-level
// templates. It is pure: no I/O, deterministic output.
type ExplainService struct {
	aiKey string
}

// NewExplainService creates a new ExplainService. The AI key is
// accepted for forward compatibility with an external generation path;
// generation is currently template-only regardless.
func NewExplainService(aiKey string) *ExplainService {
	if aiKey == "" {
		slog.Info("AI explanation key not configured, using template explanations")
	}
	return &ExplainService{aiKey: aiKey}
}

// Generate builds the explanation bundle for a topic at the given
// level. An unrecognized level falls back to the school template.
func (s *ExplainService) Generate(topic string, level domain.AcademicLevel) domain.Explanation {
	if !level.Valid() {
		level = domain.LevelSchool
	}
	tpl := levelTemplates[level]

	return domain.Explanation{
		Topic:   topic,
		Level:   level,
		Body:    fmt.Sprintf(tpl.body, topic) + "\n\n" + explainDisclaimer,
		Summary: fmt.Sprintf(tpl.summary, topic),
		Examples: []string{
			fmt.Sprintf("Example: %s can be seen in everyday situations", topic),
			fmt.Sprintf("Application: %s is used in various fields", topic),
		},
	}
}
