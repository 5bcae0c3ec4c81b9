package classify

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"portfolio-chat-be/pkg/chat/types"
	"portfolio-chat-be/pkg/llm"

	"go.uber.org/zap"
)

// Classifier performs pure LLM-based message classification.
// No portfolio data is consulted here, only understanding.
type Classifier struct {
	llmProvider llm.LLMProvider
	logger      *zap.Logger
}

func NewClassifier(llmProvider llm.LLMProvider, logger *zap.Logger) *Classifier {
	return &Classifier{
		llmProvider: llmProvider,
		logger:      logger,
	}
}

// Classify analyzes the user message and produces a stable classification.
// It never fails: any provider or parsing error degrades to the fallback
// result so the pipeline always proceeds.
func (c *Classifier) Classify(ctx context.Context, message string) types.ClassificationResult {
	prompt := c.buildPrompt(message)

	response, err := c.llmProvider.Generate(ctx, prompt,
		llm.WithTemperature(0.1),
		llm.WithMaxTokens(200),
	)
	if err != nil {
		c.logger.Warn("classification call failed, using fallback", zap.Error(err))
		return types.FallbackClassification()
	}

	result, err := c.parseClassification(response)
	if err != nil {
		c.logger.Warn("classification parsing failed, using fallback", zap.Error(err))
		return types.FallbackClassification()
	}

	c.logger.Debug("message classified",
		zap.String("category", string(result.Category)),
		zap.String("intent", string(result.Intent)),
		zap.Float64("confidence", result.Confidence),
		zap.Bool("special_ui", result.RequiresSpecialUI),
	)

	return result
}

func (c *Classifier) buildPrompt(message string) string {
	var prompt strings.Builder

	prompt.WriteString("You are a message classifier for Arif Foysal's portfolio chatbot.\n")
	prompt.WriteString("Your job is to analyze user messages and classify them into specific categories and intents.\n\n")

	prompt.WriteString("CLASSIFICATION CATEGORIES:\n")
	prompt.WriteString("1. \"projects\" - User wants to know about projects, portfolio work\n")
	prompt.WriteString("2. \"skills\" - User asks about technical skills, programming languages, technologies\n")
	prompt.WriteString("3. \"education\" - Questions about academic background, degrees, certifications\n")
	prompt.WriteString("4. \"experience\" - Work experience, jobs, professional background\n")
	prompt.WriteString("5. \"achievements\" - Awards, recognition, accomplishments\n")
	prompt.WriteString("6. \"contact\" - Contact information, how to reach out\n")
	prompt.WriteString("7. \"personal\" - Personal information, bio, general questions about the person\n")
	prompt.WriteString("8. \"other\" - General conversation, greetings, unclear intent\n\n")

	prompt.WriteString("INTENT TYPES:\n")
	prompt.WriteString("- \"list_all\" - User wants to see all items (e.g., \"show me all projects\", \"list your skills\")\n")
	prompt.WriteString("- \"specific_item\" - User asks about a specific project, skill, etc. (e.g., \"Tell me about Blue Horizon\", \"What technologies use React?\")\n")
	prompt.WriteString("- \"general_question\" - General questions that need conversational responses\n")
	prompt.WriteString("- \"greeting\" - Greetings, small talk\n")
	prompt.WriteString("- \"contact_request\" - Direct request for contact information\n\n")

	prompt.WriteString("SPECIAL UI TRIGGERS:\n")
	prompt.WriteString("- If intent is \"list_all\" for projects, skills, education, experience, or achievements -> requires_special_ui: true\n")
	prompt.WriteString("- If asking for contact info -> requires_special_ui: true\n")
	prompt.WriteString("- Otherwise -> requires_special_ui: false\n\n")

	prompt.WriteString("Respond ONLY with a JSON object in this exact format:\n")
	prompt.WriteString("{\n")
	prompt.WriteString("    \"category\": \"category_name\",\n")
	prompt.WriteString("    \"intent\": \"intent_type\",\n")
	prompt.WriteString("    \"confidence\": 0.95,\n")
	prompt.WriteString("    \"requires_special_ui\": true/false\n")
	prompt.WriteString("}\n\n")

	prompt.WriteString(fmt.Sprintf("User message: %q\n", message))

	return prompt.String()
}

func (c *Classifier) parseClassification(response string) (types.ClassificationResult, error) {
	jsonContent := extractJSON(response)
	if jsonContent == "" {
		return types.ClassificationResult{}, fmt.Errorf("no JSON found in response")
	}

	var result types.ClassificationResult
	if err := json.Unmarshal([]byte(jsonContent), &result); err != nil {
		return types.ClassificationResult{}, fmt.Errorf("JSON unmarshal failed: %w", err)
	}

	// Validate and normalize
	result.Category = types.Category(strings.ToLower(string(result.Category)))
	result.Intent = types.Intent(strings.ToLower(string(result.Intent)))

	if !types.ValidCategory(result.Category) {
		return types.ClassificationResult{}, fmt.Errorf("unknown category %q", result.Category)
	}
	if !types.ValidIntent(result.Intent) {
		return types.ClassificationResult{}, fmt.Errorf("unknown intent %q", result.Intent)
	}

	if result.Confidence < 0 {
		result.Confidence = 0
	}
	if result.Confidence > 1 {
		result.Confidence = 1
	}

	return result, nil
}

func extractJSON(response string) string {
	startIdx := strings.Index(response, "{")
	endIdx := strings.LastIndex(response, "}")

	if startIdx == -1 || endIdx == -1 || endIdx <= startIdx {
		return ""
	}

	return response[startIdx : endIdx+1]
}
