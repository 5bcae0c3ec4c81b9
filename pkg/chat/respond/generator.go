package respond

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"portfolio-chat-be/pkg/chat/types"
	"portfolio-chat-be/pkg/llm"

	"go.uber.org/zap"
)

const (
	// maxDataChars caps how much serialized portfolio data goes into the
	// prompt. Enough for the full project list, small enough to keep the
	// call cheap.
	maxDataChars = 2000

	apologyFallback = "I apologize, but I'm having trouble processing your request right now. Please try again later."
)

// Generator produces the conversational reply text in Arif's voice.
type Generator struct {
	llmProvider llm.LLMProvider
	logger      *zap.Logger
}

func NewGenerator(llmProvider llm.LLMProvider, logger *zap.Logger) *Generator {
	return &Generator{
		llmProvider: llmProvider,
		logger:      logger,
	}
}

// Generate builds the persona prompt and asks the LLM for a reply. Provider
// errors degrade to a fixed apology so the turn still completes.
func (g *Generator) Generate(ctx context.Context, message string, classification types.ClassificationResult, data types.Payload, history string) string {
	prompt := g.buildPrompt(message, classification, data, history)

	response, err := g.llmProvider.Generate(ctx, prompt,
		llm.WithTemperature(0.7),
		llm.WithMaxTokens(600),
	)
	if err != nil {
		g.logger.Error("response generation failed", zap.Error(err))
		return apologyFallback
	}

	return strings.TrimSpace(response)
}

func (g *Generator) buildPrompt(message string, classification types.ClassificationResult, data types.Payload, history string) string {
	singleProject, multipleProjects := projectShape(classification, data)

	var prompt strings.Builder

	prompt.WriteString("You are Arif Foysal's AI representative, speaking on his behalf in first person.\n")
	prompt.WriteString("You are helpful, professional, and enthusiastic about technology and software development.\n\n")

	prompt.WriteString("PERSONALITY TRAITS:\n")
	prompt.WriteString("- Speak as \"I\" (first person) as if you ARE Arif Foysal\n")
	prompt.WriteString("- Passionate about technology, AI, and solving real-world problems\n")
	prompt.WriteString("- Friendly but professional tone\n")
	prompt.WriteString("- Concise but informative responses\n")
	prompt.WriteString("- Show enthusiasm for your work and projects\n\n")

	prompt.WriteString("CONTEXT ABOUT ARIF:\n")
	prompt.WriteString("- Full Stack Developer & AI Enthusiast from Bangladesh\n")
	prompt.WriteString("- 3+ years of experience in web development\n")
	prompt.WriteString("- Specializes in React, Vue.js, Python, FastAPI, Langchain, AI Agent\n")
	prompt.WriteString("- Built projects like fuel station automation solutions, RAG agents, Underwater ROV, Skin Cancer detection system and so on\n")
	prompt.WriteString("- Won innovation awards, active open-source contributor\n")
	prompt.WriteString("- Currently working as Software Engineer at Amar Fuel & freelancer on Fiverr\n\n")

	prompt.WriteString("RESPONSE GUIDELINES:\n")
	prompt.WriteString("- Keep responses conversational and engaging\n")
	prompt.WriteString("- When discussing specific projects, mention technologies used\n")
	prompt.WriteString("- If asked about skills, relate them to real projects you've worked on\n")
	prompt.WriteString("- For work experience, highlight key achievements\n")
	prompt.WriteString("- Always speak in first person as Arif Foysal\n")
	prompt.WriteString("- Don't mention that you're an AI - respond as if you're the actual person\n")
	prompt.WriteString("- For specific projects: Provide a detailed description, highlight key features, technologies used, and the link\n")
	prompt.WriteString("- For multiple matching projects: List all matching projects with brief descriptions and highlights\n\n")

	prompt.WriteString("CONVERSATION HISTORY:\n")
	prompt.WriteString(history)
	prompt.WriteString("\n\n")

	prompt.WriteString("CLASSIFICATION INFO:\n")
	prompt.WriteString(fmt.Sprintf("Category: %s\n", classification.Category))
	prompt.WriteString(fmt.Sprintf("Intent: %s\n\n", classification.Intent))

	prompt.WriteString("RELEVANT DATA:\n")
	prompt.WriteString(renderData(data))
	prompt.WriteString("\n\n")

	prompt.WriteString(fmt.Sprintf("USER MESSAGE: %s\n\n", message))

	if singleProject {
		prompt.WriteString("SPECIAL INSTRUCTION: The user is asking about a specific project. Provide a detailed, engaging description including what it does, the technologies used, key features, and why it's interesting.\n\n")
	}
	if multipleProjects {
		prompt.WriteString("SPECIAL INSTRUCTION: The user is asking about projects using a specific technology or matching a criteria. List ALL matching projects with brief descriptions highlighting their key features and the specific technology/feature they asked about.\n\n")
	}

	prompt.WriteString("Respond naturally as Arif Foysal:")

	return prompt.String()
}

// projectShape reports whether data is a single project record or a narrowed
// multi-project list for a specific-item question.
func projectShape(classification types.ClassificationResult, data types.Payload) (single, multiple bool) {
	if classification.Category != types.CategoryProjects ||
		classification.Intent != types.IntentSpecificItem || data == nil {
		return false, false
	}

	switch p := data.(type) {
	case types.ProjectPayload:
		return true, false
	case types.ProjectsPayload:
		return false, len(p) > 1
	}
	return false, false
}

func renderData(data types.Payload) string {
	if data == nil {
		return "No specific data"
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return "No specific data"
	}

	s := string(raw)
	if len(s) > maxDataChars {
		s = s[:maxDataChars]
	}
	return s
}
