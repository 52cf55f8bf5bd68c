// Package ai wraps the Gemini generateContent REST API for quiz, plan and
// quote generation. The content itself is an external collaborator: callers
// treat it as opaque text and the quiz/quote paths fall back to canned
// content whenever the API is unconfigured or unavailable.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	defaultModel   = "gemini-2.0-flash-exp"
	defaultBaseURL = "https://generativelanguage.googleapis.com"
)

// ErrNotConfigured is returned by operations that have no fallback when the
// API key is missing.
var ErrNotConfigured = errors.New("ai service not configured")

// Client calls the Gemini REST API.
type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Gemini client. An empty apiKey puts the client in
// fallback mode.
func NewClient(apiKey, model string) *Client {
	if model == "" {
		model = defaultModel
	}
	return &Client{
		apiKey:  apiKey,
		model:   model,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// QuizQuestion is a single multiple-choice question. CorrectAnswer is the
// index into Options.
type QuizQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
}

// GenerateQuiz returns a 10-question fitness quiz. It never fails: any API
// problem yields the canned quiz.
func (c *Client) GenerateQuiz(ctx context.Context) []QuizQuestion {
	if c.apiKey == "" {
		return defaultQuiz()
	}

	prompt := `Generate a fitness quiz with exactly 10 multiple-choice questions. Cover topics like nutrition, exercise, health, and wellness. Return ONLY valid JSON in this exact format (no markdown, no code blocks):
{
  "questions": [
    {
      "question": "Question text here?",
      "options": ["Option 1", "Option 2", "Option 3", "Option 4"],
      "correctAnswer": 0
    }
  ]
}

Make questions educational and interesting. correctAnswer should be the index (0-3) of the correct option.`

	text, err := c.generateText(ctx, prompt)
	if err != nil {
		return defaultQuiz()
	}

	var parsed struct {
		Questions []QuizQuestion `json:"questions"`
	}
	if err := json.Unmarshal([]byte(stripCodeFences(text)), &parsed); err != nil || len(parsed.Questions) == 0 {
		return defaultQuiz()
	}
	return parsed.Questions
}

// MotivationalQuote returns a short fitness quote, falling back to a static
// one when generation is unavailable.
func (c *Client) MotivationalQuote(ctx context.Context) string {
	const fallback = "The only bad workout is the one that didn't happen."
	if c.apiKey == "" {
		return fallback
	}

	prompt := "Generate a short, powerful, and inspiring fitness motivational quote. Just return the quote text without any additional formatting or explanation. Keep it under 100 characters."
	text, err := c.generateText(ctx, prompt)
	if err != nil {
		return "Success starts with a single step. Take yours today!"
	}
	return strings.Trim(strings.TrimSpace(text), `"'`)
}

// PlanRequest carries the profile fields the plan prompts are built from.
type PlanRequest struct {
	PlanType           string
	FitnessGoal        string
	FitnessLevel       string
	Age                int
	Weight             float64
	Height             float64
	DietaryPreferences string
}

// PlanContent holds the generated sections as raw JSON documents. Sections
// not requested by the plan type are empty.
type PlanContent struct {
	Workout    string
	Diet       string
	Motivation string
}

// GeneratePlan produces workout/diet/motivation content for the request.
// Plan generation has no meaningful fallback, so a missing key is an error.
func (c *Client) GeneratePlan(ctx context.Context, req PlanRequest) (PlanContent, error) {
	if c.apiKey == "" {
		return PlanContent{}, ErrNotConfigured
	}

	profile := fmt.Sprintf("- Fitness Level: %s\n- Goal: %s\n- Age: %d\n- Weight: %.1fkg\n- Height: %.1fcm",
		req.FitnessLevel, req.FitnessGoal, req.Age, req.Weight, req.Height)

	var content PlanContent

	if req.PlanType == "workout" || req.PlanType == "combined" {
		prompt := "Create a detailed personalized workout plan for:\n" + profile + `

Return ONLY a JSON object with keys "weeklySchedule" (array of {day, focus, exercises: [{name, sets, reps, rest, notes}], duration}), "tips" (array of strings) and "equipment" (array of strings). No markdown, no code blocks.`
		doc, err := c.generateJSON(ctx, prompt)
		if err != nil {
			return PlanContent{}, err
		}
		content.Workout = doc
	}

	if req.PlanType == "diet" || req.PlanType == "combined" {
		prompt := "Create a detailed personalized diet/meal plan for:\n" + profile
		if req.DietaryPreferences != "" {
			prompt += "\n- Dietary Preferences: " + req.DietaryPreferences
		}
		prompt += `

Return ONLY a JSON object with keys "dailyCalories" (number), "macros" ({protein, carbs, fats}), "meals" (array of {meal, time, foods: [{name, calories, protein, carbs, fats}], total}), "tips" and "supplements" (arrays of strings). No markdown, no code blocks.`
		doc, err := c.generateJSON(ctx, prompt)
		if err != nil {
			return PlanContent{}, err
		}
		content.Diet = doc
	}

	motivationPrompt := "Create motivational content for someone starting a fitness journey with:\n" + profile + `

Return ONLY a JSON object with keys "mantra" (string), "weeklyGoals" (array of strings) and "milestones" (array of {week, goal}). No markdown, no code blocks.`
	doc, err := c.generateJSON(ctx, motivationPrompt)
	if err != nil {
		return PlanContent{}, err
	}
	content.Motivation = doc

	return content, nil
}

// generateJSON asks the model for a JSON document and validates it parses.
func (c *Client) generateJSON(ctx context.Context, prompt string) (string, error) {
	text, err := c.generateText(ctx, prompt)
	if err != nil {
		return "", err
	}
	doc := stripCodeFences(text)
	if !json.Valid([]byte(doc)) {
		// Keep the raw text so the caller can surface it for debugging.
		wrapped, _ := json.Marshal(map[string]string{"error": "failed to parse generated content", "rawText": text})
		return string(wrapped), nil
	}
	return doc, nil
}

func (c *Client) generateText(ctx context.Context, prompt string) (string, error) {
	reqBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{"parts": []map[string]string{{"text": prompt}}},
		},
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("call gemini: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini returned status %d", resp.StatusCode)
	}

	var parsed struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("empty completion")
	}
	return parsed.Candidates[0].Content.Parts[0].Text, nil
}

func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// defaultQuiz is served whenever generation is unavailable, matching the
// question set shipped with the original product.
func defaultQuiz() []QuizQuestion {
	return []QuizQuestion{
		{Question: "What is the recommended daily water intake for adults?", Options: []string{"2 liters", "4 liters", "6 liters", "8 liters"}, CorrectAnswer: 0},
		{Question: "How many calories does one pound of fat contain?", Options: []string{"2500", "3500", "4500", "5500"}, CorrectAnswer: 1},
		{Question: "What is the ideal heart rate zone for fat burning?", Options: []string{"50-60% max HR", "60-70% max HR", "70-80% max HR", "80-90% max HR"}, CorrectAnswer: 1},
		{Question: "Which macronutrient is most important for muscle building?", Options: []string{"Carbohydrates", "Protein", "Fats", "Fiber"}, CorrectAnswer: 1},
		{Question: "How long should you rest between strength training sets?", Options: []string{"15-30 seconds", "30-60 seconds", "60-90 seconds", "2-3 minutes"}, CorrectAnswer: 2},
		{Question: "What BMI range is considered healthy?", Options: []string{"15-18.5", "18.5-24.9", "25-29.9", "30-35"}, CorrectAnswer: 1},
		{Question: "How many days per week should beginners strength train?", Options: []string{"1-2 days", "2-3 days", "4-5 days", "6-7 days"}, CorrectAnswer: 1},
		{Question: "What is the best time to stretch?", Options: []string{"Before workout", "During workout", "After workout", "Never"}, CorrectAnswer: 2},
		{Question: "How much protein should an active adult consume per kg of body weight?", Options: []string{"0.5-0.8g", "0.8-1.0g", "1.6-2.2g", "3.0-4.0g"}, CorrectAnswer: 2},
		{Question: "What is progressive overload?", Options: []string{"Eating more calories", "Gradually increasing training intensity", "Resting longer", "Doing the same workout"}, CorrectAnswer: 1},
	}
}
