package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func geminiReply(t *testing.T, text string) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		resp := map[string]any{
			"candidates": []any{
				map[string]any{"content": map[string]any{
					"parts": []any{map[string]string{"text": text}},
				}},
			},
		}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}
}

func testClient(srv *httptest.Server) *Client {
	c := NewClient("test-key", "")
	c.baseURL = srv.URL
	return c
}

func TestGenerateQuizWithoutKeyServesCannedSet(t *testing.T) {
	c := NewClient("", "")
	questions := c.GenerateQuiz(context.Background())

	require.Len(t, questions, 10)
	for _, q := range questions {
		assert.NotEmpty(t, q.Question)
		assert.Len(t, q.Options, 4)
	}
}

func TestGenerateQuizParsesResponse(t *testing.T) {
	payload := `{"questions":[{"question":"Q1?","options":["a","b","c","d"],"correctAnswer":2}]}`
	srv := httptest.NewServer(geminiReply(t, "```json\n"+payload+"\n```"))
	defer srv.Close()

	questions := testClient(srv).GenerateQuiz(context.Background())
	require.Len(t, questions, 1)
	assert.Equal(t, "Q1?", questions[0].Question)
	assert.Equal(t, 2, questions[0].CorrectAnswer)
}

func TestGenerateQuizFallsBackOnGarbage(t *testing.T) {
	srv := httptest.NewServer(geminiReply(t, "sorry, I cannot do that"))
	defer srv.Close()

	questions := testClient(srv).GenerateQuiz(context.Background())
	assert.Len(t, questions, 10)
}

func TestGenerateQuizFallsBackOnServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	questions := testClient(srv).GenerateQuiz(context.Background())
	assert.Len(t, questions, 10)
}

func TestMotivationalQuote(t *testing.T) {
	c := NewClient("", "")
	assert.NotEmpty(t, c.MotivationalQuote(context.Background()))

	srv := httptest.NewServer(geminiReply(t, `"No pain, no gain."`))
	defer srv.Close()
	assert.Equal(t, "No pain, no gain.", testClient(srv).MotivationalQuote(context.Background()))
}

func TestGeneratePlanRequiresKey(t *testing.T) {
	c := NewClient("", "")
	_, err := c.GeneratePlan(context.Background(), PlanRequest{PlanType: "workout"})
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestGeneratePlanSections(t *testing.T) {
	srv := httptest.NewServer(geminiReply(t, `{"ok":true}`))
	defer srv.Close()
	c := testClient(srv)

	content, err := c.GeneratePlan(context.Background(), PlanRequest{
		PlanType: "workout", FitnessGoal: "strength", FitnessLevel: "beginner",
		Age: 30, Weight: 70, Height: 175,
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":true}`, content.Workout)
	assert.Empty(t, content.Diet)
	assert.JSONEq(t, `{"ok":true}`, content.Motivation)

	content, err = c.GeneratePlan(context.Background(), PlanRequest{
		PlanType: "combined", FitnessGoal: "strength", FitnessLevel: "beginner",
		Age: 30, Weight: 70, Height: 175,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, content.Workout)
	assert.NotEmpty(t, content.Diet)
}

func TestGeneratePlanWrapsInvalidJSON(t *testing.T) {
	srv := httptest.NewServer(geminiReply(t, "here is your plan: lift heavy"))
	defer srv.Close()

	content, err := testClient(srv).GeneratePlan(context.Background(), PlanRequest{
		PlanType: "diet", FitnessGoal: "cut", FitnessLevel: "advanced",
		Age: 25, Weight: 80, Height: 180,
	})
	require.NoError(t, err)

	var wrapped map[string]string
	require.NoError(t, json.Unmarshal([]byte(content.Diet), &wrapped))
	assert.Contains(t, wrapped["rawText"], "lift heavy")
}

func TestStripCodeFences(t *testing.T) {
	assert.Equal(t, `{"a":1}`, stripCodeFences("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripCodeFences("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripCodeFences(`{"a":1}`))
}
