package utils

import (
	"context"
	"encoding/json"
	"fmt"

	"momentum/backend/config"

	openai "github.com/sashabaranov/go-openai"
)

// Groq exposes an OpenAI-compatible API, so the standard client works with a
// swapped base URL.
const (
	groqBaseURL = "https://api.groq.com/openai/v1"
	planModel   = "openai/gpt-oss-120b"
)

type PlanExercise struct {
	Name         string `json:"name"`
	Sets         int    `json:"sets"`
	Reps         int    `json:"reps"`
	RestSeconds  int    `json:"restSeconds"`
	Instructions string `json:"instructions"`
}

type PlanLevel struct {
	LevelNumber int            `json:"levelNumber"`
	Difficulty  string         `json:"difficulty"`
	Exercises   []PlanExercise `json:"exercises"`
}

// WorkoutPlanData is the JSON contract the model is asked to produce and the
// shape stored in workout_plans.plan_data.
type WorkoutPlanData struct {
	Goal         string      `json:"goal"`
	FitnessLevel string      `json:"fitnessLevel"`
	Frequency    int         `json:"frequency"`
	Levels       []PlanLevel `json:"levels"`
}

const planSystemPrompt = `You are a certified fitness coach. You design bodyweight workout plans as strict JSON.
Rules:
- Create exactly 5 progressive levels (Level 1 through Level 5).
- Each level MUST use the SAME 5 exercises; do not change exercises between levels.
- Progression between levels MUST come from increasing sets, reps, or shorter rest.
- Every exercise needs name, sets, reps, restSeconds and short instructions.
- Respond with a single JSON object: {"levels": [{"levelNumber": 1, "difficulty": "...", "exercises": [...]}, ...]}.
- Provide exactly 5 levels, each with exactly 5 exercises. No prose outside the JSON.`

// GenerateWorkoutPlan asks the model for a 5-level plan matching the user's
// goal, level and weekly frequency.
func GenerateWorkoutPlan(ctx context.Context, cfg *config.Config, goal, fitnessLevel string, frequency int) (*WorkoutPlanData, error) {
	clientCfg := openai.DefaultConfig(cfg.GroqAPIKey)
	clientCfg.BaseURL = groqBaseURL
	client := openai.NewClientWithConfig(clientCfg)

	userPrompt := fmt.Sprintf(
		"Create a workout plan for goal: %s, fitness level: %s, training %d days per week.",
		goal, fitnessLevel, frequency,
	)

	resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: planModel,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: planSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("generate workout plan: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("generate workout plan: empty completion")
	}

	var plan WorkoutPlanData
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &plan); err != nil {
		return nil, fmt.Errorf("parse workout plan: %w", err)
	}
	if err := validatePlan(&plan); err != nil {
		return nil, err
	}

	plan.Goal = goal
	plan.FitnessLevel = fitnessLevel
	plan.Frequency = frequency
	return &plan, nil
}

func validatePlan(plan *WorkoutPlanData) error {
	if len(plan.Levels) != 5 {
		return fmt.Errorf("invalid workout plan: expected 5 levels, got %d", len(plan.Levels))
	}
	for _, level := range plan.Levels {
		if len(level.Exercises) != 5 {
			return fmt.Errorf("invalid workout plan: level %d has %d exercises, expected 5", level.LevelNumber, len(level.Exercises))
		}
	}
	return nil
}
