package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/fitquest/fitquest/ai"
	"github.com/fitquest/fitquest/models"
	"github.com/fitquest/fitquest/store"
	"github.com/fitquest/fitquest/utils"
)

// PlanController generates and serves personalized fitness plans.
type PlanController struct {
	store store.Store
	ai    *ai.Client
}

// NewPlanController creates a new controller instance.
func NewPlanController(st store.Store, aiClient *ai.Client) *PlanController {
	return &PlanController{store: st, ai: aiClient}
}

type generatePlanRequest struct {
	UserID             *int    `json:"userId"`
	PlanType           string  `json:"planType"`
	FitnessGoal        string  `json:"fitnessGoal"`
	FitnessLevel       string  `json:"fitnessLevel"`
	Age                int     `json:"age"`
	Weight             float64 `json:"weight"`
	Height             float64 `json:"height"`
	DietaryPreferences string  `json:"dietaryPreferences"`
}

func validPlanType(t string) bool {
	return t == "workout" || t == "diet" || t == "combined"
}

// Generate builds a plan from the submitted profile, persists it and returns
// the generated content. Unlike quizzes there is no canned fallback: an
// unconfigured AI service is a hard failure here.
func (p *PlanController) Generate(ctx *gin.Context) {
	var req generatePlanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40050, "invalid request body")
		return
	}
	if req.UserID == nil || *req.UserID <= 0 {
		utils.Error(ctx, http.StatusBadRequest, 40051, "valid userId is required")
		return
	}
	if !validPlanType(req.PlanType) {
		utils.Error(ctx, http.StatusBadRequest, 40052, "planType must be 'workout', 'diet' or 'combined'")
		return
	}
	if req.FitnessGoal == "" || req.FitnessLevel == "" {
		utils.Error(ctx, http.StatusBadRequest, 40053, "fitnessGoal and fitnessLevel are required")
		return
	}
	if req.Age <= 0 || req.Weight <= 0 || req.Height <= 0 {
		utils.Error(ctx, http.StatusBadRequest, 40054, "age, weight and height must be positive")
		return
	}

	if _, err := p.store.GetUserByID(ctx.Request.Context(), uint(*req.UserID)); err != nil {
		respondStoreError(ctx, err, 50050, "failed to load user")
		return
	}

	content, err := p.ai.GeneratePlan(ctx.Request.Context(), ai.PlanRequest{
		PlanType:           req.PlanType,
		FitnessGoal:        req.FitnessGoal,
		FitnessLevel:       req.FitnessLevel,
		Age:                req.Age,
		Weight:             req.Weight,
		Height:             req.Height,
		DietaryPreferences: req.DietaryPreferences,
	})
	if err != nil {
		if errors.Is(err, ai.ErrNotConfigured) {
			utils.Error(ctx, http.StatusInternalServerError, 50051, "ai service not configured")
			return
		}
		utils.Sugar.Errorf("plan generation failed: %v", err)
		utils.Error(ctx, http.StatusInternalServerError, 50052, "failed to generate plan")
		return
	}

	plan := models.FitnessPlan{
		UserID:             uint(*req.UserID),
		PlanType:           req.PlanType,
		FitnessGoal:        req.FitnessGoal,
		FitnessLevel:       req.FitnessLevel,
		Age:                req.Age,
		Weight:             req.Weight,
		Height:             req.Height,
		DietaryPreferences: req.DietaryPreferences,
		WorkoutContent:     content.Workout,
		DietContent:        content.Diet,
		MotivationContent:  content.Motivation,
	}
	if err := p.store.CreatePlan(ctx.Request.Context(), &plan); err != nil {
		respondStoreError(ctx, err, 50053, "failed to save plan")
		return
	}

	utils.Created(ctx, planPayload(plan))
}

// Get returns a stored plan by id.
func (p *PlanController) Get(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil || id <= 0 {
		utils.Error(ctx, http.StatusBadRequest, 40055, "valid plan id is required")
		return
	}

	plan, err := p.store.GetPlan(ctx.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, store.ErrPlanNotFound) {
			utils.Error(ctx, http.StatusNotFound, 40402, "plan not found")
			return
		}
		respondStoreError(ctx, err, 50054, "failed to load plan")
		return
	}

	utils.Success(ctx, planPayload(plan))
}

// planPayload attaches the stored JSON content documents to the plan record.
func planPayload(plan models.FitnessPlan) gin.H {
	out := gin.H{"plan": plan}
	if plan.WorkoutContent != "" {
		out["workout"] = json.RawMessage(plan.WorkoutContent)
	}
	if plan.DietContent != "" {
		out["diet"] = json.RawMessage(plan.DietContent)
	}
	if plan.MotivationContent != "" {
		out["motivation"] = json.RawMessage(plan.MotivationContent)
	}
	return out
}
