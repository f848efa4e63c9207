package mcp

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/claude/paceline/internal/calc"
	"github.com/claude/paceline/internal/models"
	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
)

// decodeIntake parses the intake JSON a tool call carries.
func decodeIntake(raw string) (*models.Intake, error) {
	var intake models.Intake
	if err := json.Unmarshal([]byte(raw), &intake); err != nil {
		return nil, err
	}
	return &intake, nil
}

// --- Tool definitions ---

var toolGeneratePlan = mcp.NewTool("generate_plan",
	mcp.WithDescription("Generate and store a marathon training plan from athlete intake. The intake carries goal race date, availability by weekday, strength preferences, a recent race result, and blocked date ranges. Returns the full plan document plus any intake warnings."),
	mcp.WithString("intake", mcp.Required(), mcp.Description("Athlete intake as a JSON object (email, raceDate, currentWeeklyMileage, availability, strengthPreferences, recentRace, heartRate, bodyComposition, blockedDates)")),
)

var toolPreviewPlan = mcp.NewTool("preview_plan",
	mcp.WithDescription("Generate a training plan from athlete intake without storing it. Same input and output as generate_plan."),
	mcp.WithString("intake", mcp.Required(), mcp.Description("Athlete intake as a JSON object")),
)

var toolGetPlan = mcp.NewTool("get_plan",
	mcp.WithDescription("Fetch a stored training plan document by its ID."),
	mcp.WithString("id", mcp.Required(), mcp.Description("Plan UUID")),
)

var toolGetPlanWeek = mcp.NewTool("get_plan_week",
	mcp.WithDescription("Fetch a single week from a stored plan: the realized day-by-day schedule with runs, strength sessions, adjustments, and nutrition targets."),
	mcp.WithString("id", mcp.Required(), mcp.Description("Plan UUID")),
	mcp.WithString("week", mcp.Required(), mcp.Description("Week number, 1-based")),
)

var toolListPlans = mcp.NewTool("list_plans",
	mcp.WithDescription("List stored plans newest first: ID, athlete email, goal, race date, and week count."),
	mcp.WithString("limit", mcp.Description("Maximum number of plans to return. Defaults to 20.")),
)

var toolGetZones = mcp.NewTool("get_zones",
	mcp.WithDescription("Compute training pace zones (from a recent race result via Riegel scaling) and Karvonen heart-rate zones for an athlete, without generating a plan."),
	mcp.WithString("intake", mcp.Required(), mcp.Description("Athlete intake as a JSON object; only recentRace, heartRate, and bodyComposition.age are used")),
)

// --- Tool handlers ---

func (h *handlers) generatePlan(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := req.RequireString("intake")
	if err != nil {
		return mcp.NewToolResultError("intake parameter is required"), nil
	}
	intake, err := decodeIntake(raw)
	if err != nil {
		return mcp.NewToolResultError("invalid intake JSON: " + err.Error()), nil
	}

	doc, warnings, err := h.ds.CreatePlan(ctx, intake)
	if err != nil {
		h.log.Error("mcp generate_plan", "error", err)
		return mcp.NewToolResultError("generation failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(map[string]any{
		"plan":     doc,
		"warnings": warnings,
	})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) previewPlan(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := req.RequireString("intake")
	if err != nil {
		return mcp.NewToolResultError("intake parameter is required"), nil
	}
	intake, err := decodeIntake(raw)
	if err != nil {
		return mcp.NewToolResultError("invalid intake JSON: " + err.Error()), nil
	}

	doc, warnings, err := h.ds.PreviewPlan(ctx, intake)
	if err != nil {
		h.log.Error("mcp preview_plan", "error", err)
		return mcp.NewToolResultError("generation failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(map[string]any{
		"plan":     doc,
		"warnings": warnings,
	})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getPlan(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	idStr, err := req.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError("id parameter is required"), nil
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return mcp.NewToolResultError("invalid plan ID: " + err.Error()), nil
	}

	doc, err := h.ds.GetPlan(ctx, id)
	if err != nil {
		h.log.Error("mcp get_plan", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(doc)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getPlanWeek(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	idStr, err := req.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError("id parameter is required"), nil
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return mcp.NewToolResultError("invalid plan ID: " + err.Error()), nil
	}
	weekStr, err := req.RequireString("week")
	if err != nil {
		return mcp.NewToolResultError("week parameter is required"), nil
	}
	week, err := strconv.Atoi(weekStr)
	if err != nil || week < 1 {
		return mcp.NewToolResultError("week must be a positive integer"), nil
	}

	doc, err := h.ds.GetPlan(ctx, id)
	if err != nil {
		h.log.Error("mcp get_plan_week", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}
	if week > len(doc.Weeks) {
		return mcp.NewToolResultError("plan has only " + strconv.Itoa(len(doc.Weeks)) + " weeks"), nil
	}

	result, err := mcp.NewToolResultJSON(doc.Weeks[week-1])
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) listPlans(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	limit := 20
	if v := req.GetString("limit", ""); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return mcp.NewToolResultError("limit must be a positive integer"), nil
		}
		limit = n
	}

	summaries, err := h.ds.ListPlans(ctx, limit)
	if err != nil {
		h.log.Error("mcp list_plans", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(summaries)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getZones(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := req.RequireString("intake")
	if err != nil {
		return mcp.NewToolResultError("intake parameter is required"), nil
	}
	intake, err := decodeIntake(raw)
	if err != nil {
		return mcp.NewToolResultError("invalid intake JSON: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(map[string]any{
		"paceZones": calc.PaceZones(intake.RecentRace),
		"hrZones":   calc.HRZones(intake.HeartRate, intake.BodyComposition.Age),
	})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}
