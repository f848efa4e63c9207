package mcp

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// New creates an MCP server with all tools and resources registered.
func New(ds DataSource, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("Paceline", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("Paceline marathon training plan generator. Generate availability-aware weekly training schedules from athlete intake, preview plans without storing them, and inspect stored plans."),
	)

	h := &handlers{ds: ds, log: log}

	// Tools
	s.AddTools(
		server.ServerTool{Tool: toolGeneratePlan, Handler: h.generatePlan},
		server.ServerTool{Tool: toolPreviewPlan, Handler: h.previewPlan},
		server.ServerTool{Tool: toolGetPlan, Handler: h.getPlan},
		server.ServerTool{Tool: toolGetPlanWeek, Handler: h.getPlanWeek},
		server.ServerTool{Tool: toolListPlans, Handler: h.listPlans},
		server.ServerTool{Tool: toolGetZones, Handler: h.getZones},
	)

	// Resources
	s.AddResources(
		server.ServerResource{Resource: resRecentPlans, Handler: h.recentPlans},
		server.ServerResource{Resource: resLatestPlan, Handler: h.latestPlan},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	ds  DataSource
	log *slog.Logger
}

// --- Resource definitions ---

var resRecentPlans = mcp.NewResource(
	"paceline://recent_plans",
	"Recent Plans",
	mcp.WithResourceDescription("Summaries of the most recently generated training plans"),
	mcp.WithMIMEType("application/json"),
)

var resLatestPlan = mcp.NewResource(
	"paceline://latest_plan",
	"Latest Plan",
	mcp.WithResourceDescription("The full document of the most recently generated training plan"),
	mcp.WithMIMEType("application/json"),
)

// --- Resource handlers ---

func (h *handlers) recentPlans(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	summaries, err := h.ds.ListPlans(ctx, 10)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(summaries)
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

func (h *handlers) latestPlan(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	summaries, err := h.ds.ListPlans(ctx, 1)
	if err != nil {
		return nil, err
	}
	if len(summaries) == 0 {
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      req.Params.URI,
				MIMEType: "application/json",
				Text:     `{"error":"no plans generated yet"}`,
			},
		}, nil
	}

	doc, err := h.ds.GetPlan(ctx, summaries[0].PlanID)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
