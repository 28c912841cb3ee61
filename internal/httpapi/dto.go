package httpapi

import (
	"github.com/google/uuid"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// SearchRequest is the body of /search and /search/stream.
type SearchRequest struct {
	Layout      []string `json:"layout" binding:"required,min=1"`
	Algorithm   string   `json:"algorithm"`
	StepDelayMs int      `json:"step_delay_ms" binding:"min=0,max=1000"`
}

// CompareRequest is the body of /compare.
type CompareRequest struct {
	Layout []string `json:"layout" binding:"required,min=1"`
}

// Position is a cell coordinate on the wire.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// SearchResponse is the outcome of one run.
type SearchResponse struct {
	RunID        uuid.UUID  `json:"run_id"`
	Algorithm    string     `json:"algorithm"`
	Found        bool       `json:"found"`
	VisitedCount int        `json:"visited_count"`
	PathLength   int        `json:"path_length"`
	ElapsedMs    float64    `json:"elapsed_ms"`
	Visited      []Position `json:"visited"`
	Path         []Position `json:"path"`
	Board        []string   `json:"board"`
}

// CompareResponse lists one summary per algorithm.
type CompareResponse struct {
	RunID   uuid.UUID        `json:"run_id"`
	Results []SearchResponse `json:"results"`
}

// EventResponse is the payload of a "progress" SSE event.
type EventResponse struct {
	Phase        string   `json:"phase"`
	Cell         Position `json:"cell"`
	VisitedCount int      `json:"visited_count"`
	PathLength   int      `json:"path_length"`
	ElapsedMs    float64  `json:"elapsed_ms"`
}

// SummaryResponse is the payload of the final "done" SSE event.
type SummaryResponse struct {
	RunID        uuid.UUID `json:"run_id"`
	Algorithm    string    `json:"algorithm"`
	Found        bool      `json:"found"`
	VisitedCount int       `json:"visited_count"`
	PathLength   int       `json:"path_length"`
}

func toPositions(ps []grid.Pos) []Position {
	out := make([]Position, len(ps))
	for i, p := range ps {
		out[i] = Position{Row: p.Row, Col: p.Col}
	}
	return out
}

func toSearchResponse(id uuid.UUID, res *search.Result, withCells bool) SearchResponse {
	resp := SearchResponse{
		RunID:        id,
		Algorithm:    res.Algorithm.String(),
		Found:        res.Found,
		VisitedCount: len(res.Visited),
		PathLength:   len(res.Path),
		ElapsedMs:    float64(res.Elapsed.Microseconds()) / 1000,
	}
	if withCells {
		resp.Visited = toPositions(res.Visited)
		resp.Path = toPositions(res.Path)
		resp.Board = res.Grid.Lines()
	}
	return resp
}

func toEventResponse(ev search.Event) EventResponse {
	return EventResponse{
		Phase:        ev.Phase.String(),
		Cell:         Position{Row: ev.Cell.Row, Col: ev.Cell.Col},
		VisitedCount: ev.Stats.VisitedCount,
		PathLength:   ev.Stats.PathLength,
		ElapsedMs:    float64(ev.Stats.Elapsed.Microseconds()) / 1000,
	}
}
