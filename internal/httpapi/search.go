package httpapi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// errTooLarge reports a board above the configured cell limit.
var errTooLarge = errors.New("board exceeds the cell limit")

// SearchController serves the search, stream, compare and algorithms routes.
type SearchController struct {
	maxCells         int
	defaultAlgorithm search.Algorithm
	logger           *slog.Logger
	newID            func() uuid.UUID
}

// SearchConfig configures a SearchController.
type SearchConfig struct {
	MaxCells         int              // largest board accepted; <= 0 means no limit
	DefaultAlgorithm search.Algorithm // used when a request names none
	Logger           *slog.Logger
}

// NewSearchController initializes a SearchController.
func NewSearchController(cfg SearchConfig) *SearchController {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &SearchController{
		maxCells:         cfg.MaxCells,
		defaultAlgorithm: cfg.DefaultAlgorithm,
		logger:           logger,
		newID:            uuid.New,
	}
}

// RegisterPublic registers public routes.
func (sc *SearchController) RegisterPublic(route *gin.RouterGroup) {
	route.GET("/algorithms", sc.algorithms)
	route.POST("/compare", sc.compare)
	searchRoutes := route.Group("/search")
	{
		searchRoutes.POST("", sc.search)
		searchRoutes.POST("/stream", sc.stream)
	}
}

// algorithms lists the supported labels.
func (sc *SearchController) algorithms(ctx *gin.Context) {
	names := make([]string, 0, len(search.Algorithms()))
	for _, a := range search.Algorithms() {
		names = append(names, a.String())
	}
	ctx.JSON(http.StatusOK, gin.H{"algorithms": names, "default": sc.defaultAlgorithm.String()})
}

// search runs one algorithm and returns the full result.
func (sc *SearchController) search(ctx *gin.Context) {
	var request SearchRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	g, algo, ok := sc.prepare(ctx, request.Layout, request.Algorithm)
	if !ok {
		return
	}

	id := sc.newID()
	res, err := search.Run(g, algo,
		search.WithStepDelay(time.Duration(request.StepDelayMs)*time.Millisecond),
		search.WithSleep(contextSleep(ctx.Request.Context())),
	)
	if err != nil {
		sc.fail(ctx, err)
		return
	}

	sc.logger.Info("Search finished.", "run_id", id, "algorithm", algo, "found", res.Found,
		"visited", len(res.Visited), "path", len(res.Path), "elapsed", res.Elapsed)
	ctx.JSON(http.StatusOK, toSearchResponse(id, res, true))
}

// stream runs one algorithm and sends every event as it happens. A
// "progress" event carries each step and a final "done" event the summary.
// The run stops when the client goes away.
func (sc *SearchController) stream(ctx *gin.Context) {
	var request SearchRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	g, algo, ok := sc.prepare(ctx, request.Layout, request.Algorithm)
	if !ok {
		return
	}

	reqCtx := ctx.Request.Context()
	events, err := search.Trace(g, algo,
		search.WithStepDelay(time.Duration(request.StepDelayMs)*time.Millisecond),
		search.WithSleep(contextSleep(reqCtx)),
	)
	if err != nil {
		sc.fail(ctx, err)
		return
	}

	id := sc.newID()
	summary := SummaryResponse{RunID: id, Algorithm: algo.String()}
	ctx.Header("Cache-Control", "no-cache")
	ctx.Header("X-Run-ID", id.String())
	for ev := range events {
		if reqCtx.Err() != nil {
			sc.logger.Debug("Stream client went away.", "run_id", id)
			return
		}
		switch ev.Phase {
		case search.PhaseSearch:
			summary.VisitedCount = ev.Stats.VisitedCount
		case search.PhasePath:
			summary.Found = true
			summary.PathLength = ev.Stats.PathLength
		}
		ctx.SSEvent("progress", toEventResponse(ev))
		ctx.Writer.Flush()
	}
	ctx.SSEvent("done", summary)
	ctx.Writer.Flush()

	sc.logger.Info("Stream finished.", "run_id", id, "algorithm", algo, "found", summary.Found,
		"visited", summary.VisitedCount, "path", summary.PathLength)
}

// compare runs every algorithm on the same board.
func (sc *SearchController) compare(ctx *gin.Context) {
	var request CompareRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	g, ok := sc.board(ctx, request.Layout)
	if !ok {
		return
	}

	results, err := search.Compare(g)
	if err != nil {
		sc.fail(ctx, err)
		return
	}

	id := sc.newID()
	resp := CompareResponse{RunID: id, Results: make([]SearchResponse, 0, len(results))}
	for _, res := range results {
		resp.Results = append(resp.Results, toSearchResponse(id, res, false))
	}
	sc.logger.Info("Compare finished.", "run_id", id, "algorithms", len(results))
	ctx.JSON(http.StatusOK, resp)
}

// prepare parses the board and the algorithm label, answering 400 on failure.
func (sc *SearchController) prepare(ctx *gin.Context, layout []string, label string) (*grid.Grid, search.Algorithm, bool) {
	g, ok := sc.board(ctx, layout)
	if !ok {
		return nil, 0, false
	}
	algo := sc.defaultAlgorithm
	if label != "" {
		var err error
		if algo, err = search.ParseAlgorithm(label); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return nil, 0, false
		}
	}
	return g, algo, true
}

func (sc *SearchController) board(ctx *gin.Context, layout []string) (*grid.Grid, bool) {
	if cells := len(layout) * len(layout[0]); sc.maxCells > 0 && cells > sc.maxCells {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("%v: %d > %d", errTooLarge, cells, sc.maxCells)})
		return nil, false
	}
	g, err := grid.Parse(layout)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	return g, true
}

// fail maps engine errors to status codes.
func (sc *SearchController) fail(ctx *gin.Context, err error) {
	status := http.StatusBadRequest
	if errors.Is(err, search.ErrMissingEndpoint) {
		status = http.StatusUnprocessableEntity
	}
	ctx.JSON(status, gin.H{"error": err.Error()})
}

// contextSleep pauses for d or until ctx is done, whichever comes first.
func contextSleep(ctx context.Context) func(time.Duration) {
	return func(d time.Duration) {
		t := time.NewTimer(d)
		defer t.Stop()
		select {
		case <-ctx.Done():
		case <-t.C:
		}
	}
}
