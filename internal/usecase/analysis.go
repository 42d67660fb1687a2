package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"FxPulse/internal/domain/market"
	"FxPulse/internal/domain/models"
	domrepo "FxPulse/internal/domain/repository"
	domsvc "FxPulse/internal/domain/service"
	"FxPulse/internal/service/sheet"
	"FxPulse/internal/services/signals"
	applogger "FxPulse/pkg/logger"
)

// AnalysisUseCase runs the signal pipeline for one batch at a time.
type AnalysisUseCase struct {
	engine    *signals.Engine
	parser    *sheet.Parser
	source    domsvc.SnapshotSource
	reviewer  domsvc.Corroborator // nil when corroboration is disabled
	publisher domrepo.ResultPublisher
	metrics   domrepo.Metrics
	log       *applogger.Logger
	timeout   time.Duration

	running atomic.Bool
	now     func() time.Time
	newID   func() string
}

func NewAnalysisUseCase(
	engine *signals.Engine,
	parser *sheet.Parser,
	source domsvc.SnapshotSource,
	reviewer domsvc.Corroborator,
	publisher domrepo.ResultPublisher,
	metrics domrepo.Metrics,
	log *applogger.Logger,
	timeout time.Duration,
) *AnalysisUseCase {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &AnalysisUseCase{
		engine:    engine,
		parser:    parser,
		source:    source,
		reviewer:  reviewer,
		publisher: publisher,
		metrics:   metrics,
		log:       log,
		timeout:   timeout,
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

// AnalyzeParams is one batch to analyze.
type AnalyzeParams struct {
	Snapshots   []models.PairSnapshot
	Diagnostics *models.Diagnostics
	Corroborate bool
}

// Analyze runs every stage over the batch and, when asked, has the result
// corroborated. Only one analysis runs at a time; a concurrent call fails
// with ErrRunInProgress.
func (uc *AnalysisUseCase) Analyze(ctx context.Context, p AnalyzeParams) (*models.AnalysisResult, error) {
	if !uc.running.CompareAndSwap(false, true) {
		uc.metrics.RecordRun("rejected")
		return nil, models.ErrRunInProgress
	}
	defer uc.running.Store(false)

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	res, err := uc.analyze(ctx, p)
	uc.metrics.RecordRun(outcomeOf(err))
	if err != nil {
		return nil, err
	}

	start := time.Now()
	if err := uc.publisher.Publish(ctx, res); err != nil {
		uc.metrics.RecordPublishFailure()
		uc.log.Error("publish analysis result failed", applogger.String("run_id", res.RunID), applogger.Error(err))
	}
	uc.metrics.RecordStage("publish", time.Since(start))
	return res, nil
}

func (uc *AnalysisUseCase) analyze(ctx context.Context, p AnalyzeParams) (*models.AnalysisResult, error) {
	if err := uc.engine.Guard(p.Snapshots); err != nil {
		return nil, fmt.Errorf("no valid major pair with a price: %w", err)
	}

	start := time.Now()
	out, err := uc.engine.Run(p.Snapshots)
	uc.metrics.RecordStage("engine", time.Since(start))
	if err != nil {
		return nil, fmt.Errorf("run engine: %w", err)
	}

	res := &models.AnalysisResult{
		RunID:                   uc.newID(),
		RawMarketData:           out.Snapshots,
		AnalysisTimestamp:       uc.now().UTC(),
		RankedPairs:             out.Ranked,
		HotPair:                 out.HotPair,
		RunnerUpPair:            out.RunnerUp,
		FocusCurrency:           string(out.FocusCurrency),
		FocusCurrencyStrength:   out.FocusSentiment,
		CurrencyStrengthRanking: signals.PresentedStrength(out.Strength),
		ActivityMatrix:          out.Activity,
		USDDashboardData:        out.USDDashboard,
		EURUSDIndex:             out.EURUSDIndex,
		EURUSDDerivedTrades:     out.EURUSDTrades,
		Ticker:                  out.Ticker,
		Diagnostics:             p.Diagnostics,
	}
	uc.metrics.RecordHotPair(res.HotPair.Pair, res.HotPair.Deviation)

	if p.Corroborate && uc.reviewer != nil {
		if err := uc.corroborate(ctx, res); err != nil {
			return nil, err
		}
	}

	uc.log.Info("analysis complete",
		applogger.String("run_id", res.RunID),
		applogger.String("hot_pair", res.HotPair.Pair),
		applogger.Float64("deviation", res.HotPair.Deviation),
		applogger.String("quality", string(res.HotPair.SetupQuality)),
		applogger.Int("pairs", len(res.RawMarketData)),
	)
	return res, nil
}

// corroborate overlays the reviewer's focus currency and reasoning. The
// numeric results are final before the call is made.
func (uc *AnalysisUseCase) corroborate(ctx context.Context, res *models.AnalysisResult) error {
	start := time.Now()
	c, err := uc.reviewer.Corroborate(ctx, models.CorroborationRequest{
		Snapshots:     res.RawMarketData,
		HotPair:       res.HotPair.Pair,
		EffectiveBias: res.HotPair.EffectiveBias,
		SetupQuality:  res.HotPair.SetupQuality,
	})
	uc.metrics.RecordStage("corroboration", time.Since(start))
	if err != nil {
		if errors.Is(err, models.ErrParse) {
			// Malformed replies surface as ErrUpstream so they are not reported as bad input.
			return fmt.Errorf("corroborate: %w: %w", models.ErrUpstream, err)
		}
		return fmt.Errorf("corroborate: %w", err)
	}

	if c.HotPair != "" && c.HotPair != res.HotPair.Pair {
		uc.log.Warn("corroboration picked a different hot pair",
			applogger.String("local", res.HotPair.Pair),
			applogger.String("remote", c.HotPair))
	}
	if c.FocusCurrency != "" {
		res.FocusCurrency = c.FocusCurrency
	}
	if c.FocusCurrencyStrength != "" {
		res.FocusCurrencyStrength = c.FocusCurrencyStrength
	}
	res.AIReasoning = c.Reasoning
	return nil
}

// AnalyzeInputs analyzes manually entered rows.
func (uc *AnalysisUseCase) AnalyzeInputs(ctx context.Context, req *models.AnalyzeRequest) (*models.AnalysisResult, error) {
	snaps, diag := uc.fromInputs(req.Pairs)
	return uc.Analyze(ctx, AnalyzeParams{Snapshots: snaps, Diagnostics: diag, Corroborate: req.WantsCorroboration()})
}

// AnalyzeCSV parses a sheet export and analyzes the matched rows.
func (uc *AnalysisUseCase) AnalyzeCSV(ctx context.Context, data []byte, corroborate bool) (*models.AnalysisResult, error) {
	snaps, diag, err := uc.parser.Parse(data)
	if err != nil {
		uc.metrics.RecordRun(outcomeOf(err))
		return nil, err
	}
	return uc.Analyze(ctx, AnalyzeParams{Snapshots: snaps, Diagnostics: diag, Corroborate: corroborate})
}

// AnalyzeLive fetches the configured sheet and analyzes it.
func (uc *AnalysisUseCase) AnalyzeLive(ctx context.Context, corroborate bool) (*models.AnalysisResult, error) {
	start := time.Now()
	data, err := uc.source.Fetch(ctx)
	uc.metrics.RecordStage("fetch", time.Since(start))
	if err != nil {
		uc.metrics.RecordRun(outcomeOf(err))
		return nil, err
	}
	return uc.AnalyzeCSV(ctx, data, corroborate)
}

// Rates prices the 28-pair universe from the given rows without running the
// rest of the pipeline.
func (uc *AnalysisUseCase) Rates(req *models.AnalyzeRequest) ([]models.CrossRate, error) {
	snaps, _ := uc.fromInputs(req.Pairs)
	if err := uc.engine.Guard(snaps); err != nil {
		return nil, err
	}
	return uc.engine.Ticker(uc.engine.Filter(snaps)), nil
}

func (uc *AnalysisUseCase) Universe() models.UniverseView {
	u := uc.engine.Universe()
	return models.UniverseView{
		Currencies: currencyCodes(u.Currencies),
		Priority:   currencyCodes(u.Priority),
		MajorPairs: append([]string(nil), u.MajorPairs...),
		ValidPairs: append([]string(nil), u.ValidPairs...),
	}
}

// fromInputs normalizes symbols and keeps major pairs. A repeated pair keeps
// its first position and takes the values of its last row.
func (uc *AnalysisUseCase) fromInputs(rows []models.PairInput) ([]models.PairSnapshot, *models.Diagnostics) {
	u := uc.engine.Universe()
	diag := &models.Diagnostics{MatchedInstruments: []string{}, UnmatchedEntries: []string{}}
	index := make(map[string]int, len(rows))
	out := make([]models.PairSnapshot, 0, len(rows))
	for _, r := range rows {
		symbol := market.NormalizeSymbol(r.Symbol)
		if !u.IsMajor(symbol) {
			diag.UnmatchedEntries = append(diag.UnmatchedEntries, r.Symbol)
			continue
		}
		if i, ok := index[symbol]; ok {
			out[i] = r.Snapshot(symbol)
			continue
		}
		index[symbol] = len(out)
		out = append(out, r.Snapshot(symbol))
		diag.MatchedInstruments = append(diag.MatchedInstruments, symbol)
	}
	return out, diag
}

func currencyCodes(cs []market.Currency) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = string(c)
	}
	return out
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, models.ErrCredentialMissing):
		return "credential_missing"
	case errors.Is(err, models.ErrUpstream):
		return "upstream_error"
	case errors.Is(err, models.ErrNoData):
		return "no_data"
	case errors.Is(err, models.ErrParse):
		return "parse_error"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	default:
		return "error"
	}
}
