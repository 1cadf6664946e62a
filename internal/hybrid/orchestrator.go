// Package hybrid coordinates heuristic extraction with optional LLM
// escalation. The heuristic result is the baseline: an LLM answer
// replaces it only on a fully successful, well-shaped response, and an
// escalation failure never loses the heuristic record.
package hybrid

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"github.com/mpopescu/gazex/internal/cache"
	"github.com/mpopescu/gazex/internal/fields"
	"github.com/mpopescu/gazex/internal/llm"
	"github.com/mpopescu/gazex/internal/model"
	"github.com/mpopescu/gazex/internal/worker"
)

// gazetteSource marks records recovered from Part IV bulletin segments.
const gazetteSource = "Official Gazette - MoF IV"

// Processing states for one entry.
const (
	StatePending       = "PENDING"
	StateHeuristicDone = "HEURISTIC_DONE"
	StateLLMEscalated  = "LLM_ESCALATED"
	StateFinal         = "FINAL"
)

// Outcome is the result of processing one entry.
type Outcome struct {
	Record    model.CompanyRecord
	State     string
	Escalated bool // the escalation predicate fired
	LLMUsed   bool // an LLM answer actually replaced the heuristic record
	CacheHit  bool
	Err       error // escalation failure; Record still holds the heuristic result
}

// Orchestrator runs the hybrid extraction flow.
type Orchestrator struct {
	cfg      *model.Config
	provider llm.Provider
	cache    cache.Cache
	limiter  *worker.Limiter
	log      *zap.Logger
}

// New creates an orchestrator. A nil provider disables escalation, so
// every entry finishes on its heuristic record.
func New(cfg *model.Config, provider llm.Provider, c cache.Cache, log *zap.Logger) *Orchestrator {
	if cfg == nil {
		cfg = model.DefaultConfig()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Orchestrator{
		cfg:      cfg,
		provider: provider,
		cache:    c,
		limiter:  worker.NewLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.BurstSize),
		log:      log,
	}
}

// Process runs one entry through the hybrid flow.
func (o *Orchestrator) Process(ctx context.Context, entry model.Entry) Outcome {
	out := Outcome{State: StatePending}

	rec := fields.ExtractCompany(entry.RawText, gazetteSource)
	out.State = StateHeuristicDone

	if o.needsEscalation(rec) {
		out.Escalated = true
		if o.provider != nil {
			out.State = StateLLMEscalated
			if llmRec, hit, err := o.escalate(ctx, entry.RawText, rec.ID); err != nil {
				out.Err = err
				o.log.Warn("escalation failed, keeping heuristic record",
					zap.String("company", entry.CompanyName),
					zap.Error(err))
			} else {
				rec = *llmRec
				out.LLMUsed = true
				out.CacheHit = hit
			}
		}
	}

	mergeEntryMeta(&rec, entry)
	out.Record = rec
	out.State = StateFinal
	return out
}

// escalate calls the provider (through cache and rate limiter) and
// normalizes the returned record. heuristicID keeps record identity
// stable when the LLM answer replaces the heuristic one.
func (o *Orchestrator) escalate(ctx context.Context, text, heuristicID string) (*model.CompanyRecord, bool, error) {
	key := cache.Key(o.provider.Name(), o.cfg.LLM.Model, text)
	if rec, found := cache.GetRecord(o.cache, key); found {
		return rec, true, nil
	}

	if err := o.limiter.Wait(ctx, o.provider.Name()); err != nil {
		return nil, false, err
	}

	resp, err := o.provider.Extract(ctx, llm.ExtractRequest{Text: text})
	if err != nil {
		return nil, false, err
	}

	rec := resp.Record
	rec.MainInfo.CUI = fields.NormalizeCUI(rec.MainInfo.CUI)
	if rec.ID == "" {
		rec.ID = heuristicID
	}
	if rec.Type == "" {
		rec.Type = "company"
	}
	if rec.MainInfo.Country == "" {
		rec.MainInfo.Country = "Romania"
	}
	if len(rec.MainInfo.DataSource) == 0 {
		rec.MainInfo.DataSource = []string{gazetteSource}
	}

	if err := cache.SetRecord(o.cache, key, rec, o.cfg.Cache.TTL); err != nil {
		o.log.Warn("cache store failed", zap.Error(err))
	}
	return rec, false, nil
}

// needsEscalation is the configurable predicate: force, or any required
// field absent from the heuristic record.
func (o *Orchestrator) needsEscalation(rec model.CompanyRecord) bool {
	esc := o.cfg.Escalation
	if esc.Force {
		return true
	}
	for _, field := range esc.RequiredFields {
		switch field {
		case "name":
			if rec.Name == "" {
				return true
			}
		case "cui":
			if rec.MainInfo.CUI == "" {
				return true
			}
		case "reg_number":
			if rec.MainInfo.RegistrationNumber == "" {
				return true
			}
		case "address":
			if len(rec.MainInfo.Addresses) == 0 {
				return true
			}
		case "caen":
			if rec.MainInfo.CAEN == "" {
				return true
			}
		case "capital":
			if rec.MainInfo.Capital == "" {
				return true
			}
		}
	}
	return false
}

type extractJob struct {
	o     *Orchestrator
	ctx   context.Context
	index int
	entry model.Entry
}

type extractResult struct {
	index   int
	outcome Outcome
}

func (r *extractResult) GetError() error { return r.outcome.Err }

func (j *extractJob) Execute(context.Context) worker.Result {
	return &extractResult{index: j.index, outcome: j.o.Process(j.ctx, j.entry)}
}

// ProcessAll runs entries through a bounded worker pool and returns
// outcomes in input order.
func (o *Orchestrator) ProcessAll(ctx context.Context, entries []model.Entry) []Outcome {
	if len(entries) == 0 {
		return nil
	}

	pool := worker.NewPool(o.cfg.Concurrency.Workers)
	pool.Start()

	for i, entry := range entries {
		pool.Submit(&extractJob{o: o, ctx: ctx, index: i, entry: entry})
	}

	results := pool.Wait()
	sort.Slice(results, func(a, b int) bool {
		return results[a].(*extractResult).index < results[b].(*extractResult).index
	})

	outcomes := make([]Outcome, 0, len(results))
	for _, r := range results {
		outcomes = append(outcomes, r.(*extractResult).outcome)
	}
	return outcomes
}
