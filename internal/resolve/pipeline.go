package resolve

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nbxorg/sdc-booter/internal/assemble"
	"github.com/nbxorg/sdc-booter/internal/directory"
	"github.com/nbxorg/sdc-booter/internal/logging"
	"github.com/nbxorg/sdc-booter/internal/model"
)

// RunContext carries the accumulating state of one pipeline run. Each stage
// reads what earlier stages wrote and fills in only its own fields.
type RunContext struct {
	Identifier string

	Host     model.Host
	Nics     []model.Nic
	AdminNic *model.Nic
	Document *model.BootConfig
}

// Stage is one fallible step of the pipeline.
type Stage struct {
	Name string
	Run  func(ctx context.Context, rc *RunContext) error
}

// StageResult reports the outcome of a single stage for status display.
type StageResult struct {
	Name string
	Err  error
}

// Pipeline runs host resolution, enrichment, admin interface resolution and
// document assembly as an ordered sequence, stopping at the first failure.
// Stages never run concurrently and no partial document survives a failure.
type Pipeline struct {
	resolver  *Resolver
	assembler *assemble.Assembler
	log       *slog.Logger

	// OnStage, when set, is invoked with each stage's result as soon as the
	// stage finishes, so callers can show live progress.
	OnStage func(StageResult)
}

func NewPipeline(resolver *Resolver, assembler *assemble.Assembler, log *slog.Logger) *Pipeline {
	if log == nil {
		log = logging.Discard()
	}
	return &Pipeline{resolver: resolver, assembler: assembler, log: log}
}

func (p *Pipeline) stages() []Stage {
	return []Stage{
		{Name: "resolve host", Run: p.resolveHost},
		{Name: "enrich host", Run: p.enrichHost},
		{Name: "resolve admin interface", Run: p.resolveAdminNic},
		{Name: "assemble document", Run: p.assembleDocument},
	}
}

// Run executes the pipeline for the given host identifier (empty means the
// local host). The per-stage results are returned alongside the document so
// callers can display progress; on failure the document is nil and the last
// result carries the error.
func (p *Pipeline) Run(ctx context.Context, identifier string) (*model.BootConfig, []StageResult, error) {
	rc := &RunContext{Identifier: identifier}

	var results []StageResult
	for _, st := range p.stages() {
		p.log.Debug("stage starting", "stage", st.Name)
		if err := st.Run(ctx, rc); err != nil {
			err = fmt.Errorf("%s: %w", st.Name, err)
			results = p.record(results, StageResult{Name: st.Name, Err: err})
			return nil, results, err
		}
		results = p.record(results, StageResult{Name: st.Name})
	}

	return rc.Document, results, nil
}

func (p *Pipeline) record(results []StageResult, r StageResult) []StageResult {
	if p.OnStage != nil {
		p.OnStage(r)
	}
	return append(results, r)
}

func (p *Pipeline) resolveHost(ctx context.Context, rc *RunContext) error {
	host, err := p.resolver.Resolve(ctx, rc.Identifier)
	if err != nil {
		return err
	}
	rc.Host = host
	return nil
}

// enrichHost attaches the host's aggregation inventory as supplementary
// metadata. The admin resolver queries aggregations on its own behalf; this
// copy exists so the assembler can reference trunk membership.
func (p *Pipeline) enrichHost(ctx context.Context, rc *RunContext) error {
	aggrs, err := p.resolver.Directory.ListAggregations(ctx,
		directory.AggregationFilter{BelongsTo: rc.Host.UUID})
	if err != nil {
		return err
	}
	rc.Host.Aggregations = aggrs
	return nil
}

func (p *Pipeline) resolveAdminNic(ctx context.Context, rc *RunContext) error {
	nics, admin, err := p.resolver.ResolveAdminNic(ctx, rc.Host.UUID)
	if err != nil {
		return err
	}
	rc.Nics = nics
	rc.AdminNic = admin
	return nil
}

func (p *Pipeline) assembleDocument(ctx context.Context, rc *RunContext) error {
	doc, err := p.assembler.Assemble(rc.Host, rc.Nics, rc.AdminNic)
	if err != nil {
		return err
	}
	rc.Document = doc
	return nil
}
