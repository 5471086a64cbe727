// Package auctionpress converts the auction workbook into a self-contained
// catalogue document and publishes it to the remote content host.
package auctionpress

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/r21league/auctionpress/pkg/auctionpress/config"
	"github.com/r21league/auctionpress/pkg/auctionpress/ingest"
	"github.com/r21league/auctionpress/pkg/auctionpress/models"
	"github.com/r21league/auctionpress/pkg/auctionpress/publish"
	"github.com/r21league/auctionpress/pkg/auctionpress/render"
	"github.com/r21league/auctionpress/pkg/auctionpress/state"
)

// Pipeline runs the full ingest, aggregate, synthesize and publish flow.
// Each Run is an independent tick: no state is carried between ticks except
// the configuration itself.
type Pipeline struct {
	cfg    config.Config
	pub    *publish.Client
	logger *logrus.Logger
}

// NewPipeline builds a pipeline from the configuration. The publish client is
// only constructed when uploads are enabled, so a local-only setup needs no
// remote credentials.
func NewPipeline(cfg config.Config) (*Pipeline, error) {
	p := &Pipeline{
		cfg:    cfg,
		logger: config.GetLogger(),
	}
	if cfg.Upload {
		pub, err := publish.NewClient(cfg.Remote)
		if err != nil {
			return nil, err
		}
		p.pub = pub
	}
	return p, nil
}

// Run executes one tick to completion. A publish failure is logged but does
// not fail the tick, because the artifact was already written locally and the
// next scheduled tick will publish the then-current artifact.
func (p *Pipeline) Run(ctx context.Context) error {
	job := models.PublishJob{
		RunID:       uuid.NewString(),
		OutputPath:  p.cfg.ArtifactPath(),
		RemotePath:  p.cfg.ArtifactName(),
		AuctionMode: p.cfg.AuctionMode,
		Upload:      p.cfg.Upload,
	}
	log := p.logger.WithFields(logrus.Fields{
		"module": "pipeline",
		"run_id": job.RunID,
	})

	inputPath, err := ingest.ResolveInputPath(p.cfg)
	if err != nil {
		return stageErr("resolve", err)
	}
	job.InputPath = inputPath
	log.WithFields(logrus.Fields{"input": job.InputPath}).Info("using workbook")

	entrants, owners, err := p.ingest(job.InputPath)
	if err != nil {
		return stageErr("open", err)
	}

	st := state.Aggregate(entrants, job.AuctionMode)

	doc, err := render.Render(entrants, owners, st, job.AuctionMode, p.cfg.RefreshEnabled)
	if err != nil {
		return stageErr("render", err)
	}
	if err := render.WriteArtifact(job.OutputPath, doc); err != nil {
		return stageErr("write", err)
	}
	log.WithFields(logrus.Fields{
		"output":   job.OutputPath,
		"entrants": len(entrants),
		"owners":   len(owners),
	}).Info("catalogue generated")

	if job.Upload {
		if err := p.pub.Publish(ctx, job.RemotePath, doc); err != nil {
			config.LogError(p.logger, "pipeline", "Run", stageErr("publish", err))
		}
	}
	return nil
}

// ingest owns the workbook handle for exactly one pass and closes it on all
// exit paths.
func (p *Pipeline) ingest(path string) ([]models.Entrant, map[string]models.Owner, error) {
	wb, err := ingest.OpenWorkbook(path)
	if err != nil {
		return nil, nil, err
	}
	defer wb.Close()

	entrants := ingest.Entrants(wb, p.cfg.AuctionMode)
	owners := ingest.Owners(wb)
	return entrants, owners, nil
}
