// Package usecase contains the business logic of the application.
package usecase

import (
	"context"
	"io"

	"go.uber.org/zap"

	"github.com/naka-gawa/tpm-agent/internal/actions"
	"github.com/naka-gawa/tpm-agent/internal/domain"
	"github.com/naka-gawa/tpm-agent/internal/gateway"
)

// SuccessMessage is returned by Process when every step completed.
const SuccessMessage = "Issue processed successfully"

// Request is the input of a single pipeline run.
type Request struct {
	IssueContent string
	Repository   string
	IssueNumber  int
}

// stage is the last state the pipeline reached; it only feeds logging.
type stage string

const (
	stageStart     stage = "start"
	stageAnalyzed  stage = "analyzed"
	stageRendered  stage = "rendered"
	stagePublished stage = "published"
	stageLabeled   stage = "labeled"
)

// Processor is the use case for triaging one issue.
// It sequences classification, rendering and publishing.
type Processor struct {
	commenter gateway.IssueCommenter
	logger    *zap.Logger
	commands  *actions.Commands
	addLabels bool
}

// ProcessorOption configures a Processor.
type ProcessorOption func(*Processor)

// WithLabels enables labelling the issue with its type after the comment is posted.
func WithLabels(enabled bool) ProcessorOption {
	return func(p *Processor) {
		p.addLabels = enabled
	}
}

// WithCommands sets where log group markers are written.
func WithCommands(commands *actions.Commands) ProcessorOption {
	return func(p *Processor) {
		p.commands = commands
	}
}

// NewProcessor creates a new Processor instance.
func NewProcessor(commenter gateway.IssueCommenter, logger *zap.Logger, opts ...ProcessorOption) *Processor {
	p := &Processor{
		commenter: commenter,
		logger:    logger,
		commands:  actions.NewCommands(io.Discard),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Process runs the pipeline once. Steps run strictly in order; the first error
// aborts the run and is returned as is. Nothing done by earlier steps is undone.
func (p *Processor) Process(ctx context.Context, req Request) (string, error) {
	logger := p.logger.With(zap.String("repository", req.Repository), zap.Int("issue", req.IssueNumber))
	logger.Info("Starting issue processing")

	current := stageStart
	fail := func(err error) (string, error) {
		logger.Error("Issue processing failed", zap.String("stage", string(current)), zap.Error(err))
		return "", err
	}

	analysis := p.analyze(logger, req.IssueContent)
	current = stageAnalyzed

	comment := p.render(logger, analysis, req.IssueContent)
	current = stageRendered

	repo, err := p.publish(ctx, logger, req.Repository, req.IssueNumber, comment)
	if err != nil {
		return fail(err)
	}
	current = stagePublished

	if p.addLabels {
		if err := p.label(ctx, logger, repo, req.IssueNumber, analysis); err != nil {
			return fail(err)
		}
		current = stageLabeled
	}

	logger.Info("Issue processing completed", zap.String("stage", string(current)))
	return SuccessMessage, nil
}

func (p *Processor) analyze(logger *zap.Logger, content string) domain.IssueAnalysis {
	p.commands.Group("Analyzing issue content")
	defer p.commands.EndGroup()

	analysis := Classify(content)
	logger.Info("Analysis completed",
		zap.String("type", string(analysis.Type)),
		zap.String("priority", string(analysis.Priority)),
		zap.Any("topics", analysis.Topics),
	)
	return analysis
}

func (p *Processor) render(logger *zap.Logger, analysis domain.IssueAnalysis, content string) string {
	p.commands.Group("Generating response comment")
	defer p.commands.EndGroup()

	comment := Render(analysis, content)
	logger.Info("Generated comment", zap.Int("characters", len(comment)))
	return comment
}

// publish validates the repository before any network call is made.
func (p *Processor) publish(ctx context.Context, logger *zap.Logger, repository string, number int, comment string) (domain.Repository, error) {
	p.commands.Group("Posting comment to GitHub")
	defer p.commands.EndGroup()

	repo, err := domain.ParseRepository(repository)
	if err != nil {
		return domain.Repository{}, err
	}
	if err := p.commenter.CreateComment(ctx, repo, number, comment); err != nil {
		return domain.Repository{}, err
	}
	logger.Info("Comment posted successfully")
	return repo, nil
}

func (p *Processor) label(ctx context.Context, logger *zap.Logger, repo domain.Repository, number int, analysis domain.IssueAnalysis) error {
	p.commands.Group("Labelling issue")
	defer p.commands.EndGroup()

	if err := p.commenter.AddLabels(ctx, repo, number, string(analysis.Type)); err != nil {
		return err
	}
	logger.Info("Added labels successfully", zap.String("label", string(analysis.Type)))
	return nil
}
