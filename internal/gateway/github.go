// Package gateway provides a gateway to the GitHub API,
// abstracting away the underlying REST client.
package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-github/v84/github"
	"github.com/m-mizutani/goerr/v2"
	"go.uber.org/zap"
	"golang.org/x/oauth2"

	"github.com/gofri/go-github-ratelimit/github_ratelimit"

	"github.com/naka-gawa/tpm-agent/internal/domain"
)

// IssueCommenter defines the write operations the pipeline performs against an issue.
type IssueCommenter interface {
	CreateComment(ctx context.Context, repo domain.Repository, number int, body string) error
	AddLabels(ctx context.Context, repo domain.Repository, number int, labels ...string) error
}

// GitHubGateway is the concrete implementation of the IssueCommenter interface.
type GitHubGateway struct {
	restClient *github.Client
	logger     *zap.Logger
}

// Option configures a GitHubGateway.
type Option func(*GitHubGateway) error

// WithBaseURL points the REST client at a different API root, e.g. a GitHub Enterprise
// server or the value of GITHUB_API_URL inside an Actions runner.
func WithBaseURL(rawURL string) Option {
	return func(g *GitHubGateway) error {
		if !strings.HasSuffix(rawURL, "/") {
			rawURL += "/"
		}
		baseURL, err := url.Parse(rawURL)
		if err != nil {
			return goerr.Wrap(err, "failed to parse API base URL", goerr.V("url", rawURL))
		}
		g.restClient.BaseURL = baseURL
		return nil
	}
}

// NewGitHubGateway is a constructor that creates a new instance of GitHubGateway.
//
// Secondary rate limits are detected but never waited out: a limited request fails
// immediately so that a comment is never sent twice.
func NewGitHubGateway(token string, logger *zap.Logger, opts ...Option) (*GitHubGateway, error) {
	rateLimitWaiter, err := github_ratelimit.NewRateLimitWaiter(nil,
		github_ratelimit.WithSingleSleepLimit(0, func(cbContext *github_ratelimit.CallbackContext) {
			fields := []zap.Field{}
			if cbContext.SleepUntil != nil {
				fields = append(fields, zap.Time("retry_after", *cbContext.SleepUntil))
			}
			logger.Warn("GitHub secondary rate limit hit", fields...)
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create rate limit waiter: %w", err)
	}
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	httpClient := &http.Client{
		Transport: &oauth2.Transport{
			Base:   rateLimitWaiter,
			Source: ts,
		},
	}
	g := &GitHubGateway{
		restClient: github.NewClient(httpClient),
		logger:     logger,
	}
	for _, opt := range opts {
		if err := opt(g); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// CreateComment posts body as a new comment on issue number of repo.
func (g *GitHubGateway) CreateComment(ctx context.Context, repo domain.Repository, number int, body string) error {
	g.logger.Debug("Creating issue comment",
		zap.Stringer("repository", repo),
		zap.Int("issue", number),
		zap.Int("body_length", len(body)),
	)
	started := time.Now()
	comment, _, err := g.restClient.Issues.CreateComment(ctx, repo.Owner, repo.Name, number, &github.IssueComment{
		Body: github.Ptr(body),
	})
	if err != nil {
		return goerr.Wrap(fmt.Errorf("%w: %w", domain.ErrTransport, err), "failed to create issue comment",
			goerr.V("repository", repo.String()), goerr.V("issue", number))
	}
	g.logger.Debug("Issue comment created",
		zap.Int64("comment_id", comment.GetID()),
		zap.String("url", comment.GetHTMLURL()),
		zap.Duration("elapsed", time.Since(started)),
	)
	return nil
}

// AddLabels attaches labels to issue number of repo. Labels unknown to the
// repository are created by GitHub on the fly.
func (g *GitHubGateway) AddLabels(ctx context.Context, repo domain.Repository, number int, labels ...string) error {
	g.logger.Debug("Adding issue labels",
		zap.Stringer("repository", repo),
		zap.Int("issue", number),
		zap.Strings("labels", labels),
	)
	if _, _, err := g.restClient.Issues.AddLabelsToIssue(ctx, repo.Owner, repo.Name, number, labels); err != nil {
		return goerr.Wrap(fmt.Errorf("%w: %w", domain.ErrTransport, err), "failed to add issue labels",
			goerr.V("repository", repo.String()), goerr.V("issue", number))
	}
	return nil
}
