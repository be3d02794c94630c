// Package config loads the action inputs from flags and the environment.
package config

import (
	"strconv"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/spf13/viper"

	"github.com/naka-gawa/tpm-agent/internal/domain"
)

// Keys shared by flags, viper and the INPUT_* environment variables.
const (
	KeyIssueContent = "issue-content"
	KeyGitHubToken  = "github-token"
	KeyRepository   = "repository"
	KeyIssueNumber  = "issue-number"
	KeyAddLabels    = "add-labels"
	KeyOutputFile   = "output-file"
	KeyAPIURL       = "api-url"
)

// Inputs holds the validated inputs of a triage run.
type Inputs struct {
	IssueContent string
	GitHubToken  string
	Repository   string
	IssueNumber  int
	AddLabels    bool
	OutputFile   string
	APIURL       string
}

// NewViper returns a viper instance reading INPUT_<KEY> variables, where KEY is the
// upper-cased key with dashes replaced by underscores, e.g. INPUT_ISSUE_NUMBER.
// The output file and API URL come from the runner's own GITHUB_OUTPUT and GITHUB_API_URL.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("INPUT")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv(KeyOutputFile, "GITHUB_OUTPUT")
	_ = v.BindEnv(KeyAPIURL, "GITHUB_API_URL")
	return v
}

// Load reads and validates the inputs. Every required input is checked before
// anything talks to GitHub.
func Load(v *viper.Viper) (*Inputs, error) {
	inputs := &Inputs{
		IssueContent: v.GetString(KeyIssueContent),
		GitHubToken:  v.GetString(KeyGitHubToken),
		Repository:   v.GetString(KeyRepository),
		AddLabels:    v.GetBool(KeyAddLabels),
		OutputFile:   v.GetString(KeyOutputFile),
		APIURL:       v.GetString(KeyAPIURL),
	}

	if inputs.IssueContent == "" {
		return nil, missing("Issue content is required", KeyIssueContent)
	}
	if inputs.GitHubToken == "" {
		return nil, missing("GitHub token is required", KeyGitHubToken)
	}
	if inputs.Repository == "" {
		return nil, missing("Repository is required", KeyRepository)
	}

	rawNumber := strings.TrimSpace(v.GetString(KeyIssueNumber))
	number, err := strconv.Atoi(rawNumber)
	if rawNumber == "" || err != nil {
		return nil, missing("Valid issue number is required", KeyIssueNumber)
	}
	inputs.IssueNumber = number

	return inputs, nil
}

func missing(msg, key string) error {
	return goerr.Wrap(domain.ErrMissingInput, msg, goerr.V("input", key))
}
