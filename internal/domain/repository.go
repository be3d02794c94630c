package domain

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// Repository identifies a repository on the issue tracker.
type Repository struct {
	Owner string
	Name  string
}

// ParseRepository splits an "owner/name" string. Exactly one separator is allowed
// and neither side may be empty.
func ParseRepository(s string) (Repository, error) {
	parts := strings.Split(s, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return Repository{}, goerr.Wrap(ErrInvalidRepositoryFormat,
			"repository must be in format owner/repo", goerr.V("repository", s))
	}
	return Repository{Owner: parts[0], Name: parts[1]}, nil
}

func (r Repository) String() string {
	return r.Owner + "/" + r.Name
}
