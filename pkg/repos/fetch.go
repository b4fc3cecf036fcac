package repos

import (
	"context"
	stderrors "errors"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/transport"
	"github.com/rs/zerolog"

	"github.com/arthur-debert/cleaner/pkg/errors"
	"github.com/arthur-debert/cleaner/pkg/logging"
)

// Fetcher updates remote tracking branches before comparing branches with
// their upstreams
type Fetcher struct {
	creds  *Credentials
	logger zerolog.Logger
}

// NewFetcher creates a fetcher. A nil creds resolves credentials from git's
// configuration.
func NewFetcher(creds *Credentials) *Fetcher {
	if creds == nil {
		creds = NewCredentials(nil)
	}
	return &Fetcher{
		creds:  creds,
		logger: logging.GetLogger("repos.fetch"),
	}
}

// FetchAll fetches every remote of r that authenticates. Remotes that can't
// be reached are reported on r and skipped; a failing fetch stops and is
// returned.
func (f *Fetcher) FetchAll(ctx context.Context, r *Repo) error {
	defer logging.LogOperationStart(f.logger.With().Str("repo", r.Path).Logger(), "fetch")()

	remotes, err := r.Remotes()
	if err != nil {
		return errors.Wrap(err, errors.ErrRepoRemotes, "Couldn't get remotes")
	}

	for _, remote := range remotes {
		name := remote.Config().Name
		auth, ok := f.connect(ctx, r, remote)
		if !ok {
			continue
		}

		f.logger.Debug().Str("repo", r.Path).Str("remote", name).Msg("Fetching remote")
		err := remote.FetchContext(ctx, &git.FetchOptions{RemoteName: name, Auth: auth})
		if err != nil && !stderrors.Is(err, git.NoErrAlreadyUpToDate) {
			return errors.Wrap(err, errors.ErrRepoFetch, "Couldn't fetch remote").
				WithDetail("remote", name)
		}
	}
	return nil
}

// connect resolves credentials for remote and checks them by listing its
// references
func (f *Fetcher) connect(ctx context.Context, r *Repo, remote *git.Remote) (transport.AuthMethod, bool) {
	cfg := remote.Config()
	if len(cfg.URLs) == 0 {
		return nil, false
	}

	auth, err := f.creds.Auth(ctx, cfg.URLs[0])
	if err != nil {
		r.ReportError(errors.Wrap(err, errors.ErrRepoFetch, ""))
		return nil, false
	}

	_, err = remote.ListContext(ctx, &git.ListOptions{Auth: auth})
	switch {
	case stderrors.Is(err, transport.ErrEmptyRemoteRepository):
		f.logger.Debug().Str("repo", r.Path).Str("remote", cfg.Name).Msg("Remote is empty")
		return nil, false
	case err != nil:
		r.ReportError(errors.Wrap(err, errors.ErrRepoFetch, ""))
		return nil, false
	}
	return auth, true
}
