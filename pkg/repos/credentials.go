package repos

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"

	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing/transport"
	"github.com/go-git/go-git/v5/plumbing/transport/http"
	"github.com/go-git/go-git/v5/plumbing/transport/ssh"
	"github.com/rs/zerolog"

	"github.com/arthur-debert/cleaner/pkg/errors"
	"github.com/arthur-debert/cleaner/pkg/logging"
	"github.com/arthur-debert/cleaner/pkg/paths"
)

// CommandRunner runs a shell command, feeding it stdin, and returns its
// standard output
type CommandRunner interface {
	Run(ctx context.Context, command, stdin string) (string, error)
}

// ShellCommandRunner executes commands via the system shell
type ShellCommandRunner struct{}

// Run executes command via sh -c
func (ShellCommandRunner) Run(ctx context.Context, command, stdin string) (string, error) {
	cmd := exec.CommandContext(ctx, "sh", "-c", command)
	cmd.Stdin = strings.NewReader(stdin)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrRepoFetch, "%s: %s", command, strings.TrimSpace(stderr.String()))
	}
	return string(out), nil
}

// Credentials resolves authentication for remotes. HTTP(S) remotes use the
// credential helper configured in git; SSH remotes use the SSH agent; local
// remotes need nothing.
type Credentials struct {
	runner CommandRunner

	// loadDefault loads git's default configuration. The files in
	// configFiles are tried in order when it fails.
	loadDefault func() (*config.Config, error)
	configFiles []string

	once       sync.Once
	helperName string

	logger zerolog.Logger
}

// NewCredentials creates a resolver using git's configuration. A nil runner
// uses the shell.
func NewCredentials(runner CommandRunner) *Credentials {
	if runner == nil {
		runner = ShellCommandRunner{}
	}
	return &Credentials{
		runner: runner,
		loadDefault: func() (*config.Config, error) {
			return config.LoadConfig(config.GlobalScope)
		},
		configFiles: paths.GitConfigFiles(),
		logger:      logging.GetLogger("repos.credentials"),
	}
}

// Auth returns the authentication to use for url, or nil for none
func (c *Credentials) Auth(ctx context.Context, url string) (transport.AuthMethod, error) {
	ep, err := transport.NewEndpoint(url)
	if err != nil {
		return nil, err
	}

	switch ep.Protocol {
	case "ssh":
		user := ep.User
		if user == "" {
			user = "git"
		}
		return ssh.NewSSHAgentAuth(user)
	case "http", "https":
		return c.helperAuth(ctx, ep)
	default:
		return nil, nil
	}
}

func (c *Credentials) helperAuth(ctx context.Context, ep *transport.Endpoint) (transport.AuthMethod, error) {
	c.once.Do(func() { c.helperName = c.helper() })
	helper := c.helperName
	if helper == "" {
		if ep.User != "" {
			return &http.BasicAuth{Username: ep.User, Password: ep.Password}, nil
		}
		return nil, nil
	}

	host := ep.Host
	if ep.Port != 0 {
		host = fmt.Sprintf("%s:%d", ep.Host, ep.Port)
	}
	var in strings.Builder
	fmt.Fprintf(&in, "protocol=%s\nhost=%s\n", ep.Protocol, host)
	if p := strings.TrimPrefix(ep.Path, "/"); p != "" {
		fmt.Fprintf(&in, "path=%s\n", p)
	}
	if ep.User != "" {
		fmt.Fprintf(&in, "username=%s\n", ep.User)
	}
	in.WriteString("\n")

	out, err := c.runner.Run(ctx, helperCommand(helper), in.String())
	if err != nil {
		return nil, err
	}

	auth := parseCredential(out)
	if auth.Username == "" {
		auth.Username = ep.User
	}
	if auth.Password == "" {
		return nil, nil
	}
	return auth, nil
}

// helper finds credential.helper in the first git configuration that loads
func (c *Credentials) helper() string {
	if cfg, err := c.loadDefault(); err == nil {
		return helperOf(cfg)
	} else {
		c.logger.Debug().Err(err).Msg("Default git config not loaded")
	}

	for _, file := range c.configFiles {
		data, err := os.ReadFile(file)
		if err != nil {
			continue
		}
		cfg, err := config.ReadConfig(bytes.NewReader(data))
		if err != nil {
			c.logger.Debug().Err(err).Str("path", file).Msg("Git config not parsed")
			continue
		}
		c.logger.Debug().Str("path", file).Msg("Using git config for credentials")
		return helperOf(cfg)
	}
	return ""
}

func helperOf(cfg *config.Config) string {
	if cfg == nil || cfg.Raw == nil {
		return ""
	}
	return strings.TrimSpace(cfg.Raw.Section("credential").Option("helper"))
}

// helperCommand turns a credential.helper value into the shell command that
// answers a "get" request, following git's rules
func helperCommand(helper string) string {
	switch {
	case strings.HasPrefix(helper, "!"):
		return strings.TrimPrefix(helper, "!") + " get"
	case filepath.IsAbs(strings.Fields(helper)[0]):
		return helper + " get"
	default:
		return "git credential-" + helper + " get"
	}
}

func parseCredential(out string) *http.BasicAuth {
	auth := &http.BasicAuth{}
	scanner := bufio.NewScanner(strings.NewReader(out))
	for scanner.Scan() {
		key, value, ok := strings.Cut(scanner.Text(), "=")
		if !ok {
			continue
		}
		switch key {
		case "username":
			auth.Username = value
		case "password":
			auth.Password = value
		}
	}
	return auth
}
