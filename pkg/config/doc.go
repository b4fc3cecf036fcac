// Package config loads cleaner's settings.
//
// Settings are layered with koanf, each layer overriding the previous one:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. the user's config.toml, when present
//  3. CLEANER_* environment variables (CLEANER_REPOS_WORKERS -> repos.workers)
//  4. explicit overrides, usually command line flags
package config
