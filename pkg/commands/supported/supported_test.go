package supported_test

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/cleaner/pkg/commands/supported"
	"github.com/arthur-debert/cleaner/pkg/errors"
	"github.com/arthur-debert/cleaner/pkg/platforms"
	"github.com/arthur-debert/cleaner/pkg/ui/plain"
)

const path = "/conf/supported-platforms.json"

type answer struct {
	ok    bool
	err   error
	asked []string
}

func (a *answer) Confirm(q string) (bool, error) {
	a.asked = append(a.asked, q)
	return a.ok, a.err
}

func setup(t *testing.T, list []platforms.Platform) (supported.Options, *bytes.Buffer) {
	t.Helper()
	store := platforms.NewStore(afero.NewMemMapFs(), path)
	if list != nil {
		require.NoError(t, store.Save(list))
	}
	var out bytes.Buffer
	return supported.Options{Store: store, Renderer: plain.New(&out)}, &out
}

func rust() platforms.Platform {
	return platforms.Platform{Name: "Rust", Folders: []string{"target"}, Associated: platforms.Patterns("Cargo.toml")}
}

func TestList(t *testing.T) {
	opts, out := setup(t, []platforms.Platform{rust()})

	listing, err := supported.List(opts)
	require.NoError(t, err)
	assert.Equal(t, path, listing.Path)
	assert.Equal(t, "Platform: Rust\n  Build Artifacts: target\n  Matched On: Cargo.toml\n", out.String())
}

func TestListWritesDefaults(t *testing.T) {
	opts, _ := setup(t, nil)

	listing, err := supported.List(opts)
	require.NoError(t, err)
	assert.Len(t, listing.Platforms, len(platforms.Defaults()))
	assert.True(t, opts.Store.Exists())
}

func TestPath(t *testing.T) {
	opts, out := setup(t, nil)
	require.NoError(t, supported.Path(opts))
	assert.Equal(t, path+"\n", out.String())
}

func TestLoadRulesInvalid(t *testing.T) {
	opts, out := setup(t, []platforms.Platform{rust(), {Name: "rust", Folders: []string{"target"}}})

	_, err := supported.LoadRules(opts)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigInvalid))
	assert.Equal(t,
		"* Platform names must be unique\n\nConfigurations file requires manual fix: "+path,
		errors.Message(err))
	assert.Contains(t, out.String(), "Platform: rust"+platforms.MarkDuplicate)
}

func TestCheck(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		opts, out := setup(t, []platforms.Platform{rust()})
		require.NoError(t, supported.Check(opts))
		assert.Equal(t, supported.MsgValid+"\n", out.String())
	})

	t.Run("equivalents", func(t *testing.T) {
		other := rust()
		other.Name = "Cargo"
		opts, out := setup(t, []platforms.Platform{rust(), other})
		require.NoError(t, supported.Check(opts))
		assert.Equal(t, fmt.Sprintf(supported.MsgEquivalent, "Rust", "Cargo")+"\n"+supported.MsgValid+"\n", out.String())
	})

	t.Run("invalid", func(t *testing.T) {
		opts, _ := setup(t, []platforms.Platform{{Name: "No Folders"}})
		err := supported.Check(opts)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigInvalid))
	})
}

func TestReset(t *testing.T) {
	t.Run("nothing to reset", func(t *testing.T) {
		opts, out := setup(t, nil)
		reset, err := supported.Reset(opts, &answer{ok: true})
		require.NoError(t, err)
		assert.False(t, reset)
		assert.Equal(t, supported.MsgIsReset+"\n", out.String())
	})

	t.Run("confirmed", func(t *testing.T) {
		opts, out := setup(t, []platforms.Platform{rust()})
		a := &answer{ok: true}
		reset, err := supported.Reset(opts, a)
		require.NoError(t, err)
		assert.True(t, reset)
		assert.False(t, opts.Store.Exists())
		assert.Equal(t, []string{supported.MsgResetQuestion}, a.asked)
		assert.Equal(t, supported.MsgResetWarning+"\n"+supported.MsgHasBeenReset+"\n", out.String())
	})

	t.Run("declined", func(t *testing.T) {
		opts, _ := setup(t, []platforms.Platform{rust()})
		reset, err := supported.Reset(opts, &answer{})
		require.NoError(t, err)
		assert.False(t, reset)
		assert.True(t, opts.Store.Exists())
	})

	t.Run("without asking", func(t *testing.T) {
		opts, out := setup(t, []platforms.Platform{rust()})
		reset, err := supported.Reset(opts, nil)
		require.NoError(t, err)
		assert.True(t, reset)
		assert.Equal(t, supported.MsgHasBeenReset+"\n", out.String())
	})

	t.Run("prompt failure", func(t *testing.T) {
		opts, _ := setup(t, []platforms.Platform{rust()})
		_, err := supported.Reset(opts, &answer{err: errors.New(errors.ErrActionInput, "not a terminal")})
		assert.True(t, errors.IsErrorCode(err, errors.ErrActionInput))
		assert.True(t, opts.Store.Exists())
	})
}

func TestExport(t *testing.T) {
	opts, out := setup(t, []platforms.Platform{rust()})

	require.NoError(t, supported.Export(opts, platforms.FormatYAML))
	assert.Contains(t, out.String(), "name: Rust")
	assert.Contains(t, out.String(), "Cargo.toml")
}

func TestEdit(t *testing.T) {
	opts, out := setup(t, []platforms.Platform{rust()})

	require.NoError(t, supported.Edit(opts, platforms.Edit{
		Kind: platforms.EditAdd, Name: "Go", Folders: []string{"vendor"}, Associated: []string{"go.mod"},
	}))
	require.NoError(t, supported.Edit(opts, platforms.Edit{Kind: platforms.EditModify, Name: "go", Rename: "Golang"}))
	require.NoError(t, supported.Edit(opts, platforms.Edit{Kind: platforms.EditDelete, Name: "Rust"}))

	assert.Equal(t, "Platform Go added\nPlatform go modified and renamed to Golang\nPlatform Rust deleted\n", out.String())

	list, err := opts.Store.Load()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Golang", list[0].Name)
	assert.Equal(t, []string{"vendor"}, list[0].Folders)
}

func TestEditFailureKeepsFile(t *testing.T) {
	opts, _ := setup(t, []platforms.Platform{rust()})

	err := supported.Edit(opts, platforms.Edit{Kind: platforms.EditAdd, Name: "rust", Folders: []string{"x"}})
	assert.True(t, errors.IsErrorCode(err, errors.ErrPlatformExists))

	list, err := opts.Store.Load()
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
