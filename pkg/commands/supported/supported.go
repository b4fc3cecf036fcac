package supported

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/cleaner/pkg/commands/internal"
	"github.com/arthur-debert/cleaner/pkg/errors"
	"github.com/arthur-debert/cleaner/pkg/logging"
	"github.com/arthur-debert/cleaner/pkg/platforms"
	"github.com/arthur-debert/cleaner/pkg/types"
	"github.com/arthur-debert/cleaner/pkg/ui"
)

// Messages printed by the supported command
const (
	MsgResetWarning  = "By resetting your configuration you will loose any customization you have applied\n"
	MsgResetQuestion = "Are you sure"
	MsgIsReset       = "Configuration of supported platforms is reset"
	MsgHasBeenReset  = "Configuration of supported platforms has been reset"
	MsgValid         = "Configuration of supported platforms is valid"
	MsgManualFix     = "Configurations file requires manual fix: %s"
	MsgEquivalent    = "Platforms %s and %s match the same folders and files"
)

// Options are shared by the supported subcommands
type Options struct {
	Store    *platforms.Store
	Renderer ui.Renderer
}

// LoadRules loads and validates the platforms configuration. When it does
// not validate the configuration is listed before the error is returned,
// so the user can see what to fix.
func LoadRules(opts Options) (*platforms.RuleSet, error) {
	list, err := opts.Store.Load()
	if err != nil {
		return nil, err
	}

	rules, err := platforms.NewRuleSet(list)
	if err != nil {
		return nil, invalid(opts, list, err)
	}
	return rules, nil
}

func invalid(opts Options, list []platforms.Platform, err error) error {
	if rerr := opts.Renderer.RenderResult(types.PlatformListing{Platforms: platforms.Listing(list)}); rerr != nil {
		return rerr
	}
	if rerr := opts.Renderer.RenderMessage(""); rerr != nil {
		return rerr
	}
	return errors.Newf(errors.ErrConfigInvalid, "%s\n\n"+MsgManualFix, errors.Message(err), opts.Store.Path()).
		WithDetail("path", opts.Store.Path())
}

// List prints the configured platforms, flagging duplicate names and names
// with whitespace
func List(opts Options) (*types.PlatformListing, error) {
	log := logging.GetLogger("core.commands")
	log.Debug().Str("command", "SupportedList").Msg("Executing command")

	list, err := opts.Store.Load()
	if err != nil {
		return nil, err
	}

	listing := types.PlatformListing{Path: opts.Store.Path(), Platforms: platforms.Listing(list)}
	if err := opts.Renderer.RenderResult(listing); err != nil {
		return nil, err
	}
	return &listing, nil
}

// Path prints where the platforms configuration lives
func Path(opts Options) error {
	return opts.Renderer.RenderMessage(opts.Store.Path())
}

// Check validates the configuration and points out platforms that match
// exactly the same folders and files
func Check(opts Options) error {
	log := logging.GetLogger("core.commands")
	log.Debug().Str("command", "SupportedCheck").Msg("Executing command")

	rules, err := LoadRules(opts)
	if err != nil {
		return err
	}

	for _, pair := range rules.Equivalents() {
		if err := opts.Renderer.RenderMessage(fmt.Sprintf(MsgEquivalent, pair[0], pair[1])); err != nil {
			return err
		}
	}
	return opts.Renderer.RenderMessage(MsgValid)
}

// Reset deletes the configuration so that the defaults come back. A nil
// confirm resets without asking.
func Reset(opts Options, confirm internal.Confirmer) (bool, error) {
	log := logging.GetLogger("core.commands")
	log.Debug().Str("command", "SupportedReset").Msg("Executing command")

	if !opts.Store.Exists() {
		return false, opts.Renderer.RenderMessage(MsgIsReset)
	}

	if confirm != nil {
		if err := opts.Renderer.RenderMessage(MsgResetWarning); err != nil {
			return false, err
		}
		ok, err := confirm.Confirm(MsgResetQuestion)
		if err != nil {
			return false, errors.Wrap(err, errors.ErrActionInput, "Exception confirming reset")
		}
		if !ok {
			return false, nil
		}
	}

	removed, err := opts.Store.Reset()
	if err != nil || !removed {
		return false, err
	}
	log.Info().Str("path", opts.Store.Path()).Msg("Platforms configuration reset")
	return true, opts.Renderer.RenderMessage(MsgHasBeenReset)
}

// Export prints the configuration encoded as format
func Export(opts Options, format platforms.Format) error {
	list, err := opts.Store.Load()
	if err != nil {
		return err
	}
	data, err := platforms.Encode(list, format)
	if err != nil {
		return errors.Wrapf(err, errors.ErrConfigWrite, "Exception exporting configuration as %s", format)
	}
	return opts.Renderer.RenderMessage(strings.TrimRight(string(data), "\n"))
}

// Edit applies e to the configuration and saves it
func Edit(opts Options, e platforms.Edit) error {
	log := logging.GetLogger("core.commands")
	log.Debug().Str("command", "SupportedEdit").Str("platform", e.Name).Msg("Executing command")

	list, err := opts.Store.Load()
	if err != nil {
		return err
	}
	updated, err := platforms.Apply(list, e)
	if err != nil {
		return err
	}
	if err := opts.Store.Save(updated); err != nil {
		return err
	}

	log.Info().Str("platform", e.Name).Str("path", opts.Store.Path()).Msg("Platforms configuration updated")
	return opts.Renderer.RenderMessage(editMessage(e))
}

func editMessage(e platforms.Edit) string {
	switch e.Kind {
	case platforms.EditAdd:
		return fmt.Sprintf("Platform %s added", e.Name)
	case platforms.EditDelete:
		return fmt.Sprintf("Platform %s deleted", e.Name)
	}
	if e.Rename != "" && e.Rename != e.Name {
		return fmt.Sprintf("Platform %s modified and renamed to %s", e.Name, e.Rename)
	}
	return fmt.Sprintf("Platform %s modified", e.Name)
}
