package platforms

import (
	"strings"

	"github.com/arthur-debert/cleaner/pkg/errors"
	"github.com/arthur-debert/cleaner/pkg/selection"
	"github.com/arthur-debert/cleaner/pkg/ui/text"
)

// Validate checks a platform list as a whole. Every problem found is
// reported in one CONFIG_INVALID error whose message lists them line by line.
func Validate(platforms []Platform) error {
	var spaces, dupNames, noFolders, dupFolders, dupAssociated bool

	names := make([]string, len(platforms))
	for i, p := range platforms {
		names[i] = p.Name
		spaces = spaces || p.hasWhitespace()
		noFolders = noFolders || len(p.Folders) == 0
		dupFolders = dupFolders || !uniqueFold(p.Folders)
		dupAssociated = dupAssociated || !uniqueFold(p.AssociatedStrings())
	}
	dupNames = !uniqueFold(names)

	var lines []string
	if spaces || dupNames {
		lines = append(lines, "* Platform names "+both(spaces, "can not contain spaces", dupNames, "must be unique"))
	}
	if noFolders || dupFolders {
		lines = append(lines, "* Platform build artifacts "+both(noFolders, "require at lease one value", dupFolders, "must be unique"))
	}
	if dupAssociated {
		lines = append(lines, "* Platform associated files and folders must be unique")
	}

	if len(lines) == 0 {
		return nil
	}
	return errors.New(errors.ErrConfigInvalid, strings.Join(lines, "\n")).
		WithDetail("platforms", len(platforms))
}

func both(a bool, aText string, b bool, bText string) string {
	switch {
	case a && b:
		return aText + " and " + bText
	case a:
		return aText
	default:
		return bText
	}
}

// ValidateSelection rejects selected names that are not platforms in rs
func ValidateSelection(sel selection.Selection, rs *RuleSet) error {
	if sel.IsAll() {
		return nil
	}

	var unsupported []string
	for _, v := range sel.Values() {
		known := false
		for _, name := range rs.Names() {
			if strings.EqualFold(name, v) {
				known = true
				break
			}
		}
		if !known {
			unsupported = append(unsupported, v)
		}
	}

	if len(unsupported) == 0 {
		return nil
	}

	plural := ""
	if len(unsupported) > 1 {
		plural = "s"
	}
	return errors.Newf(errors.ErrUnsupportedPlatform, "Unsupported platform%s: %s\nSupported Platforms: %s",
		plural, text.Join(unsupported), text.Join(rs.Names())).
		WithDetail("unsupported", unsupported)
}
