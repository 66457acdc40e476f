package cli

import (
	"strings"

	"github.com/spf13/pflag"

	"github.com/temirov/gotxt/internal/imports"
)

const modeFlagTypeName = "mode"

// modeFlagValue parses a switch direction, accepting names and numeric aliases.
type modeFlagValue struct {
	target *imports.Mode
}

func (value *modeFlagValue) Set(input string) error {
	parsedMode, parseError := imports.ParseMode(input)
	if parseError != nil {
		return parseError
	}
	*value.target = parsedMode
	return nil
}

func (value *modeFlagValue) String() string {
	if value == nil || value.target == nil {
		return ""
	}
	return value.target.String()
}

func (value *modeFlagValue) Type() string {
	return modeFlagTypeName
}

func registerModeFlag(flagSet *pflag.FlagSet, target *imports.Mode) {
	flagSet.Var(&modeFlagValue{target: target}, modeFlagName, modeFlagDescription+" ("+strings.Join(imports.ModeChoices, "|")+")")
}
