package cli

import (
	"regexp"
	"strings"

	"github.com/spf13/cobra"
)

var (
	// "Usage:", "Available Commands:", "Flags:", "Global Flags:"
	sectionHeaderRe = regexp.MustCompile(`^[A-Z][A-Za-z ]+:$`)
	// "  pick        Select days ..."
	commandListingRe = regexp.MustCompile(`^( {2})(\S+)(\s{2,}.*)$`)
	// "  -v, --verbose   enable debug logging"
	flagLineRe = regexp.MustCompile(`^( +)(-.+?)( {2,}.*)$`)
	// `Use "daymark [command] --help" for more information about a command.`
	footerRe = regexp.MustCompile(`^Use "`)
	// --flag mentioned inside long descriptions
	inlineFlagRe = regexp.MustCompile(`--[a-z][a-z-]*`)
)

// colorizedHelpFunc returns a help function that colorizes cobra's default usage output.
func colorizedHelpFunc() func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		origOut := cmd.OutOrStdout()

		var buf strings.Builder
		cmd.SetOut(&buf)
		cmd.InitDefaultHelpFlag()
		if cmd.Long != "" {
			buf.WriteString(colorizeDescription(cmd.Long))
			buf.WriteString("\n\n")
		}
		_ = cmd.Usage()
		cmd.SetOut(origOut)

		var result strings.Builder
		for _, line := range strings.Split(buf.String(), "\n") {
			result.WriteString(colorizeLine(line))
			result.WriteString("\n")
		}
		cmd.Print(strings.TrimRight(result.String(), "\n") + "\n")
	}
}

// colorizeDescription highlights flag names in free text.
func colorizeDescription(text string) string {
	return inlineFlagRe.ReplaceAllStringFunc(text, Primary)
}

// colorizeLine applies color rules to a single line of help output.
func colorizeLine(line string) string {
	trimmed := strings.TrimSpace(line)
	switch {
	case sectionHeaderRe.MatchString(trimmed):
		return Info(line)
	case footerRe.MatchString(trimmed):
		return Silent(line)
	}

	if m := flagLineRe.FindStringSubmatch(line); m != nil {
		return m[1] + Primary(m[2]) + m[3]
	}
	if m := commandListingRe.FindStringSubmatch(line); m != nil {
		return m[1] + Primary(m[2]) + m[3]
	}
	return line
}
