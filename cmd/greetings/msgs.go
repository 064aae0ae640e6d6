package greetings

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort        = "Greeting cards for the terminal"
	MsgBirthdayShort    = "Render a birthday card"
	MsgGeneralShort     = "Render a general greeting card"
	MsgHolidayShort     = "Render a holiday card, optionally with generated art"
	MsgMotivateShort    = "Render a motivational card"
	MsgListShort        = "List card kinds and styles"
	MsgInteractiveShort = "Create a card step by step"
	MsgConfigShort      = "Inspect or create the configuration file"
	MsgConfigInitShort  = "Write a commented default config file"
	MsgConfigShowShort  = "Print the effective configuration"
	MsgVersionShort     = "Print version information"
	MsgCompletionShort  = "Generate shell completion script"
	MsgTopicsShort      = "List all help topics"

	// Flag descriptions
	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagFormat   = "Output format: auto, term, text or json"
	MsgFlagConfig   = "Config file (default $XDG_CONFIG_HOME/greetings/config.toml)"
	MsgFlagName     = "Name of the recipient"
	MsgFlagStyle    = "Card style: banner, small or simple"
	MsgFlagExport   = "Also write the card as plain text to this file"
	MsgFlagAnimate  = "Reveal the card line by line"
	MsgFlagTheme    = "Motivation theme: monday, keepgoing, yougotthis, deadline or coffee"
	MsgFlagUseAI    = "Generate the art with the configured backend"
	MsgFlagAIPrompt = "Creative theme for the generated art"
	MsgFlagForce    = "Overwrite an existing config file"
	MsgFlagPath     = "Where to write the config file"

	// Status messages
	MsgGenerating      = "Generating your greeting card..."
	MsgGeneratingAI    = "Generating your greeting card with AI..."
	MsgFallbackNotice  = "Generated art unavailable, showing the built-in card"
	MsgExportedFormat  = "Card exported to: %s"
	MsgConfigWritten   = "<Success>Config written to:</Success> <FilePath>%s</FilePath>"
	MsgThanks          = "<Muted>Thanks for using Greetings!</Muted>"
	MsgWelcome         = "Welcome to Greetings Card Generator!"
	MsgNoTopics        = "No help topics available."
	MsgListIntro       = "Every kind renders in every style."
	MsgTopicItemFormat = "  %s\n"

	// Wizard prompts
	MsgPromptKind     = "What type of greeting card would you like to create?"
	MsgPromptName     = "Who is this card for?"
	MsgPromptStyle    = "Choose a style for your card"
	MsgPromptUseAI    = "Use AI to generate custom art?"
	MsgPromptAITheme  = "Describe what you'd like to see (empty for the default)"
	MsgPromptAction   = "What would you like to do with your card?"
	MsgPromptTheme    = "Which kind of motivation?"
	MsgActionDisplay  = "Display it now"
	MsgActionExport   = "Export to file"
	MsgActionBoth     = "Both: display and export"
	MsgDefaultName    = "Friend"

	// Version output
	MsgVersionFormat = "greetings version %s\n"
	MsgCommitFormat  = "  commit: %s\n"
	MsgBuiltFormat   = "  built:  %s\n"

	// Error messages
	MsgErrEmptyName    = "name must not be empty"
	MsgErrInteractive  = "interactive mode needs a terminal"
	MsgErrWizard       = "wizard aborted"
	MsgErrUnknownShell = "unsupported shell %q (bash, zsh, fish, powershell)"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/card-example.txt
	msgCardExampleRaw string
	MsgCardExample    = strings.TrimRight(msgCardExampleRaw, "\n")

	//go:embed msgs/holiday-long.txt
	msgHolidayLongRaw string
	MsgHolidayLong    = strings.TrimSpace(msgHolidayLongRaw)

	//go:embed msgs/holiday-example.txt
	msgHolidayExampleRaw string
	MsgHolidayExample    = strings.TrimRight(msgHolidayExampleRaw, "\n")

	//go:embed msgs/motivate-long.txt
	msgMotivateLongRaw string
	MsgMotivateLong    = strings.TrimSpace(msgMotivateLongRaw)

	//go:embed msgs/config-long.txt
	msgConfigLongRaw string
	MsgConfigLong    = strings.TrimSpace(msgConfigLongRaw)

	//go:embed msgs/interactive-long.txt
	msgInteractiveLongRaw string
	MsgInteractiveLong    = strings.TrimSpace(msgInteractiveLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
