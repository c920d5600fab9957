package main

import (
	"github.com/spf13/cobra"
)

// options holds every CLI flag, populated once by cobra before runConvert executes.
type options struct {
	rules       []string
	ruleFiles   []string
	wikitext    bool
	dumpTable   bool
	copyClip    bool
	color       string
	interactive bool
	configPath  string
	jobs        int
	progress    bool
}

var opts options

var rootCmd = &cobra.Command{
	Use:   "zhconv [options] VARIANT [FILE...]",
	Short: "Convert text between Chinese scripts and regional variants",
	Long: `zhconv converts text between Chinese scripts (Simplified/Traditional) and the
regional variants used in Taiwan, Hong Kong, Macau, mainland China, Singapore, and
Malaysia -- the same conversion MediaWiki performs for Chinese-language wikis.

VARIANT accepts any case of zh, zh-Hant, zh-Hans, zh-TW, zh-HK, zh-MO, zh-CN, zh-SG, zh-MY.
With no FILE, zhconv reads stdin and writes stdout. With one or more FILEs, each is converted
in place via a temp file in the same directory and an atomic rename.`,
	Args:          cobra.ArbitraryArgs,
	RunE:          runConvert,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	flags := rootCmd.Flags()
	flags.StringArrayVar(&opts.rules, "rule", nil,
		"an inline-syntax rule line, appended to an additional ruleset (repeatable)")
	flags.StringArrayVar(&opts.ruleFiles, "rules_file", nil,
		"a file of newline-separated rule lines, applied after --rule (repeatable)")
	flags.BoolVar(&opts.wikitext, "wikitext", false,
		"treat input as wikitext, scanning -{...}- conversion rules (extended mode)")
	flags.BoolVar(&opts.dumpTable, "dump_table", false,
		"print the finalized (from TAB to) mapping, sorted by from, and exit")
	flags.BoolVar(&opts.copyClip, "copy", false,
		"also copy the converted stdin output to the system clipboard, in addition to stdout")
	flags.StringVar(&opts.color, "color", "auto", "diagnostic coloring: auto, always, or never")
	flags.BoolVar(&opts.interactive, "interactive", false,
		"pick the target variant and wikitext mode interactively when VARIANT is omitted")
	flags.StringVar(&opts.configPath, "config", "",
		"path to a config file (YAML or JSON) pinning a default variant, rules, and color mode")
	flags.IntVar(&opts.jobs, "jobs", 4, "maximum number of FILEs converted concurrently")
	flags.BoolVar(&opts.progress, "progress", false,
		"show a progress bar while converting multiple FILEs")
}

// Execute runs the root command, returning any error for main to report and exit non-zero on.
func Execute() error {
	return rootCmd.Execute()
}
