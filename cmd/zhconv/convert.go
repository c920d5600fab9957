package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"

	"zhconv"
	"zhconv/internal/config"
	"zhconv/internal/util"
	"zhconv/variant"
	"zhconv/wikitext"
)

// runConvert is rootCmd's RunE: resolve the target variant, build the effective converter from
// built-in tables plus any extra rules, then either dump the table or convert stdin/files.
func runConvert(cmd *cobra.Command, args []string) error {
	var cfg *config.Config
	if opts.configPath != "" {
		loaded, err := config.Load(opts.configPath)
		if err != nil {
			return err
		}
		if vr := config.Validate(loaded); vr != nil {
			return vr
		}
		cfg = loaded
		if opts.color == "auto" && cfg.Color != "" {
			opts.color = cfg.Color
		}
	}

	variantArg, files := "", args
	if len(args) > 0 {
		variantArg, files = args[0], args[1:]
	}
	if variantArg == "" && cfg != nil {
		variantArg = cfg.DefaultVariant
	}
	if variantArg == "" && opts.interactive {
		picked, wikitextMode, err := pickVariantInteractively()
		if err != nil {
			return fmt.Errorf("interactive picker: %w", err)
		}
		variantArg = picked
		opts.wikitext = opts.wikitext || wikitextMode
	}
	if variantArg == "" {
		return fmt.Errorf("missing VARIANT (pass one, use --config with default_variant, or --interactive)")
	}

	target, err := resolveVariant(variantArg)
	if err != nil {
		return err
	}

	wikitextMode := opts.wikitext || (cfg != nil && cfg.Wikitext)

	builder := zhconv.NewBuilderFromBuiltin(target)
	ruleLines := opts.rules
	if cfg != nil {
		ruleLines = append(append([]string{}, cfg.Rules...), ruleLines...)
	}
	builder.ConvLines(ruleLines)
	ruleFiles := append([]string{}, opts.ruleFiles...)
	if cfg != nil {
		ruleFiles = append(cfg.RuleFiles, ruleFiles...)
	}
	for _, path := range ruleFiles {
		lines, err := readLines(path)
		if err != nil {
			return fmt.Errorf("reading rules file %s: %w", path, err)
		}
		builder.ConvLines(lines)
	}

	if opts.dumpTable {
		return dumpTable(cmd.OutOrStdout(), builder)
	}

	converter := builder.Build()
	convertText := converter.Convert
	if wikitextMode {
		convertText = func(s string) string { return wikitext.ConvertExtended(converter, s) }
	}

	if len(files) == 0 {
		return convertStream(cmd.InOrStdin(), cmd.OutOrStdout(), convertText)
	}
	return convertFiles(files, opts.jobs, opts.progress, convertText)
}

// resolveVariant leniently normalizes raw (which may be an underscore form like "zh_TW" or
// carry extra BCP-47 subtags) through golang.org/x/text/language before handing it to the
// strict variant.Parse, so minor spelling variance in the CLI argument is forgiven.
func resolveVariant(raw string) (variant.Variant, error) {
	if tag, err := language.Parse(raw); err == nil {
		if v, err := variant.Parse(tag.String()); err == nil {
			return v, nil
		}
	}
	return variant.Parse(raw)
}

func readLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return strings.Split(string(data), "\n"), nil
}

func dumpTable(w io.Writer, builder *zhconv.Builder) error {
	bw := bufio.NewWriter(w)
	for _, p := range builder.Dump() {
		if _, err := fmt.Fprintf(bw, "%s\t%s\n", p.From, p.To); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func convertStream(in io.Reader, out io.Writer, convert func(string) string) error {
	data, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}
	converted := convert(string(data))
	if opts.copyClip {
		if err := clipboard.WriteAll(converted); err != nil {
			printWarning("zhconv: could not copy to clipboard: %v\n", err)
		}
	}
	_, err = io.WriteString(out, converted)
	return err
}

// convertFiles converts each file in place via a temp file in the same directory and an atomic
// rename, bounding concurrency to opts.jobs so a large file list doesn't exhaust file
// descriptors or thrash disk I/O. With showProgress, a TaskProgress bar tracks completions
// across the concurrent workers.
func convertFiles(files []string, jobs int, showProgress bool, convert func(string) string) error {
	if jobs < 1 {
		jobs = 1
	}
	tp := util.NewTaskProgress("converting", len(files), showProgress)
	var done int64
	g := new(errgroup.Group)
	g.SetLimit(jobs)
	for _, f := range files {
		f := f
		g.Go(func() error {
			err := convertFileInPlace(f, convert)
			tp.Update(int(atomic.AddInt64(&done, 1)))
			return err
		})
	}
	err := g.Wait()
	tp.Finish()
	return err
}

func convertFileInPlace(path string, convert func(string) string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	converted := convert(string(data))

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".zhconv-*")
	if err != nil {
		return fmt.Errorf("%s: creating temp file: %w", path, err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath) // no-op once the rename below succeeds

	if _, err := tmp.WriteString(converted); err != nil {
		tmp.Close()
		return fmt.Errorf("%s: writing temp file: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%s: closing temp file: %w", path, err)
	}
	if err := os.Chmod(tmpPath, info.Mode()); err != nil {
		return fmt.Errorf("%s: preserving file mode: %w", path, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("%s: renaming into place: %w", path, err)
	}
	return nil
}
