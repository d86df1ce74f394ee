package cli

import (
	"flag"
	"fmt"
	"io"

	"strtrace/internal/clibase"
)

// NewFlagSet returns a ContinueOnError FlagSet with the strtrace usage text.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, func(out io.Writer, _ func(string) string) {
		fmt.Fprintln(out, "Usage:")
		fmt.Fprintf(out, "  %s -t TEXT -p PATTERN [flags]\n", name)
		fmt.Fprintf(out, "  %s [flags] CASES.tsv [CASES.tsv ...]\n", name)
	})
	return fs
}

// PrintExamples writes the --examples quickstart.
func PrintExamples(out io.Writer, name string) {
	clibase.PrintExamples(out, name, func(w io.Writer) {
		fmt.Fprintf(w, "  # full JSON trace of both algorithms\n")
		fmt.Fprintf(w, "  %s -t ABABDABACDABABCABAB -p ABABCABAB\n\n", name)
		fmt.Fprintf(w, "  # one summary row per run with ASCII replay\n")
		fmt.Fprintf(w, "  %s -t GEEKSFORGEEKS -p GEEK -o text --pretty\n\n", name)
		fmt.Fprintf(w, "  # rolling hash only, tiny modulus to provoke spurious hits\n")
		fmt.Fprintf(w, "  %s -t AABAACAADAABAABA -p AABA -a rabin-karp --modulus 7\n\n", name)
		fmt.Fprintf(w, "  # batch of cases, summaries as JSON Lines\n")
		fmt.Fprintf(w, "  %s --no-steps -o jsonl cases.tsv\n", name)
	})
}
