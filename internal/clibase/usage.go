package clibase

import (
	"flag"
	"fmt"
	"io"

	"strtrace/internal/version"
)

// UsageCommon installs the Usage() handler on fs.
// extra prints tool-specific sections (usage lines, notes).
func UsageCommon(fs *flag.FlagSet, name string, extra func(out io.Writer, def func(string) string)) {
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		// Header
		fmt.Fprintf(out, "%s: traced exact-match (KMP) and rolling-hash (Rabin-Karp) search\n\n", name)
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)

		if extra != nil {
			extra(out, def)
		}

		fmt.Fprintln(out, "\nInput:")
		fmt.Fprintln(out, "  -t, --text string           Text to search [*]")
		fmt.Fprintln(out, "  -p, --pattern string        Pattern to search for [*]")
		fmt.Fprintln(out, "      --cases file            Case TSV (id text pattern [base modulus]), repeatable, or '-'")

		fmt.Fprintln(out, "\nAlgorithm:")
		fmt.Fprintf(out, "  -a, --algorithm string      kmp | rabin-karp | both [%s]\n", def("algorithm"))
		fmt.Fprintf(out, "      --base int              Rolling-hash base [%s]\n", def("base"))
		fmt.Fprintf(out, "      --modulus int           Rolling-hash modulus [%s]\n", def("modulus"))

		fmt.Fprintln(out, "\nPerformance:")
		fmt.Fprintf(out, "      --threads int           Worker threads (0=all CPUs) [%s]\n", def("threads"))

		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintf(out, "  -o, --output string         Output: json | jsonl | text [%s]\n", def("output"))
		fmt.Fprintf(out, "      --pretty                ASCII replay block after each row (text) [%s]\n", def("pretty"))
		fmt.Fprintf(out, "      --no-steps              Omit step traces (json, jsonl) [%s]\n", def("no-steps"))
		fmt.Fprintf(out, "      --matched-only          Emit only results with a match [%s]\n", def("matched-only"))
		fmt.Fprintf(out, "      --no-header             Suppress header line [%s]\n", def("no-header"))
		fmt.Fprintf(out, "      --no-match-exit-code int  Exit code when nothing matched [%s]\n", def("no-match-exit-code"))

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintf(out, "  -q, --quiet                 Log errors only [%s]\n", def("quiet"))
		fmt.Fprintln(out, "      --examples              Print usage examples and exit")
		fmt.Fprintln(out, "  -v, --version               Print version and exit")
		fmt.Fprintln(out, "  -h, --help                  Show this help and exit")

		fmt.Fprintln(out, "\nEnvironment:")
		fmt.Fprintln(out, "  STRTRACE_BASE, STRTRACE_MODULUS, STRTRACE_THREADS   flag defaults")
		fmt.Fprintln(out, "  STRTRACE_LOG_LEVEL (debug|info|warn|error), STRTRACE_LOG_FORMAT (text|json)")
		fmt.Fprintln(out, "  STRTRACE_OTEL_ENDPOINT, STRTRACE_OTEL_ENABLED      OTLP/HTTP trace export")
	}
}
