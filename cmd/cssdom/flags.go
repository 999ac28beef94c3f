package main

import "github.com/spf13/pflag"

// addWriteFlags registers the writer policy flags. Their keys are looked
// up before the write.* config keys.
func addWriteFlags(f *pflag.FlagSet) {
	f.String("target", "3.0", "Target CSS version: 1.0|2.1|3.0")
	f.Bool("optimized", false, "Compact output without optional whitespace")
	f.Bool("remove-unnecessary-code", false, "Drop rules without content")
	f.Bool("supports-rules", true, "Write @supports rules")
	f.Bool("media-rules", true, "Write @media rules")
	f.Bool("font-face-rules", true, "Write @font-face rules")
	f.Bool("import-rules", true, "Write @import rules")
	f.Bool("quote-urls", false, `Write url("x") instead of url(x)`)
	f.String("indent", "  ", "Indentation unit for pretty output")
}
