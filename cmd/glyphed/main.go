// Command glyphed inspects YAML workspace dumps: glyph metadata, side
// bearings, and resolved kerning. It is the command-line companion to the
// editing engine, useful for scripting checks against a font without
// opening an editor.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
