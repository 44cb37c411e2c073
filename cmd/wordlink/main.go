package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/idilsaglam/wordlink/internal/cli"
)

func main() {
	// Root flags (apply to every subcommand)
	configPath := flag.String("config", "", "YAML config file")
	wordSource := flag.String("words", "", "word list file or http(s) URL")
	timer := flag.Bool("timer", false, "start with the round countdown on")
	style := flag.String("style", "", "classic, neon or mono")
	export := flag.String("export", "", "write the session log to this JSON file on quit")
	flag.Usage = cli.PrintHelp
	flag.Parse()

	opt := cli.Options{
		ConfigPath: *configPath,
		Words:      *wordSource,
		Style:      *style,
		Export:     *export,
	}
	// -timer only overrides the config when given explicitly
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "timer" {
			opt.Timer = timer
		}
	})

	code := cli.Run(flag.Args(), opt)
	if code != 0 {
		fmt.Fprintln(os.Stderr)
	}
	os.Exit(code)
}
