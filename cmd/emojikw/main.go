/*
Command emojikw merges keyword annotations into an emoji dataset.

Usage

   emojikw [-v] [-emoji file] [-words file] [-o file] [-locale tag|auto]

Without arguments, emojikw reads "emoji.json" and "words.json" from the
current directory and writes "emojis_with_keywords.json". Defaults may be
changed by a configuration file or by environment variables, see package
internal/config. Flag -locale selects language-specific case mappings for
display names; "auto" uses the locale of the user.

On success, emojikw prints the name of the output file and the number of
records processed. On failure, it prints the error and exits with status 1.

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/npillmayer/emojikw"
	"github.com/npillmayer/emojikw/internal/config"
)

var logger = log.New(os.Stderr, "emojikw: ", log.LstdFlags)

func main() {
	doVerbose := flag.Bool("v", false, "verbose output mode")
	emojiFile := flag.String("emoji", "", "emoji dataset (default \"emoji.json\")")
	wordsFile := flag.String("words", "", "keyword dataset (default \"words.json\")")
	outFile := flag.String("o", "", "output file (default \"emojis_with_keywords.json\")")
	locale := flag.String("locale", "", "language for name capitalization, or \"auto\" (default \"und\")")
	flag.Parse()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	flags := map[string]string{
		config.KeyEmoji:  *emojiFile,
		config.KeyWords:  *wordsFile,
		config.KeyOutput: *outFile,
		config.KeyLocale: *locale,
	}
	if err := run(ctx, flags, *doVerbose, os.Stdout); err != nil {
		logger.Printf("execution failed: %v", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, flags map[string]string, verbose bool, w io.Writer) error {
	conf, err := config.Load(flags)
	if err != nil {
		return err
	}
	if err = conf.SetupTracing(verbose); err != nil {
		return err
	}
	opts, err := conf.Options()
	if err != nil {
		return err
	}
	if verbose {
		logger.Printf("merging %s and %s", opts.EmojiPath, opts.WordsPath)
	}
	stats, err := emojikw.Convert(ctx, opts)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Converted file created: %s\n", opts.OutputPath)
	fmt.Fprintf(w, "Total entries in %s: %d\n", opts.EmojiPath, stats.Total)
	fmt.Fprintf(w, "Entries with keywords added: %d\n", stats.WithKeywords)
	return nil
}
