/*
Package config assembles the application configuration of emojikw.

Configuration values are taken from, in increasing order of precedence:

   1. built-in defaults
   2. a NestedText configuration file at a natural location for app tag
      "emojikw", e.g. $HOME/.config/emojikw/config.nt
   3. environment variables with prefix EMOJIKW_ (EMOJIKW_OUTPUT sets key
      "output", EMOJIKW_TRACELEVEL_ROOT sets "tracelevel.root")
   4. command-line flags

A configuration file might look like this:

   emoji: data/emoji.json
   words: data/words.json
   locale: auto
   tracelevel:
       root: Error
       emojikw:
           keywords: Debug

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/npillmayer/emojikw"
	"github.com/npillmayer/emojikw/names"
	"github.com/npillmayer/schuko/schukonf/koanfadapter"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
)

// AppTag identifies the application's configuration files.
const AppTag = "emojikw"

const envPrefix = "EMOJIKW_"

// Configuration keys.
const (
	KeyEmoji  = "emoji"
	KeyWords  = "words"
	KeyOutput = "output"
	KeyLocale = "locale"
)

// TracePrefix is the key prefix for trace levels, as in "tracelevel.root".
const TracePrefix = "tracelevel"

// Tracers lists the tracers used throughout emojikw.
var Tracers = []string{
	"emojikw.run",
	"emojikw.unified",
	"emojikw.names",
	"emojikw.record",
	"emojikw.keywords",
	"emojikw.source",
}

func defaults() map[string]interface{} {
	d := map[string]interface{}{
		KeyEmoji:          "emoji.json",
		KeyWords:          "words.json",
		KeyOutput:         "emojis_with_keywords.json",
		KeyLocale:         "und",
		"tracing.adapter": "go",
		"tracelevel.root": "Info",
	}
	for _, t := range Tracers {
		d[TracePrefix+"."+t] = "Error"
	}
	return d
}

// Config is the application configuration. It implements schuko.Configuration.
type Config struct {
	*koanfadapter.KConf
}

// Load creates the application configuration. flags holds values from the
// command line and override all other sources; empty values are ignored.
func Load(flags map[string]string) (*Config, error) {
	return load(AppTag, flags)
}

// load does not look for configuration files if appTag is empty.
func load(appTag string, flags map[string]string) (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}
	kc := koanfadapter.New(k, appTag, []string{"nt"})
	kc.InitDefaults()
	if err := k.Load(env.Provider(envPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}
	for key, value := range flags {
		if value != "" {
			kc.Set(key, value)
		}
	}
	return &Config{KConf: kc}, nil
}

// envKey maps EMOJIKW_TRACELEVEL_ROOT to tracelevel.root .
func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "_", ".")
}

// Options extracts the options for a conversion run.
func (c *Config) Options() (emojikw.Options, error) {
	tag, err := names.ParseLocale(c.GetString(KeyLocale))
	if err != nil {
		return emojikw.Options{}, fmt.Errorf("configuration key %q: %w", KeyLocale, err)
	}
	opts := emojikw.Options{
		EmojiPath:  c.GetString(KeyEmoji),
		WordsPath:  c.GetString(KeyWords),
		OutputPath: c.GetString(KeyOutput),
		Language:   tag,
	}
	for key, v := range map[string]string{
		KeyEmoji:  opts.EmojiPath,
		KeyWords:  opts.WordsPath,
		KeyOutput: opts.OutputPath,
	} {
		if v == "" {
			return opts, fmt.Errorf("configuration key %q must not be empty", key)
		}
	}
	return opts, nil
}

// SetupTracing registers the Go log adapter and configures all tracers from
// c. If verbose is set, all tracers of emojikw trace at level Debug.
func (c *Config) SetupTracing(verbose bool) error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	if verbose {
		for _, t := range Tracers {
			c.Set(TracePrefix+"."+t, "Debug")
		}
	}
	if err := trace2go.ConfigureRoot(c, TracePrefix, trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	return nil
}
