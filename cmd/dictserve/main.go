// Copyright 2025 The DictServe Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the dictionary translation server and its CLI.

DictServe loads an English to French word list into a balanced search tree
and answers lookups, spelling corrections and prefix completions. It runs as
a MessagePack IPC server for editors and scripts, or as an interactive CLI
that translates phrases word by word.

# Usage

Start the server with the default dictionary:

	dictserve

Use another dictionary file and enable debug logs:

	dictserve -dict /path/to/dictionnaire.txt -d

Run the interactive translator:

	dictserve -c

# Dictionary file

One entry per line, the English word and its translation separated by a TAB.
Lines starting with '#' are ignored:

	book	livre[Noun]
	bank	(river) rive, berge[Noun]

Only the first translation of each line is kept. A word listed on several
lines collects every translation in file order.

# Configuration

Runtime configuration lives in a TOML file, created with defaults when
missing:

	[server]
	max_word_len = 60
	max_prefix_results = 24
	enable_filter = true
	reload_every = 100

	[dict]
	path = "data/dictionnaire.txt"

	[suggest]
	cache_enabled = true
	cache_ttl_seconds = 1800

Server mode reloads the file every reload_every requests.

# IPC Protocol

The server speaks MessagePack over stdin/stdout. See package server for the
request and response shapes:

	{"id": "r1", "op": "translate", "w": "book"}
	{"id": "r1", "s": [{"w": "livre", "r": 1}], "c": 1, "t": 9}

Logs are written to stderr so they never mix with responses.

# Command Line Flags

	-dict string
	    Dictionary file (default from config)
	-config string
	    Config file path (default [UserConfigDir]/dictserve/config.toml)
	-d  Enable debug mode with detailed logging
	-c  Run the interactive CLI instead of the server
	-rebuild-config
	    Overwrite the default config file with built-in defaults
	-version
	    Show current version
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bastiangx/dictserve/internal/cli"
	"github.com/bastiangx/dictserve/internal/logger"
	"github.com/bastiangx/dictserve/internal/utils"
	"github.com/bastiangx/dictserve/pkg/config"
	"github.com/bastiangx/dictserve/pkg/loader"
	"github.com/bastiangx/dictserve/pkg/server"
	"github.com/bastiangx/dictserve/pkg/translator"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "0.1.0"
	AppName = "dictserve"
	gh      = "https://github.com/bastiangx/dictserve"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main wires config, dictionary loading and the selected front end.
func main() {
	sigHandler()

	showVersion := flag.Bool("version", false, "Show current version")
	dictPath := flag.String("dict", "", "Dictionary file (default from config)")
	configPath := flag.String("config", "", "Config file path")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run the interactive CLI")
	rebuildConfig := flag.Bool("rebuild-config", false, "Overwrite the default config file with built-in defaults")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	if *rebuildConfig {
		if err := config.RebuildConfigFile(); err != nil {
			log.Fatalf("Failed to rebuild config: %v", err)
		}
		path, _ := config.GetDefaultConfigPath()
		log.Printf("Config rebuilt at %s", path)
		os.Exit(0)
	}

	appConfig, usedConfigPath, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Debugf("Using config file: (%s)", config.GetActiveConfigPath(usedConfigPath))

	pathResolver, err := utils.NewPathResolver()
	if err != nil {
		log.Fatalf("Failed to initialize path resolver: %v", err)
	}

	requested := appConfig.Dict.Path
	if *dictPath != "" {
		requested = *dictPath
	}
	resolvedDict := pathResolver.GetDictPath(requested)
	log.Debugf("Using dictionary at: %s", resolvedDict)

	tr := translator.New(translator.Options{
		BloomSize:    uint(appConfig.Dict.BloomSize),
		BloomHashes:  uint(appConfig.Dict.BloomHashes),
		CacheEnabled: appConfig.Suggest.CacheEnabled,
		CacheTTL:     appConfig.Suggest.CacheTTL(),
		CacheCleanup: appConfig.Suggest.CacheCleanup(),
	})

	stats, err := loader.LoadFile(resolvedDict, tr, loader.Options{
		Progress:       *cliMode && appConfig.CLI.ShowProgress,
		ProgressWriter: os.Stderr,
	})
	if err != nil {
		log.Fatalf("Failed to load dictionary: %v", err)
	}
	log.Debug("Dictionary loaded",
		"lines", stats.Lines,
		"entries", stats.Entries,
		"skipped", stats.Skipped,
		"words", tr.Stats()["words"])

	if *cliMode {
		log.SetReportTimestamp(false)
		inputHandler := cli.NewInputHandler(tr, os.Stdin, os.Stdout, appConfig.CLI.MaxPhraseWords)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	log.Debug("spawning IPC")
	srv := server.NewServer(tr, appConfig, usedConfigPath)
	showStartupInfo(resolvedDict, tr.Stats()["words"])

	if err := srv.Start(); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}

func printVersion() {
	banner := logger.NewWithConfig("", log.InfoLevel, false, false, log.TextFormatter)

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"}).
		Background(lipgloss.AdaptiveColor{Light: "#f2e9e1", Dark: "#26233a"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	banner.SetStyles(styles)

	banner.Print("")
	banner.Print("[ DictServe ] English to French lookups, corrections and completions")
	banner.Print("", "version", Version)
	banner.Print("")
	banner.Print("use -h or --help to see available options")
	banner.Print("Github Repo", "gh", gh)
}

// showStartupInfo prints basic init info to stderr.
func showStartupInfo(dictPath string, words int) {
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	log.Info("===========")
	log.Info(" DictServe ")
	log.Info("===========")
	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", os.Getpid())
	log.Infof("dictionary: ( %s ), %d words", dictPath, words)
	log.Info("status: ready")

	log.SetLevel(currentLevel)
}
