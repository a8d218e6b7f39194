// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/cybrota/parlance/dictionary"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

// Global flags that override ~/.parlance.yaml
var (
	dictFlag   string
	sourceFlag string
)

func main() {
	InitializeColors()

	asciiLogo := `
██████╗  █████╗ ██████╗ ██╗      █████╗ ███╗   ██╗ ██████╗███████╗
██╔══██╗██╔══██╗██╔══██╗██║     ██╔══██╗████╗  ██║██╔════╝██╔════╝
██████╔╝███████║██████╔╝██║     ███████║██╔██╗ ██║██║     █████╗
██╔═══╝ ██╔══██║██╔══██╗██║     ██╔══██║██║╚██╗██║██║     ██╔══╝
██║     ██║  ██║██║  ██║███████╗██║  ██║██║ ╚████║╚██████╗███████╗
╚═╝     ╚═╝  ╚═╝╚═╝  ╚═╝╚══════╝╚═╝  ╚═╝╚═╝  ╚═══╝ ╚═════╝╚══════╝
Word-by-word translation with a balanced dictionary and spelling suggestions [Version: %s%s%s]

`

	asciiLogo = fmt.Sprintf(asciiLogo, Green, version, Reset)

	var cmdTranslate = &cobra.Command{
		Use:   "translate [sentence...]",
		Short: "Translate a sentence word by word",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Translate looks up every word of the sentence, asking for a choice when a word has several translations or is misspelled. Without arguments the sentence is read from stdin.`),
		Args:  cobra.MinimumNArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			config, dict := mustLoad(cmd.Context())
			c := NewSuggestionCache(cacheExpiration(config))

			translator := NewTranslator(dict, c, cmd.InOrStdin(), cmd.OutOrStdout())
			sentence := strings.Join(args, " ")
			if sentence == "" {
				var err error
				if sentence, err = translator.ReadSentence(); err != nil {
					return err
				}
			}

			translated, err := translator.TranslateSentence(sentence)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Translation: %s%s%s\n", Green, translated, Reset)
			return nil
		},
	}

	var cmdLookup = &cobra.Command{
		Use:   "lookup <word>",
		Short: "Print the translations of a word",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Lookup prints every translation of a word, or spelling suggestions when the word is unknown`),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, dict := mustLoad(cmd.Context())
			return printLookup(cmd.OutOrStdout(), dict, args[0])
		},
	}

	var cmdSuggest = &cobra.Command{
		Use:   "suggest <word>",
		Short: "Suggest dictionary words close to a misspelled word",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, fmt.Sprintf("Suggest lists up to %d dictionary words with a similarity of at least %.1f", dictionary.SuggestionLimit, dictionary.SuggestionThreshold)),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, dict := mustLoad(cmd.Context())
			for _, word := range dict.SuggestCorrections(args[0]) {
				fmt.Fprintln(cmd.OutOrStdout(), word)
			}
			return nil
		},
	}

	var cmdSimilarity = &cobra.Command{
		Use:   "similarity <a> <b>",
		Short: "Print the similarity score of two words",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "distance: %d\nsimilarity: %.4f\n",
				dictionary.LevenshteinDistance(args[0], args[1]),
				dictionary.Similarity(args[0], args[1]))
			return nil
		},
	}

	var cmdDump = &cobra.Command{
		Use:   "dump",
		Short: "Print the dictionary tree level by level",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Dump prints one "word, balance factor, path" line per node in breadth-first order`),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, dict := mustLoad(cmd.Context())
			without, _ := cmd.Flags().GetStringSlice("without")
			return dumpDictionary(cmd.OutOrStdout(), dict, without)
		},
	}
	cmdDump.Flags().StringSlice("without", nil, "delete these words before dumping")

	var cmdBrowse = &cobra.Command{
		Use:   "browse",
		Short: "Launches the interactive dictionary browser",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Browse opens a search box with live suggestions and translations`),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, dict := mustLoad(cmd.Context())
			return runBrowseApp(dict, NewSuggestionCache(cacheExpiration(config)))
		},
	}

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Display current configuration settings",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Settings displays the current configuration and creates a default config file if none exists`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			displaySettings(cmd.OutOrStdout(), effectiveConfig())
		},
	}

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print Parlance usage guide",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Usage displays the parlance CLI usage guide`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getHelpMessage())
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print Parlance version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:          "parlance",
		Version:      version,
		Long:         asciiLogo,
		SilenceUsage: true,
		Args:         cobra.MinimumNArgs(0),
		RunE:         cmdTranslate.RunE,
	}
	rootCmd.PersistentFlags().StringVar(&dictFlag, "dict", "", "dictionary file (tsv or sqlite), overrides dictionary.path")
	rootCmd.PersistentFlags().StringVar(&sourceFlag, "source", "", "dictionary source: tsv, sqlite or mysql")
	rootCmd.AddCommand(cmdTranslate, cmdLookup, cmdSuggest, cmdSimilarity, cmdDump, cmdBrowse, cmdSettings, cmdUsage, cmdVersion)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// effectiveConfig loads ~/.parlance.yaml and applies the global flags.
func effectiveConfig() *Config {
	config, err := LoadConfig()
	if err != nil {
		log.Printf("Failed to load configuration: %v. Using default settings.", err)
		defaults := defaultConfig()
		config = &defaults
	}
	if sourceFlag != "" {
		config.Dictionary.Source = sourceFlag
	}
	if dictFlag != "" {
		if config.Dictionary.Source == SourceMySQL {
			config.Dictionary.DSN = dictFlag
		} else {
			config.Dictionary.Path = dictFlag
		}
	}
	return config
}

// mustLoad loads the configured dictionary or exits.
func mustLoad(ctx context.Context) (*Config, *dictionary.Dictionary) {
	config := effectiveConfig()
	dict, _, err := loadDictionary(ctx, config)
	if err != nil {
		log.Fatalf("Error reading dictionary: %v", err)
	}
	return config, dict
}

func cacheExpiration(config *Config) time.Duration {
	return time.Duration(config.Suggestions.CacheMinutes) * time.Minute
}

// printLookup prints the translations of word, or what it could have meant.
func printLookup(w io.Writer, dict *dictionary.Dictionary, word string) error {
	if translations := dict.Translations(word); len(translations) > 0 {
		for i, t := range translations {
			fmt.Fprintf(w, "%d. %s\n", i+1, t)
		}
		return nil
	}

	suggestions := dict.SuggestCorrections(word)
	if len(suggestions) == 0 {
		return &dictionary.ErrNotFound{Word: word}
	}
	fmt.Fprintf(w, "%s'%s' is not in the dictionary.%s Did you mean:\n", Warning, word, Reset)
	for _, s := range suggestions {
		fmt.Fprintf(w, "  • %s\n", s)
	}
	return nil
}

// dumpDictionary deletes the given words, then writes the level order dump
// followed by a balance check and the word count.
func dumpDictionary(w io.Writer, dict *dictionary.Dictionary, without []string) error {
	for _, word := range without {
		err := dict.Delete(word)
		var notFound *dictionary.ErrNotFound
		switch {
		case errors.As(err, &notFound), errors.Is(err, dictionary.ErrEmptyDictionary):
			fmt.Fprintf(w, "%s%v%s\n", Warning, err, Reset)
		case err != nil:
			return err
		}
	}

	if err := dict.WriteLevelOrder(w); err != nil {
		return err
	}

	balanced := "yes"
	if !dict.IsBalanced() {
		balanced = "no"
	}
	fmt.Fprintf(w, "Balanced: %s\nWords: %d\n", balanced, dict.Size())
	return nil
}
