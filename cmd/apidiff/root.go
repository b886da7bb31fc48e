// Copyright 2026 The apidiff Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/xerrors"

	"github.com/go-apidiff/apidiff"
	"github.com/go-apidiff/apidiff/internal/policy"
	"github.com/go-apidiff/apidiff/internal/reporter"
)

// config layers flags over environment over an optional config file:
// flags > APIDIFF_* env > ./apidiff.yaml.
type config struct {
	policyName string
	policyFile string
	format     string
	output     string
}

var cfg config

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "apidiff",
		Short:         "Compare two Go API surfaces and classify the change by semver impact",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&cfg.policyName, "policy", "default", "built-in policy: default, read-only, write-only")
	root.PersistentFlags().StringVar(&cfg.policyFile, "policy-file", "", "YAML file overriding individual category->release mappings")
	root.PersistentFlags().StringVar(&cfg.format, "format", "text", "output format: text, markdown, json")
	root.PersistentFlags().StringVar(&cfg.output, "output", "", "write the report to this file instead of stdout")

	_ = viper.BindPFlag("policy", root.PersistentFlags().Lookup("policy"))
	_ = viper.BindPFlag("policy-file", root.PersistentFlags().Lookup("policy-file"))
	_ = viper.BindPFlag("format", root.PersistentFlags().Lookup("format"))
	_ = viper.BindPFlag("output", root.PersistentFlags().Lookup("output"))
	viper.SetEnvPrefix("APIDIFF")
	viper.AutomaticEnv()
	viper.SetConfigName("apidiff")
	viper.AddConfigPath(".")
	_ = viper.ReadInConfig() // absence of a config file is not an error

	root.AddCommand(newCompareCmd(), newCompareAllCmd(), newSuggestCmd(), newWatchCmd())
	return root
}

// Execute is main's sole entry point into the CLI layer.
func Execute() error {
	return newRootCmd().Execute()
}

// resolvePolicy loads the --policy-file override when one is given; that
// file names its own base policy, and --policy is then not consulted.
// Otherwise it resolves the --policy built-in. Both values are read
// through viper so APIDIFF_POLICY or a config file can set them.
func resolvePolicy() (apidiff.Policy, error) {
	file := viper.GetString("policy-file")
	if file != "" {
		return policy.LoadOverrides(file)
	}
	name := viper.GetString("policy")
	pol, ok := apidiff.PolicyByName(name)
	if !ok {
		return nil, fmt.Errorf("unknown policy %q (want default, read-only, or write-only)", name)
	}
	return pol, nil
}

func readFile(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", xerrors.Errorf("reading %s: %w", path, err)
	}
	return string(b), nil
}

// writeReport renders r in the configured format and writes it to
// cfg.output, or stdout when unset.
func writeReport(r *apidiff.Report, reportID string) error {
	var w *os.File = os.Stdout
	if cfg.output != "" {
		f, err := os.Create(cfg.output)
		if err != nil {
			return xerrors.Errorf("creating %s: %w", cfg.output, err)
		}
		defer f.Close()
		w = f
	}

	switch strings.ToLower(viper.GetString("format")) {
	case "json":
		b, err := reporter.JSON(r, reportID)
		if err != nil {
			return err
		}
		_, err = w.Write(b)
		return err
	case "markdown", "md":
		doc, err := reporter.Markdown(r)
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(w, doc)
		return err
	default:
		reporter.Text(w, r, cfg.output == "")
		return nil
	}
}
