/*
Copyright 2015 Home Office All rights reserved.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package main

import (
	"flag"
	"fmt"
	"net/url"

	"github.com/fatih/color"
	"github.com/golang/glog"
	"github.com/joho/godotenv"
)

type config struct {
	// the url for the vault server
	vaultURL string
	// a file containing the authenticate options
	vaultAuthFile string
	// the authentication options
	vaultAuthOptions map[string]string
	// the vault ca file
	vaultCaFile string
	// skip tls verify
	skipTLSVerify bool
	// the place to write the resources
	outputDir string
	// switch on dry run
	dryRun bool
	// a file containing the generation defaults
	settingsFile string
	// a dotenv file to load the environment from
	envFile string
	// a file to write the prometheus metrics to
	metricsFile string
	// the number of resources generated at once
	concurrency int
	// the resource items to generate
	resources *SecretResources
	// the generation defaults
	settings *settings
}

var (
	options config
)

func init() {
	// step: setup some defaults
	options.resources = new(SecretResources)
	options.vaultAuthOptions = make(map[string]string, 0)

	flag.StringVar(&options.vaultURL, "vault", "", "url the vault service or VAULT_ADDR, only used by resources with a vault option")
	flag.StringVar(&options.vaultAuthFile, "auth", "", "a configuration file in json or yaml containing authentication arguments")
	flag.StringVar(&options.vaultCaFile, "ca-cert", "", "the path to the file container the CA used to verify the vault service")
	flag.BoolVar(&options.skipTLSVerify, "tls-skip-verify", false, "whether to check and verify the vault service certificate")
	flag.StringVar(&options.outputDir, "output", "", "the full path to write resources or PASSGEN_OUTPUT, printed to screen when empty")
	flag.BoolVar(&options.dryRun, "dryrun", false, "perform a dry run, printing the content to screen")
	flag.StringVar(&options.settingsFile, "settings", "", "a json or yaml file containing the generation defaults or PASSGEN_SETTINGS")
	flag.StringVar(&options.envFile, "env-file", ".env", "a dotenv file to load environment variables from, when present")
	flag.StringVar(&options.metricsFile, "metrics-file", "", "write prometheus metrics in the textfile format to this file")
	flag.IntVar(&options.concurrency, "concurrency", 4, "the number of resources generated at once")
	flag.Var(options.resources, "cn", "a resource to generate, TYPE:NAME[:KEY=VALUE,...], escape a literal : or , with a backslash")
}

// parseOptions validate the command line options and validates them
func parseOptions() error {
	flag.Parse()

	return validateOptions(&options)
}

// validateOptions parses and validates the command line options
func validateOptions(cfg *config) (err error) {
	// step: load the dotenv file, variables already in the environment win
	if cfg.envFile != "" {
		if exists, _ := fileExists(cfg.envFile); exists {
			glog.V(3).Infof("loading the environment file: %s", cfg.envFile)
			if err = godotenv.Load(cfg.envFile); err != nil {
				return fmt.Errorf("unable to load the environment file: %s, error: %s", cfg.envFile, err)
			}
		}
	}

	// step: fall back to the environment
	if cfg.vaultURL == "" {
		cfg.vaultURL = getEnv("VAULT_ADDR", "https://127.0.0.1:8200")
	}
	if cfg.outputDir == "" {
		cfg.outputDir = getEnv("PASSGEN_OUTPUT", "")
	}
	if cfg.settingsFile == "" {
		cfg.settingsFile = getEnv("PASSGEN_SETTINGS", "")
	}

	// step: validate the vault url
	if _, err = url.Parse(cfg.vaultURL); err != nil {
		return fmt.Errorf("invalid vault url: '%s' specified", cfg.vaultURL)
	}

	// step: read in the token if required
	if cfg.vaultAuthFile != "" {
		if exists, _ := fileExists(cfg.vaultAuthFile); !exists {
			return fmt.Errorf("the token file: %s does not exists, please check", cfg.vaultAuthFile)
		}
		cfg.vaultAuthOptions, err = readConfigFile(cfg.vaultAuthFile)
		if err != nil {
			return fmt.Errorf("unable to read in authentication options from: %s, error: %s", cfg.vaultAuthFile, err)
		}
		if v, found := cfg.vaultAuthOptions["vault_addr"]; found && v != "" {
			cfg.vaultURL = v
		}
	}

	if cfg.vaultCaFile != "" {
		if exists, _ := fileExists(cfg.vaultCaFile); !exists {
			return fmt.Errorf("the ca certificate file: %s does not exist", cfg.vaultCaFile)
		}
	}

	if cfg.skipTLSVerify && cfg.vaultCaFile != "" {
		return fmt.Errorf("you are skipping the tls but supplying a CA, doesn't make sense")
	}
	if cfg.skipTLSVerify {
		color.Yellow("Warning: skipping TLS verification of the vault service is not recommended")
	}

	if cfg.concurrency < 0 {
		return fmt.Errorf("the concurrency cannot be negative")
	}
	if cfg.concurrency == 0 {
		cfg.concurrency = 1
	}

	// step: read in the generation defaults
	cfg.settings = defaultSettings()
	if cfg.settingsFile != "" {
		if cfg.settings, err = readSettingsFile(cfg.settingsFile); err != nil {
			return err
		}
	}

	// step: with nothing requested we produce a single secret from the settings
	if cfg.resources == nil {
		cfg.resources = new(SecretResources)
	}
	if len(cfg.resources.items) == 0 {
		kind := ResourcePassword
		if cfg.settings.passphraseMode {
			kind = ResourcePassphrase
		}
		if err = cfg.resources.Set(kind + ":" + kind); err != nil {
			return err
		}
	}

	// step: validate each of the resources
	for _, rn := range cfg.resources.items {
		rn.applySettings(cfg.settings)
		if err = rn.isValid(); err != nil {
			return err
		}
	}

	return nil
}
