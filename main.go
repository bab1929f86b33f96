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
	"os"

	"github.com/golang/glog"
	"github.com/hashicorp/vault/api"
	"golang.org/x/sync/errgroup"

	"github.com/UKHomeOffice/passgen-sidekick/generator"
	"github.com/UKHomeOffice/passgen-sidekick/metrics"
)

func main() {
	// step: parse and validate the command line / environment options
	if err := parseOptions(); err != nil {
		showUsage("invalid options, %s", err)
	}
	if options.metricsFile != "" {
		metrics.Init()
	}

	// step: create the generator, this fails when there is no secure random source
	gen, err := generator.New()
	if err != nil {
		glog.Fatalf("unable to create the generator: %s", err)
	}

	// step: create a client to vault if any resource is stored there
	var client *api.Client
	if needsVault(options.resources.items) {
		if client, err = newVaultClient(&options); err != nil {
			showUsage("unable to create the vault client: %s", err)
		}
	}

	// step: generate each of the resources, they are independent of one another
	group := new(errgroup.Group)
	group.SetLimit(options.concurrency)
	for _, rn := range options.resources.items {
		rn := rn
		group.Go(func() error {
			if err := processResource(gen, client, rn); err != nil {
				glog.Errorf("%s", err)
				return err
			}
			return nil
		})
	}
	failed := group.Wait() != nil

	if options.metricsFile != "" {
		if err := metrics.WriteTextfile(options.metricsFile); err != nil {
			glog.Errorf("unable to write the metrics file: %s, error: %s", options.metricsFile, err)
		}
	}
	glog.Flush()

	if failed {
		os.Exit(1)
	}
}
