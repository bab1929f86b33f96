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
	"errors"
	"fmt"

	"github.com/golang/glog"
	"github.com/hashicorp/vault/api"
	"github.com/tyler-smith/go-bip39/wordlists"

	"github.com/UKHomeOffice/passgen-sidekick/generator"
	"github.com/UKHomeOffice/passgen-sidekick/metrics"
)

// wordLists are the vocabularies a passphrase can be drawn from, nil is the built in list
var wordLists = map[string][]string{
	"default": nil,
	"bip39":   wordlists.English,
}

// processResource generates the secret for the resource, writes it out and stores it in vault when asked
//	gen			: the generator to draw the secret from
//	client		: a vault client, only used when the resource has a vault path
//	rn			: the resource to generate
func processResource(gen *generator.Generator, client *api.Client, rn *secretResource) error {
	resourceID := rn.String()
	metrics.ResourceTotal(resourceID)

	data, err := generateResource(gen, rn)
	if err != nil {
		metrics.ResourceError(resourceID, "generate")
		metrics.Error(errorReason(err))
		return fmt.Errorf("failed to generate the resource: %s, error: %s", rn, err)
	}

	if err := writeResource(rn, data); err != nil {
		metrics.ResourceError(resourceID, "write")
		return fmt.Errorf("failed to write the resource: %s, error: %s", rn, err)
	}

	if rn.vaultPath != "" {
		if client == nil {
			metrics.ResourceError(resourceID, "vault")
			return fmt.Errorf("the resource: %s has a vault path but no vault client", rn)
		}
		if err := storeSecret(client, rn, data); err != nil {
			metrics.ResourceError(resourceID, "vault")
			return err
		}
	}
	metrics.ResourceSuccess(resourceID)

	return nil
}

// generateResource produces the secret for the resource, keyed by the resource name
func generateResource(gen *generator.Generator, rn *secretResource) (map[string]interface{}, error) {
	var value string
	var bits float64
	var err error

	switch rn.resource {
	case ResourcePassword:
		if value, err = gen.GeneratePassword(rn.password); err != nil {
			return nil, err
		}
		bits, _ = generator.EstimatePasswordEntropy(rn.password)
	case ResourcePassphrase:
		if value, err = gen.GeneratePassphrase(rn.passphrase); err != nil {
			return nil, err
		}
		bits = generator.EstimatePassphraseEntropy(rn.passphrase)
	default:
		return nil, fmt.Errorf("unsupported resource type: %s", rn.resource)
	}
	glog.V(3).Infof("generated the resource: %s, estimated entropy: %.1f bits", rn, bits)
	metrics.ResourceEntropy(rn.String(), bits)

	return map[string]interface{}{rn.name: value}, nil
}

// errorReason maps a generation failure onto a short label
func errorReason(err error) string {
	var empty *generator.EmptyCategoryError
	var short *generator.LengthTooShortError
	var violation *generator.ContractViolationError

	switch {
	case errors.As(err, &empty):
		return "empty_category"
	case errors.As(err, &short):
		return "length_too_short"
	case errors.As(err, &violation):
		return "contract_violation"
	case errors.Is(err, generator.ErrNoCategoryEnabled):
		return "no_category"
	case errors.Is(err, generator.ErrNoPool):
		return "no_pool"
	case errors.Is(err, generator.ErrCoverageUnsatisfiable):
		return "coverage"
	case errors.Is(err, generator.ErrNoDigitsAvailable):
		return "no_digits"
	case errors.Is(err, generator.ErrNoSymbolsAvailable):
		return "no_symbols"
	case errors.Is(err, generator.ErrUnavailable):
		return "unavailable"
	case errors.Is(err, generator.ErrConfiguration):
		return "configuration"
	}

	return "unknown"
}
