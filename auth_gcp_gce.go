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
	"fmt"
	"os"

	"github.com/hashicorp/vault/api"
)

// gcp authentication plugin
type authGCPGCEPlugin struct {
	// the vault client
	client *api.Client
}

// NewGCPGCEPlugin creates a new GCP GCE plugin
func NewGCPGCEPlugin(client *api.Client) AuthInterface {
	return &authGCPGCEPlugin{
		client: client,
	}
}

// Create logs in with an identity token minted by the instance metadata service
func (r authGCPGCEPlugin) Create(cfg map[string]string) (string, error) {
	role := cfg["role"]
	if role == "" {
		role = os.Getenv("PASSGEN_VAULT_ROLE")
	}

	// vault only parses vault/<role> from the audience
	url := fmt.Sprintf("http://%s/computeMetadata/v1/instance/service-accounts/default/identity?audience=http://localhost/vault/%s&format=full",
		getEnv("GCE_METADATA_HOST", "metadata"), role)
	jwt, err := fetchMetadata(url, map[string]string{"Metadata-Flavor": "Google"})
	if err != nil {
		return "", err
	}

	secret, err := r.client.Logical().Write("auth/gcp/login", map[string]interface{}{
		"role": role,
		"jwt":  string(jwt),
	})
	if err != nil {
		return "", err
	}

	return clientToken(secret)
}
