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

// the userpass authentication plugin
type authUserPassPlugin struct {
	client *api.Client
}

// NewUserPassPlugin creates a new User Pass plugin
func NewUserPassPlugin(client *api.Client) AuthInterface {
	return &authUserPassPlugin{
		client: client,
	}
}

// Create logs in with the username and password provided in the file or the environment
func (r authUserPassPlugin) Create(cfg map[string]string) (string, error) {
	// step: extract the options
	username := cfg["username"]
	password := cfg["password"]

	if username == "" {
		username = os.Getenv("PASSGEN_VAULT_USERNAME")
	}
	if password == "" {
		password = os.Getenv("PASSGEN_VAULT_PASSWORD")
	}
	if username == "" {
		return "", fmt.Errorf("no username provided for the userpass login")
	}

	secret, err := r.client.Logical().Write(fmt.Sprintf("auth/userpass/login/%s", username),
		map[string]interface{}{"password": password})
	if err != nil {
		return "", err
	}

	return clientToken(secret)
}

// clientToken extracts the token from a login response
func clientToken(secret *api.Secret) (string, error) {
	if secret == nil || secret.Auth == nil || secret.Auth.ClientToken == "" {
		return "", fmt.Errorf("the login response did not contain a client token")
	}

	return secret.Auth.ClientToken, nil
}
