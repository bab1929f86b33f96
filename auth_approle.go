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

	"github.com/hashicorp/vault/api"
)

// the approle authentication plugin
type authAppRolePlugin struct {
	client *api.Client
}

// NewAppRolePlugin creates a new App Role plugin
func NewAppRolePlugin(client *api.Client) AuthInterface {
	return &authAppRolePlugin{
		client: client,
	}
}

// Create logs in with the role id and secret id provided in the file or the environment
func (r authAppRolePlugin) Create(cfg map[string]string) (string, error) {
	roleID := cfg["role_id"]
	secretID := cfg["secret_id"]
	loginPath := cfg["login_path"]

	if roleID == "" {
		roleID = os.Getenv("PASSGEN_VAULT_ROLE_ID")
	}
	if secretID == "" {
		secretID = os.Getenv("PASSGEN_VAULT_SECRET_ID")
	}
	if loginPath == "" {
		loginPath = getEnv("VAULT_APPROLE_LOGIN_PATH", "auth/approle/login")
	}

	secret, err := r.client.Logical().Write(logicalPath(loginPath), map[string]interface{}{
		"role_id":   roleID,
		"secret_id": secretID,
	})
	if err != nil {
		return "", err
	}

	return clientToken(secret)
}
