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
	"io/ioutil"
	"os"
	"strings"

	"github.com/hashicorp/vault/api"
)

// the kubernetes authentication plugin
type authKubernetesPlugin struct {
	// vault client
	client *api.Client
}

// NewKubernetesPlugin creates a new Kubernetes plugin
func NewKubernetesPlugin(client *api.Client) AuthInterface {
	return &authKubernetesPlugin{
		client: client,
	}
}

// Create logs in with the service account token of the pod
func (r authKubernetesPlugin) Create(cfg map[string]string) (string, error) {
	role := cfg["role"]
	if role == "" {
		role = os.Getenv("PASSGEN_VAULT_ROLE")
	}
	if role == "" {
		return "", fmt.Errorf("no role provided for the kubernetes login, set PASSGEN_VAULT_ROLE")
	}

	// in case you mounted your kubernetes auth engine somewhere else
	loginPath := cfg["login_path"]
	if loginPath == "" {
		loginPath = getEnv("VAULT_K8S_LOGIN_PATH", "auth/kubernetes/login")
	}
	tokenPath := cfg["token_path"]
	if tokenPath == "" {
		tokenPath = getEnv("VAULT_K8S_TOKEN_PATH", "/var/run/secrets/kubernetes.io/serviceaccount/token")
	}

	// read the JWT from the token file
	jwt, err := ioutil.ReadFile(tokenPath)
	if err != nil {
		return "", fmt.Errorf("unable to read the service account token: %s, error: %s", tokenPath, err)
	}

	secret, err := r.client.Logical().Write(logicalPath(loginPath), map[string]interface{}{
		"role": role,
		"jwt":  strings.TrimSpace(string(jwt)),
	})
	if err != nil {
		return "", err
	}

	return clientToken(secret)
}
