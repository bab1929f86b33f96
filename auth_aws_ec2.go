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
	"io/ioutil"
	"os"
	"strings"

	"github.com/hashicorp/vault/api"
)

// aws ec2 authentication plugin
type authAWSEC2Plugin struct {
	// the vault client
	client *api.Client
}

// NewAWSEC2Plugin creates a new AWS EC2 plugin
func NewAWSEC2Plugin(client *api.Client) AuthInterface {
	return &authAWSEC2Plugin{
		client: client,
	}
}

// Create logs in with the signed identity document of the instance
func (r authAWSEC2Plugin) Create(cfg map[string]string) (string, error) {
	role := cfg["role"]
	if role == "" {
		role = os.Getenv("PASSGEN_VAULT_ROLE")
	}

	metadataURL := getEnv("PASSGEN_AWS_METADATA_URL", "http://169.254.169.254")
	identity, err := fetchMetadata(metadataURL+"/latest/dynamic/instance-identity/pkcs7", nil)
	if err != nil {
		return "", err
	}
	payload := map[string]interface{}{
		"role":  role,
		"pkcs7": strings.Replace(string(identity), "\n", "", -1),
	}

	// the nonce lets the instance log in again after the first time
	nonceFile := cfg["nonce_file"]
	if nonceFile == "" {
		nonceFile = os.Getenv("PASSGEN_VAULT_NONCE_FILE")
	}
	if nonceFile != "" {
		nonce, err := ioutil.ReadFile(nonceFile)
		if err != nil {
			return "", err
		}
		if n := strings.TrimSpace(string(nonce)); n != "" {
			payload["nonce"] = n
		}
	}

	secret, err := r.client.Logical().Write("auth/aws/login", payload)
	if err != nil {
		return "", err
	}

	return clientToken(secret)
}
