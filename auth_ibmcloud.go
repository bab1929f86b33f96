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

// IBMCloud auth plugin
type authIBMCloudPlugin struct {
	// vault client
	client *api.Client
}

// NewIBMCloudPlugin creates a new IBMCloud plugin
func NewIBMCloudPlugin(client *api.Client) AuthInterface {
	return &authIBMCloudPlugin{
		client: client,
	}
}

// Create logs in with an IAM token from the auth options or IAM_TOKEN
func (r authIBMCloudPlugin) Create(cfg map[string]string) (string, error) {
	iamToken := cfg["iam_token"]
	if iamToken == "" {
		iamToken = os.Getenv("IAM_TOKEN")
	}
	if iamToken == "" {
		return "", fmt.Errorf("no IAM token provided for the ibmcloud login")
	}

	secret, err := r.client.Logical().Write("auth/ibmcloud/login", map[string]interface{}{
		"token": iamToken,
	})
	if err != nil {
		return "", err
	}

	return clientToken(secret)
}
