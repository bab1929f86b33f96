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
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"io/ioutil"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/golang/glog"
	"github.com/hashicorp/vault/api"
)

// VaultAuth is the auth option selecting the login method
const VaultAuth = "method"

// AuthInterface is the authentication interface
type AuthInterface interface {
	// Create retrieves a token for the client
	Create(map[string]string) (string, error)
}

// needsVault checks if any of the resources are stored in vault
func needsVault(items []*secretResource) bool {
	for _, rn := range items {
		if rn.vaultPath != "" {
			return true
		}
	}

	return false
}

// storeSecret writes the generated secret to the vault path of the resource
//	client		: an authenticated vault client
//	rn			: the resource the secret was generated for
//	data		: the generated secret
func storeSecret(client *api.Client, rn *secretResource, data map[string]interface{}) error {
	params := data
	// version 2 of the kv store expects the secret under a data key
	if rn.kv2 {
		params = map[string]interface{}{"data": data}
	}
	glog.V(3).Infof("storing the resource: %s at the vault path: %s", rn, rn.vaultPath)

	if _, err := client.Logical().Write(rn.vaultPath, params); err != nil {
		return fmt.Errorf("unable to store the resource: %s in vault, error: %s", rn, err)
	}

	return nil
}

// newVaultClient creates and authenticates a vault client
func newVaultClient(opts *config) (*api.Client, error) {
	var err error

	config := api.DefaultConfig()
	config.Address = opts.vaultURL

	config.HttpClient.Transport, err = buildHTTPTransport(opts)
	if err != nil {
		return nil, err
	}

	// step: create the actual client
	client, err := api.NewClient(config)
	if err != nil {
		return nil, err
	}

	var token string
	plugin := opts.vaultAuthOptions[VaultAuth]
	switch plugin {
	case "userpass":
		token, err = NewUserPassPlugin(client).Create(opts.vaultAuthOptions)
	case "approle":
		token, err = NewAppRolePlugin(client).Create(opts.vaultAuthOptions)
	case "kubernetes":
		token, err = NewKubernetesPlugin(client).Create(opts.vaultAuthOptions)
	case "aws-ec2":
		token, err = NewAWSEC2Plugin(client).Create(opts.vaultAuthOptions)
	case "gcp-gce":
		token, err = NewGCPGCEPlugin(client).Create(opts.vaultAuthOptions)
	case "ibmcloud":
		token, err = NewIBMCloudPlugin(client).Create(opts.vaultAuthOptions)
	case "", "token":
		token, err = NewUserTokenPlugin(client).Create(opts.vaultAuthOptions)
	default:
		return nil, fmt.Errorf("unsupported authentication plugin: %s", plugin)
	}
	if err != nil {
		return nil, err
	}

	// step: set the token for the client
	client.SetToken(token)

	return client, nil
}

// logicalPath strips the leading slash and /v1 prefix, the logical client adds them itself
func logicalPath(path string) string {
	return strings.TrimPrefix(strings.TrimPrefix(path, "/"), "v1/")
}

// fetchMetadata reads an identity document from a cloud metadata service
//	url			: the metadata endpoint
//	headers		: any headers the metadata service insists on
func fetchMetadata(url string, headers map[string]string) ([]byte, error) {
	request, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	for k, v := range headers {
		request.Header.Set(k, v)
	}
	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(request)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("the metadata service: %s returned status: %d", url, resp.StatusCode)
	}

	return ioutil.ReadAll(resp.Body)
}

// buildHTTPTransport constructs a http transport for the http client
func buildHTTPTransport(opts *config) (*http.Transport, error) {
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 10 * time.Second,
		}).DialContext,
		TLSHandshakeTimeout: 10 * time.Second,
		TLSClientConfig: &tls.Config{
			InsecureSkipVerify: opts.skipTLSVerify,
		},
	}
	if opts.skipTLSVerify {
		glog.Warning("skipping TLS verification is not recommended")
	}
	// step: are we loading a CA file
	if opts.vaultCaFile != "" {
		glog.V(3).Infof("loading the ca certificate: %s", opts.vaultCaFile)
		caCert, err := ioutil.ReadFile(opts.vaultCaFile)
		if err != nil {
			return nil, fmt.Errorf("unable to read in the ca: %s, reason: %s", opts.vaultCaFile, err)
		}
		caCertPool := x509.NewCertPool()
		caCertPool.AppendCertsFromPEM(caCert)
		transport.TLSClientConfig.RootCAs = caCertPool
	}

	return transport, nil
}
