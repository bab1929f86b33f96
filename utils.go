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
	"encoding/json"
	"flag"
	"fmt"
	"io/ioutil"
	"os"
	"path"
	"sort"

	"github.com/fatih/color"
	"gopkg.in/yaml.v2"
)

// showUsage prints the command usage and exits
//	message		: an error message to display if exiting with an error
func showUsage(message string, args ...interface{}) {
	flag.PrintDefaults()
	if message != "" {
		color.Red("\n[error] "+message+"\n", args...)
		os.Exit(1)
	}

	os.Exit(0)
}

// getKeys retrieves a sorted list of keys from the map
// 	data		: the map which you wish to extract the keys from
func getKeys(data map[string]interface{}) []string {
	var list []string
	for key := range data {
		list = append(list, key)
	}
	sort.Strings(list)

	return list
}

// readConfigFile read in a configuration file
//	filename		: the path to the file
func readConfigFile(filename string) (map[string]string, error) {
	data := make(map[string]string, 0)
	if err := decodeFile(filename, &data); err != nil {
		return nil, err
	}

	return data, nil
}

// decodeFile reads in a json or yaml file and unmarshalls the content into v
//	filename		: the path to the file
//	v				: a pointer to the value to fill
func decodeFile(filename string, v interface{}) error {
	// step: check the file exists
	if exists, err := fileExists(filename); !exists {
		return fmt.Errorf("the file: %s does not exist", filename)
	} else if err != nil {
		return err
	}
	content, err := ioutil.ReadFile(filename)
	if err != nil {
		return err
	}

	// step: we only read in json or yaml formats
	switch path.Ext(filename) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(content, v)
	default:
		return json.Unmarshal(content, v)
	}
}

// getEnv checks to see if an environment variable exists otherwise uses the default
//	env			: the name of the environment variable you are checking for
//	value		: the default value to return if the value is not there
func getEnv(env, value string) string {
	if v := os.Getenv(env); v != "" {
		return v
	}

	return value
}

// fileExists checks to see if a file exists
//	filename		: the full path to the file you are checking for
func fileExists(filename string) (bool, error) {
	if _, err := os.Stat(filename); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}
