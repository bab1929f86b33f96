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
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"text/template"

	"github.com/golang/glog"
	"gopkg.in/yaml.v2"
)

// resourceFileMode is the permission generated secrets are written with
const resourceFileMode = os.FileMode(0600)

// screenLock stops secrets printed from different resources interleaving
var screenLock sync.Mutex

// writeResource is responsible for generating the specific content from the resource
// 	rn			: a point to the secret resource
//	data		: a map of the generated secret associated to the resource
func writeResource(rn *secretResource, data map[string]interface{}) error {
	// step: determine the resource path
	resourcePath := rn.filename()
	if options.outputDir != "" && !filepath.IsAbs(resourcePath) {
		resourcePath = filepath.Join(options.outputDir, filepath.Base(resourcePath))
	}
	glog.V(10).Infof("writing the resource: %s, format: %s", resourcePath, rn.format)

	if templateFile, found := rn.options[OptionsTemplatePath]; found {
		return writeTemplateFile(resourcePath, data, resourceFileMode, templateFile)
	}

	switch rn.format {
	case "yaml":
		return writeYAMLFile(resourcePath, data, resourceFileMode)
	case "json":
		return writeJSONFile(resourcePath, data, resourceFileMode)
	case "ini":
		return writeIniFile(resourcePath, data, resourceFileMode)
	case "csv":
		return writeCSVFile(resourcePath, data, resourceFileMode)
	case "env":
		return writeEnvFile(resourcePath, data, resourceFileMode)
	case "txt":
		return writeTxtFile(resourcePath, data, resourceFileMode)
	}

	return fmt.Errorf("unknown output format: %s", rn.format)
}

func writeIniFile(filename string, data map[string]interface{}, mode os.FileMode) error {
	var buf bytes.Buffer
	for _, key := range getKeys(data) {
		buf.WriteString(fmt.Sprintf("%s = %v\n", key, data[key]))
	}

	return writeFile(filename, buf.Bytes(), mode)
}

func writeCSVFile(filename string, data map[string]interface{}, mode os.FileMode) error {
	var buf bytes.Buffer
	for _, key := range getKeys(data) {
		buf.WriteString(fmt.Sprintf("%s,%v\n", key, data[key]))
	}

	return writeFile(filename, buf.Bytes(), mode)
}

func writeYAMLFile(filename string, data map[string]interface{}, mode os.FileMode) error {
	// marshall the content to yaml
	content, err := yaml.Marshal(data)
	if err != nil {
		return err
	}

	return writeFile(filename, content, mode)
}

func writeEnvFile(filename string, data map[string]interface{}, mode os.FileMode) error {
	var buf bytes.Buffer
	for _, key := range getKeys(data) {
		name := strings.ToUpper(strings.Replace(key, "-", "_", -1))
		// a single quote inside the value would end the quoting early
		value := strings.Replace(fmt.Sprintf("%v", data[key]), "'", `'\''`, -1)
		buf.WriteString(fmt.Sprintf("%s='%s'\n", name, value))
	}

	return writeFile(filename, buf.Bytes(), mode)
}

func writeTxtFile(filename string, data map[string]interface{}, mode os.FileMode) error {
	keys := getKeys(data)
	if len(keys) > 1 {
		// step: for plain formats we need to iterate the keys and produce a file per key
		for _, suffix := range keys {
			name := fmt.Sprintf("%s.%s", filename, suffix)
			if err := writeFile(name, []byte(fmt.Sprintf("%v", data[suffix])), mode); err != nil {
				glog.Errorf("failed to write resource: %s, element: %s, filename: %s, error: %s",
					filename, suffix, name, err)
				continue
			}
		}
		return nil
	}
	if len(keys) == 0 {
		return fmt.Errorf("the resource: %s has no content", filename)
	}

	// step: we only have the one key, so will write plain
	content := []byte(fmt.Sprintf("%v", data[keys[0]]))

	return writeFile(filename, content, mode)
}

func writeJSONFile(filename string, data map[string]interface{}, mode os.FileMode) error {
	content, err := json.MarshalIndent(data, "", "    ")
	if err != nil {
		return err
	}

	return writeFile(filename, content, mode)
}

func writeTemplateFile(filename string, data map[string]interface{}, mode os.FileMode, templateFile string) error {
	tpl, err := template.ParseFiles(templateFile)
	if err != nil {
		return err
	}
	var templateOutput bytes.Buffer
	if err := tpl.Execute(&templateOutput, data); err != nil {
		return err
	}

	return writeFile(filename, templateOutput.Bytes(), mode)
}

// writeFile writes the file to stdout or an actual file
func writeFile(filename string, content []byte, mode os.FileMode) error {
	if options.dryRun || options.outputDir == "" {
		screenLock.Lock()
		defer screenLock.Unlock()
		if options.dryRun {
			glog.Infof("dry-run: filename: %s, content:", filename)
		}
		return printContent(os.Stdout, content)
	}
	glog.V(3).Infof("saving the file: %s", filename)

	return ioutil.WriteFile(filename, content, mode)
}

// printContent writes the content to w, making sure it ends with a newline
func printContent(w io.Writer, content []byte) error {
	if len(content) == 0 || content[len(content)-1] != '\n' {
		content = append(content, '\n')
	}
	_, err := w.Write(content)

	return err
}
