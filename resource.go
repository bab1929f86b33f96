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
	"regexp"
	"strconv"

	"github.com/golang/glog"

	"github.com/UKHomeOffice/passgen-sidekick/generator"
)

const (
	// OptionFilename ... option to set the filename of the resource
	OptionFilename = "fn"
	// OptionFormat ... option to set the output format (yaml, json, ini, csv, env, txt)
	OptionFormat = "fmt"
	// OptionsTemplatePath ... the full path to a template
	OptionsTemplatePath = "tpl"
	// OptionVaultPath ... a vault path to store the generated secret at
	OptionVaultPath = "vault"
	// OptionKV2 ... wrap the secret for a version 2 kv store
	OptionKV2 = "kv2"

	// OptionLength ... the length of a password
	OptionLength = "len"
	// OptionLower ... include lower case letters
	OptionLower = "lower"
	// OptionUpper ... include upper case letters
	OptionUpper = "upper"
	// OptionDigits ... include digits
	OptionDigits = "digits"
	// OptionSymbols ... include symbols
	OptionSymbols = "sym"
	// OptionNoRepeat ... forbid the same character twice in a row
	OptionNoRepeat = "norepeat"

	// OptionExcludeSimilar ... drop the look-alike characters
	OptionExcludeSimilar = "similar"
	// OptionNoAmbiguous ... drop the ambiguous symbols
	OptionNoAmbiguous = "ambig"

	// OptionWords ... the number of words in a passphrase
	OptionWords = "words"
	// OptionDelimiter ... the separator between the words
	OptionDelimiter = "delim"
	// OptionCapitalize ... capitalize each word
	OptionCapitalize = "cap"
	// OptionNumberWord ... swap a word for a digit
	OptionNumberWord = "num"
	// OptionSymbolWord ... swap a word for a symbol
	OptionSymbolWord = "symword"
	// OptionWordList ... the vocabulary to draw the words from
	OptionWordList = "wordlist"

	// ResourcePassword is a resource generating a password
	ResourcePassword = "password"
	// ResourcePassphrase is a resource generating a passphrase
	ResourcePassphrase = "passphrase"
)

var (
	resourceFormatRegex = regexp.MustCompile("^(yaml|json|ini|csv|env|txt)$")

	// a map of valid resources which can be generated
	validResources = map[string]bool{
		ResourcePassword:   true,
		ResourcePassphrase: true,
	}
)

func defaultSecretResource() *secretResource {
	return &secretResource{
		format:     "txt",
		password:   generator.DefaultPasswordOptions(),
		passphrase: generator.DefaultPassphraseOptions(),
		options:    make(map[string]string, 0),
	}
}

// secretResource ... the structure which defines a secret to generate
type secretResource struct {
	// the type of the resource, password or passphrase
	resource string
	// the name of the resource
	name string
	// the format of the resource
	format string
	// the options used to generate a password
	password generator.PasswordOptions
	// the options used to generate a passphrase
	passphrase generator.PassphraseOptions
	// the vault path to store the secret at
	vaultPath string
	// whether the vault path is a version 2 kv store
	kv2 bool
	// additional options to the resource
	options map[string]string
}

// applySettings ... seeds the generation options from the settings, options on the resource win
func (r *secretResource) applySettings(s *settings) {
	r.password = s.password
	r.passphrase = s.passphrase
}

// isValid ... checks to see if the resource is valid
func (r *secretResource) isValid() error {
	// step: check the resource type
	if _, found := validResources[r.resource]; !found {
		return fmt.Errorf("unsupported resource type: %s", r.resource)
	}

	// step: check the options
	if err := r.isValidOptions(); err != nil {
		return fmt.Errorf("invalid resource options, %s", err)
	}

	// step: check we can actually generate with these options
	if err := r.isValidResource(); err != nil {
		return fmt.Errorf("invalid resource: %s, %s", r, err)
	}

	return nil
}

// isValidResource ... validate the generation options hold together
func (r *secretResource) isValidResource() error {
	switch r.resource {
	case ResourcePassword:
		categories, err := generator.BuildCategories(r.password)
		if err != nil {
			return err
		}
		if len(categories) == 0 {
			return generator.ErrNoCategoryEnabled
		}
	case ResourcePassphrase:
		if _, found := r.options[OptionSymbols]; found {
			return fmt.Errorf("the %s option only applies to passwords, use %s", OptionSymbols, OptionSymbolWord)
		}
	}

	return nil
}

// isValidOptions ... iterates through the options, converts the options and so forth
func (r *secretResource) isValidOptions() error {
	for opt, val := range r.options {
		switch opt {
		case OptionFormat:
			if matched := resourceFormatRegex.MatchString(val); !matched {
				return fmt.Errorf("unsupported output format: %s", val)
			}
			glog.V(20).Infof("setting the format: %s on resource: %s", val, r)
			r.format = val
		case OptionsTemplatePath:
			if exists, _ := fileExists(val); !exists {
				return fmt.Errorf("the template file: %s does not exist", val)
			}
		case OptionFilename:
		case OptionVaultPath:
			r.vaultPath = val
		case OptionKV2:
			choice, err := strconv.ParseBool(val)
			if err != nil {
				return fmt.Errorf("the %s option: %s is invalid, should be a boolean", opt, val)
			}
			r.kv2 = choice
		case OptionLength:
			length, err := strconv.Atoi(val)
			if err != nil {
				return fmt.Errorf("the length option: %s is invalid, should be an integer", val)
			}
			r.password.Length = length
		case OptionWords:
			count, err := strconv.Atoi(val)
			if err != nil {
				return fmt.Errorf("the words option: %s is invalid, should be an integer", val)
			}
			r.passphrase.WordCount = count
		case OptionDelimiter:
			r.passphrase.Delimiter = val
		case OptionWordList:
			list, found := wordLists[val]
			if !found {
				return fmt.Errorf("unsupported word list: %s", val)
			}
			r.passphrase.Words = list
		case OptionLower, OptionUpper, OptionDigits, OptionSymbols, OptionNoRepeat,
			OptionExcludeSimilar, OptionNoAmbiguous, OptionCapitalize, OptionNumberWord, OptionSymbolWord:
			choice, err := strconv.ParseBool(val)
			if err != nil {
				return fmt.Errorf("the %s option: %s is invalid, should be a boolean", opt, val)
			}
			r.setFlag(opt, choice)
		default:
			return fmt.Errorf("unknown option: %s", opt)
		}
	}

	return nil
}

// setFlag ... sets a boolean generation option
func (r *secretResource) setFlag(opt string, choice bool) {
	switch opt {
	case OptionLower:
		r.password.Lower = choice
	case OptionUpper:
		r.password.Upper = choice
	case OptionDigits:
		r.password.Digits = choice
	case OptionSymbols:
		r.password.Symbols = choice
	case OptionNoRepeat:
		r.password.NoRepeat = choice
	case OptionExcludeSimilar:
		r.password.ExcludeSimilar = choice
		r.passphrase.ExcludeSimilar = choice
	case OptionNoAmbiguous:
		r.password.NoAmbiguous = choice
		r.passphrase.NoAmbiguous = choice
	case OptionCapitalize:
		r.passphrase.CapitalizeWords = choice
	case OptionNumberWord:
		r.passphrase.IncludeNumberWord = choice
	case OptionSymbolWord:
		r.passphrase.IncludeSymbolWord = choice
	}
}

// filename ... generates a resource filename by default the resource name and resource type, which
// can be overridden by the OptionFilename option
func (r secretResource) filename() string {
	if path, found := r.options[OptionFilename]; found {
		return path
	}

	return fmt.Sprintf("%s.%s", r.name, r.resource)
}

// String ... a string representation of the struct
func (r secretResource) String() string {
	return fmt.Sprintf("%s/%s", r.resource, r.name)
}
