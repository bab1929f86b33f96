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
	"math"
	"strconv"
	"strings"

	"github.com/UKHomeOffice/passgen-sidekick/generator"
)

// settings are the generation defaults applied to every resource
type settings struct {
	// the defaults for password resources
	password generator.PasswordOptions
	// the defaults for passphrase resources
	passphrase generator.PassphraseOptions
	// generate a passphrase rather than a password when no resource is given
	passphraseMode bool
}

func defaultSettings() *settings {
	return &settings{
		password:   generator.DefaultPasswordOptions(),
		passphrase: generator.DefaultPassphraseOptions(),
	}
}

// readSettingsFile reads the generation defaults from a json or yaml file
//	filename		: the path to the file
func readSettingsFile(filename string) (*settings, error) {
	values := make(map[string]interface{}, 0)
	if err := decodeFile(filename, &values); err != nil {
		return nil, err
	}
	s := defaultSettings()
	if err := s.apply(values); err != nil {
		return nil, fmt.Errorf("invalid settings file: %s, %s", filename, err)
	}

	return s, nil
}

// apply overlays the recognised keys, numbers which cannot be read fall back to the defaults
func (s *settings) apply(values map[string]interface{}) error {
	for key, value := range values {
		switch key {
		case "length":
			s.password.Length = toInt(value)
		case "wordCount":
			s.passphrase.WordCount = toInt(value)
		case "delimiter":
			if delimiter, ok := value.(string); ok {
				s.passphrase.Delimiter = delimiter
			} else {
				s.passphrase.Delimiter = ""
			}
		case "lower":
			s.password.Lower = toBool(value)
		case "upper":
			s.password.Upper = toBool(value)
		case "digits":
			s.password.Digits = toBool(value)
		case "symbols":
			s.password.Symbols = toBool(value)
		case "noRepeat":
			s.password.NoRepeat = toBool(value)
		case "excludeSimilar":
			s.password.ExcludeSimilar = toBool(value)
			s.passphrase.ExcludeSimilar = toBool(value)
		case "noAmbiguous":
			s.password.NoAmbiguous = toBool(value)
			s.passphrase.NoAmbiguous = toBool(value)
		case "capitalizeWords":
			s.passphrase.CapitalizeWords = toBool(value)
		case "includeNumberWord":
			s.passphrase.IncludeNumberWord = toBool(value)
		case "includeSymbolWord":
			s.passphrase.IncludeSymbolWord = toBool(value)
		case "passphraseMode":
			s.passphraseMode = toBool(value)
		case "wordList":
			name := fmt.Sprintf("%v", value)
			list, found := wordLists[name]
			if !found {
				return fmt.Errorf("unsupported word list: %s", name)
			}
			s.passphrase.Words = list
		default:
			return fmt.Errorf("unknown setting: %s", key)
		}
	}

	return nil
}

// toInt converts a decoded value to an integer, anything non numeric or non finite gives zero
func toInt(value interface{}) int {
	var f float64
	switch v := value.(type) {
	case int:
		return v
	case int64:
		f = float64(v)
	case uint64:
		f = float64(v)
	case float64:
		f = v
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		f = parsed
	default:
		return 0
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	// clamp here so the conversion below cannot overflow, the generator clamps again
	f = math.Max(math.Min(math.Floor(f), math.MaxInt32), math.MinInt32)

	return int(f)
}

// toBool converts a decoded value to a boolean, form values arrive as strings
func toBool(value interface{}) bool {
	switch v := value.(type) {
	case bool:
		return v
	case string:
		choice, _ := strconv.ParseBool(strings.TrimSpace(v))
		return choice
	case int:
		return v != 0
	case float64:
		return v != 0
	}

	return false
}
