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
	"strings"
)

// SecretResources is a collection of type resource
type SecretResources struct {
	// an array of resources to generate
	items []*secretResource
}

// Set is the implementation for the parser
// password:db:len=24,sym=true,fmt=env
func (r *SecretResources) Set(value string) error {
	rn := defaultSecretResource()

	// step: split on the ':', a backslash escapes the separators
	items := splitEscaped(value, ':')
	if len(items) < 2 {
		return fmt.Errorf("invalid resource, must have at least two sections TYPE:NAME")
	}
	if len(items) > 3 {
		return fmt.Errorf("invalid resource, can only has three sections, TYPE:NAME[:OPTIONS]")
	}
	if items[0] == "" || items[1] == "" {
		return fmt.Errorf("invalid resource, neither type or name can be empty")
	}

	// step: extract the elements
	rn.resource = unescape(items[0])
	rn.name = unescape(items[1])
	rn.options = make(map[string]string, 0)

	// step: extract any options
	if len(items) > 2 {
		for _, x := range splitEscaped(items[2], ',') {
			kp := strings.SplitN(x, "=", 2)
			if len(kp) != 2 {
				return fmt.Errorf("invalid resource option: %s, must be KEY=VALUE", x)
			}
			if kp[1] == "" {
				return fmt.Errorf("invalid resource option: %s, must have a value", x)
			}

			rn.options[unescape(kp[0])] = unescape(kp[1])
		}
	}
	// step: append to the list of resources
	r.items = append(r.items, rn)

	return nil
}

// String returns a string representation of the struct
func (r SecretResources) String() string {
	return ""
}

// splitEscaped splits value on sep, skipping any separator preceded by a backslash. The
// escapes are left in place for the next level of parsing.
func splitEscaped(value string, sep byte) []string {
	var parts []string
	start := 0
	for i := 0; i < len(value); i++ {
		switch value[i] {
		case '\\':
			i++
		case sep:
			parts = append(parts, value[start:i])
			start = i + 1
		}
	}

	return append(parts, value[start:])
}

// unescape drops the backslash in front of an escaped character, a trailing backslash is kept
func unescape(value string) string {
	if !strings.Contains(value, `\`) {
		return value
	}
	var b strings.Builder
	for i := 0; i < len(value); i++ {
		if value[i] == '\\' && i+1 < len(value) {
			i++
		}
		b.WriteByte(value[i])
	}

	return b.String()
}
