/*
   Copyright 2026 The DIRPX Authors.

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

package config

import (
	"dirpx.dev/afx/apis"
)

const (
	// DefaultAllowNonPublic represents the default for AllowNonPublic.
	// Unexported fields are hidden unless explicitly requested.
	DefaultAllowNonPublic = false
	// DefaultIncludeProperties represents the default for IncludeProperties.
	// Method-pair members are enumerated alongside fields.
	DefaultIncludeProperties = true
	// DefaultTagKey represents the default for TagKey.
	// Empty disables tag-driven renaming.
	DefaultTagKey = ""
)

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		AllowNonPublic:    DefaultAllowNonPublic,
		IncludeProperties: DefaultIncludeProperties,
		TagKey:            DefaultTagKey,
	}
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithAllowNonPublic sets the AllowNonPublic option.
func WithAllowNonPublic(allow bool) Option {
	return func(c *apis.Config) {
		c.AllowNonPublic = allow
	}
}

// WithIncludeProperties sets the IncludeProperties option.
func WithIncludeProperties(include bool) Option {
	return func(c *apis.Config) {
		c.IncludeProperties = include
	}
}

// WithTagKey sets the TagKey option.
func WithTagKey(key string) Option {
	return func(c *apis.Config) {
		c.TagKey = key
	}
}
