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

package config_test

import (
	"testing"

	"dirpx.dev/afx/config"
)

func TestDefaultConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	if cfg.AllowNonPublic != config.DefaultAllowNonPublic {
		t.Fatalf("AllowNonPublic default: %v", cfg.AllowNonPublic)
	}
	if cfg.IncludeProperties != config.DefaultIncludeProperties {
		t.Fatalf("IncludeProperties default: %v", cfg.IncludeProperties)
	}
	if cfg.TagKey != config.DefaultTagKey {
		t.Fatalf("TagKey default: %q", cfg.TagKey)
	}
}

func TestNewConfig_Options(t *testing.T) {
	cfg := config.NewConfig(
		config.WithAllowNonPublic(true),
		config.WithIncludeProperties(false),
		config.WithTagKey("db"),
	)
	if !cfg.AllowNonPublic {
		t.Fatal("WithAllowNonPublic not applied")
	}
	if cfg.IncludeProperties {
		t.Fatal("WithIncludeProperties not applied")
	}
	if cfg.TagKey != "db" {
		t.Fatalf("WithTagKey not applied: %q", cfg.TagKey)
	}
}

func TestNewConfig_NoOptionsEqualsDefault(t *testing.T) {
	if config.NewConfig() != config.DefaultConfig() {
		t.Fatal("NewConfig() diverges from DefaultConfig()")
	}
}
