/*
Package config loads registry settings from YAML, JSON or TOML files.

# Overview

Settings describe how a registry is built: its name (used as the "registry"
attribute on logs, metrics and spans), an initial map capacity, and which
observers to attach.

	name: vehicles
	initial_capacity: 1024
	logging:
	  enabled: true
	  level: debug
	metrics:
	  enabled: true
	tracing:
	  enabled: false

# Loading

	s, err := config.FromFile("registry.yaml")
	if err != nil {
	    log.Fatal(err)
	}

	// Or load from bytes
	s, err = config.FromYAML(yamlBytes)
	s, err = config.FromJSON(jsonBytes)
	s, err = config.FromTOML(tomlBytes)

Fields missing from the input keep the values from Default(). Every loader
validates the result before returning it.
*/
package config
