package config

// Merge copies the values set in source into target and records
// sourceType for each of them. Zero values are skipped, except for
// booleans listed in source.SetFields.
func Merge(target, source *Config, sourceType string) {
	if source == nil {
		return
	}
	if target.Sources == nil {
		target.Sources = make(map[string]string)
	}

	if source.Input != "" {
		target.Input = source.Input
		target.Sources["input"] = sourceType
	}
	if len(source.Schemas) > 0 {
		target.Schemas = append([]string(nil), source.Schemas...)
		target.Sources["schemas"] = sourceType
	}
	if boolIsSet(source, "optional") {
		target.Optional = source.Optional
		target.Sources["optional"] = sourceType
	}
	if source.Seed != 0 {
		target.Seed = source.Seed
		target.Sources["seed"] = sourceType
	}
	if source.MinItems != 0 {
		target.MinItems = source.MinItems
		target.Sources["minItems"] = sourceType
	}
	if source.MaxItems != 0 {
		target.MaxItems = source.MaxItems
		target.Sources["maxItems"] = sourceType
	}
	if source.Format != "" {
		target.Format = source.Format
		target.Sources["format"] = sourceType
	}
	if source.Indent != 0 || source.SetFields["indent"] {
		target.Indent = source.Indent
		target.Sources["indent"] = sourceType
	}
	if source.RootName != "" {
		target.RootName = source.RootName
		target.Sources["rootName"] = sourceType
	}
	if boolIsSet(source, "resolve") {
		target.Resolve = source.Resolve
		target.Sources["resolve"] = sourceType
	}
	if source.LogLevel != "" {
		target.LogLevel = source.LogLevel
		target.Sources["logLevel"] = sourceType
	}
	if source.LogFormat != "" {
		target.LogFormat = source.LogFormat
		target.Sources["logFormat"] = sourceType
	}
}

// boolIsSet reports whether a boolean identified by its YAML key was set in
// cfg. Without SetFields only true counts as set.
func boolIsSet(cfg *Config, yamlKey string) bool {
	if cfg.SetFields != nil {
		return cfg.SetFields[yamlKey]
	}
	switch yamlKey {
	case "optional":
		return cfg.Optional
	case "resolve":
		return cfg.Resolve
	}
	return false
}
