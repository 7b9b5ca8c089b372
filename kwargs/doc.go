// Package kwargs adapts a loose bag of named options to what a consumer
// actually accepts.
//
// Go functions carry no parameter names at run time, so a consumer declares
// its parameters explicitly, either as a list of names (Params) or as the
// fields of its configuration struct (StructParams). Filter keeps the
// matching entries; Bind goes one step further and decodes them into the
// struct, validating it on the way.
//
//	type OptimConfig struct {
//		LR       float64 `yaml:"lr"`
//		Momentum float64 `yaml:"momentum"`
//	}
//
//	var cfg OptimConfig
//	err := kwargs.Bind(kwargs.Args{"lr": 0.1, "epochs": 5}, &cfg) // epochs dropped
package kwargs
