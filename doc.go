// Package cmcutils is a grab bag of helpers for machine-learning experiment
// code: reproducible seeding, nested config trees, parameter merging and a
// few small conveniences.
//
// Layout:
//
//	seed/       seeded general, numeric and tensor streams; worker reseeding
//	kwargs/     filter named-argument bags against declared parameters; Bind
//	cfgtree/    ordered config trees: Substitute, Search, YAML/JSON/TOML I/O
//	join/       merge trees: Dictionaries, PreprocessingParams, Columns
//	frame/      labelled Series and Table values carried inside trees
//	array/      row-major Dense float64 storage behind frame
//	text/       LongestCommonSubstring
//	noop/       Pass and Nothing placeholder callables
//	sound/      end-of-run alert via the platform audio player
//	config/     defaults plus YAML/JSON overlay for cmd/cmcutil
//
// Quick example:
//
//	cfg := cfgtree.Of("model", cfgtree.Of("depth", 3), "epochs", 10)
//	cfgtree.Substitute(cfg, cfgtree.Of("depth", 5))
//	v, ok := cfgtree.Search(cfg, cfgtree.StrKey("depth")) // 5, true
//
//	go install github.com/katalvlaran/cmcutils/cmd/cmcutil@latest
package cmcutils
