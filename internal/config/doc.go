// Package config defines the format-agnostic configuration model for the
// application, along with the Loader interface implemented by each supported
// configuration format.
//
// `config.Model` is the single source of truth for the vocabulary the engine
// matches against: the dependency coordinate that enables the rewrite, the
// annotation names it recognises and writes, and the server properties it
// merges. Concrete loaders, such as for HCL and TOML, are provided in
// separate packages.
package config
