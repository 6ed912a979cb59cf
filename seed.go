package bunyan

import (
	"github.com/bunyango/bunyan-go/bunbase"
	"github.com/bunyango/bunyan-go/bunnum"
	"github.com/bunyango/bunyan-go/bunutil"
)

// Seed is used to create a Log.
type Seed struct {
	target     string
	source     bunbase.SourceInfo
	layers     []bunbase.Layer
	minLevel   bunnum.Level
	withCaller bool
}

type SeedModifier func(*Seed)

func NewSeed(mods ...SeedModifier) Seed {
	seed := Seed{
		minLevel: bunnum.MinLevel,
	}
	return seed.applyMods(mods)
}

func (seed Seed) Copy() Seed {
	n := seed
	n.layers = make([]bunbase.Layer, len(seed.layers))
	copy(n.layers, seed.layers)
	return n
}

func (seed Seed) applyMods(mods []SeedModifier) Seed {
	for _, mod := range mods {
		mod(&seed)
	}
	return seed
}

// WithLayers adds layers that will receive spans and events.
func WithLayers(layers ...bunbase.Layer) SeedModifier {
	return func(seed *Seed) {
		seed.layers = append(seed.layers, layers...)
	}
}

// WithTarget sets the dotted origin string stamped on every event.
// It doubles as the record message when an event has no usable
// "message" field.
func WithTarget(target string) SeedModifier {
	return func(seed *Seed) {
		seed.target = target
	}
}

// WithMinLevel sets the initial severity gate. Events below the gate
// are not delivered to any layer.
func WithMinLevel(level bunnum.Level) SeedModifier {
	return func(seed *Seed) {
		seed.minLevel = level
	}
}

// WithCaller records the source file and line of each event. Costs a
// runtime.Caller per event.
func WithCaller(b bool) SeedModifier {
	return func(seed *Seed) {
		seed.withCaller = b
	}
}

// WithSource identifies the producing program. Strings like
// "myapp v1.2.3" split into a name and a semver version; without a
// version suffix the version is 0.0.0.
func WithSource(source string) SeedModifier {
	return func(seed *Seed) {
		seed.source.Source, seed.source.SourceVersion = bunutil.SplitVersion(source)
	}
}

// WithNamespace identifies the family of field names in use,
// independently of which program produced the record.
func WithNamespace(namespace string) SeedModifier {
	return func(seed *Seed) {
		seed.source.Namespace, seed.source.NamespaceVersion = bunutil.SplitVersion(namespace)
	}
}
