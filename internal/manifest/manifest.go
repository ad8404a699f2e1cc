// Package manifest models the Forge app manifest and its persistence.
package manifest

// Fixed manifest values seeded by the skeleton builder. The app ID is a
// placeholder the operator replaces after registering the app.
const (
	AppIDPlaceholder = "ari:cloud:ecosystem::app/replace-me"
	RuntimeName      = "nodejs20.x"
	RemoteKeyConnect = "connect"
)

// Manifest is the Forge manifest, built incrementally by the converter
// and serialized to manifest.yml. Connect modules keep their descriptor
// payloads as passthrough maps under namespaced "<platform>:<type>"
// keys; Modules holds native Forge modules, a separate namespace.
type Manifest struct {
	App            App                                 `yaml:"app"`
	Remotes        []Remote                            `yaml:"remotes"`
	Modules        map[string][]map[string]interface{} `yaml:"modules,omitempty"`
	ConnectModules map[string][]map[string]interface{} `yaml:"connectModules,omitempty"`
	Permissions    Permissions                         `yaml:"permissions"`
}

// App is the manifest's app section.
type App struct {
	ID        string     `yaml:"id"`
	Connect   Connect    `yaml:"connect"`
	Licensing *Licensing `yaml:"licensing,omitempty"`
	Runtime   Runtime    `yaml:"runtime"`
}

// Connect carries the app's Connect identity inside the Forge manifest.
type Connect struct {
	Key            string `yaml:"key"`
	Authentication string `yaml:"authentication,omitempty"`
	Remote         string `yaml:"remote"`
}

// Licensing enables Marketplace licensing checks.
type Licensing struct {
	Enabled bool `yaml:"enabled"`
}

// Runtime names the Forge runtime the app executes on.
type Runtime struct {
	Name string `yaml:"name"`
}

// Remote is a backend the app calls out to. BaseURL is either a scalar
// URL or, for data-residency apps, a mapping with a mandatory "default"
// entry plus one entry per pinned region.
type Remote struct {
	Key        string      `yaml:"key"`
	BaseURL    interface{} `yaml:"baseUrl"`
	Operations []string    `yaml:"operations,omitempty"`
	Storage    *Storage    `yaml:"storage,omitempty"`
}

// Storage declares what the remote stores on the app's behalf.
type Storage struct {
	InScopeEUD bool `yaml:"inScopeEUD"`
}

// Permissions lists the OAuth scopes the app requires.
type Permissions struct {
	Scopes []string `yaml:"scopes"`
}

// HasConnectIdentity reports whether the manifest defines the
// app.connect section. A pre-existing manifest that does conflicts
// with a fresh conversion and needs operator resolution.
func (m *Manifest) HasConnectIdentity() bool {
	return m.App.Connect != Connect{}
}
