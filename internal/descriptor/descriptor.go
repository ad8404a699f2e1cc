// Package descriptor models the Atlassian Connect app descriptor and
// loads it from its hosted URL.
package descriptor

// LifecycleDareMigration is the reserved lifecycle hook invoked during a
// data-residency region migration. It is handled by the data-residency
// flow, never copied with the other lifecycle events.
const LifecycleDareMigration = "dare-migration"

// Descriptor is the source Connect descriptor, decoded from its JSON
// wire form. Module payloads are carried as passthrough values because
// the descriptor schema is open-ended: a module slot may hold a single
// object or an array of objects, with shapes the converter does not
// need to understand.
type Descriptor struct {
	Name              string                 `json:"name"`
	Key               string                 `json:"key" validate:"required"`
	BaseURL           string                 `json:"baseUrl" validate:"required,url"`
	Scopes            []string               `json:"scopes"`
	Lifecycle         map[string]string      `json:"lifecycle"`
	Modules           map[string]interface{} `json:"modules"`
	Translations      *Translations          `json:"translations"`
	RegionBaseURLs    map[string]interface{} `json:"regionBaseUrls"`
	CloudAppMigration *CloudAppMigration     `json:"cloudAppMigration"`
	EnableLicensing   bool                   `json:"enableLicensing"`
	DataResidency     *DataResidency         `json:"dataResidency"`
}

// Translations holds the descriptor's translation resource paths.
type Translations struct {
	Paths map[string]interface{} `json:"paths"`
}

// CloudAppMigration declares the server-to-cloud migration webhook.
type CloudAppMigration struct {
	MigrationWebhookPath string `json:"migrationWebhookPath"`
}

// DataResidency carries data-residency tuning declared by the app.
type DataResidency struct {
	MaxMigrationDurationHours int `json:"maxMigrationDurationHours"`
}

// HasLifecycle reports whether any lifecycle event other than the
// reserved dare-migration hook is declared.
func (d *Descriptor) HasLifecycle() bool {
	for event := range d.Lifecycle {
		if event != LifecycleDareMigration {
			return true
		}
	}
	return false
}

// DareMigrationPath returns the reserved region-migration hook path and
// whether it is declared.
func (d *Descriptor) DareMigrationPath() (string, bool) {
	path, ok := d.Lifecycle[LifecycleDareMigration]
	return path, ok
}
