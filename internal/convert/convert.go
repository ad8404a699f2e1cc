// Package convert transforms a Connect descriptor into a Forge
// manifest. Everything the target platform cannot faithfully represent
// becomes a warning, never a hard failure; the caller decides whether
// the accumulated warnings should stop the run.
package convert

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"forgeport/internal/ask"
	"forgeport/internal/descriptor"
	"forgeport/internal/manifest"
)

// Platform is the Connect host product, supplied by the operator and
// never inferred from descriptor content.
type Platform string

const (
	PlatformJira       Platform = "jira"
	PlatformConfluence Platform = "confluence"
)

// Synthetic keys assigned to generated connect modules.
const (
	lifecycleModuleKey    = "lifecycle-events"
	translationsModuleKey = "connect-translations"
	migrationModuleKey    = "app-migration"
	dareModuleKey         = "dare"

	dareModuleType = "migration:dataResidency"
)

// Questions put to the operator during the data-residency flow.
// Exported so non-interactive callers can pre-seed answers by question.
const (
	QuestionMigrationPath = "The region migration hook is called with asymmetric JWT, not Connect JWT. Enter the migration endpoint path to use"
	QuestionEgressOps     = "Which data egress operations does your app perform?"
	QuestionStoresEUD     = "Does your app store end-user data on the remote?"
)

// EgressOperations is the closed set of data-egress operations Forge
// lets a remote declare.
var EgressOperations = []string{"storage", "compute", "fetch", "other"}

// Options tunes the engine.
type Options struct {
	// UnsupportedModules is the block-list of descriptor module types
	// known to have no Forge equivalent. May legitimately be empty.
	UnsupportedModules []string
}

// Run mutates m from a skeleton into the full manifest for desc and
// returns the ordered warning list. The engine cannot fail for a
// well-formed descriptor; the only error path is prompt I/O.
func Run(desc *descriptor.Descriptor, platform Platform, m *manifest.Manifest, prompter ask.Prompter, opts Options, logger *zap.Logger) ([]string, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &converter{
		desc:     desc,
		platform: platform,
		m:        m,
		prompter: prompter,
		opts:     opts,
		logger:   logger,
	}

	c.convertLifecycle()
	c.convertLicensing()
	c.copyModules()
	c.convertTranslations()
	c.convertMigrationWebhook()
	c.flagUnsupportedModules()
	c.keyWebhooks()
	c.mapScopes()
	if err := c.convertDataResidency(); err != nil {
		return nil, err
	}

	return c.warnings, nil
}

type converter struct {
	desc     *descriptor.Descriptor
	platform Platform
	m        *manifest.Manifest
	prompter ask.Prompter
	opts     Options
	logger   *zap.Logger
	warnings []string
}

func (c *converter) warnf(format string, args ...interface{}) {
	c.warnings = append(c.warnings, fmt.Sprintf(format, args...))
}

// moduleKey namespaces a descriptor module type for the manifest.
func (c *converter) moduleKey(moduleType string) string {
	return fmt.Sprintf("%s:%s", c.platform, moduleType)
}

// convertLifecycle folds the descriptor's lifecycle callbacks (minus
// the reserved dare-migration hook) into a single lifecycle connect
// module. Retaining Connect-style lifecycle callbacks mandates JWT
// authentication, so that is forced on as a side effect.
func (c *converter) convertLifecycle() {
	if !c.desc.HasLifecycle() {
		return
	}

	entry := map[string]interface{}{"key": lifecycleModuleKey}
	for event, path := range c.desc.Lifecycle {
		if event == descriptor.LifecycleDareMigration {
			continue
		}
		entry[event] = path
	}

	c.m.ConnectModules[c.moduleKey("lifecycle")] = []map[string]interface{}{entry}
	c.m.App.Connect.Authentication = "jwt"
}

func (c *converter) convertLicensing() {
	if c.desc.EnableLicensing {
		c.m.App.Licensing = &manifest.Licensing{Enabled: true}
	}
}

// copyModules writes every declared module type into connectModules,
// coercing single objects to one-element arrays.
func (c *converter) copyModules() {
	copied := 0
	for _, moduleType := range sortedKeys(c.desc.Modules) {
		value := c.desc.Modules[moduleType]
		if value == nil {
			continue
		}
		c.m.ConnectModules[c.moduleKey(moduleType)] = c.normalizeModules(moduleType, value)
		copied++
	}
	c.logger.Info("Copied connect modules", zap.Int("moduleTypes", copied))
}

// normalizeModules coerces a descriptor module value to an array of
// module objects. A manifest module slot is never a bare object.
func (c *converter) normalizeModules(moduleType string, value interface{}) []map[string]interface{} {
	var raw []interface{}
	switch v := value.(type) {
	case []interface{}:
		raw = v
	default:
		raw = []interface{}{v}
	}

	modules := make([]map[string]interface{}, 0, len(raw))
	for _, item := range raw {
		obj, ok := item.(map[string]interface{})
		if !ok {
			c.warnf("module type %q contains a non-object entry, which was skipped", moduleType)
			continue
		}
		modules = append(modules, obj)
	}
	return modules
}

func (c *converter) convertTranslations() {
	if c.desc.Translations == nil || len(c.desc.Translations.Paths) == 0 {
		return
	}
	c.m.ConnectModules[c.moduleKey("translations")] = []map[string]interface{}{{
		"key":   translationsModuleKey,
		"paths": c.desc.Translations.Paths,
	}}
}

func (c *converter) convertMigrationWebhook() {
	if c.desc.CloudAppMigration == nil || c.desc.CloudAppMigration.MigrationWebhookPath == "" {
		return
	}
	c.m.ConnectModules[c.moduleKey("cloudAppMigration")] = []map[string]interface{}{{
		"key":  migrationModuleKey,
		"path": c.desc.CloudAppMigration.MigrationWebhookPath,
	}}
}

// flagUnsupportedModules warns about every descriptor module type on
// the block-list. The modules are still copied; the operator decides
// what to do with them.
func (c *converter) flagUnsupportedModules() {
	blocked := make(map[string]bool, len(c.opts.UnsupportedModules))
	for _, moduleType := range c.opts.UnsupportedModules {
		blocked[moduleType] = true
	}
	for _, moduleType := range sortedKeys(c.desc.Modules) {
		if blocked[moduleType] {
			c.warnf("module type %q is not supported on Forge; review it before deploying", moduleType)
		}
	}
}

// keyWebhooks assigns synthetic keys webhook-1..N in original order,
// overwriting any pre-existing key.
func (c *converter) keyWebhooks() {
	webhooks := c.m.ConnectModules[c.moduleKey("webhooks")]
	for i := range webhooks {
		webhooks[i]["key"] = fmt.Sprintf("webhook-%d", i+1)
	}
}

// mapScopes emits one permission scope per descriptor scope, order
// preserved, lower-cased with underscores replaced by hyphens and
// suffixed with the platform. Unsupported scopes are never dropped
// here; whether they matter is the caller's judgement.
func (c *converter) mapScopes() {
	for _, scope := range c.desc.Scopes {
		mapped := strings.ReplaceAll(strings.ToLower(scope), "_", "-")
		c.m.Permissions.Scopes = append(c.m.Permissions.Scopes,
			fmt.Sprintf("%s:connect-%s", mapped, c.platform))
	}
}

// convertDataResidency handles region-pinned apps. The branch needs the
// reserved dare-migration lifecycle hook and asks the operator to
// resolve what the platform cannot decide on its own: the migration
// endpoint (the hook's authentication scheme is incompatible with the
// JWT the engine otherwise forces on) and the data-egress operations.
func (c *converter) convertDataResidency() error {
	if len(c.desc.RegionBaseURLs) == 0 {
		return nil
	}

	darePath, ok := c.desc.DareMigrationPath()
	if !ok {
		c.warnf("descriptor declares regionBaseUrls but no %q lifecycle hook; data residency configuration was skipped",
			descriptor.LifecycleDareMigration)
		return nil
	}

	path, err := c.prompter.Input(QuestionMigrationPath, darePath)
	if err != nil {
		return err
	}
	if path == "" {
		path = darePath
	}
	if path == darePath {
		c.warnf("keeping the Connect %s path %q; its endpoint must accept asymmetric JWT requests",
			descriptor.LifecycleDareMigration, darePath)
	}

	dare := map[string]interface{}{
		"key":    dareModuleKey,
		"path":   path,
		"remote": manifest.RemoteKeyConnect,
	}
	if c.desc.DataResidency != nil && c.desc.DataResidency.MaxMigrationDurationHours > 0 {
		dare["maxMigrationDurationHours"] = c.desc.DataResidency.MaxMigrationDurationHours
	}
	if c.m.Modules == nil {
		c.m.Modules = make(map[string][]map[string]interface{})
	}
	c.m.Modules[dareModuleType] = []map[string]interface{}{dare}

	baseURL := map[string]interface{}{"default": c.desc.BaseURL}
	for _, region := range sortedKeys(c.desc.RegionBaseURLs) {
		baseURL[region] = regionURL(c.desc.RegionBaseURLs[region])
	}

	operations, err := c.prompter.MultiSelect(QuestionEgressOps, EgressOperations)
	if err != nil {
		return err
	}

	var storage *manifest.Storage
	if containsString(operations, "storage") {
		inScope, err := c.prompter.Confirm(QuestionStoresEUD, true)
		if err != nil {
			return err
		}
		storage = &manifest.Storage{InScopeEUD: inScope}
	}
	if len(operations) == 0 {
		c.warnf("no data egress operations selected; the platform will assume end-user data egress by default")
	}

	c.m.Remotes[0] = manifest.Remote{
		Key:        manifest.RemoteKeyConnect,
		BaseURL:    baseURL,
		Operations: operations,
		Storage:    storage,
	}
	return nil
}

// regionURL normalizes a regionBaseUrls entry. The descriptor schema
// allows a bare URL string or an object with a baseUrl field.
func regionURL(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case map[string]interface{}:
		if url, ok := v["baseUrl"].(string); ok {
			return url
		}
	}
	return fmt.Sprintf("%v", value)
}

func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
