// aead/registry.go
package aead

import (
	"fmt"
	"sort"

	"github.com/jojodeco2/tink/descriptor"
)

// templates maps the canonical template names to their factories. The set is
// fixed: every entry is a pre-approved parameter combination.
var templates = map[string]func() *descriptor.KeyDescriptor{
	"AES128_CTR_HMAC_SHA256": AES128CTRHMACSHA256KeyTemplate,
	"AES256_CTR_HMAC_SHA256": AES256CTRHMACSHA256KeyTemplate,
	"AES128_GCM":             AES128GCMKeyTemplate,
	"AES256_GCM":             AES256GCMKeyTemplate,
	"AES256_GCM_RAW":         AES256GCMNoPrefixKeyTemplate,
}

// Template returns a fresh descriptor for the named catalog entry.
func Template(name string) (*descriptor.KeyDescriptor, error) {
	tmpl, ok := templates[name]
	if !ok {
		return nil, fmt.Errorf("no key template named %q", name)
	}
	return tmpl(), nil
}

// TemplateNames lists the catalog entry names in sorted order.
func TemplateNames() []string {
	names := make([]string, 0, len(templates))
	for name := range templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
