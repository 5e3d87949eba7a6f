// aead/fromconfig.go
package aead

import (
	"fmt"
	"strings"

	"github.com/jojodeco2/tink/config"
	"github.com/jojodeco2/tink/descriptor"
)

// NewDescriptorFromConfig creates a descriptor from configuration by template name
func NewDescriptorFromConfig(cfg *config.Config, name string) (*descriptor.KeyDescriptor, error) {
	// Find the template configuration by name
	var tmplConfig *config.ConfigTemplate
	for _, tmpl := range cfg.Templates {
		if tmpl.Name == name {
			tmplConfig = &tmpl
			break
		}
	}

	if tmplConfig == nil {
		return nil, fmt.Errorf("template configuration not found for name: %s", name)
	}

	// A catalog reference wins over a custom definition
	if tmplConfig.Template != "" {
		return Template(tmplConfig.Template)
	}

	switch tmplConfig.Algorithm {
	case "aes-ctr-hmac":
		return NewAESCTRHMACAEADDescriptor(
			tmplConfig.Params["aes_key_size"],
			tmplConfig.Params["iv_size"],
			tmplConfig.Params["hmac_key_size"],
			tmplConfig.Params["tag_size"],
		)
	case "aes-gcm":
		prefix := descriptor.TinkPrefix
		if tmplConfig.Prefix != "" {
			var err error
			prefix, err = descriptor.ParseOutputPrefixType(strings.ToUpper(tmplConfig.Prefix))
			if err != nil {
				return nil, err
			}
		}
		return NewAESGCMDescriptor(tmplConfig.Params["key_size"], prefix)
	default:
		return nil, fmt.Errorf("unsupported template algorithm: %s", tmplConfig.Algorithm)
	}
}
