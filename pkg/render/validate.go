package render

import (
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// hclExtensions are the rendered outputs checked for HCL syntax.
var hclExtensions = map[string]bool{
	".tf":     true,
	".tfvars": true,
	".hcl":    true,
}

// checkHCL parses rendered Terraform files and returns their syntax diagnostics.
// Other files are not checked.
func checkHCL(data []byte, filename string) hcl.Diagnostics {
	if !hclExtensions[filepath.Ext(filename)] {
		return nil
	}
	_, diags := hclparse.NewParser().ParseHCL(data, filename)
	return diags
}
