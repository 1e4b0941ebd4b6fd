package embedded

import _ "embed"

// ProductCatalogData contains the product records served by the MVC demo model.
//
//go:embed catalog/products.yaml
var ProductCatalogData []byte
