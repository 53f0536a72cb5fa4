// Package codec decodes wire documents into the bem modifier model.
//
// Condition maps are ordered; Go maps are not. Both decoders therefore walk
// the wire value token by token (JSON via goccy/go-json) or node by node
// (YAML via yaml.v3) so that mapping keys contribute in source order.
//
// Truthiness of condition values follows the conventions of class-name
// libraries in dynamic languages: false, 0, "", null and NaN are falsy;
// everything else, including empty sequences and mappings, is truthy.
package codec
