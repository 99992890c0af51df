package chain

import "maps"

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Defaults maps a function name to default argument values which are
// filled in when the caller omits them
type Defaults map[string]map[string]any

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Apply returns the argument mapping with any missing defaults for the
// named function filled in. Explicitly supplied values are never
// overwritten. The input mapping is not modified.
func (d Defaults) Apply(name string, args map[string]any) map[string]any {
	defaults := d[name]
	result := make(map[string]any, len(args)+len(defaults))
	maps.Copy(result, args)
	for key, value := range defaults {
		if _, exists := result[key]; !exists {
			result[key] = value
		}
	}
	return result
}
