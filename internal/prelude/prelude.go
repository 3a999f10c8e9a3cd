// Package prelude embeds the bootstrap library loaded before user code
// runs. It is not part of the core language: everything in it is
// expressed in terms of primitives and special forms the core already
// provides.
package prelude

import _ "embed"

//go:embed prelude.bl
var Source string
