// +build tools

package lexion

import (
	_ "golang.org/x/tools/cmd/stringer"
)
