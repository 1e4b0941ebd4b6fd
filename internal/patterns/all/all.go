// Package all links every pattern demo into the binary. Import it for its side
// effect of registering the demos with the global catalog.
package all

import (
	_ "patternshell/internal/patterns/abstractfactory"
	_ "patternshell/internal/patterns/adapter"
	_ "patternshell/internal/patterns/bridge"
	_ "patternshell/internal/patterns/builder"
	_ "patternshell/internal/patterns/chain"
	_ "patternshell/internal/patterns/composite"
	_ "patternshell/internal/patterns/decorator"
	_ "patternshell/internal/patterns/facade"
	_ "patternshell/internal/patterns/factory"
	_ "patternshell/internal/patterns/iterator"
	_ "patternshell/internal/patterns/mvc"
	_ "patternshell/internal/patterns/observer"
	_ "patternshell/internal/patterns/prototype"
	_ "patternshell/internal/patterns/proxy"
	_ "patternshell/internal/patterns/singleton"
	_ "patternshell/internal/patterns/strategy"
	_ "patternshell/internal/patterns/visitor"
)
