package app

import (
	"github.com/specialistvlad/projforge/internal/registry"
	"github.com/specialistvlad/projforge/modules/build"
	"github.com/specialistvlad/projforge/modules/ignore"
	"github.com/specialistvlad/projforge/modules/jest"
	"github.com/specialistvlad/projforge/modules/packaging"
	"github.com/specialistvlad/projforge/modules/typescript"
	"github.com/specialistvlad/projforge/modules/usertasks"
)

// coreModules is the definitive list of all modules that are compiled into
// the projforge binary, in synthesis order. build must stay last.
var coreModules = []registry.Module{
	&typescript.Module{},
	&jest.Module{},
	&packaging.Module{},
	&usertasks.Module{},
	&ignore.Module{},
	&build.Module{},
}
