package bfvm

import (
	"github.com/reusee/bf/bfconfigs"
	"github.com/reusee/bf/debugs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Configs bfconfigs.Module
	Debugs  debugs.Module
}
