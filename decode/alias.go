package decode

import "github.com/sarchlab/a64decoder/insts"

// AliasRemapper canonicalizes an aliased encoding in place. Concrete
// alias tables (collapsing special-case encodings such as MOV as
// an alias of ORR) are a collaborator outside this decoder's scope; the
// driver only defines and invokes the boundary.
type AliasRemapper interface {
	Remap(inst *insts.Instruction)
}

// noopRemapper is the default AliasRemapper: it leaves every instruction
// unchanged. It stands in for the real alias collaborator, which this
// decoder does not implement.
type noopRemapper struct{}

func (noopRemapper) Remap(*insts.Instruction) {}

// DefaultAliasRemapper is the AliasRemapper a Driver uses when none is
// supplied.
var DefaultAliasRemapper AliasRemapper = noopRemapper{}
